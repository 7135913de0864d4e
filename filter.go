package suitekit

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether a named case runs. Filtered-out cases are reported
// as skipped and do not appear in the SuiteResult.
type Filter func(name string) bool

// Patterns is a list of regular expressions accumulated from repeated
// command-line flags. It implements both the flag.Value and pflag.Value
// interfaces.
type Patterns struct {
	patterns []*regexp.Regexp
}

func (p *Patterns) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	p.patterns = append(p.patterns, rx)
	return nil
}

func (p Patterns) String() string {
	var ss []string
	for _, rx := range p.patterns {
		ss = append(ss, `"`+rx.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

func (p Patterns) Type() string { return "regex" }

func (p Patterns) IsDefined() bool { return len(p.patterns) != 0 }

func (p Patterns) AnyMatch(s string) bool {
	for _, rx := range p.patterns {
		if rx.MatchString(s) {
			return true
		}
	}
	return false
}

// SelectFilters pairs an allow list with a deny list: a case runs when it
// matches at least one MustMatch pattern (or none are defined) and matches
// no MustNotMatch pattern.
type SelectFilters struct {
	MustMatch    Patterns
	MustNotMatch Patterns
}

func (s SelectFilters) AsFilter(name string) bool {
	return (!s.MustMatch.IsDefined() || s.MustMatch.AnyMatch(name)) &&
		!s.MustNotMatch.AnyMatch(name)
}
