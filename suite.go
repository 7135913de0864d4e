package suitekit

import (
	"fmt"
	"runtime/debug"
)

// Suite is a named, ordered collection of cases. Ordering is a guarantee,
// not an accident: cases run and report in the order they were added, so
// output order matches source order.
type Suite struct {
	name  string
	cases []Case
}

// NewSuite assembles a suite from an explicit list of cases. There is no
// ambient registration; the caller constructs the list and passes it in.
func NewSuite(name string, cases ...Case) *Suite {
	return &Suite{name: name, cases: cases}
}

// Add appends cases to the suite and returns it for chaining.
func (s *Suite) Add(cases ...Case) *Suite {
	s.cases = append(s.cases, cases...)
	return s
}

func (s *Suite) Name() string { return s.name }

func (s *Suite) Len() int { return len(s.cases) }

// Run executes every case exactly once, sequentially and in declaration
// order, reporting along the way as cfg requests. A fault inside one case is
// contained and recorded as an errored outcome; sibling cases still run. The
// suite itself never fails as a whole: Run always returns a complete
// SuiteResult, even when every case failed, and the caller decides whether a
// non-passing result should become a non-zero process exit.
//
// There is no timeout handling: a case that blocks, for example on a hung
// subprocess, blocks the whole run. Reporter write failures are swallowed
// and never abort an in-progress run.
func (s *Suite) Run(cfg Config) SuiteResult {
	rep := newReporter(cfg)
	result := SuiteResult{Suite: s.name}

	rep.suiteStarted(s.name)
	for _, c := range s.cases {
		if cfg.Filter != nil && !cfg.Filter(c.Name) {
			rep.caseSkipped(c.Name)
			continue
		}
		cr := CaseResult{Name: c.Name, Outcome: runContained(c)}
		result.Results = append(result.Results, cr)
		rep.caseFinished(cr)
	}
	rep.suiteFinished(result)
	return result
}

// runContained invokes one case, converting a panic into an errored outcome
// so one fault cannot take down the rest of the run.
func runContained(c Case) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Errorf("unexpected panic in test: %+v\n%s", r, debug.Stack())
		}
	}()
	if c.Run == nil {
		return Error(fmt.Errorf("case %q has no function to run", c.Name))
	}
	return c.Run()
}
