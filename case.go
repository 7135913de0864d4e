package suitekit

import "fmt"

// Case is a single named unit of work. Run takes no arguments; everything a
// case needs is bound when it is constructed. Names must be non-empty and
// unique within a suite, since output ordering and filtering are keyed on
// them.
type Case struct {
	Name string
	Run  func() Outcome
}

// NewCase binds a name to a test function.
func NewCase(name string, run func() Outcome) Case {
	return Case{Name: name, Run: run}
}

// Parameterize expands a single-argument test function into one independent
// case per parameter value. Case names are derived deterministically from the
// base name and the value's rendered form, in the style of subtests:
// "name/value". One case failing has no effect on its siblings.
func Parameterize[P any](name string, fn func(P) Outcome, params ...P) []Case {
	cases := make([]Case, 0, len(params))
	for _, p := range params {
		p := p
		cases = append(cases, Case{
			Name: fmt.Sprintf("%s/%v", name, p),
			Run:  func() Outcome { return fn(p) },
		})
	}
	return cases
}
