package suitekit

// CaseResult pairs a case name with its outcome.
type CaseResult struct {
	Name    string
	Outcome Outcome
}

// SuiteResult is the ordered record of one suite run: one entry per executed
// case, in declaration order. It is owned by the caller once Run returns and
// is never mutated afterwards.
type SuiteResult struct {
	Suite   string
	Results []CaseResult
}

// OK reports whether every executed case passed.
func (r SuiteResult) OK() bool {
	for _, cr := range r.Results {
		if !cr.Outcome.Passed() {
			return false
		}
	}
	return true
}

// Counts tallies outcomes by variant. The three counts always sum to
// len(r.Results).
func (r SuiteResult) Counts() (passed, failed, errored int) {
	for _, cr := range r.Results {
		switch cr.Outcome.Status() {
		case StatusFailed:
			failed++
		case StatusErrored:
			errored++
		default:
			passed++
		}
	}
	return
}

// Failures returns the non-passing entries, preserving order.
func (r SuiteResult) Failures() []CaseResult {
	var failures []CaseResult
	for _, cr := range r.Results {
		if !cr.Outcome.Passed() {
			failures = append(failures, cr)
		}
	}
	return failures
}
