// Package suitekit is a small library for declaring stateless test functions,
// grouping them into suites, running them, and reporting the collected
// pass/fail/error results.
//
// The general model is:
//
// 1. A test is any func() Outcome. All inputs are bound at construction time,
// so a case carries no state of its own; parameterized tests are expanded up
// front into one named case per parameter value.
//
// 2. A Suite is an explicitly assembled, ordered collection of cases. Running
// it executes every case exactly once, sequentially and in declaration order,
// and returns a SuiteResult with one entry per case in that same order. A
// panic inside one case is contained and recorded as an errored outcome
// rather than aborting the run.
//
// 3. Reporting is driven by a Config value: the verbose style streams one
// line per case plus a summary, the quiet style only shows failures, and the
// silent style writes nothing so the returned SuiteResult can be consumed
// programmatically. The suite itself never fails as a whole; callers decide
// whether a non-passing result should become a non-zero exit code.
//
// The command subpackage turns external process invocations into outcomes,
// which makes the library convenient for integration-testing CLI binaries:
//
//	check := suitekit.NewCase("echo round trip", func() suitekit.Outcome {
//		r := command.Run("echo", "-n", "hello world")
//		if !r.Outcome().Passed() {
//			return r.Outcome()
//		}
//		return suitekit.Assert(string(r.Stdout) == "hello world",
//			"expected 'hello world', got '%s'", r.Stdout)
//	})
//	result := suitekit.NewSuite("smoke", check).Run(suitekit.DefaultConfig())
package suitekit
