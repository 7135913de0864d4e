package suitekit

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportedSuite() *Suite {
	return NewSuite("demo",
		NewCase("passes", func() Outcome { return Pass() }),
		NewCase("fails", func() Outcome { return Fail("expected 1, got 2") }),
		NewCase("errors", func() Outcome { return Error(errors.New("spawn failed")) }),
	)
}

func TestVerboseReportWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	reportedSuite().Run(DefaultConfig().WithDest(&buf).WithColor(false))

	assert.Equal(t,
		"[demo]\n"+
			"  ok passes\n"+
			"  FAILED fails: expected 1, got 2\n"+
			"  ERROR errors: spawn failed\n"+
			"3 tests: 1 passed, 1 failed, 1 errored\n",
		buf.String())
}

func TestVerboseReportWithColor(t *testing.T) {
	var buf bytes.Buffer
	NewSuite("colored",
		NewCase("passes", func() Outcome { return Pass() }),
		NewCase("fails", func() Outcome { return Fail("nope") }),
	).Run(DefaultConfig().WithDest(&buf).WithColor(true))

	assert.Equal(t,
		"[colored]\n"+
			"  \x1b[32mok\x1b[0m passes\n"+
			"  \x1b[31mFAILED\x1b[0m fails: nope\n"+
			"2 tests: 1 passed, 1 failed, 0 errored\n",
		buf.String())
}

func TestQuietReportOnlyShowsNonPassingCases(t *testing.T) {
	var buf bytes.Buffer
	reportedSuite().Run(DefaultConfig().
		WithStyle(StyleQuiet).
		WithDest(&buf).
		WithColor(false))

	out := buf.String()
	assert.NotContains(t, out, "ok passes")
	assert.Contains(t, out, "FAILED fails: expected 1, got 2")
	assert.Contains(t, out, "ERROR errors: spawn failed")
	assert.Contains(t, out, "3 tests: 1 passed, 1 failed, 1 errored")
}

func TestSummaryCountsMatchTally(t *testing.T) {
	var buf bytes.Buffer
	suite := NewSuite("all failing",
		NewCase("a", func() Outcome { return Fail("x") }),
		NewCase("b", func() Outcome { return Fail("y") }),
	)
	result := suite.Run(DefaultConfig().WithDest(&buf).WithColor(false))

	passed, failed, errored := result.Counts()
	assert.Zero(t, passed)
	assert.Equal(t, 2, failed)
	assert.Zero(t, errored)
	assert.Contains(t, buf.String(), "2 tests: 0 passed, 2 failed, 0 errored\n")
}

// A destination that fails on every write must not disturb the run itself.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("write refused")
}

func TestBrokenDestinationDoesNotAbortRun(t *testing.T) {
	result := reportedSuite().Run(DefaultConfig().WithDest(brokenWriter{}).WithColor(false))
	assert.Len(t, result.Results, 3)
}
