package suitekit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternsSetRejectsInvalidRegex(t *testing.T) {
	var p Patterns
	require.NoError(t, p.Set("^echo"))
	assert.Error(t, p.Set("("))
	assert.True(t, p.IsDefined())
	assert.Equal(t, `"^echo"`, p.String())
}

func TestPatternsAnyMatch(t *testing.T) {
	var p Patterns
	require.NoError(t, p.Set("^echo"))
	require.NoError(t, p.Set("utf8$"))

	assert.True(t, p.AnyMatch("echo hello"))
	assert.True(t, p.AnyMatch("good utf8"))
	assert.False(t, p.AnyMatch("math"))
}

func TestSelectFiltersCombineAllowAndDeny(t *testing.T) {
	var f SelectFilters
	require.NoError(t, f.MustMatch.Set("^echo"))
	require.NoError(t, f.MustNotMatch.Set("slow"))

	assert.True(t, f.AsFilter("echo hello"))
	assert.False(t, f.AsFilter("echo slow variant"))
	assert.False(t, f.AsFilter("math"))
}

func TestEmptySelectFiltersAcceptEverything(t *testing.T) {
	var f SelectFilters
	assert.True(t, f.AsFilter("anything at all"))
}

func TestFilteredCasesAreSkippedAndOmittedFromResult(t *testing.T) {
	var f SelectFilters
	require.NoError(t, f.MustNotMatch.Set("^skip me"))

	var buf bytes.Buffer
	suite := NewSuite("filtered",
		NewCase("keep me", func() Outcome { return Pass() }),
		NewCase("skip me", func() Outcome { panic("never invoked") }),
	)
	result := suite.Run(DefaultConfig().
		WithDest(&buf).
		WithColor(false).
		WithFilter(f.AsFilter))

	require.Len(t, result.Results, 1)
	assert.Equal(t, "keep me", result.Results[0].Name)
	assert.Contains(t, buf.String(), "skipped skip me\n")
	assert.Contains(t, buf.String(), "1 tests: 1 passed, 0 failed, 0 errored\n")
}
