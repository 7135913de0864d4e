package suitekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonNegative(x int) Outcome {
	return Assert(x >= 0, "%d < 0", x)
}

func TestParameterizeExpandsOneCasePerValue(t *testing.T) {
	cases := Parameterize("non_negative", nonNegative, 1, 2, -2, 4)
	require.Len(t, cases, 4)

	var names []string
	for _, c := range cases {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"non_negative/1",
		"non_negative/2",
		"non_negative/-2",
		"non_negative/4",
	}, names)
}

func TestParameterizeBindsEachValue(t *testing.T) {
	cases := Parameterize("non_negative", nonNegative, 1, -2)
	assert.True(t, cases[0].Run().Passed())

	o := cases[1].Run()
	msg, ok := o.FailureMessage()
	require.True(t, ok)
	assert.Equal(t, "-2 < 0", msg)
}

func TestParameterizedCasesAreIndependent(t *testing.T) {
	suite := NewSuite("params", Parameterize("non_negative", nonNegative, 1, 2, -2, 4)...)
	result := suite.Run(DefaultConfig().WithStyle(StyleSilent))

	passed, failed, errored := result.Counts()
	assert.Equal(t, 3, passed)
	assert.Equal(t, 1, failed)
	assert.Zero(t, errored)
	assert.Equal(t, "non_negative/-2", result.Failures()[0].Name)
}

func TestParameterizeRendersStringValues(t *testing.T) {
	echoLen := func(s string) Outcome {
		return Assert(len(s) > 0, "empty input")
	}
	cases := Parameterize("echo_len", echoLen, "hello world", "viva las vegas")
	require.Len(t, cases, 2)
	assert.Equal(t, "echo_len/hello world", cases[0].Name)
	assert.Equal(t, "echo_len/viva las vegas", cases[1].Name)
}
