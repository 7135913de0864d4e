package suitekit

import (
	"errors"
	"fmt"
)

// Status identifies which variant of an Outcome is active.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the disposition of one test invocation: it passed, it failed
// with a message, or it errored with an underlying cause. Exactly one variant
// is active. The zero value is a passing outcome.
//
// A failure is an expected negative result asserted by test logic; an error
// is an unexpected fault during execution, such as a subprocess that could
// not be spawned.
type Outcome struct {
	status  Status
	message string
	cause   error
}

// Pass returns a passing outcome.
func Pass() Outcome { return Outcome{} }

// Fail returns a failing outcome carrying message. An empty message is
// replaced so that a failure is never silent.
func Fail(message string) Outcome {
	if message == "" {
		message = "test failed with no failure message"
	}
	return Outcome{status: StatusFailed, message: message}
}

// Failf is Fail with fmt.Sprintf formatting.
func Failf(format string, args ...interface{}) Outcome {
	return Fail(fmt.Sprintf(format, args...))
}

// Error returns an errored outcome for an unexpected fault. A nil err is
// replaced so that an error always has a cause.
func Error(err error) Outcome {
	if err == nil {
		err = errors.New("test errored with no cause")
	}
	return Outcome{status: StatusErrored, cause: err}
}

// Errorf is Error with fmt.Errorf formatting; %w wrapping works as usual.
func Errorf(format string, args ...interface{}) Outcome {
	return Error(fmt.Errorf(format, args...))
}

// Assert returns a passing outcome when cond holds, otherwise a failing
// outcome with the formatted message. Unlike testing assertions it never
// panics; it only reports.
func Assert(cond bool, format string, args ...interface{}) Outcome {
	if cond {
		return Pass()
	}
	return Failf(format, args...)
}

func (o Outcome) Status() Status { return o.status }

func (o Outcome) Passed() bool { return o.status == StatusPassed }

// FailureMessage returns the message of a failed outcome. For any other
// variant it returns ok=false rather than panicking.
func (o Outcome) FailureMessage() (message string, ok bool) {
	return o.message, o.status == StatusFailed
}

// Cause returns the underlying error of an errored outcome. For any other
// variant it returns ok=false rather than panicking.
func (o Outcome) Cause() (cause error, ok bool) {
	return o.cause, o.status == StatusErrored
}

func (o Outcome) String() string {
	switch o.status {
	case StatusFailed:
		return "failed: " + o.message
	case StatusErrored:
		return "errored: " + o.cause.Error()
	default:
		return "passed"
	}
}
