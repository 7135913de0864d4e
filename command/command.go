// Package command runs external processes synchronously and converts their
// exit status and captured output into suite outcomes.
package command

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/suitekit/suitekit"
)

// Result holds everything observed from one run of an external process.
// Exactly one of SpawnErr and ExitCode is meaningful: if the process could
// not be started, SpawnErr is set and the captured streams are empty.
type Result struct {
	Name     string
	Args     []string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	SpawnErr error
}

// Run executes the named program with the given arguments and waits for it
// to finish. The argument vector is handed to the OS verbatim with no shell
// in between, so there is no quoting or injection surface and path-like
// arguments are passed without conversion. Stdout and stderr are captured
// separately.
func Run(name string, args ...string) *Result {
	r := &Result{Name: name, Args: args}

	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	r.Stdout = stdout.Bytes()
	r.Stderr = stderr.Bytes()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.ExitCode = exitErr.ExitCode()
		} else {
			r.SpawnErr = err
		}
	}
	return r
}

// Script tokenizes line the way a shell reader would — honoring single and
// double quotes so multi-word arguments stay intact — and runs it. The line
// is never handed to an actual shell.
func Script(line string) *Result {
	name, args, err := Split(line)
	if err != nil {
		return &Result{Name: line, SpawnErr: err}
	}
	return Run(name, args...)
}

// Outcome converts the run into a suite outcome: a spawn failure is an
// error, exit status zero passes, and any other exit status fails with the
// captured output attached.
func (r *Result) Outcome() suitekit.Outcome {
	if r.SpawnErr != nil {
		return suitekit.Errorf("%s: %w", r.CommandLine(), r.SpawnErr)
	}
	if r.ExitCode != 0 {
		return suitekit.Failf("%s exited with status %d%s",
			r.CommandLine(), r.ExitCode, r.outputSuffix())
	}
	return suitekit.Pass()
}

func (r *Result) outputSuffix() string {
	out := strings.TrimSpace(string(r.Stderr))
	if out == "" {
		out = strings.TrimSpace(string(r.Stdout))
	}
	if out == "" {
		return ""
	}
	return ": " + out
}

// CommandLine renders the invocation as a copy-pasteable string. Display
// only; execution always uses the raw argument vector.
func (r *Result) CommandLine() string {
	parts := make([]string, 0, len(r.Args)+1)
	parts = append(parts, shellescape.Quote(r.Name))
	for _, a := range r.Args {
		parts = append(parts, shellescape.Quote(a))
	}
	return strings.Join(parts, " ")
}
