package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suitekit/suitekit"
	"github.com/suitekit/suitekit/command"
)

// Manifest is a YAML description of a suite of command tests:
//
//	suite: smoke
//	tests:
//	  - name: prints hello
//	    command: echo -n "hello"
//	    stdout: hello
//	  - name: exits cleanly
//	    command: "true"
type Manifest struct {
	Name  string        `yaml:"suite"`
	Tests []CommandTest `yaml:"tests"`
}

// CommandTest is one named command invocation plus its expectations. Exit is
// the expected status (default 0); Stdout, when present, must match the
// captured standard output exactly.
type CommandTest struct {
	Name    string  `yaml:"name"`
	Command string  `yaml:"command"`
	Exit    int     `yaml:"exit"`
	Stdout  *string `yaml:"stdout"`
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes and validates a manifest. Test names must be present
// and unique since reporting and filtering are keyed on them.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Name == "" {
		m.Name = "suitekit"
	}
	seen := make(map[string]bool, len(m.Tests))
	for i, t := range m.Tests {
		if t.Name == "" {
			return nil, fmt.Errorf("test #%d has no name", i+1)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate test name %q", t.Name)
		}
		seen[t.Name] = true
		if strings.TrimSpace(t.Command) == "" {
			return nil, fmt.Errorf("test %q has no command", t.Name)
		}
	}
	return &m, nil
}

// Suite builds a runnable suite from the manifest. Diagnostic details about
// each executed command go to debugLog; pass nil to discard them.
func (m *Manifest) Suite(debugLog suitekit.Logger) *suitekit.Suite {
	if debugLog == nil {
		debugLog = suitekit.NullLogger()
	}
	s := suitekit.NewSuite(m.Name)
	for _, t := range m.Tests {
		t := t
		s.Add(suitekit.NewCase(t.Name, func() suitekit.Outcome {
			return t.run(debugLog)
		}))
	}
	return s
}

func (t CommandTest) run(debugLog suitekit.Logger) suitekit.Outcome {
	r := command.Script(t.Command)

	debugLog.Printf("%s: ran %s (exit %d)", t.Name, r.CommandLine(), r.ExitCode)
	if len(r.Stdout) > 0 {
		debugLog.Printf("%s: stdout: %s", t.Name, r.Stdout)
	}
	if len(r.Stderr) > 0 {
		debugLog.Printf("%s: stderr: %s", t.Name, r.Stderr)
	}

	if r.SpawnErr != nil {
		return r.Outcome()
	}
	if r.ExitCode != t.Exit {
		return suitekit.Failf("%s exited with status %d, want %d",
			r.CommandLine(), r.ExitCode, t.Exit)
	}
	if t.Stdout != nil && string(r.Stdout) != *t.Stdout {
		return suitekit.Failf("stdout mismatch: want %q, got %q", *t.Stdout, r.Stdout)
	}
	return suitekit.Pass()
}
