// Command suitekit runs a suite of external-command tests described by a
// YAML manifest and exits non-zero when any of them does not pass.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/suitekit/suitekit"
)

// errSuiteFailed marks a run that completed but had non-passing outcomes,
// so main can translate it into exit code 1 instead of a usage error.
var errSuiteFailed = errors.New("one or more tests did not pass")

type runParams struct {
	filters suitekit.SelectFilters
	quiet   bool
	silent  bool
	noColor bool
	debug   bool
	envFile string
}

func main() {
	err := newRootCommand(os.Stdout).Execute()
	switch {
	case err == nil:
	case errors.Is(err, errSuiteFailed):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	var p runParams
	cmd := &cobra.Command{
		Use:           "suitekit <manifest.yaml>",
		Short:         "Run a YAML-defined suite of command tests",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(cmd, args[0], p)
		},
	}

	fs := cmd.Flags()
	fs.Var(&p.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&p.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&p.quiet, "quiet", false, "print only failed tests and the summary")
	fs.BoolVar(&p.silent, "silent", false, "print nothing; only the exit code reports the result")
	fs.BoolVar(&p.noColor, "no-color", false, "disable ANSI colors in the report")
	fs.BoolVar(&p.debug, "debug", false, "dump captured command output when tests fail")
	fs.StringVar(&p.envFile, "env-file", "", "dotenv file to load before running commands")

	cmd.SetOut(out)
	return cmd
}

func runManifest(cmd *cobra.Command, path string, p runParams) error {
	manifest, err := LoadManifest(path)
	if err != nil {
		return err
	}
	if p.envFile != "" {
		if err := godotenv.Load(p.envFile); err != nil {
			return fmt.Errorf("loading %s: %w", p.envFile, err)
		}
	}

	debugLog := &suitekit.CapturingLogger{}
	suite := manifest.Suite(debugLog)

	cfg := suitekit.DefaultConfig().
		WithDest(cmd.OutOrStdout()).
		WithFilter(p.filters.AsFilter)
	if p.noColor {
		cfg = cfg.WithColor(false)
	}
	if p.quiet {
		cfg = cfg.WithStyle(suitekit.StyleQuiet)
	}
	if p.silent {
		cfg = cfg.WithStyle(suitekit.StyleSilent)
	}

	result := suite.Run(cfg)
	if !result.OK() {
		if p.debug && !p.silent {
			fmt.Fprintln(cmd.OutOrStdout())
			debugLog.Entries().Dump(cmd.OutOrStdout(), "DEBUG ")
		}
		return errSuiteFailed
	}
	return nil
}
