package suitekit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// reporter writes one run's output to the configured destination. Writes are
// best effort: a destination that starts returning errors must not abort an
// in-progress run, so write errors are ignored.
type reporter struct {
	dest    io.Writer
	style   OutputStyle
	ok      *color.Color
	bad     *color.Color
	skipped *color.Color
}

func newReporter(cfg Config) *reporter {
	r := &reporter{
		dest:    cfg.dest(),
		style:   cfg.Style,
		ok:      color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
		skipped: color.New(color.FgYellow),
	}
	// Color is decided by the config, not by fatih/color's TTY sniffing,
	// so that buffer destinations behave the same as consoles.
	for _, c := range []*color.Color{r.ok, r.bad, r.skipped} {
		if cfg.Colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *reporter) suiteStarted(name string) {
	if r.style == StyleSilent {
		return
	}
	fmt.Fprintf(r.dest, "[%s]\n", name)
}

func (r *reporter) caseFinished(cr CaseResult) {
	if r.style == StyleSilent || (r.style == StyleQuiet && cr.Outcome.Passed()) {
		return
	}
	switch cr.Outcome.Status() {
	case StatusFailed:
		msg, _ := cr.Outcome.FailureMessage()
		fmt.Fprintf(r.dest, "  %s %s: %s\n", r.bad.Sprint("FAILED"), cr.Name, msg)
	case StatusErrored:
		cause, _ := cr.Outcome.Cause()
		fmt.Fprintf(r.dest, "  %s %s: %s\n", r.bad.Sprint("ERROR"), cr.Name, cause)
	default:
		fmt.Fprintf(r.dest, "  %s %s\n", r.ok.Sprint("ok"), cr.Name)
	}
}

func (r *reporter) caseSkipped(name string) {
	if r.style != StyleVerbose {
		return
	}
	fmt.Fprintf(r.dest, "  %s %s\n", r.skipped.Sprint("skipped"), name)
}

func (r *reporter) suiteFinished(result SuiteResult) {
	if r.style == StyleSilent {
		return
	}
	passed, failed, errored := result.Counts()
	fmt.Fprintf(r.dest, "%d tests: %d passed, %d failed, %d errored\n",
		len(result.Results), passed, failed, errored)
}
