package suitekit

import (
	"io"
	"os"
)

// OutputStyle selects how much of a run is written to the configured
// destination.
type OutputStyle int

const (
	// StyleVerbose streams one line per case as it finishes, then a summary.
	// Lines are flushed per case, not buffered until the end of the run.
	StyleVerbose OutputStyle = iota

	// StyleQuiet streams only failed and errored cases, then a summary.
	StyleQuiet

	// StyleSilent writes nothing. The SuiteResult returned by Run is the only
	// way to observe such a run.
	StyleSilent
)

// Config controls reporting for a suite run. Configs are immutable values:
// the With methods return modified copies and there is no shared global
// state. The zero value is usable but writes to nothing useful; start from
// DefaultConfig.
type Config struct {
	Style   OutputStyle
	Dest    io.Writer
	Colored bool
	Filter  Filter
}

// DefaultConfig reports every case to standard output with color enabled and
// no filter.
func DefaultConfig() Config {
	return Config{Style: StyleVerbose, Dest: os.Stdout, Colored: true}
}

func (c Config) WithStyle(style OutputStyle) Config {
	c.Style = style
	return c
}

func (c Config) WithDest(dest io.Writer) Config {
	c.Dest = dest
	return c
}

func (c Config) WithColor(colored bool) Config {
	c.Colored = colored
	return c
}

// WithFilter restricts a run to the cases the filter accepts. A nil filter
// accepts every case.
func (c Config) WithFilter(filter Filter) Config {
	c.Filter = filter
	return c
}

func (c Config) dest() io.Writer {
	if c.Dest == nil {
		return os.Stdout
	}
	return c.Dest
}
