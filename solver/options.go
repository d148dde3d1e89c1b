package solver

import "runtime"

// Options configures a Solver. The zero value is not useful on its own;
// use New, which applies defaultOptions before any Option is applied.
type Options struct {
	// MaxThreads caps the total number of search goroutines (including the
	// caller's own) live at once. Defaults to min(runtime.NumCPU(), 100),
	// mirroring the Python original's os.cpu_count() cap.
	MaxThreads int

	// Verbose logs progress of each branch attempt to standard output,
	// mirroring flow.FlowOptions.Verbose.
	Verbose bool
}

// Option mutates an Options during New.
type Option func(*Options)

// WithMaxThreads overrides the default thread budget.
func WithMaxThreads(n int) Option {
	return func(o *Options) { o.MaxThreads = n }
}

// WithVerbose enables progress logging.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

func defaultOptions() Options {
	n := runtime.NumCPU()
	if n > 100 {
		n = 100
	}
	return Options{MaxThreads: n}
}
