package pqdif

import (
	"github.com/scigolib/pqdif/internal/core"
	"github.com/scigolib/pqdif/internal/utils"
)

// options configures a Parser or Writer, per spec.md §5's "owned vs
// borrowed stream" and configurable error-budget behaviors.
type options struct {
	errorBudget int
	leaveOpen   bool
	algorithm   core.CompressionAlgorithm
	style       core.CompressionStyle
}

func defaultOptions() options {
	return options{
		errorBudget: utils.MaxErrorBudget,
	}
}

// Option configures a Parser or Writer.
type Option func(*options)

// WithErrorBudget overrides the default number of recoverable
// element-parse errors the reader tolerates before halting as if at EOF.
// A negative value disables the budget entirely.
func WithErrorBudget(n int) Option {
	return func(o *options) { o.errorBudget = n }
}

// WithLeaveOpen configures the Parser/Writer to not take ownership of the
// underlying stream: Close will not close it.
func WithLeaveOpen() Option {
	return func(o *options) { o.leaveOpen = true }
}

// WithCompression configures a Writer to compress record bodies with the
// given algorithm and style. Passing CompressionPKZIP or
// CompressionStyleTotalFile fails at NewWriter time, since neither is
// implemented.
func WithCompression(algo CompressionAlgorithm, style CompressionStyle) Option {
	return func(o *options) {
		o.algorithm = algo
		o.style = style
	}
}
