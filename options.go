package displaylist

import (
	"log/slog"

	"github.com/gogpu/displaylist/backend"
)

// ConvertOption configures a single conversion.
//
// Example:
//
//	b, err := displaylist.Convert(list, pipeline,
//	    displaylist.WithCapacityHint(64<<10),
//	    displaylist.WithLogger(logger),
//	)
type ConvertOption func(*convertOptions)

// convertOptions holds optional configuration for Convert.
type convertOptions struct {
	capacity int
	logger   *slog.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		capacity: backend.DefaultCapacity,
		logger:   nil, // package logger
	}
}

// WithCapacityHint sets the capacity hint, in bytes, handed to the backend
// builder. Non-positive values keep the default of 1 MiB.
func WithCapacityHint(bytes int) ConvertOption {
	return func(o *convertOptions) {
		if bytes > 0 {
			o.capacity = bytes
		}
	}
}

// WithLogger overrides the package logger for one conversion.
func WithLogger(l *slog.Logger) ConvertOption {
	return func(o *convertOptions) {
		o.logger = l
	}
}

func (o *convertOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
