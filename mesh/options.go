package mesh

import (
	"log/slog"

	"github.com/hupe1980/meshcomp/core"
)

type options struct {
	logger   *slog.Logger
	capacity int
	optional []core.Kind
}

// Option configures a Container or a Mesh.
type Option func(*options)

// WithLogger sets the logger. Containers log structural changes at debug
// level. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCapacity reserves room for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithOptional enables optional components at construction.
// Kinds that are not optional for the element type are ignored with a warning.
func WithOptional(kinds ...core.Kind) Option {
	return func(o *options) {
		o.optional = append(o.optional, kinds...)
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
