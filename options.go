package meshcomp

import (
	"github.com/hupe1980/meshcomp/core"
)

type options struct {
	logger   *Logger
	capacity [core.NumElementKinds]int
	optional [core.NumElementKinds][]core.Kind
	profile  *Profile
}

// Option configures the construction of a predefined mesh.
type Option func(*options)

// WithLogger sets the logger of the mesh and its containers.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCapacity reserves room for n elements of kind k.
func WithCapacity(k core.ElementKind, n int) Option {
	return func(o *options) {
		if k < core.NumElementKinds {
			o.capacity[k] = n
		}
	}
}

// WithOptional enables optional components of the elements of kind k.
// Construction fails with ErrNotOptional when a kind is not optional.
func WithOptional(k core.ElementKind, kinds ...core.Kind) Option {
	return func(o *options) {
		if k < core.NumElementKinds {
			o.optional[k] = append(o.optional[k], kinds...)
		}
	}
}

// WithProfile applies p after construction.
func WithProfile(p *Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
