package meshcomp

import (
	"errors"

	"github.com/hupe1980/meshcomp/core"
)

// Errors shared by every package, re-exported for convenience.
var (
	ErrNotFound         = core.ErrNotFound
	ErrDisabled         = core.ErrDisabled
	ErrDetached         = core.ErrDetached
	ErrFixedSize        = core.ErrFixedSize
	ErrInvalidIndices   = core.ErrInvalidIndices
	ErrNotOptional      = core.ErrNotOptional
	ErrTypeMismatch     = core.ErrTypeMismatch
	ErrIndexOutOfBounds = core.ErrIndexOutOfBounds
	ErrIncompatible     = core.ErrIncompatible
)

// ErrInvalidProfile is returned when a mesh profile cannot be parsed or
// applied.
var ErrInvalidProfile = errors.New("invalid profile")

type (
	// IndexOutOfBoundsError reports a row or list position outside [0, Len).
	IndexOutOfBoundsError = core.IndexOutOfBoundsError
	// TypeMismatchError reports a custom component accessed with the wrong type.
	TypeMismatchError = core.TypeMismatchError
	// UnknownNameError reports an unknown kind or type name.
	UnknownNameError = core.UnknownNameError
)
