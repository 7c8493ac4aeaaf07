package core

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotFound is returned when a custom component name is not registered.
	ErrNotFound = errors.New("not found")

	// ErrDisabled is raised when a disabled column is indexed directly.
	ErrDisabled = errors.New("component disabled")

	// ErrDetached is returned when an element has no valid back-reference to a
	// container. Copies of elements and elements built outside a container are
	// detached.
	ErrDetached = errors.New("element detached from container")

	// ErrFixedSize is raised when a growable-only list operation is applied to a
	// list with a compile-time size.
	ErrFixedSize = errors.New("list has fixed size")

	// ErrInvalidIndices is returned when a compaction map is malformed.
	ErrInvalidIndices = errors.New("invalid new indices")

	// ErrNotOptional is returned when enabling or disabling a component that is
	// not optional for the element type.
	ErrNotOptional = errors.New("component not optional")

	// ErrTypeMismatch is the sentinel matched by *TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfBounds is the sentinel matched by *IndexOutOfBoundsError.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrIncompatible is returned when two containers or meshes cannot be
	// combined, e.g. appending meshes with different container layouts.
	ErrIncompatible = errors.New("incompatible layout")
)

// IndexOutOfBoundsError reports a row or list position outside [0, Len).
type IndexOutOfBoundsError struct {
	Index int
	Len   int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: %d (len %d)", e.Index, e.Len)
}

// Is matches ErrIndexOutOfBounds.
func (e *IndexOutOfBoundsError) Is(target error) bool { return target == ErrIndexOutOfBounds }

// TypeMismatchError reports a typed access to a custom component whose
// registered type differs from the requested one.
type TypeMismatchError struct {
	Name       string
	Registered reflect.Type
	Requested  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for %q: registered %v, requested %v", e.Name, e.Registered, e.Requested)
}

// Is matches ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// UnknownNameError reports a name that does not parse into an enumeration.
type UnknownNameError struct {
	What string
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.What, e.Name)
}

// Is matches ErrNotFound.
func (e *UnknownNameError) Is(target error) bool { return target == ErrNotFound }

// CheckIndex panics with an *IndexOutOfBoundsError unless 0 <= i < n.
func CheckIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexOutOfBoundsError{Index: i, Len: n})
	}
}
