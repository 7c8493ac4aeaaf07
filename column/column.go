// Package column implements the columnar slot: one growable sequence holding a
// single attribute for every element of a container, plus an enabled flag.
//
// A disabled column always has length 0. An enabled column has the length of
// its container; the container keeps the two in step through Resize, Clear and
// Compact.
package column

import (
	"github.com/hupe1980/meshcomp/core"
)

// Slot is the type-erased view of a column used by the aggregate store.
type Slot interface {
	Enable(size int)
	Disable()
	IsEnabled() bool
	Len() int
	Resize(n int)
	Reserve(n int)
	Clear()
	Compact(newIndices []core.Index)
	// AppendFrom appends the rows of other, which must hold the same payload
	// type. When other is disabled n default rows are appended instead.
	AppendFrom(other Slot, n int) bool
}

// Column holds one payload type for all rows of a container.
type Column[T any] struct {
	rows    []T
	enabled bool
	init    func(*T)
}

// New creates a disabled column. init, if not nil, initializes every row
// created by Enable or Resize.
func New[T any](init func(*T)) *Column[T] {
	return &Column[T]{init: init}
}

// Enable allocates size default rows and marks the column enabled.
// Enabling an enabled column resizes it and keeps existing rows.
func (c *Column[T]) Enable(size int) {
	if c.enabled {
		c.Resize(size)
		return
	}
	c.enabled = true
	c.rows = nil
	c.grow(size)
}

// Disable frees the rows and marks the column disabled.
func (c *Column[T]) Disable() {
	c.rows = nil
	c.enabled = false
}

// IsEnabled reports whether the column is enabled.
func (c *Column[T]) IsEnabled() bool { return c.enabled }

// Len returns the number of rows. It is 0 while disabled.
func (c *Column[T]) Len() int { return len(c.rows) }

// At returns a pointer to row i.
//
// Indexing a disabled column panics with core.ErrDisabled and an out of range
// row panics with *core.IndexOutOfBoundsError. Use Get for a checked read.
// The pointer is valid until the next Resize, Reserve, Compact or Disable.
func (c *Column[T]) At(i int) *T {
	if !c.enabled {
		panic(core.ErrDisabled)
	}
	core.CheckIndex(i, len(c.rows))
	return &c.rows[i]
}

// Get returns row i, or an error when the column is disabled or i is out of range.
func (c *Column[T]) Get(i int) (T, error) {
	var zero T
	if !c.enabled {
		return zero, core.ErrDisabled
	}
	if i < 0 || i >= len(c.rows) {
		return zero, &core.IndexOutOfBoundsError{Index: i, Len: len(c.rows)}
	}
	return c.rows[i], nil
}

// Set stores v in row i. It panics like At.
func (c *Column[T]) Set(i int, v T) { *c.At(i) = v }

// Rows returns the backing rows. Nil while disabled.
func (c *Column[T]) Rows() []T { return c.rows }

// Resize grows or shrinks the column to n rows. No-op when disabled.
func (c *Column[T]) Resize(n int) {
	if !c.enabled {
		return
	}
	if n <= len(c.rows) {
		clear(c.rows[n:])
		c.rows = c.rows[:n]
		return
	}
	c.grow(n - len(c.rows))
}

// Reserve makes room for n rows without changing the length. No-op when disabled.
func (c *Column[T]) Reserve(n int) {
	if !c.enabled || n <= cap(c.rows) {
		return
	}
	rows := make([]T, len(c.rows), n)
	copy(rows, c.rows)
	c.rows = rows
}

// Clear removes all rows and keeps the column enabled. No-op when disabled.
func (c *Column[T]) Clear() {
	if !c.enabled {
		return
	}
	clear(c.rows)
	c.rows = c.rows[:0]
}

// Compact moves every surviving row i to newIndices[i] and drops the rows
// mapped to core.NullIndex. No-op when disabled.
func (c *Column[T]) Compact(newIndices []core.Index) {
	if !c.enabled {
		return
	}
	c.rows = CompactSlice(c.rows, newIndices)
}

// AppendFrom implements Slot.
func (c *Column[T]) AppendFrom(other Slot, n int) bool {
	if !c.enabled {
		return true
	}
	o, ok := other.(*Column[T])
	if !ok {
		return false
	}
	if !o.enabled {
		c.grow(n)
		return true
	}
	c.rows = append(c.rows, o.rows...)
	return true
}

func (c *Column[T]) grow(n int) {
	start := len(c.rows)
	c.rows = append(c.rows, make([]T, n)...)
	if c.init != nil {
		for i := start; i < len(c.rows); i++ {
			c.init(&c.rows[i])
		}
	}
}
