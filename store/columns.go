// Package store implements the aggregate column store owned by a container:
// one columnar slot per column backed component kind plus the custom
// component registry.
//
// The set of slots is closed (core.NumKinds). Which slots exist, their payload
// type and whether they may be toggled is fixed when the store is created from
// a Layout derived from the element type.
package store

import (
	"github.com/hupe1980/meshcomp/column"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/custom"
)

// Slot describes the column of one kind in a Layout.
type Slot struct {
	// New creates the (disabled) column. Nil means the kind is not stored in
	// columns for this element type.
	New func() column.Slot
	// Optional columns start disabled and may be toggled. Others are enabled
	// for the whole lifetime of the store.
	Optional bool
}

// Layout lists the column slot of every kind.
type Layout struct {
	Slots  [core.NumKinds]Slot
	Custom bool
}

// Columns is the aggregate column store.
type Columns struct {
	layout Layout
	slots  [core.NumKinds]column.Slot
	custom *custom.Registry
	size   int
	epoch  uint64
}

// New creates an empty store. Vertical (non optional) columns are enabled.
func New(layout Layout) *Columns {
	c := &Columns{layout: layout, epoch: 1}
	for k, s := range layout.Slots {
		if s.New == nil {
			continue
		}
		c.slots[k] = s.New()
		if !s.Optional {
			c.slots[k].Enable(0)
		}
	}
	if layout.Custom {
		c.custom = custom.NewRegistry(0)
	}
	return c
}

// Layout returns the layout the store was created with.
func (c *Columns) Layout() Layout { return c.layout }

// Len returns the logical length shared by every enabled column.
func (c *Columns) Len() int { return c.size }

// Epoch returns the validity stamp of back-references into this store.
func (c *Columns) Epoch() uint64 { return c.epoch }

// Bump invalidates every back-reference stamped with the current epoch.
func (c *Columns) Bump() uint64 {
	c.epoch++
	return c.epoch
}

// Has reports whether kind k is column backed.
func (c *Columns) Has(k core.Kind) bool {
	return k < core.NumKinds && c.slots[k] != nil
}

// IsOptional reports whether kind k is column backed and optional.
func (c *Columns) IsOptional(k core.Kind) bool {
	return c.Has(k) && c.layout.Slots[k].Optional
}

// IsEnabled reports whether the column of kind k is enabled.
func (c *Columns) IsEnabled(k core.Kind) bool {
	return c.Has(k) && c.slots[k].IsEnabled()
}

// Enable enables the column of kind k with the current length.
// It reports false when k is not column backed.
func (c *Columns) Enable(k core.Kind) bool {
	if !c.Has(k) {
		return false
	}
	c.slots[k].Enable(c.size)
	return true
}

// Disable disables the optional column of kind k.
// It reports false when k is not an optional column.
func (c *Columns) Disable(k core.Kind) bool {
	if !c.IsOptional(k) {
		return false
	}
	c.slots[k].Disable()
	return true
}

// Slot returns the column of kind k, nil when k is not column backed.
func (c *Columns) Slot(k core.Kind) column.Slot {
	if k >= core.NumKinds {
		return nil
	}
	return c.slots[k]
}

// Custom returns the custom component registry, nil when the element type
// has no custom components.
func (c *Columns) Custom() *custom.Registry { return c.custom }

// Resize resizes every enabled column to n rows.
func (c *Columns) Resize(n int) {
	for _, s := range c.slots {
		if s != nil {
			s.Resize(n)
		}
	}
	if c.custom != nil {
		c.custom.Resize(n)
	}
	c.size = n
}

// Reserve makes room for n rows in every enabled column.
func (c *Columns) Reserve(n int) {
	for _, s := range c.slots {
		if s != nil {
			s.Reserve(n)
		}
	}
	if c.custom != nil {
		c.custom.Reserve(n)
	}
}

// Clear empties every column. Columns stay enabled; custom components are
// dropped.
func (c *Columns) Clear() {
	for _, s := range c.slots {
		if s != nil {
			s.Clear()
		}
	}
	if c.custom != nil {
		c.custom.Clear()
	}
	c.size = 0
}

// Compact applies newIndices to every column. len(newIndices) must equal Len.
func (c *Columns) Compact(newIndices []core.Index) {
	for _, s := range c.slots {
		if s != nil {
			s.Compact(newIndices)
		}
	}
	if c.custom != nil {
		c.custom.Compact(newIndices)
	}
	survivors := 0
	for _, ni := range newIndices {
		if !ni.IsNull() {
			survivors++
		}
	}
	c.size = survivors
}

// Append appends the n rows of other, a store with the same layout. Columns
// enabled here but disabled in other grow with default rows.
func (c *Columns) Append(other *Columns, n int) bool {
	ok := true
	for k, s := range c.slots {
		if s == nil {
			continue
		}
		src := other.Slot(core.Kind(k))
		if src == nil {
			s.Resize(c.size + n)
			continue
		}
		if !s.AppendFrom(src, n) {
			ok = false
			s.Resize(c.size + n)
		}
	}
	if c.custom != nil {
		if other.custom != nil {
			c.custom.Append(other.custom, n)
		} else {
			c.custom.Resize(c.size + n)
		}
	}
	c.size += n
	return ok
}

// Column returns the typed column of kind k. It returns false when k is not
// column backed, is disabled, or holds another payload type.
func Column[T any](c *Columns, k core.Kind) (*column.Column[T], bool) {
	if c == nil || k >= core.NumKinds {
		return nil, false
	}
	col, ok := c.slots[k].(*column.Column[T])
	if !ok || !col.IsEnabled() {
		return nil, false
	}
	return col, true
}
