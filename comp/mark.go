package comp

import (
	"github.com/hupe1980/meshcomp/core"
)

// Mark stores the mark inside the element.
type Mark struct {
	mark int
}

func (c *Mark) markSlot(*Base) (*int, bool) { return &c.mark, true }
func (*Mark) markSpec() Spec { return Spec{Kind: core.Mark, Mode: Horizontal} }

// VerticalMark stores the mark in a container column.
type VerticalMark struct{}

func (VerticalMark) markSlot(b *Base) (*int, bool) {
	return verticalSlot[int](b, core.Mark)
}
func (VerticalMark) markSpec() Spec { return Spec{Kind: core.Mark, Mode: Vertical} }

// OptionalMark stores the mark in a container column that can be enabled
// and disabled at run time.
type OptionalMark struct{}

func (OptionalMark) markSlot(b *Base) (*int, bool) {
	return verticalSlot[int](b, core.Mark)
}
func (OptionalMark) markSpec() Spec { return Spec{Kind: core.Mark, Mode: Optional} }

type markHost interface {
	markSlot(*Base) (*int, bool)
}

// MarkOf returns the mark of e. It returns false when e has no mark,
// when the column is disabled or when e is detached.
func MarkOf(e Element) (*int, bool) {
	h, ok := e.(markHost)
	if !ok {
		return nil, false
	}
	return h.markSlot(e.base())
}

// IsMarkEnabled reports whether the mark of e is accessible.
func IsMarkEnabled(e Element) bool {
	_, ok := MarkOf(e)
	return ok
}

// IncrementMark increments the mark of e.
func IncrementMark(e Element) bool {
	m, ok := MarkOf(e)
	if ok {
		*m++
	}
	return ok
}

// ResetMark sets the mark of e to 0.
func ResetMark(e Element) bool {
	m, ok := MarkOf(e)
	if ok {
		*m = 0
	}
	return ok
}

// HasSameMark reports whether a and b both have a mark and the marks match.
func HasSameMark(a, b Element) bool {
	ma, ok := MarkOf(a)
	if !ok {
		return false
	}
	mb, ok := MarkOf(b)
	return ok && *ma == *mb
}
