package comp

import (
	"fmt"
	"slices"

	"github.com/hupe1980/meshcomp/core"
)

// List is a view of a list component of one element: adjacency, vertex
// references or wedge data.
//
// Positions are checked: out of range positions panic with
// *core.IndexOutOfBoundsError. Resize, Push, Insert, Erase and Clear are only
// valid on Dynamic lists and panic with core.ErrFixedSize otherwise.
//
// The view stays valid while the element keeps its storage; for vertical
// lists that is until the next structural change of the container.
type List[T any] struct {
	p    *[]T
	size int
	fill T
}

func newList[T any](p *[]T, size int, fill T) List[T] {
	if size >= 0 && len(*p) != size {
		s := filled(size, fill)
		copy(s, *p)
		*p = s
	}
	return List[T]{p: p, size: size, fill: fill}
}

// Len returns the number of entries.
func (l List[T]) Len() int {
	if l.p == nil {
		return 0
	}
	return len(*l.p)
}

// Size returns the fixed size of the list, or DynamicSize.
func (l List[T]) Size() int { return l.size }

// IsDynamic reports whether the list can grow.
func (l List[T]) IsDynamic() bool { return l.size < 0 }

// At returns entry i.
func (l List[T]) At(i int) T {
	core.CheckIndex(i, l.Len())
	return (*l.p)[i]
}

// Ptr returns a pointer to entry i.
func (l List[T]) Ptr(i int) *T {
	core.CheckIndex(i, l.Len())
	return &(*l.p)[i]
}

// AtMod returns entry i modulo Len. Negative positions count from the end,
// so AtMod(-1) is the last entry and AtMod(i+1) the successor of i around a
// polygon.
func (l List[T]) AtMod(i int) T {
	return (*l.p)[l.mod(i)]
}

// Set stores v at position i.
func (l List[T]) Set(i int, v T) {
	core.CheckIndex(i, l.Len())
	(*l.p)[i] = v
}

// SetMod stores v at position i modulo Len.
func (l List[T]) SetMod(i int, v T) {
	(*l.p)[l.mod(i)] = v
}

// SetAll replaces all entries. A fixed size list requires exactly Size values.
func (l List[T]) SetAll(vs []T) {
	if l.size >= 0 {
		if len(vs) != l.size {
			panic(fmt.Errorf("%w: got %d values for size %d", core.ErrFixedSize, len(vs), l.size))
		}
		copy(*l.p, vs)
		return
	}
	*l.p = append((*l.p)[:0:0], vs...)
}

// Values returns the entries. Writes through the returned slice are visible
// in the list.
func (l List[T]) Values() []T {
	if l.p == nil {
		return nil
	}
	return *l.p
}

// Resize sets the number of entries of a dynamic list. New entries take the
// fill value of the list (core.NullIndex for references).
func (l List[T]) Resize(n int) {
	l.mustDynamic()
	if n <= len(*l.p) {
		clear((*l.p)[n:])
		*l.p = (*l.p)[:n]
		return
	}
	*l.p = append(*l.p, filled(n-len(*l.p), l.fill)...)
}

// Push appends v to a dynamic list.
func (l List[T]) Push(v T) {
	l.mustDynamic()
	*l.p = append(*l.p, v)
}

// Insert inserts v at position i of a dynamic list. i may equal Len.
func (l List[T]) Insert(i int, v T) {
	l.mustDynamic()
	core.CheckIndex(i, l.Len()+1)
	*l.p = slices.Insert(*l.p, i, v)
}

// Erase removes entry i of a dynamic list.
func (l List[T]) Erase(i int) {
	l.mustDynamic()
	core.CheckIndex(i, l.Len())
	*l.p = slices.Delete(*l.p, i, i+1)
}

// Clear removes every entry of a dynamic list.
func (l List[T]) Clear() {
	l.mustDynamic()
	clear(*l.p)
	*l.p = (*l.p)[:0]
}

// own gives the list private backing memory.
func (l List[T]) own() {
	if l.p != nil && *l.p != nil {
		*l.p = slices.Clone(*l.p)
	}
}

func (l List[T]) mod(i int) int {
	n := l.Len()
	if n == 0 {
		panic(&core.IndexOutOfBoundsError{Index: i, Len: 0})
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (l List[T]) mustDynamic() {
	if l.size >= 0 {
		panic(core.ErrFixedSize)
	}
}

// IndexIn returns the position of v in l, or -1.
func IndexIn[T comparable](l List[T], v T) int {
	return slices.Index(l.Values(), v)
}

// Contains reports whether v is an entry of l.
func Contains[T comparable](l List[T], v T) bool {
	return IndexIn(l, v) >= 0
}

// importList copies src into dst following the list import policy:
// equal fixed sizes copy, a dynamic source whose length matches a fixed
// destination copies, different fixed sizes are skipped and a dynamic
// destination is resized to the source length first.
func importList[T any](dst, src List[T]) bool {
	switch {
	case dst.size < 0:
		dst.SetAll(src.Values())
	case src.size >= 0 && src.size != dst.size:
		return false
	case src.Len() != dst.size:
		return false
	default:
		copy(*dst.p, src.Values())
	}
	return true
}

// listOps is the payload independent part of List used to keep tied lists in
// step with the vertex references.
type listOps interface {
	IsDynamic() bool
	Len() int
	Resize(n int)
	Erase(i int)
	Clear()
	insertFill(i int)
	own()
}

func (l List[T]) insertFill(i int) { l.Insert(i, l.fill) }
