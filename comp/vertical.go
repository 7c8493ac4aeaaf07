package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/store"
)

// verticalSlot returns the row of e in the column of kind k.
func verticalSlot[T any](b *Base, k core.Kind) (*T, bool) {
	cols, row, ok := b.rowIn()
	if !ok {
		return nil, false
	}
	col, ok := store.Column[T](cols, k)
	if !ok || row >= col.Len() {
		return nil, false
	}
	return col.At(row), true
}

// verticalList returns the list stored in the row of e in the column of kind k.
func verticalList[T any](b *Base, k core.Kind, size int, fill T) (List[T], bool) {
	p, ok := verticalSlot[[]T](b, k)
	if !ok {
		return List[T]{}, false
	}
	return newList(p, size, fill), true
}
