package comp

import (
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/store"
)

// Element is implemented by every struct that embeds Base.
type Element interface {
	base() *Base
}

// Base is the back-reference of an element to the columns of its container.
//
// It is a checked handle: the container stamps it with the address of the
// element, the row and the epoch of its store. The stamp no longer matches
// after the element is copied, after the container moves its storage and
// after the container is cleared or compacted without restamping.
type Base struct {
	cols  *store.Columns
	self  *Base
	epoch uint64
	row   core.Index
}

func (b *Base) base() *Base { return b }

// Index returns the row of the element in its container.
func (b *Base) Index() (core.Index, bool) {
	if !b.IsAttached() {
		return core.NullIndex, false
	}
	return b.row, true
}

// IsAttached reports whether the element has a valid back-reference.
func (b *Base) IsAttached() bool {
	return b.cols != nil &&
		b.self == b &&
		b.epoch == b.cols.Epoch() &&
		int(b.row) < b.cols.Len()
}

func (b *Base) rowIn() (*store.Columns, int, bool) {
	if !b.IsAttached() {
		return nil, 0, false
	}
	return b.cols, int(b.row), true
}

// Attach stamps e as row of cols. It is called by containers.
func Attach(e Element, cols *store.Columns, row core.Index) {
	b := e.base()
	b.cols = cols
	b.self = b
	b.epoch = cols.Epoch()
	b.row = row
}

// Detach clears the back-reference of e.
func Detach(e Element) {
	*e.base() = Base{}
}

// IndexOf returns the row of e in its container.
func IndexOf(e Element) (core.Index, bool) {
	return e.base().Index()
}

// IsAttached reports whether e has a valid back-reference.
func IsAttached(e Element) bool {
	return e.base().IsAttached()
}
