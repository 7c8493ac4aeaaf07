// Package custom implements the custom-attribute registry: named columns whose
// payload type is chosen at run time.
//
// Each name is bound to one reflect.Type. Typed access goes through the
// generic functions Add, Get and ColumnOf, which check the registered type and
// never reinterpret a column as another type.
//
// Resizing is deferred: Resize only records the target length and every
// column is brought to that length on its next typed access.
package custom

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/hupe1980/meshcomp/codec"
	"github.com/hupe1980/meshcomp/column"
	"github.com/hupe1980/meshcomp/core"
)

// entry is the type-erased view of a registered column.
type entry interface {
	typ() reflect.Type
	sync(n int)
	reserve(n int)
	compact(newIndices []core.Index)
	fresh() entry
	copyRow(dst int, src entry, srcRow int) bool
	appendFrom(src entry, n int) bool
	values() any
	decode(c codec.Codec, data []byte) error
}

// Registry maps names to custom columns.
type Registry struct {
	entries map[string]entry
	size    int
}

// NewRegistry creates an empty registry for a container of the given size.
func NewRegistry(size int) *Registry {
	return &Registry{entries: make(map[string]entry), size: size}
}

// Len returns the logical length every column follows.
func (r *Registry) Len() int { return r.size }

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Type returns the payload type registered for name.
func (r *Registry) Type(name string) (reflect.Type, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, notFound(name)
	}
	return e.typ(), nil
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Delete removes name and its column.
func (r *Registry) Delete(name string) error {
	if _, ok := r.entries[name]; !ok {
		return notFound(name)
	}
	delete(r.entries, name)
	return nil
}

// Resize records n as the logical length. Columns follow on their next typed
// access.
func (r *Registry) Resize(n int) { r.size = n }

// Reserve makes room for n rows in every column.
func (r *Registry) Reserve(n int) {
	for _, e := range r.entries {
		e.reserve(n)
	}
}

// Compact applies newIndices to every column. Columns are first brought to
// the length newIndices was computed for.
func (r *Registry) Compact(newIndices []core.Index) {
	for _, e := range r.entries {
		e.sync(len(newIndices))
		e.compact(newIndices)
	}
	survivors := 0
	for _, ni := range newIndices {
		if !ni.IsNull() {
			survivors++
		}
	}
	r.size = survivors
}

// Clear drops every registration and sets the length to 0.
func (r *Registry) Clear() {
	clear(r.entries)
	r.size = 0
}

// CopyRow copies row srcRow of every column of src into row dst of the
// column with the same name and type in r. Names missing in r, or registered
// with another type, are skipped. It returns the number of copied columns.
func (r *Registry) CopyRow(dst int, src *Registry, srcRow int) int {
	copied := 0
	for n, se := range src.entries {
		de, ok := r.entries[n]
		if !ok || de.typ() != se.typ() {
			continue
		}
		de.sync(r.size)
		se.sync(src.size)
		if de.copyRow(dst, se, srcRow) {
			copied++
		}
	}
	return copied
}

// ImportLayout registers in r every column of src that r does not have yet,
// with default rows. Columns already registered are left untouched.
func (r *Registry) ImportLayout(src *Registry) {
	for n, se := range src.entries {
		if _, ok := r.entries[n]; ok {
			continue
		}
		e := se.fresh()
		e.sync(r.size)
		r.entries[n] = e
	}
}

// Append appends n rows to every column: the rows of the same named and typed
// column of src when there is one, default rows otherwise.
func (r *Registry) Append(src *Registry, n int) {
	for name, e := range r.entries {
		e.sync(r.size)
		se, ok := src.entries[name]
		if ok && se.typ() == e.typ() {
			se.sync(src.size)
		} else {
			se = nil
		}
		e.appendFrom(se, n)
	}
	r.size += n
}

// Values returns the rows of name as a []T boxed in an any.
func (r *Registry) Values(name string) (any, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, notFound(name)
	}
	e.sync(r.size)
	return e.values(), nil
}

// Decode replaces the rows of name with values decoded from data by c.
// The decoded length must equal Len.
func (r *Registry) Decode(name string, c codec.Codec, data []byte) error {
	e, ok := r.entries[name]
	if !ok {
		return notFound(name)
	}
	e.sync(r.size)
	return e.decode(c, data)
}

func (r *Registry) lookup(name string, want reflect.Type) (entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, notFound(name)
	}
	if got := e.typ(); got != want {
		return nil, &core.TypeMismatchError{Name: name, Registered: got, Requested: want}
	}
	e.sync(r.size)
	return e, nil
}

func notFound(name string) error {
	return fmt.Errorf("custom component %q: %w", name, core.ErrNotFound)
}

// Add registers name with payload type T. Every row, existing or created by a
// later resize, starts as a copy of def.
//
// Adding a name again with the same type re-initializes its column. Adding it
// with a different type fails with *core.TypeMismatchError.
func Add[T any](r *Registry, name string, def T) error {
	want := reflect.TypeFor[T]()
	if e, ok := r.entries[name]; ok && e.typ() != want {
		return &core.TypeMismatchError{Name: name, Registered: e.typ(), Requested: want}
	}
	e := newTyped(def)
	e.sync(r.size)
	r.entries[name] = e
	return nil
}

// Get returns a pointer to row i of name.
func Get[T any](r *Registry, name string, i int) (*T, error) {
	col, err := ColumnOf[T](r, name)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= col.Len() {
		return nil, &core.IndexOutOfBoundsError{Index: i, Len: col.Len()}
	}
	return col.At(i), nil
}

// ColumnOf returns the column of name, synced to the registry length.
func ColumnOf[T any](r *Registry, name string) (*column.Column[T], error) {
	e, err := r.lookup(name, reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return &e.(*typed[T]).col, nil
}

// MustColumnOf is ColumnOf that panics on error.
func MustColumnOf[T any](r *Registry, name string) *column.Column[T] {
	col, err := ColumnOf[T](r, name)
	if err != nil {
		panic(err)
	}
	return col
}

// IsOfType reports whether name is registered with payload type T.
func IsOfType[T any](r *Registry, name string) bool {
	e, ok := r.entries[name]
	return ok && e.typ() == reflect.TypeFor[T]()
}

// NamesOfType returns the names registered with payload type T, sorted.
func NamesOfType[T any](r *Registry) []string {
	want := reflect.TypeFor[T]()
	var names []string
	for _, n := range r.Names() {
		if r.entries[n].typ() == want {
			names = append(names, n)
		}
	}
	return names
}
