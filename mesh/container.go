// Package mesh provides the element containers and the mesh that ties them
// together.
//
// A Container owns a contiguous array of elements and the column store of
// their vertical components. It keeps the back-reference of every element
// valid across growth, compaction and clearing. A Mesh groups one container
// per element kind and makes sure that compacting one container rebases the
// references every other container holds into it.
//
// Containers are not safe for concurrent mutation.
package mesh

import (
	"fmt"
	"iter"
	"log/slog"
	"reflect"

	"github.com/hupe1980/meshcomp/column"
	"github.com/hupe1980/meshcomp/comp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/custom"
	"github.com/hupe1980/meshcomp/internal/bitmap"
	"github.com/hupe1980/meshcomp/internal/conv"
	"github.com/hupe1980/meshcomp/rebase"
	"github.com/hupe1980/meshcomp/store"
)

// Source is the read side of a container, used to import from containers of
// other element types.
type Source interface {
	ElementKind() core.ElementKind
	Size() int
	ElementAt(i int) comp.Element
	IsEnabled(k core.Kind) bool
	IsDeleted(i int) bool
	CustomComponents() *custom.Registry
}

// ElementContainer is the element type independent view of a Container.
type ElementContainer interface {
	Source
	Schema() comp.Schema
	Number() int
	Add() core.Index
	AddN(n int) core.Index
	Delete(i int)
	Resize(n int)
	Reserve(n int)
	Clear()
	Compact(newIndices []core.Index) error
	CompactIndices() []core.Index
	CompactDeleted() ([]core.Index, error)
	IsOptional(k core.Kind) bool
	Enable(k core.Kind) error
	Disable(k core.Kind) error
	EnableAllOptional()
	DisableAllOptional()
	EnableSameOptionalComponentsOf(src Source)
	ImportFrom(src Source) error

	attach(m *Mesh) error
	updateReferences(target core.ElementKind, newIndices []core.Index)
	shiftReferences(from int, target core.ElementKind, offset core.Index)
	compatible(other ElementContainer) bool
	appendFrom(other ElementContainer) (int, error)
	clear(rebaseOthers bool)
	importFrom(src Source, rebaseOthers bool) error
}

// Container stores the elements of one element kind.
//
// E is the element struct; it must embed comp.Base. PE is inferred:
//
//	vertices := mesh.NewContainer[Vertex](core.Vertex)
type Container[E any, PE interface {
	*E
	comp.Element
}] struct {
	kind    core.ElementKind
	elems   []E
	cols    *store.Columns
	deleted *bitmap.Set
	schema  comp.Schema
	logger  *slog.Logger
	mesh    *Mesh
}

// NewContainer creates an empty container for elements of kind k.
func NewContainer[E any, PE interface {
	*E
	comp.Element
}](k core.ElementKind, opts ...Option) *Container[E, PE] {
	o := applyOptions(opts)
	schema := comp.Describe(PE(new(E)))
	c := &Container[E, PE]{
		kind:    k,
		cols:    store.New(schema.Layout()),
		deleted: bitmap.New(),
		schema:  schema,
		logger:  o.logger.With("element", k.String()),
	}
	if o.capacity > 0 {
		c.Reserve(o.capacity)
	}
	for _, kind := range o.optional {
		if err := c.Enable(kind); err != nil {
			c.logger.Warn("optional component not enabled", "component", kind.String(), "error", err)
		}
	}
	return c
}

// ElementKind returns the kind of the stored elements.
func (c *Container[E, PE]) ElementKind() core.ElementKind { return c.kind }

// Schema returns the components of the element type.
func (c *Container[E, PE]) Schema() comp.Schema { return c.schema }

// Size returns the number of elements, deleted ones included.
func (c *Container[E, PE]) Size() int { return len(c.elems) }

// Number returns the number of elements that are not deleted.
func (c *Container[E, PE]) Number() int { return len(c.elems) - c.deleted.Cardinality() }

// DeletedNumber returns the number of deleted elements.
func (c *Container[E, PE]) DeletedNumber() int { return c.deleted.Cardinality() }

// Element returns element i. It panics with *core.IndexOutOfBoundsError when
// i is out of range. The pointer is valid until the next structural change.
func (c *Container[E, PE]) Element(i int) PE {
	core.CheckIndex(i, len(c.elems))
	return PE(&c.elems[i])
}

// ElementAt is Element returning the comp.Element interface.
func (c *Container[E, PE]) ElementAt(i int) comp.Element { return c.Element(i) }

// All iterates over the elements that are not deleted.
func (c *Container[E, PE]) All() iter.Seq2[core.Index, PE] {
	return func(yield func(core.Index, PE) bool) {
		for i := range c.elems {
			row := core.Index(i)
			if c.deleted.Contains(row) {
				continue
			}
			if !yield(row, PE(&c.elems[i])) {
				return
			}
		}
	}
}

// Add appends one default element and returns its index.
func (c *Container[E, PE]) Add() core.Index { return c.AddN(1) }

// AddN appends n default elements and returns the index of the first.
func (c *Container[E, PE]) AddN(n int) core.Index {
	first := len(c.elems)
	conv.MustIndex(first + n)
	c.grow(n)
	return core.Index(first)
}

// Delete marks element i as deleted. It stays in place until compaction.
func (c *Container[E, PE]) Delete(i int) {
	core.CheckIndex(i, len(c.elems))
	c.deleted.Add(core.Index(i))
	comp.MarkDeleted(PE(&c.elems[i]), true)
}

// IsDeleted reports whether element i is deleted.
func (c *Container[E, PE]) IsDeleted(i int) bool {
	return c.deleted.Contains(conv.MustIndex(i))
}

// Resize sets the number of elements. Growing appends default elements.
// Shrinking is a compaction that removes the tail: references to the removed
// elements become null.
func (c *Container[E, PE]) Resize(n int) {
	size := len(c.elems)
	switch {
	case n > size:
		c.AddN(n - size)
	case n < size:
		if n < 0 {
			panic(&core.IndexOutOfBoundsError{Index: n, Len: size})
		}
		c.compact(rebase.Truncate(size, n), n)
	}
}

// Reserve makes room for n elements in the element array and every column.
func (c *Container[E, PE]) Reserve(n int) {
	if n <= cap(c.elems) {
		c.cols.Reserve(n)
		return
	}
	old := c.basePtr()
	elems := make([]E, len(c.elems), n)
	copy(elems, c.elems)
	c.elems = elems
	c.cols.Reserve(n)
	c.relocated(old)
}

// Clear removes every element. Optional columns stay enabled, custom
// components are dropped and references into this container held by other
// containers of the mesh become null.
func (c *Container[E, PE]) Clear() { c.clear(true) }

func (c *Container[E, PE]) clear(rebaseOthers bool) {
	size := len(c.elems)
	clear(c.elems)
	c.elems = c.elems[:0]
	c.cols.Clear()
	c.deleted.Clear()
	c.cols.Bump()
	if rebaseOthers && size > 0 && c.mesh != nil {
		c.mesh.updateReferences(c.kind, rebase.CompactIndices(size, func(int) bool { return true }))
	}
	c.logger.Debug("container cleared", "removed", size)
}

// Compact renumbers the elements: element i moves to newIndices[i] and is
// removed when newIndices[i] is core.NullIndex. newIndices must have Size
// entries and its surviving entries must be a permutation of [0, survivors).
//
// Every column follows the elements and every reference into this container,
// in this container and in every other container of the mesh, is rebased.
func (c *Container[E, PE]) Compact(newIndices []core.Index) error {
	survivors, err := rebase.Validate(newIndices, len(c.elems))
	if err != nil {
		return fmt.Errorf("compact %s container: %w", c.kind, err)
	}
	c.compact(newIndices, survivors)
	return nil
}

func (c *Container[E, PE]) compact(newIndices []core.Index, survivors int) {
	if survivors == len(c.elems) && rebase.IsIdentity(newIndices) {
		return
	}
	before := len(c.elems)
	c.elems = column.CompactSlice(c.elems, newIndices)
	c.cols.Compact(newIndices)
	c.deleted.Compact(newIndices)
	c.restamp()
	if c.mesh != nil {
		c.mesh.updateReferences(c.kind, newIndices)
	} else {
		c.updateReferences(c.kind, newIndices)
	}
	c.logger.Debug("container compacted", "before", before, "after", survivors)
}

// CompactIndices returns the order preserving compaction map that removes
// the deleted elements.
func (c *Container[E, PE]) CompactIndices() []core.Index {
	return rebase.CompactIndices(len(c.elems), func(i int) bool {
		return c.deleted.Contains(core.Index(i))
	})
}

// CompactDeleted removes the deleted elements. It returns the compaction map
// that was applied, or nil when there was nothing to remove.
func (c *Container[E, PE]) CompactDeleted() ([]core.Index, error) {
	if c.deleted.IsEmpty() {
		return nil, nil
	}
	newIndices := c.CompactIndices()
	if err := c.Compact(newIndices); err != nil {
		return nil, err
	}
	return newIndices, nil
}

// Append appends copies of the elements of other, an equally typed container.
// Optional and custom components of other are enabled here first. References of the appended elements that point into their own container
// are shifted by the previous size; other references are kept. Meshes shift
// every reference, see Mesh.Append.
func (c *Container[E, PE]) Append(other *Container[E, PE]) error {
	offset, err := c.appendFrom(other)
	if err != nil {
		return err
	}
	c.shiftReferences(offset, c.kind, core.Index(offset))
	return nil
}

func (c *Container[E, PE]) compatible(other ElementContainer) bool {
	_, ok := other.(*Container[E, PE])
	return ok && other.ElementKind() == c.kind
}

func (c *Container[E, PE]) appendFrom(other ElementContainer) (int, error) {
	o, ok := other.(*Container[E, PE])
	if !ok || o.kind != c.kind {
		return 0, fmt.Errorf("append to %s container: %w", c.kind, core.ErrIncompatible)
	}
	first := len(c.elems)
	n := len(o.elems)
	conv.MustIndex(first + n)

	for _, k := range c.schema.OptionalKinds() {
		if o.cols.IsEnabled(k) {
			_ = c.Enable(k)
		}
	}
	if dr, sr := c.cols.Custom(), o.cols.Custom(); dr != nil && sr != nil {
		dr.ImportLayout(sr)
	}

	old := c.basePtr()
	c.elems = append(c.elems, o.elems...)
	if !c.cols.Append(o.cols, n) {
		c.logger.Warn("append skipped columns with a different payload type")
	}
	c.deleted.Append(o.deleted, core.Index(first))
	if !c.relocated(old) {
		c.stampFrom(first)
	}
	for i := first; i < len(c.elems); i++ {
		comp.OwnLists(PE(&c.elems[i]))
	}
	c.logger.Debug("container appended", "offset", first, "count", n)
	return first, nil
}

// ImportFrom replaces the content of c with the elements of src, a container
// of the same element kind but possibly another element type. Optional
// components enabled in src are enabled here, every element is imported with
// comp.ImportFrom and custom components are copied.
//
// References other containers of the mesh hold into c become null, as with
// Clear. Mesh.ImportFrom replaces every container at once and keeps the
// imported references instead.
func (c *Container[E, PE]) ImportFrom(src Source) error {
	return c.importFrom(src, true)
}

func (c *Container[E, PE]) importFrom(src Source, rebaseOthers bool) error {
	if src.ElementKind() != c.kind {
		return fmt.Errorf("import %s into %s container: %w", src.ElementKind(), c.kind, core.ErrIncompatible)
	}
	c.clear(rebaseOthers)
	c.EnableSameOptionalComponentsOf(src)
	n := src.Size()
	c.AddN(n)
	for i := range n {
		dst := PE(&c.elems[i])
		comp.ImportFrom(dst, src.ElementAt(i))
		if src.IsDeleted(i) {
			c.deleted.Add(core.Index(i))
			comp.MarkDeleted(dst, true)
		}
	}
	if dr, sr := c.cols.Custom(), src.CustomComponents(); dr != nil && sr != nil {
		dr.ImportLayout(sr)
		for i := range n {
			dr.CopyRow(i, sr, i)
		}
	}
	c.logger.Debug("container imported", "count", n)
	return nil
}

// IsOptional reports whether k is an optional component of the element type.
func (c *Container[E, PE]) IsOptional(k core.Kind) bool { return c.schema.IsOptional(k) }

// IsEnabled reports whether component k is available: always for horizontal
// and vertical components, when enabled for optional ones.
func (c *Container[E, PE]) IsEnabled(k core.Kind) bool {
	if k == core.Custom {
		return c.schema.Custom()
	}
	sp, ok := c.schema.Spec(k)
	if !ok {
		return false
	}
	if sp.Mode != comp.Optional {
		return true
	}
	return c.cols.IsEnabled(k)
}

// Enable enables the optional component k. Enabling an enabled component is a
// no-op. Lists tied to the vertex number are sized to it.
func (c *Container[E, PE]) Enable(k core.Kind) error {
	if !c.schema.IsOptional(k) {
		return fmt.Errorf("enable %s on %s: %w", k, c.kind, core.ErrNotOptional)
	}
	if c.cols.IsEnabled(k) {
		return nil
	}
	c.cols.Enable(k)
	if c.schema.TiedToVertexNumber(k) {
		c.resizeTied(k)
	}
	c.logger.Debug("component enabled", "component", k.String(), "size", len(c.elems))
	return nil
}

// Disable disables the optional component k and frees its column.
func (c *Container[E, PE]) Disable(k core.Kind) error {
	if !c.schema.IsOptional(k) {
		return fmt.Errorf("disable %s on %s: %w", k, c.kind, core.ErrNotOptional)
	}
	if c.cols.Disable(k) {
		c.logger.Debug("component disabled", "component", k.String())
	}
	return nil
}

// EnableAllOptional enables every optional component.
func (c *Container[E, PE]) EnableAllOptional() {
	for _, k := range c.schema.OptionalKinds() {
		_ = c.Enable(k)
	}
}

// DisableAllOptional disables every optional component.
func (c *Container[E, PE]) DisableAllOptional() {
	for _, k := range c.schema.OptionalKinds() {
		_ = c.Disable(k)
	}
}

// EnableSameOptionalComponentsOf makes the optional components of c enabled
// exactly when src has them available.
func (c *Container[E, PE]) EnableSameOptionalComponentsOf(src Source) {
	for _, k := range c.schema.OptionalKinds() {
		if src.IsEnabled(k) {
			_ = c.Enable(k)
		} else {
			_ = c.Disable(k)
		}
	}
}

// CustomComponents returns the custom component registry, nil when the
// element type has no custom components.
func (c *Container[E, PE]) CustomComponents() *custom.Registry { return c.cols.Custom() }

// HasCustomComponent reports whether the custom component name exists.
func (c *Container[E, PE]) HasCustomComponent(name string) bool {
	r := c.cols.Custom()
	return r != nil && r.Has(name)
}

// CustomComponentType returns the payload type of the custom component name.
func (c *Container[E, PE]) CustomComponentType(name string) (reflect.Type, error) {
	r, err := registry(c)
	if err != nil {
		return nil, err
	}
	return r.Type(name)
}

// CustomComponentNames returns the names of the custom components, sorted.
func (c *Container[E, PE]) CustomComponentNames() []string {
	if r := c.cols.Custom(); r != nil {
		return r.Names()
	}
	return nil
}

// DeleteCustomComponent removes the custom component name.
func (c *Container[E, PE]) DeleteCustomComponent(name string) error {
	r, err := registry(c)
	if err != nil {
		return err
	}
	return r.Delete(name)
}

func (c *Container[E, PE]) attach(m *Mesh) error {
	if c.mesh != nil && c.mesh != m {
		return fmt.Errorf("%s container already belongs to a mesh: %w", c.kind, core.ErrIncompatible)
	}
	c.mesh = m
	return nil
}

func (c *Container[E, PE]) updateReferences(target core.ElementKind, newIndices []core.Index) {
	for i := range c.elems {
		comp.ReferenceLists(PE(&c.elems[i]), target, func(l comp.List[core.Index]) {
			rebase.Compact(l.Values(), newIndices)
		})
	}
}

func (c *Container[E, PE]) shiftReferences(from int, target core.ElementKind, offset core.Index) {
	for i := from; i < len(c.elems); i++ {
		comp.ReferenceLists(PE(&c.elems[i]), target, func(l comp.List[core.Index]) {
			rebase.Shift(l.Values(), offset)
		})
	}
}

func (c *Container[E, PE]) resizeTied(k core.Kind) {
	for i := range c.elems {
		e := PE(&c.elems[i])
		n := comp.VertexCount(e)
		switch k {
		case core.AdjacentFaces:
			if l, ok := comp.AdjacentFacesOf(e); ok {
				l.Resize(n)
			}
		case core.AdjacentEdges:
			if l, ok := comp.AdjacentEdgesOf(e); ok {
				l.Resize(n)
			}
		case core.WedgeColors:
			if l, ok := comp.WedgeColorsOf(e); ok {
				l.Resize(n)
			}
		case core.WedgeTexCoords:
			if l, ok := comp.WedgeTexCoordsOf(e); ok {
				l.Resize(n)
			}
		}
	}
}

// grow appends n default elements and stamps them.
func (c *Container[E, PE]) grow(n int) {
	if n <= 0 {
		return
	}
	first := len(c.elems)
	old := c.basePtr()
	c.elems = append(c.elems, make([]E, n)...)
	c.cols.Resize(len(c.elems))
	if !c.relocated(old) {
		c.stampFrom(first)
	}
}

func (c *Container[E, PE]) basePtr() *E {
	if cap(c.elems) == 0 {
		return nil
	}
	return &c.elems[:1][0]
}

// relocated restamps every element when the element array moved away from
// old. References are row indices and stay valid; only back-references
// carry the address. It reports whether a relocation happened.
func (c *Container[E, PE]) relocated(old *E) bool {
	if old == nil || old == c.basePtr() {
		return false
	}
	c.restamp()
	c.logger.Debug("storage relocated", "size", len(c.elems), "capacity", cap(c.elems))
	return true
}

// restamp invalidates every outstanding back-reference and stamps the
// current elements with their rows.
func (c *Container[E, PE]) restamp() {
	c.cols.Bump()
	c.stampFrom(0)
}

func (c *Container[E, PE]) stampFrom(first int) {
	for i := first; i < len(c.elems); i++ {
		comp.Attach(PE(&c.elems[i]), c.cols, core.Index(i))
	}
}

func registry(c Source) (*custom.Registry, error) {
	r := c.CustomComponents()
	if r == nil {
		return nil, fmt.Errorf("%s elements have no custom components: %w", c.ElementKind(), core.ErrNotFound)
	}
	return r, nil
}

// AddCustomComponent adds the custom component name with payload type T to
// c. Every element starts with def.
func AddCustomComponent[T any](c Source, name string, def T) error {
	r, err := registry(c)
	if err != nil {
		return err
	}
	return custom.Add(r, name, def)
}

// CustomComponent returns the column of the custom component name.
func CustomComponent[T any](c Source, name string) (*column.Column[T], error) {
	r, err := registry(c)
	if err != nil {
		return nil, err
	}
	return custom.ColumnOf[T](r, name)
}
