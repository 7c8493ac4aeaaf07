package custom

import (
	"reflect"

	"github.com/hupe1980/meshcomp/codec"
	"github.com/hupe1980/meshcomp/column"
	"github.com/hupe1980/meshcomp/core"
	"github.com/jinzhu/copier"
)

type typed[T any] struct {
	col  column.Column[T]
	def  T
	deep bool
}

func newTyped[T any](def T) *typed[T] {
	t := &typed[T]{def: def, deep: holdsReferences(reflect.TypeFor[T]())}
	t.col = *column.New(func(v *T) { t.copy(v, t.def) })
	t.col.Enable(0)
	return t
}

func (t *typed[T]) typ() reflect.Type { return reflect.TypeFor[T]() }

func (t *typed[T]) sync(n int) {
	if t.col.Len() != n {
		t.col.Resize(n)
	}
}

func (t *typed[T]) reserve(n int) { t.col.Reserve(n) }

func (t *typed[T]) compact(newIndices []core.Index) { t.col.Compact(newIndices) }

func (t *typed[T]) fresh() entry { return newTyped(t.def) }

func (t *typed[T]) copyRow(dst int, src entry, srcRow int) bool {
	s, ok := src.(*typed[T])
	if !ok || dst >= t.col.Len() || srcRow >= s.col.Len() {
		return false
	}
	t.copy(t.col.At(dst), *s.col.At(srcRow))
	return true
}

func (t *typed[T]) appendFrom(src entry, n int) bool {
	start := t.col.Len()
	t.col.Resize(start + n)
	s, ok := src.(*typed[T])
	if !ok {
		return false
	}
	rows := t.col.Rows()
	for i := 0; i < n && i < s.col.Len(); i++ {
		t.copy(&rows[start+i], *s.col.At(i))
	}
	return true
}

func (t *typed[T]) values() any { return t.col.Rows() }

func (t *typed[T]) decode(c codec.Codec, data []byte) error {
	rows, err := codec.DecodeRows[T](c, data, t.col.Len())
	if err != nil {
		return err
	}
	copy(t.col.Rows(), rows)
	return nil
}

// copy stores src in dst. Slices and maps get fresh backing memory and
// structs holding them are deep copied with copier, so rows never alias.
func (t *typed[T]) copy(dst *T, src T) {
	if !t.deep {
		*dst = src
		return
	}
	sv := reflect.ValueOf(&src).Elem()
	dv := reflect.ValueOf(dst).Elem()
	switch sv.Kind() {
	case reflect.Slice:
		if sv.IsNil() {
			dv.SetZero()
			return
		}
		out := reflect.MakeSlice(sv.Type(), sv.Len(), sv.Len())
		reflect.Copy(out, sv)
		dv.Set(out)
	case reflect.Map:
		if sv.IsNil() {
			dv.SetZero()
			return
		}
		out := reflect.MakeMapWithSize(sv.Type(), sv.Len())
		iter := sv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		dv.Set(out)
	default:
		var zero T
		*dst = zero
		if err := copier.CopyWithOption(dst, &src, copier.Option{DeepCopy: true}); err != nil {
			*dst = src
		}
	}
}

func holdsReferences(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Slice, reflect.Map:
		return true
	case reflect.Array:
		return holdsReferences(rt.Elem())
	case reflect.Struct:
		for i := range rt.NumField() {
			if holdsReferences(rt.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
