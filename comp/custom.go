package comp

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/custom"
)

// CustomComponents gives an element type access to the custom components of
// its container.
type CustomComponents struct{}

func (CustomComponents) customRegistry(b *Base) (*custom.Registry, int, error) {
	cols, row, ok := b.rowIn()
	if !ok {
		return nil, 0, core.ErrDetached
	}
	r := cols.Custom()
	if r == nil {
		return nil, 0, core.ErrDetached
	}
	return r, row, nil
}

type customHost interface {
	customRegistry(b *Base) (*custom.Registry, int, error)
}

func registryOf(e Element) (*custom.Registry, int, error) {
	h, ok := e.(customHost)
	if !ok {
		return nil, 0, fmt.Errorf("element has no custom components: %w", core.ErrNotFound)
	}
	return h.customRegistry(e.base())
}

// HasCustom reports whether the container of e has a custom component name.
func HasCustom(e Element, name string) bool {
	r, _, err := registryOf(e)
	return err == nil && r.Has(name)
}

// CustomType returns the payload type of the custom component name.
func CustomType(e Element, name string) (reflect.Type, error) {
	r, _, err := registryOf(e)
	if err != nil {
		return nil, err
	}
	return r.Type(name)
}

// CustomOf returns the value of the custom component name for e.
//
// It fails with core.ErrNotFound when name is not registered, with
// *core.TypeMismatchError when T is not the registered type and with
// core.ErrDetached when e is not inside a container.
func CustomOf[T any](e Element, name string) (*T, error) {
	r, row, err := registryOf(e)
	if err != nil {
		return nil, err
	}
	return custom.Get[T](r, name, row)
}

// MustCustomOf is CustomOf that panics on error.
func MustCustomOf[T any](e Element, name string) *T {
	v, err := CustomOf[T](e, name)
	if err != nil {
		panic(err)
	}
	return v
}
