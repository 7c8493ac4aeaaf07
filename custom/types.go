package custom

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
)

// typeInfo binds a payload type to the stable name under which it is
// persisted in snapshots and referenced from mesh profiles.
type typeInfo struct {
	name string
	typ  reflect.Type
	add  func(r *Registry, name string) error
}

var (
	typesMu sync.RWMutex
	byName  = map[string]typeInfo{}
	byType  = map[reflect.Type]typeInfo{}
)

func init() {
	RegisterType[bool]("bool")
	RegisterType[int]("int")
	RegisterType[int32]("int32")
	RegisterType[int64]("int64")
	RegisterType[uint32]("uint32")
	RegisterType[uint64]("uint64")
	RegisterType[float32]("float32")
	RegisterType[float64]("float64")
	RegisterType[string]("string")
	RegisterType[core.Index]("index")
	RegisterType[[]core.Index]("index_list")
	RegisterType[geom.Point3d]("point3d")
	RegisterType[geom.Point3f]("point3f")
	RegisterType[geom.Tangentd]("tangent3d")
	RegisterType[geom.Tangentf]("tangent3f")
	RegisterType[geom.Color]("color")
	RegisterType[geom.TexCoord]("tex_coord")
}

// RegisterType binds T to a stable type name. It panics when the name or the
// type is already bound to something else.
func RegisterType[T any](name string) {
	rt := reflect.TypeFor[T]()
	typesMu.Lock()
	defer typesMu.Unlock()
	if ti, ok := byName[name]; ok && ti.typ != rt {
		panic(fmt.Sprintf("custom: type name %q already bound to %v", name, ti.typ))
	}
	if ti, ok := byType[rt]; ok && ti.name != name {
		panic(fmt.Sprintf("custom: type %v already bound to %q", rt, ti.name))
	}
	ti := typeInfo{
		name: name,
		typ:  rt,
		add: func(r *Registry, n string) error {
			var zero T
			return Add(r, n, zero)
		},
	}
	byName[name] = ti
	byType[rt] = ti
}

// TypeName returns the name bound to rt.
func TypeName(rt reflect.Type) (string, bool) {
	typesMu.RLock()
	defer typesMu.RUnlock()
	ti, ok := byType[rt]
	return ti.name, ok
}

// AddByTypeName registers name in r with the type bound to typeName and a
// zero default.
func AddByTypeName(r *Registry, name, typeName string) error {
	typesMu.RLock()
	ti, ok := byName[typeName]
	typesMu.RUnlock()
	if !ok {
		return &core.UnknownNameError{What: "custom component type", Name: typeName}
	}
	return ti.add(r, name)
}
