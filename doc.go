// Package meshcomp provides element and component storage for polygonal
// meshes.
//
// Elements (vertices, faces, edges) are Go structs composed by embedding
// component modules from package comp. Every module chooses where its value
// lives:
//
//   - horizontal modules (comp.Color) keep the value inside the element,
//   - vertical modules (comp.VerticalColor) keep it in a column of the
//     container,
//   - optional modules (comp.OptionalColor) keep it in a column that can be
//     enabled and disabled at run time.
//
// Elements also embed comp.Base, the back-reference to their container, and
// may embed comp.CustomComponents to accept named attributes whose type is
// chosen at run time.
//
// # Quick Start
//
//	m, _ := meshcomp.Tri().
//	    Optional(core.Vertex, core.Mark).
//	    Build()
//
//	v0 := m.AddVertex(geom.P3(0.0, 0, 0))
//	v1 := m.AddVertex(geom.P3(1.0, 0, 0))
//	v2 := m.AddVertex(geom.P3(0.0, 1, 0))
//	f, _ := m.AddFace(v0, v1, v2)
//
//	c, _ := comp.ColorOf(m.Faces.Element(int(f))) // false: face color is optional
//	_ = m.Faces.EnableColor()
//	c, _ = comp.ColorOf(m.Faces.Element(int(f)))
//	*c = geom.Red
//
// # References and Compaction
//
// Elements refer to each other by index (core.Index). Deleting elements
// marks them; Compact removes them and rebases every reference held by any
// container of the mesh. References to removed elements become
// core.NullIndex.
//
// # Custom Components
//
//	_ = mesh.AddCustomComponent(m.Vertices, "confidence", float32(1))
//	col, _ := mesh.CustomComponent[float32](m.Vertices, "confidence")
//
// # Persistence
//
// Package snapshot writes a mesh, including the enabled optional and custom
// components, to a compressed binary snapshot. Profiles (YAML or TOML)
// declare the optional and custom components of a mesh.
//
// Containers and meshes are not safe for concurrent mutation.
package meshcomp
