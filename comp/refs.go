package comp

import "github.com/hupe1980/meshcomp/core"

// ReferenceLists calls fn for every accessible reference list of e that
// points into containers of element kind target.
func ReferenceLists(e Element, target core.ElementKind, fn func(List[core.Index])) {
	switch target {
	case core.Vertex:
		if l, ok := AdjacentVerticesOf(e); ok {
			fn(l)
		}
		if l, ok := VertexReferencesOf(e); ok {
			fn(l)
		}
	case core.Face:
		if l, ok := AdjacentFacesOf(e); ok {
			fn(l)
		}
	case core.Edge:
		if l, ok := AdjacentEdgesOf(e); ok {
			fn(l)
		}
	}
}

// OwnLists gives every accessible list of e private backing memory. Containers
// call it after copying elements or rows so that copies never alias.
func OwnLists(e Element) {
	for _, l := range allLists(e) {
		l.own()
	}
}

func allLists(e Element) []listOps {
	var out []listOps
	if l, ok := AdjacentVerticesOf(e); ok {
		out = append(out, l)
	}
	if l, ok := AdjacentFacesOf(e); ok {
		out = append(out, l)
	}
	if l, ok := AdjacentEdgesOf(e); ok {
		out = append(out, l)
	}
	if l, ok := VertexReferencesOf(e); ok {
		out = append(out, l)
	}
	if l, ok := WedgeColorsOf(e); ok {
		out = append(out, l)
	}
	if l, ok := WedgeTexCoordsOf(e); ok {
		out = append(out, l)
	}
	return out
}
