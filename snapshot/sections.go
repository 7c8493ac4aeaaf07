package snapshot

import (
	"fmt"

	"github.com/hupe1980/meshcomp/codec"
	"github.com/hupe1980/meshcomp/comp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/mesh"
)

// section moves the values of one component kind of a whole container
// through a codec.
type section struct {
	encode func(c mesh.ElementContainer, cd codec.Codec) ([]byte, error)
	decode func(c mesh.ElementContainer, cd codec.Codec, data []byte) error
}

// sectionFor returns the section of kind k for the element type of c.
func sectionFor(c mesh.ElementContainer, k core.Kind) (section, bool) {
	sp, ok := c.Schema().Spec(k)
	if !ok {
		return section{}, false
	}
	switch k {
	case core.BitFlags:
		return valueSection(comp.BitFlagsOf), true
	case core.Position:
		if sp.Single {
			return valueSection(comp.PositionfOf), true
		}
		return valueSection(comp.PositionOf), true
	case core.Normal:
		if sp.Single {
			return valueSection(comp.NormalfOf), true
		}
		return valueSection(comp.NormalOf), true
	case core.Tangent:
		if sp.Single {
			return valueSection(comp.TangentfOf), true
		}
		return valueSection(comp.TangentOf), true
	case core.Color:
		return valueSection(comp.ColorOf), true
	case core.Quality:
		if sp.Single {
			return valueSection(comp.QualityfOf), true
		}
		return valueSection(comp.QualityOf), true
	case core.Mark:
		return valueSection(comp.MarkOf), true
	case core.PrincipalCurvature:
		return valueSection(comp.PrincipalCurvatureOf), true
	case core.TexCoord:
		return valueSection(comp.TexCoordOf), true
	case core.MaterialIndex:
		return valueSection(comp.MaterialIndexOf), true
	case core.AdjacentVertices:
		return listSection(comp.AdjacentVerticesOf), true
	case core.AdjacentFaces:
		return listSection(comp.AdjacentFacesOf), true
	case core.AdjacentEdges:
		return listSection(comp.AdjacentEdgesOf), true
	case core.VertexReferences:
		return listSection(comp.VertexReferencesOf), true
	case core.WedgeColors:
		return listSection(comp.WedgeColorsOf), true
	case core.WedgeTexCoords:
		return listSection(comp.WedgeTexCoordsOf), true
	default:
		return section{}, false
	}
}

func valueSection[T any](get func(comp.Element) (*T, bool)) section {
	return section{
		encode: func(c mesh.ElementContainer, cd codec.Codec) ([]byte, error) {
			vals := make([]T, c.Size())
			for i := range vals {
				if p, ok := get(c.ElementAt(i)); ok {
					vals[i] = *p
				}
			}
			return codec.EncodeRows(cd, vals)
		},
		decode: func(c mesh.ElementContainer, cd codec.Codec, data []byte) error {
			vals, err := codec.DecodeRows[T](cd, data, c.Size())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCorrupt, err)
			}
			for i, v := range vals {
				if p, ok := get(c.ElementAt(i)); ok {
					*p = v
				}
			}
			return nil
		},
	}
}

func listSection[T any](get func(comp.Element) (comp.List[T], bool)) section {
	return section{
		encode: func(c mesh.ElementContainer, cd codec.Codec) ([]byte, error) {
			vals := make([][]T, c.Size())
			for i := range vals {
				if l, ok := get(c.ElementAt(i)); ok {
					vals[i] = l.Values()
				}
			}
			return codec.EncodeRows(cd, vals)
		},
		decode: func(c mesh.ElementContainer, cd codec.Codec, data []byte) error {
			vals, err := codec.DecodeRows[[]T](cd, data, c.Size())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCorrupt, err)
			}
			for i, v := range vals {
				l, ok := get(c.ElementAt(i))
				if !ok {
					continue
				}
				if !l.IsDynamic() && len(v) != l.Size() {
					return fmt.Errorf("element %d: list of %d entries for fixed size %d: %w", i, len(v), l.Size(), core.ErrIncompatible)
				}
				l.SetAll(v)
			}
			return nil
		},
	}
}
