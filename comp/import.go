package comp

import (
	"github.com/hupe1980/meshcomp/core"
)

// ImportFrom copies every component that both dst and src have and that is
// accessible in both. Components missing or disabled on either side are left
// untouched. Positions, normals, tangents and qualities are converted between single
// and double precision. Lists follow the list import policy and are skipped
// when their fixed sizes differ. Growable vertex references of dst are
// resized to the source vertex count first, together with their tied lists.
//
// References are copied as they are: they stay meaningful when the
// containers of dst and src are imported as a whole.
// Custom components are imported by the container.
func ImportFrom(dst, src Element) {
	if d, ok := BitFlagsOf(dst); ok {
		if s, ok := BitFlagsOf(src); ok {
			*d = *s
		}
	}
	if v, ok := positionValue(src); ok {
		setPosition(dst, v)
	}
	if v, ok := normalValue(src); ok {
		setNormal(dst, v)
	}
	if v, ok := tangentValue(src); ok {
		setTangent(dst, v)
	}
	importValue(dst, src, ColorOf)
	if v, ok := qualityValue(src); ok {
		setQuality(dst, v)
	}
	importValue(dst, src, MarkOf)
	importValue(dst, src, PrincipalCurvatureOf)
	importValue(dst, src, TexCoordOf)
	importValue(dst, src, MaterialIndexOf)

	if d, ok := VertexReferencesOf(dst); ok && d.IsDynamic() {
		if s, ok := VertexReferencesOf(src); ok {
			ResizeVertices(dst, s.Len())
		}
	}

	importListOf(dst, src, AdjacentVerticesOf)
	importListOf(dst, src, AdjacentFacesOf)
	importListOf(dst, src, AdjacentEdgesOf)
	importListOf(dst, src, VertexReferencesOf)
	importListOf(dst, src, WedgeColorsOf)
	importListOf(dst, src, WedgeTexCoordsOf)
}

func importValue[T any](dst, src Element, get func(Element) (*T, bool)) {
	d, ok := get(dst)
	if !ok {
		return
	}
	if s, ok := get(src); ok {
		*d = *s
	}
}

func importListOf[T any](dst, src Element, get func(Element) (List[T], bool)) {
	d, ok := get(dst)
	if !ok {
		return
	}
	if s, ok := get(src); ok {
		importList(d, s)
	}
}

// IsEnabled reports whether component kind k of e is accessible.
func IsEnabled(e Element, k core.Kind) bool {
	switch k {
	case core.BitFlags:
		return IsBitFlagsEnabled(e)
	case core.Position:
		return IsPositionEnabled(e)
	case core.Normal:
		return IsNormalEnabled(e)
	case core.Tangent:
		return IsTangentEnabled(e)
	case core.Color:
		return IsColorEnabled(e)
	case core.Quality:
		return IsQualityEnabled(e)
	case core.Mark:
		return IsMarkEnabled(e)
	case core.PrincipalCurvature:
		return IsPrincipalCurvatureEnabled(e)
	case core.TexCoord:
		return IsTexCoordEnabled(e)
	case core.MaterialIndex:
		return IsMaterialIndexEnabled(e)
	case core.AdjacentVertices:
		return IsAdjacentVerticesEnabled(e)
	case core.AdjacentFaces:
		return IsAdjacentFacesEnabled(e)
	case core.AdjacentEdges:
		return IsAdjacentEdgesEnabled(e)
	case core.VertexReferences:
		return IsVertexReferencesEnabled(e)
	case core.WedgeColors:
		return IsWedgeColorsEnabled(e)
	case core.WedgeTexCoords:
		return IsWedgeTexCoordsEnabled(e)
	case core.Custom:
		_, _, err := registryOf(e)
		return err == nil
	}
	return false
}
