package store

import "github.com/hupe1980/meshcomp/core"

// IsBitFlagsEnabled reports whether the bit flags column is enabled.
func (c *Columns) IsBitFlagsEnabled() bool { return c.IsEnabled(core.BitFlags) }

// EnableBitFlags enables the bit flags column.
func (c *Columns) EnableBitFlags() bool { return c.Enable(core.BitFlags) }

// DisableBitFlags disables the bit flags column.
func (c *Columns) DisableBitFlags() bool { return c.Disable(core.BitFlags) }

// IsPositionEnabled reports whether the position column is enabled.
func (c *Columns) IsPositionEnabled() bool { return c.IsEnabled(core.Position) }

// EnablePosition enables the position column.
func (c *Columns) EnablePosition() bool { return c.Enable(core.Position) }

// DisablePosition disables the position column.
func (c *Columns) DisablePosition() bool { return c.Disable(core.Position) }

// IsNormalEnabled reports whether the normal column is enabled.
func (c *Columns) IsNormalEnabled() bool { return c.IsEnabled(core.Normal) }

// EnableNormal enables the normal column.
func (c *Columns) EnableNormal() bool { return c.Enable(core.Normal) }

// DisableNormal disables the normal column.
func (c *Columns) DisableNormal() bool { return c.Disable(core.Normal) }

// IsTangentEnabled reports whether the tangent column is enabled.
func (c *Columns) IsTangentEnabled() bool { return c.IsEnabled(core.Tangent) }

// EnableTangent enables the tangent column.
func (c *Columns) EnableTangent() bool { return c.Enable(core.Tangent) }

// DisableTangent disables the tangent column.
func (c *Columns) DisableTangent() bool { return c.Disable(core.Tangent) }

// IsColorEnabled reports whether the color column is enabled.
func (c *Columns) IsColorEnabled() bool { return c.IsEnabled(core.Color) }

// EnableColor enables the color column.
func (c *Columns) EnableColor() bool { return c.Enable(core.Color) }

// DisableColor disables the color column.
func (c *Columns) DisableColor() bool { return c.Disable(core.Color) }

// IsQualityEnabled reports whether the quality column is enabled.
func (c *Columns) IsQualityEnabled() bool { return c.IsEnabled(core.Quality) }

// EnableQuality enables the quality column.
func (c *Columns) EnableQuality() bool { return c.Enable(core.Quality) }

// DisableQuality disables the quality column.
func (c *Columns) DisableQuality() bool { return c.Disable(core.Quality) }

// IsMarkEnabled reports whether the mark column is enabled.
func (c *Columns) IsMarkEnabled() bool { return c.IsEnabled(core.Mark) }

// EnableMark enables the mark column.
func (c *Columns) EnableMark() bool { return c.Enable(core.Mark) }

// DisableMark disables the mark column.
func (c *Columns) DisableMark() bool { return c.Disable(core.Mark) }

// IsPrincipalCurvatureEnabled reports whether the principal curvature column is enabled.
func (c *Columns) IsPrincipalCurvatureEnabled() bool { return c.IsEnabled(core.PrincipalCurvature) }

// EnablePrincipalCurvature enables the principal curvature column.
func (c *Columns) EnablePrincipalCurvature() bool { return c.Enable(core.PrincipalCurvature) }

// DisablePrincipalCurvature disables the principal curvature column.
func (c *Columns) DisablePrincipalCurvature() bool { return c.Disable(core.PrincipalCurvature) }

// IsTexCoordEnabled reports whether the texture coordinate column is enabled.
func (c *Columns) IsTexCoordEnabled() bool { return c.IsEnabled(core.TexCoord) }

// EnableTexCoord enables the texture coordinate column.
func (c *Columns) EnableTexCoord() bool { return c.Enable(core.TexCoord) }

// DisableTexCoord disables the texture coordinate column.
func (c *Columns) DisableTexCoord() bool { return c.Disable(core.TexCoord) }

// IsMaterialIndexEnabled reports whether the material index column is enabled.
func (c *Columns) IsMaterialIndexEnabled() bool { return c.IsEnabled(core.MaterialIndex) }

// EnableMaterialIndex enables the material index column.
func (c *Columns) EnableMaterialIndex() bool { return c.Enable(core.MaterialIndex) }

// DisableMaterialIndex disables the material index column.
func (c *Columns) DisableMaterialIndex() bool { return c.Disable(core.MaterialIndex) }

// IsAdjacentVerticesEnabled reports whether the adjacent vertices column is enabled.
func (c *Columns) IsAdjacentVerticesEnabled() bool { return c.IsEnabled(core.AdjacentVertices) }

// EnableAdjacentVertices enables the adjacent vertices column.
func (c *Columns) EnableAdjacentVertices() bool { return c.Enable(core.AdjacentVertices) }

// DisableAdjacentVertices disables the adjacent vertices column.
func (c *Columns) DisableAdjacentVertices() bool { return c.Disable(core.AdjacentVertices) }

// IsAdjacentFacesEnabled reports whether the adjacent faces column is enabled.
func (c *Columns) IsAdjacentFacesEnabled() bool { return c.IsEnabled(core.AdjacentFaces) }

// EnableAdjacentFaces enables the adjacent faces column.
func (c *Columns) EnableAdjacentFaces() bool { return c.Enable(core.AdjacentFaces) }

// DisableAdjacentFaces disables the adjacent faces column.
func (c *Columns) DisableAdjacentFaces() bool { return c.Disable(core.AdjacentFaces) }

// IsAdjacentEdgesEnabled reports whether the adjacent edges column is enabled.
func (c *Columns) IsAdjacentEdgesEnabled() bool { return c.IsEnabled(core.AdjacentEdges) }

// EnableAdjacentEdges enables the adjacent edges column.
func (c *Columns) EnableAdjacentEdges() bool { return c.Enable(core.AdjacentEdges) }

// DisableAdjacentEdges disables the adjacent edges column.
func (c *Columns) DisableAdjacentEdges() bool { return c.Disable(core.AdjacentEdges) }

// IsVertexReferencesEnabled reports whether the vertex references column is enabled.
func (c *Columns) IsVertexReferencesEnabled() bool { return c.IsEnabled(core.VertexReferences) }

// EnableVertexReferences enables the vertex references column.
func (c *Columns) EnableVertexReferences() bool { return c.Enable(core.VertexReferences) }

// DisableVertexReferences disables the vertex references column.
func (c *Columns) DisableVertexReferences() bool { return c.Disable(core.VertexReferences) }

// IsWedgeColorsEnabled reports whether the wedge colors column is enabled.
func (c *Columns) IsWedgeColorsEnabled() bool { return c.IsEnabled(core.WedgeColors) }

// EnableWedgeColors enables the wedge colors column.
func (c *Columns) EnableWedgeColors() bool { return c.Enable(core.WedgeColors) }

// DisableWedgeColors disables the wedge colors column.
func (c *Columns) DisableWedgeColors() bool { return c.Disable(core.WedgeColors) }

// IsWedgeTexCoordsEnabled reports whether the wedge texture coordinates column is enabled.
func (c *Columns) IsWedgeTexCoordsEnabled() bool { return c.IsEnabled(core.WedgeTexCoords) }

// EnableWedgeTexCoords enables the wedge texture coordinates column.
func (c *Columns) EnableWedgeTexCoords() bool { return c.Enable(core.WedgeTexCoords) }

// DisableWedgeTexCoords disables the wedge texture coordinates column.
func (c *Columns) DisableWedgeTexCoords() bool { return c.Disable(core.WedgeTexCoords) }
