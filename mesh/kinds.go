package mesh

import "github.com/hupe1980/meshcomp/core"

// IsBitFlagsEnabled reports whether the bit flags component is available.
func (c *Container[E, PE]) IsBitFlagsEnabled() bool { return c.IsEnabled(core.BitFlags) }

// EnableBitFlags enables the optional bit flags component.
func (c *Container[E, PE]) EnableBitFlags() error { return c.Enable(core.BitFlags) }

// DisableBitFlags disables the optional bit flags component.
func (c *Container[E, PE]) DisableBitFlags() error { return c.Disable(core.BitFlags) }

// IsPositionEnabled reports whether the position component is available.
func (c *Container[E, PE]) IsPositionEnabled() bool { return c.IsEnabled(core.Position) }

// EnablePosition enables the optional position component.
func (c *Container[E, PE]) EnablePosition() error { return c.Enable(core.Position) }

// DisablePosition disables the optional position component.
func (c *Container[E, PE]) DisablePosition() error { return c.Disable(core.Position) }

// IsNormalEnabled reports whether the normal component is available.
func (c *Container[E, PE]) IsNormalEnabled() bool { return c.IsEnabled(core.Normal) }

// EnableNormal enables the optional normal component.
func (c *Container[E, PE]) EnableNormal() error { return c.Enable(core.Normal) }

// DisableNormal disables the optional normal component.
func (c *Container[E, PE]) DisableNormal() error { return c.Disable(core.Normal) }

// IsTangentEnabled reports whether the tangent component is available.
func (c *Container[E, PE]) IsTangentEnabled() bool { return c.IsEnabled(core.Tangent) }

// EnableTangent enables the optional tangent component.
func (c *Container[E, PE]) EnableTangent() error { return c.Enable(core.Tangent) }

// DisableTangent disables the optional tangent component.
func (c *Container[E, PE]) DisableTangent() error { return c.Disable(core.Tangent) }

// IsColorEnabled reports whether the color component is available.
func (c *Container[E, PE]) IsColorEnabled() bool { return c.IsEnabled(core.Color) }

// EnableColor enables the optional color component.
func (c *Container[E, PE]) EnableColor() error { return c.Enable(core.Color) }

// DisableColor disables the optional color component.
func (c *Container[E, PE]) DisableColor() error { return c.Disable(core.Color) }

// IsQualityEnabled reports whether the quality component is available.
func (c *Container[E, PE]) IsQualityEnabled() bool { return c.IsEnabled(core.Quality) }

// EnableQuality enables the optional quality component.
func (c *Container[E, PE]) EnableQuality() error { return c.Enable(core.Quality) }

// DisableQuality disables the optional quality component.
func (c *Container[E, PE]) DisableQuality() error { return c.Disable(core.Quality) }

// IsMarkEnabled reports whether the mark component is available.
func (c *Container[E, PE]) IsMarkEnabled() bool { return c.IsEnabled(core.Mark) }

// EnableMark enables the optional mark component.
func (c *Container[E, PE]) EnableMark() error { return c.Enable(core.Mark) }

// DisableMark disables the optional mark component.
func (c *Container[E, PE]) DisableMark() error { return c.Disable(core.Mark) }

// IsPrincipalCurvatureEnabled reports whether the principal curvature component is available.
func (c *Container[E, PE]) IsPrincipalCurvatureEnabled() bool { return c.IsEnabled(core.PrincipalCurvature) }

// EnablePrincipalCurvature enables the optional principal curvature component.
func (c *Container[E, PE]) EnablePrincipalCurvature() error { return c.Enable(core.PrincipalCurvature) }

// DisablePrincipalCurvature disables the optional principal curvature component.
func (c *Container[E, PE]) DisablePrincipalCurvature() error { return c.Disable(core.PrincipalCurvature) }

// IsTexCoordEnabled reports whether the tex coord component is available.
func (c *Container[E, PE]) IsTexCoordEnabled() bool { return c.IsEnabled(core.TexCoord) }

// EnableTexCoord enables the optional tex coord component.
func (c *Container[E, PE]) EnableTexCoord() error { return c.Enable(core.TexCoord) }

// DisableTexCoord disables the optional tex coord component.
func (c *Container[E, PE]) DisableTexCoord() error { return c.Disable(core.TexCoord) }

// IsMaterialIndexEnabled reports whether the material index component is available.
func (c *Container[E, PE]) IsMaterialIndexEnabled() bool { return c.IsEnabled(core.MaterialIndex) }

// EnableMaterialIndex enables the optional material index component.
func (c *Container[E, PE]) EnableMaterialIndex() error { return c.Enable(core.MaterialIndex) }

// DisableMaterialIndex disables the optional material index component.
func (c *Container[E, PE]) DisableMaterialIndex() error { return c.Disable(core.MaterialIndex) }

// IsAdjacentVerticesEnabled reports whether the adjacent vertices component is available.
func (c *Container[E, PE]) IsAdjacentVerticesEnabled() bool { return c.IsEnabled(core.AdjacentVertices) }

// EnableAdjacentVertices enables the optional adjacent vertices component.
func (c *Container[E, PE]) EnableAdjacentVertices() error { return c.Enable(core.AdjacentVertices) }

// DisableAdjacentVertices disables the optional adjacent vertices component.
func (c *Container[E, PE]) DisableAdjacentVertices() error { return c.Disable(core.AdjacentVertices) }

// IsAdjacentFacesEnabled reports whether the adjacent faces component is available.
func (c *Container[E, PE]) IsAdjacentFacesEnabled() bool { return c.IsEnabled(core.AdjacentFaces) }

// EnableAdjacentFaces enables the optional adjacent faces component.
func (c *Container[E, PE]) EnableAdjacentFaces() error { return c.Enable(core.AdjacentFaces) }

// DisableAdjacentFaces disables the optional adjacent faces component.
func (c *Container[E, PE]) DisableAdjacentFaces() error { return c.Disable(core.AdjacentFaces) }

// IsAdjacentEdgesEnabled reports whether the adjacent edges component is available.
func (c *Container[E, PE]) IsAdjacentEdgesEnabled() bool { return c.IsEnabled(core.AdjacentEdges) }

// EnableAdjacentEdges enables the optional adjacent edges component.
func (c *Container[E, PE]) EnableAdjacentEdges() error { return c.Enable(core.AdjacentEdges) }

// DisableAdjacentEdges disables the optional adjacent edges component.
func (c *Container[E, PE]) DisableAdjacentEdges() error { return c.Disable(core.AdjacentEdges) }

// IsVertexReferencesEnabled reports whether the vertex references component is available.
func (c *Container[E, PE]) IsVertexReferencesEnabled() bool { return c.IsEnabled(core.VertexReferences) }

// EnableVertexReferences enables the optional vertex references component.
func (c *Container[E, PE]) EnableVertexReferences() error { return c.Enable(core.VertexReferences) }

// DisableVertexReferences disables the optional vertex references component.
func (c *Container[E, PE]) DisableVertexReferences() error { return c.Disable(core.VertexReferences) }

// IsWedgeColorsEnabled reports whether the wedge colors component is available.
func (c *Container[E, PE]) IsWedgeColorsEnabled() bool { return c.IsEnabled(core.WedgeColors) }

// EnableWedgeColors enables the optional wedge colors component.
func (c *Container[E, PE]) EnableWedgeColors() error { return c.Enable(core.WedgeColors) }

// DisableWedgeColors disables the optional wedge colors component.
func (c *Container[E, PE]) DisableWedgeColors() error { return c.Disable(core.WedgeColors) }

// IsWedgeTexCoordsEnabled reports whether the wedge tex coords component is available.
func (c *Container[E, PE]) IsWedgeTexCoordsEnabled() bool { return c.IsEnabled(core.WedgeTexCoords) }

// EnableWedgeTexCoords enables the optional wedge tex coords component.
func (c *Container[E, PE]) EnableWedgeTexCoords() error { return c.Enable(core.WedgeTexCoords) }

// DisableWedgeTexCoords disables the optional wedge tex coords component.
func (c *Container[E, PE]) DisableWedgeTexCoords() error { return c.Disable(core.WedgeTexCoords) }
