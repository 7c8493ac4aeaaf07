package comp

import (
	"github.com/hupe1980/meshcomp/core"
)

// Quality stores the quality inside the element.
type Quality struct {
	quality float64
}

func (c *Quality) qualitySlot(*Base) (*float64, bool) { return &c.quality, true }
func (*Quality) qualitySpec() Spec { return Spec{Kind: core.Quality, Mode: Horizontal} }

// VerticalQuality stores the quality in a container column.
type VerticalQuality struct{}

func (VerticalQuality) qualitySlot(b *Base) (*float64, bool) {
	return verticalSlot[float64](b, core.Quality)
}
func (VerticalQuality) qualitySpec() Spec { return Spec{Kind: core.Quality, Mode: Vertical} }

// OptionalQuality stores the quality in a container column that can be enabled
// and disabled at run time.
type OptionalQuality struct{}

func (OptionalQuality) qualitySlot(b *Base) (*float64, bool) {
	return verticalSlot[float64](b, core.Quality)
}
func (OptionalQuality) qualitySpec() Spec { return Spec{Kind: core.Quality, Mode: Optional} }

// Qualityf stores the single precision quality inside the element.
type Qualityf struct {
	qualityf float32
}

func (c *Qualityf) qualityfSlot(*Base) (*float32, bool) { return &c.qualityf, true }
func (*Qualityf) qualitySpec() Spec { return Spec{Kind: core.Quality, Mode: Horizontal, Single: true} }

// VerticalQualityf stores the single precision quality in a container column.
type VerticalQualityf struct{}

func (VerticalQualityf) qualityfSlot(b *Base) (*float32, bool) {
	return verticalSlot[float32](b, core.Quality)
}
func (VerticalQualityf) qualitySpec() Spec { return Spec{Kind: core.Quality, Mode: Vertical, Single: true} }

// OptionalQualityf stores the single precision quality in a container column that can be enabled
// and disabled at run time.
type OptionalQualityf struct{}

func (OptionalQualityf) qualityfSlot(b *Base) (*float32, bool) {
	return verticalSlot[float32](b, core.Quality)
}
func (OptionalQualityf) qualitySpec() Spec { return Spec{Kind: core.Quality, Mode: Optional, Single: true} }

type qualityHost interface {
	qualitySlot(*Base) (*float64, bool)
}

// QualityOf returns the quality of e. It returns false when e has no quality,
// when the column is disabled or when e is detached.
func QualityOf(e Element) (*float64, bool) {
	h, ok := e.(qualityHost)
	if !ok {
		return nil, false
	}
	return h.qualitySlot(e.base())
}

type qualityfHost interface {
	qualityfSlot(*Base) (*float32, bool)
}

// QualityfOf returns the single precision quality of e. It returns false when e has no single precision quality,
// when the column is disabled or when e is detached.
func QualityfOf(e Element) (*float32, bool) {
	h, ok := e.(qualityfHost)
	if !ok {
		return nil, false
	}
	return h.qualityfSlot(e.base())
}

// IsQualityEnabled reports whether e has an accessible quality of either precision.
func IsQualityEnabled(e Element) bool {
	_, ok := qualityValue(e)
	return ok
}

func qualityValue(e Element) (float64, bool) {
	if q, ok := QualityOf(e); ok {
		return *q, true
	}
	if q, ok := QualityfOf(e); ok {
		return float64(*q), true
	}
	return 0, false
}

func setQuality(e Element, v float64) bool {
	if q, ok := QualityOf(e); ok {
		*q = v
		return true
	}
	if q, ok := QualityfOf(e); ok {
		*q = float32(v)
		return true
	}
	return false
}
