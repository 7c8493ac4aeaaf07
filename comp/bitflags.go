package comp

import (
	"github.com/hupe1980/meshcomp/core"
)

// BitFlags stores the bit flags inside the element.
type BitFlags struct {
	flags core.Flags
}

func (c *BitFlags) flagsSlot(*Base) (*core.Flags, bool) { return &c.flags, true }
func (*BitFlags) flagsSpec() Spec { return Spec{Kind: core.BitFlags, Mode: Horizontal} }

// VerticalBitFlags stores the bit flags in a container column.
type VerticalBitFlags struct{}

func (VerticalBitFlags) flagsSlot(b *Base) (*core.Flags, bool) {
	return verticalSlot[core.Flags](b, core.BitFlags)
}
func (VerticalBitFlags) flagsSpec() Spec { return Spec{Kind: core.BitFlags, Mode: Vertical} }

// OptionalBitFlags stores the bit flags in a container column that can be enabled
// and disabled at run time.
type OptionalBitFlags struct{}

func (OptionalBitFlags) flagsSlot(b *Base) (*core.Flags, bool) {
	return verticalSlot[core.Flags](b, core.BitFlags)
}
func (OptionalBitFlags) flagsSpec() Spec { return Spec{Kind: core.BitFlags, Mode: Optional} }

type flagsHost interface {
	flagsSlot(*Base) (*core.Flags, bool)
}

// BitFlagsOf returns the bit flags of e. It returns false when e has no bit flags,
// when the column is disabled or when e is detached.
func BitFlagsOf(e Element) (*core.Flags, bool) {
	h, ok := e.(flagsHost)
	if !ok {
		return nil, false
	}
	return h.flagsSlot(e.base())
}

// IsBitFlagsEnabled reports whether the bit flags of e is accessible.
func IsBitFlagsEnabled(e Element) bool {
	_, ok := BitFlagsOf(e)
	return ok
}

// IsDeleted reports the deleted bit of e. Elements without bit flags are
// never marked deleted; containers track deletion independently.
func IsDeleted(e Element) bool {
	f, ok := BitFlagsOf(e)
	return ok && f.Deleted()
}

// MarkDeleted sets the deleted bit of e. Containers call it to mirror their
// deleted set.
func MarkDeleted(e Element, on bool) {
	if f, ok := BitFlagsOf(e); ok {
		f.Set(core.FlagDeleted, on)
	}
}
