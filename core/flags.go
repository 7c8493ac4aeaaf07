package core

// Flags is the payload of the bit flags component.
//
// Bit 0 is reserved for deletion and is owned by the container; the remaining
// named bits and the user bits are free for algorithms.
type Flags uint32

const (
	FlagDeleted Flags = 1 << iota
	FlagSelected
	FlagBorder
	FlagVisited
	flagFirstUser
)

// NumUserBits is the number of bits available through UserBit.
const NumUserBits = 28

// Deleted reports the deleted bit.
func (f Flags) Deleted() bool { return f&FlagDeleted != 0 }

// Selected reports the selected bit.
func (f Flags) Selected() bool { return f&FlagSelected != 0 }

// OnBorder reports the border bit.
func (f Flags) OnBorder() bool { return f&FlagBorder != 0 }

// Visited reports the visited bit.
func (f Flags) Visited() bool { return f&FlagVisited != 0 }

// Has reports whether all bits of m are set.
func (f Flags) Has(m Flags) bool { return f&m == m }

// Set sets or clears the bits of m.
func (f *Flags) Set(m Flags, on bool) {
	if on {
		*f |= m
	} else {
		*f &^= m
	}
}

// SetSelected sets the selected bit.
func (f *Flags) SetSelected(on bool) { f.Set(FlagSelected, on) }

// SetOnBorder sets the border bit.
func (f *Flags) SetOnBorder(on bool) { f.Set(FlagBorder, on) }

// SetVisited sets the visited bit.
func (f *Flags) SetVisited(on bool) { f.Set(FlagVisited, on) }

// UserBit reports user bit i. It panics if i is out of range.
func (f Flags) UserBit(i int) bool {
	return f&userMask(i) != 0
}

// SetUserBit sets or clears user bit i. It panics if i is out of range.
func (f *Flags) SetUserBit(i int, on bool) {
	f.Set(userMask(i), on)
}

// Reset clears every bit except the deleted one.
func (f *Flags) Reset() {
	*f &= FlagDeleted
}

func userMask(i int) Flags {
	if i < 0 || i >= NumUserBits {
		panic(&IndexOutOfBoundsError{Index: i, Len: NumUserBits})
	}
	return flagFirstUser << uint(i)
}

// VCG flag bits, used when exchanging flags with VCG based tools.
const (
	VCGDeleted  = 0x0001
	VCGSelected = 0x0020
	VCGBorder0  = 0x0040
	VCGVisited  = 0x0010
)

// FromVCG imports the deleted-independent bits of a VCG flag word.
// Border is set when any of the edge border bits is set.
func (f *Flags) FromVCG(vcg int) {
	f.Reset()
	f.SetSelected(vcg&VCGSelected != 0)
	f.SetVisited(vcg&VCGVisited != 0)
	f.SetOnBorder(vcg&(VCGBorder0|VCGBorder0<<1|VCGBorder0<<2) != 0)
}

// ToVCG exports the flags as a VCG flag word.
func (f Flags) ToVCG() int {
	var vcg int
	if f.Deleted() {
		vcg |= VCGDeleted
	}
	if f.Selected() {
		vcg |= VCGSelected
	}
	if f.Visited() {
		vcg |= VCGVisited
	}
	if f.OnBorder() {
		vcg |= VCGBorder0
	}
	return vcg
}
