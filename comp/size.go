package comp

// Size is implemented by the size markers of list modules.
// A negative size means the list grows on demand.
type Size interface {
	Size() int
}

// Dynamic marks a growable list.
type Dynamic struct{}

// Size implements Size.
func (Dynamic) Size() int { return -1 }

// Size2 marks a list of exactly two entries.
type Size2 struct{}

// Size implements Size.
func (Size2) Size() int { return 2 }

// Size3 marks a list of exactly three entries.
type Size3 struct{}

// Size implements Size.
func (Size3) Size() int { return 3 }

// Size4 marks a list of exactly four entries.
type Size4 struct{}

// Size implements Size.
func (Size4) Size() int { return 4 }

// DynamicSize is the size reported by Dynamic.
const DynamicSize = -1

func sizeOf[S Size]() int {
	var s S
	return s.Size()
}
