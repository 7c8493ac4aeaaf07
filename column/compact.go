package column

import "github.com/hupe1980/meshcomp/core"

// CompactSlice moves s[i] to position newIndices[i] and drops the entries
// mapped to core.NullIndex. The surviving positions must form [0, survivors).
//
// Maps that never move a row towards the end are applied in place; any other bijection goes through
// a fresh slice. Entries of newIndices beyond len(s) are ignored. The tail of
// the old slice is zeroed so dropped values can be collected.
func CompactSlice[T any](s []T, newIndices []core.Index) []T {
	n := len(s)
	if len(newIndices) < n {
		n = len(newIndices)
	}

	survivors := 0
	inPlace := true
	for i := 0; i < n; i++ {
		ni := newIndices[i]
		if ni.IsNull() {
			continue
		}
		if int(ni) > i {
			inPlace = false
		}
		survivors++
	}

	if inPlace {
		for i := 0; i < n; i++ {
			if ni := newIndices[i]; !ni.IsNull() {
				s[ni] = s[i]
			}
		}
		clear(s[survivors:])
		return s[:survivors]
	}

	out := make([]T, survivors, cap(s))
	for i := 0; i < n; i++ {
		if ni := newIndices[i]; !ni.IsNull() {
			out[ni] = s[i]
		}
	}
	return out
}
