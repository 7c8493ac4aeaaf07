package conv

import (
	"fmt"
	"math"

	"github.com/hupe1980/meshcomp/core"
)

// IntToIndex converts a row count or position to a core.Index.
// NullIndex is reserved and therefore rejected.
func IntToIndex(v int) (core.Index, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to index (negative)", v)
	}
	if uint64(v) > uint64(core.MaxIndex) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to index (too large)", v)
	}
	return core.Index(v), nil
}

// MustIndex is IntToIndex for values bounded by a container size.
// It panics on overflow.
func MustIndex(v int) core.Index {
	i, err := IntToIndex(v)
	if err != nil {
		panic(err)
	}
	return i
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
