package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/meshcomp/comp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/hupe1980/meshcomp/mesh"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0,1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Points generates n points with coordinates in [0, 1).
func (r *RNG) Points(n int) []geom.Point3d {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]geom.Point3d, n)
	for i := range pts {
		pts[i] = geom.P3(r.rand.Float64(), r.rand.Float64(), r.rand.Float64())
	}
	return pts
}

// Permutation returns a random bijection of [0, n) as a compaction map.
func (r *RNG) Permutation(n int) []core.Index {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]core.Index, n)
	for i, p := range r.rand.Perm(n) {
		out[i] = core.Index(p) //nolint:gosec // test sizes fit
	}
	return out
}

// CompactionMap returns a random compaction map for n rows: every row is
// removed with probability removeFrac and the survivors are shuffled.
func (r *RNG) CompactionMap(n int, removeFrac float64) []core.Index {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]core.Index, n)
	var survivors []int
	for i := range out {
		if r.rand.Float64() < removeFrac {
			out[i] = core.NullIndex
			continue
		}
		survivors = append(survivors, i)
	}
	for dst, p := range r.rand.Perm(len(survivors)) {
		out[survivors[p]] = core.Index(dst) //nolint:gosec // test sizes fit
	}
	return out
}

// Grid appends a regular nx by ny grid in the z = 0 plane: (nx+1)*(ny+1)
// vertices and two triangles per cell. It returns the index of the first
// vertex and of the first face.
func Grid[V any, PV interface {
	*V
	comp.Element
}, F any, PF interface {
	*F
	comp.Element
}](vs *mesh.Container[V, PV], fs *mesh.Container[F, PF], nx, ny int) (core.Index, core.Index) {
	v0 := vs.AddN((nx + 1) * (ny + 1))
	for j := range ny + 1 {
		for i := range nx + 1 {
			e := vs.Element(int(v0) + j*(nx+1) + i)
			p := geom.P3(float64(i), float64(j), 0)
			if pos, ok := comp.PositionOf(e); ok {
				*pos = p
			} else if pos, ok := comp.PositionfOf(e); ok {
				*pos = geom.Cast[float32](p)
			}
		}
	}

	at := func(i, j int) core.Index { return v0 + core.Index(j*(nx+1)+i) } //nolint:gosec // test sizes fit
	f0 := fs.AddN(2 * nx * ny)
	f := int(f0)
	for j := range ny {
		for i := range nx {
			comp.SetVertices(fs.Element(f), []core.Index{at(i, j), at(i+1, j), at(i+1, j+1)})
			comp.SetVertices(fs.Element(f+1), []core.Index{at(i, j), at(i+1, j+1), at(i, j+1)})
			f += 2
		}
	}
	return v0, f0
}
