package testutil

import (
	"testing"

	"github.com/hupe1980/meshcomp/comp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/mesh"
	"github.com/hupe1980/meshcomp/rebase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vertex struct {
	comp.Base
	comp.Positionf
}

type face struct {
	comp.Base
	comp.VertexReferences[comp.Size3]
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	assert.Equal(t, a.Points(10), b.Points(10))
	assert.Equal(t, a.Permutation(10), b.Permutation(10))

	a.Reset()
	c := NewRNG(7)
	assert.Equal(t, c.Intn(1000), a.Intn(1000))
	assert.Equal(t, int64(7), a.Seed())
}

func TestCompactionMapIsValid(t *testing.T) {
	rng := NewRNG(1)
	for range 20 {
		m := rng.CompactionMap(50, 0.3)
		_, err := rebase.Validate(m, 50)
		require.NoError(t, err)
	}
	_, err := rebase.Validate(rng.Permutation(50), 50)
	require.NoError(t, err)
}

func TestGrid(t *testing.T) {
	vs := mesh.NewContainer[vertex](core.Vertex)
	fs := mesh.NewContainer[face](core.Face)

	v0, f0 := Grid(vs, fs, 3, 2)
	assert.Equal(t, core.Index(0), v0)
	assert.Equal(t, core.Index(0), f0)
	assert.Equal(t, 12, vs.Size())
	assert.Equal(t, 12, fs.Size())

	p, _ := comp.PositionfOf(vs.Element(11))
	assert.Equal(t, float32(3), p.X)
	assert.Equal(t, float32(2), p.Y)

	refs, _ := comp.VertexReferencesOf(fs.Element(1))
	assert.Equal(t, []core.Index{0, 5, 4}, refs.Values())

	v1, _ := Grid(vs, fs, 1, 1)
	assert.Equal(t, core.Index(12), v1)
	refs, _ = comp.VertexReferencesOf(fs.Element(13))
	assert.Equal(t, []core.Index{12, 15, 14}, refs.Values())
}
