package meshcomp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/hupe1980/meshcomp/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlProfile = `
name: scan
elements:
  vertex:
    capacity: 64
    optional: [mark, tex_coord]
    custom:
      - name: confidence
        type: float32
  face:
    optional: [color]
`

const tomlProfile = `
name = "scan"

[elements.vertex]
optional = ["mark", "tex_coord"]

[[elements.vertex.custom]]
name = "confidence"
type = "float32"

[elements.face]
optional = ["color"]
`

func assertScanProfile(t *testing.T, m *TriMesh) {
	t.Helper()
	assert.True(t, m.Vertices.IsMarkEnabled())
	assert.True(t, m.Vertices.IsTexCoordEnabled())
	assert.True(t, m.Faces.IsColorEnabled())
	assert.False(t, m.Faces.IsQualityEnabled())

	m.AddVertex(geom.P3(0.0, 0, 0))
	m.AddVertex(geom.P3(1.0, 0, 0))
	col, err := mesh.CustomComponent[float32](m.Vertices, "confidence")
	require.NoError(t, err)
	assert.Equal(t, 2, col.Len())
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format ProfileFormat
	}{
		{"yaml", yamlProfile, YAML},
		{"toml", tomlProfile, TOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProfile([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, "scan", p.Name)
			assert.Equal(t, []string{"color"}, p.Elements["face"].Optional)

			m, err := Tri().Profile(p).Build()
			require.NoError(t, err)
			assertScanProfile(t, m)
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	p, err := ParseProfile([]byte(yamlProfile), YAML)
	require.NoError(t, err)

	for _, format := range []ProfileFormat{YAML, TOML} {
		data, err := p.Marshal(format)
		require.NoError(t, err)
		back, err := ParseProfile(data, format)
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
}

func TestProfileErrors(t *testing.T) {
	_, err := ParseProfile([]byte("name: [unterminated"), YAML)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = FormatOf("scan.json")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	m, err := NewTriMesh()
	require.NoError(t, err)

	bad := &Profile{Elements: map[string]ElementProfile{"cell": {}}}
	assert.ErrorIs(t, bad.Apply(m.Mesh), ErrInvalidProfile)

	bad = &Profile{Elements: map[string]ElementProfile{"edge": {}}}
	assert.ErrorIs(t, bad.Apply(m.Mesh), ErrInvalidProfile)

	bad = &Profile{Elements: map[string]ElementProfile{"vertex": {Optional: []string{"position"}}}}
	assert.ErrorIs(t, bad.Apply(m.Mesh), core.ErrNotOptional)

	bad = &Profile{Elements: map[string]ElementProfile{"vertex": {Optional: []string{"colour"}}}}
	assert.ErrorIs(t, bad.Apply(m.Mesh), core.ErrNotFound)

	bad = &Profile{Elements: map[string]ElementProfile{"vertex": {Custom: []CustomProfile{{Name: "x", Type: "quaternion"}}}}}
	assert.ErrorIs(t, bad.Apply(m.Mesh), core.ErrNotFound)
}

func TestApplyProfileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlProfile), 0o600))

	m, err := NewTriMesh()
	require.NoError(t, err)
	require.NoError(t, ApplyProfileFile(path, m.Mesh, nil))
	assertScanProfile(t, m)

	assert.Error(t, ApplyProfileFile(filepath.Join(dir, "missing.yaml"), m.Mesh, nil))
}
