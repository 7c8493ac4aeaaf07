package meshcomp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/custom"
	"github.com/hupe1980/meshcomp/mesh"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Profile declares the optional and custom components of a mesh per element
// kind. Profiles are stored as YAML or TOML:
//
//	name: scan
//	elements:
//	  vertex:
//	    capacity: 100000
//	    optional: [color, mark]
//	    custom:
//	      - {name: confidence, type: float32}
type Profile struct {
	Name     string                    `yaml:"name" toml:"name"`
	Elements map[string]ElementProfile `yaml:"elements" toml:"elements"`
}

// ElementProfile is the part of a Profile for one element kind.
type ElementProfile struct {
	Capacity int             `yaml:"capacity,omitempty" toml:"capacity,omitempty"`
	Optional []string        `yaml:"optional,omitempty" toml:"optional,omitempty"`
	Custom   []CustomProfile `yaml:"custom,omitempty" toml:"custom,omitempty"`
}

// CustomProfile names a custom component and its registered type name
// (see custom.RegisterType).
type CustomProfile struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

// ProfileFormat selects the encoding of a profile.
type ProfileFormat string

const (
	// YAML profiles.
	YAML ProfileFormat = "yaml"
	// TOML profiles.
	TOML ProfileFormat = "toml"
)

// FormatOf returns the profile format implied by the extension of path.
func FormatOf(path string) (ProfileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: unknown profile extension of %q", ErrInvalidProfile, path)
	}
}

// ParseProfile decodes a profile.
func ParseProfile(data []byte, format ProfileFormat) (*Profile, error) {
	var p Profile
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &p)
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&p)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidProfile, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return &p, nil
}

// LoadProfile reads a profile file. The format follows the file extension.
func LoadProfile(path string) (*Profile, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is caller provided
	if err != nil {
		return nil, err
	}
	return ParseProfile(data, format)
}

// Marshal encodes p.
func (p *Profile) Marshal(format ProfileFormat) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(p)
	case TOML:
		return toml.Marshal(p)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidProfile, format)
	}
}

// Apply reserves capacity, enables the optional components and adds the
// custom components listed in p to the containers of m.
func (p *Profile) Apply(m *mesh.Mesh) error {
	for name, ep := range p.Elements {
		k, err := core.ParseElementKind(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
		c, ok := m.Container(k)
		if !ok {
			return fmt.Errorf("%w: mesh has no %s container", ErrInvalidProfile, k)
		}
		if err := ep.apply(c); err != nil {
			return fmt.Errorf("profile %q, %s: %w", p.Name, k, err)
		}
	}
	return nil
}

func (ep ElementProfile) apply(c mesh.ElementContainer) error {
	if ep.Capacity > 0 {
		c.Reserve(ep.Capacity)
	}
	for _, name := range ep.Optional {
		kind, err := core.ParseKind(name)
		if err != nil {
			return err
		}
		if err := c.Enable(kind); err != nil {
			return err
		}
	}
	if len(ep.Custom) == 0 {
		return nil
	}
	r := c.CustomComponents()
	if r == nil {
		return fmt.Errorf("custom components: %w", core.ErrNotFound)
	}
	for _, cp := range ep.Custom {
		if err := custom.AddByTypeName(r, cp.Name, cp.Type); err != nil {
			return err
		}
	}
	return nil
}

// ApplyProfileFile loads the profile at path and applies it to m.
func ApplyProfileFile(path string, m *mesh.Mesh, l *Logger) error {
	if l == nil {
		l = NoopLogger()
	}
	p, err := LoadProfile(path)
	if err == nil {
		err = p.Apply(m)
	}
	name := path
	if p != nil && p.Name != "" {
		name = p.Name
	}
	l.LogProfile(context.Background(), name, err)
	return err
}
