package mesh

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hupe1980/meshcomp/core"
)

// Mesh groups one container per element kind. Compacting any registered
// container rebases the references held by every registered container.
type Mesh struct {
	containers [core.NumElementKinds]ElementContainer
	logger     *slog.Logger
}

// New creates a mesh without containers.
func New(opts ...Option) *Mesh {
	o := applyOptions(opts)
	return &Mesh{logger: o.logger}
}

// Register adds c to the mesh. A mesh holds at most one container per
// element kind and a container belongs to at most one mesh.
func (m *Mesh) Register(c ElementContainer) error {
	k := c.ElementKind()
	if k >= core.NumElementKinds {
		return fmt.Errorf("register %s container: %w", k, core.ErrIncompatible)
	}
	if m.containers[k] != nil {
		return fmt.Errorf("mesh already has a %s container: %w", k, core.ErrIncompatible)
	}
	if err := c.attach(m); err != nil {
		return err
	}
	m.containers[k] = c
	return nil
}

// Container returns the container of element kind k.
func (m *Mesh) Container(k core.ElementKind) (ElementContainer, bool) {
	if k >= core.NumElementKinds || m.containers[k] == nil {
		return nil, false
	}
	return m.containers[k], true
}

// Containers returns the registered containers ordered by element kind.
func (m *Mesh) Containers() []ElementContainer {
	out := make([]ElementContainer, 0, len(m.containers))
	for _, c := range m.containers {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// IsCompact reports whether no container holds deleted elements.
func (m *Mesh) IsCompact() bool {
	for _, c := range m.Containers() {
		if c.Number() != c.Size() {
			return false
		}
	}
	return true
}

// Compact removes the deleted elements of every container.
func (m *Mesh) Compact() error {
	for _, c := range m.Containers() {
		if _, err := c.CompactDeleted(); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every element of every container.
func (m *Mesh) Clear() {
	for _, c := range m.Containers() {
		c.clear(false)
	}
}

// EnableAllOptional enables every optional component of every container.
func (m *Mesh) EnableAllOptional() {
	for _, c := range m.Containers() {
		c.EnableAllOptional()
	}
}

// DisableAllOptional disables every optional component of every container.
func (m *Mesh) DisableAllOptional() {
	for _, c := range m.Containers() {
		c.DisableAllOptional()
	}
}

// Append appends the elements of other, a mesh with the same element types.
// Every reference of the appended elements is shifted by the previous size
// of its target container.
func (m *Mesh) Append(other *Mesh) error {
	for k := range m.containers {
		c, o := m.containers[k], other.containers[k]
		if (c == nil) != (o == nil) || (c != nil && !c.compatible(o)) {
			return fmt.Errorf("append mesh: %s containers differ: %w", core.ElementKind(k), core.ErrIncompatible)
		}
	}

	var offsets [core.NumElementKinds]int
	for k, c := range m.containers {
		if c == nil {
			continue
		}
		first, err := c.appendFrom(other.containers[k])
		if err != nil {
			return err
		}
		offsets[k] = first
	}
	for k, c := range m.containers {
		if c == nil {
			continue
		}
		for t, offset := range offsets {
			if offset > 0 {
				c.shiftReferences(offsets[k], core.ElementKind(t), core.Index(offset))
			}
		}
	}
	m.logger.Debug("mesh appended", "vertices", offsets[core.Vertex], "faces", offsets[core.Face], "edges", offsets[core.Edge])
	return nil
}

// ImportFrom replaces the content of every container with the elements of the
// container of the same kind in src. Containers without a counterpart are
// cleared.
func (m *Mesh) ImportFrom(src *Mesh) error {
	var errs []error
	for _, c := range m.Containers() {
		s, ok := src.Container(c.ElementKind())
		if !ok {
			c.clear(false)
			continue
		}
		if err := c.importFrom(s, false); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Mesh) updateReferences(target core.ElementKind, newIndices []core.Index) {
	for _, c := range m.Containers() {
		c.updateReferences(target, newIndices)
	}
}
