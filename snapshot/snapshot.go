// Package snapshot writes the containers of a mesh to a single binary blob
// and reads them back.
//
// Layout:
//
//	"MCSN" | version u8 | compression u8 | codec name | crc32c(body) u32 | block
//
// The block holds the body, compressed as a whole. The body lists every
// container: element kind, size, the roaring bitmap of deleted rows, one
// section per available component kind and one section per custom component
// (name, registered type name, values). Component values are encoded with the
// codec named in the header.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hupe1980/meshcomp/codec"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/custom"
	"github.com/hupe1980/meshcomp/internal/bitmap"
	"github.com/hupe1980/meshcomp/internal/conv"
	"github.com/hupe1980/meshcomp/internal/hash"
	"github.com/hupe1980/meshcomp/mesh"
)

var (
	// ErrBadMagic is returned when the input is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupported is returned for unknown versions, codecs or compressions.
	ErrUnsupported = errors.New("snapshot: unsupported")
	// ErrCorrupt is returned for truncated or inconsistent input.
	ErrCorrupt = errors.New("snapshot: corrupt")
	// ErrChecksum is returned when the body does not match its checksum.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
	// ErrTooLarge is returned when a section does not fit the format.
	ErrTooLarge = errors.New("snapshot: too large")
)

const (
	magic   = "MCSN"
	version = 1
)

type options struct {
	codec       codec.Codec
	compression Compression
	logger      *slog.Logger
}

// Option configures Write and Read.
type Option func(*options)

// WithCodec sets the codec of component values. Read always uses the codec
// recorded in the snapshot.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithCompression sets the body compression. Defaults to CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{codec: codec.Default}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Write encodes every container of m to w.
func Write(w io.Writer, m *mesh.Mesh, opts ...Option) error {
	o := applyOptions(opts)

	var body encoder
	containers := m.Containers()
	body.u8(uint8(len(containers))) //nolint:gosec // at most core.NumElementKinds
	for _, c := range containers {
		if err := writeContainer(&body, c, o); err != nil {
			return fmt.Errorf("snapshot %s container: %w", c.ElementKind(), err)
		}
	}

	raw := body.buf.Bytes()
	if _, err := conv.IntToUint32(len(raw)); err != nil {
		return fmt.Errorf("%w: body of %d bytes", ErrTooLarge, len(raw))
	}
	block, err := compressBlock(raw, o.compression)
	if err != nil {
		return err
	}

	var head encoder
	head.buf.WriteString(magic)
	head.u8(version)
	head.u8(uint8(o.compression))
	if err := head.str(o.codec.Name()); err != nil {
		return err
	}
	head.u32(hash.CRC32C(raw))
	if err := head.bytes(block); err != nil {
		return err
	}
	if _, err := w.Write(head.buf.Bytes()); err != nil {
		return err
	}

	o.logger.Debug("snapshot written",
		"containers", len(containers),
		"raw_bytes", len(raw),
		"block_bytes", len(block),
		"codec", o.codec.Name(),
		"compression", o.compression.String(),
	)
	return nil
}

func writeContainer(e *encoder, c mesh.ElementContainer, o options) error {
	size, err := conv.IntToUint32(c.Size())
	if err != nil {
		return err
	}
	e.u8(uint8(c.ElementKind()))
	e.u32(size)

	deleted := bitmap.New()
	for i := range c.Size() {
		if c.IsDeleted(i) {
			deleted.Add(core.Index(i))
		}
	}
	db, err := deleted.MarshalBinary()
	if err != nil {
		return err
	}
	if err := e.bytes(db); err != nil {
		return err
	}

	var kinds []core.Kind
	for k := range core.NumKinds {
		if c.IsEnabled(k) {
			kinds = append(kinds, k)
		}
	}
	e.u8(uint8(len(kinds))) //nolint:gosec // at most core.NumKinds
	for _, k := range kinds {
		sec, _ := sectionFor(c, k)
		data, err := sec.encode(c, o.codec)
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		e.u8(uint8(k))
		if err := e.bytes(data); err != nil {
			return err
		}
	}

	return writeCustom(e, c, o)
}

func writeCustom(e *encoder, c mesh.ElementContainer, o options) error {
	r := c.CustomComponents()
	if r == nil {
		e.u32(0)
		return nil
	}

	type entry struct {
		name, typeName string
	}
	var entries []entry
	for _, name := range r.Names() {
		typ, err := r.Type(name)
		if err != nil {
			return err
		}
		tn, ok := custom.TypeName(typ)
		if !ok {
			o.logger.Warn("custom component skipped, type not registered", "name", name, "type", typ.String())
			continue
		}
		entries = append(entries, entry{name: name, typeName: tn})
	}

	e.u32(uint32(len(entries))) //nolint:gosec // bounded by the registry size
	for _, en := range entries {
		vals, err := r.Values(en.name)
		if err != nil {
			return err
		}
		data, err := o.codec.Marshal(vals)
		if err != nil {
			return fmt.Errorf("encode custom component %q: %w", en.name, err)
		}
		if err := e.str(en.name); err != nil {
			return err
		}
		if err := e.str(en.typeName); err != nil {
			return err
		}
		if err := e.bytes(data); err != nil {
			return err
		}
	}
	return nil
}

// Read clears m and fills its containers from the snapshot in r. m must have
// a container for every element kind stored in the snapshot. Components
// that the element types of m lack are skipped.
func Read(r io.Reader, m *mesh.Mesh, opts ...Option) error {
	o := applyOptions(opts)

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d := decoder{data: data}
	if string(d.take(len(magic))) != magic {
		return ErrBadMagic
	}
	if v := d.u8(); v != version {
		return fmt.Errorf("%w: version %d", ErrUnsupported, v)
	}
	compression := Compression(d.u8())
	codecName := d.str()
	sum := d.u32()
	block := d.bytes()
	if err := d.done(); err != nil {
		return err
	}

	cd, ok := codec.ByName(codecName)
	if !ok {
		return fmt.Errorf("%w: codec %q", ErrUnsupported, codecName)
	}
	raw, err := decompressBlock(block, compression)
	if err != nil {
		return err
	}
	if hash.CRC32C(raw) != sum {
		return ErrChecksum
	}

	m.Clear()
	body := decoder{data: raw}
	n := int(body.u8())
	for range n {
		if err := readContainer(&body, m, cd, o); err != nil {
			return err
		}
	}
	if err := body.done(); err != nil {
		return err
	}

	o.logger.Debug("snapshot read", "containers", n, "raw_bytes", len(raw), "codec", codecName)
	return nil
}

func readContainer(d *decoder, m *mesh.Mesh, cd codec.Codec, o options) error {
	kind := core.ElementKind(d.u8())
	size, err := conv.Uint32ToInt(d.u32())
	if err != nil {
		return err
	}
	db := d.bytes()
	if d.err != nil {
		return d.err
	}

	c, ok := m.Container(kind)
	if !ok {
		return fmt.Errorf("mesh has no %s container: %w", kind, core.ErrIncompatible)
	}
	c.Resize(size)

	deleted := bitmap.New()
	if err := deleted.UnmarshalBinary(db); err != nil {
		return fmt.Errorf("%w: deleted rows: %v", ErrCorrupt, err)
	}
	for i := range deleted.Iterator() {
		if int(i) >= size {
			return fmt.Errorf("%w: deleted row %d of %d", ErrCorrupt, i, size)
		}
		c.Delete(int(i))
	}

	var present [core.NumKinds]bool
	nk := int(d.u8())
	for range nk {
		k := core.Kind(d.u8())
		data := d.bytes()
		if d.err != nil {
			return d.err
		}
		if k >= core.NumKinds {
			return fmt.Errorf("%w: component kind %d", ErrCorrupt, k)
		}
		sec, ok := sectionFor(c, k)
		if !ok {
			o.logger.Warn("component skipped", "element", kind.String(), "component", k.String())
			continue
		}
		present[k] = true
		if c.IsOptional(k) {
			if err := c.Enable(k); err != nil {
				return err
			}
		}
		if err := sec.decode(c, cd, data); err != nil {
			return fmt.Errorf("decode %s %s: %w", kind, k, err)
		}
	}

	for _, k := range c.Schema().OptionalKinds() {
		if !present[k] {
			if err := c.Disable(k); err != nil {
				return err
			}
		}
	}

	return readCustom(d, c, cd, o)
}

func readCustom(d *decoder, c mesh.ElementContainer, cd codec.Codec, o options) error {
	n := int(d.u32())
	for range n {
		name := d.str()
		typeName := d.str()
		data := d.bytes()
		if d.err != nil {
			return d.err
		}
		r := c.CustomComponents()
		if r == nil {
			o.logger.Warn("custom component skipped", "element", c.ElementKind().String(), "name", name)
			continue
		}
		if err := custom.AddByTypeName(r, name, typeName); err != nil {
			return err
		}
		if err := r.Decode(name, cd, data); err != nil {
			return fmt.Errorf("decode custom component %q: %w", name, err)
		}
	}
	return nil
}
