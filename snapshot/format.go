package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/meshcomp/internal/conv"
)

// encoder appends little endian primitives to a buffer.
type encoder struct {
	buf bytes.Buffer
	tmp [8]byte
}

func (e *encoder) u8(v uint8) { e.buf.WriteByte(v) }

func (e *encoder) u32(v uint32) {
	binary.LittleEndian.PutUint32(e.tmp[:4], v)
	e.buf.Write(e.tmp[:4])
}

func (e *encoder) bytes(b []byte) error {
	n, err := conv.IntToUint32(len(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTooLarge, err)
	}
	e.u32(n)
	e.buf.Write(b)
	return nil
}

func (e *encoder) str(s string) error { return e.bytes([]byte(s)) }

// decoder reads what encoder wrote. The first short read sticks in err and
// every later read returns zero values.
type decoder struct {
	data []byte
	off  int
	err  error
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || len(d.data)-d.off < n {
		d.err = fmt.Errorf("%w: need %d bytes at offset %d", ErrCorrupt, n, d.off)
		return nil
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b
}

func (d *decoder) u8() uint8 {
	if b := d.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (d *decoder) u32() uint32 {
	if b := d.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (d *decoder) bytes() []byte {
	n := d.u32()
	return d.take(int(n))
}

func (d *decoder) str() string { return string(d.bytes()) }

func (d *decoder) done() error {
	if d.err != nil {
		return d.err
	}
	if d.off != len(d.data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(d.data)-d.off)
	}
	return nil
}
