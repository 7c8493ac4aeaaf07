package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how the snapshot body is compressed.
type Compression uint8

const (
	// CompressionNone stores the body as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression.
	CompressionLZ4 Compression = 1
	// CompressionZstd uses zstd.
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression parses the String form of a compression.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", ErrUnsupported, s)
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(math.MaxUint32))
	return dec
}

// blockHeaderSize is [raw size uint32][stored size uint32]. A stored size of
// 0 means the block is not compressed.
const blockHeaderSize = 8

// maxLZ4Ratio is the largest expansion an LZ4 block can encode.
const maxLZ4Ratio = 255

// zstdSizeHint caps the buffer preallocated for a zstd block. Larger blocks
// grow while decoding.
const zstdSizeHint = 1 << 20

// compressBlock frames data as a single block. Blocks that do not shrink
// below 90% of their size are stored raw.
func compressBlock(data []byte, c Compression) ([]byte, error) {
	var packed []byte
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		packed = buf[:n]
	case CompressionZstd:
		enc := getZstdEncoder()
		packed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
	}

	raw := len(packed) == 0 || float64(len(packed)) > float64(len(data))*0.9
	payload := packed
	if raw {
		payload = data
	}
	out := make([]byte, blockHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data))) //nolint:gosec // body size checked by the writer
	if !raw {
		binary.LittleEndian.PutUint32(out[4:], uint32(len(packed))) //nolint:gosec // bounded by the body size
	}
	copy(out[blockHeaderSize:], payload)
	return out, nil
}

func decompressBlock(block []byte, c Compression) ([]byte, error) {
	if len(block) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block header truncated", ErrCorrupt)
	}
	rawSize := int(binary.LittleEndian.Uint32(block[0:]))
	storedSize := int(binary.LittleEndian.Uint32(block[4:]))
	data := block[blockHeaderSize:]

	if storedSize == 0 {
		if len(data) != rawSize {
			return nil, fmt.Errorf("%w: raw block has %d bytes, want %d", ErrCorrupt, len(data), rawSize)
		}
		return data, nil
	}
	if len(data) != storedSize {
		return nil, fmt.Errorf("%w: block has %d bytes, want %d", ErrCorrupt, len(data), storedSize)
	}

	switch c {
	case CompressionLZ4:
		if rawSize > storedSize*maxLZ4Ratio {
			return nil, fmt.Errorf("%w: lz4 block claims %d bytes from %d", ErrCorrupt, rawSize, storedSize)
		}
		out := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
		}
		if n != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, nil
	case CompressionZstd:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		decoded, err := dec.DecodeAll(data, make([]byte, 0, min(rawSize, zstdSizeHint)))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}
		if len(decoded) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
	}
}
