package snapshot

import (
	"encoding/binary"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockRoundTrip(t *testing.T) {
	data := make([]byte, 4<<20)
	for i := 0; i < len(data); i += 4096 {
		data[i] = byte(i >> 12)
	}
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			block, err := compressBlock(data, c)
			require.NoError(t, err)
			got, err := decompressBlock(block, c)
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestDecompressRejectsOversizedClaim(t *testing.T) {
	block := make([]byte, blockHeaderSize+4)
	binary.LittleEndian.PutUint32(block[0:], 1<<30)
	binary.LittleEndian.PutUint32(block[4:], 4)
	copy(block[blockHeaderSize:], []byte{0xde, 0xad, 0xbe, 0xef})

	for _, c := range []Compression{CompressionLZ4, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			_, err := decompressBlock(block, c)
			runtime.ReadMemStats(&after)

			assert.ErrorIs(t, err, ErrCorrupt)
			assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(64<<20))
		})
	}
}
