// Package codec encodes the per-element values of one component as a single
// byte section.
//
// Snapshots write the codec name into their header and Read looks the codec
// up with ByName, so both built-in codecs stay readable whatever Default is.
package codec

import (
	"errors"
	"fmt"
)

// Codec marshals a slice of component values.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ErrRowCount is returned by DecodeRows when the section holds another
// number of rows than the container.
var ErrRowCount = errors.New("codec: row count mismatch")

// ByName returns the built-in codec with the given header name.
func ByName(name string) (Codec, bool) {
	switch name {
	case JSON{}.Name():
		return JSON{}, true
	case GoJSON{}.Name():
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// EncodeRows encodes one value per element.
func EncodeRows[T any](c Codec, rows []T) ([]byte, error) {
	data, err := c.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: encode %d rows: %w", c.Name(), len(rows), err)
	}
	return data, nil
}

// DecodeRows decodes a section written by EncodeRows and checks that it holds
// exactly n rows.
func DecodeRows[T any](c Codec, data []byte, n int) ([]T, error) {
	var rows []T
	if err := c.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%s: decode rows: %w", c.Name(), err)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRowCount, len(rows), n)
	}
	return rows, nil
}
