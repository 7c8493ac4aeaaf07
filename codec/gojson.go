package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes with goccy/go-json. Sections it writes decode with JSON and
// the other way round.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name is "go-json".
func (GoJSON) Name() string { return "go-json" }

// Default is the codec Write uses unless told otherwise.
var Default Codec = GoJSON{}
