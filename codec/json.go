package codec

import "encoding/json"

// JSON encodes with encoding/json. Snapshots written by older builds name it
// in their header, so it stays available for reading.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name is "json".
func (JSON) Name() string { return "json" }
