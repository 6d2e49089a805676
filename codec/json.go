package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Floats are written in their shortest round-trip form, so a report decoded
// from JSON carries exactly the values that were encoded.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// IndentJSON is JSON with two-space indentation, for human-facing output.
type IndentJSON struct{}

// Marshal encodes the value to indented JSON.
func (IndentJSON) Marshal(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

// Unmarshal decodes the JSON data into v.
func (IndentJSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json-indent").
func (IndentJSON) Name() string { return "json-indent" }

// Default is the default codec used by the library.
var Default Codec = JSON{}
