package layout

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encode renders l in the given format.
func Encode(l *Layout, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return json.Marshal(l)
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Decode parses data in the given format. Syntax errors and unknown JSON
// fields are reported as ErrInvalidLayout. Structural checks happen in
// Validate/Import.
func Decode(data []byte, f Format) (*Layout, error) {
	var l Layout
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&l); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return &l, nil
}
