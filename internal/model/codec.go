package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encode renders a snapshot in the JSON interchange format.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return data, nil
}

// Decode parses data produced by Encode into v, which must be a pointer.
func Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return nil
}

// EncodeYAML renders a snapshot as YAML for human consumption.
func EncodeYAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode yaml %T: %w", v, err)
	}
	return data, nil
}
