package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONConfig provides centralized JSON configuration for consistent serialization behavior
type JSONConfig struct {
	// DisallowUnknownFields rejects keys the target type does not declare
	DisallowUnknownFields bool
	// UseNumber controls whether numbers should be decoded as json.Number
	UseNumber bool
}

// DefaultConfig returns the default JSON configuration
func DefaultConfig() *JSONConfig {
	return &JSONConfig{
		DisallowUnknownFields: false, // Stored conditions may carry keys written by newer clients
		UseNumber:             false,
	}
}

// StrictConfig returns a strict JSON configuration that disallows unknown fields
func StrictConfig() *JSONConfig {
	return &JSONConfig{
		DisallowUnknownFields: true,
		UseNumber:             false,
	}
}

// Decode decodes a single JSON document using the specified configuration.
// Trailing data after the document is an error.
func Decode(data []byte, v interface{}, config *JSONConfig) error {
	if config == nil {
		config = DefaultConfig()
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	if config.DisallowUnknownFields {
		decoder.DisallowUnknownFields()
	}
	if config.UseNumber {
		decoder.UseNumber()
	}

	if err := decoder.Decode(v); err != nil {
		return err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON document at offset %d", decoder.InputOffset())
	}
	return nil
}

// Encode encodes data to JSON. The configuration is accepted for symmetry with Decode.
func Encode(v interface{}, config *JSONConfig) ([]byte, error) {
	if config == nil {
		config = DefaultConfig()
	}

	return json.Marshal(v)
}
