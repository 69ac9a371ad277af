// Package jsonutil provides generic object/array decoding for API
// payloads with contextual error wrapping.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeObject reads a single JSON object of type T from r.
func DecodeObject[T any](r io.Reader, context string) (T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, fmt.Errorf("%s: %w", context, err)
	}
	return v, nil
}

// DecodeArray reads a JSON array of T from r. An empty or null array
// decodes to a nil slice, not an error.
func DecodeArray[T any](r io.Reader, context string) ([]T, error) {
	var entries []T
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	return entries, nil
}
