// Package objects holds the object-serialization exercise: a simple
// shape value and generic JSON round-tripping helpers that restore a
// fully typed value, methods included.
package objects

import (
	"encoding/json"
	"fmt"
)

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns width × height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// ToJSON encodes v as compact JSON text.
func ToJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("objects: encode: %w", err)
	}

	return string(b), nil
}

// FromJSON decodes JSON text into a value of type T, so the result
// carries T's methods (the typed analogue of reviving a prototype).
func FromJSON[T any](data string) (*T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("objects: decode: %w", err)
	}

	return &v, nil
}
