// Package nullable tells apart an absent JSON field from an explicit null.
package nullable

import (
	"bytes"
	"encoding/json"
)

// String is a JSON string field in a partial update.
// Set is false when the key was absent; Value is nil for an explicit null.
type String struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the key was present.
func (s *String) UnmarshalJSON(data []byte) error {
	s.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		s.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.Value = &v
	return nil
}

// MarshalJSON writes the value or null.
func (s String) MarshalJSON() ([]byte, error) {
	if s.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*s.Value)
}

// Of returns a set String holding v.
func Of(v string) String { return String{Set: true, Value: &v} }

// Null returns a set String holding null.
func Null() String { return String{Set: true} }
