package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// StringList is a list of strings persisted as JSON text in a single column.
// Empty lists are stored as NULL; reads never fail on malformed content.
type StringList []string

// EncodeStringList serializes a list for storage. Empty and nil lists encode to nil.
func EncodeStringList(list []string) *string {
	if len(list) == 0 {
		return nil
	}
	// Marshalling a []string cannot fail.
	b, _ := json.Marshal(list)
	s := string(b)
	return &s
}

// DecodeStringList parses stored text back into a list. Absent, blank or
// malformed input yields an empty, non-nil list.
func DecodeStringList(text *string) []string {
	if text == nil || strings.TrimSpace(*text) == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(*text), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	encoded := EncodeStringList(l)
	if encoded == nil {
		return nil, nil
	}
	return *encoded, nil
}

// Scan implements sql.Scanner. It always succeeds.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*l = DecodeStringList(&v)
	case []byte:
		s := string(v)
		*l = DecodeStringList(&s)
	default:
		*l = StringList{}
	}
	return nil
}

// MarshalJSON renders nil as an empty array.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
