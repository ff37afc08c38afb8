package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque record identifier assigned by the catalog store. The store
// may hand out numeric or string ids; ID keeps whichever form it received so
// records written back (e.g. a patched stocks array) keep their original type.
type ID struct {
	value   string
	numeric bool
}

// ParseID builds an ID from its textual form, typically a URL path segment.
func ParseID(s string) ID {
	return ID{value: s}
}

// NumericID builds an ID that serializes as a JSON number.
func NumericID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), numeric: true}
}

// String returns the textual form of the id.
func (id ID) String() string { return id.value }

// IsZero reports whether no id has been assigned.
func (id ID) IsZero() bool { return id.value == "" }

// Equal compares ids by their textual form, so 7 and "7" refer to the same record.
func (id ID) Equal(other ID) bool { return id.value == other.value }

// MarshalJSON emits the id as a number or a string, matching how it was received.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.value == "" {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ID{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID{value: s}
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode id %s: %w", string(data), err)
		}
		*id = ID{value: n.String(), numeric: true}
		return nil
	}
}
