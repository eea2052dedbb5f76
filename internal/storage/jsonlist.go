package storage

import (
	"database/sql"
	"encoding/json"
)

// encodeList serializes a string slice for a JSON-array text column.
// A nil slice is stored as "[]" so reads never see NULL.
func encodeList(v []string) string {
	if len(v) == 0 {
		return "[]"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// decodeList deserializes a JSON-array text column. NULL, empty, and
// unparseable values all decode to an empty slice, never an error.
func decodeList(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}
