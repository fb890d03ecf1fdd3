// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON-serialized text column holding an ordered list of
// strings. It scans from both []byte (Postgres) and string (SQLite).
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals the JSON column into the slice.
func (s *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("StringList: expected []byte or string, got %T", src)
	}
}
