package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is the canonical product/category identifier. Source documents carry ids as
// either JSON strings or numbers; both decode to the same ID ("1" and 1 are equal).
type ID string

func (id ID) String() string { return string(id) }

// IsZero reports whether the id is missing.
func (id ID) IsZero() bool { return id == "" }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("catalog id: %w", err)
	}
	*id = ID(canonicalNumber(n))
	return nil
}

// canonicalNumber renders a JSON number the way it prints as text: 1.0 and 1 are "1".
func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return n.String()
}

// ParseID converts a decoded JSON value into an ID. Unsupported types yield "".
func ParseID(v interface{}) ID {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return ID(val)
	case ID:
		return val
	case json.Number:
		return ID(canonicalNumber(val))
	case float64:
		return ID(strconv.FormatFloat(val, 'f', -1, 64))
	case float32:
		return ID(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case int:
		return ID(strconv.Itoa(val))
	case int64:
		return ID(strconv.FormatInt(val, 10))
	case uint:
		return ID(strconv.FormatUint(uint64(val), 10))
	case uint64:
		return ID(strconv.FormatUint(val, 10))
	}
	return ""
}
