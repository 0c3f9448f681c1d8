package util

import (
	"encoding/json"
	"fmt"
)

// CompactJSON serializes a value to its compact JSON encoding, falling back to
// fmt formatting for values that cannot be marshalled.
func CompactJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}
