package utils

import (
	"encoding/json"
)

// Unmarshal JSON to generic struct
func UnmarshalFromJSON[T any](data []byte, output *T) error {
	return json.Unmarshal(data, output)
}

// UnmarshalListFromJSON decodes a JSON array document. A null document gives an empty list.
func UnmarshalListFromJSON[T any](data []byte) ([]T, error) {
	var list []T
	if err := UnmarshalFromJSON(data, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}
