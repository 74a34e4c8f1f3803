package core

import (
	"encoding/json"
	"fmt"
)

// EncodeCollection serializes entries into the slot representation:
// a compact JSON array.
func EncodeCollection(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return data, nil
}

// DecodeCollection parses a slot value. Entries written by older versions
// may lack ids, tags or a category; those fields are left for the caller
// to fill, except that tags are never nil and categories are mapped with
// ParseCategory.
func DecodeCollection(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	for i := range entries {
		entries[i].Category = ParseCategory(string(entries[i].Category))
		if entries[i].Tags == nil {
			entries[i].Tags = []string{}
		}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
