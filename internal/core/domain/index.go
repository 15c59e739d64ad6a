package domain

import (
	"encoding/json"
	"fmt"
)

// IndexFile is the fixed name of the index document under a site.
const IndexFile = "index.json"

// ParseIndex decodes an index document into raw records.
// A body that is valid JSON but not an array yields no records.
// Array elements that are not objects become nil records, which
// normalisation drops.
func ParseIndex(data []byte) ([]RawRecord, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	list, ok := doc.([]any)
	if !ok {
		return []RawRecord{}, nil
	}

	records := make([]RawRecord, len(list))
	for i, v := range list {
		if obj, ok := v.(map[string]any); ok {
			records[i] = RawRecord(obj)
		}
	}
	return records, nil
}
