// Package agenda extracts session records from an event agenda JSON export.
package agenda

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"talk-extract/pkg/logger"
	"talk-extract/pkg/sanitize"
)

// Talk is one normalized agenda entry. Field order matters for serialization.
type Talk struct {
	Code     string
	Title    string
	Type     string
	Abstract string
}

// ExtractTalks reads the agenda JSON at path and returns its sessions in
// document order. Input problems (missing file, bad JSON, anything else)
// are logged and yield an empty slice rather than an error.
func ExtractTalks(path string) []Talk {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Errorf("file %q not found", path)
		} else {
			logger.Errorf("reading %q: %v", path, err)
		}
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Errorf("invalid JSON in file %q: %v", path, err)
		return nil
	}

	// Anything that is not the expected object shape contributes zero
	// records rather than failing.
	root, _ := doc.(map[string]any)

	var talks []Talk
	sections, _ := root["sectionList"].([]any)
	for _, s := range sections {
		section, _ := s.(map[string]any)
		items, _ := section["items"].([]any)
		for _, it := range items {
			item, _ := it.(map[string]any)
			if _, ok := item["title"]; !ok {
				continue
			}
			talks = append(talks, Talk{
				Title:    stringField(item, "title", "No title"),
				Abstract: sanitize.Clean(stringField(item, "abstract", "No abstract available")),
				Code:     stringField(item, "code", "No code"),
				Type:     stringField(item, "type", "Unknown type"),
			})
		}
	}

	return talks
}

// stringField looks up key in item, falling back only when the key is
// absent. Present non-string values are coerced rather than dropped.
func stringField(item map[string]any, key, fallback string) string {
	v, ok := item[key]
	if !ok {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
