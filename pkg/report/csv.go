// Package report serializes extracted talks to their output formats.
package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"talk-extract/pkg/agenda"
)

// Header shares the fixed column order between the writer and its tests.
var Header = []string{"code", "title", "type", "abstract"}

// WriteCSV writes talks to path as UTF-8 CSV with a header row, overwriting
// any existing file. Unlike extraction, write failures propagate to the
// caller.
func WriteCSV(talks []agenda.Talk, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, talk := range talks {
		record := []string{talk.Code, talk.Title, talk.Type, talk.Abstract}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
