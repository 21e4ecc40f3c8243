package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"talk-extract/pkg/agenda"
)

const reportTitle = "IBM Events - Talk Abstracts"

// WriteText writes a human-readable report of talks to path, overwriting any
// existing file. Write failures propagate to the caller.
func WriteText(talks []agenda.Talk, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n%s\n\n", reportTitle, strings.Repeat("=", 50))

	for i, talk := range talks {
		fmt.Fprintf(w, "%d. %s\n", i+1, talk.Title)
		fmt.Fprintf(w, "   Code: %s\n", talk.Code)
		fmt.Fprintf(w, "   Type: %s\n", talk.Type)
		fmt.Fprintf(w, "   Abstract: %s\n", talk.Abstract)
		fmt.Fprintf(w, "%s\n\n", strings.Repeat("-", 80))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
