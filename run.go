package main

import (
	"fmt"
	"strings"

	"talk-extract/pkg/agenda"
	"talk-extract/pkg/report"
)

const previewLimit = 200

// run drives the pipeline: extract, write both outputs, print a preview.
// An empty extraction is terminal but not an error; writer failures are.
func run(inputPath, csvPath, textPath string) error {
	fmt.Printf("Extracting talks from %s...\n", inputPath)
	talks := agenda.ExtractTalks(inputPath)

	if len(talks) == 0 {
		fmt.Println("No talks found or error occurred.")
		return nil
	}

	fmt.Printf("Found %d talks.\n", len(talks))

	if err := report.WriteCSV(talks, csvPath); err != nil {
		return fmt.Errorf("writing CSV output: %w", err)
	}
	if err := report.WriteText(talks, textPath); err != nil {
		return fmt.Errorf("writing text output: %w", err)
	}

	fmt.Println("Data saved to:")
	fmt.Printf("- %s (CSV format)\n", csvPath)
	fmt.Printf("- %s (readable text format)\n", textPath)

	fmt.Println("\nPreview of first 3 talks:")
	fmt.Println(strings.Repeat("=", 50))

	for i, talk := range talks {
		if i >= 3 {
			break
		}
		fmt.Printf("\n%d. %s\n", i+1, talk.Title)
		fmt.Printf("   Type: %s\n", talk.Type)
		fmt.Printf("   Abstract: %s\n", previewAbstract(talk.Abstract))
	}

	return nil
}

// previewAbstract truncates to previewLimit characters, marking longer
// abstracts with an ellipsis. Truncation counts runes so multibyte text is
// never split mid-character.
func previewAbstract(abstract string) string {
	runes := []rune(abstract)
	if len(runes) <= previewLimit {
		return abstract
	}
	return string(runes[:previewLimit]) + "..."
}
