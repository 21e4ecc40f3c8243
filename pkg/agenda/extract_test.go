package agenda

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agenda.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractTalks(t *testing.T) {
	path := writeFixture(t, `{
		"sectionList": [
			{
				"items": [
					{
						"title": "Kubernetes at Scale",
						"abstract": "<p>Running <b>large</b> clusters &amp; keeping them healthy.</p>",
						"code": "K-101",
						"type": "talk"
					},
					{
						"title": "Hands-on Quantum",
						"type": "workshop"
					}
				]
			},
			{
				"items": [
					{
						"title": "Closing Keynote"
					}
				]
			}
		]
	}`)

	talks := ExtractTalks(path)
	require.Len(t, talks, 3)

	assert.Equal(t, Talk{
		Code:     "K-101",
		Title:    "Kubernetes at Scale",
		Type:     "talk",
		Abstract: "Running large clusters & keeping them healthy.",
	}, talks[0])

	// Fallbacks apply per missing key.
	assert.Equal(t, "Hands-on Quantum", talks[1].Title)
	assert.Equal(t, "No abstract available", talks[1].Abstract)
	assert.Equal(t, "No code", talks[1].Code)
	assert.Equal(t, "workshop", talks[1].Type)

	assert.Equal(t, "Unknown type", talks[2].Type)
}

func TestExtractTalksPreservesDocumentOrder(t *testing.T) {
	path := writeFixture(t, `{
		"sectionList": [
			{"items": [{"title": "z"}, {"title": "a"}]},
			{"items": [{"title": "m"}]},
			{"items": [{"title": "b"}, {"title": "y"}]}
		]
	}`)

	talks := ExtractTalks(path)
	require.Len(t, talks, 5)

	var titles []string
	for _, talk := range talks {
		titles = append(titles, talk.Title)
	}
	assert.Equal(t, []string{"z", "a", "m", "b", "y"}, titles)
}

func TestExtractTalksSkipsItemsWithoutTitle(t *testing.T) {
	path := writeFixture(t, `{
		"sectionList": [
			{"items": [
				{"abstract": "no title here", "code": "X-1", "type": "talk"},
				{"title": "", "code": "X-2"}
			]}
		]
	}`)

	talks := ExtractTalks(path)
	require.Len(t, talks, 1)
	// An empty title still counts: only the missing key skips the item.
	assert.Equal(t, "", talks[0].Title)
	assert.Equal(t, "X-2", talks[0].Code)
}

func TestExtractTalksEmptyShapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no sectionList", content: `{"event": "Think 2024"}`},
		{name: "empty sectionList", content: `{"sectionList": []}`},
		{name: "section without items", content: `{"sectionList": [{"name": "Day 1"}]}`},
		{name: "empty items", content: `{"sectionList": [{"items": []}]}`},
		{name: "top-level array", content: `[1, 2, 3]`},
		{name: "wrong sectionList type", content: `{"sectionList": "oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ExtractTalks(writeFixture(t, tt.content)))
		})
	}
}

func TestExtractTalksMissingFile(t *testing.T) {
	assert.NotPanics(t, func() {
		talks := ExtractTalks(filepath.Join(t.TempDir(), "does-not-exist.json"))
		assert.Empty(t, talks)
	})
}

func TestExtractTalksInvalidJSON(t *testing.T) {
	path := writeFixture(t, `{"sectionList": [`)
	assert.NotPanics(t, func() {
		assert.Empty(t, ExtractTalks(path))
	})
}
