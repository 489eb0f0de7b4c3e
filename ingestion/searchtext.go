package ingestion

import (
	"sort"
	"strings"

	"github.com/selera/menurec/core"
	"github.com/selera/menurec/feature"
)

// Search-text weights. Repetition biases the embedding toward the title, then
// ingredients, then the long-form description.
const (
	titleWeight       = 10
	ingredientsWeight = 5
	descriptionWeight = 2
	tagWeight         = 3
)

// BuildSearchText constructs the weighted text a record is embedded under.
// Extracted tags from the title and ingredients are appended so the embedding
// also carries the record's categorical identity. Falls back to "makanan"
// when the record yields no text at all.
func BuildSearchText(extractor *feature.Extractor, record *core.MenuRecord) string {
	var parts []string

	appendRepeated := func(text string, weight int) {
		text = feature.Normalize(text)
		if text == "" {
			return
		}
		for i := 0; i < weight; i++ {
			parts = append(parts, text)
		}
	}

	appendRepeated(record.Title, titleWeight)
	appendRepeated(record.Ingredients, ingredientsWeight)
	appendRepeated(record.Description, descriptionWeight)

	features := extractor.Extract(record.Title + " " + record.Ingredients)
	tags := make([]string, 0, features.TotalValues())
	for _, values := range features {
		tags = append(tags, values...)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		appendRepeated(strings.ReplaceAll(tag, "_", " "), tagWeight)
	}

	if len(parts) == 0 {
		return "makanan"
	}
	return strings.Join(parts, " ")
}
