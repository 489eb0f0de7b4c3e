package ingestion

import (
	"log/slog"
	"strings"

	"github.com/selera/menurec/core"
)

// Field defaults applied at the ingestion boundary.
const (
	defaultIngredients = "Bahan tidak tersedia"
	defaultDescription = "Deskripsi tidak tersedia"
)

// cleanRecords validates and normalizes raw catalog records. Records with an
// unusable title are logged and dropped; everything else is defaulted into a
// consistent shape. Zero IDs are replaced with content-based IDs so re-runs
// of the same catalog produce the same IDs.
func cleanRecords(records []core.MenuRecord, logger *slog.Logger) []core.MenuRecord {
	cleaned := make([]core.MenuRecord, 0, len(records))
	for _, record := range records {
		record.Title = strings.TrimSpace(record.Title)
		record.Ingredients = strings.TrimSpace(record.Ingredients)
		record.Description = strings.TrimSpace(record.Description)
		record.Price = strings.TrimSpace(record.Price)
		record.NumericPrice = core.ParseNumericPrice(record.Price)

		if err := core.ValidateMenuRecord(&record); err != nil {
			logger.Warn("skipping invalid record", "title", record.Title, "err", err)
			continue
		}

		if record.Ingredients == "" {
			record.Ingredients = defaultIngredients
		}
		if record.Description == "" {
			record.Description = defaultDescription
		}
		if record.Id == 0 {
			record.Id = core.IDFromContent(record.Title + "|" + record.Ingredients)
		}

		cleaned = append(cleaned, record)
	}
	return cleaned
}
