package ingestion

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/selera/menurec/ai/mock"
	"github.com/selera/menurec/core"
	"github.com/selera/menurec/feature"
	"github.com/selera/menurec/storage"
	"github.com/selera/menurec/storage/badger"
	"github.com/selera/menurec/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *feature.Extractor {
	t.Helper()
	extractor, err := feature.NewExtractor(taxonomy.Default())
	require.NoError(t, err)
	return extractor
}

func newTestPipeline(t *testing.T, embedder *mock.Embedder) (*Pipeline, storage.CatalogRepository) {
	t.Helper()

	repo, err := badger.NewMemoryCatalogRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	pipeline, err := NewPipeline(repo, embedder, newTestExtractor(t), WithBatchSize(2))
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return pipeline, repo
}

func rawCatalog() []core.MenuRecord {
	return []core.MenuRecord{
		{
			Title:       "Ayam Bakar Madu",
			Ingredients: "ayam, madu, kecap manis",
			Description: "Ayam bakar dengan olesan madu",
			Price:       "Rp 35.000",
		},
		{
			Title:       "Ikan Bakar Sambal",
			Ingredients: "ikan laut, sambal, jeruk nipis",
			Price:       "28000",
		},
		{
			Title: "Tahu Goreng Crispy",
		},
		{
			Title:       "Rendang Sapi",
			Ingredients: "daging sapi, santan, rempah",
			Description: "Daging sapi dimasak lama dengan bumbu padang",
			Price:       "Rp 45.000",
		},
		{
			Title:       "Soto Ayam Lamongan",
			Ingredients: "ayam suwir, kuah kunyit, koya",
			Price:       "Rp 20.000",
		},
	}
}

func TestIngestBuildsSnapshot(t *testing.T) {
	pipeline, repo := newTestPipeline(t, mock.NewEmbedder())
	ctx := context.Background()

	snapshot, err := pipeline.Ingest(ctx, rawCatalog())
	require.NoError(t, err)
	require.Len(t, snapshot.Records, 5)

	for _, record := range snapshot.Records {
		assert.Len(t, record.Vector, mock.Dimensions, record.Title)
		assert.NotZero(t, record.Id, record.Title)
	}

	// Numeric prices derived at the boundary
	assert.Equal(t, 35000, snapshot.Records[0].NumericPrice)
	assert.Equal(t, 28000, snapshot.Records[1].NumericPrice)
	assert.Equal(t, 0, snapshot.Records[2].NumericPrice)

	// Empty fields defaulted
	assert.Equal(t, defaultIngredients, snapshot.Records[2].Ingredients)
	assert.Equal(t, defaultDescription, snapshot.Records[2].Description)

	// The snapshot is persisted and current
	current, err := repo.CurrentSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Metadata.Version, current.Metadata.Version)
	assert.Equal(t, 5, current.Metadata.TotalRecords)
	assert.False(t, current.Metadata.LastUpdated.IsZero())
}

func TestIngestEmbedsExpandedSearchText(t *testing.T) {
	var mu sync.Mutex
	var captured []string
	embedder := mock.NewEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		mu.Lock()
		captured = append(captured, texts...)
		mu.Unlock()
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{1, 0, 0, 0}
		}
		return vectors, nil
	}
	pipeline, _ := newTestPipeline(t, embedder)

	_, err := pipeline.Ingest(context.Background(), rawCatalog())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	var ayam string
	for _, text := range captured {
		if strings.Contains(text, "madu") {
			ayam = text
		}
	}
	require.NotEmpty(t, ayam)

	// Cross-language synonyms ride along with the weighted record text.
	assert.Contains(t, ayam, "chicken")
	assert.Contains(t, ayam, "grilled")
}

func TestIngestDeterministicIDs(t *testing.T) {
	pipeline, _ := newTestPipeline(t, mock.NewEmbedder())
	ctx := context.Background()

	first, err := pipeline.Ingest(ctx, rawCatalog())
	require.NoError(t, err)
	second, err := pipeline.Ingest(ctx, rawCatalog())
	require.NoError(t, err)

	for i := range first.Records {
		assert.Equal(t, first.Records[i].Id, second.Records[i].Id)
	}
}

func TestIngestSkipsInvalidRecords(t *testing.T) {
	pipeline, _ := newTestPipeline(t, mock.NewEmbedder())

	records := append(rawCatalog(), core.MenuRecord{Title: "ok"}, core.MenuRecord{Title: "   "})
	snapshot, err := pipeline.Ingest(context.Background(), records)
	require.NoError(t, err)
	assert.Len(t, snapshot.Records, 5)
}

func TestIngestEmptyCatalog(t *testing.T) {
	pipeline, _ := newTestPipeline(t, mock.NewEmbedder())

	_, err := pipeline.Ingest(context.Background(), []core.MenuRecord{{Title: "x"}})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestIngestEmbedderFailureAbortsRun(t *testing.T) {
	embedder := mock.NewEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("connection refused")
	}
	pipeline, repo := newTestPipeline(t, embedder)
	ctx := context.Background()

	_, err := pipeline.Ingest(ctx, rawCatalog())
	assert.ErrorIs(t, err, ErrEmbedderUnavailable)

	// Nothing persisted
	_, err = repo.CurrentSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIngestDimensionMismatchAbortsRun(t *testing.T) {
	var call atomic.Int32
	embedder := mock.NewEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		dim := 4
		if call.Add(1) > 1 {
			dim = 8
		}
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = make([]float32, dim)
			vectors[i][0] = 1
		}
		return vectors, nil
	}
	pipeline, repo := newTestPipeline(t, embedder)
	ctx := context.Background()

	_, err := pipeline.Ingest(ctx, rawCatalog())
	require.Error(t, err)

	_, err = repo.CurrentSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestBuildSearchText(t *testing.T) {
	extractor := newTestExtractor(t)

	t.Run("weighted repetition", func(t *testing.T) {
		record := &core.MenuRecord{
			Title:       "Rendang Sapi",
			Ingredients: "daging sapi",
			Description: "dimasak lama",
		}
		text := BuildSearchText(extractor, record)

		assert.Equal(t, titleWeight, strings.Count(text, "rendang sapi"))
		assert.Equal(t, descriptionWeight, strings.Count(text, "dimasak lama"))
		// Extracted tags appear alongside the raw fields
		assert.Contains(t, text, "sapi")
	})

	t.Run("fields are normalized", func(t *testing.T) {
		record := &core.MenuRecord{
			Title:       "Gado-Gado Spesial!",
			Ingredients: "sayuran, bumbu kacang",
		}
		text := BuildSearchText(extractor, record)

		assert.Equal(t, titleWeight, strings.Count(text, "gado gado spesial"))
		assert.Equal(t, ingredientsWeight, strings.Count(text, "sayuran bumbu kacang"))
		assert.NotContains(t, text, ",")
		assert.NotContains(t, text, "!")
	})

	t.Run("empty record falls back", func(t *testing.T) {
		text := BuildSearchText(extractor, &core.MenuRecord{})
		assert.Equal(t, "makanan", text)
	})

	t.Run("deterministic", func(t *testing.T) {
		record := &core.MenuRecord{Title: "Gado-Gado", Ingredients: "sayuran, bumbu kacang"}
		assert.Equal(t, BuildSearchText(extractor, record), BuildSearchText(extractor, record))
	})
}

func TestNewPipelineValidation(t *testing.T) {
	repo, err := badger.NewMemoryCatalogRepository()
	require.NoError(t, err)
	defer repo.Close()

	extractor := newTestExtractor(t)

	_, err = NewPipeline(nil, mock.NewEmbedder(), extractor)
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewPipeline(repo, nil, extractor)
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewPipeline(repo, mock.NewEmbedder(), nil)
	assert.ErrorIs(t, err, ErrExtractorRequired)
}
