package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/selera/menurec/ai"
	"github.com/selera/menurec/core"
	"github.com/selera/menurec/feature"
	"github.com/selera/menurec/index"
	"github.com/selera/menurec/storage"
)

const (
	defaultBatchSize = 16
	defaultSchemaTag = "v1"
)

// Pipeline turns a raw menu catalog into a persisted, embedded snapshot.
// It cleans records, builds weighted search texts, generates embeddings in
// parallel batches, and atomically persists the result as a new snapshot
// version.
type Pipeline struct {
	repository     storage.CatalogRepository
	embedder       ai.Embedder
	extractor      *feature.Extractor
	pool           *ants.Pool
	batchSize      int
	requestTimeout time.Duration
	embeddingModel string
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding batches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of records embedded per request.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithRequestTimeout sets the per-batch embedding timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) error {
		if timeout > 0 {
			p.requestTimeout = timeout
		}
		return nil
	}
}

// WithEmbeddingModel records the embedding model name in snapshot metadata.
func WithEmbeddingModel(model string) Option {
	return func(p *Pipeline) error {
		p.embeddingModel = model
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "ingestion")
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	repository storage.CatalogRepository,
	embedder ai.Embedder,
	extractor *feature.Extractor,
	opts ...Option,
) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository:     repository,
		embedder:       embedder,
		extractor:      extractor,
		pool:           pool,
		batchSize:      defaultBatchSize,
		requestTimeout: ai.DefaultConfig().RequestTimeout,
		logger:         slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest builds and persists a new catalog snapshot from raw records.
// Invalid records are skipped with a warning; an embedding or persist failure
// aborts the whole run and leaves the previously persisted snapshot current.
func (p *Pipeline) Ingest(ctx context.Context, records []core.MenuRecord) (*core.CatalogSnapshot, error) {
	cleaned := cleanRecords(records, p.logger)
	if len(cleaned) == 0 {
		return nil, ErrEmptyCatalog
	}
	if dropped := len(records) - len(cleaned); dropped > 0 {
		p.logger.Info("dropped invalid records", "dropped", dropped, "kept", len(cleaned))
	}

	// Expansion runs on the weighted text so the embedding carries cross-language
	// synonyms alongside the literal record text.
	texts := make([]string, len(cleaned))
	for i := range cleaned {
		texts[i] = p.extractor.ExpandSynonyms(BuildSearchText(p.extractor, &cleaned[i]))
	}

	if err := p.embedAll(ctx, cleaned, texts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedderUnavailable, err)
	}

	// Dimension sanity check before anything is persisted
	entries := make([]index.Entry, len(cleaned))
	for i := range cleaned {
		entries[i] = index.Entry{Id: cleaned[i].Id, Vector: cleaned[i].Vector}
	}
	if _, err := index.Build(entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedderUnavailable, err)
	}

	snapshot := &core.CatalogSnapshot{
		Records: cleaned,
		Metadata: core.SnapshotMetadata{
			SchemaTag:      defaultSchemaTag,
			TotalRecords:   len(cleaned),
			LastUpdated:    time.Now().UTC(),
			EmbeddingModel: p.embeddingModel,
		},
	}

	if err := p.repository.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	p.logger.Info("snapshot persisted",
		"version", snapshot.Metadata.Version,
		"records", len(cleaned))
	return snapshot, nil
}

// embedAll embeds the search texts in parallel batches, writing
// unit-normalized vectors back into the records. The first batch error wins
// and fails the run.
func (p *Pipeline) embedAll(ctx context.Context, records []core.MenuRecord, texts []string) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for start := 0; start < len(records); start += p.batchSize {
		end := start + p.batchSize
		if end > len(records) {
			end = len(records)
		}
		start, end := start, end

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			batchCtx, cancel := context.WithTimeout(ctx, p.requestTimeout)
			defer cancel()

			vectors, err := p.embedder.EmbedTexts(batchCtx, texts[start:end])
			if err != nil {
				setErr(err)
				return
			}
			if len(vectors) != end-start {
				setErr(fmt.Errorf("embedding result mismatch. expected %d, received %d", end-start, len(vectors)))
				return
			}
			for i, vector := range vectors {
				records[start+i].Vector = index.Normalize(vector)
			}
		})
		if submitErr != nil {
			wg.Done()
			setErr(submitErr)
			break
		}
	}

	wg.Wait()
	return firstErr
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
