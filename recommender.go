// Copyright 2025 Selera Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package menurec is a menu recommendation engine for Indonesian food
// catalogs. It combines deterministic feature-based scoring with semantic
// vector search over an embedded, persisted catalog snapshot.
package menurec

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync/atomic"

	"github.com/selera/menurec/ai"
	"github.com/selera/menurec/ai/openai"
	"github.com/selera/menurec/core"
	"github.com/selera/menurec/feature"
	"github.com/selera/menurec/index"
	"github.com/selera/menurec/ingestion"
	"github.com/selera/menurec/search"
	"github.com/selera/menurec/storage"
	"github.com/selera/menurec/storage/badger"
	"github.com/selera/menurec/taxonomy"
)

// ErrNoSnapshot is returned by query operations before any catalog has been
// ingested.
var ErrNoSnapshot = errors.New("no catalog snapshot available")

// Recommender is the engine facade. It owns the storage backend, the active
// catalog snapshot, and the search and ingestion machinery built around it.
//
// Queries read an immutable snapshot through an atomic pointer; Ingest swaps
// the pointer only after the new snapshot has been persisted. A Recommender
// is safe for concurrent use.
type Recommender struct {
	repository storage.CatalogRepository
	embedder   ai.Embedder
	extractor  *feature.Extractor
	searcher   *search.Searcher
	pipeline   *ingestion.Pipeline
	aiConfig   *ai.Config
	snapshot   atomic.Pointer[core.CatalogSnapshot]
	idx        atomic.Pointer[index.Index]
	logger     *slog.Logger
}

// SimilarItem is a semantic-neighbor hit from the embedding index.
type SimilarItem struct {
	Record core.MenuRecord
	Score  float32
}

// RecommenderOption configures a Recommender.
type RecommenderOption func(*recommenderOptions)

type recommenderOptions struct {
	aiConfig      *ai.Config
	embedder      ai.Embedder
	searchOpts    []search.Option
	ingestionOpts []ingestion.Option
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) RecommenderOption {
	return func(o *recommenderOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEmbedder replaces the default OpenAI-compatible embedder.
// Mainly useful for tests and alternative embedding backends.
func WithEmbedder(embedder ai.Embedder) RecommenderOption {
	return func(o *recommenderOptions) {
		o.embedder = embedder
	}
}

// WithSearchOptions forwards options to the underlying searcher.
func WithSearchOptions(opts ...search.Option) RecommenderOption {
	return func(o *recommenderOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// WithIngestionOptions forwards options to the underlying pipeline.
func WithIngestionOptions(opts ...ingestion.Option) RecommenderOption {
	return func(o *recommenderOptions) {
		o.ingestionOpts = append(o.ingestionOpts, opts...)
	}
}

// NewRecommender opens (or creates) the catalog database at filePath and
// wires the full engine around it. If a snapshot was persisted by a previous
// run it is loaded and made active.
func NewRecommender(filePath string, opts ...RecommenderOption) (*Recommender, error) {
	repository, err := badger.NewCatalogRepository(filePath)
	if err != nil {
		return nil, err
	}
	r, err := newRecommender(repository, opts...)
	if err != nil {
		repository.Close()
		return nil, err
	}
	return r, nil
}

// NewMemoryRecommender creates a Recommender backed by an in-memory database.
func NewMemoryRecommender(opts ...RecommenderOption) (*Recommender, error) {
	repository, err := badger.NewMemoryCatalogRepository()
	if err != nil {
		return nil, err
	}
	r, err := newRecommender(repository, opts...)
	if err != nil {
		repository.Close()
		return nil, err
	}
	return r, nil
}

func newRecommender(repository storage.CatalogRepository, opts ...RecommenderOption) (*Recommender, error) {
	options := &recommenderOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	embedder := options.embedder
	if embedder == nil {
		var err error
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	tax := taxonomy.Default()
	extractor, err := feature.NewExtractor(tax)
	if err != nil {
		return nil, err
	}

	searcher, err := search.NewSearcher(tax, options.searchOpts...)
	if err != nil {
		return nil, err
	}

	ingestionOpts := append([]ingestion.Option{
		ingestion.WithRequestTimeout(options.aiConfig.RequestTimeout),
		ingestion.WithEmbeddingModel(options.aiConfig.EmbeddingModel),
	}, options.ingestionOpts...)
	pipeline, err := ingestion.NewPipeline(repository, embedder, extractor, ingestionOpts...)
	if err != nil {
		return nil, err
	}

	r := &Recommender{
		repository: repository,
		embedder:   embedder,
		extractor:  extractor,
		searcher:   searcher,
		pipeline:   pipeline,
		aiConfig:   options.aiConfig,
		logger:     slog.Default().With("component", "recommender"),
	}

	if err := r.loadPersisted(); err != nil {
		pipeline.Release()
		return nil, err
	}
	return r, nil
}

// loadPersisted activates the current persisted snapshot, if any.
func (r *Recommender) loadPersisted() error {
	snapshot, err := r.repository.CurrentSnapshot(context.Background())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	return r.activate(snapshot)
}

// activate builds the vector index for a snapshot and swaps both in.
func (r *Recommender) activate(snapshot *core.CatalogSnapshot) error {
	entries := make([]index.Entry, len(snapshot.Records))
	for i := range snapshot.Records {
		entries[i] = index.Entry{Id: snapshot.Records[i].Id, Vector: snapshot.Records[i].Vector}
	}
	idx, err := index.Build(entries)
	if err != nil {
		return err
	}

	r.snapshot.Store(snapshot)
	r.idx.Store(idx)
	r.logger.Info("snapshot activated",
		"version", snapshot.Metadata.Version,
		"records", len(snapshot.Records))
	return nil
}

// Ingest cleans, embeds, and persists a raw catalog, then makes the new
// snapshot active. On failure the previously active snapshot keeps serving.
func (r *Recommender) Ingest(ctx context.Context, records []core.MenuRecord) error {
	snapshot, err := r.pipeline.Ingest(ctx, records)
	if err != nil {
		return err
	}
	return r.activate(snapshot)
}

// Recommend runs the scoring search over the active snapshot and returns
// shaped, ranked recommendations.
func (r *Recommender) Recommend(query string) ([]core.RecommendedItem, error) {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return r.searcher.Recommend(query, snapshot.Records), nil
}

// Search runs the scoring search and returns the full result, including the
// extracted query features and requirement profile.
func (r *Recommender) Search(query string) (*search.Result, error) {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return r.searcher.Search(query, snapshot.Records), nil
}

// Similar embeds the synonym-expanded query and returns the k nearest
// records by inner product in the embedding space.
func (r *Recommender) Similar(ctx context.Context, query string, k int) ([]SimilarItem, error) {
	snapshot := r.snapshot.Load()
	idx := r.idx.Load()
	if snapshot == nil || idx == nil {
		return nil, ErrNoSnapshot
	}

	embedCtx, cancel := context.WithTimeout(ctx, r.aiConfig.RequestTimeout)
	defer cancel()

	vector, err := r.embedder.EmbedText(embedCtx, r.extractor.ExpandSynonyms(query))
	if err != nil {
		return nil, err
	}

	hits, err := idx.Search(index.Normalize(vector), k)
	if err != nil {
		return nil, err
	}

	byID := make(map[core.ID]*core.MenuRecord, len(snapshot.Records))
	for i := range snapshot.Records {
		byID[snapshot.Records[i].Id] = &snapshot.Records[i]
	}

	items := make([]SimilarItem, 0, len(hits))
	for _, hit := range hits {
		record, ok := byID[hit.Id]
		if !ok {
			continue
		}
		items = append(items, SimilarItem{Record: *record, Score: hit.Score})
	}
	return items, nil
}

// Random samples up to the configured max results from the active snapshot.
func (r *Recommender) Random(rng *rand.Rand) ([]core.RecommendedItem, error) {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return r.searcher.RandomPicks(snapshot.Records, rng), nil
}

// Snapshot returns the active catalog snapshot, or nil before ingestion.
func (r *Recommender) Snapshot() *core.CatalogSnapshot {
	return r.snapshot.Load()
}

// Close releases the pipeline and closes the storage backend.
func (r *Recommender) Close() error {
	r.pipeline.Release()
	if err := r.repository.Close(); err != nil {
		r.logger.Error("error closing catalog repository", "err", err)
		return err
	}
	return nil
}
