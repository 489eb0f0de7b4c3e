package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a catalog repository is not provided.
	ErrRepositoryRequired = errors.New("catalog repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrExtractorRequired is returned when a feature extractor is not provided.
	ErrExtractorRequired = errors.New("feature extractor required")

	// ErrEmptyCatalog indicates that no valid records survived cleaning.
	ErrEmptyCatalog = errors.New("no valid catalog records")

	// ErrEmbedderUnavailable indicates that embedding generation failed.
	// The run is aborted; nothing is persisted.
	ErrEmbedderUnavailable = errors.New("embedder unavailable")

	// ErrPersistFailed indicates that the snapshot could not be persisted.
	ErrPersistFailed = errors.New("snapshot persist failed")
)
