// Package ingestion provides pipeline orchestration for building catalog snapshots.
//
// The Pipeline type manages the ingestion workflow for menu records, including:
//   - Cleaning and validating raw records at the ingestion boundary
//   - Building weighted search texts for embedding
//   - Generating embeddings in parallel batches
//   - Persisting the result as a new, atomically promoted snapshot version
//
// Invalid records are logged and skipped; embedding or persistence failures
// abort the whole run so the previously persisted snapshot stays current.
package ingestion
