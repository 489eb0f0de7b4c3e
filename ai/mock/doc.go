// Package mock provides a test double implementation of ai.Embedder.
//
// The mock runs without external services and behaves deterministically:
// the same text always produces the same unit vector. Custom behavior can
// be injected through function fields, and call counts are tracked for
// test assertions.
//
//	embedder := mock.NewEmbedder()
//	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
//	    return nil, errors.New("service down")
//	}
package mock
