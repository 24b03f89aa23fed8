package llm

import (
	"context"
	"fmt"
	"math"
)

// EmbeddingClient is the provider call the embedder wraps. The Gemini client
// from langchaingo satisfies it.
type EmbeddingClient interface {
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}

// Embedder converts text into fixed-dimension unit-length vectors.
//
// It is constructed once at startup around a shared provider client and is
// safe for concurrent use; it holds no per-call state. Vectors are normalized
// so cosine similarity reduces to a dot product.
type Embedder struct {
	client       EmbeddingClient
	expectedSize int
}

// NewEmbedder creates an embedder validating every vector against
// expectedSize. A size mismatch indicates the configured dimension does not
// match the model and is surfaced as an error on the first call.
func NewEmbedder(client EmbeddingClient, expectedSize int) *Embedder {
	return &Embedder{
		client:       client,
		expectedSize: expectedSize,
	}
}

// EmbedTexts generates one vector per input text.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("empty input array")
	}

	vectors, err := e.client.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(vectors))
	}

	for i, vec := range vectors {
		if len(vec) != e.expectedSize {
			return nil, fmt.Errorf("embedding %d has size %d, expected %d", i, len(vec), e.expectedSize)
		}
		normalize(vec)
	}

	return vectors, nil
}

// EmbedText generates a vector for a single text.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// normalize scales vec to unit length in place. Zero vectors are left as is.
func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
