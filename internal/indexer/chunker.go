package indexer

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

const (
	// DefaultChunkSize is the target chunk length in characters.
	DefaultChunkSize = 1000
	// DefaultChunkOverlap is how many characters adjacent chunks share.
	DefaultChunkOverlap = 200
)

// Chunker splits document text into overlapping chunks for embedding.
//
// It splits recursively on a priority-ordered separator list (paragraph
// break, line break, space, character-level fallback), preferring the largest
// separator that keeps pieces within the chunk size. Chunking is pure: the
// same text and parameters always produce the same sequence, which re-indexing
// relies on.
type Chunker struct {
	splitter textsplitter.RecursiveCharacter
}

// NewChunker creates a chunker with the given size and overlap in characters.
func NewChunker(chunkSize, chunkOverlap int) *Chunker {
	return &Chunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(chunkOverlap),
			textsplitter.WithSeparators([]string{"\n\n", "\n", " ", ""}),
		),
	}
}

// NewDefaultChunker creates a chunker with the default size and overlap.
func NewDefaultChunker() *Chunker {
	return NewChunker(DefaultChunkSize, DefaultChunkOverlap)
}

// Chunk splits text into ordered chunks. Empty or whitespace-only text
// yields no chunks and no error; text shorter than the chunk size yields a
// single chunk.
func (c *Chunker) Chunk(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	chunks, err := c.splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}

	// The splitter can emit empty pieces for pathological whitespace runs;
	// drop them so chunk indexes stay contiguous.
	result := chunks[:0]
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) != "" {
			result = append(result, chunk)
		}
	}
	return result, nil
}
