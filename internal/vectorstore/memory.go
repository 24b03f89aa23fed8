package vectorstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is a brute-force in-memory VectorStore. It backs tests and
// single-process development runs; scores are dot products, which equal
// cosine similarity because the embedder normalizes vectors.
type MemoryStore struct {
	mu         sync.RWMutex
	dimension  int
	namespaces map[string][]memoryRecord
	inserted   int
}

type memoryRecord struct {
	id    string
	vec   []float32
	meta  map[string]any
	order int // insertion order, ties in score keep it
}

// NewMemoryStore creates an empty in-memory store expecting vectors of the
// given dimension.
func NewMemoryStore(dimension int) *MemoryStore {
	return &MemoryStore{
		dimension:  dimension,
		namespaces: make(map[string][]memoryRecord),
	}
}

// Upsert inserts or overwrites records by id within the namespace.
func (s *MemoryStore) Upsert(_ context.Context, ns Namespace, records []Record) error {
	if ns.IsZero() {
		return fmt.Errorf("upsert requires a namespace")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		if len(rec.Vec) != s.dimension {
			return fmt.Errorf("vector dimension mismatch: expected %d, got %d", s.dimension, len(rec.Vec))
		}
	}

	key := ns.String()
	existing := s.namespaces[key]
	for _, rec := range records {
		meta := make(map[string]any, len(rec.Meta))
		for k, v := range rec.Meta {
			meta[k] = v
		}
		vec := make([]float32, len(rec.Vec))
		copy(vec, rec.Vec)

		replaced := false
		for i := range existing {
			if existing[i].id == rec.ID {
				existing[i].vec = vec
				existing[i].meta = meta
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, memoryRecord{
				id:    rec.ID,
				vec:   vec,
				meta:  meta,
				order: s.inserted,
			})
			s.inserted++
		}
	}
	s.namespaces[key] = existing
	return nil
}

// Query scans the namespace (or all namespaces when ns is zero) and returns
// the topK matches in descending score order, ties broken by insertion order.
func (s *MemoryStore) Query(_ context.Context, vec []float32, topK int, ns Namespace, filter map[string]any) ([]Match, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be greater than 0")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []memoryRecord
	if ns.IsZero() {
		for _, records := range s.namespaces {
			candidates = append(candidates, records...)
		}
	} else {
		candidates = s.namespaces[ns.String()]
	}

	type scored struct {
		rec   memoryRecord
		score float32
	}
	matches := make([]scored, 0, len(candidates))
	for _, rec := range candidates {
		if !metaMatches(rec.meta, filter) {
			continue
		}
		matches = append(matches, scored{rec: rec, score: dot(rec.vec, vec)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].rec.order < matches[j].rec.order
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}

	results := make([]Match, 0, len(matches))
	for _, m := range matches {
		meta := make(map[string]any, len(m.rec.meta))
		for k, v := range m.rec.meta {
			meta[k] = v
		}
		results = append(results, Match{
			ID:    m.rec.id,
			Score: m.score,
			Meta:  meta,
		})
	}
	return results, nil
}

// DeleteNamespace drops the namespace. Unknown namespaces are a no-op.
func (s *MemoryStore) DeleteNamespace(_ context.Context, ns Namespace) error {
	if ns.IsZero() {
		return fmt.Errorf("delete requires a namespace")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.namespaces, ns.String())
	return nil
}

func metaMatches(meta, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := meta[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
