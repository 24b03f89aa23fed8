package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"clauselens/internal/contextutil"
)

// payloadNamespace is the payload field partitioning the collection.
// Qdrant has no Pinecone-style namespaces, so the adapter keeps one
// collection and scopes every operation with a filter on this field.
const payloadNamespace = "namespace"

// payloadRecordID carries the caller's per-namespace record id. Qdrant point
// ids must be UUIDs, so the (namespace, record id) pair is hashed into a
// deterministic UUIDv5 for idempotent upserts and the original id is kept in
// the payload.
const payloadRecordID = "record_id"

// QdrantStore implements VectorStore using Qdrant.
type QdrantStore struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantStore creates a new Qdrant vector store client.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) will be derived from the HTTP port.
func NewQdrantStore(urlStr, collection string) (*QdrantStore, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	// gRPC port is typically HTTP port + 1
	port := 6334
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{
		client:     client,
		collection: collection,
	}, nil
}

// EnsureCollection ensures the backing collection exists with the specified
// vector size. If it exists, validates that the vector size matches; a
// mismatch is a configuration error and fails startup.
func (s *QdrantStore) EnsureCollection(ctx context.Context, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if !exists {
		logger.InfoContext(ctx, "creating collection", "collection", s.collection, "vector_size", vectorSize)
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: s.collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(vectorSize),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		return nil
	}

	info, err := s.client.GetCollectionInfo(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to get collection info: %w", err)
	}

	config := info.Config
	if config == nil || config.Params == nil {
		return fmt.Errorf("collection config is invalid")
	}
	vectorsConfig := config.Params.GetVectorsConfig()
	if vectorsConfig == nil {
		return fmt.Errorf("collection vectors config is invalid")
	}
	params := vectorsConfig.GetParams()
	if params == nil {
		return fmt.Errorf("collection vector params are invalid")
	}

	if int(params.Size) != vectorSize {
		return fmt.Errorf("collection vector size mismatch: expected %d, got %d", vectorSize, params.Size)
	}

	logger.InfoContext(ctx, "collection validated", "collection", s.collection, "vector_size", vectorSize)
	return nil
}

// Upsert inserts or updates records under the given namespace.
func (s *QdrantStore) Upsert(ctx context.Context, ns Namespace, records []Record) error {
	logger := contextutil.LoggerFromContext(ctx)

	if ns.IsZero() {
		return fmt.Errorf("upsert requires a namespace")
	}
	if len(records) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(records))
	for _, rec := range records {
		payload := make(map[string]any, len(rec.Meta)+2)
		for k, v := range rec.Meta {
			payload[k] = v
		}
		payload[payloadNamespace] = ns.String()
		payload[payloadRecordID] = rec.ID

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID(ns, rec.ID)),
			Vectors: qdrant.NewVectors(rec.Vec...),
			Payload: qdrant.NewValueMap(payload),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         points,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to upsert points", "namespace", ns.String(), "count", len(records), "error", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	logger.InfoContext(ctx, "upserted points", "namespace", ns.String(), "count", len(records))
	return nil
}

// Query performs a similarity search, optionally scoped to one namespace.
func (s *QdrantStore) Query(ctx context.Context, vec []float32, topK int, ns Namespace, filter map[string]any) ([]Match, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if topK <= 0 {
		return nil, fmt.Errorf("topK must be greater than 0")
	}

	var conditions []*qdrant.Condition
	if !ns.IsZero() {
		conditions = append(conditions, qdrant.NewMatch(payloadNamespace, ns.String()))
	}
	for key, value := range filter {
		switch v := value.(type) {
		case string:
			conditions = append(conditions, qdrant.NewMatch(key, v))
		case int:
			conditions = append(conditions, qdrant.NewMatchInt(key, int64(v)))
		case int64:
			conditions = append(conditions, qdrant.NewMatchInt(key, v))
		case bool:
			conditions = append(conditions, qdrant.NewMatchBool(key, v))
		default:
			conditions = append(conditions, qdrant.NewMatch(key, fmt.Sprintf("%v", v)))
		}
	}

	limit := uint64(topK)
	queryReq := &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vec...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	}
	if len(conditions) > 0 {
		queryReq.Filter = &qdrant.Filter{Must: conditions}
	}

	scoredPoints, err := s.client.Query(ctx, queryReq)
	if err != nil {
		logger.ErrorContext(ctx, "failed to search points", "namespace", ns.String(), "k", topK, "error", err)
		return nil, fmt.Errorf("failed to search points: %w", err)
	}

	matches := make([]Match, 0, len(scoredPoints))
	for _, point := range scoredPoints {
		meta := make(map[string]any)
		if point.Payload != nil {
			meta = convertPayloadToMap(point.Payload)
		}

		id, _ := meta[payloadRecordID].(string)
		delete(meta, payloadRecordID)
		delete(meta, payloadNamespace)

		matches = append(matches, Match{
			ID:    id,
			Score: point.Score,
			Meta:  meta,
		})
	}

	logger.InfoContext(ctx, "search completed", "namespace", ns.String(), "k", topK, "results", len(matches))
	return matches, nil
}

// DeleteNamespace removes every record under the namespace. Deleting a
// namespace that was never written to is a successful no-op: the delete is
// filter-based, and an empty filter result simply removes nothing.
func (s *QdrantStore) DeleteNamespace(ctx context.Context, ns Namespace) error {
	logger := contextutil.LoggerFromContext(ctx)

	if ns.IsZero() {
		return fmt.Errorf("delete requires a namespace")
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collection,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(payloadNamespace, ns.String()),
			},
		}),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete namespace", "namespace", ns.String(), "error", err)
		return fmt.Errorf("failed to delete namespace: %w", err)
	}

	logger.InfoContext(ctx, "deleted namespace", "namespace", ns.String())
	return nil
}

// pointID derives a deterministic UUID from the namespace and record id so
// re-upserting the same chunk overwrites the previous point.
func pointID(ns Namespace, recordID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(ns.String()+"/"+recordID)).String()
}

// convertPayloadToMap converts Qdrant payload to map[string]any.
func convertPayloadToMap(payload map[string]*qdrant.Value) map[string]any {
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		result[k] = convertValue(v)
	}
	return result
}

// convertValue converts a Qdrant Value to Go any type.
func convertValue(v *qdrant.Value) any {
	switch val := v.Kind.(type) {
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_ListValue:
		list := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			list[i] = convertValue(item)
		}
		return list
	case *qdrant.Value_StructValue:
		return convertPayloadToMap(val.StructValue.Fields)
	default:
		return nil
	}
}
