// Package qdrant provides a vector store adapter backed by Qdrant over gRPC.
package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrantclient "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultAddr       = "localhost:6334"
	DefaultCollection = "admissions_chunks"
	DefaultTimeout    = 30 * time.Second
)

// Config holds configuration for the Qdrant store.
type Config struct {
	// Addr is the Qdrant gRPC address (default: localhost:6334).
	Addr string

	// Collection is the collection name (default: admissions_chunks).
	Collection string

	// Timeout bounds individual gRPC calls (default: 30s).
	Timeout time.Duration
}

// Store talks to a Qdrant instance over its gRPC API.
type Store struct {
	conn        *grpc.ClientConn
	collections qdrantclient.CollectionsClient
	points      qdrantclient.PointsClient
	collection  string
	timeout     time.Duration
}

// New connects to Qdrant and returns a store for the configured collection.
func New(cfg Config) (*Store, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to qdrant at %s: %w", cfg.Addr, err)
	}

	return &Store{
		conn:        conn,
		collections: qdrantclient.NewCollectionsClient(conn),
		points:      qdrantclient.NewPointsClient(conn),
		collection:  cfg.Collection,
		timeout:     cfg.Timeout,
	}, nil
}

// EnsureCollection creates the collection with cosine distance if it does
// not exist yet. An already existing collection is not an error; its
// vector config is left untouched.
func (s *Store) EnsureCollection(ctx context.Context, dimensions int) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.collections.Create(ctx, &qdrantclient.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: &qdrantclient.VectorsConfig{
			Config: &qdrantclient.VectorsConfig_Params{
				Params: &qdrantclient.VectorParams{
					Size:     uint64(dimensions),
					Distance: qdrantclient.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create collection %s: %w", s.collection, err)
	}
	return nil
}

// Upsert writes a batch of points. Existing point ids are overwritten,
// so re-indexing the same corpus is idempotent.
func (s *Store) Upsert(ctx context.Context, points []driven.Point) error {
	if len(points) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	structs := make([]*qdrantclient.PointStruct, len(points))
	for i, p := range points {
		structs[i] = &qdrantclient.PointStruct{
			Id: &qdrantclient.PointId{
				PointIdOptions: &qdrantclient.PointId_Num{Num: p.ID},
			},
			Vectors: &qdrantclient.Vectors{
				VectorsOptions: &qdrantclient.Vectors_Vector{
					Vector: &qdrantclient.Vector{Data: p.Vector},
				},
			},
			Payload: payloadValues(p.Payload),
		}
	}

	_, err := s.points.Upsert(ctx, &qdrantclient.UpsertPoints{
		CollectionName: s.collection,
		Points:         structs,
	})
	if err != nil {
		return fmt.Errorf("upsert %d points: %w", len(points), err)
	}
	return nil
}

// Query returns the closest points to the given vector, best first.
func (s *Store) Query(ctx context.Context, vector []float32, limit int) ([]domain.QueryHit, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.points.Search(ctx, &qdrantclient.SearchPoints{
		CollectionName: s.collection,
		Vector:         vector,
		Limit:          uint64(limit),
		WithPayload: &qdrantclient.WithPayloadSelector{
			SelectorOptions: &qdrantclient.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("search collection %s: %w", s.collection, err)
	}

	hits := make([]domain.QueryHit, 0, len(resp.GetResult()))
	for _, point := range resp.GetResult() {
		hits = append(hits, domain.QueryHit{
			Score:   point.GetScore(),
			Payload: payloadFromValues(point.GetPayload()),
		})
	}
	return hits, nil
}

// Close tears down the gRPC connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// payloadValues converts a chunk payload to the Qdrant value map.
func payloadValues(p domain.Payload) map[string]*qdrantclient.Value {
	return map[string]*qdrantclient.Value{
		"chunk_id":   intValue(int64(p.ChunkID)),
		"doc_id":     stringValue(p.DocID),
		"source":     stringValue(p.Source),
		"title":      stringValue(p.Title),
		"type":       stringValue(string(p.Type)),
		"text":       stringValue(p.Text),
		"start_char": intValue(int64(p.StartChar)),
		"end_char":   intValue(int64(p.EndChar)),
	}
}

// payloadFromValues is the inverse of payloadValues. Missing keys come
// back as zero values.
func payloadFromValues(values map[string]*qdrantclient.Value) domain.Payload {
	return domain.Payload{
		ChunkID:   int(values["chunk_id"].GetIntegerValue()),
		DocID:     values["doc_id"].GetStringValue(),
		Source:    values["source"].GetStringValue(),
		Title:     values["title"].GetStringValue(),
		Type:      domain.DocumentType(values["type"].GetStringValue()),
		Text:      values["text"].GetStringValue(),
		StartChar: int(values["start_char"].GetIntegerValue()),
		EndChar:   int(values["end_char"].GetIntegerValue()),
	}
}

func stringValue(s string) *qdrantclient.Value {
	return &qdrantclient.Value{Kind: &qdrantclient.Value_StringValue{StringValue: s}}
}

func intValue(n int64) *qdrantclient.Value {
	return &qdrantclient.Value{Kind: &qdrantclient.Value_IntegerValue{IntegerValue: n}}
}
