// Package history records completed solves for later inspection.
//
// The server can be pointed at a MongoDB instance (--mongo-uri) to keep a
// log of every solve it performed: shape, cost, assignment and duration.
// Without a configured backend the [NullStore] is used and nothing is
// retained. The CLI never records history.
package history

import (
	"context"
	"time"

	"github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
)

// Record is one completed solve.
type Record struct {
	ID         string             `bson:"_id" json:"id"`
	Rows       int                `bson:"rows" json:"rows"`
	Cols       int                `bson:"cols" json:"cols"`
	Cost       int64              `bson:"cost" json:"cost"`
	Assignment []munkres.Position `bson:"assignment" json:"assignment"`
	DurationMS int64              `bson:"duration_ms" json:"duration_ms"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// Store persists solve records.
type Store interface {
	// Insert appends one record.
	Insert(ctx context.Context, rec Record) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)

	// Close releases any backend resources.
	Close(ctx context.Context) error
}

// NullStore discards every record. Used when no history backend is
// configured.
type NullStore struct{}

// NewNullStore creates a store that retains nothing.
func NewNullStore() Store {
	return &NullStore{}
}

// Insert does nothing.
func (s *NullStore) Insert(ctx context.Context, rec Record) error { return nil }

// Recent always returns an empty list.
func (s *NullStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	return []Record{}, nil
}

// Close does nothing.
func (s *NullStore) Close(ctx context.Context) error { return nil }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
