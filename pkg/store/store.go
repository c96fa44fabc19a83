// Package store provides named persistence for existential graphs.
//
// Graphs are stored as records holding the canonical bracket notation,
// keyed by a user-chosen name. The Store interface has implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - file: JSON files in a config directory for CLI use
//   - redis: Redis-backed storage for shared deployments
//   - mongo: MongoDB-backed storage for shared deployments
//
// Notation text is the only wire format: records persist graphs as the
// strings produced by eg.Graph.String, canonicalized on save.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record exists under the requested name.
var ErrNotFound = errors.New("graph not found")

// Record is one stored graph.
type Record struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Notation  string    `json:"notation" bson:"notation"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewRecord creates a record with a fresh ID and timestamps.
func NewRecord(name, notation string) Record {
	now := time.Now().UTC()
	return Record{
		ID:        uuid.NewString(),
		Name:      name,
		Notation:  notation,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store persists graph records by name.
//
// Save upserts: an existing record keeps its ID and CreatedAt and gets a
// new UpdatedAt. Get and Delete return ErrNotFound for unknown names.
// List returns records sorted by name.
type Store interface {
	Save(ctx context.Context, name, notation string) (Record, error)
	Get(ctx context.Context, name string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, name string) error
	Close(ctx context.Context) error
}

// updated returns prev carried forward with new notation, or a fresh
// record when prev is nil.
func updated(prev *Record, name, notation string) Record {
	if prev == nil {
		return NewRecord(name, notation)
	}
	rec := *prev
	rec.Notation = notation
	rec.UpdatedAt = time.Now().UTC()
	return rec
}
