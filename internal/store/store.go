// Package store holds the in-memory entity collections behind an atomically
// swappable generation handle. Readers take one snapshot per request and
// never observe a partially replaced dataset.
package store

import (
	"fmt"
	"sync/atomic"

	"github.com/opencre/mockapi/internal/models"
)

// Generation is one complete, internally consistent snapshot of every
// entity collection. A generation is immutable once installed; IDs issued
// from one generation are not valid across a regeneration.
type Generation struct {
	Properties   map[string]models.Property
	Parties      map[string]models.Party
	Brokers      map[string]models.Broker
	Documents    map[string]models.Document
	Transactions []models.Transaction
}

// NewGeneration returns an empty generation with initialized collections.
func NewGeneration() *Generation {
	return &Generation{
		Properties: make(map[string]models.Property),
		Parties:    make(map[string]models.Party),
		Brokers:    make(map[string]models.Broker),
		Documents:  make(map[string]models.Document),
	}
}

// Store owns the current generation. All five collections are replaced as
// a unit via a single pointer swap; there is no per-record mutation API.
type Store struct {
	gen atomic.Pointer[Generation]
}

// New creates a Store seeded with the given generation.
func New(gen *Generation) *Store {
	s := &Store{}
	s.gen.Store(gen)
	return s
}

// Snapshot returns the current generation. Callers must dereference once
// per request and keep using the same snapshot for the whole pipeline.
func (s *Store) Snapshot() *Generation {
	return s.gen.Load()
}

// Regenerate builds a replacement generation and installs it atomically.
// If the build fails, the current generation stays in place untouched.
func (s *Store) Regenerate(build func() (*Generation, error)) error {
	gen, err := build()
	if err != nil {
		return fmt.Errorf("failed to build generation: %w", err)
	}
	s.gen.Store(gen)
	return nil
}
