package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/opencre/mockapi/internal/logger"
	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/query"
	"github.com/opencre/mockapi/internal/store"
)

// Service-level errors
var (
	ErrInvalidPagination   = errors.New("limit must be positive and offset non-negative")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// ListParams carries the full query for a transaction listing.
type ListParams struct {
	Filters   query.Filters
	SortBy    query.SortField
	SortOrder query.SortOrder
	Limit     int
	Offset    int
}

// Metadata describes a listing result independent of its page contents.
type Metadata struct {
	TotalRecords int       `json:"totalRecords"`
	Limit        int       `json:"limit"`
	Offset       int       `json:"offset"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// ListResult is a page of enriched transactions plus listing metadata.
type ListResult struct {
	Metadata Metadata                     `json:"metadata"`
	Data     []models.EnrichedTransaction `json:"data"`
}

// TransactionService defines the business operations over the transaction
// dataset.
type TransactionService interface {
	// List runs the filter -> sort -> paginate -> enrich pipeline over the
	// current generation. Returns ErrInvalidPagination when limit/offset
	// fail validation; no partial result is produced in that case.
	List(params ListParams) (*ListResult, error)

	// Get returns one enriched transaction by ID.
	// Returns ErrTransactionNotFound for unknown IDs.
	Get(transactionID string) (*models.EnrichedTransaction, error)

	// Reset atomically replaces the entire dataset with a freshly
	// generated one. On failure the current dataset stays in place.
	Reset() error
}

// transactionService is the concrete implementation of TransactionService.
type transactionService struct {
	store *store.Store
	build func() (*store.Generation, error)
	log   *logger.Logger
}

// NewTransactionService creates a TransactionService backed by the given
// store. build produces a replacement generation for Reset.
func NewTransactionService(st *store.Store, build func() (*store.Generation, error), log *logger.Logger) TransactionService {
	return &transactionService{
		store: st,
		build: build,
		log:   log,
	}
}

// List validates pagination, then applies the pipeline to one snapshot of
// the store. Enrichment runs over the returned page only, never over the
// full filtered set.
func (s *transactionService) List(p ListParams) (*ListResult, error) {
	if p.Limit <= 0 || p.Offset < 0 {
		s.log.Warn("Invalid pagination parameters", map[string]interface{}{
			"limit":  p.Limit,
			"offset": p.Offset,
		})
		return nil, fmt.Errorf("%w: limit=%d offset=%d", ErrInvalidPagination, p.Limit, p.Offset)
	}

	gen := s.store.Snapshot()

	filtered := query.Filter(gen, p.Filters)
	sorted := query.Sort(gen, filtered, p.SortBy, p.SortOrder)
	page := query.Paginate(sorted, p.Limit, p.Offset)
	data := query.EnrichAll(gen, page)

	s.log.Debug("Transaction listing served", map[string]interface{}{
		"total":    len(sorted),
		"returned": len(data),
		"sort_by":  string(p.SortBy),
		"order":    string(p.SortOrder),
	})

	return &ListResult{
		Metadata: Metadata{
			TotalRecords: len(sorted),
			Limit:        p.Limit,
			Offset:       p.Offset,
			LastUpdated:  time.Now().UTC(),
		},
		Data: data,
	}, nil
}

// Get looks up a single transaction in the current generation and enriches
// it.
func (s *transactionService) Get(transactionID string) (*models.EnrichedTransaction, error) {
	gen := s.store.Snapshot()

	for _, t := range gen.Transactions {
		if t.TransactionID == transactionID {
			enriched := query.Enrich(gen, t)
			return &enriched, nil
		}
	}

	s.log.Debug("Transaction not found", map[string]interface{}{
		"transaction_id": transactionID,
	})
	return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, transactionID)
}

// Reset regenerates the dataset and installs it as a whole.
func (s *transactionService) Reset() error {
	s.log.Info("Regenerating dataset", nil)

	if err := s.store.Regenerate(s.build); err != nil {
		s.log.Error("Dataset regeneration failed", err, nil)
		return err
	}

	gen := s.store.Snapshot()
	s.log.Info("Dataset regenerated", map[string]interface{}{
		"properties":   len(gen.Properties),
		"parties":      len(gen.Parties),
		"brokers":      len(gen.Brokers),
		"documents":    len(gen.Documents),
		"transactions": len(gen.Transactions),
	})
	return nil
}
