package query

import (
	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/store"
)

// Filters is the set of optional predicates applied to the transaction
// list. Nil fields impose no constraint; present fields compose with AND.
type Filters struct {
	// StartDate keeps transactions dated on or after this calendar date.
	StartDate *models.Date
	// EndDate keeps transactions dated on or before this calendar date.
	EndDate *models.Date
	// TransactionType keeps transactions whose type matches exactly.
	TransactionType *models.TransactionType
	// BuyerType keeps transactions whose buyer party has this
	// classification. A buyer ID that does not resolve never matches.
	BuyerType *models.BuyerType
	// MinPrice keeps transactions priced at or above this value.
	MinPrice *float64
	// MaxPrice keeps transactions priced at or below this value.
	MaxPrice *float64
	// Country, State, and City match against the resolved property's
	// address. A property ID that does not resolve never matches.
	Country *string
	State   *string
	City    *string
}

// hasLocation reports whether any address predicate is present.
func (f Filters) hasLocation() bool {
	return f.Country != nil || f.State != nil || f.City != nil
}

// Filter applies the predicate set to the snapshot's transaction list and
// returns the raw transactions that pass. ID-based predicates run directly
// on the raw records; when a location predicate is present, only the
// already-filtered candidates are enriched to evaluate the address fields,
// and the enriched copies are discarded before returning.
func Filter(gen *store.Generation, f Filters) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(gen.Transactions))
	for _, t := range gen.Transactions {
		if f.matchesRaw(gen, t) {
			filtered = append(filtered, t)
		}
	}

	if !f.hasLocation() {
		return filtered
	}

	result := make([]models.Transaction, 0, len(filtered))
	for _, t := range filtered {
		enriched := Enrich(gen, t)
		if f.matchesLocation(enriched) {
			result = append(result, t)
		}
	}
	return result
}

func (f Filters) matchesRaw(gen *store.Generation, t models.Transaction) bool {
	if f.StartDate != nil && t.TransactionDate.Before(f.StartDate.Time) {
		return false
	}
	if f.EndDate != nil && t.TransactionDate.After(f.EndDate.Time) {
		return false
	}
	if f.TransactionType != nil && t.TransactionType != *f.TransactionType {
		return false
	}
	if f.BuyerType != nil {
		buyer, ok := gen.Parties[t.BuyerID]
		if !ok || buyer.Classification != *f.BuyerType {
			return false
		}
	}
	if f.MinPrice != nil && t.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && t.Price > *f.MaxPrice {
		return false
	}
	return true
}

func (f Filters) matchesLocation(t models.EnrichedTransaction) bool {
	if t.Property == nil {
		return false
	}
	addr := t.Property.Address
	if f.Country != nil && addr.Country != *f.Country {
		return false
	}
	if f.State != nil && addr.State != *f.State {
		return false
	}
	if f.City != nil && addr.City != *f.City {
		return false
	}
	return true
}
