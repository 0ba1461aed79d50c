// Package query implements the in-memory pipeline applied to transaction
// lists: filtering, sorting, pagination, and enrichment. Every function
// operates on a single generation snapshot and never mutates its input.
package query

import (
	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/store"
)

// Enrich resolves a transaction's foreign keys into embedded copies of the
// referenced entities. Dangling references are silently skipped: a missing
// property/buyer/seller leaves the field nil, and broker/document IDs that
// fail to resolve are dropped while the relative order of the rest is
// preserved. Brokers and Documents are always non-nil so they serialize as
// JSON arrays even when empty. Enrich is pure; neither the snapshot nor the
// input transaction is modified.
func Enrich(gen *store.Generation, t models.Transaction) models.EnrichedTransaction {
	enriched := models.EnrichedTransaction{
		Transaction: t,
		Brokers:     make([]models.Broker, 0, len(t.BrokerIDs)),
		Documents:   make([]models.Document, 0, len(t.DocumentIDs)),
	}

	if p, ok := gen.Properties[t.PropertyID]; ok {
		enriched.Property = &p
	}
	if buyer, ok := gen.Parties[t.BuyerID]; ok {
		enriched.Buyer = &buyer
	}
	if seller, ok := gen.Parties[t.SellerID]; ok {
		enriched.Seller = &seller
	}

	for _, id := range t.BrokerIDs {
		if b, ok := gen.Brokers[id]; ok {
			enriched.Brokers = append(enriched.Brokers, b)
		}
	}
	for _, id := range t.DocumentIDs {
		if d, ok := gen.Documents[id]; ok {
			enriched.Documents = append(enriched.Documents, d)
		}
	}

	return enriched
}

// EnrichAll enriches a list of transactions against one snapshot.
func EnrichAll(gen *store.Generation, list []models.Transaction) []models.EnrichedTransaction {
	out := make([]models.EnrichedTransaction, 0, len(list))
	for _, t := range list {
		out = append(out, Enrich(gen, t))
	}
	return out
}
