package query

import (
	"sort"

	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/store"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects the key a transaction list is ordered by.
type SortField string

const (
	SortByTransactionDate SortField = "transactionDate"
	SortByPrice           SortField = "price"
	SortByBuyerType       SortField = "buyerType"
	SortByPropertyType    SortField = "propertyType"
	SortBySquareFootage   SortField = "squareFootage"
	SortByCreatedAt       SortField = "createdAt"
	SortByUpdatedAt       SortField = "updatedAt"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortField maps a request value to a sort field. Unrecognized values
// fall back to sorting by transaction date.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByTransactionDate, SortByPrice, SortByBuyerType,
		SortByPropertyType, SortBySquareFootage, SortByCreatedAt, SortByUpdatedAt:
		return SortField(s)
	default:
		return SortByTransactionDate
	}
}

// ParseSortOrder maps a request value to a direction, defaulting to
// descending for anything other than "asc" or "desc".
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

// sortKey is the comparable value extracted for one transaction. String
// keys compare via collation; everything else compares numerically.
type sortKey struct {
	str      string
	num      float64
	isString bool
}

// keyFuncs maps each sort field to a typed accessor. Buyer- and
// property-derived keys fall back to the lowest possible value when the
// referenced entity does not resolve, so missing values sort first in
// ascending order.
var keyFuncs = map[SortField]func(*store.Generation, models.Transaction) sortKey{
	SortByTransactionDate: func(_ *store.Generation, t models.Transaction) sortKey {
		return sortKey{num: float64(t.TransactionDate.UnixNano())}
	},
	SortByPrice: func(_ *store.Generation, t models.Transaction) sortKey {
		return sortKey{num: t.Price}
	},
	SortByBuyerType: func(gen *store.Generation, t models.Transaction) sortKey {
		if buyer, ok := gen.Parties[t.BuyerID]; ok {
			return sortKey{str: string(buyer.Classification), isString: true}
		}
		return sortKey{isString: true}
	},
	SortByPropertyType: func(gen *store.Generation, t models.Transaction) sortKey {
		if p, ok := gen.Properties[t.PropertyID]; ok {
			return sortKey{str: string(p.PropertyType), isString: true}
		}
		return sortKey{isString: true}
	},
	SortBySquareFootage: func(gen *store.Generation, t models.Transaction) sortKey {
		if p, ok := gen.Properties[t.PropertyID]; ok {
			return sortKey{num: float64(p.SquareFootage)}
		}
		return sortKey{}
	},
	SortByCreatedAt: func(_ *store.Generation, t models.Transaction) sortKey {
		return sortKey{num: float64(t.CreatedAt.UnixNano())}
	},
	SortByUpdatedAt: func(_ *store.Generation, t models.Transaction) sortKey {
		return sortKey{num: float64(t.UpdatedAt.UnixNano())}
	},
}

// Sort returns a new slice ordered by the given field and direction; the
// input is left untouched. String fields use locale-aware comparison.
// Equal keys carry no secondary ordering: the relative order of ties is
// not part of the contract and callers must not rely on it.
func Sort(gen *store.Generation, list []models.Transaction, field SortField, order SortOrder) []models.Transaction {
	keyOf, ok := keyFuncs[field]
	if !ok {
		keyOf = keyFuncs[SortByTransactionDate]
	}

	sorted := make([]models.Transaction, len(list))
	copy(sorted, list)

	collator := collate.New(language.English)
	less := func(a, b sortKey) bool {
		if a.isString && b.isString {
			return collator.CompareString(a.str, b.str) < 0
		}
		return a.num < b.num
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := keyOf(gen, sorted[i]), keyOf(gen, sorted[j])
		if order == SortDesc {
			return less(kj, ki)
		}
		return less(ki, kj)
	})

	return sorted
}
