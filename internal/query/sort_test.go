package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortField(t *testing.T) {
	cases := map[string]SortField{
		"transactionDate": SortByTransactionDate,
		"price":           SortByPrice,
		"buyerType":       SortByBuyerType,
		"propertyType":    SortByPropertyType,
		"squareFootage":   SortBySquareFootage,
		"createdAt":       SortByCreatedAt,
		"updatedAt":       SortByUpdatedAt,
		"":                SortByTransactionDate,
		"bogus":           SortByTransactionDate,
		"PRICE":           SortByTransactionDate,
	}
	for input, expected := range cases {
		assert.Equal(t, expected, ParseSortField(input), "input %q", input)
	}
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortDesc, ParseSortOrder(""))
	assert.Equal(t, SortDesc, ParseSortOrder("sideways"))
}

func TestSort_ByPriceAscending(t *testing.T) {
	gen := testGeneration()

	sorted := Sort(gen, gen.Transactions, SortByPrice, SortAsc)

	require.Len(t, sorted, len(gen.Transactions))
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Price, sorted[i].Price)
	}
}

func TestSort_ByPriceDescending(t *testing.T) {
	gen := testGeneration()

	sorted := Sort(gen, gen.Transactions, SortByPrice, SortDesc)

	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Price, sorted[i].Price)
	}
}

func TestSort_ByTransactionDate(t *testing.T) {
	gen := testGeneration()

	sorted := Sort(gen, gen.Transactions, SortByTransactionDate, SortAsc)

	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].TransactionDate.Before(sorted[i-1].TransactionDate.Time))
	}
}

func TestSort_ByBuyerType_MissingBuyerSortsFirst(t *testing.T) {
	gen := testGeneration()

	sorted := Sort(gen, gen.Transactions, SortByBuyerType, SortAsc)

	// tx-dangling's buyer does not resolve; its key is the lowest value.
	assert.Equal(t, "tx-dangling", sorted[0].TransactionID)
}

func TestSort_ByBuyerType_MissingBuyerSortsLastDescending(t *testing.T) {
	gen := testGeneration()

	sorted := Sort(gen, gen.Transactions, SortByBuyerType, SortDesc)

	// The unresolvable buyer keeps the lowest key, so descending order
	// puts it at the end.
	assert.Equal(t, "tx-dangling", sorted[len(sorted)-1].TransactionID)
}

func TestSort_BySquareFootage_MissingPropertySortsFirst(t *testing.T) {
	gen := testGeneration()

	sorted := Sort(gen, gen.Transactions, SortBySquareFootage, SortAsc)

	assert.Equal(t, "tx-dangling", sorted[0].TransactionID)
	footage := func(id string) int {
		p, ok := gen.Properties[transactionByID(t, gen, id).PropertyID]
		if !ok {
			return 0
		}
		return p.SquareFootage
	}
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, footage(sorted[i-1].TransactionID), footage(sorted[i].TransactionID))
	}
}

func TestSort_ByPropertyType(t *testing.T) {
	gen := testGeneration()

	sorted := Sort(gen, gen.Transactions, SortByPropertyType, SortDesc)

	// Retail > Office > "" under collation, descending.
	assert.Equal(t, "tx-2", sorted[0].TransactionID)
	assert.Equal(t, "tx-dangling", sorted[len(sorted)-1].TransactionID)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	gen := testGeneration()
	original := ids(gen.Transactions)

	_ = Sort(gen, gen.Transactions, SortByPrice, SortAsc)

	assert.Equal(t, original, ids(gen.Transactions))
}

func TestSort_UnknownFieldFallsBackToDate(t *testing.T) {
	gen := testGeneration()

	sorted := Sort(gen, gen.Transactions, SortField("nonsense"), SortAsc)

	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].TransactionDate.Before(sorted[i-1].TransactionDate.Time))
	}
}
