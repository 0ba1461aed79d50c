package services

import (
	"errors"
	"testing"
	"time"

	"github.com/opencre/mockapi/internal/logger"
	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/query"
	"github.com/opencre/mockapi/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceFixture(t *testing.T) (TransactionService, *store.Store) {
	t.Helper()

	gen := store.NewGeneration()
	gen.Properties["p1"] = models.Property{
		PropertyID:    "p1",
		Address:       models.Address{City: "Denver", State: "CO", Country: "USA"},
		PropertyType:  models.PropertyTypeIndustrial,
		SquareFootage: 40000,
	}
	gen.Parties["buyer"] = models.Party{PartyID: "buyer", Name: "Acme Holdings", Classification: models.BuyerTypeREIT}
	gen.Parties["seller"] = models.Party{PartyID: "seller", Name: "Zenith LLC", Classification: models.BuyerTypeOther}
	gen.Brokers["b1"] = models.Broker{BrokerID: "b1", Name: "Pat Quinn", Agency: "Quinn Realty", Role: models.BrokerRoleDualAgent}

	for i, price := range []float64{100, 300, 200, 500, 400} {
		gen.Transactions = append(gen.Transactions, models.Transaction{
			TransactionID:   string(rune('a' + i)),
			TransactionDate: models.NewDate(2020+i, time.January, 1),
			TransactionType: models.TransactionTypeStandardSale,
			Price:           price,
			Currency:        "USD",
			PropertyID:      "p1",
			BuyerID:         "buyer",
			SellerID:        "seller",
			BrokerIDs:       []string{"b1"},
		})
	}

	st := store.New(gen)
	svc := NewTransactionService(st, func() (*store.Generation, error) {
		return store.NewGeneration(), nil
	}, logger.New("test"))
	return svc, st
}

func TestList_Pipeline(t *testing.T) {
	svc, _ := serviceFixture(t)

	result, err := svc.List(ListParams{
		SortBy:    query.SortByPrice,
		SortOrder: query.SortAsc,
		Limit:     3,
		Offset:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, result.Metadata.TotalRecords)
	assert.Equal(t, 3, result.Metadata.Limit)
	assert.Equal(t, 1, result.Metadata.Offset)
	assert.WithinDuration(t, time.Now().UTC(), result.Metadata.LastUpdated, time.Minute)

	require.Len(t, result.Data, 3)
	assert.Equal(t, []float64{200, 300, 400}, []float64{
		result.Data[0].Price, result.Data[1].Price, result.Data[2].Price,
	})

	// The page comes back enriched.
	for _, tx := range result.Data {
		require.NotNil(t, tx.Property)
		require.NotNil(t, tx.Buyer)
		require.NotNil(t, tx.Seller)
	}
}

func TestList_TotalRecordsCountsPrePagination(t *testing.T) {
	svc, _ := serviceFixture(t)

	minPrice := 250.0
	result, err := svc.List(ListParams{
		Filters:   query.Filters{MinPrice: &minPrice},
		SortBy:    query.SortByPrice,
		SortOrder: query.SortDesc,
		Limit:     1,
		Offset:    0,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Metadata.TotalRecords)
	assert.Len(t, result.Data, 1)
}

func TestList_InvalidPagination(t *testing.T) {
	svc, _ := serviceFixture(t)

	cases := []struct {
		name   string
		limit  int
		offset int
	}{
		{"zero limit", 0, 0},
		{"negative limit", -5, 0},
		{"negative offset", 10, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.List(ListParams{Limit: tc.limit, Offset: tc.offset})
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidPagination)
		})
	}
}

func TestList_OffsetPastEndReturnsEmptyPage(t *testing.T) {
	svc, _ := serviceFixture(t)

	result, err := svc.List(ListParams{Limit: 10, Offset: 100})

	require.NoError(t, err)
	assert.Equal(t, 5, result.Metadata.TotalRecords)
	assert.Empty(t, result.Data)
}

func TestGet_Found(t *testing.T) {
	svc, _ := serviceFixture(t)

	tx, err := svc.Get("a")

	require.NoError(t, err)
	assert.Equal(t, "a", tx.TransactionID)
	require.NotNil(t, tx.Property)
	assert.Equal(t, "Denver", tx.Property.Address.City)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := serviceFixture(t)

	tx, err := svc.Get("does-not-exist")

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestReset_SwapsStore(t *testing.T) {
	svc, st := serviceFixture(t)
	before := st.Snapshot()

	require.NoError(t, svc.Reset())

	after := st.Snapshot()
	assert.NotSame(t, before, after)
	assert.Empty(t, after.Transactions)
}

func TestReset_BuildFailureKeepsData(t *testing.T) {
	gen := store.NewGeneration()
	gen.Transactions = append(gen.Transactions, models.Transaction{TransactionID: "keep"})
	st := store.New(gen)

	buildErr := errors.New("out of entropy")
	svc := NewTransactionService(st, func() (*store.Generation, error) {
		return nil, buildErr
	}, logger.New("test"))

	err := svc.Reset()

	require.Error(t, err)
	assert.ErrorIs(t, err, buildErr)
	assert.Len(t, st.Snapshot().Transactions, 1)
}
