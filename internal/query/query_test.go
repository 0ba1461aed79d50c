package query

import (
	"testing"
	"time"

	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/store"
)

// testGeneration builds a small deterministic snapshot used across the
// query package tests.
func testGeneration() *store.Generation {
	gen := store.NewGeneration()

	gen.Properties["prop-ny"] = models.Property{
		PropertyID: "prop-ny",
		Address: models.Address{
			StreetAddress: "1 Liberty St",
			City:          "New York",
			State:         "NY",
			PostalCode:    "10005",
			Country:       "USA",
		},
		PropertyType:  models.PropertyTypeOffice,
		SquareFootage: 120000,
		Zoning:        "C-2",
	}
	gen.Properties["prop-la"] = models.Property{
		PropertyID: "prop-la",
		Address: models.Address{
			StreetAddress: "500 Sunset Blvd",
			City:          "Los Angeles",
			State:         "CA",
			PostalCode:    "90028",
			Country:       "USA",
		},
		PropertyType:  models.PropertyTypeRetail,
		SquareFootage: 8000,
		Zoning:        "C-1",
	}

	gen.Parties["party-pe"] = models.Party{PartyID: "party-pe", Name: "Summit Capital", Classification: models.BuyerTypePrivateEquity}
	gen.Parties["party-reit"] = models.Party{PartyID: "party-reit", Name: "Gateway REIT", Classification: models.BuyerTypeREIT}
	gen.Parties["party-gov"] = models.Party{PartyID: "party-gov", Name: "City of Austin", Classification: models.BuyerTypeGovernment}

	gen.Brokers["broker-1"] = models.Broker{BrokerID: "broker-1", Name: "Ann Lee", Agency: "Lee Realty", Role: models.BrokerRoleBuyerAgent}
	gen.Brokers["broker-2"] = models.Broker{BrokerID: "broker-2", Name: "Bob Ray", Agency: "Ray & Co", Role: models.BrokerRoleSellerAgent}

	gen.Documents["doc-1"] = models.Document{DocumentID: "doc-1", URL: "http://example.com/docs/doc-1.pdf", Type: "Deed"}

	gen.Transactions = []models.Transaction{
		{
			TransactionID:   "tx-1",
			TransactionDate: models.NewDate(2020, time.March, 10),
			TransactionType: models.TransactionTypeStandardSale,
			Price:           5000000,
			Currency:        "USD",
			PropertyID:      "prop-ny",
			BuyerID:         "party-pe",
			SellerID:        "party-reit",
			BrokerIDs:       []string{"broker-1", "broker-2"},
			DocumentIDs:     []string{"doc-1"},
			CreatedAt:       time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2021, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			TransactionID:   "tx-2",
			TransactionDate: models.NewDate(2022, time.August, 1),
			TransactionType: models.TransactionTypeLease,
			Price:           250000,
			Currency:        "USD",
			PropertyID:      "prop-la",
			BuyerID:         "party-reit",
			SellerID:        "party-gov",
			BrokerIDs:       []string{"broker-2"},
			CreatedAt:       time.Date(2022, time.February, 14, 0, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2022, time.September, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			TransactionID:   "tx-3",
			TransactionDate: models.NewDate(2018, time.November, 30),
			TransactionType: models.TransactionTypeMortgageeSale,
			Price:           12000000,
			Currency:        "USD",
			PropertyID:      "prop-ny",
			BuyerID:         "party-gov",
			SellerID:        "party-pe",
			BrokerIDs:       []string{"broker-1"},
			CreatedAt:       time.Date(2018, time.January, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2019, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			// Dangling property and buyer references on purpose.
			TransactionID:   "tx-dangling",
			TransactionDate: models.NewDate(2021, time.May, 5),
			TransactionType: models.TransactionTypeStandardSale,
			Price:           900000,
			Currency:        "USD",
			PropertyID:      "prop-gone",
			BuyerID:         "party-gone",
			SellerID:        "party-pe",
			BrokerIDs:       []string{"broker-gone", "broker-1"},
			DocumentIDs:     []string{"doc-gone", "doc-1"},
			CreatedAt:       time.Date(2020, time.July, 7, 0, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2021, time.June, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	return gen
}

func ids(list []models.Transaction) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.TransactionID)
	}
	return out
}

func transactionByID(t *testing.T, gen *store.Generation, id string) models.Transaction {
	t.Helper()
	for _, tx := range gen.Transactions {
		if tx.TransactionID == id {
			return tx
		}
	}
	t.Fatalf("fixture transaction %s not found", id)
	return models.Transaction{}
}
