// Package generator builds referentially valid synthetic CRE datasets.
// Every foreign key on a generated transaction resolves within the same
// generation.
package generator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/store"
	"github.com/shopspring/decimal"
)

// Default dataset sizes.
const (
	DefaultProperties   = 200
	DefaultParties      = 400
	DefaultBrokers      = 100
	DefaultTransactions = 1000
)

// ErrInvalidConfig is returned when the dataset sizes cannot produce a
// consistent generation.
var ErrInvalidConfig = errors.New("generator: invalid config")

var (
	zoningCodes = []string{"C-1", "C-2", "C-3", "I-1", "I-2", "R-M", "PUD"}
	loanTypes   = []string{"CMBS", "Portfolio", "Bridge", "Construction"}
	docTypes    = []string{"Deed", "Listing Flyer", "Appraisal", "Environmental Report", "Lease Agreement"}
	priceSource = []string{"Previous Sale", "Appraisal", "Tax Assessment"}
)

// Config controls dataset sizes and the random seed.
type Config struct {
	Properties   int
	Parties      int
	Brokers      int
	Transactions int
	// Seed makes generation reproducible when non-zero.
	Seed uint64
}

// DefaultConfig returns the standard dataset sizes.
func DefaultConfig() Config {
	return Config{
		Properties:   DefaultProperties,
		Parties:      DefaultParties,
		Brokers:      DefaultBrokers,
		Transactions: DefaultTransactions,
	}
}

// Generator produces synthetic generations of the entity store.
type Generator struct {
	cfg Config
}

// New creates a Generator with the given config.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate builds a complete generation: independent entities first, then
// transactions linking them. The result satisfies all dataset invariants
// (buyer != seller, conditional lease/mortgagee fields, sorted pricing
// history, resolvable references).
func (g *Generator) Generate() (*store.Generation, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	f := gofakeit.New(g.cfg.Seed)
	gen := store.NewGeneration()

	propertyIDs := make([]string, 0, g.cfg.Properties)
	for i := 0; i < g.cfg.Properties; i++ {
		p := newProperty(f)
		gen.Properties[p.PropertyID] = p
		propertyIDs = append(propertyIDs, p.PropertyID)
	}

	partyIDs := make([]string, 0, g.cfg.Parties)
	for i := 0; i < g.cfg.Parties; i++ {
		p := newParty(f)
		gen.Parties[p.PartyID] = p
		partyIDs = append(partyIDs, p.PartyID)
	}

	brokerIDs := make([]string, 0, g.cfg.Brokers)
	for i := 0; i < g.cfg.Brokers; i++ {
		b := newBroker(f)
		gen.Brokers[b.BrokerID] = b
		brokerIDs = append(brokerIDs, b.BrokerID)
	}

	now := time.Now()
	for i := 0; i < g.cfg.Transactions; i++ {
		t := newTransaction(f, propertyIDs, partyIDs, brokerIDs, now)

		for d := 0; d < f.Number(0, 4); d++ {
			doc := newDocument(f)
			gen.Documents[doc.DocumentID] = doc
			t.DocumentIDs = append(t.DocumentIDs, doc.DocumentID)
		}

		gen.Transactions = append(gen.Transactions, t)
	}

	return gen, nil
}

func (g *Generator) validate() error {
	if g.cfg.Properties < 1 || g.cfg.Brokers < 1 {
		return fmt.Errorf("%w: at least one property and one broker required", ErrInvalidConfig)
	}
	// Buyer and seller must differ within every transaction.
	if g.cfg.Parties < 2 {
		return fmt.Errorf("%w: at least two parties required", ErrInvalidConfig)
	}
	if g.cfg.Transactions < 0 {
		return fmt.Errorf("%w: transaction count must be non-negative", ErrInvalidConfig)
	}
	return nil
}

func newProperty(f *gofakeit.Faker) models.Property {
	p := models.Property{
		PropertyID: uuid.NewString(),
		Address: models.Address{
			StreetAddress: f.Street(),
			City:          f.City(),
			State:         f.StateAbr(),
			PostalCode:    f.Zip(),
			Country:       "USA",
		},
		PropertyType:  pick(f, models.PropertyTypes),
		SquareFootage: f.Number(1000, 500000),
		Zoning:        pick(f, zoningCodes),
	}
	if chance(f, 0.8) {
		year := f.Number(1960, 2023)
		p.YearBuilt = &year
	}
	if chance(f, 0.6) {
		desc := f.Sentence(10)
		p.Description = &desc
	}
	return p
}

func newParty(f *gofakeit.Faker) models.Party {
	return models.Party{
		PartyID:        uuid.NewString(),
		Name:           f.Company(),
		Classification: pick(f, models.BuyerTypes),
	}
}

func newBroker(f *gofakeit.Faker) models.Broker {
	return models.Broker{
		BrokerID: uuid.NewString(),
		Name:     f.Name(),
		Agency:   f.Company() + " Realty",
		Role:     pick(f, models.BrokerRoles),
	}
}

func newDocument(f *gofakeit.Faker) models.Document {
	id := uuid.NewString()
	docType := pick(f, docTypes)
	desc := fmt.Sprintf("%s Document Ref %s", docType, id)
	return models.Document{
		DocumentID:  id,
		URL:         fmt.Sprintf("http://example.com/docs/%s.pdf", id),
		Description: &desc,
		Type:        docType,
	}
}

func newTransaction(f *gofakeit.Faker, propertyIDs, partyIDs, brokerIDs []string, now time.Time) models.Transaction {
	txDate := f.DateRange(time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC))
	txType := pick(f, models.TransactionTypes)
	price := float64(f.Number(50000, 100000000))

	buyerID := pick(f, partyIDs)
	sellerID := pick(f, partyIDs)
	for buyerID == sellerID {
		sellerID = pick(f, partyIDs)
	}

	t := models.Transaction{
		TransactionID:     uuid.NewString(),
		TransactionDate:   models.DateOf(txDate),
		TransactionType:   txType,
		Price:             price,
		Currency:          "USD",
		PropertyID:        pick(f, propertyIDs),
		BuyerID:           buyerID,
		SellerID:          sellerID,
		BrokerIDs:         pickBrokers(f, brokerIDs),
		Financing:         newFinancing(f, price),
		HistoricalPricing: newPricingHistory(f, txDate, price),
		// The original generator draws createdAt before the transaction
		// date by construction, but nothing enforces the ordering.
		CreatedAt: f.DateRange(time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), txDate),
		UpdatedAt: f.DateRange(txDate, now),
	}

	switch txType {
	case models.TransactionTypeLease, models.TransactionTypeSublease:
		terms := fmt.Sprintf("Term: %d years, Rate: $%.2f/sqft/yr", f.Number(1, 10), f.Float64Range(10, 100))
		t.LeaseTerms = &terms
	case models.TransactionTypeMortgageeSale:
		conditions := "Sold As-Is via foreclosure auction."
		t.MortgageeConditions = &conditions
	}

	return t
}

func newFinancing(f *gofakeit.Faker, price float64) *models.Financing {
	if !chance(f, 0.7) {
		return nil
	}
	loan := float64(f.Number(int(price*0.3), int(price*0.9)))
	fin := &models.Financing{
		LoanAmount: loan,
		Lender:     f.Company() + " Bank",
		LoanType:   pick(f, loanTypes),
	}
	if chance(f, 0.9) {
		rate := f.Float64Range(3.5, 8.5)
		fin.InterestRate = &rate
	}
	if price > 0 {
		ltv, _ := decimal.NewFromFloat(loan).
			Div(decimal.NewFromFloat(price)).
			Round(2).
			Float64()
		fin.LoanToValueRatio = &ltv
	}
	return fin
}

func newPricingHistory(f *gofakeit.Faker, txDate time.Time, price float64) []models.HistoricalPricing {
	const startYear = 1980

	count := f.Number(0, 3)
	history := make([]models.HistoricalPricing, 0, count)
	lastPrice := price

	for i := 0; i < count; i++ {
		maxYearsAgo := txDate.Year() - startYear
		if maxYearsAgo < 1 {
			break
		}
		yearsAgo := f.Number(1, maxYearsAgo)
		fluctuation := f.Float64Range(0.7, 1.3)
		lastPrice = max(10000, float64(int(lastPrice/fluctuation)))

		history = append(history, models.HistoricalPricing{
			Date:   models.DateOf(txDate.AddDate(-yearsAgo, 0, 0)),
			Price:  lastPrice,
			Source: pick(f, priceSource),
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date.Time)
	})
	return history
}

// pickBrokers selects 1-3 distinct broker IDs, preserving no particular
// order beyond the shuffle.
func pickBrokers(f *gofakeit.Faker, brokerIDs []string) []string {
	count := f.Number(1, min(3, len(brokerIDs)))
	shuffled := make([]string, len(brokerIDs))
	copy(shuffled, brokerIDs)
	f.ShuffleStrings(shuffled)
	return shuffled[:count]
}

func pick[T any](f *gofakeit.Faker, values []T) T {
	return values[f.Number(0, len(values)-1)]
}

func chance(f *gofakeit.Faker, probability float64) bool {
	return f.Float64Range(0, 1) < probability
}
