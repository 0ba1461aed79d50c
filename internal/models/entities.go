// Package models defines the commercial real-estate entities served by the
// API. All entities are identified by opaque string IDs; transactions
// reference related entities by ID only and are resolved into embedded
// objects at response time.
package models

import "time"

// TransactionType enumerates the supported transaction categories.
type TransactionType string

const (
	TransactionTypeLease            TransactionType = "lease"
	TransactionTypeSublease         TransactionType = "sublease"
	TransactionTypeGoingConcernSale TransactionType = "going_concern_sale"
	TransactionTypeMortgageeSale    TransactionType = "mortgagee_sale"
	TransactionTypeStandardSale     TransactionType = "standard_sale"
)

// TransactionTypes lists every valid transaction type.
var TransactionTypes = []TransactionType{
	TransactionTypeLease,
	TransactionTypeSublease,
	TransactionTypeGoingConcernSale,
	TransactionTypeMortgageeSale,
	TransactionTypeStandardSale,
}

// BuyerType enumerates party classifications.
type BuyerType string

const (
	BuyerTypePrivateEquity         BuyerType = "Private Equity"
	BuyerTypePubliclyListedCompany BuyerType = "Publicly Listed Company"
	BuyerTypePrivateBuyer          BuyerType = "Private Buyer"
	BuyerTypeVentureCapital        BuyerType = "Venture Capital"
	BuyerTypeREIT                  BuyerType = "REIT"
	BuyerTypeGovernment            BuyerType = "Government"
	BuyerTypeInstitutionalInvestor BuyerType = "Institutional Investor"
	BuyerTypeOther                 BuyerType = "Other"
)

// BuyerTypes lists every valid party classification.
var BuyerTypes = []BuyerType{
	BuyerTypePrivateEquity,
	BuyerTypePubliclyListedCompany,
	BuyerTypePrivateBuyer,
	BuyerTypeVentureCapital,
	BuyerTypeREIT,
	BuyerTypeGovernment,
	BuyerTypeInstitutionalInvestor,
	BuyerTypeOther,
}

// PropertyType enumerates property categories.
type PropertyType string

const (
	PropertyTypeOffice         PropertyType = "Office"
	PropertyTypeRetail         PropertyType = "Retail"
	PropertyTypeIndustrial     PropertyType = "Industrial"
	PropertyTypeMultifamily    PropertyType = "Multifamily"
	PropertyTypeLand           PropertyType = "Land"
	PropertyTypeHospitality    PropertyType = "Hospitality"
	PropertyTypeSpecialPurpose PropertyType = "Special Purpose"
	PropertyTypeMixedUse       PropertyType = "Mixed Use"
)

// PropertyTypes lists every valid property type.
var PropertyTypes = []PropertyType{
	PropertyTypeOffice,
	PropertyTypeRetail,
	PropertyTypeIndustrial,
	PropertyTypeMultifamily,
	PropertyTypeLand,
	PropertyTypeHospitality,
	PropertyTypeSpecialPurpose,
	PropertyTypeMixedUse,
}

// BrokerRole enumerates broker roles on a transaction.
type BrokerRole string

const (
	BrokerRoleBuyerAgent  BrokerRole = "buyer_agent"
	BrokerRoleSellerAgent BrokerRole = "seller_agent"
	BrokerRoleDualAgent   BrokerRole = "dual_agent"
	BrokerRoleConsultant  BrokerRole = "consultant"
	BrokerRoleOther       BrokerRole = "other"
)

// BrokerRoles lists every valid broker role.
var BrokerRoles = []BrokerRole{
	BrokerRoleBuyerAgent,
	BrokerRoleSellerAgent,
	BrokerRoleDualAgent,
	BrokerRoleConsultant,
	BrokerRoleOther,
}

// Address is a postal address attached to a property.
type Address struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
}

// Property is a commercial real-estate asset.
// Nullable fields use pointers to distinguish absent from zero values.
type Property struct {
	PropertyID    string       `json:"propertyId"`
	Address       Address      `json:"address"`
	PropertyType  PropertyType `json:"propertyType"`
	SquareFootage int          `json:"squareFootage"`
	Zoning        string       `json:"zoning"`
	YearBuilt     *int         `json:"yearBuilt"`
	Description   *string      `json:"description"`
}

// Party is a buyer or seller on a transaction.
type Party struct {
	PartyID        string    `json:"partyId"`
	Name           string    `json:"name"`
	Classification BuyerType `json:"classification"`
}

// Broker represents a brokerage agent involved in a transaction.
type Broker struct {
	BrokerID string     `json:"brokerId"`
	Name     string     `json:"name"`
	Agency   string     `json:"agency"`
	Role     BrokerRole `json:"role"`
}

// Document is a reference to a file associated with a transaction.
type Document struct {
	DocumentID  string  `json:"documentId"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
}

// Financing describes loan terms on a transaction. It is embedded, never
// independently identified.
type Financing struct {
	LoanAmount float64 `json:"loanAmount"`
	Lender     string  `json:"lender"`
	LoanType   string  `json:"loanType"`
	// InterestRate is a percentage, nil when unknown.
	InterestRate *float64 `json:"interestRate"`
	// LoanToValueRatio is loanAmount/price rounded to 2 decimals,
	// nil when the price is not positive.
	LoanToValueRatio *float64 `json:"loanToValueRatio"`
}

// HistoricalPricing is one prior price point for the asset on a
// transaction. Entries on a transaction are sorted ascending by date.
type HistoricalPricing struct {
	Date   Date    `json:"date"`
	Price  float64 `json:"price"`
	Source string  `json:"source"`
}

// Transaction is the denormalized record at the center of the API.
// Related entities are referenced by ID; see EnrichedTransaction for the
// resolved response form.
type Transaction struct {
	TransactionID   string          `json:"transactionId"`
	TransactionDate Date            `json:"transactionDate"`
	TransactionType TransactionType `json:"transactionType"`
	Price           float64         `json:"price"`
	Currency        string          `json:"currency"`
	// LeaseTerms is populated iff the type is lease or sublease.
	LeaseTerms *string `json:"leaseTerms"`
	// MortgageeConditions is populated iff the type is mortgagee_sale.
	MortgageeConditions *string             `json:"mortgageeConditions"`
	PropertyID          string              `json:"propertyId"`
	BuyerID             string              `json:"buyerId"`
	SellerID            string              `json:"sellerId"`
	BrokerIDs           []string            `json:"brokerIds"`
	Financing           *Financing          `json:"financing"`
	DocumentIDs         []string            `json:"documentIds"`
	HistoricalPricing   []HistoricalPricing `json:"historicalPricing"`
	// CreatedAt is typically, but not strictly guaranteed to be, before
	// the transaction date.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnrichedTransaction is a transaction with its foreign keys resolved into
// embedded copies of the referenced entities. Referenced entities that no
// longer resolve are omitted.
type EnrichedTransaction struct {
	Transaction
	Property  *Property  `json:"property,omitempty"`
	Buyer     *Party     `json:"buyer,omitempty"`
	Seller    *Party     `json:"seller,omitempty"`
	Brokers   []Broker   `json:"brokers"`
	Documents []Document `json:"documents"`
}
