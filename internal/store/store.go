package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
)

// Store defines the interface for database operations.
// Getters return (nil, nil) when the row does not exist.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateProperty inserts a property; an existing id yields a ConflictError
	CreateProperty(ctx context.Context, property *schema.Property) error
	// GetProperty retrieves a property by id
	GetProperty(ctx context.Context, id string) (*schema.Property, error)
	// ListProperties returns a page of properties ordered by creation time and the total count
	ListProperties(ctx context.Context, filter PropertyFilter) ([]schema.Property, int64, error)
	// UpdatePropertyMetadata replaces the descriptive fields and the pinned metadata pointer
	UpdatePropertyMetadata(ctx context.Context, id string, input UpdatePropertyMetadataInput) (*schema.Property, error)

	// CreateTokenRecord registers a token and links it to its property in one transaction
	CreateTokenRecord(ctx context.Context, record *schema.TokenRecord) error
	// GetTokenRecordByTokenID retrieves a token record by ledger token id
	GetTokenRecordByTokenID(ctx context.Context, tokenID string) (*schema.TokenRecord, error)
	// GetTokenRecordByPropertyID retrieves the token record of a property
	GetTokenRecordByPropertyID(ctx context.Context, propertyID string) (*schema.TokenRecord, error)
	// ListTokenRecords returns a page of token records and the total count
	ListTokenRecords(ctx context.Context, filter TokenRecordFilter) ([]schema.TokenRecord, int64, error)
	// AdjustTokenSupply atomically adds delta to the supply. A result below zero is
	// rejected with a ConflictError and leaves the stored value unchanged.
	AdjustTokenSupply(ctx context.Context, tokenID string, delta int64) (*schema.TokenRecord, error)

	// CreateSale inserts a sale
	CreateSale(ctx context.Context, sale *schema.Sale) error
	// GetSale retrieves a sale by id
	GetSale(ctx context.Context, id string) (*schema.Sale, error)
	// ListSales returns a page of sales and the total count
	ListSales(ctx context.Context, filter SaleFilter) ([]schema.Sale, int64, error)
	// CompleteSale moves a PENDING sale to COMPLETED
	CompleteSale(ctx context.Context, id string, input CompleteSaleInput) error
	// FailSale moves a PENDING sale to FAILED
	FailSale(ctx context.Context, id string, reason string) error

	// CreateAuditRecord inserts an audit record
	CreateAuditRecord(ctx context.Context, record *schema.AuditRecord) error
	// ListAuditRecords returns audit records matching the filter, newest first
	ListAuditRecords(ctx context.Context, filter AuditRecordFilter) ([]schema.AuditRecord, error)

	// Ping checks database connectivity
	Ping(ctx context.Context) error
}

// PropertyFilter selects a page of properties
type PropertyFilter struct {
	Tokenized *bool
	Limit     int
	Offset    int
}

// UpdatePropertyMetadataInput holds the revisable property fields
type UpdatePropertyMetadataInput struct {
	Title         string
	Address       string
	Description   string
	Valuation     decimal.Decimal
	PricePerToken decimal.Decimal
	Media         []domain.MediaRef
	MetadataCID   string
	ContentHash   string
}

// TokenRecordFilter selects token records
type TokenRecordFilter struct {
	PropertyID string
	Symbol     string
	Limit      int
	Offset     int
}

// SaleFilter selects sales
type SaleFilter struct {
	PropertyID     string
	TokenID        string
	BuyerAccountID string
	Status         domain.SaleStatus
	Limit          int
	Offset         int
}

// CompleteSaleInput holds the references recorded when a sale completes
type CompleteSaleInput struct {
	PaymentRef   string
	TransferTxID string
	AuditRef     *string
	CompletedAt  time.Time
}

// AuditRecordFilter selects audit records
type AuditRecordFilter struct {
	TopicID    string
	PropertyID string
	TokenID    string
	Limit      int
}
