package registry

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/store"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
)

// Entry is a token to register
type Entry struct {
	TokenID           string
	PropertyID        string
	Name              string
	Symbol            string
	Decimals          int
	InitialSupply     int64
	TreasuryAccountID string
	TreasuryKey       string
	TopicID           string
	Metadata          []byte
}

// Filter selects token records
type Filter struct {
	PropertyID string
	Symbol     string
	Offset     int
	Limit      int
}

// Page is a page of token records
type Page struct {
	Total  int64                `json:"total"`
	Offset int                  `json:"offset"`
	Limit  int                  `json:"limit"`
	Items  []schema.TokenRecord `json:"items"`
}

// Registry keeps the local record of issued share tokens and their supply
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Create registers a token and links it to its property. A duplicate token id
	// or a second token for the same property yields a ConflictError.
	Create(ctx context.Context, entry Entry) (*schema.TokenRecord, error)

	// FindByTokenID returns the record of a token or a NotFoundError
	FindByTokenID(ctx context.Context, tokenID string) (*schema.TokenRecord, error)

	// FindByPropertyID returns the token record of a property or a NotFoundError
	FindByPropertyID(ctx context.Context, propertyID string) (*schema.TokenRecord, error)

	// ListAll returns a page of token records
	ListAll(ctx context.Context, filter Filter) (*Page, error)

	// IncrementSupply adds amount to the recorded supply
	IncrementSupply(ctx context.Context, tokenID string, amount int64) (*schema.TokenRecord, error)

	// DecrementSupply subtracts amount from the recorded supply. Going below zero
	// yields a ConflictError and leaves the supply unchanged.
	DecrementSupply(ctx context.Context, tokenID string, amount int64) (*schema.TokenRecord, error)
}

type registry struct {
	store store.Store
}

// New creates a registry backed by st
func New(st store.Store) Registry {
	return &registry{store: st}
}

func (r *registry) Create(ctx context.Context, entry Entry) (*schema.TokenRecord, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	record := &schema.TokenRecord{
		TokenID:           entry.TokenID,
		PropertyID:        entry.PropertyID,
		Name:              entry.Name,
		Symbol:            strings.ToUpper(entry.Symbol),
		Decimals:          entry.Decimals,
		TotalSupply:       entry.InitialSupply,
		TreasuryAccountID: entry.TreasuryAccountID,
		TreasuryKey:       entry.TreasuryKey,
	}
	if entry.TopicID != "" {
		topicID := entry.TopicID
		record.TopicID = &topicID
	}
	if len(entry.Metadata) > 0 {
		record.Metadata = datatypes.JSON(entry.Metadata)
	}

	if err := r.store.CreateTokenRecord(ctx, record); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Token registered",
		zap.String("tokenID", record.TokenID),
		zap.String("propertyID", record.PropertyID),
		zap.Int64("supply", record.TotalSupply))

	return record, nil
}

func validateEntry(entry Entry) error {
	fields := map[string]string{}
	if !domain.IsValidEntityID(entry.TokenID) {
		fields["tokenId"] = "must be shard.realm.num"
	}
	if entry.PropertyID == "" {
		fields["propertyId"] = "is required"
	}
	if entry.Name == "" {
		fields["name"] = "is required"
	}
	if entry.Symbol == "" {
		fields["symbol"] = "is required"
	}
	if entry.Decimals < 0 {
		fields["decimals"] = "must not be negative"
	}
	if entry.InitialSupply < 0 {
		fields["initialSupply"] = "must not be negative"
	}
	if !domain.IsValidEntityID(entry.TreasuryAccountID) {
		fields["treasuryAccountId"] = "must be shard.realm.num"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Message: "invalid token record", Fields: fields}
	}
	return nil
}

func (r *registry) FindByTokenID(ctx context.Context, tokenID string) (*schema.TokenRecord, error) {
	record, err := r.store.GetTokenRecordByTokenID(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to find token: %w", err)
	}
	if record == nil {
		return nil, domain.NewNotFoundError("token", tokenID)
	}
	return record, nil
}

func (r *registry) FindByPropertyID(ctx context.Context, propertyID string) (*schema.TokenRecord, error) {
	record, err := r.store.GetTokenRecordByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find token for property: %w", err)
	}
	if record == nil {
		return nil, domain.NewNotFoundError("token for property", propertyID)
	}
	return record, nil
}

func (r *registry) ListAll(ctx context.Context, filter Filter) (*Page, error) {
	records, total, err := r.store.ListTokenRecords(ctx, store.TokenRecordFilter{
		PropertyID: filter.PropertyID,
		Symbol:     strings.ToUpper(filter.Symbol),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
	if err != nil {
		return nil, err
	}

	limit, offset := store.ClampPage(filter.Limit, filter.Offset)
	return &Page{
		Total:  total,
		Offset: offset,
		Limit:  limit,
		Items:  records,
	}, nil
}

func (r *registry) IncrementSupply(ctx context.Context, tokenID string, amount int64) (*schema.TokenRecord, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	return r.adjust(ctx, tokenID, amount)
}

func (r *registry) DecrementSupply(ctx context.Context, tokenID string, amount int64) (*schema.TokenRecord, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	return r.adjust(ctx, tokenID, -amount)
}

func (r *registry) adjust(ctx context.Context, tokenID string, delta int64) (*schema.TokenRecord, error) {
	record, err := r.store.AdjustTokenSupply(ctx, tokenID, delta)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Token supply adjusted",
		zap.String("tokenID", tokenID),
		zap.Int64("delta", delta),
		zap.Int64("supply", record.TotalSupply))

	return record, nil
}
