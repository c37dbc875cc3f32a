package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
	maxAuditRecords = 500
)

type dbStore struct {
	db *gorm.DB
}

// NewStore creates a store over a gorm connection (SQLite or PostgreSQL)
func NewStore(db *gorm.DB) Store {
	return &dbStore{db: db}
}

// ClampPage applies the default page size of 25, caps it at 100 and floors offset at 0
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// CreateProperty inserts a property; an existing id yields a ConflictError
func (s *dbStore) CreateProperty(ctx context.Context, property *schema.Property) error {
	err := s.db.WithContext(ctx).Create(property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Message: fmt.Sprintf("property %s already exists", property.ID), Err: err}
		}
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

// GetProperty retrieves a property by id
func (s *dbStore) GetProperty(ctx context.Context, id string) (*schema.Property, error) {
	var property schema.Property
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return &property, nil
}

// ListProperties returns a page of properties ordered by creation time and the total count
func (s *dbStore) ListProperties(ctx context.Context, filter PropertyFilter) ([]schema.Property, int64, error) {
	limit, offset := ClampPage(filter.Limit, filter.Offset)

	query := s.db.WithContext(ctx).Model(&schema.Property{})
	if filter.Tokenized != nil {
		if *filter.Tokenized {
			query = query.Where("token_id IS NOT NULL")
		} else {
			query = query.Where("token_id IS NULL")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	var properties []schema.Property
	err := query.Order("created_at ASC, id ASC").Limit(limit).Offset(offset).Find(&properties).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	return properties, total, nil
}

// UpdatePropertyMetadata replaces the descriptive fields and the pinned metadata pointer
func (s *dbStore) UpdatePropertyMetadata(ctx context.Context, id string, input UpdatePropertyMetadataInput) (*schema.Property, error) {
	var updated *schema.Property

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.Property{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":           input.Title,
			"address":         input.Address,
			"description":     input.Description,
			"valuation":       input.Valuation,
			"price_per_token": input.PricePerToken,
			"media":           schema.NewMediaList(input.Media),
			"metadata_cid":    input.MetadataCID,
			"content_hash":    input.ContentHash,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update property: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.NewNotFoundError("property", id)
		}

		var property schema.Property
		if err := tx.Where("id = ?", id).First(&property).Error; err != nil {
			return fmt.Errorf("failed to reload property: %w", err)
		}
		updated = &property

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CreateTokenRecord registers a token and links it to its property in one transaction
func (s *dbStore) CreateTokenRecord(ctx context.Context, record *schema.TokenRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Property{}).Where("id = ?", record.PropertyID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check property: %w", err)
		}
		if count == 0 {
			return domain.NewNotFoundError("property", record.PropertyID)
		}

		if err := tx.Create(record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &domain.ConflictError{
					Message: fmt.Sprintf("token record already exists for token %s or property %s", record.TokenID, record.PropertyID),
					Err:     err,
				}
			}
			return fmt.Errorf("failed to create token record: %w", err)
		}

		res := tx.Model(&schema.Property{}).
			Where("id = ? AND token_id IS NULL", record.PropertyID).
			Updates(map[string]interface{}{
				"token_id":            record.TokenID,
				"treasury_account_id": record.TreasuryAccountID,
				"topic_id":            record.TopicID,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to link property: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return &domain.ConflictError{Message: fmt.Sprintf("property %s", record.PropertyID), Err: domain.ErrAlreadyTokenized}
		}

		return nil
	})
}

// GetTokenRecordByTokenID retrieves a token record by ledger token id
func (s *dbStore) GetTokenRecordByTokenID(ctx context.Context, tokenID string) (*schema.TokenRecord, error) {
	return s.getTokenRecord(ctx, "token_id = ?", tokenID)
}

// GetTokenRecordByPropertyID retrieves the token record of a property
func (s *dbStore) GetTokenRecordByPropertyID(ctx context.Context, propertyID string) (*schema.TokenRecord, error) {
	return s.getTokenRecord(ctx, "property_id = ?", propertyID)
}

func (s *dbStore) getTokenRecord(ctx context.Context, where string, arg string) (*schema.TokenRecord, error) {
	var record schema.TokenRecord
	err := s.db.WithContext(ctx).Where(where, arg).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token record: %w", err)
	}

	return &record, nil
}

// ListTokenRecords returns a page of token records and the total count
func (s *dbStore) ListTokenRecords(ctx context.Context, filter TokenRecordFilter) ([]schema.TokenRecord, int64, error) {
	limit, offset := ClampPage(filter.Limit, filter.Offset)

	query := s.db.WithContext(ctx).Model(&schema.TokenRecord{})
	if filter.PropertyID != "" {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.Symbol != "" {
		query = query.Where("symbol = ?", filter.Symbol)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count token records: %w", err)
	}

	var records []schema.TokenRecord
	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list token records: %w", err)
	}

	return records, total, nil
}

// AdjustTokenSupply atomically adds delta to the supply.
// The guard lives in the UPDATE itself so concurrent writers cannot lose updates.
func (s *dbStore) AdjustTokenSupply(ctx context.Context, tokenID string, delta int64) (*schema.TokenRecord, error) {
	var updated schema.TokenRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.TokenRecord{}).
			Where("token_id = ? AND total_supply + ? >= 0", tokenID, delta).
			Update("total_supply", gorm.Expr("total_supply + ?", delta))
		if res.Error != nil {
			return fmt.Errorf("failed to adjust supply: %w", res.Error)
		}

		err := tx.Where("token_id = ?", tokenID).First(&updated).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("token", tokenID)
			}
			return fmt.Errorf("failed to reload token record: %w", err)
		}

		if res.RowsAffected == 0 {
			return &domain.ConflictError{
				Message: fmt.Sprintf("cannot change supply of %s by %d (current %d)", tokenID, delta, updated.TotalSupply),
				Err:     domain.ErrInsufficientSupply,
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// CreateSale inserts a sale
func (s *dbStore) CreateSale(ctx context.Context, sale *schema.Sale) error {
	if err := s.db.WithContext(ctx).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

// GetSale retrieves a sale by id
func (s *dbStore) GetSale(ctx context.Context, id string) (*schema.Sale, error) {
	var sale schema.Sale
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	return &sale, nil
}

// ListSales returns a page of sales, newest first, and the total count
func (s *dbStore) ListSales(ctx context.Context, filter SaleFilter) ([]schema.Sale, int64, error) {
	limit, offset := ClampPage(filter.Limit, filter.Offset)

	query := s.db.WithContext(ctx).Model(&schema.Sale{})
	if filter.PropertyID != "" {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.TokenID != "" {
		query = query.Where("token_id = ?", filter.TokenID)
	}
	if filter.BuyerAccountID != "" {
		query = query.Where("buyer_account_id = ?", filter.BuyerAccountID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	var sales []schema.Sale
	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&sales).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}

	return sales, total, nil
}

// CompleteSale moves a PENDING sale to COMPLETED
func (s *dbStore) CompleteSale(ctx context.Context, id string, input CompleteSaleInput) error {
	res := s.db.WithContext(ctx).Model(&schema.Sale{}).
		Where("id = ? AND status = ?", id, domain.SaleStatusPending).
		Updates(map[string]interface{}{
			"status":         domain.SaleStatusCompleted,
			"payment_ref":    input.PaymentRef,
			"transfer_tx_id": input.TransferTxID,
			"audit_ref":      input.AuditRef,
			"completed_at":   input.CompletedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to complete sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return s.transitionError(ctx, id, domain.SaleStatusCompleted)
	}

	return nil
}

// FailSale moves a PENDING sale to FAILED
func (s *dbStore) FailSale(ctx context.Context, id string, reason string) error {
	res := s.db.WithContext(ctx).Model(&schema.Sale{}).
		Where("id = ? AND status = ?", id, domain.SaleStatusPending).
		Updates(map[string]interface{}{
			"status":         domain.SaleStatusFailed,
			"failure_reason": reason,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to mark sale failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return s.transitionError(ctx, id, domain.SaleStatusFailed)
	}

	return nil
}

// transitionError explains why a PENDING-guarded update touched no rows
func (s *dbStore) transitionError(ctx context.Context, id string, target domain.SaleStatus) error {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.NewNotFoundError("sale", id)
	}

	return &domain.ConflictError{Message: fmt.Sprintf("sale %s is %s, cannot move to %s", id, sale.Status, target)}
}

// CreateAuditRecord inserts an audit record
func (s *dbStore) CreateAuditRecord(ctx context.Context, record *schema.AuditRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}
	return nil
}

// ListAuditRecords returns audit records matching the filter, newest first
func (s *dbStore) ListAuditRecords(ctx context.Context, filter AuditRecordFilter) ([]schema.AuditRecord, error) {
	limit := filter.Limit
	if limit <= 0 || limit > maxAuditRecords {
		limit = maxAuditRecords
	}

	query := s.db.WithContext(ctx).Model(&schema.AuditRecord{})
	if filter.TopicID != "" {
		query = query.Where("topic_id = ?", filter.TopicID)
	}
	if filter.PropertyID != "" {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.TokenID != "" {
		query = query.Where("token_id = ?", filter.TokenID)
	}

	var records []schema.AuditRecord
	if err := query.Order("id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}

	return records, nil
}

// Ping checks database connectivity
func (s *dbStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
