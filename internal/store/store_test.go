package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestProperty(id string) *schema.Property {
	return &schema.Property{
		ID:            id,
		Title:         "Harbor Loft " + id,
		Address:       "1 Quay Street",
		Valuation:     decimal.NewFromInt(1200000),
		TotalSupply:   10000,
		PricePerToken: decimal.NewFromInt(100),
		Currency:      "USD",
		Media:         schema.NewMediaList([]domain.MediaRef{{CID: "bafyimage", Name: "front.jpg", MimeType: "image/jpeg", Size: 42}}),
		MetadataCID:   "bafymeta",
		ContentHash:   "abc123",
	}
}

func buildTestTokenRecord(tokenID, propertyID string, supply int64) *schema.TokenRecord {
	topic := "0.0.900"
	return &schema.TokenRecord{
		TokenID:           tokenID,
		PropertyID:        propertyID,
		Name:              "Harbor Loft Shares",
		Symbol:            "HLS",
		TotalSupply:       supply,
		TreasuryAccountID: "0.0.800",
		TreasuryKey:       "302e020100300506032b657004220420deadbeef",
		TopicID:           &topic,
	}
}

func buildTestSale(id, propertyID, tokenID string, qty int64) *schema.Sale {
	price := decimal.NewFromInt(100)
	return &schema.Sale{
		ID:             id,
		PropertyID:     propertyID,
		TokenID:        tokenID,
		BuyerAccountID: "0.0.5005",
		Quantity:       qty,
		PricePerToken:  price,
		TotalPrice:     price.Mul(decimal.NewFromInt(qty)),
		Currency:       "USD",
		Status:         domain.SaleStatusPending,
	}
}

func seedToken(t *testing.T, s Store, propertyID, tokenID string, supply int64) {
	ctx := context.Background()
	require.NoError(t, s.CreateProperty(ctx, buildTestProperty(propertyID)))
	require.NoError(t, s.CreateTokenRecord(ctx, buildTestTokenRecord(tokenID, propertyID, supply)))
}

// RunStoreTests runs the store behavior tests against the store returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("Properties", func(t *testing.T) { testProperties(t, initDB(t)) })
	t.Run("TokenRecords", func(t *testing.T) { testTokenRecords(t, initDB(t)) })
	t.Run("SupplyNeverNegative", func(t *testing.T) { testSupplyNeverNegative(t, initDB(t)) })
	t.Run("ConcurrentSupplyAdjustments", func(t *testing.T) { testConcurrentSupplyAdjustments(t, initDB(t)) })
	t.Run("SaleTransitions", func(t *testing.T) { testSaleTransitions(t, initDB(t)) })
	t.Run("AuditRecords", func(t *testing.T) { testAuditRecords(t, initDB(t)) })
}

func testProperties(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.CreateProperty(ctx, buildTestProperty("P1")))
	require.NoError(t, s.CreateProperty(ctx, buildTestProperty("P2")))

	var conflict *domain.ConflictError
	err := s.CreateProperty(ctx, buildTestProperty("P1"))
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflict))

	got, err := s.GetProperty(ctx, "P1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Harbor Loft P1", got.Title)
	assert.True(t, got.Valuation.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, got.PricePerToken.Equal(decimal.NewFromInt(100)))
	require.Len(t, got.Media, 1)
	assert.Equal(t, "bafyimage", got.Media[0].CID)
	assert.False(t, got.Tokenized())

	missing, err := s.GetProperty(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, total, err := s.ListProperties(ctx, PropertyFilter{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 1)

	updated, err := s.UpdatePropertyMetadata(ctx, "P1", UpdatePropertyMetadataInput{
		Title:         "Renamed",
		Address:       "2 Quay Street",
		Valuation:     decimal.RequireFromString("1300000.50"),
		PricePerToken: decimal.NewFromInt(130),
		MetadataCID:   "bafymeta2",
		ContentHash:   "def456",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "bafymeta2", updated.MetadataCID)
	assert.True(t, updated.Valuation.Equal(decimal.RequireFromString("1300000.5")))
	assert.Empty(t, updated.Media)

	_, err = s.UpdatePropertyMetadata(ctx, "nope", UpdatePropertyMetadataInput{Title: "x"})
	var notFound *domain.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func testTokenRecords(t *testing.T, s Store) {
	ctx := context.Background()
	seedToken(t, s, "P1", "0.0.500", 10000)
	require.NoError(t, s.CreateProperty(ctx, buildTestProperty("P2")))

	// Property is linked in the same transaction
	property, err := s.GetProperty(ctx, "P1")
	require.NoError(t, err)
	require.True(t, property.Tokenized())
	assert.Equal(t, "0.0.500", *property.TokenID)
	assert.Equal(t, "0.0.800", *property.TreasuryAccountID)
	assert.Equal(t, "0.0.900", *property.TopicID)

	var conflict *domain.ConflictError

	// Same token id for another property
	err = s.CreateTokenRecord(ctx, buildTestTokenRecord("0.0.500", "P2", 1))
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflict))

	// Second token for the same property
	err = s.CreateTokenRecord(ctx, buildTestTokenRecord("0.0.501", "P1", 1))
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflict))

	// Unknown property
	err = s.CreateTokenRecord(ctx, buildTestTokenRecord("0.0.502", "P9", 1))
	var notFound *domain.NotFoundError
	assert.True(t, errors.As(err, &notFound))

	rec, err := s.GetTokenRecordByTokenID(ctx, "0.0.500")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "P1", rec.PropertyID)
	assert.Equal(t, int64(10000), rec.TotalSupply)

	rec, err = s.GetTokenRecordByPropertyID(ctx, "P1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "0.0.500", rec.TokenID)

	rec, err = s.GetTokenRecordByTokenID(ctx, "0.0.999")
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, s.CreateTokenRecord(ctx, buildTestTokenRecord("0.0.503", "P2", 5)))

	records, total, err := s.ListTokenRecords(ctx, TokenRecordFilter{PropertyID: "P2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, "0.0.503", records[0].TokenID)

	records, total, err = s.ListTokenRecords(ctx, TokenRecordFilter{Symbol: "HLS", Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, records, 1)
}

func testSupplyNeverNegative(t *testing.T, s Store) {
	ctx := context.Background()
	seedToken(t, s, "P1", "0.0.500", 10)

	rec, err := s.AdjustTokenSupply(ctx, "0.0.500", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), rec.TotalSupply)

	rec, err = s.AdjustTokenSupply(ctx, "0.0.500", -15)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.TotalSupply)

	_, err = s.AdjustTokenSupply(ctx, "0.0.500", -1)
	require.Error(t, err)
	var conflict *domain.ConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.ErrorIs(t, err, domain.ErrInsufficientSupply)

	rec, err = s.GetTokenRecordByTokenID(ctx, "0.0.500")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.TotalSupply)

	_, err = s.AdjustTokenSupply(ctx, "0.0.404", 1)
	var notFound *domain.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func testConcurrentSupplyAdjustments(t *testing.T, s Store) {
	ctx := context.Background()
	seedToken(t, s, "P1", "0.0.500", 50)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		rejected int
	)
	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AdjustTokenSupply(ctx, "0.0.500", -1); err != nil {
				mu.Lock()
				rejected++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	rec, err := s.GetTokenRecordByTokenID(ctx, "0.0.500")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.TotalSupply)
	assert.Equal(t, 30, rejected)
}

func testSaleTransitions(t *testing.T, s Store) {
	ctx := context.Background()
	seedToken(t, s, "P1", "0.0.500", 100)

	require.NoError(t, s.CreateSale(ctx, buildTestSale("s1", "P1", "0.0.500", 50)))
	require.NoError(t, s.CreateSale(ctx, buildTestSale("s2", "P1", "0.0.500", 1)))

	auditRef := "01HAUDIT"
	require.NoError(t, s.CompleteSale(ctx, "s1", CompleteSaleInput{
		PaymentRef:   "SIM-1",
		TransferTxID: "0.0.2@1700000000.000000001",
		AuditRef:     &auditRef,
		CompletedAt:  time.Now().UTC(),
	}))

	sale, err := s.GetSale(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, domain.SaleStatusCompleted, sale.Status)
	assert.True(t, sale.TotalPrice.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "SIM-1", *sale.PaymentRef)
	assert.Equal(t, auditRef, *sale.AuditRef)
	assert.NotNil(t, sale.CompletedAt)

	// Terminal states are final
	var conflict *domain.ConflictError
	assert.True(t, errors.As(s.FailSale(ctx, "s1", "late failure"), &conflict))
	assert.True(t, errors.As(s.CompleteSale(ctx, "s1", CompleteSaleInput{}), &conflict))

	require.NoError(t, s.FailSale(ctx, "s2", "transfer rejected"))
	sale, err = s.GetSale(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, domain.SaleStatusFailed, sale.Status)
	assert.Equal(t, "transfer rejected", *sale.FailureReason)

	var notFound *domain.NotFoundError
	assert.True(t, errors.As(s.FailSale(ctx, "missing", "x"), &notFound))

	sales, total, err := s.ListSales(ctx, SaleFilter{PropertyID: "P1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, sales, 2)

	sales, total, err = s.ListSales(ctx, SaleFilter{Status: domain.SaleStatusFailed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "s2", sales[0].ID)
}

func testAuditRecords(t *testing.T, s Store) {
	ctx := context.Background()

	p1 := "P1"
	tok := "0.0.500"
	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreateAuditRecord(ctx, &schema.AuditRecord{
			ID:             fmt.Sprintf("01H%03d", i),
			TopicID:        "0.0.900",
			PropertyID:     &p1,
			TokenID:        &tok,
			MessageType:    string(domain.AuditTokenSale),
			TransactionID:  fmt.Sprintf("0.0.2@17000000%02d.0", i),
			SequenceNumber: uint64(i + 1),
		}))
	}
	require.NoError(t, s.CreateAuditRecord(ctx, &schema.AuditRecord{
		ID:            "01H999",
		TopicID:       "0.0.901",
		MessageType:   string(domain.AuditPropertyTokenized),
		TransactionID: "0.0.2@1800000000.0",
	}))

	records, err := s.ListAuditRecords(ctx, AuditRecordFilter{PropertyID: "P1"})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "01H002", records[0].ID)

	records, err = s.ListAuditRecords(ctx, AuditRecordFilter{TopicID: "0.0.901"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].PropertyID)

	records, err = s.ListAuditRecords(ctx, AuditRecordFilter{TokenID: "0.0.500", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
