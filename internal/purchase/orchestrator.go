package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/audit"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/messaging"
	"github.com/proptoken/proptoken-backend/internal/payment"
	"github.com/proptoken/proptoken-backend/internal/providers/hedera"
	"github.com/proptoken/proptoken-backend/internal/providers/mirrornode"
	"github.com/proptoken/proptoken-backend/internal/registry"
	"github.com/proptoken/proptoken-backend/internal/store"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
)

// Config holds purchase limits and defaults
type Config struct {
	MinQuantity  int64
	MaxQuantity  int64
	DefaultPrice decimal.Decimal
	Currency     string
}

// Request is a buyer's order for share tokens of a property
type Request struct {
	PropertyID     string
	BuyerAccountID string
	Quantity       int64
	// PricePerToken overrides the property price when set
	PricePerToken *decimal.Decimal
}

// Result describes a completed purchase
type Result struct {
	Sale         *schema.Sale `json:"sale"`
	PaymentRef   string       `json:"paymentRef"`
	TransferTxID string       `json:"transferTxId"`
	AuditRef     string       `json:"auditRef"`
}

// Orchestrator runs purchases as a saga: a PENDING sale moves to COMPLETED
// once payment, ledger transfer and audit publication succeed, or to FAILED
// on the first failing step.
type Orchestrator interface {
	// Purchase executes a purchase. A failure after the sale was created is
	// returned as is, or as *domain.IndeterminateStateError when the sale
	// could not be marked FAILED.
	Purchase(ctx context.Context, req Request) (*Result, error)

	// GetSale returns a sale by id or a NotFoundError
	GetSale(ctx context.Context, saleID string) (*schema.Sale, error)
}

type orchestrator struct {
	cfg       Config
	store     store.Store
	registry  registry.Registry
	payments  payment.Gateway
	ledger    hedera.Ledger
	auditLog  audit.Log
	mirror    mirrornode.Client
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewOrchestrator creates a purchase orchestrator
func NewOrchestrator(
	cfg Config,
	st store.Store,
	reg registry.Registry,
	payments payment.Gateway,
	ledger hedera.Ledger,
	auditLog audit.Log,
	mirror mirrornode.Client,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Orchestrator {
	if cfg.MinQuantity <= 0 {
		cfg.MinQuantity = domain.MIN_PURCHASE_QUANTITY
	}
	if cfg.MaxQuantity <= 0 {
		cfg.MaxQuantity = domain.MAX_PURCHASE_QUANTITY
	}
	if cfg.DefaultPrice.IsZero() {
		cfg.DefaultPrice = decimal.RequireFromString(domain.DEFAULT_PRICE_PER_TOKEN)
	}
	if cfg.Currency == "" {
		cfg.Currency = domain.DEFAULT_CURRENCY
	}

	return &orchestrator{
		cfg:       cfg,
		store:     st,
		registry:  reg,
		payments:  payments,
		ledger:    ledger,
		auditLog:  auditLog,
		mirror:    mirror,
		publisher: publisher,
		clock:     clock,
	}
}

func (o *orchestrator) validate(req Request) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.PropertyID) == "" {
		fields["propertyId"] = "is required"
	}

	switch {
	case strings.TrimSpace(req.BuyerAccountID) == "":
		fields["buyerAccountId"] = "is required"
	case !domain.IsValidEntityID(req.BuyerAccountID):
		fields["buyerAccountId"] = "must be an account id like 0.0.12345"
	}

	if req.Quantity < o.cfg.MinQuantity || req.Quantity > o.cfg.MaxQuantity {
		fields["quantity"] = fmt.Sprintf("must be between %d and %d", o.cfg.MinQuantity, o.cfg.MaxQuantity)
	}

	if req.PricePerToken != nil && !req.PricePerToken.IsPositive() {
		fields["pricePerToken"] = "must be positive"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Message: "invalid purchase request", Fields: fields}
	}
	return nil
}

// resolvePrice picks the request price, then the property price, then the default
func (o *orchestrator) resolvePrice(req Request, property *schema.Property) decimal.Decimal {
	if req.PricePerToken != nil {
		return *req.PricePerToken
	}
	if property.PricePerToken.IsPositive() {
		return property.PricePerToken
	}
	return o.cfg.DefaultPrice
}

func (o *orchestrator) Purchase(ctx context.Context, req Request) (*Result, error) {
	if err := o.validate(req); err != nil {
		return nil, err
	}

	property, err := o.store.GetProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, domain.NewNotFoundError("property", req.PropertyID)
	}
	if !property.Tokenized() {
		return nil, &domain.ConflictError{Message: fmt.Sprintf("property %s is not tokenized", req.PropertyID)}
	}

	token, err := o.registry.FindByTokenID(ctx, *property.TokenID)
	if err != nil {
		return nil, err
	}

	price := o.resolvePrice(req, property)
	currency := property.Currency
	if currency == "" {
		currency = o.cfg.Currency
	}

	// Step 1: pending sale
	sale := &schema.Sale{
		ID:             uuid.New().String(),
		PropertyID:     property.ID,
		TokenID:        token.TokenID,
		BuyerAccountID: req.BuyerAccountID,
		Quantity:       req.Quantity,
		PricePerToken:  price,
		TotalPrice:     price.Mul(decimal.NewFromInt(req.Quantity)),
		Currency:       currency,
		Status:         domain.SaleStatusPending,
	}
	if err := o.store.CreateSale(ctx, sale); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Sale created",
		zap.String("saleID", sale.ID),
		zap.String("propertyID", sale.PropertyID),
		zap.String("tokenID", sale.TokenID),
		zap.String("buyer", sale.BuyerAccountID),
		zap.Int64("quantity", sale.Quantity),
		zap.String("totalPrice", sale.TotalPrice.String()))

	result, err := o.execute(ctx, sale, token)
	if err != nil {
		return nil, o.fail(ctx, sale, err)
	}

	messaging.Emit(ctx, o.publisher, messaging.NewEvent(o.clock.Now(), domain.EventSaleCompleted,
		sale.PropertyID, sale.TokenID, sale.ID, map[string]interface{}{
			"buyerAccountId": sale.BuyerAccountID,
			"quantity":       sale.Quantity,
			"totalPrice":     sale.TotalPrice.String(),
			"currency":       sale.Currency,
			"transferTxId":   result.TransferTxID,
		}))

	return result, nil
}

// execute runs steps 2 to 7 on a pending sale
func (o *orchestrator) execute(ctx context.Context, sale *schema.Sale, token *schema.TokenRecord) (*Result, error) {
	// Step 2: payment
	paymentRef, err := o.payments.Charge(ctx, payment.Charge{
		SaleID:         sale.ID,
		BuyerAccountID: sale.BuyerAccountID,
		Amount:         sale.TotalPrice,
		Currency:       sale.Currency,
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	// Step 3: treasury credential
	if token.TreasuryKey == "" {
		return nil, domain.ErrTreasuryCredentialMissing
	}

	// Step 4: ledger transfer
	transferTxID, err := o.ledger.TransferTokens(ctx, hedera.Transfer{
		TokenID:       token.TokenID,
		FromAccountID: token.TreasuryAccountID,
		FromKey:       token.TreasuryKey,
		ToAccountID:   sale.BuyerAccountID,
		Amount:        sale.Quantity,
		Memo:          "sale " + sale.ID,
	})
	if err != nil {
		return nil, err
	}

	// Step 5: audit message
	topicID := ""
	if token.TopicID != nil {
		topicID = *token.TopicID
	}
	receipt, err := o.auditLog.Append(ctx, topicID, domain.AuditMessage{
		Type:       domain.AuditTokenSale,
		PropertyID: sale.PropertyID,
		TokenID:    sale.TokenID,
		Timestamp:  o.clock.Now(),
		Data: map[string]interface{}{
			"saleId":         sale.ID,
			"buyerAccountId": sale.BuyerAccountID,
			"quantity":       sale.Quantity,
			"pricePerToken":  sale.PricePerToken.String(),
			"totalPrice":     sale.TotalPrice.String(),
			"currency":       sale.Currency,
			"hederaTxId":     transferTxID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("tokens transferred in %s but audit publication failed: %w", transferTxID, err)
	}
	auditRef := receipt.Reference()

	// Step 6: complete
	completedAt := o.clock.Now().UTC()
	if err := o.store.CompleteSale(ctx, sale.ID, store.CompleteSaleInput{
		PaymentRef:   paymentRef,
		TransferTxID: transferTxID,
		AuditRef:     &auditRef,
		CompletedAt:  completedAt,
	}); err != nil {
		return nil, fmt.Errorf("tokens transferred in %s but sale completion failed: %w", transferTxID, err)
	}

	sale.Status = domain.SaleStatusCompleted
	sale.PaymentRef = &paymentRef
	sale.TransferTxID = &transferTxID
	sale.AuditRef = &auditRef
	sale.CompletedAt = &completedAt

	// Step 7: cache invalidation
	removed := o.mirror.InvalidateCacheForToken(sale.TokenID)
	if receipt.TopicID != "" {
		removed += o.mirror.InvalidateCacheForTopic(receipt.TopicID)
	}

	logger.InfoCtx(ctx, "Sale completed",
		zap.String("saleID", sale.ID),
		zap.String("transferTxID", transferTxID),
		zap.String("auditRef", auditRef),
		zap.Int("invalidatedCacheEntries", removed))

	return &Result{
		Sale:         sale,
		PaymentRef:   paymentRef,
		TransferTxID: transferTxID,
		AuditRef:     auditRef,
	}, nil
}

// fail marks the sale FAILED and returns the error for the caller
func (o *orchestrator) fail(ctx context.Context, sale *schema.Sale, cause error) error {
	logger.ErrorCtx(ctx, cause, zap.String("message", "Purchase failed"), zap.String("saleID", sale.ID))

	if statusErr := o.store.FailSale(context.WithoutCancel(ctx), sale.ID, cause.Error()); statusErr != nil {
		logger.ErrorCtx(ctx, statusErr,
			zap.String("message", "Failed to mark sale FAILED, sale left PENDING"),
			zap.String("saleID", sale.ID))
		return &domain.IndeterminateStateError{SaleID: sale.ID, Cause: cause, StatusErr: statusErr}
	}

	sale.Status = domain.SaleStatusFailed
	reason := cause.Error()
	sale.FailureReason = &reason

	messaging.Emit(ctx, o.publisher, messaging.NewEvent(o.clock.Now(), domain.EventSaleFailed,
		sale.PropertyID, sale.TokenID, sale.ID, map[string]interface{}{
			"buyerAccountId": sale.BuyerAccountID,
			"quantity":       sale.Quantity,
			"reason":         reason,
		}))

	return cause
}

func (o *orchestrator) GetSale(ctx context.Context, saleID string) (*schema.Sale, error) {
	if strings.TrimSpace(saleID) == "" {
		return nil, domain.NewValidationError("id", "is required")
	}

	sale, err := o.store.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFoundError("sale", saleID)
	}
	return sale, nil
}

// IsIndeterminate reports whether err left a sale in PENDING
func IsIndeterminate(err error) bool {
	var ie *domain.IndeterminateStateError
	return errors.As(err, &ie)
}
