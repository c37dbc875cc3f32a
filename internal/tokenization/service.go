package tokenization

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/audit"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/messaging"
	"github.com/proptoken/proptoken-backend/internal/providers/hedera"
	"github.com/proptoken/proptoken-backend/internal/providers/mirrornode"
	"github.com/proptoken/proptoken-backend/internal/registry"
	"github.com/proptoken/proptoken-backend/internal/store"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
)

// Config holds treasury settings
type Config struct {
	// TreasuryAccountID is a shared treasury; a new account is created per token when empty
	TreasuryAccountID string
	TreasuryKey       string
	// TreasuryBalance funds newly created treasury accounts, in hbar
	TreasuryBalance int64
}

// TokenizeRequest issues a share token for a property
type TokenizeRequest struct {
	PropertyID    string
	Name          string
	Symbol        string
	Decimals      int
	InitialSupply int64
	Memo          string
}

// TokenizeResult describes a newly issued token
type TokenizeResult struct {
	Token         *schema.TokenRecord `json:"token"`
	TransactionID string              `json:"transactionId"`
	AuditRef      string              `json:"auditRef,omitempty"`
}

// SupplyResult is the outcome of a mint or burn
type SupplyResult struct {
	Token         *schema.TokenRecord `json:"token"`
	TransactionID string              `json:"transactionId"`
}

// TransferRequest distributes tokens from the treasury to an account
type TransferRequest struct {
	TokenID     string
	ToAccountID string
	Amount      int64
	Memo        string
}

// TransferResult describes a completed distribution
type TransferResult struct {
	TokenID       string `json:"tokenId"`
	ToAccountID   string `json:"toAccountId"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transactionId"`
	AuditRef      string `json:"auditRef,omitempty"`
}

// TokenView is a registry record, optionally with the mirror node view of the token
type TokenView struct {
	*schema.TokenRecord
	Ledger *domain.TokenInfo `json:"ledger,omitempty"`
}

// Service issues share tokens and manages their supply
type Service interface {
	// Tokenize creates the token of a property. The property must exist and not be tokenized.
	Tokenize(ctx context.Context, req TokenizeRequest) (*TokenizeResult, error)
	// Mint adds supply to the treasury
	Mint(ctx context.Context, tokenID string, amount int64) (*SupplyResult, error)
	// Burn removes supply from the treasury; it never drives the recorded supply below zero
	Burn(ctx context.Context, tokenID string, amount int64) (*SupplyResult, error)
	// Transfer moves tokens from the treasury to an account and records a DISTRIBUTION message
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	// GetToken returns a token; refresh adds a fresh mirror node read
	GetToken(ctx context.Context, tokenID string, refresh bool) (*TokenView, error)
	// ListTokens returns a page of tokens
	ListTokens(ctx context.Context, filter registry.Filter) (*registry.Page, error)
}

type service struct {
	cfg       Config
	store     store.Store
	registry  registry.Registry
	ledger    hedera.Ledger
	auditLog  audit.Log
	mirror    mirrornode.Client
	publisher messaging.Publisher
	clock     adapter.Clock
	json      adapter.JSON
}

// NewService creates a tokenization service
func NewService(
	cfg Config,
	st store.Store,
	reg registry.Registry,
	ledger hedera.Ledger,
	auditLog audit.Log,
	mirror mirrornode.Client,
	publisher messaging.Publisher,
	clock adapter.Clock,
	json adapter.JSON,
) Service {
	if cfg.TreasuryBalance <= 0 {
		cfg.TreasuryBalance = 10
	}

	return &service{
		cfg:       cfg,
		store:     st,
		registry:  reg,
		ledger:    ledger,
		auditLog:  auditLog,
		mirror:    mirror,
		publisher: publisher,
		clock:     clock,
		json:      json,
	}
}

func (s *service) Tokenize(ctx context.Context, req TokenizeRequest) (*TokenizeResult, error) {
	if strings.TrimSpace(req.PropertyID) == "" {
		return nil, domain.NewValidationError("propertyId", "is required")
	}

	property, err := s.store.GetProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, domain.NewNotFoundError("property", req.PropertyID)
	}
	if property.Tokenized() {
		return nil, &domain.ConflictError{Message: fmt.Sprintf("property %s", property.ID), Err: domain.ErrAlreadyTokenized}
	}

	req = withDefaults(req, property)
	if err := validateTokenize(req); err != nil {
		return nil, err
	}

	// Treasury
	treasuryID, treasuryKey := s.cfg.TreasuryAccountID, s.cfg.TreasuryKey
	if treasuryID == "" {
		account, err := s.ledger.CreateTreasury(ctx, s.cfg.TreasuryBalance)
		if err != nil {
			return nil, err
		}
		treasuryID, treasuryKey = account.AccountID, account.PrivateKey
		logger.InfoCtx(ctx, "Treasury account created",
			zap.String("propertyID", property.ID),
			zap.String("treasuryID", treasuryID))
	}

	// Token
	created, err := s.ledger.CreateToken(ctx, hedera.TokenSpec{
		Name:              req.Name,
		Symbol:            req.Symbol,
		Decimals:          uint(req.Decimals),
		InitialSupply:     uint64(req.InitialSupply),
		TreasuryAccountID: treasuryID,
		TreasuryKey:       treasuryKey,
		Memo:              req.Memo,
	})
	if err != nil {
		return nil, err
	}

	// Audit topic
	topicID := s.auditLog.DefaultTopicID()
	if topicID == "" {
		topicID, err = s.ledger.CreateTopic(ctx, "proptoken audit "+property.ID)
		if err != nil {
			return nil, fmt.Errorf("token %s created but topic creation failed: %w", created.TokenID, err)
		}
	}

	metadata, err := s.json.Marshal(map[string]interface{}{
		"metadataCid": property.MetadataCID,
		"contentHash": property.ContentHash,
		"memo":        req.Memo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token metadata: %w", err)
	}

	record, err := s.registry.Create(ctx, registry.Entry{
		TokenID:           created.TokenID,
		PropertyID:        property.ID,
		Name:              req.Name,
		Symbol:            req.Symbol,
		Decimals:          req.Decimals,
		InitialSupply:     req.InitialSupply,
		TreasuryAccountID: treasuryID,
		TreasuryKey:       treasuryKey,
		TopicID:           topicID,
		Metadata:          metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("token %s created but registration failed: %w", created.TokenID, err)
	}

	result := &TokenizeResult{Token: record, TransactionID: created.TransactionID}

	receipt, err := s.auditLog.Append(ctx, topicID, domain.AuditMessage{
		Type:       domain.AuditPropertyTokenized,
		PropertyID: property.ID,
		TokenID:    record.TokenID,
		Timestamp:  s.clock.Now(),
		Data: map[string]interface{}{
			"name":              record.Name,
			"symbol":            record.Symbol,
			"initialSupply":     record.TotalSupply,
			"treasuryAccountId": treasuryID,
			"metadataCid":       property.MetadataCID,
			"contentHash":       property.ContentHash,
			"hederaTxId":        created.TransactionID,
		},
	})
	if err != nil {
		logger.WarnCtx(ctx, "Token issued without audit message",
			zap.String("tokenID", record.TokenID),
			zap.Error(err))
	} else {
		result.AuditRef = receipt.Reference()
	}

	logger.InfoCtx(ctx, "Property tokenized",
		zap.String("propertyID", property.ID),
		zap.String("tokenID", record.TokenID),
		zap.String("topicID", topicID),
		zap.Int64("supply", record.TotalSupply))

	messaging.Emit(ctx, s.publisher, messaging.NewEvent(s.clock.Now(), domain.EventPropertyTokenized,
		property.ID, record.TokenID, "", map[string]interface{}{
			"symbol":            record.Symbol,
			"initialSupply":     record.TotalSupply,
			"treasuryAccountId": treasuryID,
			"topicId":           topicID,
		}))

	return result, nil
}

func withDefaults(req TokenizeRequest, property *schema.Property) TokenizeRequest {
	if req.Name == "" {
		req.Name = fmt.Sprintf("Property-%s-Token", property.ID)
	}
	if req.Symbol == "" {
		req.Symbol = fmt.Sprintf("PROP-%s", property.ID)
	}
	req.Symbol = strings.ToUpper(req.Symbol)
	if req.InitialSupply == 0 {
		req.InitialSupply = property.TotalSupply
	}
	if req.Memo == "" {
		req.Memo = property.Title
	}
	return req
}

func validateTokenize(req TokenizeRequest) error {
	fields := map[string]string{}
	if len(req.Name) > 100 {
		fields["name"] = "must be at most 100 characters"
	}
	if len(req.Symbol) > 100 {
		fields["symbol"] = "must be at most 100 characters"
	}
	if req.Decimals < 0 || req.Decimals > 18 {
		fields["decimals"] = "must be between 0 and 18"
	}
	if req.InitialSupply <= 0 {
		fields["initialSupply"] = "must be positive"
	}
	if len(req.Memo) > 100 {
		fields["memo"] = "must be at most 100 characters"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Message: "invalid tokenization request", Fields: fields}
	}
	return nil
}

// signingToken returns the token record with its treasury key, or ErrTreasuryCredentialMissing
func (s *service) signingToken(ctx context.Context, tokenID string, amount int64) (*schema.TokenRecord, error) {
	if !domain.IsValidEntityID(tokenID) {
		return nil, domain.NewValidationError("tokenId", "must be shard.realm.num")
	}
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}

	record, err := s.registry.FindByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if record.TreasuryKey == "" {
		return nil, domain.ErrTreasuryCredentialMissing
	}
	return record, nil
}

func (s *service) Mint(ctx context.Context, tokenID string, amount int64) (*SupplyResult, error) {
	record, err := s.signingToken(ctx, tokenID, amount)
	if err != nil {
		return nil, err
	}

	txID, err := s.ledger.MintTokens(ctx, tokenID, record.TreasuryKey, uint64(amount))
	if err != nil {
		return nil, err
	}

	updated, err := s.registry.IncrementSupply(ctx, tokenID, amount)
	if err != nil {
		return nil, fmt.Errorf("minted in %s but supply update failed: %w", txID, err)
	}

	s.supplyChanged(ctx, updated, amount, txID)
	return &SupplyResult{Token: updated, TransactionID: txID}, nil
}

func (s *service) Burn(ctx context.Context, tokenID string, amount int64) (*SupplyResult, error) {
	record, err := s.signingToken(ctx, tokenID, amount)
	if err != nil {
		return nil, err
	}
	if record.TotalSupply < amount {
		return nil, &domain.ConflictError{
			Message: fmt.Sprintf("cannot burn %d of token %s with supply %d", amount, tokenID, record.TotalSupply),
			Err:     domain.ErrInsufficientSupply,
		}
	}

	txID, err := s.ledger.BurnTokens(ctx, tokenID, record.TreasuryKey, uint64(amount))
	if err != nil {
		return nil, err
	}

	updated, err := s.registry.DecrementSupply(ctx, tokenID, amount)
	if err != nil {
		return nil, fmt.Errorf("burned in %s but supply update failed: %w", txID, err)
	}

	s.supplyChanged(ctx, updated, -amount, txID)
	return &SupplyResult{Token: updated, TransactionID: txID}, nil
}

func (s *service) supplyChanged(ctx context.Context, record *schema.TokenRecord, delta int64, txID string) {
	s.mirror.InvalidateCacheForToken(record.TokenID)

	messaging.Emit(ctx, s.publisher, messaging.NewEvent(s.clock.Now(), domain.EventSupplyChanged,
		record.PropertyID, record.TokenID, "", map[string]interface{}{
			"delta":       delta,
			"totalSupply": record.TotalSupply,
			"hederaTxId":  txID,
		}))
}

func (s *service) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	if !domain.IsValidEntityID(req.ToAccountID) {
		return nil, domain.NewValidationError("toAccountId", "must be an account id like 0.0.12345")
	}

	record, err := s.signingToken(ctx, req.TokenID, req.Amount)
	if err != nil {
		return nil, err
	}

	memo := req.Memo
	if memo == "" {
		memo = "distribution"
	}
	txID, err := s.ledger.TransferTokens(ctx, hedera.Transfer{
		TokenID:       record.TokenID,
		FromAccountID: record.TreasuryAccountID,
		FromKey:       record.TreasuryKey,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Memo:          memo,
	})
	if err != nil {
		return nil, err
	}

	result := &TransferResult{
		TokenID:       record.TokenID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		TransactionID: txID,
	}

	topicID := ""
	if record.TopicID != nil {
		topicID = *record.TopicID
	}
	receipt, err := s.auditLog.Append(ctx, topicID, domain.AuditMessage{
		Type:       domain.AuditDistribution,
		PropertyID: record.PropertyID,
		TokenID:    record.TokenID,
		Timestamp:  s.clock.Now(),
		Data: map[string]interface{}{
			"fromAccountId": record.TreasuryAccountID,
			"toAccountId":   req.ToAccountID,
			"amount":        req.Amount,
			"memo":          memo,
			"hederaTxId":    txID,
		},
	})
	if err != nil {
		logger.WarnCtx(ctx, "Distribution recorded without audit message",
			zap.String("tokenID", record.TokenID),
			zap.String("transactionID", txID),
			zap.Error(err))
	} else {
		result.AuditRef = receipt.Reference()
	}

	s.mirror.InvalidateCacheForToken(record.TokenID)

	logger.InfoCtx(ctx, "Tokens distributed",
		zap.String("tokenID", record.TokenID),
		zap.String("to", req.ToAccountID),
		zap.Int64("amount", req.Amount),
		zap.String("transactionID", txID))

	return result, nil
}

func (s *service) GetToken(ctx context.Context, tokenID string, refresh bool) (*TokenView, error) {
	record, err := s.registry.FindByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	view := &TokenView{TokenRecord: record}
	if !refresh {
		return view, nil
	}

	info, err := s.mirror.GetTokenInfo(ctx, tokenID, mirrornode.ReadOptions{BypassCache: true})
	if err != nil {
		return nil, err
	}
	view.Ledger = info
	return view, nil
}

func (s *service) ListTokens(ctx context.Context, filter registry.Filter) (*registry.Page, error) {
	return s.registry.ListAll(ctx, filter)
}
