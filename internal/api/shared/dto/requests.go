package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/proptoken/proptoken-backend/internal/api/shared/constants"
	apierrors "github.com/proptoken/proptoken-backend/internal/api/shared/errors"
	"github.com/proptoken/proptoken-backend/internal/domain"
)

// CreatePropertyRequest represents the JSON body (or multipart fields) of POST /properties
type CreatePropertyRequest struct {
	ID            string           `json:"id" form:"id"`
	Title         string           `json:"title" form:"title"`
	Address       string           `json:"address" form:"address"`
	Description   string           `json:"description" form:"description"`
	Valuation     decimal.Decimal  `json:"valuation" form:"-"`
	TotalSupply   int64            `json:"totalSupply" form:"totalSupply"`
	PricePerToken *decimal.Decimal `json:"pricePerToken,omitempty" form:"-"`
	Currency      string           `json:"currency" form:"currency"`
}

// UpdatePropertyRequest represents the body of PATCH /properties/:id
type UpdatePropertyRequest struct {
	Title         *string          `json:"title,omitempty"`
	Address       *string          `json:"address,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Valuation     *decimal.Decimal `json:"valuation,omitempty"`
	PricePerToken *decimal.Decimal `json:"pricePerToken,omitempty"`
}

// Validate validates the request body
func (r *UpdatePropertyRequest) Validate() error {
	if r.Title == nil && r.Address == nil && r.Description == nil && r.Valuation == nil && r.PricePerToken == nil {
		return apierrors.NewValidationError("at least one field must be provided", nil)
	}
	return nil
}

// TokenizeRequest represents the body of POST /properties/:id/tokenize; every field is optional
type TokenizeRequest struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Decimals      int    `json:"decimals"`
	InitialSupply int64  `json:"initialSupply"`
	Memo          string `json:"memo"`
}

// Validate validates the request body
func (r *TokenizeRequest) Validate() error {
	if r.InitialSupply < 0 {
		return apierrors.NewValidationError("invalid tokenization request", map[string]string{
			"initialSupply": "must not be negative",
		})
	}
	return nil
}

// BuyRequest represents the body of POST /properties/:id/buy
type BuyRequest struct {
	BuyerAccountID string           `json:"buyerAccountId"`
	Quantity       int64            `json:"quantity"`
	PricePerToken  *decimal.Decimal `json:"pricePerToken,omitempty"`
}

// Validate validates the request body
func (r *BuyRequest) Validate() error {
	r.BuyerAccountID = strings.TrimSpace(r.BuyerAccountID)
	if r.BuyerAccountID == "" {
		return apierrors.NewValidationError("invalid purchase request", map[string]string{
			"buyerAccountId": "is required",
		})
	}
	return nil
}

// SupplyChangeRequest represents the body of POST /tokens/:tokenId/mint and /burn
type SupplyChangeRequest struct {
	Amount int64 `json:"amount"`
}

// Validate validates the request body
func (r *SupplyChangeRequest) Validate() error {
	if r.Amount <= 0 || r.Amount > constants.MAX_SUPPLY_CHANGE {
		return apierrors.NewValidationError("invalid supply change", map[string]string{
			"amount": fmt.Sprintf("must be between 1 and %d", constants.MAX_SUPPLY_CHANGE),
		})
	}
	return nil
}

// TransferRequest represents the body of POST /tokens/:tokenId/transfer
type TransferRequest struct {
	ToAccountID string `json:"toAccountId"`
	Amount      int64  `json:"amount"`
	Memo        string `json:"memo"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	fields := map[string]string{}
	if !domain.IsValidEntityID(r.ToAccountID) {
		fields["toAccountId"] = "must be an account id like 0.0.12345"
	}
	if r.Amount <= 0 {
		fields["amount"] = "must be positive"
	}
	if len(fields) > 0 {
		return apierrors.NewValidationError("invalid transfer request", fields)
	}
	return nil
}

// InvalidateCacheRequest represents the body of POST /audit/invalidate.
// With neither id set the whole cache is cleared.
type InvalidateCacheRequest struct {
	TokenID string `json:"tokenId"`
	TopicID string `json:"topicId"`
}

// Validate validates the request body
func (r *InvalidateCacheRequest) Validate() error {
	fields := map[string]string{}
	if r.TokenID != "" && !domain.IsValidEntityID(r.TokenID) {
		fields["tokenId"] = "must be shard.realm.num"
	}
	if r.TopicID != "" && !domain.IsValidEntityID(r.TopicID) {
		fields["topicId"] = "must be shard.realm.num"
	}
	if len(fields) > 0 {
		return apierrors.NewValidationError("invalid cache invalidation request", fields)
	}
	return nil
}
