package dto

import (
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/purchase"
)

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Checks   map[string]string `json:"checks"`
	Uptime   string            `json:"uptime"`
	Network  string            `json:"network,omitempty"`
	Operator string            `json:"operator,omitempty"`
}

// PurchaseResponse is returned by POST /properties/:id/buy
type PurchaseResponse struct {
	*purchase.Result
	// Balances is a fresh mirror node read; it may lag the transfer by a few seconds
	Balances []domain.TokenBalance `json:"balances"`
}

// HoldersResponse lists the non-zero holders of a token
type HoldersResponse struct {
	TokenID     string                `json:"tokenId"`
	PropertyID  string                `json:"propertyId,omitempty"`
	HolderCount int                   `json:"holderCount"`
	Holders     []domain.TokenBalance `json:"holders"`
	Cached      bool                  `json:"cached"`
}

// TransfersResponse lists recent transfers of a token
type TransfersResponse struct {
	TokenID       string                 `json:"tokenId"`
	TransferCount int                    `json:"transferCount"`
	Transfers     []domain.TokenTransfer `json:"transfers"`
	Cached        bool                   `json:"cached"`
}

// AccountHoldingsResponse lists the tokens held by an account
type AccountHoldingsResponse struct {
	AccountID  string                       `json:"accountId"`
	TokenCount int                          `json:"tokenCount"`
	Tokens     []domain.AccountTokenBalance `json:"tokens"`
	Cached     bool                         `json:"cached"`
}

// OnChainVerificationResponse is a cache-bypassing view of a token
type OnChainVerificationResponse struct {
	TokenInfo       *domain.TokenInfo `json:"tokenInfo"`
	CurrentHolders  int               `json:"currentHolders"`
	TotalSupply     int64             `json:"totalSupply"`
	RegistrySupply  *int64            `json:"registrySupply,omitempty"`
	RecentTransfers int               `json:"recentTransfers"`
	VerifiedAt      string            `json:"verifiedAt"`
}

// TopicMessagesResponse lists messages of an audit topic
type TopicMessagesResponse struct {
	TopicID      string                `json:"topicId"`
	MessageCount int                   `json:"messageCount"`
	Messages     []domain.TopicMessage `json:"messages"`
}

// InvalidateCacheResponse reports what was dropped from the cache
type InvalidateCacheResponse struct {
	TokenID string `json:"tokenId,omitempty"`
	TopicID string `json:"topicId,omitempty"`
	Removed int    `json:"removed"`
	Cleared bool   `json:"cleared"`
}

// NonZero filters out empty balances
func NonZero(balances []domain.TokenBalance) []domain.TokenBalance {
	out := make([]domain.TokenBalance, 0, len(balances))
	for _, b := range balances {
		if b.Balance > 0 {
			out = append(out, b)
		}
	}
	return out
}
