package mirrornode

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/cache"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

const serviceName = "mirror node"

// Config holds the mirror node client configuration
type Config struct {
	BaseURL     string
	Timeout     time.Duration // per attempt
	MaxAttempts int           // total attempts, including the first
	RetryDelay  time.Duration
	TTL         TTLs
}

// TTLs holds cache lifetimes per resource
type TTLs struct {
	Balances  time.Duration
	Transfers time.Duration
	Messages  time.Duration
	Account   time.Duration
	Token     time.Duration
}

// ReadOptions controls a single read
type ReadOptions struct {
	// Limit is clamped to [1, 100]; zero means the default of 25
	Limit int
	// BypassCache forces a fresh read; the result still refreshes the cache
	BypassCache bool
}

// FetchError is returned once every attempt against the mirror node failed
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("GET %s failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client reads ledger state from the mirror node REST API with caching and retry
//
//go:generate mockgen -source=client.go -destination=../../mocks/mirrornode_client.go -package=mocks -mock_names=Client=MockMirrorNodeClient
type Client interface {
	// GetTokenBalances returns holder balances of a token
	GetTokenBalances(ctx context.Context, tokenID string, opts ReadOptions) ([]domain.TokenBalance, error)
	// GetTokenTransfers returns recent transfers of a token out of or into its treasury
	GetTokenTransfers(ctx context.Context, tokenID string, opts ReadOptions) ([]domain.TokenTransfer, error)
	// GetTopicMessages returns recent messages of a consensus topic, newest first
	GetTopicMessages(ctx context.Context, topicID string, opts ReadOptions) ([]domain.TopicMessage, error)
	// GetAccountTokenBalances returns the token balances held by an account
	GetAccountTokenBalances(ctx context.Context, accountID string, opts ReadOptions) ([]domain.AccountTokenBalance, error)
	// GetTokenInfo returns token details
	GetTokenInfo(ctx context.Context, tokenID string, opts ReadOptions) (*domain.TokenInfo, error)
	// InvalidateCacheForToken drops cached balances, transfers and info of a token
	InvalidateCacheForToken(tokenID string) int
	// InvalidateCacheForTopic drops cached messages of a topic
	InvalidateCacheForTopic(topicID string) int
	// ClearCache drops every cached read
	ClearCache()
}

type client struct {
	cfg   Config
	http  adapter.HTTPClient
	cache cache.Cache
}

// NewClient creates a mirror node client
func NewClient(cfg Config, httpClient adapter.HTTPClient, c cache.Cache) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DEFAULT_MIRROR_NODE_URL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = domain.MIRROR_NODE_MAX_ATTEMPTS
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.MIRROR_NODE_TIMEOUT
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	cfg.TTL = withDefaultTTLs(cfg.TTL)

	return &client{
		cfg:   cfg,
		http:  httpClient,
		cache: c,
	}
}

func withDefaultTTLs(t TTLs) TTLs {
	if t.Balances <= 0 {
		t.Balances = domain.CACHE_TTL_BALANCES
	}
	if t.Transfers <= 0 {
		t.Transfers = domain.CACHE_TTL_TRANSFERS
	}
	if t.Messages <= 0 {
		t.Messages = domain.CACHE_TTL_MESSAGES
	}
	if t.Account <= 0 {
		t.Account = domain.CACHE_TTL_ACCOUNT
	}
	if t.Token <= 0 {
		t.Token = domain.CACHE_TTL_TOKEN
	}
	return t
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return domain.MIRROR_NODE_DEFAULT_LIMIT
	}
	if limit > domain.MIRROR_NODE_MAX_LIMIT {
		return domain.MIRROR_NODE_MAX_LIMIT
	}
	return limit
}

// cached serves key from the cache unless bypassed, otherwise loads and stores it
func cached[T any](c *client, key string, ttl time.Duration, bypass bool, load func() (T, error)) (T, error) {
	if !bypass {
		if v, ok := c.cache.Get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}

	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	if err := c.cache.Set(key, v, ttl); err != nil {
		logger.Warn("failed to cache mirror node response", zap.String("key", key), zap.Error(err))
	}

	return v, nil
}

// fetch GETs path and decodes the JSON body into out, retrying every failure
// with a constant delay until MaxAttempts is reached or ctx is done.
func (c *client) fetch(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	attempts := 0
	operation := func() error {
		attempts++

		attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		body, err := c.http.Get(attemptCtx, u, map[string]string{"Accept": "application/json"})
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}

		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.RetryDelay), uint64(c.cfg.MaxAttempts-1)),
		ctx,
	)
	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "mirror node request failed, retrying",
			zap.String("url", u),
			zap.Int("attempt", attempts),
			zap.Duration("next", next),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return domain.NewUpstreamError(serviceName, path, &FetchError{URL: u, Attempts: attempts, Err: err})
	}

	return nil
}

func limitQuery(limit int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func (c *client) GetTokenBalances(ctx context.Context, tokenID string, opts ReadOptions) ([]domain.TokenBalance, error) {
	limit := clampLimit(opts.Limit)
	key := cache.BuildKey(domain.CACHE_PREFIX_BALANCES, tokenID, strconv.Itoa(limit))

	return cached(c, key, c.cfg.TTL.Balances, opts.BypassCache, func() ([]domain.TokenBalance, error) {
		var resp balancesResponse
		if err := c.fetch(ctx, fmt.Sprintf("/api/v1/tokens/%s/balances", url.PathEscape(tokenID)), limitQuery(limit), &resp); err != nil {
			return nil, err
		}

		balances := make([]domain.TokenBalance, 0, len(resp.Balances))
		for _, b := range resp.Balances {
			balances = append(balances, domain.TokenBalance{
				AccountID: b.Account,
				Balance:   int64(b.Balance),
				Decimals:  int(b.Decimals),
			})
		}
		return balances, nil
	})
}

// GetTokenTransfers lists transactions touching the token's treasury account and
// keeps the legs that move this token. Token info is resolved through the cache.
func (c *client) GetTokenTransfers(ctx context.Context, tokenID string, opts ReadOptions) ([]domain.TokenTransfer, error) {
	limit := clampLimit(opts.Limit)
	key := cache.BuildKey(domain.CACHE_PREFIX_TRANSFERS, tokenID, strconv.Itoa(limit))

	return cached(c, key, c.cfg.TTL.Transfers, opts.BypassCache, func() ([]domain.TokenTransfer, error) {
		info, err := c.GetTokenInfo(ctx, tokenID, ReadOptions{})
		if err != nil {
			return nil, err
		}

		q := limitQuery(limit)
		q.Set("order", "desc")
		q.Set("transactiontype", "CRYPTOTRANSFER")
		q.Set("account.id", info.TreasuryAccountID)

		var resp transactionsResponse
		if err := c.fetch(ctx, "/api/v1/transactions", q, &resp); err != nil {
			return nil, err
		}

		transfers := make([]domain.TokenTransfer, 0, len(resp.Transactions))
		for _, tx := range resp.Transactions {
			var legs []domain.TransferLeg
			for _, tt := range tx.TokenTransfers {
				if tt.TokenID == tokenID {
					legs = append(legs, domain.TransferLeg{AccountID: tt.Account, Amount: int64(tt.Amount)})
				}
			}
			if len(legs) == 0 {
				continue
			}

			memo, _ := base64.StdEncoding.DecodeString(tx.MemoBase64)
			transfers = append(transfers, domain.TokenTransfer{
				TransactionID:      tx.TransactionID,
				ConsensusTimestamp: tx.ConsensusTimestamp,
				Type:               tx.Name,
				Transfers:          legs,
				Result:             tx.Result,
				Memo:               string(memo),
			})
		}
		return transfers, nil
	})
}

func (c *client) GetTopicMessages(ctx context.Context, topicID string, opts ReadOptions) ([]domain.TopicMessage, error) {
	limit := clampLimit(opts.Limit)
	key := cache.BuildKey(domain.CACHE_PREFIX_MESSAGES, topicID, strconv.Itoa(limit))

	return cached(c, key, c.cfg.TTL.Messages, opts.BypassCache, func() ([]domain.TopicMessage, error) {
		q := limitQuery(limit)
		q.Set("order", "desc")

		var resp topicMessagesResponse
		if err := c.fetch(ctx, fmt.Sprintf("/api/v1/topics/%s/messages", url.PathEscape(topicID)), q, &resp); err != nil {
			return nil, err
		}

		messages := make([]domain.TopicMessage, 0, len(resp.Messages))
		for _, m := range resp.Messages {
			payload, err := base64.StdEncoding.DecodeString(m.Message)
			if err != nil {
				payload = []byte(m.Message)
			}
			messages = append(messages, domain.TopicMessage{
				ConsensusTimestamp: m.ConsensusTimestamp,
				SequenceNumber:     int64(m.SequenceNumber),
				Message:            decodeMessage(payload),
				RunningHash:        m.RunningHash,
				RunningHashVersion: int(m.RunningHashVersion),
			})
		}
		return messages, nil
	})
}

func (c *client) GetAccountTokenBalances(ctx context.Context, accountID string, opts ReadOptions) ([]domain.AccountTokenBalance, error) {
	limit := clampLimit(opts.Limit)
	key := cache.BuildKey(domain.CACHE_PREFIX_ACCOUNT, accountID, strconv.Itoa(limit))

	return cached(c, key, c.cfg.TTL.Account, opts.BypassCache, func() ([]domain.AccountTokenBalance, error) {
		var resp accountTokensResponse
		if err := c.fetch(ctx, fmt.Sprintf("/api/v1/accounts/%s/tokens", url.PathEscape(accountID)), limitQuery(limit), &resp); err != nil {
			return nil, err
		}

		tokens := make([]domain.AccountTokenBalance, 0, len(resp.Tokens))
		for _, t := range resp.Tokens {
			tokens = append(tokens, domain.AccountTokenBalance{
				TokenID:  t.TokenID,
				Balance:  int64(t.Balance),
				Decimals: int(t.Decimals),
			})
		}
		return tokens, nil
	})
}

func (c *client) GetTokenInfo(ctx context.Context, tokenID string, opts ReadOptions) (*domain.TokenInfo, error) {
	key := cache.BuildKey(domain.CACHE_PREFIX_TOKEN, tokenID)

	return cached(c, key, c.cfg.TTL.Token, opts.BypassCache, func() (*domain.TokenInfo, error) {
		var resp tokenInfoResponse
		if err := c.fetch(ctx, fmt.Sprintf("/api/v1/tokens/%s", url.PathEscape(tokenID)), nil, &resp); err != nil {
			return nil, err
		}

		return &domain.TokenInfo{
			TokenID:           resp.TokenID,
			Name:              resp.Name,
			Symbol:            resp.Symbol,
			Decimals:          int(resp.Decimals),
			TotalSupply:       int64(resp.TotalSupply),
			TreasuryAccountID: resp.TreasuryAccountID,
			Type:              resp.Type,
			Memo:              resp.Memo,
		}, nil
	})
}

func (c *client) InvalidateCacheForToken(tokenID string) int {
	removed := c.cache.InvalidateByPrefix(cache.BuildKey(domain.CACHE_PREFIX_BALANCES, tokenID) + ":")
	removed += c.cache.InvalidateByPrefix(cache.BuildKey(domain.CACHE_PREFIX_TRANSFERS, tokenID) + ":")
	if c.cache.Delete(cache.BuildKey(domain.CACHE_PREFIX_TOKEN, tokenID)) {
		removed++
	}

	logger.Debug("invalidated token cache", zap.String("tokenID", tokenID), zap.Int("removed", removed))
	return removed
}

func (c *client) InvalidateCacheForTopic(topicID string) int {
	removed := c.cache.InvalidateByPrefix(cache.BuildKey(domain.CACHE_PREFIX_MESSAGES, topicID) + ":")

	logger.Debug("invalidated topic cache", zap.String("topicID", topicID), zap.Int("removed", removed))
	return removed
}

func (c *client) ClearCache() {
	c.cache.Clear()
}
