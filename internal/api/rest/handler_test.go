package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/api/middleware"
	"github.com/proptoken/proptoken-backend/internal/api/rest"
	"github.com/proptoken/proptoken-backend/internal/api/server"
	"github.com/proptoken/proptoken-backend/internal/audit"
	"github.com/proptoken/proptoken-backend/internal/cache"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/ipfs"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/messaging"
	"github.com/proptoken/proptoken-backend/internal/mocks"
	"github.com/proptoken/proptoken-backend/internal/payment"
	"github.com/proptoken/proptoken-backend/internal/property"
	"github.com/proptoken/proptoken-backend/internal/providers/hedera"
	"github.com/proptoken/proptoken-backend/internal/providers/mirrornode"
	"github.com/proptoken/proptoken-backend/internal/purchase"
	"github.com/proptoken/proptoken-backend/internal/registry"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
	"github.com/proptoken/proptoken-backend/internal/store/storetest"
	"github.com/proptoken/proptoken-backend/internal/tokenization"
)

const (
	tokenID    = "0.0.7001"
	treasuryID = "0.0.7000"
	topicID    = "0.0.7002"
	buyerID    = "0.0.4242"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// network is the ledger state shared by the ledger mock and the fake mirror node
type network struct {
	mu       sync.Mutex
	supply   int64
	balances map[string]int64
	seq      uint64
}

func (n *network) mirrorHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/tokens/"+tokenID+"/balances", func(w http.ResponseWriter, r *http.Request) {
		n.mu.Lock()
		defer n.mu.Unlock()
		type balance struct {
			Account  string `json:"account"`
			Balance  int64  `json:"balance"`
			Decimals int    `json:"decimals"`
		}
		resp := struct {
			Balances []balance `json:"balances"`
		}{Balances: []balance{}}
		for account, amount := range n.balances {
			resp.Balances = append(resp.Balances, balance{Account: account, Balance: amount})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/api/v1/tokens/"+tokenID, func(w http.ResponseWriter, r *http.Request) {
		n.mu.Lock()
		defer n.mu.Unlock()
		fmt.Fprintf(w, `{"token_id":%q,"name":"Property-P1-Token","symbol":"PROP-P1","decimals":"0","total_supply":"%d","treasury_account_id":%q,"type":"FUNGIBLE_COMMON"}`,
			tokenID, n.supply, treasuryID)
	})
	return mux
}

type fixture struct {
	router   http.Handler
	net      *network
	ledger   *mocks.MockLedger
	provider *mocks.MockIPFSProvider
	registry registry.Registry
}

func setup(t *testing.T, authCfg middleware.AuthConfig) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		net:      &network{balances: map[string]int64{}},
		ledger:   mocks.NewMockLedger(ctrl),
		provider: mocks.NewMockIPFSProvider(ctrl),
	}

	mirrorServer := httptest.NewServer(f.net.mirrorHandler())
	t.Cleanup(mirrorServer.Close)

	clock := adapter.NewClock()
	codec := adapter.NewJSON()
	st := storetest.New(t)
	f.registry = registry.New(st)

	mirror := mirrornode.NewClient(mirrornode.Config{BaseURL: mirrorServer.URL, MaxAttempts: 1},
		adapter.NewHTTPClient(5*time.Second), cache.New())
	content := ipfs.NewStore(ipfs.Config{Gateways: []string{}}, f.provider, adapter.NewHTTPClient(time.Second), codec)
	t.Cleanup(content.Close)
	auditLog := audit.NewLog(topicID, f.ledger, mirror, st, clock, codec)
	publisher := messaging.NewNoopPublisher()

	f.provider.EXPECT().Name().Return("fake").AnyTimes()
	f.ledger.EXPECT().SubmitTopicMessage(gomock.Any(), topicID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []byte) (*hedera.TopicSubmission, error) {
			f.net.mu.Lock()
			defer f.net.mu.Unlock()
			f.net.seq++
			return &hedera.TopicSubmission{TransactionID: fmt.Sprintf("tx-audit-%d", f.net.seq), SequenceNumber: f.net.seq}, nil
		}).AnyTimes()

	handler := rest.NewHandler(false, rest.Deps{
		Properties: property.NewService(st, content, publisher, clock, codec, property.Defaults{}),
		Tokens: tokenization.NewService(tokenization.Config{TreasuryAccountID: treasuryID, TreasuryKey: "treasury-key"},
			st, f.registry, f.ledger, auditLog, mirror, publisher, clock, codec),
		Purchases: purchase.NewOrchestrator(purchase.Config{}, st, f.registry, payment.NewSimulator(0, clock),
			f.ledger, auditLog, mirror, publisher, clock),
		Registry: f.registry,
		Mirror:   mirror,
		AuditLog: auditLog,
		Content:  content,
		Store:    st,
		Clock:    clock,
		Network:  "testnet",
	})
	f.router = server.New(server.Config{Auth: authCfg}, handler).Router()

	return f
}

func (f *fixture) expectTokenCreation() {
	f.ledger.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec hedera.TokenSpec) (*hedera.CreatedToken, error) {
			f.net.mu.Lock()
			defer f.net.mu.Unlock()
			f.net.supply = int64(spec.InitialSupply)
			f.net.balances[spec.TreasuryAccountID] = int64(spec.InitialSupply)
			return &hedera.CreatedToken{TokenID: tokenID, TransactionID: "tx-create"}, nil
		})
}

func (f *fixture) expectTransfers() {
	f.ledger.EXPECT().TransferTokens(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr hedera.Transfer) (string, error) {
			f.net.mu.Lock()
			defer f.net.mu.Unlock()
			f.net.balances[tr.FromAccountID] -= tr.Amount
			f.net.balances[tr.ToAccountID] += tr.Amount
			return "tx-transfer", nil
		}).AnyTimes()
}

func (f *fixture) expectMetadataPins() {
	f.provider.EXPECT().AddJSON(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ipfs.AddResult{CID: "bafymeta", Size: 128}, nil).AnyTimes()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Timestamp string `json:"timestamp"`
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}, headers ...string) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return f.serve(t, req)
}

func (f *fixture) serve(t *testing.T, req *http.Request) (int, envelope) {
	t.Helper()

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	assert.NotEmpty(t, env.Timestamp)
	return w.Code, env
}

func decode(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.True(t, env.Success, "unexpected failure: %+v", env.Error)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

var harbourLoft = map[string]interface{}{
	"id":            "P1",
	"title":         "Harbour Loft",
	"address":       "1 Quay Street",
	"valuation":     1200000,
	"totalSupply":   10000,
	"pricePerToken": "100",
	"currency":      "usd",
}

func TestPurchaseFlow(t *testing.T) {
	f := setup(t, middleware.AuthConfig{})
	f.expectMetadataPins()
	f.expectTokenCreation()
	f.expectTransfers()

	code, env := f.do(t, http.MethodPost, "/api/v1/properties", harbourLoft)
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID          string `json:"id"`
		Currency    string `json:"currency"`
		MetadataCID string `json:"metadataCid"`
		ContentHash string `json:"contentHash"`
	}
	decode(t, env, &created)
	assert.Equal(t, "P1", created.ID)
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, "bafymeta", created.MetadataCID)
	assert.Len(t, created.ContentHash, 64)

	code, env = f.do(t, http.MethodPost, "/api/v1/properties/P1/tokenize", nil)
	require.Equal(t, http.StatusCreated, code)
	var tokenized tokenization.TokenizeResult
	decode(t, env, &tokenized)
	assert.Equal(t, tokenID, tokenized.Token.TokenID)
	assert.Equal(t, int64(10_000), tokenized.Token.TotalSupply)
	assert.NotEmpty(t, tokenized.AuditRef)

	// warm the balance cache so the purchase has something to invalidate
	code, env = f.do(t, http.MethodGet, "/api/v1/holders/"+tokenID, nil)
	require.Equal(t, http.StatusOK, code)
	var before struct {
		PropertyID string                `json:"propertyId"`
		Holders    []domain.TokenBalance `json:"holders"`
	}
	decode(t, env, &before)
	assert.Equal(t, "P1", before.PropertyID)
	require.Len(t, before.Holders, 1)
	assert.Equal(t, int64(10_000), before.Holders[0].Balance)

	code, env = f.do(t, http.MethodPost, "/api/v1/properties/P1/buy", map[string]interface{}{
		"buyerAccountId": buyerID,
		"quantity":       50,
	})
	require.Equal(t, http.StatusCreated, code)
	var bought struct {
		Sale struct {
			ID         string            `json:"id"`
			Status     domain.SaleStatus `json:"status"`
			Quantity   int64             `json:"quantity"`
			TotalPrice decimal.Decimal   `json:"totalPrice"`
		} `json:"sale"`
		TransferTxID string                `json:"transferTxId"`
		AuditRef     string                `json:"auditRef"`
		Balances     []domain.TokenBalance `json:"balances"`
	}
	decode(t, env, &bought)
	assert.Equal(t, domain.SaleStatusCompleted, bought.Sale.Status)
	assert.Equal(t, int64(50), bought.Sale.Quantity)
	assert.True(t, decimal.NewFromInt(5000).Equal(bought.Sale.TotalPrice), bought.Sale.TotalPrice.String())
	assert.Equal(t, "tx-transfer", bought.TransferTxID)
	assert.NotEmpty(t, bought.AuditRef)
	assert.Contains(t, bought.Balances, domain.TokenBalance{AccountID: buyerID, Balance: 50})

	// a purchase moves tokens out of the treasury; it does not change supply
	code, env = f.do(t, http.MethodGet, "/api/v1/tokens/"+tokenID+"?refresh=true", nil)
	require.Equal(t, http.StatusOK, code)
	var token struct {
		TotalSupply int64             `json:"totalSupply"`
		Ledger      *domain.TokenInfo `json:"ledger"`
	}
	decode(t, env, &token)
	assert.Equal(t, int64(10_000), token.TotalSupply)
	require.NotNil(t, token.Ledger)
	assert.Equal(t, int64(10_000), token.Ledger.TotalSupply)

	code, env = f.do(t, http.MethodGet, "/api/v1/holders/"+tokenID+"?useCache=false", nil)
	require.Equal(t, http.StatusOK, code)
	var after struct {
		HolderCount int                   `json:"holderCount"`
		Holders     []domain.TokenBalance `json:"holders"`
		Cached      bool                  `json:"cached"`
	}
	decode(t, env, &after)
	assert.False(t, after.Cached)
	assert.Equal(t, 2, after.HolderCount)
	assert.Contains(t, after.Holders, domain.TokenBalance{AccountID: buyerID, Balance: 50})
	assert.Contains(t, after.Holders, domain.TokenBalance{AccountID: treasuryID, Balance: 9_950})

	code, env = f.do(t, http.MethodGet, "/api/v1/sales/"+bought.Sale.ID, nil)
	require.Equal(t, http.StatusOK, code)
	var sale struct {
		Status domain.SaleStatus `json:"status"`
	}
	decode(t, env, &sale)
	assert.Equal(t, domain.SaleStatusCompleted, sale.Status)

	code, env = f.do(t, http.MethodGet, "/api/v1/properties/P1/sales?status=COMPLETED", nil)
	require.Equal(t, http.StatusOK, code)
	var sales property.SalesPage
	decode(t, env, &sales)
	assert.Equal(t, int64(1), sales.Total)
}

func TestCreateProperty_Multipart(t *testing.T) {
	f := setup(t, middleware.AuthConfig{})
	f.expectMetadataPins()
	f.provider.EXPECT().Add(gomock.Any(), "front.png", gomock.Any()).
		Return(&ipfs.AddResult{CID: "bafyimage", Size: 8}, nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"id":          "P2",
		"title":       "Garden Flat",
		"address":     "2 Elm Road",
		"valuation":   "450000.50",
		"totalSupply": "4500",
	} {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("image", "front.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	code, env := f.serve(t, req)
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		Valuation decimal.Decimal   `json:"valuation"`
		Media     []domain.MediaRef `json:"media"`
	}
	decode(t, env, &created)
	assert.True(t, decimal.RequireFromString("450000.50").Equal(created.Valuation))
	require.Len(t, created.Media, 1)
	assert.Equal(t, "bafyimage", created.Media[0].CID)
	assert.Equal(t, "image/png", created.Media[0].MimeType)
}

func TestErrorEnvelopes(t *testing.T) {
	f := setup(t, middleware.AuthConfig{APIKeys: []string{"admin-key"}})
	f.expectMetadataPins()

	code, _ := f.do(t, http.MethodPost, "/api/v1/properties", harbourLoft)
	require.Equal(t, http.StatusCreated, code)

	tests := []struct {
		name    string
		method  string
		path    string
		body    interface{}
		headers []string
		status  int
		code    string
	}{
		{"invalid property", http.MethodPost, "/api/v1/properties", map[string]interface{}{"title": ""}, nil, http.StatusBadRequest, "validation_failed"},
		{"duplicate property", http.MethodPost, "/api/v1/properties", harbourLoft, nil, http.StatusConflict, "conflict"},
		{"unknown property", http.MethodGet, "/api/v1/properties/nope", nil, nil, http.StatusNotFound, "not_found"},
		{"unknown sale", http.MethodGet, "/api/v1/sales/nope", nil, nil, http.StatusNotFound, "not_found"},
		{"buy before tokenizing", http.MethodPost, "/api/v1/properties/P1/buy", map[string]interface{}{"buyerAccountId": buyerID, "quantity": 5}, nil, http.StatusConflict, "conflict"},
		{"buy without buyer", http.MethodPost, "/api/v1/properties/P1/buy", map[string]interface{}{"quantity": 5}, nil, http.StatusBadRequest, "validation_failed"},
		{"malformed body", http.MethodPost, "/api/v1/properties/P1/buy", "not an object", nil, http.StatusBadRequest, "bad_request"},
		{"malformed token id", http.MethodGet, "/api/v1/holders/abc", nil, nil, http.StatusBadRequest, "validation_failed"},
		{"bad sale status", http.MethodGet, "/api/v1/properties/P1/sales?status=DONE", nil, nil, http.StatusBadRequest, "validation_failed"},
		{"tokenize without credentials", http.MethodPost, "/api/v1/properties/P1/tokenize", nil, nil, http.StatusUnauthorized, "unauthorized"},
		{"mint over the limit", http.MethodPost, "/api/v1/tokens/" + tokenID + "/mint", map[string]interface{}{"amount": 2_000_000_000}, []string{"Authorization", "ApiKey admin-key"}, http.StatusBadRequest, "validation_failed"},
		{"mint unknown token", http.MethodPost, "/api/v1/tokens/" + tokenID + "/mint", map[string]interface{}{"amount": 5}, []string{"Authorization", "ApiKey admin-key"}, http.StatusNotFound, "not_found"},
		{"holders of untokenized property", http.MethodGet, "/api/v1/properties/P1/holders", nil, nil, http.StatusConflict, "conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := f.do(t, tt.method, tt.path, tt.body, tt.headers...)
			assert.Equal(t, tt.status, code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code, env.Error.Message)
		})
	}
}

// observeLogs routes the global logger into an in-memory sink for one test
func observeLogs(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	core, logs := observer.New(level)
	t.Cleanup(logger.ReplaceGlobal(zap.New(core)))
	return logs
}

func TestInvalidateCache(t *testing.T) {
	f := setup(t, middleware.AuthConfig{APIKeys: []string{"admin-key"}})
	logs := observeLogs(t, zapcore.InfoLevel)
	f.net.balances[treasuryID] = 100

	code, _ := f.do(t, http.MethodGet, "/api/v1/holders/"+tokenID, nil)
	require.Equal(t, http.StatusOK, code)

	code, env := f.do(t, http.MethodPost, "/api/v1/audit/invalidate", map[string]string{"tokenId": tokenID},
		"Authorization", "ApiKey admin-key")
	require.Equal(t, http.StatusOK, code)
	var resp struct {
		Removed int  `json:"removed"`
		Cleared bool `json:"cleared"`
	}
	decode(t, env, &resp)
	assert.Equal(t, 1, resp.Removed)
	assert.False(t, resp.Cleared)

	code, env = f.do(t, http.MethodPost, "/api/v1/audit/invalidate", nil, "Authorization", "ApiKey admin-key")
	require.Equal(t, http.StatusOK, code)
	decode(t, env, &resp)
	assert.True(t, resp.Cleared)

	adminLogs := logs.FilterMessage("Admin operation completed").
		FilterField(zap.String("operation", "invalidate_cache")).
		FilterField(zap.String("actor", "apikey#0")).
		FilterField(zap.String("authMethod", "apikey"))
	assert.Equal(t, 2, adminLogs.Len())

	code, env = f.do(t, http.MethodPost, "/api/v1/audit/invalidate", map[string]string{"topicId": "topic"},
		"Authorization", "ApiKey admin-key")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.True(t, strings.Contains(string(env.Error.Details), "topicId"))
}

func TestHealthCheck(t *testing.T) {
	f := setup(t, middleware.AuthConfig{})

	for _, path := range []string{"/health", "/api/v1/health"} {
		code, env := f.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, code)
		var health struct {
			Status  string            `json:"status"`
			Checks  map[string]string `json:"checks"`
			Network string            `json:"network"`
		}
		decode(t, env, &health)
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "ok", health.Checks["database"])
		assert.Equal(t, "testnet", health.Network)
	}
}

func TestTokenHolders_RegistryLookup(t *testing.T) {
	balances := []domain.TokenBalance{{AccountID: treasuryID, Balance: 100}, {AccountID: buyerID, Balance: 0}}

	tests := []struct {
		name       string
		record     *schema.TokenRecord
		lookupErr  error
		propertyID string
		warnings   int
	}{
		{"registered", &schema.TokenRecord{TokenID: tokenID, PropertyID: "P1"}, nil, "P1", 0},
		{"minted elsewhere", nil, domain.NewNotFoundError("token", tokenID), "", 0},
		{"store failure", nil, errors.New("database is locked"), "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reg := mocks.NewMockRegistry(ctrl)
			mirror := mocks.NewMockMirrorNodeClient(ctrl)
			reg.EXPECT().FindByTokenID(gomock.Any(), tokenID).Return(tt.record, tt.lookupErr)
			mirror.EXPECT().GetTokenBalances(gomock.Any(), tokenID, mirrornode.ReadOptions{Limit: 25}).Return(balances, nil)

			handler := rest.NewHandler(false, rest.Deps{Registry: reg, Mirror: mirror})
			f := &fixture{router: server.New(server.Config{}, handler).Router()}
			logs := observeLogs(t, zapcore.WarnLevel)

			code, env := f.do(t, http.MethodGet, "/api/v1/holders/"+tokenID, nil)
			require.Equal(t, http.StatusOK, code)

			var resp struct {
				PropertyID  string `json:"propertyId"`
				HolderCount int    `json:"holderCount"`
			}
			decode(t, env, &resp)
			assert.Equal(t, tt.propertyID, resp.PropertyID)
			assert.Equal(t, 1, resp.HolderCount)
			assert.Equal(t, tt.warnings, logs.FilterMessage("Token registry lookup failed").Len())
		})
	}
}
