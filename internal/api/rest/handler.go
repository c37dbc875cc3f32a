package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/api/middleware"
	"github.com/proptoken/proptoken-backend/internal/api/shared/constants"
	"github.com/proptoken/proptoken-backend/internal/api/shared/dto"
	apierrors "github.com/proptoken/proptoken-backend/internal/api/shared/errors"
	"github.com/proptoken/proptoken-backend/internal/audit"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/ipfs"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/property"
	"github.com/proptoken/proptoken-backend/internal/providers/mirrornode"
	"github.com/proptoken/proptoken-backend/internal/purchase"
	"github.com/proptoken/proptoken-backend/internal/registry"
	"github.com/proptoken/proptoken-backend/internal/store"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
	"github.com/proptoken/proptoken-backend/internal/tokenization"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API and its database
	// GET /health
	HealthCheck(c *gin.Context)

	// CreateProperty pins media and metadata and stores a property
	// POST /api/v1/properties (application/json or multipart/form-data with image and media files)
	CreateProperty(c *gin.Context)

	// ListProperties returns a page of properties
	// GET /api/v1/properties?tokenized=<bool>&limit=<limit>&offset=<offset>
	ListProperties(c *gin.Context)

	// GetProperty returns a property
	// GET /api/v1/properties/:id
	GetProperty(c *gin.Context)

	// UpdateProperty revises descriptive fields and re-pins the metadata
	// PATCH /api/v1/properties/:id
	UpdateProperty(c *gin.Context)

	// VerifyProperty compares the pinned metadata with the stored hash
	// GET /api/v1/properties/:id/verify
	VerifyProperty(c *gin.Context)

	// TokenizeProperty issues the share token of a property (requires authentication)
	// POST /api/v1/properties/:id/tokenize
	TokenizeProperty(c *gin.Context)

	// BuyTokens runs a purchase
	// POST /api/v1/properties/:id/buy
	BuyTokens(c *gin.Context)

	// ListPropertySales returns the sales of a property
	// GET /api/v1/properties/:id/sales?status=<status>&buyer=<accountId>&limit=<limit>&offset=<offset>
	ListPropertySales(c *gin.Context)

	// GetPropertyHolders returns the holders of a property's token
	// GET /api/v1/properties/:id/holders?useCache=<bool>&limit=<limit>
	GetPropertyHolders(c *gin.Context)

	// ListTokens returns a page of registered tokens
	// GET /api/v1/tokens?propertyId=<id>&symbol=<symbol>&limit=<limit>&offset=<offset>
	ListTokens(c *gin.Context)

	// GetToken returns a registered token
	// GET /api/v1/tokens/:tokenId?refresh=<bool>
	GetToken(c *gin.Context)

	// MintTokens adds supply (requires authentication)
	// POST /api/v1/tokens/:tokenId/mint
	MintTokens(c *gin.Context)

	// BurnTokens removes supply (requires authentication)
	// POST /api/v1/tokens/:tokenId/burn
	BurnTokens(c *gin.Context)

	// TransferTokens distributes tokens from the treasury (requires authentication)
	// POST /api/v1/tokens/:tokenId/transfer
	TransferTokens(c *gin.Context)

	// GetSale returns a sale
	// GET /api/v1/sales/:id
	GetSale(c *gin.Context)

	// GetTokenHolders returns the non-zero balances of a token
	// GET /api/v1/holders/:tokenId?useCache=<bool>&limit=<limit>
	GetTokenHolders(c *gin.Context)

	// GetTokenTransfers returns recent transfers of a token
	// GET /api/v1/holders/:tokenId/transfers?useCache=<bool>&limit=<limit>
	GetTokenTransfers(c *gin.Context)

	// VerifyTokenOnChain reads token info, holders and transfers bypassing the cache
	// GET /api/v1/holders/:tokenId/verify
	VerifyTokenOnChain(c *gin.Context)

	// GetAccountHoldings returns the tokens held by an account
	// GET /api/v1/holders/account/:accountId?useCache=<bool>&limit=<limit>
	GetAccountHoldings(c *gin.Context)

	// GetTopicMessages returns messages of an audit topic
	// GET /api/v1/audit/topic/:topicId?useCache=<bool>&limit=<limit>
	GetTopicMessages(c *gin.Context)

	// GetPropertyAuditTrail returns the audit trail of a property
	// GET /api/v1/audit/property/:propertyId
	GetPropertyAuditTrail(c *gin.Context)

	// GetTokenAuditTrail returns the audit trail of a token
	// GET /api/v1/audit/token/:tokenId
	GetTokenAuditTrail(c *gin.Context)

	// InvalidateCache drops cached mirror node reads (requires authentication)
	// POST /api/v1/audit/invalidate
	InvalidateCache(c *gin.Context)

	// UploadContent pins a file
	// POST /api/v1/content
	UploadContent(c *gin.Context)

	// GetContent returns pinned content
	// GET /api/v1/content/:cid
	GetContent(c *gin.Context)

	// GetPinStatus reports pin status and gateway reachability
	// GET /api/v1/content/:cid/pin
	GetPinStatus(c *gin.Context)
}

// Deps holds the services behind the handlers
type Deps struct {
	Properties    property.Service
	Tokens        tokenization.Service
	Purchases     purchase.Orchestrator
	Registry      registry.Registry
	Mirror        mirrornode.Client
	AuditLog      audit.Log
	Content       ipfs.Store
	Store         store.Store
	Clock         adapter.Clock
	MaxUploadSize int64
	Network       string
	Operator      string
}

// handler implements the Handler interface
type handler struct {
	debug     bool
	deps      Deps
	startedAt time.Time
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, deps Deps) Handler {
	if deps.MaxUploadSize <= 0 {
		deps.MaxUploadSize = constants.DEFAULT_MAX_UPLOAD_SIZE
	}
	if deps.Clock == nil {
		deps.Clock = adapter.NewClock()
	}

	return &handler{
		debug:     debug,
		deps:      deps,
		startedAt: deps.Clock.Now(),
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	status := "healthy"
	checks := map[string]string{"database": "ok"}
	if err := h.deps.Store.Ping(c.Request.Context()); err != nil {
		logger.WarnCtx(c.Request.Context(), "Health check failed", zap.Error(err))
		status = "degraded"
		checks["database"] = err.Error()
	}

	resp := dto.HealthResponse{
		Status:   status,
		Service:  constants.HEALTH_SERVICE_NAME,
		Checks:   checks,
		Uptime:   h.deps.Clock.Since(h.startedAt).Truncate(time.Second).String(),
		Network:  h.deps.Network,
		Operator: h.deps.Operator,
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, apierrors.Success(resp))
}

// CreateProperty creates a property from JSON or a multipart form
func (h *handler) CreateProperty(c *gin.Context) {
	var req property.CreateRequest

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, files, err := h.parseMultipart(c)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req, err = createRequestFromForm(form)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.Files = files
	} else {
		var body dto.CreatePropertyRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
		req = property.CreateRequest{
			ID:            body.ID,
			Title:         body.Title,
			Address:       body.Address,
			Description:   body.Description,
			Valuation:     body.Valuation,
			TotalSupply:   body.TotalSupply,
			PricePerToken: body.PricePerToken,
			Currency:      body.Currency,
		}
	}

	p, err := h.deps.Properties.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondCreated(c, p)
}

// ListProperties returns a page of properties
func (h *handler) ListProperties(c *gin.Context) {
	params, err := ParseListPropertiesQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	page, err := h.deps.Properties.List(c.Request.Context(), property.Filter{
		Tokenized: params.Tokenized,
		Limit:     params.Limit,
		Offset:    params.Offset,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, page)
}

// GetProperty returns a property
func (h *handler) GetProperty(c *gin.Context) {
	p, err := h.deps.Properties.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, p)
}

// UpdateProperty revises a property
func (h *handler) UpdateProperty(c *gin.Context) {
	var body dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := body.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	p, err := h.deps.Properties.Revise(c.Request.Context(), c.Param("id"), property.ReviseRequest{
		Title:         body.Title,
		Address:       body.Address,
		Description:   body.Description,
		Valuation:     body.Valuation,
		PricePerToken: body.PricePerToken,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, p)
}

// VerifyProperty re-fetches the pinned metadata and compares hashes.
// A mismatch or unreachable content is reported in the body, not as an error status.
func (h *handler) VerifyProperty(c *gin.Context) {
	v, err := h.deps.Properties.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, v)
}

// TokenizeProperty issues the share token of a property
func (h *handler) TokenizeProperty(c *gin.Context) {
	var body dto.TokenizeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}
	if err := body.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.deps.Tokens.Tokenize(c.Request.Context(), tokenization.TokenizeRequest{
		PropertyID:    c.Param("id"),
		Name:          body.Name,
		Symbol:        body.Symbol,
		Decimals:      body.Decimals,
		InitialSupply: body.InitialSupply,
		Memo:          body.Memo,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	logAdmin(c, "tokenize",
		zap.String("propertyID", c.Param("id")),
		zap.String("tokenID", result.Token.TokenID))
	respondCreated(c, result)
}

// BuyTokens runs a purchase and returns the sale with fresh balances
func (h *handler) BuyTokens(c *gin.Context) {
	var body dto.BuyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := body.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	result, err := h.deps.Purchases.Purchase(ctx, purchase.Request{
		PropertyID:     c.Param("id"),
		BuyerAccountID: body.BuyerAccountID,
		Quantity:       body.Quantity,
		PricePerToken:  body.PricePerToken,
	})
	if err != nil {
		if purchase.IsIndeterminate(err) {
			logger.ErrorCtx(ctx, err, zap.String("propertyID", c.Param("id")))
		}
		h.respondError(c, err)
		return
	}

	// balances are informational; the sale already completed
	balances, err := h.deps.Mirror.GetTokenBalances(ctx, result.Sale.TokenID, mirrornode.ReadOptions{BypassCache: true})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read balances after purchase",
			zap.String("tokenID", result.Sale.TokenID),
			zap.Error(err))
		balances = []domain.TokenBalance{}
	}

	respondCreated(c, dto.PurchaseResponse{
		Result:   result,
		Balances: dto.NonZero(balances),
	})
}

// ListPropertySales returns the sales of a property
func (h *handler) ListPropertySales(c *gin.Context) {
	params, err := ParseListSalesQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	page, err := h.deps.Properties.ListSales(c.Request.Context(), c.Param("id"), property.SaleFilter{
		Status:         domain.SaleStatus(params.Status),
		BuyerAccountID: params.Buyer,
		Limit:          params.Limit,
		Offset:         params.Offset,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, page)
}

// GetPropertyHolders returns the holders of a property's token
func (h *handler) GetPropertyHolders(c *gin.Context) {
	params, err := ParseMirrorQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.deps.Properties.Get(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !p.Tokenized() {
		h.respondError(c, &domain.ConflictError{Message: fmt.Sprintf("property %s is not tokenized", p.ID)})
		return
	}

	h.respondHolders(c, *p.TokenID, p.ID, params)
}

// ListTokens returns a page of registered tokens
func (h *handler) ListTokens(c *gin.Context) {
	params, err := ParseListTokensQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	page, err := h.deps.Tokens.ListTokens(c.Request.Context(), registry.Filter{
		PropertyID: params.PropertyID,
		Symbol:     params.Symbol,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, page)
}

// GetToken returns a registered token
func (h *handler) GetToken(c *gin.Context) {
	tokenID, ok := entityParam(c, "tokenId")
	if !ok {
		return
	}

	params, err := ParseGetTokenQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.deps.Tokens.GetToken(c.Request.Context(), tokenID, params.Refresh)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, view)
}

// MintTokens adds supply
func (h *handler) MintTokens(c *gin.Context) {
	h.changeSupply(c, "mint", h.deps.Tokens.Mint)
}

// BurnTokens removes supply
func (h *handler) BurnTokens(c *gin.Context) {
	h.changeSupply(c, "burn", h.deps.Tokens.Burn)
}

func (h *handler) changeSupply(c *gin.Context, operation string, change func(ctx context.Context, tokenID string, amount int64) (*tokenization.SupplyResult, error)) {
	tokenID, ok := entityParam(c, "tokenId")
	if !ok {
		return
	}

	var body dto.SupplyChangeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := body.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	result, err := change(c.Request.Context(), tokenID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	logAdmin(c, operation,
		zap.String("tokenID", tokenID),
		zap.Int64("amount", body.Amount),
		zap.Int64("totalSupply", result.Token.TotalSupply))
	respondOK(c, result)
}

// TransferTokens distributes tokens from the treasury
func (h *handler) TransferTokens(c *gin.Context) {
	tokenID, ok := entityParam(c, "tokenId")
	if !ok {
		return
	}

	var body dto.TransferRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := body.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.deps.Tokens.Transfer(c.Request.Context(), tokenization.TransferRequest{
		TokenID:     tokenID,
		ToAccountID: body.ToAccountID,
		Amount:      body.Amount,
		Memo:        body.Memo,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	logAdmin(c, "transfer",
		zap.String("tokenID", tokenID),
		zap.String("toAccountID", body.ToAccountID),
		zap.Int64("amount", body.Amount))
	respondOK(c, result)
}

// GetSale returns a sale
func (h *handler) GetSale(c *gin.Context) {
	sale, err := h.deps.Purchases.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, sale)
}

// GetTokenHolders returns the non-zero balances of a token
func (h *handler) GetTokenHolders(c *gin.Context) {
	tokenID, ok := entityParam(c, "tokenId")
	if !ok {
		return
	}

	params, err := ParseMirrorQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	propertyID := ""
	if record := h.registeredToken(c.Request.Context(), tokenID); record != nil {
		propertyID = record.PropertyID
	}

	h.respondHolders(c, tokenID, propertyID, params)
}

func (h *handler) respondHolders(c *gin.Context, tokenID, propertyID string, params *MirrorQueryParams) {
	balances, err := h.deps.Mirror.GetTokenBalances(c.Request.Context(), tokenID, params.readOptions())
	if err != nil {
		h.respondError(c, err)
		return
	}

	holders := dto.NonZero(balances)
	respondOK(c, dto.HoldersResponse{
		TokenID:     tokenID,
		PropertyID:  propertyID,
		HolderCount: len(holders),
		Holders:     holders,
		Cached:      params.UseCache,
	})
}

// GetTokenTransfers returns recent transfers of a token
func (h *handler) GetTokenTransfers(c *gin.Context) {
	tokenID, ok := entityParam(c, "tokenId")
	if !ok {
		return
	}

	params, err := ParseMirrorQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	transfers, err := h.deps.Mirror.GetTokenTransfers(c.Request.Context(), tokenID, params.readOptions())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, dto.TransfersResponse{
		TokenID:       tokenID,
		TransferCount: len(transfers),
		Transfers:     transfers,
		Cached:        params.UseCache,
	})
}

// VerifyTokenOnChain reads the token state bypassing the cache
func (h *handler) VerifyTokenOnChain(c *gin.Context) {
	tokenID, ok := entityParam(c, "tokenId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	fresh := mirrornode.ReadOptions{BypassCache: true}

	info, err := h.deps.Mirror.GetTokenInfo(ctx, tokenID, fresh)
	if err != nil {
		h.respondError(c, err)
		return
	}
	balances, err := h.deps.Mirror.GetTokenBalances(ctx, tokenID, fresh)
	if err != nil {
		h.respondError(c, err)
		return
	}
	transfers, err := h.deps.Mirror.GetTokenTransfers(ctx, tokenID, fresh)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := dto.OnChainVerificationResponse{
		TokenInfo:       info,
		CurrentHolders:  len(dto.NonZero(balances)),
		TotalSupply:     info.TotalSupply,
		RecentTransfers: len(transfers),
		VerifiedAt:      h.deps.Clock.Now().UTC().Format(time.RFC3339),
	}
	if record := h.registeredToken(ctx, tokenID); record != nil {
		supply := record.TotalSupply
		resp.RegistrySupply = &supply
	}

	respondOK(c, resp)
}

// GetAccountHoldings returns the tokens held by an account
func (h *handler) GetAccountHoldings(c *gin.Context) {
	accountID, ok := entityParam(c, "accountId")
	if !ok {
		return
	}

	params, err := ParseMirrorQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tokens, err := h.deps.Mirror.GetAccountTokenBalances(c.Request.Context(), accountID, params.readOptions())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, dto.AccountHoldingsResponse{
		AccountID:  accountID,
		TokenCount: len(tokens),
		Tokens:     tokens,
		Cached:     params.UseCache,
	})
}

// GetTopicMessages returns messages of an audit topic
func (h *handler) GetTopicMessages(c *gin.Context) {
	topicID, ok := entityParam(c, "topicId")
	if !ok {
		return
	}

	params, err := ParseMirrorQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	messages, err := h.deps.AuditLog.TopicMessages(c.Request.Context(), topicID, params.readOptions())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, dto.TopicMessagesResponse{
		TopicID:      topicID,
		MessageCount: len(messages),
		Messages:     messages,
	})
}

// GetPropertyAuditTrail returns the audit trail of a property
func (h *handler) GetPropertyAuditTrail(c *gin.Context) {
	params, err := ParseMirrorQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	trail, err := h.deps.AuditLog.PropertyTrail(c.Request.Context(), c.Param("propertyId"), params.readOptions())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, trail)
}

// GetTokenAuditTrail returns the audit trail of a token
func (h *handler) GetTokenAuditTrail(c *gin.Context) {
	tokenID, ok := entityParam(c, "tokenId")
	if !ok {
		return
	}

	params, err := ParseMirrorQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	trail, err := h.deps.AuditLog.TokenTrail(c.Request.Context(), tokenID, params.readOptions())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, trail)
}

// InvalidateCache drops cached reads of a token and/or topic, or everything
func (h *handler) InvalidateCache(c *gin.Context) {
	var body dto.InvalidateCacheRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}
	if err := body.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	resp := dto.InvalidateCacheResponse{TokenID: body.TokenID, TopicID: body.TopicID}
	if body.TokenID == "" && body.TopicID == "" {
		h.deps.Mirror.ClearCache()
		resp.Cleared = true
	}
	if body.TokenID != "" {
		resp.Removed += h.deps.Mirror.InvalidateCacheForToken(body.TokenID)
	}
	if body.TopicID != "" {
		resp.Removed += h.deps.Mirror.InvalidateCacheForTopic(body.TopicID)
	}

	logAdmin(c, "invalidate_cache",
		zap.String("tokenID", body.TokenID),
		zap.String("topicID", body.TopicID),
		zap.Int("removed", resp.Removed),
		zap.Bool("cleared", resp.Cleared))

	respondOK(c, resp)
}

// UploadContent pins a single file
func (h *handler) UploadContent(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.deps.MaxUploadSize)

	fh, err := c.FormFile(constants.CONTENT_FILE_FIELD)
	if err != nil {
		respondBadRequest(c, "A file is required", err.Error())
		return
	}
	file, err := readFile(fh)
	if err != nil {
		respondBadRequest(c, "Failed to read file", err.Error())
		return
	}

	result, err := h.deps.Content.Upload(c.Request.Context(), file.Name, file.Data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondCreated(c, result)
}

// GetContent returns pinned content with its sniffed content type
func (h *handler) GetContent(c *gin.Context) {
	cid := ipfs.NormalizeCID(c.Param("cid"))
	if cid == "" {
		respondBadRequest(c, "CID is required")
		return
	}

	data, err := h.deps.Content.Retrieve(c.Request.Context(), cid)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}

// GetPinStatus reports pin status and gateway reachability
func (h *handler) GetPinStatus(c *gin.Context) {
	cid := ipfs.NormalizeCID(c.Param("cid"))
	if cid == "" {
		respondBadRequest(c, "CID is required")
		return
	}

	respondOK(c, h.deps.Content.VerifyPin(c.Request.Context(), cid))
}

// registeredToken looks up the registry record that enriches a mirror response.
// Tokens minted elsewhere have none; any other lookup failure is logged and skipped.
func (h *handler) registeredToken(ctx context.Context, tokenID string) *schema.TokenRecord {
	record, err := h.deps.Registry.FindByTokenID(ctx, tokenID)
	if err != nil {
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			logger.WarnCtx(ctx, "Token registry lookup failed", zap.String("tokenID", tokenID), zap.Error(err))
		}
		return nil
	}
	return record
}

// logAdmin records an admin operation together with the authenticated caller
func logAdmin(c *gin.Context, operation string, fields ...zap.Field) {
	principal, _ := middleware.PrincipalFrom(c)
	fields = append(fields,
		zap.String("operation", operation),
		zap.String("actor", principal.Subject),
		zap.String("authMethod", principal.Method))
	logger.InfoCtx(c.Request.Context(), "Admin operation completed", fields...)
}

func (p *MirrorQueryParams) readOptions() mirrornode.ReadOptions {
	return mirrornode.ReadOptions{Limit: p.Limit, BypassCache: !p.UseCache}
}

// entityParam reads a shard.realm.num path parameter, responding 400 when malformed
func entityParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !domain.IsValidEntityID(id) {
		c.JSON(http.StatusBadRequest, apierrors.Failure(apierrors.NewValidationError("Invalid path parameter", map[string]string{
			name: "must be shard.realm.num, e.g. 0.0.12345",
		})))
		return "", false
	}
	return id, true
}

// parseMultipart reads form values and the image and media files of a property upload
func (h *handler) parseMultipart(c *gin.Context) (map[string]string, []ipfs.File, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.deps.MaxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, apierrors.NewBadRequestError("Invalid multipart form", err.Error())
	}

	values := make(map[string]string, len(form.Value))
	for k, v := range form.Value {
		if len(v) > 0 {
			values[k] = strings.TrimSpace(v[0])
		}
	}

	var headers []*multipart.FileHeader
	headers = append(headers, form.File[constants.PROPERTY_IMAGE_FIELD]...)
	headers = append(headers, form.File[constants.PROPERTY_MEDIA_FIELD]...)
	if len(headers) > constants.MAX_UPLOAD_FILES {
		return nil, nil, apierrors.NewValidationError("Too many files", map[string]string{
			"files": fmt.Sprintf("at most %d files are accepted", constants.MAX_UPLOAD_FILES),
		})
	}

	files := make([]ipfs.File, 0, len(headers))
	for _, fh := range headers {
		f, err := readFile(fh)
		if err != nil {
			return nil, nil, apierrors.NewBadRequestError("Failed to read file", err.Error())
		}
		files = append(files, f)
	}

	return values, files, nil
}

func readFile(fh *multipart.FileHeader) (ipfs.File, error) {
	f, err := fh.Open()
	if err != nil {
		return ipfs.File{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return ipfs.File{}, err
	}
	return ipfs.File{Name: fh.Filename, Data: data}, nil
}

// createRequestFromForm converts multipart form values; numbers arrive as strings
func createRequestFromForm(form map[string]string) (property.CreateRequest, error) {
	req := property.CreateRequest{
		ID:          form["id"],
		Title:       form["title"],
		Address:     form["address"],
		Description: form["description"],
		Currency:    form["currency"],
	}

	fields := map[string]string{}
	if v := form["valuation"]; v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			fields["valuation"] = "must be a number"
		}
		req.Valuation = d
	}
	if v := form["totalSupply"]; v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			fields["totalSupply"] = "must be an integer"
		}
		req.TotalSupply = n
	}
	if v := form["pricePerToken"]; v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			fields["pricePerToken"] = "must be a number"
		} else {
			req.PricePerToken = &d
		}
	}

	if len(fields) > 0 {
		return req, apierrors.NewValidationError("invalid property", fields)
	}
	return req, nil
}
