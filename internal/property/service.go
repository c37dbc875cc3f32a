package property

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/ipfs"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/messaging"
	"github.com/proptoken/proptoken-backend/internal/store"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
)

// MetadataVersion is the schema version of pinned metadata documents
const MetadataVersion = 1

// Metadata is the document pinned to IPFS for a property. Its content hash is
// the sha256 of its canonical JSON form.
type Metadata struct {
	Version       int               `json:"version"`
	PropertyID    string            `json:"propertyId"`
	Title         string            `json:"title"`
	Address       string            `json:"address"`
	Description   string            `json:"description,omitempty"`
	Valuation     string            `json:"valuation"`
	TotalSupply   int64             `json:"totalSupply"`
	PricePerToken string            `json:"pricePerToken"`
	Currency      string            `json:"currency"`
	Media         []domain.MediaRef `json:"media"`
	UpdatedAt     string            `json:"updatedAt"`
}

// CreateRequest describes a new property
type CreateRequest struct {
	// ID is optional; a UUID is assigned when empty
	ID            string
	Title         string
	Address       string
	Description   string
	Valuation     decimal.Decimal
	TotalSupply   int64
	PricePerToken *decimal.Decimal
	Currency      string
	Files         []ipfs.File
}

// ReviseRequest changes descriptive fields; nil fields keep their value.
// Files are pinned and appended to the existing media.
type ReviseRequest struct {
	Title         *string
	Address       *string
	Description   *string
	Valuation     *decimal.Decimal
	PricePerToken *decimal.Decimal
	Files         []ipfs.File
}

// Filter selects a page of properties
type Filter struct {
	Tokenized *bool
	Offset    int
	Limit     int
}

// Page is a page of properties
type Page struct {
	Total  int64             `json:"total"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
	Items  []schema.Property `json:"items"`
}

// SaleFilter selects sales of a property
type SaleFilter struct {
	Status         domain.SaleStatus
	BuyerAccountID string
	Offset         int
	Limit          int
}

// SalesPage is a page of sales
type SalesPage struct {
	Total  int64         `json:"total"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
	Items  []schema.Sale `json:"items"`
}

// Verification compares the pinned metadata with the stored content hash
type Verification struct {
	PropertyID   string         `json:"propertyId"`
	MetadataCID  string         `json:"metadataCid"`
	StoredHash   string         `json:"storedHash"`
	ComputedHash string         `json:"computedHash"`
	Valid        bool           `json:"valid"`
	Pin          ipfs.PinStatus `json:"pin"`
	Error        string         `json:"error,omitempty"`
}

// Service manages properties and their pinned metadata
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*schema.Property, error)
	Get(ctx context.Context, id string) (*schema.Property, error)
	List(ctx context.Context, filter Filter) (*Page, error)
	// Revise re-pins the metadata document and records its new hash
	Revise(ctx context.Context, id string, req ReviseRequest) (*schema.Property, error)
	// Verify re-fetches the metadata by CID and recomputes its hash
	Verify(ctx context.Context, id string) (*Verification, error)
	ListSales(ctx context.Context, id string, filter SaleFilter) (*SalesPage, error)
}

type service struct {
	store     store.Store
	content   ipfs.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	json      adapter.JSON
	defaults  Defaults
}

// Defaults fills price and currency when a request leaves them out
type Defaults struct {
	PricePerToken decimal.Decimal
	Currency      string
}

// NewService creates a property service
func NewService(st store.Store, content ipfs.Store, publisher messaging.Publisher, clock adapter.Clock, json adapter.JSON, defaults Defaults) Service {
	if defaults.PricePerToken.IsZero() {
		defaults.PricePerToken = decimal.RequireFromString(domain.DEFAULT_PRICE_PER_TOKEN)
	}
	if defaults.Currency == "" {
		defaults.Currency = domain.DEFAULT_CURRENCY
	}

	return &service{
		store:     st,
		content:   content,
		publisher: publisher,
		clock:     clock,
		json:      json,
		defaults:  defaults,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*schema.Property, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	} else {
		existing, err := s.store.GetProperty(ctx, req.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check property: %w", err)
		}
		if existing != nil {
			return nil, &domain.ConflictError{Message: fmt.Sprintf("property %s already exists", req.ID)}
		}
	}

	price := s.defaults.PricePerToken
	if req.PricePerToken != nil {
		price = *req.PricePerToken
	}
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = s.defaults.Currency
	}

	media, err := s.pinFiles(ctx, req.Files)
	if err != nil {
		return nil, err
	}

	property := &schema.Property{
		ID:            req.ID,
		Title:         strings.TrimSpace(req.Title),
		Address:       strings.TrimSpace(req.Address),
		Description:   req.Description,
		Valuation:     req.Valuation,
		TotalSupply:   req.TotalSupply,
		PricePerToken: price,
		Currency:      currency,
		Media:         schema.NewMediaList(media),
	}

	cid, hash, err := s.pinMetadata(ctx, property)
	if err != nil {
		return nil, err
	}
	property.MetadataCID = cid
	property.ContentHash = hash

	if err := s.store.CreateProperty(ctx, property); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Property created",
		zap.String("propertyID", property.ID),
		zap.String("metadataCID", cid),
		zap.Int("media", len(media)))

	messaging.Emit(ctx, s.publisher, messaging.NewEvent(s.clock.Now(), domain.EventPropertyCreated,
		property.ID, "", "", map[string]interface{}{
			"title":       property.Title,
			"metadataCid": cid,
			"contentHash": hash,
		}))

	return property, nil
}

func (s *service) validateCreate(req CreateRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "is required"
	}
	if strings.TrimSpace(req.Address) == "" {
		fields["address"] = "is required"
	}
	if !req.Valuation.IsPositive() {
		fields["valuation"] = "must be positive"
	}
	if req.TotalSupply <= 0 {
		fields["totalSupply"] = "must be positive"
	}
	if req.PricePerToken != nil && !req.PricePerToken.IsPositive() {
		fields["pricePerToken"] = "must be positive"
	}
	if req.Currency != "" && len(req.Currency) != 3 {
		fields["currency"] = "must be a 3 letter code"
	}
	for i, f := range req.Files {
		if len(f.Data) == 0 {
			fields[fmt.Sprintf("files[%d]", i)] = "is empty"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Message: "invalid property", Fields: fields}
	}
	return nil
}

// pinFiles uploads files concurrently and returns their media references in input order
func (s *service) pinFiles(ctx context.Context, files []ipfs.File) ([]domain.MediaRef, error) {
	if len(files) == 0 {
		return nil, nil
	}

	results, err := s.content.UploadMany(ctx, files)
	if err != nil {
		return nil, err
	}

	media := make([]domain.MediaRef, 0, len(results))
	for _, r := range results {
		media = append(media, domain.MediaRef{
			CID:      r.CID,
			Name:     r.Name,
			MimeType: r.MimeType,
			Size:     r.Size,
		})
	}
	return media, nil
}

func (s *service) metadataFor(property *schema.Property) Metadata {
	media := []domain.MediaRef(property.Media)
	if media == nil {
		media = []domain.MediaRef{}
	}

	return Metadata{
		Version:       MetadataVersion,
		PropertyID:    property.ID,
		Title:         property.Title,
		Address:       property.Address,
		Description:   property.Description,
		Valuation:     property.Valuation.String(),
		TotalSupply:   property.TotalSupply,
		PricePerToken: property.PricePerToken.String(),
		Currency:      property.Currency,
		Media:         media,
		UpdatedAt:     s.clock.Now().UTC().Format(time.RFC3339),
	}
}

// pinMetadata pins the metadata document of property and returns its CID and content hash
func (s *service) pinMetadata(ctx context.Context, property *schema.Property) (string, string, error) {
	doc := s.metadataFor(property)

	hash, err := s.contentHash(doc)
	if err != nil {
		return "", "", err
	}

	result, err := s.content.UploadJSON(ctx, fmt.Sprintf("property-%s.json", property.ID), doc)
	if err != nil {
		return "", "", err
	}

	return result.CID, hash, nil
}

// contentHash returns the hex sha256 of the canonical JSON of v
func (s *service) contentHash(v interface{}) (string, error) {
	canonical, err := s.json.Canonical(v)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func (s *service) Get(ctx context.Context, id string) (*schema.Property, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "is required")
	}

	property, err := s.store.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.NewNotFoundError("property", id)
	}
	return property, nil
}

func (s *service) List(ctx context.Context, filter Filter) (*Page, error) {
	properties, total, err := s.store.ListProperties(ctx, store.PropertyFilter{
		Tokenized: filter.Tokenized,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	})
	if err != nil {
		return nil, err
	}

	limit, offset := store.ClampPage(filter.Limit, filter.Offset)
	return &Page{Total: total, Offset: offset, Limit: limit, Items: properties}, nil
}

func (s *service) Revise(ctx context.Context, id string, req ReviseRequest) (*schema.Property, error) {
	property, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			fields["title"] = "must not be empty"
		}
		property.Title = strings.TrimSpace(*req.Title)
	}
	if req.Address != nil {
		if strings.TrimSpace(*req.Address) == "" {
			fields["address"] = "must not be empty"
		}
		property.Address = strings.TrimSpace(*req.Address)
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Valuation != nil {
		if !req.Valuation.IsPositive() {
			fields["valuation"] = "must be positive"
		}
		property.Valuation = *req.Valuation
	}
	if req.PricePerToken != nil {
		if !req.PricePerToken.IsPositive() {
			fields["pricePerToken"] = "must be positive"
		}
		property.PricePerToken = *req.PricePerToken
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Message: "invalid property revision", Fields: fields}
	}

	added, err := s.pinFiles(ctx, req.Files)
	if err != nil {
		return nil, err
	}
	media := append([]domain.MediaRef(property.Media), added...)
	property.Media = schema.NewMediaList(media)

	cid, hash, err := s.pinMetadata(ctx, property)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdatePropertyMetadata(ctx, id, store.UpdatePropertyMetadataInput{
		Title:         property.Title,
		Address:       property.Address,
		Description:   property.Description,
		Valuation:     property.Valuation,
		PricePerToken: property.PricePerToken,
		Media:         media,
		MetadataCID:   cid,
		ContentHash:   hash,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Property metadata revised",
		zap.String("propertyID", id),
		zap.String("metadataCID", cid),
		zap.String("contentHash", hash))

	return updated, nil
}

func (s *service) Verify(ctx context.Context, id string) (*Verification, error) {
	property, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	v := &Verification{
		PropertyID:  property.ID,
		MetadataCID: property.MetadataCID,
		StoredHash:  property.ContentHash,
	}
	if property.MetadataCID == "" {
		v.Error = "property has no pinned metadata"
		return v, nil
	}

	v.Pin = s.content.VerifyPin(ctx, property.MetadataCID)

	raw, err := s.content.Retrieve(ctx, property.MetadataCID)
	if err != nil {
		logger.WarnCtx(ctx, "Metadata retrieval failed during verification",
			zap.String("propertyID", id),
			zap.String("cid", property.MetadataCID),
			zap.Error(err))
		v.Error = err.Error()
		return v, nil
	}

	computed, err := s.contentHash(raw)
	if err != nil {
		v.Error = err.Error()
		return v, nil
	}

	v.ComputedHash = computed
	v.Valid = computed == property.ContentHash
	return v, nil
}

func (s *service) ListSales(ctx context.Context, id string, filter SaleFilter) (*SalesPage, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	sales, total, err := s.store.ListSales(ctx, store.SaleFilter{
		PropertyID:     id,
		BuyerAccountID: filter.BuyerAccountID,
		Status:         filter.Status,
		Limit:          filter.Limit,
		Offset:         filter.Offset,
	})
	if err != nil {
		return nil, err
	}

	limit, offset := store.ClampPage(filter.Limit, filter.Offset)
	return &SalesPage{Total: total, Offset: offset, Limit: limit, Items: sales}, nil
}
