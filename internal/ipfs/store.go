package ipfs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

// File is a named blob to pin
type File struct {
	Name string
	Data []byte
}

// UploadResult describes pinned content
type UploadResult struct {
	CID      string `json:"cid"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// PinStatus reports whether content is pinned and reachable
type PinStatus struct {
	CID        string `json:"cid"`
	Pinned     bool   `json:"pinned"`
	Accessible bool   `json:"accessible"`
	GatewayURL string `json:"gatewayUrl,omitempty"`
}

// Config holds content store settings
type Config struct {
	Gateways      []string
	UploadWorkers int
}

// Store pins and retrieves content-addressed files
//
//go:generate mockgen -source=store.go -destination=../mocks/ipfs_store.go -package=mocks -mock_names=Store=MockContentStore
type Store interface {
	// Upload pins a file, sniffing its mime type
	Upload(ctx context.Context, name string, data []byte) (*UploadResult, error)

	// UploadMany pins files concurrently; results keep the input order
	UploadMany(ctx context.Context, files []File) ([]*UploadResult, error)

	// UploadJSON encodes v and pins it as a JSON document
	UploadJSON(ctx context.Context, name string, v interface{}) (*UploadResult, error)

	// Retrieve reads content from the provider, then each gateway in order
	Retrieve(ctx context.Context, cid string) ([]byte, error)

	// RetrieveJSON retrieves content and decodes it into out
	RetrieveJSON(ctx context.Context, cid string, out interface{}) error

	// VerifyPin checks pin status and gateway reachability. It never fails;
	// probe errors read as not pinned or not accessible.
	VerifyPin(ctx context.Context, cid string) PinStatus

	// Close stops the upload workers
	Close()
}

type store struct {
	provider Provider
	http     adapter.HTTPClient
	codec    adapter.JSON
	gateways []string
	pool     pond.ResultPool[*UploadResult]
}

// NewStore creates a content store on top of a provider
func NewStore(cfg Config, provider Provider, httpClient adapter.HTTPClient, codec adapter.JSON) Store {
	gateways := cfg.Gateways
	if len(gateways) == 0 {
		gateways = domain.DefaultIPFSGateways()
	}
	workers := cfg.UploadWorkers
	if workers <= 0 {
		workers = 4
	}

	return &store{
		provider: provider,
		http:     httpClient,
		codec:    codec,
		gateways: gateways,
		pool:     pond.NewResultPool[*UploadResult](workers),
	}
}

func (s *store) Upload(ctx context.Context, name string, data []byte) (*UploadResult, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("file", "is empty")
	}

	added, err := s.provider.Add(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to pin %s: %w", name, err)
	}

	result := &UploadResult{
		CID:      added.CID,
		Name:     name,
		MimeType: mimetype.Detect(data).String(),
		Size:     added.Size,
	}

	logger.InfoCtx(ctx, "Content pinned",
		zap.String("provider", s.provider.Name()),
		zap.String("cid", result.CID),
		zap.String("name", name),
		zap.String("mimeType", result.MimeType),
		zap.Int64("size", result.Size))

	return result, nil
}

func (s *store) UploadMany(ctx context.Context, files []File) ([]*UploadResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	group := s.pool.NewGroup()
	for _, f := range files {
		group.SubmitErr(func() (*UploadResult, error) {
			return s.Upload(ctx, f.Name, f.Data)
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *store) UploadJSON(ctx context.Context, name string, v interface{}) (*UploadResult, error) {
	doc, err := s.codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	added, err := s.provider.AddJSON(ctx, name, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to pin %s: %w", name, err)
	}

	logger.InfoCtx(ctx, "JSON document pinned",
		zap.String("provider", s.provider.Name()),
		zap.String("cid", added.CID),
		zap.String("name", name))

	return &UploadResult{
		CID:      added.CID,
		Name:     name,
		MimeType: "application/json",
		Size:     added.Size,
	}, nil
}

func (s *store) Retrieve(ctx context.Context, ref string) ([]byte, error) {
	cid := NormalizeCID(ref)
	if cid == "" {
		return nil, domain.NewValidationError("cid", "is required")
	}

	var lastErr error

	data, err := s.provider.Cat(ctx, cid)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrCatUnsupported) {
		logger.WarnCtx(ctx, "provider read failed, falling back to gateways",
			zap.String("provider", s.provider.Name()),
			zap.String("cid", cid),
			zap.Error(err))
		lastErr = err
	}

	for _, gw := range s.gateways {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		url := GatewayURL(gw, cid)
		data, err := s.http.Get(ctx, url, nil)
		if err == nil {
			logger.DebugCtx(ctx, "Content retrieved from gateway", zap.String("url", url))
			return data, nil
		}

		logger.WarnCtx(ctx, "gateway read failed", zap.String("url", url), zap.Error(err))
		lastErr = err
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no read path configured for %s", cid)
	}
	return nil, domain.NewUpstreamError("ipfs", "retrieve "+cid, lastErr)
}

func (s *store) RetrieveJSON(ctx context.Context, cid string, out interface{}) error {
	data, err := s.Retrieve(ctx, cid)
	if err != nil {
		return err
	}
	if err := s.codec.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", cid, err)
	}
	return nil
}

func (s *store) VerifyPin(ctx context.Context, ref string) PinStatus {
	cid := NormalizeCID(ref)
	status := PinStatus{CID: cid}
	if cid == "" {
		return status
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		pinned, err := s.provider.IsPinned(ctx, cid)
		if err != nil {
			logger.WarnCtx(ctx, "pin status check failed", zap.String("cid", cid), zap.Error(err))
			return
		}
		status.Pinned = pinned
	}()

	go func() {
		defer wg.Done()
		url, err := ProbeGateways(ctx, s.http, cid, s.gateways)
		if err != nil {
			logger.DebugCtx(ctx, "content not reachable on gateways", zap.String("cid", cid), zap.Error(err))
			return
		}
		status.Accessible = true
		status.GatewayURL = url
	}()

	wg.Wait()
	return status
}

func (s *store) Close() {
	s.pool.StopAndWait()
}
