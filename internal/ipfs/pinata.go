package ipfs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

type pinataCredentials struct {
	jwt    string
	key    string
	secret string
}

type pinataPinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

type pinataListResponse struct {
	Count int `json:"count"`
	Rows  []struct {
		IpfsPinHash string `json:"ipfs_pin_hash"`
	} `json:"rows"`
}

// pinataProvider pins through the Pinata pinning API. Reads go through gateways.
type pinataProvider struct {
	apiURL string
	creds  pinataCredentials
	http   adapter.HTTPClient
	codec  adapter.JSON
}

// NewPinataProvider creates a Pinata provider
func NewPinataProvider(apiURL string, creds pinataCredentials, httpClient adapter.HTTPClient, codec adapter.JSON) Provider {
	return &pinataProvider{
		apiURL: strings.TrimRight(apiURL, "/"),
		creds:  creds,
		http:   httpClient,
		codec:  codec,
	}
}

func (p *pinataProvider) Name() string {
	return ProviderPinata
}

func (p *pinataProvider) headers() map[string]string {
	if p.creds.jwt != "" {
		return map[string]string{"Authorization": "Bearer " + p.creds.jwt}
	}
	return map[string]string{
		"pinata_api_key":        p.creds.key,
		"pinata_secret_api_key": p.creds.secret,
	}
}

func (p *pinataProvider) Add(ctx context.Context, name string, data []byte) (*AddResult, error) {
	meta, err := p.codec.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin metadata: %w", err)
	}

	contentType, body, err := multipartFile("file", name, data, map[string]string{"pinataMetadata": string(meta)})
	if err != nil {
		return nil, err
	}

	resp, err := p.http.Post(ctx, p.apiURL+"/pinning/pinFileToIPFS", contentType, body, p.headers())
	if err != nil {
		return nil, domain.NewUpstreamError("pinata", "pin file", err)
	}

	return p.decodePin(resp, int64(len(data)))
}

func (p *pinataProvider) AddJSON(ctx context.Context, name string, doc []byte) (*AddResult, error) {
	body, err := p.codec.Marshal(map[string]interface{}{
		"pinataContent":  json.RawMessage(doc),
		"pinataMetadata": map[string]string{"name": name},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin request: %w", err)
	}

	resp, err := p.http.Post(ctx, p.apiURL+"/pinning/pinJSONToIPFS", "application/json", body, p.headers())
	if err != nil {
		return nil, domain.NewUpstreamError("pinata", "pin json", err)
	}

	return p.decodePin(resp, int64(len(doc)))
}

func (p *pinataProvider) decodePin(resp []byte, fallbackSize int64) (*AddResult, error) {
	var pinned pinataPinResponse
	if err := p.codec.Unmarshal(resp, &pinned); err != nil {
		return nil, fmt.Errorf("failed to decode pin response: %w", err)
	}
	if pinned.IpfsHash == "" {
		return nil, domain.NewUpstreamError("pinata", "pin", fmt.Errorf("response has no IpfsHash"))
	}

	size := pinned.PinSize
	if size == 0 {
		size = fallbackSize
	}
	return &AddResult{CID: pinned.IpfsHash, Size: size}, nil
}

func (p *pinataProvider) Cat(ctx context.Context, cid string) ([]byte, error) {
	return nil, ErrCatUnsupported
}

func (p *pinataProvider) IsPinned(ctx context.Context, cid string) (bool, error) {
	q := url.Values{}
	q.Set("hashContains", cid)
	q.Set("status", "pinned")

	resp, err := p.http.Get(ctx, p.apiURL+"/data/pinList?"+q.Encode(), p.headers())
	if err != nil {
		return false, domain.NewUpstreamError("pinata", "pin list", err)
	}

	var list pinataListResponse
	if err := p.codec.Unmarshal(resp, &list); err != nil {
		return false, fmt.Errorf("failed to decode pin list: %w", err)
	}

	for _, row := range list.Rows {
		if row.IpfsPinHash == cid {
			return true, nil
		}
	}

	logger.DebugCtx(ctx, "CID not pinned on pinata", zap.String("cid", cid), zap.Int("count", list.Count))
	return false, nil
}
