package ipfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
)

const (
	ProviderPinata = "pinata"
	ProviderNode   = "node"
	ProviderLocal  = "local"
)

// ErrCatUnsupported is returned by providers that cannot read content directly
var ErrCatUnsupported = errors.New("provider does not support direct reads")

// AddResult is the outcome of pinning content
type AddResult struct {
	CID  string `json:"cid"`
	Size int64  `json:"size"`
}

// Provider pins and reads content on one IPFS backend
//
//go:generate mockgen -source=provider.go -destination=../mocks/ipfs_provider.go -package=mocks -mock_names=Provider=MockIPFSProvider
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// Add pins a file
	Add(ctx context.Context, name string, data []byte) (*AddResult, error)

	// AddJSON pins an already encoded JSON document
	AddJSON(ctx context.Context, name string, doc []byte) (*AddResult, error)

	// Cat reads content directly from the provider
	Cat(ctx context.Context, cid string) ([]byte, error)

	// IsPinned reports whether the provider holds a pin for cid
	IsPinned(ctx context.Context, cid string) (bool, error)
}

// ProviderConfig selects and configures a provider
type ProviderConfig struct {
	Provider        string
	APIURL          string
	PinataAPIKey    string
	PinataSecretKey string
	PinataJWT       string
	ProjectID       string
	ProjectSecret   string
}

// NewProvider creates the provider named by cfg.Provider
func NewProvider(cfg ProviderConfig, httpClient adapter.HTTPClient, codec adapter.JSON) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderPinata, "":
		if cfg.PinataJWT == "" && (cfg.PinataAPIKey == "" || cfg.PinataSecretKey == "") {
			return nil, fmt.Errorf("pinata provider requires a JWT or an API key and secret")
		}
		apiURL := cfg.APIURL
		if apiURL == "" {
			apiURL = domain.DEFAULT_PINATA_API_URL
		}
		return NewPinataProvider(apiURL, pinataCredentials{
			jwt:    cfg.PinataJWT,
			key:    cfg.PinataAPIKey,
			secret: cfg.PinataSecretKey,
		}, httpClient, codec), nil
	case ProviderNode:
		if cfg.APIURL == "" {
			return nil, fmt.Errorf("node provider requires an API URL")
		}
		return NewNodeProvider(ProviderNode, cfg.APIURL, nodeAuthHeader(cfg.ProjectID, cfg.ProjectSecret), httpClient, codec), nil
	case ProviderLocal:
		apiURL := cfg.APIURL
		if apiURL == "" {
			apiURL = domain.DEFAULT_IPFS_NODE_URL
		}
		return NewNodeProvider(ProviderLocal, apiURL, "", httpClient, codec), nil
	default:
		return nil, fmt.Errorf("unknown ipfs provider: %s", cfg.Provider)
	}
}
