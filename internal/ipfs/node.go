package ipfs

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
)

type nodeAddResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

type nodePinLsResponse struct {
	Keys map[string]struct {
		Type string `json:"Type"`
	} `json:"Keys"`
}

// nodeProvider talks to an IPFS HTTP RPC API (/api/v0), hosted or local
type nodeProvider struct {
	name   string
	apiURL string
	auth   string
	http   adapter.HTTPClient
	codec  adapter.JSON
}

// NewNodeProvider creates a provider for an IPFS RPC endpoint. auth is the
// Authorization header value; empty means unauthenticated.
func NewNodeProvider(name, apiURL, auth string, httpClient adapter.HTTPClient, codec adapter.JSON) Provider {
	return &nodeProvider{
		name:   name,
		apiURL: strings.TrimRight(apiURL, "/"),
		auth:   auth,
		http:   httpClient,
		codec:  codec,
	}
}

// nodeAuthHeader builds basic auth from a project id and secret, or a bearer
// token when only the secret is set
func nodeAuthHeader(projectID, projectSecret string) string {
	switch {
	case projectID != "" && projectSecret != "":
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(projectID+":"+projectSecret))
	case projectSecret != "":
		return "Bearer " + projectSecret
	default:
		return ""
	}
}

func (p *nodeProvider) Name() string {
	return p.name
}

func (p *nodeProvider) headers() map[string]string {
	if p.auth == "" {
		return nil
	}
	return map[string]string{"Authorization": p.auth}
}

func (p *nodeProvider) rpc(ctx context.Context, command string, query url.Values, contentType string, body []byte) ([]byte, error) {
	u := fmt.Sprintf("%s/api/v0/%s", p.apiURL, command)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return p.http.Post(ctx, u, contentType, body, p.headers())
}

func (p *nodeProvider) Add(ctx context.Context, name string, data []byte) (*AddResult, error) {
	contentType, body, err := multipartFile("file", name, data, nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("pin", "true")

	resp, err := p.rpc(ctx, "add", q, contentType, body)
	if err != nil {
		return nil, domain.NewUpstreamError(p.name, "add", err)
	}

	var added nodeAddResponse
	if err := p.codec.Unmarshal(resp, &added); err != nil {
		return nil, fmt.Errorf("failed to decode add response: %w", err)
	}
	if added.Hash == "" {
		return nil, domain.NewUpstreamError(p.name, "add", fmt.Errorf("response has no Hash"))
	}

	size, err := strconv.ParseInt(added.Size, 10, 64)
	if err != nil {
		size = int64(len(data))
	}
	return &AddResult{CID: added.Hash, Size: size}, nil
}

func (p *nodeProvider) AddJSON(ctx context.Context, name string, doc []byte) (*AddResult, error) {
	return p.Add(ctx, name, doc)
}

func (p *nodeProvider) Cat(ctx context.Context, cid string) ([]byte, error) {
	q := url.Values{}
	q.Set("arg", cid)

	data, err := p.rpc(ctx, "cat", q, "", nil)
	if err != nil {
		return nil, domain.NewUpstreamError(p.name, "cat", err)
	}
	return data, nil
}

func (p *nodeProvider) IsPinned(ctx context.Context, cid string) (bool, error) {
	q := url.Values{}
	q.Set("arg", cid)
	q.Set("type", "recursive")

	resp, err := p.rpc(ctx, "pin/ls", q, "", nil)
	if err != nil {
		// The RPC API answers 500 "not pinned" for unknown CIDs
		var se *adapter.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusInternalServerError && strings.Contains(se.Body, "not pinned") {
			return false, nil
		}
		return false, domain.NewUpstreamError(p.name, "pin ls", err)
	}

	var pins nodePinLsResponse
	if err := p.codec.Unmarshal(resp, &pins); err != nil {
		return false, fmt.Errorf("failed to decode pin ls response: %w", err)
	}

	_, ok := pins.Keys[cid]
	return ok, nil
}
