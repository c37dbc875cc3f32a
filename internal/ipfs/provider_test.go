package ipfs_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/ipfs"
)

func TestNewProvider(t *testing.T) {
	httpClient := adapter.NewHTTPClient(time.Second)
	codec := adapter.NewJSON()

	tests := []struct {
		name        string
		cfg         ipfs.ProviderConfig
		expected    string
		expectedErr string
	}{
		{
			name:     "pinata with jwt",
			cfg:      ipfs.ProviderConfig{Provider: "pinata", PinataJWT: "jwt"},
			expected: ipfs.ProviderPinata,
		},
		{
			name:        "pinata without credentials",
			cfg:         ipfs.ProviderConfig{Provider: "pinata", PinataAPIKey: "key"},
			expectedErr: "pinata provider requires a JWT or an API key and secret",
		},
		{
			name:     "node",
			cfg:      ipfs.ProviderConfig{Provider: "node", APIURL: "https://ipfs.infura.io:5001", ProjectID: "id", ProjectSecret: "secret"},
			expected: ipfs.ProviderNode,
		},
		{
			name:        "node without url",
			cfg:         ipfs.ProviderConfig{Provider: "node"},
			expectedErr: "node provider requires an API URL",
		},
		{
			name:     "local defaults",
			cfg:      ipfs.ProviderConfig{Provider: "LOCAL"},
			expected: ipfs.ProviderLocal,
		},
		{
			name:        "unknown",
			cfg:         ipfs.ProviderConfig{Provider: "s3"},
			expectedErr: "unknown ipfs provider: s3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ipfs.NewProvider(tt.cfg, httpClient, codec)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Name())
		})
	}
}

func TestPinataProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("pinata_api_key"))
		assert.Equal(t, "secret", r.Header.Get("pinata_secret_api_key"))

		switch r.URL.Path {
		case "/pinning/pinFileToIPFS":
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			content, _ := io.ReadAll(file)
			assert.Equal(t, "deed.pdf", header.Filename)
			assert.Equal(t, "pdf-bytes", string(content))
			assert.JSONEq(t, `{"name":"deed.pdf"}`, r.FormValue("pinataMetadata"))
			_, _ = w.Write([]byte(`{"IpfsHash":"QmFile","PinSize":9,"Timestamp":"2024-01-01T00:00:00Z"}`))
		case "/pinning/pinJSONToIPFS":
			var req map[string]json.RawMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.JSONEq(t, `{"title":"Harbor Loft"}`, string(req["pinataContent"]))
			_, _ = w.Write([]byte(`{"IpfsHash":"QmDoc","PinSize":0}`))
		case "/data/pinList":
			assert.Equal(t, "pinned", r.URL.Query().Get("status"))
			if r.URL.Query().Get("hashContains") == "QmDoc" {
				_, _ = w.Write([]byte(`{"count":1,"rows":[{"ipfs_pin_hash":"QmDoc"}]}`))
				return
			}
			_, _ = w.Write([]byte(`{"count":0,"rows":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p, err := ipfs.NewProvider(ipfs.ProviderConfig{
		Provider:        "pinata",
		APIURL:          srv.URL,
		PinataAPIKey:    "key",
		PinataSecretKey: "secret",
	}, adapter.NewHTTPClient(time.Second), adapter.NewJSON())
	require.NoError(t, err)
	ctx := context.Background()

	added, err := p.Add(ctx, "deed.pdf", []byte("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, &ipfs.AddResult{CID: "QmFile", Size: 9}, added)

	doc := []byte(`{"title":"Harbor Loft"}`)
	added, err = p.AddJSON(ctx, "metadata.json", doc)
	require.NoError(t, err)
	assert.Equal(t, &ipfs.AddResult{CID: "QmDoc", Size: int64(len(doc))}, added)

	pinned, err := p.IsPinned(ctx, "QmDoc")
	require.NoError(t, err)
	assert.True(t, pinned)

	pinned, err = p.IsPinned(ctx, "QmOther")
	require.NoError(t, err)
	assert.False(t, pinned)

	_, err = p.Cat(ctx, "QmDoc")
	assert.ErrorIs(t, err, ipfs.ErrCatUnsupported)
}

func TestNodeProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "project", user)
		assert.Equal(t, "secret", pass)

		switch r.URL.Path {
		case "/api/v0/add":
			assert.Equal(t, "true", r.URL.Query().Get("pin"))
			_, _ = w.Write([]byte(`{"Name":"photo.jpg","Hash":"QmPhoto","Size":"42"}`))
		case "/api/v0/cat":
			assert.Equal(t, "QmPhoto", r.URL.Query().Get("arg"))
			_, _ = w.Write([]byte("jpeg-bytes"))
		case "/api/v0/pin/ls":
			if r.URL.Query().Get("arg") == "QmPhoto" {
				_, _ = w.Write([]byte(`{"Keys":{"QmPhoto":{"Type":"recursive"}}}`))
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"Message":"path 'QmOther' is not pinned","Code":0,"Type":"error"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p, err := ipfs.NewProvider(ipfs.ProviderConfig{
		Provider:      "node",
		APIURL:        srv.URL,
		ProjectID:     "project",
		ProjectSecret: "secret",
	}, adapter.NewHTTPClient(time.Second), adapter.NewJSON())
	require.NoError(t, err)
	ctx := context.Background()

	added, err := p.Add(ctx, "photo.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, &ipfs.AddResult{CID: "QmPhoto", Size: 42}, added)

	data, err := p.Cat(ctx, "QmPhoto")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	pinned, err := p.IsPinned(ctx, "QmPhoto")
	require.NoError(t, err)
	assert.True(t, pinned)

	pinned, err = p.IsPinned(ctx, "QmOther")
	require.NoError(t, err)
	assert.False(t, pinned)
}
