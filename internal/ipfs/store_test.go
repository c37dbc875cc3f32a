package ipfs_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/ipfs"
	"github.com/proptoken/proptoken-backend/internal/mocks"
)

func newGateway(t *testing.T, status int, body string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		assert.Equal(t, "/ipfs/"+testCID, r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStore_RetrieveFallsThroughGateways(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockIPFSProvider(ctrl)
	provider.EXPECT().Name().Return("node").AnyTimes()
	provider.EXPECT().Cat(gomock.Any(), testCID).Return(nil, errors.New("connection refused"))

	var hits4 atomic.Int32
	gw1 := newGateway(t, http.StatusBadGateway, "bad gateway", nil)
	gw2 := newGateway(t, http.StatusNotFound, "not found", nil)
	gw3 := newGateway(t, http.StatusOK, `{"title":"Harbor Loft"}`, nil)
	gw4 := newGateway(t, http.StatusOK, "unused", &hits4)

	store := ipfs.NewStore(ipfs.Config{
		Gateways: []string{gw1.URL, gw2.URL, gw3.URL, gw4.URL},
	}, provider, adapter.NewHTTPClient(time.Second), adapter.NewJSON())
	defer store.Close()

	data, err := store.Retrieve(context.Background(), "ipfs://"+testCID)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Harbor Loft"}`, string(data))
	assert.Equal(t, int32(0), hits4.Load())

	var doc map[string]string
	provider.EXPECT().Cat(gomock.Any(), testCID).Return(nil, ipfs.ErrCatUnsupported)
	require.NoError(t, store.RetrieveJSON(context.Background(), testCID, &doc))
	assert.Equal(t, "Harbor Loft", doc["title"])
}

func TestStore_RetrievePrefersProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockIPFSProvider(ctrl)
	provider.EXPECT().Cat(gomock.Any(), testCID).Return([]byte("direct"), nil)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	store := ipfs.NewStore(ipfs.Config{Gateways: []string{"https://ipfs.io"}}, provider, httpClient, adapter.NewJSON())
	defer store.Close()

	data, err := store.Retrieve(context.Background(), "/ipfs/"+testCID)
	require.NoError(t, err)
	assert.Equal(t, "direct", string(data))
}

func TestStore_RetrieveExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockIPFSProvider(ctrl)
	provider.EXPECT().Name().Return("pinata").AnyTimes()
	provider.EXPECT().Cat(gomock.Any(), testCID).Return(nil, ipfs.ErrCatUnsupported)

	lastErr := &adapter.StatusError{URL: "https://dweb.link/ipfs/" + testCID, StatusCode: http.StatusGatewayTimeout}
	httpClient := mocks.NewMockHTTPClient(ctrl)
	gomock.InOrder(
		httpClient.EXPECT().Get(gomock.Any(), "https://ipfs.io/ipfs/"+testCID, gomock.Any()).Return(nil, errors.New("timeout")),
		httpClient.EXPECT().Get(gomock.Any(), "https://dweb.link/ipfs/"+testCID, gomock.Any()).Return(nil, lastErr),
	)

	store := ipfs.NewStore(ipfs.Config{Gateways: []string{"https://ipfs.io", "https://dweb.link"}}, provider, httpClient, adapter.NewJSON())
	defer store.Close()

	_, err := store.Retrieve(context.Background(), testCID)
	require.Error(t, err)

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.True(t, adapter.IsStatus(err, http.StatusGatewayTimeout))
}

func TestStore_RetrieveRejectsEmptyCID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := ipfs.NewStore(ipfs.Config{}, mocks.NewMockIPFSProvider(ctrl), mocks.NewMockHTTPClient(ctrl), adapter.NewJSON())
	defer store.Close()

	_, err := store.Retrieve(context.Background(), "ipfs://")
	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestStore_UploadSniffsMimeType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

	provider := mocks.NewMockIPFSProvider(ctrl)
	provider.EXPECT().Name().Return("local").AnyTimes()
	provider.EXPECT().Add(gomock.Any(), "front.png", png).Return(&ipfs.AddResult{CID: testCID, Size: int64(len(png))}, nil)

	store := ipfs.NewStore(ipfs.Config{}, provider, mocks.NewMockHTTPClient(ctrl), adapter.NewJSON())
	defer store.Close()

	result, err := store.Upload(context.Background(), "front.png", png)
	require.NoError(t, err)
	assert.Equal(t, &ipfs.UploadResult{CID: testCID, Name: "front.png", MimeType: "image/png", Size: int64(len(png))}, result)

	_, err = store.Upload(context.Background(), "empty.txt", nil)
	assert.Error(t, err)
}

func TestStore_UploadManyKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockIPFSProvider(ctrl)
	provider.EXPECT().Name().Return("local").AnyTimes()
	provider.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string, data []byte) (*ipfs.AddResult, error) {
			if name == "a.txt" {
				time.Sleep(20 * time.Millisecond)
			}
			return &ipfs.AddResult{CID: "cid-" + name, Size: int64(len(data))}, nil
		}).
		Times(3)

	store := ipfs.NewStore(ipfs.Config{UploadWorkers: 3}, provider, mocks.NewMockHTTPClient(ctrl), adapter.NewJSON())
	defer store.Close()

	results, err := store.UploadMany(context.Background(), []ipfs.File{
		{Name: "a.txt", Data: []byte("a")},
		{Name: "b.txt", Data: []byte("bb")},
		{Name: "c.txt", Data: []byte("ccc")},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "cid-a.txt", results[0].CID)
	assert.Equal(t, "cid-b.txt", results[1].CID)
	assert.Equal(t, "cid-c.txt", results[2].CID)
	assert.Equal(t, int64(3), results[2].Size)
}

func TestStore_UploadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockIPFSProvider(ctrl)
	provider.EXPECT().Name().Return("pinata").AnyTimes()
	provider.EXPECT().AddJSON(gomock.Any(), "metadata.json", []byte(`{"title":"Harbor Loft"}`)).
		Return(&ipfs.AddResult{CID: testCID, Size: 23}, nil)

	store := ipfs.NewStore(ipfs.Config{}, provider, mocks.NewMockHTTPClient(ctrl), adapter.NewJSON())
	defer store.Close()

	result, err := store.UploadJSON(context.Background(), "metadata.json", map[string]string{"title": "Harbor Loft"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", result.MimeType)
	assert.Equal(t, testCID, result.CID)
}

func TestStore_VerifyPin(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockIPFSProvider, *mocks.MockHTTPClient)
		expected   ipfs.PinStatus
	}{
		{
			name: "pinned and accessible",
			setupMocks: func(p *mocks.MockIPFSProvider, h *mocks.MockHTTPClient) {
				p.EXPECT().IsPinned(gomock.Any(), testCID).Return(true, nil)
				h.EXPECT().Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).Return(emptyResponse(http.StatusOK), nil)
			},
			expected: ipfs.PinStatus{CID: testCID, Pinned: true, Accessible: true, GatewayURL: "https://ipfs.io/ipfs/" + testCID},
		},
		{
			name: "probe failures never error",
			setupMocks: func(p *mocks.MockIPFSProvider, h *mocks.MockHTTPClient) {
				p.EXPECT().IsPinned(gomock.Any(), testCID).Return(false, errors.New("unauthorized"))
				h.EXPECT().Head(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expected: ipfs.PinStatus{CID: testCID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := mocks.NewMockIPFSProvider(ctrl)
			httpClient := mocks.NewMockHTTPClient(ctrl)
			tt.setupMocks(provider, httpClient)

			store := ipfs.NewStore(ipfs.Config{Gateways: []string{"https://ipfs.io"}}, provider, httpClient, adapter.NewJSON())
			defer store.Close()

			assert.Equal(t, tt.expected, store.VerifyPin(context.Background(), "ipfs://"+testCID))
		})
	}
}
