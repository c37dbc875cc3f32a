package ipfs_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/proptoken/proptoken-backend/internal/ipfs"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/mocks"
)

const testCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func emptyResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func TestNormalizeCID(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{name: "bare cid", ref: testCID, expected: testCID},
		{name: "ipfs scheme", ref: "ipfs://" + testCID, expected: testCID},
		{name: "ipfs scheme upper case", ref: "IPFS://" + testCID, expected: testCID},
		{name: "ipfs path", ref: "/ipfs/" + testCID, expected: testCID},
		{name: "gateway url", ref: "https://ipfs.io/ipfs/" + testCID, expected: testCID},
		{name: "surrounding space", ref: "  " + testCID + "\n", expected: testCID},
		{name: "empty", ref: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ipfs.NormalizeCID(tt.ref))
		})
	}
}

func TestProbeGateways(t *testing.T) {
	tests := []struct {
		name        string
		gateways    []string
		setupMocks  func(*mocks.MockHTTPClient)
		expected    string
		expectedErr []string
	}{
		{
			name:        "no gateways",
			gateways:    nil,
			expectedErr: []string{ipfs.ErrNoGateways.Error()},
		},
		{
			name:     "second gateway answers",
			gateways: []string{"https://ipfs.io", "https://dweb.link/"},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).
					Return(emptyResponse(http.StatusNotFound), nil)
				mockHTTP.EXPECT().
					Head(gomock.Any(), "https://dweb.link/ipfs/"+testCID).
					Return(emptyResponse(http.StatusOK), nil)
			},
			expected: "https://dweb.link/ipfs/" + testCID,
		},
		{
			name:     "any 2xx is reachable",
			gateways: []string{"https://gw.example"},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.EXPECT().
					Head(gomock.Any(), "https://gw.example/ipfs/"+testCID).
					Return(emptyResponse(http.StatusNoContent), nil)
			},
			expected: "https://gw.example/ipfs/" + testCID,
		},
		{
			name:     "all gateways fail",
			gateways: []string{"https://ipfs.io", "https://dweb.link"},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).
					Return(nil, errors.New("dial tcp: timeout"))
				mockHTTP.EXPECT().
					Head(gomock.Any(), "https://dweb.link/ipfs/"+testCID).
					Return(emptyResponse(http.StatusBadGateway), nil)
			},
			expectedErr: []string{
				"content " + testCID + " not reachable on any gateway",
				"https://ipfs.io/ipfs/" + testCID + ": dial tcp: timeout",
				"https://dweb.link/ipfs/" + testCID + ": status 502",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockHTTP)
			}

			url, err := ipfs.ProbeGateways(context.Background(), mockHTTP, testCID, tt.gateways)
			if len(tt.expectedErr) > 0 {
				for _, msg := range tt.expectedErr {
					assert.ErrorContains(t, err, msg)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestProbeGateways_CancelsRemainingProbes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slowCancelled := make(chan struct{})
	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().
		Head(gomock.Any(), "https://slow.example/ipfs/"+testCID).
		DoAndReturn(func(ctx context.Context, _ string) (*http.Response, error) {
			<-ctx.Done()
			close(slowCancelled)
			return nil, ctx.Err()
		})
	mockHTTP.EXPECT().
		Head(gomock.Any(), "https://fast.example/ipfs/"+testCID).
		Return(emptyResponse(http.StatusOK), nil)

	url, err := ipfs.ProbeGateways(context.Background(), mockHTTP, testCID,
		[]string{"https://slow.example", "https://fast.example"})
	assert.NoError(t, err)
	assert.Equal(t, "https://fast.example/ipfs/"+testCID, url)

	select {
	case <-slowCancelled:
	case <-time.After(time.Second):
		t.Fatal("slow gateway probe was not cancelled")
	}
}
