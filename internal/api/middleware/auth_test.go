package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/api/middleware"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	return key, string(pemKey)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := generateKey(t)
	otherKey, _ := generateKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"other-key", "secret-key"}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "admin"})

	authenticator := middleware.NewAuthenticator(cfg)

	tests := []struct {
		name      string
		header    string
		success   bool
		principal middleware.Principal
	}{
		{"api key", "ApiKey secret-key", true, middleware.Principal{Method: "apikey", Subject: "apikey#1"}},
		{"wrong api key", "ApiKey nope", false, middleware.Principal{}},
		{"jwt", "Bearer " + valid, true, middleware.Principal{Method: "jwt", Subject: "admin"}},
		{"expired jwt", "Bearer " + expired, false, middleware.Principal{}},
		{"jwt from another key", "Bearer " + foreign, false, middleware.Principal{}},
		{"missing header", "", false, middleware.Principal{}},
		{"malformed header", "secret-key", false, middleware.Principal{}},
		{"unsupported scheme", "Basic dXNlcjpwYXNz", false, middleware.Principal{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := authenticator.Authenticate(tt.header)
			if tt.success {
				require.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
			assert.Equal(t, tt.principal, principal)
		})
	}
}

func TestAuthenticate_HS256Rejected(t *testing.T) {
	_, publicPEM := generateKey(t)
	authenticator := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: publicPEM})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"})
	signed, err := token.SignedString([]byte(publicPEM))
	require.NoError(t, err)

	_, err = authenticator.Authenticate("Bearer " + signed)
	assert.Error(t, err)
}

func TestAuthenticate_BadPublicKey(t *testing.T) {
	authenticator := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: "not a pem", APIKeys: []string{"k"}})

	_, err := authenticator.Authenticate("Bearer abc.def.ghi")
	assert.ErrorContains(t, err, "failed to parse RSA public key")

	principal, err := authenticator.Authenticate("ApiKey k")
	require.NoError(t, err)
	assert.Equal(t, "apikey#0", principal.Subject)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg middleware.AuthConfig) *gin.Engine {
		r := gin.New()
		r.POST("/admin", middleware.Auth(cfg), func(c *gin.Context) {
			principal, ok := middleware.PrincipalFrom(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.Header("X-Principal", principal.Method+"/"+principal.Subject)
			c.Status(http.StatusNoContent)
		})
		return r
	}

	t.Run("rejects with an error envelope", func(t *testing.T) {
		r := newRouter(middleware.AuthConfig{APIKeys: []string{"secret-key"}})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "unauthorized", body["error"].(map[string]interface{})["code"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("accepts a configured key", func(t *testing.T) {
		r := newRouter(middleware.AuthConfig{APIKeys: []string{"secret-key"}})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "ApiKey secret-key")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "apikey/apikey#0", w.Header().Get("X-Principal"))
	})

	t.Run("open when nothing is configured", func(t *testing.T) {
		r := newRouter(middleware.AuthConfig{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "none/anonymous", w.Header().Get("X-Principal"))
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, debugMode := range []bool{false, true} {
		r := gin.New()
		r.Use(middleware.Recovery(debugMode))
		r.GET("/boom", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code  string `json:"code"`
				Stack string `json:"stack"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "internal_error", body.Error.Code)
		assert.Equal(t, debugMode, body.Error.Stack != "")
	}
}
