package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/proptoken/proptoken-backend/internal/api/shared/errors"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

const (
	AUTH_METHOD_JWT    = "jwt"
	AUTH_METHOD_APIKEY = "apikey"
	AUTH_METHOD_NONE   = "none"

	principalKey = "auth_principal"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Enabled reports whether any credential is configured
func (c AuthConfig) Enabled() bool {
	if c.JWTPublicKey != "" {
		return true
	}
	for _, key := range c.APIKeys {
		if key != "" {
			return true
		}
	}
	return false
}

// Principal identifies the caller of an admin endpoint.
// API key callers are named by the key's position in the configuration, never by the key itself.
type Principal struct {
	Method  string `json:"method"`
	Subject string `json:"subject"`
}

// Authenticator checks Authorization headers against one AuthConfig.
// The PEM key is parsed once at construction.
type Authenticator struct {
	publicKey *rsa.PublicKey
	keyErr    error
	apiKeys   map[string]int
}

// NewAuthenticator prepares an Authenticator for cfg
func NewAuthenticator(cfg AuthConfig) *Authenticator {
	a := &Authenticator{apiKeys: make(map[string]int)}
	for i, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys[key] = i
		}
	}

	if cfg.JWTPublicKey == "" {
		a.keyErr = errors.New("JWT public key not configured")
	} else if a.publicKey, a.keyErr = parseRSAPublicKey(cfg.JWTPublicKey); a.keyErr != nil {
		a.keyErr = fmt.Errorf("failed to parse RSA public key: %w", a.keyErr)
		logger.Warn("JWT authentication unavailable", zap.Error(a.keyErr))
	}

	return a
}

// Authenticate resolves the caller named by an "ApiKey <key>" or "Bearer <jwt>" header
func (a *Authenticator) Authenticate(authHeader string) (Principal, error) {
	if authHeader == "" {
		return Principal{}, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok {
		return Principal{}, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return Principal{}, err
		}
		return Principal{Method: AUTH_METHOD_JWT, Subject: claims.Subject}, nil

	case "apikey":
		if len(a.apiKeys) == 0 {
			return Principal{}, errors.New("no API keys configured")
		}
		idx, found := a.apiKeys[credentials]
		if !found {
			return Principal{}, errors.New("invalid API key")
		}
		return Principal{Method: AUTH_METHOD_APIKEY, Subject: fmt.Sprintf("apikey#%d", idx)}, nil

	default:
		return Principal{}, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// validateJWT checks the RS256 signature; jwt/v5 enforces exp and nbf during parsing
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.keyErr != nil {
		return nil, a.keyErr
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return claims, nil
}

// Auth returns a gin middleware for admin endpoints.
// With no credentials configured every request passes as an anonymous principal.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	if !cfg.Enabled() {
		logger.Warn("Authentication disabled, admin endpoints are open")
		return func(c *gin.Context) {
			c.Set(principalKey, Principal{Method: AUTH_METHOD_NONE, Subject: "anonymous"})
			c.Next()
		}
	}

	authenticator := NewAuthenticator(cfg)

	return func(c *gin.Context) {
		principal, err := authenticator.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.Failure(apiErr))
			return
		}

		logger.Debug("Authenticated admin request",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", principal.Method),
			zap.String("subject", principal.Subject),
		)
		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the caller stored by Auth, if the route is behind it
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// parseRSAPublicKey accepts PKIX and PKCS1 PEM blocks
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
