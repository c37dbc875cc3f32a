package hedera

import (
	"errors"
	"os"
	"testing"

	hiero "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func generateKey(t *testing.T) string {
	key, err := hiero.PrivateKeyGenerateEd25519()
	require.NoError(t, err)
	return key.String()
}

func TestNewLedger_ConfigErrors(t *testing.T) {
	validKey := generateKey(t)

	tests := []struct {
		name        string
		cfg         Config
		expectedErr string
	}{
		{
			name:        "unknown network",
			cfg:         Config{Network: "devnet", OperatorID: "0.0.2", OperatorKey: validKey},
			expectedErr: `unsupported network "devnet"`,
		},
		{
			name:        "local node is not a deployment target",
			cfg:         Config{Network: "local-node", OperatorID: "0.0.2", OperatorKey: validKey},
			expectedErr: "unsupported network",
		},
		{
			name:        "missing operator id",
			cfg:         Config{Network: "testnet", OperatorKey: validKey},
			expectedErr: "invalid operator account id",
		},
		{
			name:        "malformed operator id",
			cfg:         Config{Network: "testnet", OperatorID: "operator", OperatorKey: validKey},
			expectedErr: "invalid operator account id",
		},
		{
			name:        "malformed operator key",
			cfg:         Config{Network: "testnet", OperatorID: "0.0.2", OperatorKey: "not-a-key"},
			expectedErr: "invalid operator key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLedger(tt.cfg)
			assert.Nil(t, l)
			assert.ErrorContains(t, err, tt.expectedErr)
		})
	}
}

func TestNewLedger_Defaults(t *testing.T) {
	key := generateKey(t)

	tests := []struct {
		name     string
		cfg      Config
		feeHbar  int64
		operator string
	}{
		{
			name:     "empty network and fee fall back to testnet and the default cap",
			cfg:      Config{OperatorID: "0.0.1234", OperatorKey: key},
			feeHbar:  DEFAULT_MAX_TRANSACTION_FEE,
			operator: "0.0.1234",
		},
		{
			name:     "network name is case insensitive and fee is kept",
			cfg:      Config{Network: " PreviewNet ", OperatorID: "0.0.99", OperatorKey: key, MaxTransactionFee: 5},
			feeHbar:  5,
			operator: "0.0.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLedger(tt.cfg)
			require.NoError(t, err)
			defer func() { _ = l.Close() }()

			assert.Equal(t, tt.operator, l.OperatorAccountID())
			assert.Equal(t, hiero.NewHbar(float64(tt.feeHbar)).AsTinybar(), l.(*ledger).maxFee.AsTinybar())
		})
	}
}

func TestParseTokenAndKey(t *testing.T) {
	key := generateKey(t)

	id, pk, err := parseTokenAndKey("0.0.7001", key)
	require.NoError(t, err)
	assert.Equal(t, "0.0.7001", id.String())
	assert.Equal(t, key, pk.String())

	_, _, err = parseTokenAndKey("0.0.7001", "")
	assert.True(t, errors.Is(err, domain.ErrTreasuryCredentialMissing))

	_, _, err = parseTokenAndKey("token", key)
	var validationErr *domain.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	_, _, err = parseTokenAndKey("0.0.7001", "not-a-key")
	assert.ErrorContains(t, err, "invalid signing key")
}
