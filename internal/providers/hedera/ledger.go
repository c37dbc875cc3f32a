package hedera

import (
	"context"
	"fmt"
	"slices"
	"strings"

	hiero "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

const serviceName = "hedera"

// Config holds the ledger network and operator credentials
type Config struct {
	Network           string
	OperatorID        string
	OperatorKey       string
	MaxTransactionFee int64 // hbar
}

// Account is a newly created ledger account and its signing key
type Account struct {
	AccountID  string
	PrivateKey string
}

// TokenSpec describes a fungible token to create
type TokenSpec struct {
	Name              string
	Symbol            string
	Decimals          uint
	InitialSupply     uint64
	TreasuryAccountID string
	TreasuryKey       string // also used as the supply key
	Memo              string
}

// CreatedToken is the result of a token creation
type CreatedToken struct {
	TokenID       string
	TransactionID string
}

// Transfer moves fungible tokens between two accounts, signed by the sender
type Transfer struct {
	TokenID       string
	FromAccountID string
	FromKey       string
	ToAccountID   string
	Amount        int64
	Memo          string
}

// TopicSubmission is the consensus receipt of a topic message
type TopicSubmission struct {
	TransactionID  string
	SequenceNumber uint64
}

// Ledger wraps the ledger operations the backend submits
//
//go:generate mockgen -source=ledger.go -destination=../../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// OperatorAccountID returns the account paying for transactions
	OperatorAccountID() string

	// CreateTreasury creates a new ED25519 account funded by the operator
	CreateTreasury(ctx context.Context, initialBalance int64) (*Account, error)

	// CreateToken creates a fungible token with infinite supply.
	// The operator is admin; the treasury key is the supply key.
	CreateToken(ctx context.Context, spec TokenSpec) (*CreatedToken, error)

	// MintTokens mints amount into the token's treasury and returns the transaction id
	MintTokens(ctx context.Context, tokenID, supplyKey string, amount uint64) (string, error)

	// BurnTokens burns amount from the token's treasury and returns the transaction id
	BurnTokens(ctx context.Context, tokenID, supplyKey string, amount uint64) (string, error)

	// TransferTokens submits a token transfer and returns the transaction id
	TransferTokens(ctx context.Context, transfer Transfer) (string, error)

	// CreateTopic creates a consensus topic administered by the operator
	CreateTopic(ctx context.Context, memo string) (string, error)

	// SubmitTopicMessage appends a message to a consensus topic
	SubmitTopicMessage(ctx context.Context, topicID string, message []byte) (*TopicSubmission, error)

	// Close releases the network client
	Close() error
}

type ledger struct {
	client      *hiero.Client
	operatorID  hiero.AccountID
	operatorKey hiero.PrivateKey
	maxFee      hiero.Hbar
}

// DEFAULT_MAX_TRANSACTION_FEE caps fees in hbar when the config leaves it unset
const DEFAULT_MAX_TRANSACTION_FEE = 20

var supportedNetworks = []string{"testnet", "mainnet", "previewnet"}

// NewLedger creates a ledger client for the configured network.
// Credentials are parsed before any client is built.
func NewLedger(cfg Config) (Ledger, error) {
	network := strings.ToLower(strings.TrimSpace(cfg.Network))
	if network == "" {
		network = "testnet"
	}
	if !slices.Contains(supportedNetworks, network) {
		return nil, fmt.Errorf("unsupported network %q, expected one of %s", cfg.Network, strings.Join(supportedNetworks, ", "))
	}

	operatorID, err := hiero.AccountIDFromString(cfg.OperatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account id: %w", err)
	}
	operatorKey, err := hiero.PrivateKeyFromString(cfg.OperatorKey)
	if err != nil {
		return nil, fmt.Errorf("invalid operator key: %w", err)
	}

	client, err := hiero.ClientForName(network)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for network %s: %w", network, err)
	}
	client.SetOperator(operatorID, operatorKey)

	maxFee := cfg.MaxTransactionFee
	if maxFee <= 0 {
		maxFee = DEFAULT_MAX_TRANSACTION_FEE
	}

	logger.Info("Ledger client initialized",
		zap.String("network", network),
		zap.String("operator", operatorID.String()),
		zap.Int64("maxTransactionFee", maxFee))

	return &ledger{
		client:      client,
		operatorID:  operatorID,
		operatorKey: operatorKey,
		maxFee:      hiero.NewHbar(float64(maxFee)),
	}, nil
}

func (l *ledger) OperatorAccountID() string {
	return l.operatorID.String()
}

func (l *ledger) CreateTreasury(ctx context.Context, initialBalance int64) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := hiero.PrivateKeyGenerateEd25519()
	if err != nil {
		return nil, fmt.Errorf("failed to generate treasury key: %w", err)
	}

	resp, err := hiero.NewAccountCreateTransaction().
		SetKey(key.PublicKey()).
		SetInitialBalance(hiero.NewHbar(float64(initialBalance))).
		SetMaxTransactionFee(l.maxFee).
		Execute(l.client)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, "create account", err)
	}

	receipt, err := resp.GetReceipt(l.client)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, "create account receipt", err)
	}
	if receipt.AccountID == nil {
		return nil, domain.NewUpstreamError(serviceName, "create account", fmt.Errorf("receipt has no account id"))
	}

	logger.InfoCtx(ctx, "Treasury account created", zap.String("accountID", receipt.AccountID.String()))

	return &Account{
		AccountID:  receipt.AccountID.String(),
		PrivateKey: key.String(),
	}, nil
}

func (l *ledger) CreateToken(ctx context.Context, spec TokenSpec) (*CreatedToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	treasuryID, err := hiero.AccountIDFromString(spec.TreasuryAccountID)
	if err != nil {
		return nil, domain.NewValidationError("treasuryAccountId", err.Error())
	}
	treasuryKey, err := hiero.PrivateKeyFromString(spec.TreasuryKey)
	if err != nil {
		return nil, fmt.Errorf("invalid treasury key: %w", err)
	}

	tx, err := hiero.NewTokenCreateTransaction().
		SetTokenName(spec.Name).
		SetTokenSymbol(spec.Symbol).
		SetDecimals(spec.Decimals).
		SetInitialSupply(spec.InitialSupply).
		SetTreasuryAccountID(treasuryID).
		SetAdminKey(l.operatorKey.PublicKey()).
		SetSupplyKey(treasuryKey.PublicKey()).
		SetTokenType(hiero.TokenTypeFungibleCommon).
		SetSupplyType(hiero.TokenSupplyTypeInfinite).
		SetTokenMemo(spec.Memo).
		SetMaxTransactionFee(l.maxFee).
		FreezeWith(l.client)
	if err != nil {
		return nil, fmt.Errorf("failed to freeze token create transaction: %w", err)
	}

	// The treasury must sign when it is not the operator
	if treasuryID.String() != l.operatorID.String() {
		tx = tx.Sign(treasuryKey)
	}

	resp, err := tx.Execute(l.client)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, "create token", err)
	}
	receipt, err := resp.GetReceipt(l.client)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, "create token receipt", err)
	}
	if receipt.TokenID == nil {
		return nil, domain.NewUpstreamError(serviceName, "create token", fmt.Errorf("receipt has no token id"))
	}

	logger.InfoCtx(ctx, "Token created",
		zap.String("tokenID", receipt.TokenID.String()),
		zap.String("symbol", spec.Symbol),
		zap.Uint64("initialSupply", spec.InitialSupply))

	return &CreatedToken{
		TokenID:       receipt.TokenID.String(),
		TransactionID: resp.TransactionID.String(),
	}, nil
}

func (l *ledger) MintTokens(ctx context.Context, tokenID, supplyKey string, amount uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, key, err := parseTokenAndKey(tokenID, supplyKey)
	if err != nil {
		return "", err
	}

	tx, err := hiero.NewTokenMintTransaction().
		SetTokenID(id).
		SetAmount(amount).
		SetMaxTransactionFee(l.maxFee).
		FreezeWith(l.client)
	if err != nil {
		return "", fmt.Errorf("failed to freeze mint transaction: %w", err)
	}

	resp, err := tx.Sign(key).Execute(l.client)
	if err != nil {
		return "", domain.NewUpstreamError(serviceName, "mint", err)
	}
	if _, err := resp.GetReceipt(l.client); err != nil {
		return "", domain.NewUpstreamError(serviceName, "mint receipt", err)
	}

	return resp.TransactionID.String(), nil
}

func (l *ledger) BurnTokens(ctx context.Context, tokenID, supplyKey string, amount uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, key, err := parseTokenAndKey(tokenID, supplyKey)
	if err != nil {
		return "", err
	}

	tx, err := hiero.NewTokenBurnTransaction().
		SetTokenID(id).
		SetAmount(amount).
		SetMaxTransactionFee(l.maxFee).
		FreezeWith(l.client)
	if err != nil {
		return "", fmt.Errorf("failed to freeze burn transaction: %w", err)
	}

	resp, err := tx.Sign(key).Execute(l.client)
	if err != nil {
		return "", domain.NewUpstreamError(serviceName, "burn", err)
	}
	if _, err := resp.GetReceipt(l.client); err != nil {
		return "", domain.NewUpstreamError(serviceName, "burn receipt", err)
	}

	return resp.TransactionID.String(), nil
}

func (l *ledger) TransferTokens(ctx context.Context, transfer Transfer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, key, err := parseTokenAndKey(transfer.TokenID, transfer.FromKey)
	if err != nil {
		return "", err
	}
	from, err := hiero.AccountIDFromString(transfer.FromAccountID)
	if err != nil {
		return "", domain.NewValidationError("fromAccountId", err.Error())
	}
	to, err := hiero.AccountIDFromString(transfer.ToAccountID)
	if err != nil {
		return "", domain.NewValidationError("toAccountId", err.Error())
	}

	tx, err := hiero.NewTransferTransaction().
		AddTokenTransfer(id, from, -transfer.Amount).
		AddTokenTransfer(id, to, transfer.Amount).
		SetTransactionMemo(transfer.Memo).
		SetMaxTransactionFee(l.maxFee).
		FreezeWith(l.client)
	if err != nil {
		return "", fmt.Errorf("failed to freeze transfer transaction: %w", err)
	}

	resp, err := tx.Sign(key).Execute(l.client)
	if err != nil {
		return "", domain.NewUpstreamError(serviceName, "transfer", err)
	}
	if _, err := resp.GetReceipt(l.client); err != nil {
		return "", domain.NewUpstreamError(serviceName, "transfer receipt", err)
	}

	logger.InfoCtx(ctx, "Tokens transferred",
		zap.String("tokenID", transfer.TokenID),
		zap.String("from", transfer.FromAccountID),
		zap.String("to", transfer.ToAccountID),
		zap.Int64("amount", transfer.Amount))

	return resp.TransactionID.String(), nil
}

func (l *ledger) CreateTopic(ctx context.Context, memo string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	resp, err := hiero.NewTopicCreateTransaction().
		SetTopicMemo(memo).
		SetAdminKey(l.operatorKey.PublicKey()).
		SetSubmitKey(l.operatorKey.PublicKey()).
		SetMaxTransactionFee(l.maxFee).
		Execute(l.client)
	if err != nil {
		return "", domain.NewUpstreamError(serviceName, "create topic", err)
	}
	receipt, err := resp.GetReceipt(l.client)
	if err != nil {
		return "", domain.NewUpstreamError(serviceName, "create topic receipt", err)
	}
	if receipt.TopicID == nil {
		return "", domain.NewUpstreamError(serviceName, "create topic", fmt.Errorf("receipt has no topic id"))
	}

	logger.InfoCtx(ctx, "Topic created", zap.String("topicID", receipt.TopicID.String()))

	return receipt.TopicID.String(), nil
}

func (l *ledger) SubmitTopicMessage(ctx context.Context, topicID string, message []byte) (*TopicSubmission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := hiero.TopicIDFromString(topicID)
	if err != nil {
		return nil, domain.NewValidationError("topicId", err.Error())
	}

	resp, err := hiero.NewTopicMessageSubmitTransaction().
		SetTopicID(id).
		SetMessage(message).
		SetMaxTransactionFee(l.maxFee).
		Execute(l.client)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, "submit message", err)
	}
	receipt, err := resp.GetReceipt(l.client)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, "submit message receipt", err)
	}

	return &TopicSubmission{
		TransactionID:  resp.TransactionID.String(),
		SequenceNumber: receipt.TopicSequenceNumber,
	}, nil
}

func (l *ledger) Close() error {
	return l.client.Close()
}

func parseTokenAndKey(tokenID, key string) (hiero.TokenID, hiero.PrivateKey, error) {
	id, err := hiero.TokenIDFromString(tokenID)
	if err != nil {
		return hiero.TokenID{}, hiero.PrivateKey{}, domain.NewValidationError("tokenId", err.Error())
	}
	if key == "" {
		return hiero.TokenID{}, hiero.PrivateKey{}, domain.ErrTreasuryCredentialMissing
	}
	pk, err := hiero.PrivateKeyFromString(key)
	if err != nil {
		return hiero.TokenID{}, hiero.PrivateKey{}, fmt.Errorf("invalid signing key: %w", err)
	}
	return id, pk, nil
}
