package audit

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/providers/hedera"
	"github.com/proptoken/proptoken-backend/internal/providers/mirrornode"
	"github.com/proptoken/proptoken-backend/internal/store"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
)

// Receipt identifies a published audit message
type Receipt struct {
	RecordID       string `json:"recordId,omitempty"`
	TopicID        string `json:"topicId"`
	TransactionID  string `json:"transactionId"`
	SequenceNumber uint64 `json:"sequenceNumber"`
}

// Reference returns the local record id, or the ledger transaction id when the
// local record could not be written
func (r Receipt) Reference() string {
	if r.RecordID != "" {
		return r.RecordID
	}
	return r.TransactionID
}

// PropertyTrail is the audit history of a property
type PropertyTrail struct {
	PropertyID string                `json:"propertyId"`
	TopicID    string                `json:"topicId,omitempty"`
	Messages   []domain.TopicMessage `json:"messages"`
	Records    []schema.AuditRecord  `json:"records"`
}

// TokenTrail is the audit and transfer history of a token
type TokenTrail struct {
	TokenID   string                 `json:"tokenId"`
	TopicID   string                 `json:"topicId,omitempty"`
	Transfers []domain.TokenTransfer `json:"transfers"`
	Messages  []domain.TopicMessage  `json:"messages"`
	Records   []schema.AuditRecord   `json:"records"`
}

// Log appends lifecycle messages to audit topics and reads them back
//
//go:generate mockgen -source=log.go -destination=../mocks/audit_log.go -package=mocks -mock_names=Log=MockAuditLog
type Log interface {
	// DefaultTopicID returns the configured audit topic, or ""
	DefaultTopicID() string

	// Append publishes msg to topicID, or to the default topic when topicID is empty
	Append(ctx context.Context, topicID string, msg domain.AuditMessage) (*Receipt, error)

	// TopicMessages returns recent messages of a topic, newest first
	TopicMessages(ctx context.Context, topicID string, opts mirrornode.ReadOptions) ([]domain.TopicMessage, error)

	// PropertyTrail returns the messages and local records about a property
	PropertyTrail(ctx context.Context, propertyID string, opts mirrornode.ReadOptions) (*PropertyTrail, error)

	// TokenTrail returns transfers, messages and local records about a token
	TokenTrail(ctx context.Context, tokenID string, opts mirrornode.ReadOptions) (*TokenTrail, error)
}

type auditLog struct {
	defaultTopicID string
	ledger         hedera.Ledger
	mirror         mirrornode.Client
	store          store.Store
	clock          adapter.Clock
	codec          adapter.JSON
}

// NewLog creates an audit log publishing to defaultTopicID unless told otherwise
func NewLog(defaultTopicID string, ledger hedera.Ledger, mirror mirrornode.Client, st store.Store, clock adapter.Clock, codec adapter.JSON) Log {
	return &auditLog{
		defaultTopicID: defaultTopicID,
		ledger:         ledger,
		mirror:         mirror,
		store:          st,
		clock:          clock,
		codec:          codec,
	}
}

func (l *auditLog) DefaultTopicID() string {
	return l.defaultTopicID
}

func (l *auditLog) resolveTopic(topicID string) (string, error) {
	if topicID == "" {
		topicID = l.defaultTopicID
	}
	if topicID == "" {
		return "", domain.ErrNoAuditTopic
	}
	if !domain.IsValidEntityID(topicID) {
		return "", domain.NewValidationError("topicId", "must be shard.realm.num")
	}
	return topicID, nil
}

func (l *auditLog) Append(ctx context.Context, topicID string, msg domain.AuditMessage) (*Receipt, error) {
	topicID, err := l.resolveTopic(topicID)
	if err != nil {
		return nil, err
	}
	if msg.Type == "" {
		return nil, domain.NewValidationError("type", "is required")
	}

	now := l.clock.Now()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = now
	}

	payload, err := l.codec.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit message: %w", err)
	}

	submission, err := l.ledger.SubmitTopicMessage(ctx, topicID, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to submit audit message: %w", err)
	}

	receipt := &Receipt{
		TopicID:        topicID,
		TransactionID:  submission.TransactionID,
		SequenceNumber: submission.SequenceNumber,
	}

	record := &schema.AuditRecord{
		ID:             ulid.MustNewDefault(now).String(),
		TopicID:        topicID,
		PropertyID:     optional(msg.PropertyID),
		TokenID:        optional(msg.TokenID),
		MessageType:    string(msg.Type),
		TransactionID:  submission.TransactionID,
		SequenceNumber: submission.SequenceNumber,
		Payload:        payload,
	}
	// The message is already on the ledger; a failed local write only loses the pointer
	if err := l.store.CreateAuditRecord(context.WithoutCancel(ctx), record); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to persist audit record: %w", err),
			zap.String("topicID", topicID),
			zap.String("transactionID", submission.TransactionID))
	} else {
		receipt.RecordID = record.ID
	}

	l.mirror.InvalidateCacheForTopic(topicID)

	logger.InfoCtx(ctx, "Audit message published",
		zap.String("type", string(msg.Type)),
		zap.String("topicID", topicID),
		zap.String("transactionID", receipt.TransactionID),
		zap.Uint64("sequenceNumber", receipt.SequenceNumber))

	return receipt, nil
}

func (l *auditLog) TopicMessages(ctx context.Context, topicID string, opts mirrornode.ReadOptions) ([]domain.TopicMessage, error) {
	topicID, err := l.resolveTopic(topicID)
	if err != nil {
		return nil, err
	}
	return l.mirror.GetTopicMessages(ctx, topicID, opts)
}

func (l *auditLog) PropertyTrail(ctx context.Context, propertyID string, opts mirrornode.ReadOptions) (*PropertyTrail, error) {
	property, err := l.store.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if property == nil {
		return nil, domain.NewNotFoundError("property", propertyID)
	}

	trail := &PropertyTrail{
		PropertyID: propertyID,
		Messages:   []domain.TopicMessage{},
	}

	topicID := l.defaultTopicID
	if property.TopicID != nil && *property.TopicID != "" {
		topicID = *property.TopicID
	}
	if topicID != "" {
		trail.TopicID = topicID
		messages, err := l.mirror.GetTopicMessages(ctx, topicID, opts)
		if err != nil {
			return nil, err
		}
		trail.Messages = filterMessages(messages, "propertyId", propertyID)
	}

	records, err := l.store.ListAuditRecords(ctx, store.AuditRecordFilter{PropertyID: propertyID})
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	trail.Records = records

	return trail, nil
}

func (l *auditLog) TokenTrail(ctx context.Context, tokenID string, opts mirrornode.ReadOptions) (*TokenTrail, error) {
	record, err := l.store.GetTokenRecordByTokenID(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get token record: %w", err)
	}
	if record == nil {
		return nil, domain.NewNotFoundError("token", tokenID)
	}

	transfers, err := l.mirror.GetTokenTransfers(ctx, tokenID, opts)
	if err != nil {
		return nil, err
	}

	trail := &TokenTrail{
		TokenID:   tokenID,
		Transfers: transfers,
		Messages:  []domain.TopicMessage{},
	}

	topicID := l.defaultTopicID
	if record.TopicID != nil && *record.TopicID != "" {
		topicID = *record.TopicID
	}
	if topicID != "" {
		trail.TopicID = topicID
		messages, err := l.mirror.GetTopicMessages(ctx, topicID, opts)
		if err != nil {
			return nil, err
		}
		trail.Messages = filterMessages(messages, "tokenId", tokenID)
	}

	records, err := l.store.ListAuditRecords(ctx, store.AuditRecordFilter{TokenID: tokenID})
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	trail.Records = records

	return trail, nil
}

func filterMessages(messages []domain.TopicMessage, field, value string) []domain.TopicMessage {
	out := make([]domain.TopicMessage, 0, len(messages))
	for _, m := range messages {
		if m.Field(field) == value {
			out = append(out, m)
		}
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

