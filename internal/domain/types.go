package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// entityIDPattern matches Hedera entity ids in shard.realm.num form (e.g. "0.0.12345")
var entityIDPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsValidEntityID reports whether id is a shard.realm.num identifier
func IsValidEntityID(id string) bool {
	return entityIDPattern.MatchString(id)
}

// EntityNum returns the num component of a shard.realm.num identifier
func EntityNum(id string) (uint64, error) {
	if !IsValidEntityID(id) {
		return 0, fmt.Errorf("invalid entity id: %s", id)
	}
	parts := strings.Split(id, ".")
	return strconv.ParseUint(parts[2], 10, 64)
}

// SaleStatus is the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusCompleted SaleStatus = "COMPLETED"
	SaleStatusFailed    SaleStatus = "FAILED"
)

// IsTerminal reports whether no further transition is allowed
func (s SaleStatus) IsTerminal() bool {
	return s == SaleStatusCompleted || s == SaleStatusFailed
}

// AuditMessageType is the "type" discriminator of audit topic messages
type AuditMessageType string

const (
	AuditPropertyTokenized AuditMessageType = "PROPERTY_TOKENIZED"
	AuditTokenSale         AuditMessageType = "TOKEN_SALE"
	AuditDistribution      AuditMessageType = "DISTRIBUTION"
)

// AuditMessage is the JSON document published to an audit topic.
// Fields beyond the correlation ids travel in Data and are flattened on the wire.
type AuditMessage struct {
	Type       AuditMessageType
	PropertyID string
	TokenID    string
	Timestamp  time.Time
	Data       map[string]interface{}
}

// MarshalJSON flattens Data next to the correlation fields
func (m AuditMessage) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.Data)+4)
	for k, v := range m.Data {
		out[k] = v
	}
	out["type"] = m.Type
	if m.PropertyID != "" {
		out["propertyId"] = m.PropertyID
	}
	if m.TokenID != "" {
		out["tokenId"] = m.TokenID
	}
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	out["timestamp"] = ts.UTC().Format(time.RFC3339Nano)
	return json.Marshal(out)
}

// MediaRef points at a file pinned to IPFS
type MediaRef struct {
	CID      string `json:"cid"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// TokenBalance is a single holder balance as reported by the mirror node
type TokenBalance struct {
	AccountID string `json:"accountId"`
	Balance   int64  `json:"balance"`
	Decimals  int    `json:"decimals"`
}

// TransferLeg is one account movement inside a transaction
type TransferLeg struct {
	AccountID string `json:"accountId"`
	Amount    int64  `json:"amount"`
}

// TokenTransfer is a transaction touching a token
type TokenTransfer struct {
	TransactionID      string        `json:"transactionId"`
	ConsensusTimestamp string        `json:"consensusTimestamp"`
	Type               string        `json:"type"`
	Transfers          []TransferLeg `json:"transfers"`
	Result             string        `json:"result"`
	Memo               string        `json:"memo"`
}

// TopicMessage is a decoded consensus message. Message holds parsed JSON when
// the payload was JSON, otherwise the decoded text.
type TopicMessage struct {
	ConsensusTimestamp string      `json:"consensusTimestamp"`
	SequenceNumber     int64       `json:"sequenceNumber"`
	Message            interface{} `json:"message"`
	RunningHash        string      `json:"runningHash"`
	RunningHashVersion int         `json:"runningHashVersion"`
}

// Field returns a string field of a JSON object message, or "" when absent
func (m TopicMessage) Field(name string) string {
	obj, ok := m.Message.(map[string]interface{})
	if !ok {
		return ""
	}
	s, _ := obj[name].(string)
	return s
}

// AccountTokenBalance is a token held by an account
type AccountTokenBalance struct {
	TokenID  string `json:"tokenId"`
	Balance  int64  `json:"balance"`
	Decimals int    `json:"decimals"`
}

// TokenInfo is the mirror node view of a token
type TokenInfo struct {
	TokenID           string `json:"tokenId"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Decimals          int    `json:"decimals"`
	TotalSupply       int64  `json:"totalSupply"`
	TreasuryAccountID string `json:"treasuryAccountId"`
	Type              string `json:"type"`
	Memo              string `json:"memo"`
}

// LifecycleEventType names a state change broadcast to subscribers
type LifecycleEventType string

const (
	EventPropertyCreated   LifecycleEventType = "property.created"
	EventPropertyTokenized LifecycleEventType = "property.tokenized"
	EventSaleCompleted     LifecycleEventType = "sale.completed"
	EventSaleFailed        LifecycleEventType = "sale.failed"
	EventSupplyChanged     LifecycleEventType = "token.supply_changed"
)

// LifecycleEvent is published after a state change has been persisted
type LifecycleEvent struct {
	ID         string                 `json:"id"`
	Type       LifecycleEventType     `json:"type"`
	PropertyID string                 `json:"propertyId,omitempty"`
	TokenID    string                 `json:"tokenId,omitempty"`
	SaleID     string                 `json:"saleId,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	OccurredAt time.Time              `json:"occurredAt"`
}
