package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AuditRecord represents the audit_records table - a local pointer to a message published on an audit topic
type AuditRecord struct {
	// ID is a ULID so records sort by creation time
	ID             string         `gorm:"column:id;primaryKey;type:text" json:"id"`
	TopicID        string         `gorm:"column:topic_id;not null;type:text;index" json:"topicId"`
	PropertyID     *string        `gorm:"column:property_id;type:text;index" json:"propertyId,omitempty"`
	TokenID        *string        `gorm:"column:token_id;type:text;index" json:"tokenId,omitempty"`
	MessageType    string         `gorm:"column:message_type;not null;type:text" json:"messageType"`
	TransactionID  string         `gorm:"column:transaction_id;not null;type:text" json:"transactionId"`
	SequenceNumber uint64         `gorm:"column:sequence_number" json:"sequenceNumber"`
	Payload        datatypes.JSON `gorm:"column:payload" json:"payload,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for the AuditRecord model
func (AuditRecord) TableName() string {
	return "audit_records"
}

// Models lists every table managed by the store, in migration order
func Models() []interface{} {
	return []interface{}{
		&Property{},
		&TokenRecord{},
		&Sale{},
		&AuditRecord{},
	}
}
