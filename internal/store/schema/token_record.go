package schema

import (
	"time"

	"gorm.io/datatypes"
)

// TokenRecord represents the token_records table - the local registry entry for an issued share token
type TokenRecord struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// TokenID is the ledger token id (shard.realm.num)
	TokenID string `gorm:"column:token_id;not null;uniqueIndex;type:text" json:"tokenId"`
	// PropertyID links the token to exactly one property
	PropertyID string `gorm:"column:property_id;not null;uniqueIndex;type:text" json:"propertyId"`
	Name       string `gorm:"column:name;not null;type:text" json:"name"`
	Symbol     string `gorm:"column:symbol;not null;type:text;index" json:"symbol"`
	Decimals   int    `gorm:"column:decimals;not null" json:"decimals"`
	// TotalSupply only changes through mint and burn and is never negative
	TotalSupply       int64  `gorm:"column:total_supply;not null;check:total_supply >= 0" json:"totalSupply"`
	TreasuryAccountID string `gorm:"column:treasury_account_id;not null;type:text" json:"treasuryAccountId"`
	// TreasuryKey is the treasury signing key; it is never serialized
	TreasuryKey string         `gorm:"column:treasury_key;type:text" json:"-"`
	TopicID     *string        `gorm:"column:topic_id;type:text" json:"topicId,omitempty"`
	Metadata    datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the TokenRecord model
func (TokenRecord) TableName() string {
	return "token_records"
}
