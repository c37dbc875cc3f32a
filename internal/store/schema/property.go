package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/proptoken/proptoken-backend/internal/domain"
)

// Property represents the properties table - a real-world asset whose shares are tokenized
type Property struct {
	// ID is supplied by the caller and is stable for the lifetime of the property
	ID          string `gorm:"column:id;primaryKey;type:text" json:"id"`
	Title       string `gorm:"column:title;not null;type:text" json:"title"`
	Address     string `gorm:"column:address;not null;type:text" json:"address"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	// Valuation is the appraised value of the whole property
	Valuation decimal.Decimal `gorm:"column:valuation;not null;type:decimal(24,8)" json:"valuation"`
	// TotalSupply is the number of share tokens the property is split into
	TotalSupply   int64           `gorm:"column:total_supply;not null" json:"totalSupply"`
	PricePerToken decimal.Decimal `gorm:"column:price_per_token;not null;type:decimal(24,8)" json:"pricePerToken"`
	Currency      string          `gorm:"column:currency;not null;type:text" json:"currency"`
	// Media lists the pinned images and documents
	Media datatypes.JSONSlice[domain.MediaRef] `gorm:"column:media" json:"media"`
	// MetadataCID is the IPFS CID of the pinned metadata document
	MetadataCID string `gorm:"column:metadata_cid;type:text" json:"metadataCid"`
	// ContentHash is the sha256 of the canonical (JCS) metadata document
	ContentHash string `gorm:"column:content_hash;type:text" json:"contentHash"`
	// Ledger links, set once the property is tokenized
	TreasuryAccountID *string   `gorm:"column:treasury_account_id;type:text" json:"treasuryAccountId,omitempty"`
	TokenID           *string   `gorm:"column:token_id;type:text;uniqueIndex" json:"tokenId,omitempty"`
	TopicID           *string   `gorm:"column:topic_id;type:text" json:"topicId,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the Property model
func (Property) TableName() string {
	return "properties"
}

// Tokenized reports whether a token has been issued for the property
func (p *Property) Tokenized() bool {
	return p.TokenID != nil && *p.TokenID != ""
}

// NewMediaList wraps media references for a JSON column; nil becomes an empty list
func NewMediaList(media []domain.MediaRef) datatypes.JSONSlice[domain.MediaRef] {
	if media == nil {
		media = []domain.MediaRef{}
	}
	return datatypes.NewJSONSlice(media)
}
