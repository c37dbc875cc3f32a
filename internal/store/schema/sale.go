package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/proptoken/proptoken-backend/internal/domain"
)

// Sale represents the sales table - one purchase of property share tokens
type Sale struct {
	ID             string          `gorm:"column:id;primaryKey;type:text" json:"id"`
	PropertyID     string          `gorm:"column:property_id;not null;type:text;index" json:"propertyId"`
	TokenID        string          `gorm:"column:token_id;not null;type:text;index" json:"tokenId"`
	BuyerAccountID string          `gorm:"column:buyer_account_id;not null;type:text;index" json:"buyerAccountId"`
	Quantity       int64           `gorm:"column:quantity;not null" json:"quantity"`
	PricePerToken  decimal.Decimal `gorm:"column:price_per_token;not null;type:decimal(24,8)" json:"pricePerToken"`
	TotalPrice     decimal.Decimal `gorm:"column:total_price;not null;type:decimal(24,8)" json:"totalPrice"`
	Currency       string          `gorm:"column:currency;not null;type:text" json:"currency"`
	// Status moves from PENDING to COMPLETED or FAILED exactly once
	Status domain.SaleStatus `gorm:"column:status;not null;type:text;index" json:"status"`
	// PaymentRef is the payment gateway reference
	PaymentRef *string `gorm:"column:payment_ref;type:text" json:"paymentRef,omitempty"`
	// TransferTxID is the ledger transaction id of the token transfer
	TransferTxID *string `gorm:"column:transfer_tx_id;type:text" json:"transferTxId,omitempty"`
	// AuditRef references the audit record of the sale, nil if publishing failed
	AuditRef      *string    `gorm:"column:audit_ref;type:text" json:"auditRef,omitempty"`
	FailureReason *string    `gorm:"column:failure_reason;type:text" json:"failureReason,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null;autoUpdateTime" json:"updatedAt"`
	CompletedAt   *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`
}

// TableName specifies the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
