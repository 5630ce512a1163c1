package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentTransfer   PaymentMethod = "transfer"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Payment amounts are fixed-point decimals and serialize as strings, so
// no client ever sees a float-rounded amount.
type Payment struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SubscriptionID uuid.UUID       `gorm:"type:uuid;index;not null" json:"subscription_id"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"customer_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method"`
	Status         PaymentStatus   `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	Notes          string          `json:"notes,omitempty"`
	PaymentDate    time.Time       `json:"payment_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	return
}
