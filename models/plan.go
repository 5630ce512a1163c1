package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Plan delete is a soft deactivation; subscriptions created under a plan
// keep pointing at it.
type Plan struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Description  string          `json:"description,omitempty"`
	DurationDays int             `gorm:"not null" json:"duration_days"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Plan) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
