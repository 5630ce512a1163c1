package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription starts active and ends in expired or cancelled; neither
// terminal state transitions anywhere else. Status and EndDate are
// independent: nothing flips Status to expired when EndDate passes, so
// date validity is always checked against EndDate, not Status alone.
//
// A partial unique index on (customer_id) where status='active' (see
// config.Migrate) rejects a second active subscription per customer even
// when two requests race past the pre-insert check.
type Subscription struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;index;not null" json:"customer_id"`
	PlanID     uuid.UUID          `gorm:"type:uuid;index;not null" json:"plan_id"`
	StartDate  Date               `gorm:"type:date;not null" json:"start_date"`
	EndDate    Date               `gorm:"type:date;not null" json:"end_date"`
	Status     SubscriptionStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
