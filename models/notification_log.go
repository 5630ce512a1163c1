package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records every expiry reminder the notifier attempted,
// sent or failed.
type NotificationLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;index;not null" json:"subscription_id"`
	Message        string    `gorm:"type:text" json:"message"`
	Status         string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage   string    `gorm:"type:text" json:"error_message,omitempty"`
	Channel        string    `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms
	SentAt         time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
