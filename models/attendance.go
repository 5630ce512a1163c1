package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance rows are insert-only check-in events. There is no per-day
// dedup: a customer may check in any number of times while their
// subscription qualifies.
type Attendance struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	CheckInTime time.Time `gorm:"index;not null" json:"check_in_time"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CheckInTime.IsZero() {
		a.CheckInTime = time.Now()
	}
	return
}
