package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is an ordered capability level: every admin can do everything an
// employee can, so authorization is a single >= comparison.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleEmployee:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r carries the capabilities of min.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level() && r.Level() > 0
}

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     Role      `gorm:"type:varchar(20);not null" json:"role"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
