package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	DocumentCC DocumentType = "CC" // Cédula de Ciudadanía
	DocumentTI DocumentType = "TI" // Tarjeta de Identidad
	DocumentCE DocumentType = "CE" // Cédula de Extranjería
	DocumentPP DocumentType = "PP" // Pasaporte
)

type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
	StatusArchived RecordStatus = "archived"
	StatusDeleted  RecordStatus = "deleted"
)

// JSONB stores free-form metadata as a JSON column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, j)
}

// Customer is never hard-deleted: DELETE flips Status to inactive and the
// record stays fetchable by id.
type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	DNIType   DocumentType `gorm:"type:varchar(2);not null" json:"dni_type"`
	DNINumber string       `gorm:"uniqueIndex;size:20;not null" json:"dni_number"`

	FirstName      string `gorm:"size:100;not null" json:"first_name"`
	MiddleName     string `gorm:"size:100" json:"middle_name,omitempty"`
	LastName       string `gorm:"size:100;not null" json:"last_name"`
	SecondLastName string `gorm:"size:100" json:"second_last_name,omitempty"`

	Phone            string `gorm:"size:20;not null" json:"phone"`
	AlternativePhone string `gorm:"size:20" json:"alternative_phone,omitempty"`

	BirthDate Date   `gorm:"type:date" json:"birth_date"`
	Gender    string `gorm:"type:varchar(1)" json:"gender"`
	Address   string `json:"address,omitempty"`

	Status   RecordStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	MetaInfo JSONB        `gorm:"type:jsonb" json:"meta_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = StatusActive
	}
	return
}
