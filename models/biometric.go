package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BiometricType string

const (
	BiometricFace        BiometricType = "face"
	BiometricFingerprint BiometricType = "fingerprint"
)

// BiometricRecord stores the raw upload opaquely: no parsing, no feature
// extraction. Data never appears in list responses; only the dedicated
// data endpoint returns it. At most one record per (client, type) pair,
// enforced by the composite unique index.
type BiometricRecord struct {
	ID       uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	ClientID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_client_biometric_type" json:"client_id"`
	Type     BiometricType `gorm:"type:varchar(20);not null;uniqueIndex:idx_client_biometric_type" json:"type"`

	Data             []byte `gorm:"type:bytea;not null" json:"-"`
	HashChecksum     string `gorm:"size:64;not null" json:"hash_checksum"`
	EncryptionMethod string `gorm:"size:20;default:'none'" json:"encryption_method"`
	IsActive         bool   `gorm:"default:true" json:"is_active"`
	MetaInfo         JSONB  `gorm:"type:jsonb" json:"meta_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BiometricRecord) TableName() string {
	return "client_biometrics"
}

func (b *BiometricRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
