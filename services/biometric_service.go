package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"powergym-backend/models"
)

// MaxBiometricSize is the upload ceiling: exactly this many bytes is
// accepted, one more is rejected.
const MaxBiometricSize = 10 << 20

// BiometricService validates uploads and stores them opaquely with a
// content checksum. No image or biometric processing happens here.
type BiometricService struct {
	db *gorm.DB
}

func NewBiometricService(db *gorm.DB) *BiometricService {
	return &BiometricService{db: db}
}

func checksum(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Create stores a new biometric record for the customer. The store's
// composite unique index rejects a second record for the same
// (client, type) pair.
func (s *BiometricService) Create(clientID uuid.UUID, bioType models.BiometricType, payload []byte) (*models.BiometricRecord, error) {
	var customer models.Customer
	if err := s.db.Select("id").First(&customer, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Customer"}
		}
		return nil, err
	}

	if bioType != models.BiometricFace && bioType != models.BiometricFingerprint {
		return nil, &ValidationError{Message: "Invalid biometric type. Must be 'face' or 'fingerprint'"}
	}

	if int64(len(payload)) > MaxBiometricSize {
		return nil, &PayloadTooLargeError{Limit: MaxBiometricSize}
	}

	record := &models.BiometricRecord{
		ClientID:         clientID,
		Type:             bioType,
		Data:             payload,
		HashChecksum:     checksum(payload),
		EncryptionMethod: "none",
		IsActive:         true,
	}

	if err := s.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{
				Message: "Biometric data of type '" + string(bioType) + "' already exists for this customer",
			}
		}
		return nil, err
	}
	return record, nil
}

// Replace overwrites the payload and recomputes the checksum. Type and
// client never change on this path.
func (s *BiometricService) Replace(id uuid.UUID, payload []byte) (*models.BiometricRecord, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if int64(len(payload)) > MaxBiometricSize {
		return nil, &PayloadTooLargeError{Limit: MaxBiometricSize}
	}

	record.Data = payload
	record.HashChecksum = checksum(payload)
	if err := s.db.Model(record).Updates(map[string]interface{}{
		"data":          record.Data,
		"hash_checksum": record.HashChecksum,
	}).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *BiometricService) Get(id uuid.UUID) (*models.BiometricRecord, error) {
	var record models.BiometricRecord
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Biometric data"}
		}
		return nil, err
	}
	return &record, nil
}

// GetActive returns the record only while it is active; soft-deleted
// records are invisible on the data endpoint.
func (s *BiometricService) GetActive(id uuid.UUID) (*models.BiometricRecord, error) {
	var record models.BiometricRecord
	if err := s.db.First(&record, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Biometric data"}
		}
		return nil, err
	}
	return &record, nil
}

// List returns active records, optionally filtered by client and type,
// newest first. Payloads stay out of listings by serialization.
func (s *BiometricService) List(clientID *uuid.UUID, bioType *models.BiometricType) ([]models.BiometricRecord, error) {
	query := s.db.Model(&models.BiometricRecord{}).Where("is_active = ?", true)
	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	}
	if bioType != nil {
		query = query.Where("type = ?", *bioType)
	}

	var records []models.BiometricRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// SoftDelete deactivates the record; it stays fetchable by id but drops
// out of listings and the data endpoint.
func (s *BiometricService) SoftDelete(id uuid.UUID) error {
	result := s.db.Model(&models.BiometricRecord{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "Biometric data"}
	}
	return nil
}
