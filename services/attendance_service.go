package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"powergym-backend/models"
	"powergym-backend/utils"
)

// AttendanceService admits check-ins. A check-in qualifies only while the
// customer holds a subscription with status=active and end_date on or
// after the server's current date; the two conditions are independent,
// since nothing auto-expires a subscription's status.
type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// CheckIn records an attendance for the customer, gated on a qualifying
// subscription. Multiple check-ins on the same day are all accepted.
func (s *AttendanceService) CheckIn(customerID uuid.UUID) (*models.Attendance, error) {
	today := models.Today()

	var qualifying int64
	err := s.db.Model(&models.Subscription{}).
		Where("customer_id = ? AND status = ? AND end_date >= ?",
			customerID, models.SubscriptionActive, today).
		Count(&qualifying).Error
	if err != nil {
		return nil, err
	}
	if qualifying == 0 {
		return nil, &PolicyViolationError{Message: "Customer does not have an active subscription"}
	}

	attendance := &models.Attendance{
		CustomerID:  customerID,
		CheckInTime: time.Now(),
	}
	if err := s.db.Create(attendance).Error; err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *AttendanceService) Get(id uuid.UUID) (*models.Attendance, error) {
	var attendance models.Attendance
	if err := s.db.First(&attendance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Attendance"}
		}
		return nil, err
	}
	return &attendance, nil
}

// List filters by customer and/or calendar day, newest first.
func (s *AttendanceService) List(customerID *uuid.UUID, day *time.Time) ([]models.Attendance, error) {
	query := s.db.Model(&models.Attendance{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if day != nil {
		query = query.Where("check_in_time BETWEEN ? AND ?",
			utils.BeginningOfDay(*day), utils.EndOfDay(*day))
	}

	var attendances []models.Attendance
	if err := query.Order("check_in_time DESC").Find(&attendances).Error; err != nil {
		return nil, err
	}
	return attendances, nil
}

// ListToday returns all check-ins within the server-local current day.
func (s *AttendanceService) ListToday() ([]models.Attendance, error) {
	now := time.Now()
	return s.List(nil, &now)
}

// Delete is the only mutation attendances support, and it removes the
// row outright.
func (s *AttendanceService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "Attendance"}
	}
	return nil
}
