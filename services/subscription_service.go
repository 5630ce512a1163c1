package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"powergym-backend/models"
)

// SubscriptionService owns the subscription lifecycle: end-date
// computation from plan duration, the one-active-per-customer rule and
// status transitions.
type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// UpdateSubscriptionInput patches status and/or end date directly. The
// one-active-per-customer rule is not re-checked on this path: an admin
// flipping a cancelled subscription back to active bypasses it.
type UpdateSubscriptionInput struct {
	Status  *models.SubscriptionStatus `json:"status" binding:"omitempty,oneof=active expired cancelled"`
	EndDate *models.Date               `json:"end_date"`
}

// Create inserts a subscription for the customer with the end date
// computed from the plan's duration. Status is forced to active no matter
// what the caller sent. The pre-insert check gives a friendly conflict
// message; the partial unique index catches the two-requests race and is
// reported as the same conflict.
func (s *SubscriptionService) Create(customerID, planID uuid.UUID, startDate models.Date) (*models.Subscription, error) {
	var active int64
	err := s.db.Model(&models.Subscription{}).
		Where("customer_id = ? AND status = ?", customerID, models.SubscriptionActive).
		Count(&active).Error
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, &ConflictError{Message: "Customer already has an active subscription"}
	}

	var plan models.Plan
	if err := s.db.First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Plan"}
		}
		return nil, err
	}

	sub := &models.Subscription{
		CustomerID: customerID,
		PlanID:     planID,
		StartDate:  startDate,
		EndDate:    startDate.AddDays(plan.DurationDays),
		Status:     models.SubscriptionActive,
	}

	if err := s.db.Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Customer already has an active subscription"}
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Get(id uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Subscription"}
		}
		return nil, err
	}
	return &sub, nil
}

// List filters by customer and/or status, newest first.
func (s *SubscriptionService) List(customerID *uuid.UUID, status *models.SubscriptionStatus) ([]models.Subscription, error) {
	query := s.db.Model(&models.Subscription{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var subs []models.Subscription
	if err := query.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubscriptionService) Update(id uuid.UUID, input UpdateSubscriptionInput) (*models.Subscription, error) {
	if input.Status == nil && input.EndDate == nil {
		return nil, &ValidationError{Message: "No fields to update"}
	}

	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		sub.Status = *input.Status
	}
	if input.EndDate != nil {
		sub.EndDate = *input.EndDate
	}

	if err := s.db.Save(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Customer already has an active subscription"}
		}
		return nil, err
	}
	return sub, nil
}

// Cancel unconditionally moves the subscription to cancelled. Cancelling
// an already-cancelled subscription succeeds silently.
func (s *SubscriptionService) Cancel(id uuid.UUID) error {
	result := s.db.Model(&models.Subscription{}).
		Where("id = ?", id).
		Update("status", models.SubscriptionCancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "Subscription"}
	}
	return nil
}
