package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"powergym-backend/models"
)

func TestCreateSubscriptionComputesEndDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 30)

	sub, err := svc.Create(customer.ID, plan.ID, models.NewDate(2024, 1, 1))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if got := sub.EndDate.String(); got != "2024-01-31" {
		t.Errorf("end date = %s, want 2024-01-31", got)
	}
	if sub.Status != models.SubscriptionActive {
		t.Errorf("status = %s, want active", sub.Status)
	}

	var stored models.Subscription
	if err := db.First(&stored, "id = ?", sub.ID).Error; err != nil {
		t.Fatalf("failed to reload subscription: %v", err)
	}
	if got := stored.EndDate.String(); got != "2024-01-31" {
		t.Errorf("stored end date = %s, want 2024-01-31", got)
	}
}

func TestCreateSubscriptionZeroDurationPlan(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 1)

	sub, err := svc.Create(customer.ID, plan.ID, models.NewDate(2024, 2, 28))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got := sub.EndDate.String(); got != "2024-02-29" {
		t.Errorf("end date = %s, want 2024-02-29", got)
	}
}

func TestCreateSubscriptionRejectsSecondActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 30)

	if _, err := svc.Create(customer.ID, plan.ID, models.Today()); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err := svc.Create(customer.ID, plan.ID, models.Today())
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("second Create error = %v, want ConflictError", err)
	}
}

func TestCreateSubscriptionUnknownPlan(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)

	_, err := svc.Create(customer.ID, uuid.New(), models.Today())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Create error = %v, want NotFoundError", err)
	}
}

func TestStoreRejectsRacedDuplicateActive(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 30)

	// Two inserts that both skipped the pre-check, as concurrent
	// requests would. The partial unique index must reject the second.
	first := models.Subscription{
		CustomerID: customer.ID,
		PlanID:     plan.ID,
		StartDate:  models.Today(),
		EndDate:    models.Today().AddDays(30),
		Status:     models.SubscriptionActive,
	}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	second := models.Subscription{
		CustomerID: customer.ID,
		PlanID:     plan.ID,
		StartDate:  models.Today(),
		EndDate:    models.Today().AddDays(30),
		Status:     models.SubscriptionActive,
	}
	err := db.Create(&second).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second insert error = %v, want duplicated key", err)
	}
}

func TestCancelSubscriptionIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 30)

	sub, err := svc.Create(customer.ID, plan.ID, models.Today())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Cancel(sub.ID); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if err := svc.Cancel(sub.ID); err != nil {
		t.Fatalf("second Cancel returned error: %v", err)
	}

	reloaded, err := svc.Get(sub.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if reloaded.Status != models.SubscriptionCancelled {
		t.Errorf("status = %s, want cancelled", reloaded.Status)
	}

	// With no remaining active subscription the customer can sign up again.
	if _, err := svc.Create(customer.ID, plan.ID, models.Today()); err != nil {
		t.Fatalf("Create after cancel returned error: %v", err)
	}
}

func TestCancelMissingSubscription(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)

	err := svc.Cancel(uuid.New())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Cancel error = %v, want NotFoundError", err)
	}
}

func TestUpdateSubscriptionPatchesStatusAndEndDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 30)

	sub, err := svc.Create(customer.ID, plan.ID, models.NewDate(2024, 1, 1))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newEnd := models.NewDate(2024, 3, 15)
	expired := models.SubscriptionExpired
	updated, err := svc.Update(sub.ID, UpdateSubscriptionInput{Status: &expired, EndDate: &newEnd})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != models.SubscriptionExpired {
		t.Errorf("status = %s, want expired", updated.Status)
	}
	if got := updated.EndDate.String(); got != "2024-03-15" {
		t.Errorf("end date = %s, want 2024-03-15", got)
	}
}

func TestUpdateSubscriptionEmptyPatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 30)

	sub, err := svc.Create(customer.ID, plan.ID, models.Today())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Update(sub.ID, UpdateSubscriptionInput{})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Update error = %v, want ValidationError", err)
	}
}

func TestUpdateReactivationHitsStoreConstraint(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 30)

	first, err := svc.Create(customer.ID, plan.ID, models.Today())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.Cancel(first.ID); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if _, err := svc.Create(customer.ID, plan.ID, models.Today()); err != nil {
		t.Fatalf("second Create returned error: %v", err)
	}

	// The update path performs no invariant re-check of its own; the
	// store's partial index is what rejects the second active row.
	active := models.SubscriptionActive
	_, err = svc.Update(first.ID, UpdateSubscriptionInput{Status: &active})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Update error = %v, want ConflictError", err)
	}
}

func TestListSubscriptionsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	customer := seedCustomer(t, db)
	plan := seedPlan(t, db, 30)

	sub, err := svc.Create(customer.ID, plan.ID, models.Today())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.Cancel(sub.ID); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if _, err := svc.Create(customer.ID, plan.ID, models.Today()); err != nil {
		t.Fatalf("second Create returned error: %v", err)
	}

	active := models.SubscriptionActive
	subs, err := svc.List(&customer.ID, &active)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("List returned %d subscriptions, want 1", len(subs))
	}
	if subs[0].Status != models.SubscriptionActive {
		t.Errorf("status = %s, want active", subs[0].Status)
	}

	all, err := svc.List(&customer.ID, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List returned %d subscriptions, want 2", len(all))
	}
}
