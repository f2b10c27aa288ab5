package services

import (
	"context"
	"testing"
	"time"

	"github.com/nutricoach/nutricoach-api/internal/domain"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func createTestCustomer(t *testing.T, db *gorm.DB, name string) *domain.Customer {
	t.Helper()
	svc := NewCustomerService(db, 100)
	customer, err := svc.Create(context.Background(), &domain.Customer{
		Name:        name,
		DateOfBirth: time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC),
		Gender:      domain.GenderMale,
	})
	if err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}
	return customer
}

func TestMeasurementCreateAndDerivedValues(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "Measured")
	svc := NewMeasurementService(db, 100)
	ctx := context.Background()

	measurement, err := svc.Create(ctx, &domain.BodyMeasurement{
		CustomerID: customer.ID,
		Height:     170,
		Weight:     65,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if measurement.MeasuredOn.IsZero() {
		t.Error("expected measured_on to default to today")
	}
	if bmi := measurement.BMI(); bmi != 22.49 {
		t.Errorf("expected BMI 22.49, got %v", bmi)
	}
	if category := measurement.BMICategory(); category != "Normal Weight" {
		t.Errorf("expected Normal Weight, got %s", category)
	}

	listed, err := svc.ListByCustomer(ctx, customer.ID, 0, 100)
	if err != nil {
		t.Fatalf("ListByCustomer returned error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 measurement, got %d", len(listed))
	}
}

func TestMeasurementValidation(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "Invalid")
	svc := NewMeasurementService(db, 100)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.BodyMeasurement{CustomerID: customer.ID, Height: 0, Weight: 70})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for zero height, got %v", err)
	}

	measurement, err := svc.Create(ctx, &domain.BodyMeasurement{CustomerID: customer.ID, Height: 170, Weight: 70})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Update(ctx, measurement.ID, map[string]any{"weight": float64(-5)})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for negative weight, got %v", err)
	}
}

func TestAttachAnalysis(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "Analyzed")
	svc := NewMeasurementService(db, 100)
	ctx := context.Background()

	measurement, err := svc.Create(ctx, &domain.BodyMeasurement{CustomerID: customer.ID, Height: 170, Weight: 70})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// No analysis attached yet.
	if _, err := svc.GetAnalysis(ctx, measurement.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found before attach, got %v", err)
	}

	payload := datatypes.JSON([]byte(`{"summary":"stable trend"}`))
	attached, err := svc.AttachAnalysis(ctx, &domain.BodyMeasurementAIAnalysis{
		BodyMeasurementID: measurement.ID,
		AIAnalysis:        payload,
	})
	if err != nil {
		t.Fatalf("AttachAnalysis returned error: %v", err)
	}

	fetched, err := svc.GetAnalysis(ctx, measurement.ID)
	if err != nil {
		t.Fatalf("GetAnalysis returned error: %v", err)
	}
	if fetched.ID != attached.ID {
		t.Errorf("analysis id mismatch: %s vs %s", fetched.ID, attached.ID)
	}

	// A measurement holds at most one analysis.
	_, err = svc.AttachAnalysis(ctx, &domain.BodyMeasurementAIAnalysis{BodyMeasurementID: measurement.ID})
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict for second analysis, got %v", err)
	}
}
