package services

import (
	"context"
	"testing"
	"time"

	"github.com/nutricoach/nutricoach-api/internal/domain"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
)

func TestInjuryCreateDefaultsAndListActive(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "Injured")
	svc := NewInjuryService(db, 100)
	ctx := context.Background()

	current, err := svc.Create(ctx, &domain.Injury{
		CustomerID: customer.ID,
		Name:       "Sprained ankle",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if current.FromDate.IsZero() {
		t.Error("expected from_date to default to today")
	}

	past := time.Now().UTC().AddDate(0, -2, 0)
	healed := past.AddDate(0, 1, 0)
	if _, err := svc.Create(ctx, &domain.Injury{
		CustomerID: customer.ID,
		Name:       "Healed wrist",
		FromDate:   past,
		ToDate:     &healed,
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	all, err := svc.ListByCustomer(ctx, customer.ID, 0, 100)
	if err != nil {
		t.Fatalf("ListByCustomer returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 injuries, got %d", len(all))
	}

	active, err := svc.ListActive(ctx, customer.ID)
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active injury, got %d", len(active))
	}
	if active[0].Name != "Sprained ankle" {
		t.Fatalf("expected the open injury, got %s", active[0].Name)
	}
}

func TestListActiveIncludesConditionEndingToday(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "EndsToday")
	svc := NewInjuryService(db, 100)
	ctx := context.Background()

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	injury, err := svc.Create(ctx, &domain.Injury{
		CustomerID: customer.ID,
		Name:       "Last day of recovery",
		FromDate:   today.AddDate(0, 0, -7),
		ToDate:     &today,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !injury.IsActive(now) {
		t.Fatal("condition ending today should be active")
	}

	active, err := svc.ListActive(ctx, customer.ID)
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected condition ending today to be listed, got %d", len(active))
	}
}

func TestInjuryCreateRequiresName(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "Unnamed")
	svc := NewInjuryService(db, 100)

	_, err := svc.Create(context.Background(), &domain.Injury{CustomerID: customer.ID})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDiseaseUpdateClearsEndDate(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "Diagnosed")
	svc := NewDiseaseService(db, 100)
	ctx := context.Background()

	ended := time.Now().UTC().AddDate(0, 0, -10)
	disease, err := svc.Create(ctx, &domain.Disease{
		CustomerID: customer.ID,
		Name:       "Hypertension",
		FromDate:   time.Now().UTC().AddDate(0, -3, 0),
		ToDate:     &ended,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if disease.IsActive(time.Now().UTC()) {
		t.Fatal("expected condition ended 10 days ago to be inactive")
	}

	updated, err := svc.Update(ctx, disease.ID, map[string]any{"to_date": nil})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ToDate != nil {
		t.Fatalf("expected to_date cleared, got %v", updated.ToDate)
	}
	if !updated.IsActive(time.Now().UTC()) {
		t.Fatal("expected condition active again after clearing end date")
	}

	active, err := svc.ListActive(ctx, customer.ID)
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active disease, got %d", len(active))
	}
}

func TestDiseaseUpdateRejectsBadDate(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "BadDate")
	svc := NewDiseaseService(db, 100)
	ctx := context.Background()

	disease, err := svc.Create(ctx, &domain.Disease{CustomerID: customer.ID, Name: "Anemia"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Update(ctx, disease.ID, map[string]any{"to_date": "not-a-date"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
