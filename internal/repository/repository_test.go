package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/nutricoach-api/internal/database"
	"github.com/nutricoach/nutricoach-api/internal/domain"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func testCustomer(name, email string) *domain.Customer {
	return &domain.Customer{
		Name:        name,
		DateOfBirth: time.Date(1990, time.January, 10, 0, 0, 0, 0, time.UTC),
		Gender:      domain.GenderOther,
		Email:       &email,
	}
}

func TestCreateAndGetByIDRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)
	ctx := context.Background()

	customer := testCustomer("Asha Rao", "asha@example.com")
	if err := repo.Create(ctx, customer); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if customer.ID == uuid.Nil {
		t.Fatal("expected record to have an assigned id")
	}
	if customer.CreatedAt.IsZero() || customer.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set on create")
	}

	fetched, err := repo.GetByID(ctx, customer.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}

	if fetched.ID != customer.ID {
		t.Errorf("id mismatch: %s vs %s", fetched.ID, customer.ID)
	}
	if fetched.Name != customer.Name {
		t.Errorf("name mismatch: %s vs %s", fetched.Name, customer.Name)
	}
	if fetched.Email == nil || *fetched.Email != *customer.Email {
		t.Errorf("email mismatch: %v vs %v", fetched.Email, customer.Email)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCreateDuplicateEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)
	ctx := context.Background()

	if err := repo.Create(ctx, testCustomer("First", "dup@example.com")); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	err := repo.Create(ctx, testCustomer("Second", "dup@example.com"))
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// The failed insert must not leave a row behind.
	var count int64
	if err := db.Model(&domain.Customer{}).Where("email = ?", "dup@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 row, got %d", count)
	}
}

func TestPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)
	ctx := context.Background()

	mobile := "9876543210"
	customer := testCustomer("Before", "partial@example.com")
	customer.MobileNumber = &mobile
	if err := repo.Create(ctx, customer); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	before, err := repo.GetByID(ctx, customer.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}

	updated, err := repo.Update(ctx, customer.ID, map[string]any{
		"name":    "After",
		"bogus":   "ignored",
		"unknown": 42,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Name != "After" {
		t.Errorf("expected name After, got %s", updated.Name)
	}
	if updated.Email == nil || *updated.Email != *before.Email {
		t.Errorf("email changed unexpectedly: %v", updated.Email)
	}
	if updated.MobileNumber == nil || *updated.MobileNumber != *before.MobileNumber {
		t.Errorf("mobile number changed unexpectedly: %v", updated.MobileNumber)
	}
	if !updated.DateOfBirth.Equal(before.DateOfBirth) {
		t.Errorf("date of birth changed unexpectedly: %v", updated.DateOfBirth)
	}
	if updated.UpdatedAt.Before(before.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v vs %v", updated.UpdatedAt, before.UpdatedAt)
	}
}

func TestUpdateImmutableColumnsIgnored(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)
	ctx := context.Background()

	customer := testCustomer("Stable", "stable@example.com")
	if err := repo.Create(ctx, customer); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := repo.Update(ctx, customer.ID, map[string]any{
		"id":         uuid.New().String(),
		"created_at": time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.ID != customer.ID {
		t.Errorf("id must be immutable, got %s", updated.ID)
	}
	if !updated.CreatedAt.Equal(customer.CreatedAt) {
		t.Errorf("created_at must be immutable, got %v", updated.CreatedAt)
	}
}

func TestUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)

	_, err := repo.Update(context.Background(), uuid.New(), map[string]any{"name": "X"})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteThenFetch(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)
	ctx := context.Background()

	customer := testCustomer("Gone", "gone@example.com")
	if err := repo.Create(ctx, customer); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.Delete(ctx, customer.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := repo.GetByID(ctx, customer.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}

	if err := repo.Delete(ctx, customer.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}

func TestListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)
	ctx := context.Background()

	// Empty store yields an empty slice, not an error.
	records, err := repo.List(ctx, 0, 100)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty result, got %d records", len(records))
	}

	for i := 0; i < 5; i++ {
		email := string(rune('a'+i)) + "@example.com"
		if err := repo.Create(ctx, testCustomer("Customer", email)); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	records, err = repo.List(ctx, 0, 3)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	records, err = repo.List(ctx, 3, 3)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records after skip, got %d", len(records))
	}

	// A limit above the configured maximum is clamped, not an error.
	small := New[domain.Customer](db, 2)
	records, err = small.List(ctx, 0, 1000)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected clamp to 2 records, got %d", len(records))
	}
}

func TestFindOneAbsence(t *testing.T) {
	db := setupTestDB(t)
	repo := New[domain.Customer](db, 100)
	ctx := context.Background()

	record, err := repo.FindOne(ctx, "email = ?", "missing@example.com")
	if err != nil {
		t.Fatalf("FindOne returned error: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil for absent record, got %+v", record)
	}
}

func TestTranslateStoreError(t *testing.T) {
	if err := translateStoreError(nil, "Customer"); err != nil {
		t.Errorf("nil should stay nil, got %v", err)
	}

	if err := translateStoreError(gorm.ErrRecordNotFound, "Customer"); !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
	if err := translateStoreError(gorm.ErrDuplicatedKey, "Customer"); !apperrors.IsConflict(err) {
		t.Errorf("expected conflict, got %v", err)
	}
	if err := translateStoreError(gorm.ErrForeignKeyViolated, "Customer"); !apperrors.IsConflict(err) {
		t.Errorf("expected conflict for referential violation, got %v", err)
	}
	if err := translateStoreError(gorm.ErrInvalidTransaction, "Customer"); apperrors.IsConflict(err) || apperrors.IsNotFound(err) {
		t.Errorf("unexpected classification for generic error: %v", err)
	}
}
