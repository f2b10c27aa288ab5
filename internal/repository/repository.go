package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/nutricoach-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// schemaCache backs gorm schema parsing across all repository instances
var schemaCache = &sync.Map{}

// Repository provides uniform transactional CRUD over one record type.
// Every write runs in its own transaction; a failing write is rolled back
// before the error surfaces, so no partial state persists.
type Repository[T domain.Record] struct {
	db          *gorm.DB
	maxPageSize int
}

// New creates a repository for one record type
func New[T domain.Record](db *gorm.DB, maxPageSize int) *Repository[T] {
	if maxPageSize < 1 {
		maxPageSize = 100
	}
	return &Repository[T]{db: db, maxPageSize: maxPageSize}
}

// name returns the record type name for error messages
func (r *Repository[T]) name() string {
	var record T
	return reflect.TypeOf(record).Name()
}

// mutableColumns returns the set of columns a partial update may touch
func (r *Repository[T]) mutableColumns() (map[string]struct{}, error) {
	var record T
	sch, err := schema.Parse(&record, schemaCache, r.db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", r.name(), err)
	}

	columns := make(map[string]struct{}, len(sch.FieldsByDBName))
	for name := range sch.FieldsByDBName {
		// Identity is immutable and created_at is set exactly once.
		if name == "id" || name == "created_at" {
			continue
		}
		columns[name] = struct{}{}
	}
	return columns, nil
}

// Create inserts record atomically and assigns id and timestamps
func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
	if err != nil {
		return translateStoreError(err, r.name())
	}
	return nil
}

// GetByID returns the record with the given identity
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(r.name(), id)
		}
		return nil, translateStoreError(err, r.name())
	}
	return &record, nil
}

// List returns records in insertion order, paginated by offset and limit.
// An empty range is a valid outcome and yields an empty slice.
func (r *Repository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	return r.ListWhere(ctx, skip, limit, "")
}

// ListWhere returns records matching an optional condition, paginated
func (r *Repository[T]) ListWhere(ctx context.Context, skip, limit int, query string, args ...any) ([]T, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > r.maxPageSize {
		limit = r.maxPageSize
	}

	tx := r.db.WithContext(ctx).Order("created_at").Offset(skip).Limit(limit)
	if query != "" {
		tx = tx.Where(query, args...)
	}

	records := make([]T, 0, limit)
	if err := tx.Find(&records).Error; err != nil {
		return nil, translateStoreError(err, r.name())
	}
	return records, nil
}

// FindOne returns the first record matching the condition, or (nil, nil)
// when nothing matches. Absence here is a valid outcome, letting the caller
// decide whether missing means "not found" or "available for creation".
func (r *Repository[T]) FindOne(ctx context.Context, query string, args ...any) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Where(query, args...).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateStoreError(err, r.name())
	}
	return &record, nil
}

// Update applies the given fields to the record atomically. Keys that do not
// name a mutable column are ignored; updated_at is stamped regardless of
// which fields changed.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*T, error) {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	columns, err := r.mutableColumns()
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	for key, value := range fields {
		if _, ok := columns[key]; ok {
			updates[key] = value
		}
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(record).Updates(updates).Error
	})
	if err != nil {
		return nil, translateStoreError(err, r.name())
	}

	return r.GetByID(ctx, id)
}

// Delete removes the record atomically. This is a hard delete; a record
// still referenced by dependent rows fails with a conflict rather than
// cascading.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(record).Error
	})
	if err != nil {
		return translateStoreError(err, r.name())
	}
	return nil
}
