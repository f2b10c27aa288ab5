package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"gorm.io/gorm"
)

// constraintFields maps store constraint names to the field they guard, so a
// conflict can name the offending field without string-matching engine
// messages. Constraints absent from the table still translate to a generic
// conflict.
var constraintFields = map[string]string{
	"idx_customers_email":                                  "email",
	"idx_customers_alternate_email":                        "alternate_email",
	"idx_customers_mobile_number":                          "mobile_number",
	"idx_body_measurement_ai_analyses_body_measurement_id": "body_measurement_id",
	"fk_body_measurements_customer":                        "customer_id",
	"fk_injuries_customer":                                 "customer_id",
	"fk_diseases_customer":                                 "customer_id",
	"fk_body_measurement_ai_analyses_body_measurement":     "body_measurement_id",
}

func notFound(recordType string, id uuid.UUID) error {
	return apperrors.NewNotFoundError(
		fmt.Sprintf("%s with id %s not found", recordType, id)).
		WithContext("record_type", recordType).
		WithContext("id", id.String())
}

// constraintField resolves the violated constraint to a known field name
func constraintField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		field, ok := constraintFields[pgErr.ConstraintName]
		return field, ok
	}
	return "", false
}

// translateStoreError maps low-level store errors onto the failure taxonomy.
// The caller has already rolled back the failing transaction.
func translateStoreError(err error, recordType string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", recordType)).
			WithContext("record_type", recordType)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		conflict := apperrors.NewConflictError(
			fmt.Sprintf("%s violates a uniqueness constraint", recordType)).
			WithContext("record_type", recordType)
		if field, ok := constraintField(err); ok {
			conflict = conflict.WithContext("field", field)
		}
		return conflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		conflict := apperrors.NewConflictError(
			fmt.Sprintf("%s is referenced by or references other records", recordType)).
			WithContext("record_type", recordType)
		if field, ok := constraintField(err); ok {
			conflict = conflict.WithContext("field", field)
		}
		return conflict
	default:
		return apperrors.NewDatabaseError(err).WithContext("record_type", recordType)
	}
}
