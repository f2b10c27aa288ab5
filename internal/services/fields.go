package services

import (
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// normalizeJSONFields re-encodes structured values so the store can write
// them into JSON columns. Absent keys are left untouched.
func normalizeJSONFields(fields map[string]any, keys ...string) error {
	for _, key := range keys {
		value, ok := fields[key]
		if !ok || value == nil {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s must be a JSON value", key)).WithContext("field", key)
		}
		fields[key] = datatypes.JSON(raw)
	}
	return nil
}

// parseDateFields converts YYYY-MM-DD strings into time values before the
// update reaches the store. A nil value clears the field and stays nil.
func parseDateFields(fields map[string]any, keys ...string) error {
	for _, key := range keys {
		value, ok := fields[key]
		if !ok || value == nil {
			continue
		}
		str, ok := value.(string)
		if !ok {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s must be a date in YYYY-MM-DD format", key)).WithContext("field", key)
		}
		parsed, err := time.Parse(dateLayout, str)
		if err != nil {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s must be a date in YYYY-MM-DD format", key)).WithContext("field", key)
		}
		fields[key] = parsed
	}
	return nil
}

// numberField reads an optional numeric update value; JSON numbers arrive
// as float64.
func numberField(fields map[string]any, key string) (float64, bool, error) {
	value, ok := fields[key]
	if !ok || value == nil {
		return 0, false, nil
	}
	number, ok := value.(float64)
	if !ok {
		return 0, false, apperrors.NewValidationError(
			fmt.Sprintf("%s must be a number", key)).WithContext("field", key)
	}
	return number, true, nil
}
