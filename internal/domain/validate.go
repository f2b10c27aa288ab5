package domain

import (
	"fmt"
	"regexp"

	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
)

var mobileNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidateMobileNumber checks that a phone field is exactly 10 decimal digits.
// An absent value is always valid; the fields are optional.
func ValidateMobileNumber(field string, value *string) error {
	if value == nil {
		return nil
	}
	if !mobileNumberPattern.MatchString(*value) {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s must be exactly 10 digits", field)).
			WithContext("field", field)
	}
	return nil
}

// ValidateGender checks a gender value against the accepted set
func ValidateGender(gender string) error {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return nil
	}
	return apperrors.NewValidationError("gender must be one of male, female, other").
		WithContext("field", "gender")
}

// ValidateCustomer applies the field-level rules evaluated before any write
func ValidateCustomer(c *Customer) error {
	if c.Name == "" {
		return apperrors.NewValidationError("name is required").WithContext("field", "name")
	}
	if c.DateOfBirth.IsZero() {
		return apperrors.NewValidationError("date_of_birth is required").WithContext("field", "date_of_birth")
	}
	if err := ValidateGender(c.Gender); err != nil {
		return err
	}
	if err := ValidateMobileNumber("mobile_number", c.MobileNumber); err != nil {
		return err
	}
	return ValidateMobileNumber("alternate_mobile_number", c.AlternateMobileNumber)
}
