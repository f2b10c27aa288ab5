package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base contains the identity and timestamp fields shared by every record
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// PrimaryKey returns the record identity
func (b Base) PrimaryKey() uuid.UUID {
	return b.ID
}

// BeforeCreate assigns the identity once; it is never regenerated afterwards
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Record is the capability set the generic repository requires
type Record interface {
	PrimaryKey() uuid.UUID
}

// Gender values accepted for a customer
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Customer represents a client receiving nutritionist guidance
type Customer struct {
	Base
	Name                  string    `gorm:"not null" json:"name"`
	DateOfBirth           time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender                string    `gorm:"not null" json:"gender"`
	Email                 *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	AlternateEmail        *string   `gorm:"uniqueIndex" json:"alternate_email,omitempty"`
	MobileNumber          *string   `gorm:"uniqueIndex" json:"mobile_number,omitempty"`
	AlternateMobileNumber *string   `json:"alternate_mobile_number,omitempty"`

	Preferences datatypes.JSON `json:"preferences,omitempty"`
	Allergies   datatypes.JSON `json:"allergies,omitempty"`
}

// BodyMeasurement tracks client body measurements
type BodyMeasurement struct {
	Base
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"-"`
	MeasuredOn time.Time `gorm:"type:date;not null" json:"measured_on"`

	Height float64 `gorm:"not null" json:"height"` // in CM
	Weight float64 `gorm:"not null" json:"weight"` // in Kg

	BodyFatPercentage  *float64 `json:"body_fat_percentage,omitempty"`
	WaistCircumference *float64 `json:"waist_circumference,omitempty"`
	HipCircumference   *float64 `json:"hip_circumference,omitempty"`
	ChestCircumference *float64 `json:"chest_circumference,omitempty"`
	ArmCircumference   *float64 `json:"arm_circumference,omitempty"`
	ThighCircumference *float64 `json:"thigh_circumference,omitempty"`
}

// BodyMeasurementAIAnalysis stores an opaque AI payload attached to one measurement.
// The analysis is produced elsewhere; this service only persists it.
type BodyMeasurementAIAnalysis struct {
	Base
	BodyMeasurementID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"body_measurement_id"`
	BodyMeasurement   *BodyMeasurement `gorm:"foreignKey:BodyMeasurementID" json:"-"`
	Notes             *string          `json:"notes,omitempty"`
	AIAnalysis        datatypes.JSON   `json:"ai_analysis,omitempty"`
}

// Injury represents an injury the customer is going through
type Injury struct {
	Base
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer    *Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	Name        string     `gorm:"not null" json:"name"`
	Description *string    `json:"description,omitempty"`
	FromDate    time.Time  `gorm:"type:date;not null" json:"from_date"`
	ToDate      *time.Time `gorm:"type:date" json:"to_date,omitempty"`

	Severity     *string        `json:"severity,omitempty"`
	ImpactOnDiet datatypes.JSON `json:"impact_on_diet,omitempty"`

	InjuryType       *string `json:"injury_type,omitempty"`
	AffectedBodyPart *string `json:"affected_body_part,omitempty"`
}

// Disease represents a disease the customer is going through
type Disease struct {
	Base
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer    *Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	Name        string     `gorm:"not null" json:"name"`
	Description *string    `json:"description,omitempty"`
	FromDate    time.Time  `gorm:"type:date;not null" json:"from_date"`
	ToDate      *time.Time `gorm:"type:date" json:"to_date,omitempty"`

	Severity     *string        `json:"severity,omitempty"`
	ImpactOnDiet datatypes.JSON `json:"impact_on_diet,omitempty"`

	DiagnosisDate *time.Time     `gorm:"type:date" json:"diagnosis_date,omitempty"`
	Medications   datatypes.JSON `json:"medications,omitempty"`
}
