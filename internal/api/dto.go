package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/nutricoach-api/internal/domain"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(
			field + " must be a date in YYYY-MM-DD format").WithContext("field", field)
	}
	return parsed, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

type customerRequest struct {
	Name                  string         `json:"name" binding:"required"`
	DateOfBirth           string         `json:"date_of_birth" binding:"required"`
	Gender                string         `json:"gender" binding:"required"`
	Email                 *string        `json:"email"`
	AlternateEmail        *string        `json:"alternate_email"`
	MobileNumber          *string        `json:"mobile_number"`
	AlternateMobileNumber *string        `json:"alternate_mobile_number"`
	Preferences           datatypes.JSON `json:"preferences"`
	Allergies             datatypes.JSON `json:"allergies"`
}

func (r *customerRequest) toDomain() (*domain.Customer, error) {
	dateOfBirth, err := parseDate("date_of_birth", r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &domain.Customer{
		Name:                  r.Name,
		DateOfBirth:           dateOfBirth,
		Gender:                r.Gender,
		Email:                 r.Email,
		AlternateEmail:        r.AlternateEmail,
		MobileNumber:          r.MobileNumber,
		AlternateMobileNumber: r.AlternateMobileNumber,
		Preferences:           r.Preferences,
		Allergies:             r.Allergies,
	}, nil
}

type customerResponse struct {
	ID                    uuid.UUID      `json:"id"`
	Name                  string         `json:"name"`
	DateOfBirth           string         `json:"date_of_birth"`
	Age                   int            `json:"age"`
	Gender                string         `json:"gender"`
	Email                 *string        `json:"email,omitempty"`
	AlternateEmail        *string        `json:"alternate_email,omitempty"`
	MobileNumber          *string        `json:"mobile_number,omitempty"`
	AlternateMobileNumber *string        `json:"alternate_mobile_number,omitempty"`
	Preferences           datatypes.JSON `json:"preferences,omitempty"`
	Allergies             datatypes.JSON `json:"allergies,omitempty"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		DateOfBirth:           formatDate(c.DateOfBirth),
		Age:                   c.Age(time.Now().UTC()),
		Gender:                c.Gender,
		Email:                 c.Email,
		AlternateEmail:        c.AlternateEmail,
		MobileNumber:          c.MobileNumber,
		AlternateMobileNumber: c.AlternateMobileNumber,
		Preferences:           c.Preferences,
		Allergies:             c.Allergies,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func toCustomerResponses(customers []domain.Customer) []customerResponse {
	responses := make([]customerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, toCustomerResponse(&customers[i]))
	}
	return responses
}

type measurementRequest struct {
	MeasuredOn *string `json:"measured_on"`
	Height     float64 `json:"height" binding:"required,gt=0"`
	Weight     float64 `json:"weight" binding:"required,gt=0"`

	BodyFatPercentage  *float64 `json:"body_fat_percentage"`
	WaistCircumference *float64 `json:"waist_circumference"`
	HipCircumference   *float64 `json:"hip_circumference"`
	ChestCircumference *float64 `json:"chest_circumference"`
	ArmCircumference   *float64 `json:"arm_circumference"`
	ThighCircumference *float64 `json:"thigh_circumference"`
}

func (r *measurementRequest) toDomain(customerID uuid.UUID) (*domain.BodyMeasurement, error) {
	measuredOn, err := parseOptionalDate("measured_on", r.MeasuredOn)
	if err != nil {
		return nil, err
	}

	measurement := &domain.BodyMeasurement{
		CustomerID:         customerID,
		Height:             r.Height,
		Weight:             r.Weight,
		BodyFatPercentage:  r.BodyFatPercentage,
		WaistCircumference: r.WaistCircumference,
		HipCircumference:   r.HipCircumference,
		ChestCircumference: r.ChestCircumference,
		ArmCircumference:   r.ArmCircumference,
		ThighCircumference: r.ThighCircumference,
	}
	if measuredOn != nil {
		measurement.MeasuredOn = *measuredOn
	}
	return measurement, nil
}

type measurementResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	MeasuredOn  string    `json:"measured_on"`
	Height      float64   `json:"height"`
	Weight      float64   `json:"weight"`
	BMI         float64   `json:"bmi"`
	BMICategory string    `json:"bmi_category"`

	BodyFatPercentage  *float64 `json:"body_fat_percentage,omitempty"`
	WaistCircumference *float64 `json:"waist_circumference,omitempty"`
	HipCircumference   *float64 `json:"hip_circumference,omitempty"`
	ChestCircumference *float64 `json:"chest_circumference,omitempty"`
	ArmCircumference   *float64 `json:"arm_circumference,omitempty"`
	ThighCircumference *float64 `json:"thigh_circumference,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toMeasurementResponse(m *domain.BodyMeasurement) measurementResponse {
	return measurementResponse{
		ID:                 m.ID,
		CustomerID:         m.CustomerID,
		MeasuredOn:         formatDate(m.MeasuredOn),
		Height:             m.Height,
		Weight:             m.Weight,
		BMI:                m.BMI(),
		BMICategory:        m.BMICategory(),
		BodyFatPercentage:  m.BodyFatPercentage,
		WaistCircumference: m.WaistCircumference,
		HipCircumference:   m.HipCircumference,
		ChestCircumference: m.ChestCircumference,
		ArmCircumference:   m.ArmCircumference,
		ThighCircumference: m.ThighCircumference,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toMeasurementResponses(measurements []domain.BodyMeasurement) []measurementResponse {
	responses := make([]measurementResponse, 0, len(measurements))
	for i := range measurements {
		responses = append(responses, toMeasurementResponse(&measurements[i]))
	}
	return responses
}

type analysisRequest struct {
	Notes      *string        `json:"notes"`
	AIAnalysis datatypes.JSON `json:"ai_analysis"`
}

type analysisResponse struct {
	ID                uuid.UUID      `json:"id"`
	BodyMeasurementID uuid.UUID      `json:"body_measurement_id"`
	Notes             *string        `json:"notes,omitempty"`
	AIAnalysis        datatypes.JSON `json:"ai_analysis,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func toAnalysisResponse(a *domain.BodyMeasurementAIAnalysis) analysisResponse {
	return analysisResponse{
		ID:                a.ID,
		BodyMeasurementID: a.BodyMeasurementID,
		Notes:             a.Notes,
		AIAnalysis:        a.AIAnalysis,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

type injuryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	FromDate    *string `json:"from_date"`
	ToDate      *string `json:"to_date"`

	Severity     *string        `json:"severity"`
	ImpactOnDiet datatypes.JSON `json:"impact_on_diet"`

	InjuryType       *string `json:"injury_type"`
	AffectedBodyPart *string `json:"affected_body_part"`
}

func (r *injuryRequest) toDomain(customerID uuid.UUID) (*domain.Injury, error) {
	fromDate, err := parseOptionalDate("from_date", r.FromDate)
	if err != nil {
		return nil, err
	}
	toDate, err := parseOptionalDate("to_date", r.ToDate)
	if err != nil {
		return nil, err
	}

	injury := &domain.Injury{
		CustomerID:       customerID,
		Name:             r.Name,
		Description:      r.Description,
		ToDate:           toDate,
		Severity:         r.Severity,
		ImpactOnDiet:     r.ImpactOnDiet,
		InjuryType:       r.InjuryType,
		AffectedBodyPart: r.AffectedBodyPart,
	}
	if fromDate != nil {
		injury.FromDate = *fromDate
	}
	return injury, nil
}

type injuryResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	FromDate    string    `json:"from_date"`
	ToDate      *string   `json:"to_date,omitempty"`
	IsActive    bool      `json:"is_active"`
	// DurationDays is omitted when the condition has no determinable duration.
	DurationDays *int `json:"duration_days,omitempty"`

	Severity     *string        `json:"severity,omitempty"`
	ImpactOnDiet datatypes.JSON `json:"impact_on_diet,omitempty"`

	InjuryType       *string `json:"injury_type,omitempty"`
	AffectedBodyPart *string `json:"affected_body_part,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toInjuryResponse(i *domain.Injury) injuryResponse {
	now := time.Now().UTC()
	response := injuryResponse{
		ID:               i.ID,
		CustomerID:       i.CustomerID,
		Name:             i.Name,
		Description:      i.Description,
		FromDate:         formatDate(i.FromDate),
		ToDate:           formatOptionalDate(i.ToDate),
		IsActive:         i.IsActive(now),
		Severity:         i.Severity,
		ImpactOnDiet:     i.ImpactOnDiet,
		InjuryType:       i.InjuryType,
		AffectedBodyPart: i.AffectedBodyPart,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
	if days, ok := i.DurationDays(now); ok {
		response.DurationDays = &days
	}
	return response
}

func toInjuryResponses(injuries []domain.Injury) []injuryResponse {
	responses := make([]injuryResponse, 0, len(injuries))
	for i := range injuries {
		responses = append(responses, toInjuryResponse(&injuries[i]))
	}
	return responses
}

type diseaseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	FromDate    *string `json:"from_date"`
	ToDate      *string `json:"to_date"`

	Severity     *string        `json:"severity"`
	ImpactOnDiet datatypes.JSON `json:"impact_on_diet"`

	DiagnosisDate *string        `json:"diagnosis_date"`
	Medications   datatypes.JSON `json:"medications"`
}

func (r *diseaseRequest) toDomain(customerID uuid.UUID) (*domain.Disease, error) {
	fromDate, err := parseOptionalDate("from_date", r.FromDate)
	if err != nil {
		return nil, err
	}
	toDate, err := parseOptionalDate("to_date", r.ToDate)
	if err != nil {
		return nil, err
	}
	diagnosisDate, err := parseOptionalDate("diagnosis_date", r.DiagnosisDate)
	if err != nil {
		return nil, err
	}

	disease := &domain.Disease{
		CustomerID:    customerID,
		Name:          r.Name,
		Description:   r.Description,
		ToDate:        toDate,
		Severity:      r.Severity,
		ImpactOnDiet:  r.ImpactOnDiet,
		DiagnosisDate: diagnosisDate,
		Medications:   r.Medications,
	}
	if fromDate != nil {
		disease.FromDate = *fromDate
	}
	return disease, nil
}

type diseaseResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	FromDate    string    `json:"from_date"`
	ToDate      *string   `json:"to_date,omitempty"`
	IsActive    bool      `json:"is_active"`
	// DurationDays is omitted when the condition has no determinable duration.
	DurationDays *int `json:"duration_days,omitempty"`

	Severity     *string        `json:"severity,omitempty"`
	ImpactOnDiet datatypes.JSON `json:"impact_on_diet,omitempty"`

	DiagnosisDate *string        `json:"diagnosis_date,omitempty"`
	Medications   datatypes.JSON `json:"medications,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDiseaseResponse(d *domain.Disease) diseaseResponse {
	now := time.Now().UTC()
	response := diseaseResponse{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		Name:          d.Name,
		Description:   d.Description,
		FromDate:      formatDate(d.FromDate),
		ToDate:        formatOptionalDate(d.ToDate),
		IsActive:      d.IsActive(now),
		Severity:      d.Severity,
		ImpactOnDiet:  d.ImpactOnDiet,
		DiagnosisDate: formatOptionalDate(d.DiagnosisDate),
		Medications:   d.Medications,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if days, ok := d.DurationDays(now); ok {
		response.DurationDays = &days
	}
	return response
}

func toDiseaseResponses(diseases []domain.Disease) []diseaseResponse {
	responses := make([]diseaseResponse, 0, len(diseases))
	for i := range diseases {
		responses = append(responses, toDiseaseResponse(&diseases[i]))
	}
	return responses
}
