package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/nutricoach-api/internal/domain"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"github.com/nutricoach/nutricoach-api/internal/repository"
	"gorm.io/gorm"
)

// MeasurementService handles body measurements and the optional AI analysis
// record attached to each measurement
type MeasurementService struct {
	measurements *repository.Repository[domain.BodyMeasurement]
	analyses     *repository.Repository[domain.BodyMeasurementAIAnalysis]
}

func NewMeasurementService(db *gorm.DB, maxPageSize int) *MeasurementService {
	return &MeasurementService{
		measurements: repository.New[domain.BodyMeasurement](db, maxPageSize),
		analyses:     repository.New[domain.BodyMeasurementAIAnalysis](db, maxPageSize),
	}
}

func validateMeasurement(height, weight float64) error {
	if height <= 0 {
		return apperrors.NewValidationError("height must be greater than zero").
			WithContext("field", "height")
	}
	if weight <= 0 {
		return apperrors.NewValidationError("weight must be greater than zero").
			WithContext("field", "weight")
	}
	return nil
}

func (s *MeasurementService) Create(ctx context.Context, measurement *domain.BodyMeasurement) (*domain.BodyMeasurement, error) {
	if err := validateMeasurement(measurement.Height, measurement.Weight); err != nil {
		return nil, err
	}
	if measurement.MeasuredOn.IsZero() {
		measurement.MeasuredOn = time.Now().UTC()
	}

	if err := s.measurements.Create(ctx, measurement); err != nil {
		return nil, err
	}
	return measurement, nil
}

func (s *MeasurementService) GetByID(ctx context.Context, id uuid.UUID) (*domain.BodyMeasurement, error) {
	return s.measurements.GetByID(ctx, id)
}

func (s *MeasurementService) List(ctx context.Context, skip, limit int) ([]domain.BodyMeasurement, error) {
	return s.measurements.List(ctx, skip, limit)
}

func (s *MeasurementService) ListByCustomer(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]domain.BodyMeasurement, error) {
	return s.measurements.ListWhere(ctx, skip, limit, "customer_id = ?", customerID)
}

func (s *MeasurementService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.BodyMeasurement, error) {
	for _, field := range []string{"height", "weight"} {
		value, present, err := numberField(fields, field)
		if err != nil {
			return nil, err
		}
		if present && value <= 0 {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("%s must be greater than zero", field)).WithContext("field", field)
		}
	}

	if err := parseDateFields(fields, "measured_on"); err != nil {
		return nil, err
	}

	return s.measurements.Update(ctx, id, fields)
}

func (s *MeasurementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.measurements.Delete(ctx, id)
}

// AttachAnalysis stores an AI payload for a measurement. A measurement holds
// at most one analysis; attaching a second one is a conflict.
func (s *MeasurementService) AttachAnalysis(ctx context.Context, analysis *domain.BodyMeasurementAIAnalysis) (*domain.BodyMeasurementAIAnalysis, error) {
	existing, err := s.analyses.FindOne(ctx, "body_measurement_id = ?", analysis.BodyMeasurementID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("measurement already has an analysis attached").
			WithContext("body_measurement_id", analysis.BodyMeasurementID.String())
	}

	if err := s.analyses.Create(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

func (s *MeasurementService) GetAnalysis(ctx context.Context, measurementID uuid.UUID) (*domain.BodyMeasurementAIAnalysis, error) {
	analysis, err := s.analyses.FindOne(ctx, "body_measurement_id = ?", measurementID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, apperrors.NewNotFoundError("measurement has no analysis attached").
			WithContext("body_measurement_id", measurementID.String())
	}
	return analysis, nil
}
