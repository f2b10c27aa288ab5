package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutricoach/nutricoach-api/internal/domain"
)

// ListCustomerMeasurements lists a customer's body measurements
func (h *Handler) ListCustomerMeasurements(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	skip, limit, ok := h.paginationParams(c)
	if !ok {
		return
	}

	if _, err := h.customers.GetByID(c.Request.Context(), customerID); err != nil {
		h.respondError(c, err)
		return
	}

	measurements, err := h.measurements.ListByCustomer(c.Request.Context(), customerID, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMeasurementResponses(measurements))
}

// CreateCustomerMeasurement records a new measurement for a customer
func (h *Handler) CreateCustomerMeasurement(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req measurementRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.customers.GetByID(c.Request.Context(), customerID); err != nil {
		h.respondError(c, err)
		return
	}

	measurement, err := req.toDomain(customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	created, err := h.measurements.Create(c.Request.Context(), measurement)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMeasurementResponse(created))
}

// GetMeasurement fetches a measurement by id
func (h *Handler) GetMeasurement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	measurement, err := h.measurements.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMeasurementResponse(measurement))
}

// UpdateMeasurement applies a partial update to a measurement
func (h *Handler) UpdateMeasurement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var fields map[string]any
	if !bindJSON(c, &fields) {
		return
	}

	updated, err := h.measurements.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMeasurementResponse(updated))
}

// DeleteMeasurement removes a measurement
func (h *Handler) DeleteMeasurement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.measurements.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AttachMeasurementAnalysis stores the opaque AI payload for a measurement
func (h *Handler) AttachMeasurementAnalysis(c *gin.Context) {
	measurementID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req analysisRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.measurements.GetByID(c.Request.Context(), measurementID); err != nil {
		h.respondError(c, err)
		return
	}

	analysis := &domain.BodyMeasurementAIAnalysis{
		BodyMeasurementID: measurementID,
		Notes:             req.Notes,
		AIAnalysis:        req.AIAnalysis,
	}

	created, err := h.measurements.AttachAnalysis(c.Request.Context(), analysis)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAnalysisResponse(created))
}

// GetMeasurementAnalysis fetches the AI payload attached to a measurement
func (h *Handler) GetMeasurementAnalysis(c *gin.Context) {
	measurementID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	analysis, err := h.measurements.GetAnalysis(c.Request.Context(), measurementID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAnalysisResponse(analysis))
}
