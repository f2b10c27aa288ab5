package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCustomerInjuries lists a customer's injuries; ?active=true keeps only
// conditions with no end date or an end date on/after today
func (h *Handler) ListCustomerInjuries(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.customers.GetByID(c.Request.Context(), customerID); err != nil {
		h.respondError(c, err)
		return
	}

	if c.Query("active") == "true" {
		injuries, err := h.injuries.ListActive(c.Request.Context(), customerID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toInjuryResponses(injuries))
		return
	}

	skip, limit, ok := h.paginationParams(c)
	if !ok {
		return
	}

	injuries, err := h.injuries.ListByCustomer(c.Request.Context(), customerID, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInjuryResponses(injuries))
}

// CreateCustomerInjury records a new injury for a customer
func (h *Handler) CreateCustomerInjury(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req injuryRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.customers.GetByID(c.Request.Context(), customerID); err != nil {
		h.respondError(c, err)
		return
	}

	injury, err := req.toDomain(customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	created, err := h.injuries.Create(c.Request.Context(), injury)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toInjuryResponse(created))
}

// GetInjury fetches an injury by id
func (h *Handler) GetInjury(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	injury, err := h.injuries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInjuryResponse(injury))
}

// UpdateInjury applies a partial update to an injury
func (h *Handler) UpdateInjury(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var fields map[string]any
	if !bindJSON(c, &fields) {
		return
	}

	updated, err := h.injuries.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInjuryResponse(updated))
}

// DeleteInjury removes an injury
func (h *Handler) DeleteInjury(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.injuries.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCustomerDiseases lists a customer's diseases; ?active=true keeps only
// conditions with no end date or an end date on/after today
func (h *Handler) ListCustomerDiseases(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.customers.GetByID(c.Request.Context(), customerID); err != nil {
		h.respondError(c, err)
		return
	}

	if c.Query("active") == "true" {
		diseases, err := h.diseases.ListActive(c.Request.Context(), customerID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toDiseaseResponses(diseases))
		return
	}

	skip, limit, ok := h.paginationParams(c)
	if !ok {
		return
	}

	diseases, err := h.diseases.ListByCustomer(c.Request.Context(), customerID, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDiseaseResponses(diseases))
}

// CreateCustomerDisease records a new disease for a customer
func (h *Handler) CreateCustomerDisease(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req diseaseRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.customers.GetByID(c.Request.Context(), customerID); err != nil {
		h.respondError(c, err)
		return
	}

	disease, err := req.toDomain(customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	created, err := h.diseases.Create(c.Request.Context(), disease)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDiseaseResponse(created))
}

// GetDisease fetches a disease by id
func (h *Handler) GetDisease(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	disease, err := h.diseases.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDiseaseResponse(disease))
}

// UpdateDisease applies a partial update to a disease
func (h *Handler) UpdateDisease(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var fields map[string]any
	if !bindJSON(c, &fields) {
		return
	}

	updated, err := h.diseases.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDiseaseResponse(updated))
}

// DeleteDisease removes a disease
func (h *Handler) DeleteDisease(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.diseases.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
