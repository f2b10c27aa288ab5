package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutricoach/nutricoach-api/internal/domain"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
)

// Handler exposes the record services over HTTP
type Handler struct {
	customers    domain.CustomerService
	measurements domain.MeasurementService
	injuries     domain.InjuryService
	diseases     domain.DiseaseService
	errs         *apperrors.Handler
	maxPageSize  int
}

func NewHandler(
	customers domain.CustomerService,
	measurements domain.MeasurementService,
	injuries domain.InjuryService,
	diseases domain.DiseaseService,
	errs *apperrors.Handler,
	maxPageSize int,
) *Handler {
	if maxPageSize < 1 {
		maxPageSize = 100
	}
	return &Handler{
		customers:    customers,
		measurements: measurements,
		injuries:     injuries,
		diseases:     diseases,
		errs:         errs,
		maxPageSize:  maxPageSize,
	}
}

// respondError maps the failure taxonomy onto HTTP statuses
func (h *Handler) respondError(c *gin.Context, err error) {
	h.errs.Handle(c.Request.Context(), err)

	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			status = http.StatusBadRequest
			message = appErr.Message
		case apperrors.ErrorTypeNotFound:
			status = http.StatusNotFound
			message = appErr.Message
		case apperrors.ErrorTypeConflict:
			status = http.StatusConflict
			message = appErr.Message
		}
	}

	c.JSON(status, gin.H{"error": message})
}

func respondValidation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondValidation(c, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(key))
	if err != nil {
		respondValidation(c, fmt.Sprintf("invalid %s", key))
		return uuid.Nil, false
	}
	return id, true
}

// paginationParams reads skip/limit query values bounded by the configured
// page-size cap
func (h *Handler) paginationParams(c *gin.Context) (skip, limit int, ok bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		respondValidation(c, "skip must be a non-negative integer")
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.maxPageSize)))
	if err != nil || limit < 1 || limit > h.maxPageSize {
		respondValidation(c, fmt.Sprintf("limit must be an integer between 1 and %d", h.maxPageSize))
		return 0, 0, false
	}

	return skip, limit, true
}
