package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListCustomers returns customers with pagination
func (h *Handler) ListCustomers(c *gin.Context) {
	skip, limit, ok := h.paginationParams(c)
	if !ok {
		return
	}

	customers, err := h.customers.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCustomerResponses(customers))
}

// CreateCustomer creates a new customer
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := req.toDomain()
	if err != nil {
		h.respondError(c, err)
		return
	}

	created, err := h.customers.Create(c.Request.Context(), customer)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(created))
}

// GetCustomer fetches a customer by id
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// UpdateCustomer applies a partial update to a customer
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var fields map[string]any
	if !bindJSON(c, &fields) {
		return
	}

	updated, err := h.customers.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(updated))
}

// DeleteCustomer removes a customer. Customers with dependent records are
// not deleted; the store's restrict-on-delete surfaces as a conflict.
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCustomerByEmail fetches a customer by email address
func (h *Handler) GetCustomerByEmail(c *gin.Context) {
	email := c.Param("email")

	customer, err := h.customers.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("customer with email %s not found", email)})
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// GetCustomerByMobile fetches a customer by mobile number
func (h *Handler) GetCustomerByMobile(c *gin.Context) {
	mobile := c.Param("mobile")

	customer, err := h.customers.GetByMobile(c.Request.Context(), mobile)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("customer with mobile number %s not found", mobile)})
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// GetCustomersByAgeRange lists customers whose age falls in [min_age, max_age]
func (h *Handler) GetCustomersByAgeRange(c *gin.Context) {
	minAge, err := strconv.Atoi(c.Query("min_age"))
	if err != nil || minAge < 0 {
		respondValidation(c, "min_age must be a non-negative integer")
		return
	}
	maxAge, err := strconv.Atoi(c.Query("max_age"))
	if err != nil || maxAge < 0 {
		respondValidation(c, "max_age must be a non-negative integer")
		return
	}
	if minAge > maxAge {
		respondValidation(c, "min_age cannot be greater than max_age")
		return
	}

	skip, limit, ok := h.paginationParams(c)
	if !ok {
		return
	}

	customers, err := h.customers.GetByAgeRange(c.Request.Context(), minAge, maxAge, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCustomerResponses(customers))
}
