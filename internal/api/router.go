package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine and routes
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		customers := v1.Group("/customers")
		{
			customers.GET("", h.ListCustomers)
			customers.POST("", h.CreateCustomer)
			// Registered before /:id so the literal segments win.
			customers.GET("/age-range", h.GetCustomersByAgeRange)
			customers.GET("/email/:email", h.GetCustomerByEmail)
			customers.GET("/mobile/:mobile", h.GetCustomerByMobile)
			customers.GET("/:id", h.GetCustomer)
			customers.PUT("/:id", h.UpdateCustomer)
			customers.DELETE("/:id", h.DeleteCustomer)

			customers.GET("/:id/measurements", h.ListCustomerMeasurements)
			customers.POST("/:id/measurements", h.CreateCustomerMeasurement)
			customers.GET("/:id/injuries", h.ListCustomerInjuries)
			customers.POST("/:id/injuries", h.CreateCustomerInjury)
			customers.GET("/:id/diseases", h.ListCustomerDiseases)
			customers.POST("/:id/diseases", h.CreateCustomerDisease)
		}

		measurements := v1.Group("/measurements")
		{
			measurements.GET("/:id", h.GetMeasurement)
			measurements.PUT("/:id", h.UpdateMeasurement)
			measurements.DELETE("/:id", h.DeleteMeasurement)
			measurements.POST("/:id/analysis", h.AttachMeasurementAnalysis)
			measurements.GET("/:id/analysis", h.GetMeasurementAnalysis)
		}

		injuries := v1.Group("/injuries")
		{
			injuries.GET("/:id", h.GetInjury)
			injuries.PUT("/:id", h.UpdateInjury)
			injuries.DELETE("/:id", h.DeleteInjury)
		}

		diseases := v1.Group("/diseases")
		{
			diseases.GET("/:id", h.GetDisease)
			diseases.PUT("/:id", h.UpdateDisease)
			diseases.DELETE("/:id", h.DeleteDisease)
		}
	}

	return r
}
