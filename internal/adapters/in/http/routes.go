package http

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// RegisterHandlers mounts the health check, the API document and every
// operation of the API on e. Operations are validated against doc.
func RegisterHandlers(e *echo.Echo, s *Server, doc *openapi3.T) error {
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode openapi document: %w", err)
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", validator)
	api.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.RegisterOrder)
	api.POST("/orders/bulk", s.BulkRegisterOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/processes/:pid/start", s.StartProcess)
	api.POST("/orders/:id/processes/:pid/complete", s.CompleteProcess)

	api.GET("/dashboard", s.GetDashboard)

	api.GET("/processes", s.ListProcesses)
	api.POST("/processes", s.CreateProcess)
	api.PUT("/processes/:pid", s.UpdateProcess)
	api.DELETE("/processes/:pid", s.DeleteProcess)

	api.GET("/workers", s.ListWorkers)
	api.POST("/workers", s.RegisterWorker)
	api.PUT("/workers/:id", s.UpdateWorker)
	api.DELETE("/workers/:id", s.DeleteWorker)

	return nil
}
