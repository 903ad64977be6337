package handlers

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

const (
	// APIPrefix is the path prefix of the operations validated against the OpenAPI document.
	APIPrefix = "/v1/"
	// MetricsPath serves the Prometheus metrics.
	MetricsPath = "/metrics"
)

// RegisterRoutes installs the client scope and request validation middleware, the API
// operations, the metrics endpoint and the catch-all mount route on e.
func RegisterRoutes(e *echo.Echo, server *HTTPServer, doc *openapi3.T, metrics http.Handler) error {
	validator, err := RequestValidator(doc, APIPrefix)
	if err != nil {
		return err
	}

	e.Use(ClientScope(MetricsPath), validator)
	RegisterHandlers(e, server)
	e.GET(MetricsPath, echo.WrapHandler(metrics))
	e.GET("/*", server.Mount)
	return nil
}
