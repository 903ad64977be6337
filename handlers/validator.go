package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// RequestValidator validates requests under prefix against the OpenAPI document.
// Invalid requests are rejected with 400 wrapping the openapi3filter error. Requests
// that match no operation are passed on so that echo answers them.
func RequestValidator(doc *openapi3.T, prefix string) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("can't build openapi router, err: %w", err)
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			req := ectx.Request()
			if !strings.HasPrefix(req.URL.Path, prefix) {
				return next(ectx)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ectx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "request does not match the api contract").SetInternal(err)
			}
			return next(ectx)
		}
	}, nil
}
