package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farism/mfe-host/api"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)
	validator, err := RequestValidator(doc, APIPrefix)
	require.NoError(t, err)

	ok := func(ectx echo.Context) error { return ectx.NoContent(http.StatusOK) }

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantReject bool
	}{
		{name: "valid body", method: http.MethodPost, target: "/v1/overrides", body: `{"name":"a","url":"u","module":"./App","paths":["p"]}`},
		{name: "string paths", method: http.MethodPost, target: "/v1/overrides", body: `{"name":"a","url":"u","module":"./App","paths":"p,q"}`},
		{name: "empty name", method: http.MethodPost, target: "/v1/overrides", body: `{"name":"","url":"u","module":"./App","paths":["p"]}`, wantReject: true},
		{name: "missing body", method: http.MethodPost, target: "/v1/overrides", wantReject: true},
		{name: "extra query parameters", method: http.MethodGet, target: "/v1/registry?mfe_branch_app2=feature-x"},
		{name: "bad path parameter", method: http.MethodGet, target: "/v1/remotes/a!b", wantReject: true},
		{name: "outside prefix", method: http.MethodGet, target: "/webclient/app2"},
		{name: "unknown operation", method: http.MethodGet, target: "/v1/unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}
			ectx := echo.New().NewContext(req, httptest.NewRecorder())

			err := validator(ok)(ectx)
			if !tt.wantReject {
				assert.NoError(t, err)
				return
			}

			var he *echo.HTTPError
			require.True(t, errors.As(err, &he))
			assert.Equal(t, http.StatusBadRequest, he.Code)
			var reqErr *openapi3filter.RequestError
			assert.True(t, errors.As(he.Internal, &reqErr))
		})
	}
}
