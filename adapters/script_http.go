package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/farism/mfe-host/helpers"
	"github.com/farism/mfe-host/service"

	"github.com/go-resty/resty/v2"
)

// ScriptHTTP creates an interfaces.ScriptSource downloading remote entry scripts over HTTP.
// Panics on a non-positive timeout.
func ScriptHTTP(timeout time.Duration) *scriptHTTP {
	return &scriptHTTP{
		client: resty.New().
			SetTimeout(helpers.MustPositive(timeout, "adapters.script_http.go: timeout must be positive")).
			SetRetryCount(0),
	}
}

type scriptHTTP struct {
	client *resty.Client
}

// FetchScript performs GET url and returns the body; non-2xx and transport failures are upstream_unavailable.
func (s *scriptHTTP) FetchScript(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, service.NewUpstreamUnavailableError("remote entry request failed", err)
	}
	if !resp.IsSuccess() {
		return nil, service.NewUpstreamUnavailableError(fmt.Sprintf("remote entry %s returned %d", url, resp.StatusCode()), nil)
	}
	return resp.Body(), nil
}
