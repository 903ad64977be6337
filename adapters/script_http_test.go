package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/farism/mfe-host/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptHTTP_FetchScript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/app2.js" {
			_, _ = w.Write([]byte(`var app2 = {};`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := ScriptHTTP(time.Second)

	src, err := s.FetchScript(context.Background(), srv.URL+"/app2.js")
	require.NoError(t, err)
	assert.Equal(t, "var app2 = {};", string(src))

	_, err = s.FetchScript(context.Background(), srv.URL+"/missing.js")
	require.Error(t, err)
	assert.True(t, service.IsUpstreamUnavailableError(err))
}

func TestScriptHTTP_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.script_http.go: timeout must be positive", func() {
		ScriptHTTP(-time.Second)
	})
}
