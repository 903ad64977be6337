package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHostError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewHostError(ErrBadParameter, "invalid override", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid override", e.Message)
	assert.Same(t, inner, e.Inner)
	assert.Equal(t, "bad_parameter invalid override: underlying", e.Error())
}

func TestNewInternalServerError_KeepsWrappedHostError(t *testing.T) {
	notFound := NewEntityNotFoundError("module not found", nil)
	e := NewInternalServerError("store failed", fmt.Errorf("wrapped: %w", notFound))
	assert.Same(t, notFound, e)
	assert.True(t, IsEntityNotFoundError(e))
}

func TestNewUpstreamUnavailableError(t *testing.T) {
	e := NewUpstreamUnavailableError("manifest fetch failed", nil)
	assert.Equal(t, ErrUpstreamUnavailable, e.Code)
	assert.Equal(t, "upstream_unavailable manifest fetch failed", e.Error())
	assert.True(t, IsUpstreamUnavailableError(e))
}

func TestToHostError(t *testing.T) {
	t.Run("host error", func(t *testing.T) {
		e := NewBadParameterError("bad", nil)
		got := ToHostError(fmt.Errorf("ctx: %w", e))
		require.NotNil(t, got)
		assert.Same(t, e, got)
		assert.Equal(t, ErrBadParameter, ToHostErrorCode(e))
	})

	t.Run("ordinary error", func(t *testing.T) {
		e := errors.New("plain")
		assert.Nil(t, ToHostError(e))
		assert.Empty(t, ToHostErrorCode(e))
		assert.False(t, IsInternalServerError(e))
	})
}
