// Package api holds the OpenAPI contract of the module host.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed module-host.openapi.yaml
var document []byte

// Load parses and validates the embedded OpenAPI document.
func Load() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("can't parse openapi document, err: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document, err: %w", err)
	}
	return doc, nil
}
