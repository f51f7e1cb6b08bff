// Package openapi embeds the OpenAPI description of the Dios HTTP API.
// It is served at /openapi.yaml by the handler package.
package openapi

import _ "embed"

// Document contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var Document []byte
