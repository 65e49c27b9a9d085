// Package api holds the OpenAPI contract of the kitchenpos HTTP interface.
//
// The models and echo server wrapper in internal/generated/servers are produced
// from openapi.yml by oapi-codegen. The contract is loaded at runtime from the
// embedded copy, see servers.GetSwagger.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.types.yaml openapi.yml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.server.yaml openapi.yml

// OpenAPISpec is the raw YAML of openapi.yml.
//
//go:embed openapi.yml
var OpenAPISpec []byte
