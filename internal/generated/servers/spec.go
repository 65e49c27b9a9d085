package servers

import (
	"fmt"

	"kitchenpos/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the OpenAPI document embedded in the binary.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
