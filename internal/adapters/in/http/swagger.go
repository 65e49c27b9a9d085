package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerSwagger sync.Once

// contractDoc feeds the loaded OpenAPI contract to the swag registry so that
// echo-swagger serves it as doc.json.
type contractDoc struct {
	raw string
}

func (d contractDoc) ReadDoc() string {
	return d.raw
}

// RegisterSwagger publishes doc under swag.Name. Only the first call has an effect.
func RegisterSwagger(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, contractDoc{raw: string(raw)})
	})
	return nil
}
