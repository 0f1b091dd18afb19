package swagger

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	httpSwagger "github.com/swaggo/http-swagger"
)

func Handler() http.Handler {
	// Serve the OpenAPI spec from api/openapi.yml
	return httpSwagger.Handler(
		httpSwagger.URL("/openapi.yml"), // URL to the OpenAPI spec served at root
	)
}

// ValidateSpec loads and validates the OpenAPI document so a broken spec is
// caught at startup rather than when the swagger UI first loads it.
func ValidateSpec(ctx context.Context, path string) error {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return err
	}

	return doc.Validate(ctx)
}
