// Package openapi loads the static API description and serves the
// documentation endpoints. A load failure degrades only these endpoints;
// the query API keeps serving without them.
package openapi

import (
	"fmt"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Docs holds the parsed specification and its raw renderings.
type Docs struct {
	doc      *openapi3.T
	yamlSpec []byte
	jsonSpec []byte
}

// Load reads and validates the OpenAPI specification file at path.
func Load(path string) (*Docs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("spec file %s is not a valid OpenAPI document: %w", path, err)
	}

	jsonSpec, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render spec as JSON: %w", err)
	}

	return &Docs{
		doc:      doc,
		yamlSpec: raw,
		jsonSpec: jsonSpec,
	}, nil
}

// Title returns the API title from the loaded document.
func (d *Docs) Title() string {
	if d.doc.Info == nil {
		return ""
	}
	return d.doc.Info.Title
}

// Register mounts the documentation routes: the raw YAML and JSON spec
// plus the interactive UI.
func (d *Docs) Register(router *gin.Engine) {
	router.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", d.yamlSpec)
	})
	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", d.jsonSpec)
	})
	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json")))
}
