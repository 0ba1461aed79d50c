package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RootHandler serves the HTML landing page listing available endpoints.
type RootHandler struct {
	docsAvailable bool
}

// NewRootHandler creates a new RootHandler instance. docsAvailable reports
// whether the OpenAPI spec file loaded at startup.
func NewRootHandler(docsAvailable bool) *RootHandler {
	return &RootHandler{docsAvailable: docsAvailable}
}

// Root handles GET /.
func (h *RootHandler) Root(c *gin.Context) {
	var b strings.Builder
	b.WriteString("<h1>CRE Mock API Server</h1>\n")
	b.WriteString("<p>Mock API endpoints available at /v1/...</p>\n")
	b.WriteString("<p>POST to /v1/reset-data to regenerate mock data.</p>\n")
	if h.docsAvailable {
		b.WriteString(`<p>Interactive docs available at <a href="/api-docs/index.html">/api-docs</a>.</p>` + "\n")
		b.WriteString(`<p>Raw OpenAPI spec available at <a href="/openapi.yaml">/openapi.yaml</a> and <a href="/openapi.json">/openapi.json</a>.</p>` + "\n")
	} else {
		b.WriteString("<p>(OpenAPI spec file failed to load; documentation endpoints are unavailable.)</p>\n")
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}
