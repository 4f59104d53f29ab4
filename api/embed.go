// Package api holds the OpenAPI 3 description of the HTTP interface. The document drives
// request validation and the Swagger UI.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPISpec []byte
