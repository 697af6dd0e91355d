// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness and dependency status", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/register": {"post": {"tags": ["auth"], "summary": "Register new user and return JWT token", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/login": {"post": {"tags": ["auth"], "summary": "Authenticate user and return JWT token", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}}},
        "/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "End the current session", "responses": {"204": {"description": "No Content"}}}},
        "/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current session", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Update the profile of the signed-in user", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/customers": {"get": {"security": [{"BearerAuth": []}], "tags": ["customers"], "summary": "Filter and paginate customers", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/customers/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["customers"], "summary": "Customer profile with order history", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/orders": {"get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Filter and paginate orders", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/orders/calendar": {"get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Orders as calendar events", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/orders/export": {"get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Export orders as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "OK"}}}},
        "/orders/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Order with its customer and product", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/products": {"get": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Filter and paginate products", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/products/categories": {"get": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Distinct product categories", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/products/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Product with revenue and pending orders", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/reports/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Landing page metrics", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/reports/sales": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Calendar-year sales with best and worst month", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/reports/revenue": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Revenue trends, categories and top products", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/reports/customers": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Customer activity, segments and top customers", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/reports/orders": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Order volume, statuses and weekdays", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Back-office Analytics API",
	Description:      "Read-only reporting API over customers, orders and products.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
