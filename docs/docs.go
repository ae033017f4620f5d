// Package docs registers the OpenAPI description served at /swagger.
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
        "/Products/GetProducts": {
            "get": {
                "description": "Proxies the upstream catalog with category, search and pagination applied server-side. Upstream failures return an empty listing.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "pageSize", "in": "query"},
                    {"type": "string", "default": "all", "description": "Category name or all", "name": "category", "in": "query"},
                    {"type": "string", "description": "Case-insensitive title substring", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProductListResponse"}}
                }
            }
        },
        "/Products/GetProduct": {
            "get": {
                "description": "Fetches one product freshly from upstream",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Product"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/Products/GetCategories": {
            "get": {
                "description": "Category names with \"all\" first. Upstream failures return just \"all\".",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/Products/Detail": {
            "get": {
                "description": "Renders the overlay fragment from a fresh fetch. A response overtaken by a newer request from the same browser is answered 409.",
                "produces": ["text/html"],
                "tags": ["products"],
                "summary": "Product detail overlay",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML fragment", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}},
                    "409": {"description": "superseded", "schema": {"type": "string"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "string"}}
                }
            }
        },
        "/api/ProductsApi": {
            "get": {
                "description": "Same listing as /Products/GetProducts wrapped in the standard response envelope",
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "List products (API envelope)",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "pageSize", "in": "query"},
                    {"type": "string", "description": "Category name or all", "name": "category", "in": "query"},
                    {"type": "string", "description": "Case-insensitive title substring", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/api/ProductsApi/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "Get a product (API envelope)",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/Cart": {
            "get": {
                "description": "Renders the cart page, or the cart summary when JSON is requested",
                "produces": ["text/html", "application/json"],
                "tags": ["cart"],
                "summary": "Show the cart",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CartSummary"}}
                }
            }
        },
        "/Cart/Checkout": {
            "post": {
                "description": "Reports the cart total. No order is placed and nothing is charged.",
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Checkout stub",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/Storefront/Actions": {
            "post": {
                "description": "Runs view, add-to-cart, remove, update-quantity or page-change and returns the re-rendered pieces",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Perform a storefront action",
                "parameters": [
                    {"description": "Action", "name": "action", "in": "body", "required": true, "schema": {"$ref": "#/definitions/action_controller.ActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/action_controller.ActionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "507": {"description": "Insufficient Storage", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Rating": {
            "type": "object",
            "properties": {
                "rate": {"type": "number", "example": 3.9},
                "count": {"type": "integer", "example": 120}
            }
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Fjallraven - Foldsack No. 1 Backpack"},
                "price": {"type": "number", "example": 109.95},
                "description": {"type": "string"},
                "category": {"type": "string", "example": "men's clothing"},
                "image": {"type": "string"},
                "rating": {"$ref": "#/definitions/models.Rating"}
            }
        },
        "models.ProductSnapshot": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string"},
                "image": {"type": "string"}
            }
        },
        "models.ProductListResponse": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}},
                "totalCount": {"type": "integer", "example": 20},
                "pageSize": {"type": "integer", "example": 10},
                "currentPage": {"type": "integer", "example": 1},
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.CartItem": {
            "type": "object",
            "properties": {
                "product": {"$ref": "#/definitions/models.ProductSnapshot"},
                "quantity": {"type": "integer", "example": 2}
            }
        },
        "models.CartSummary": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.CartItem"}},
                "totalItems": {"type": "integer", "example": 3},
                "totalAmount": {"type": "number", "example": 42.5}
            }
        },
        "models.Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer", "example": 1},
                "limit": {"type": "integer", "example": 10},
                "total": {"type": "integer", "example": 20},
                "total_pages": {"type": "integer", "example": 2}
            }
        },
        "models.RateLimiter": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "remaining": {"type": "integer"},
                "reset_at": {"type": "string"},
                "reset_in_seconds": {"type": "integer"}
            }
        },
        "models.ApiResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {},
                "error": {"type": "boolean"},
                "meta": {"$ref": "#/definitions/models.Pagination"},
                "rate_limit": {"$ref": "#/definitions/models.RateLimiter"},
                "requested_entity": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "action_controller.ActionRequest": {
            "type": "object",
            "required": ["kind"],
            "properties": {
                "kind": {"type": "string", "enum": ["view", "add-to-cart", "remove", "update-quantity", "page-change"], "example": "add-to-cart"},
                "productId": {"type": "integer", "example": 1},
                "quantity": {"type": "integer", "example": 2},
                "page": {"type": "integer", "example": 1},
                "category": {"type": "string", "example": "all"},
                "search": {"type": "string"}
            }
        },
        "action_controller.ActionResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "html": {"type": "string"},
                "cart": {"$ref": "#/definitions/models.CartSummary"},
                "badge": {"$ref": "#/definitions/views.Badge"},
                "toast": {"type": "string"},
                "token": {"type": "integer"}
            }
        },
        "views.Badge": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "hidden": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Modeva Storefront API",
	Description:      "Catalog browser and cart over the fake store catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
