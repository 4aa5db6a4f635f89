// Package docs holds the OpenAPI document served by the swagger UI.
// The template is maintained by hand alongside the route table in cmd/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up a new user",
                "responses": {
                    "201": {"description": "User registered and session token issued"},
                    "400": {"description": "Invalid input"},
                    "409": {"description": "Email already registered"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "responses": {
                    "200": {"description": "User authenticated and session token issued"},
                    "400": {"description": "Invalid input"},
                    "401": {"description": "Invalid credentials"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Get user profile",
                "responses": {
                    "200": {"description": "User profile"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "Dashboard summary"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/entries": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Create a financial entry",
                "responses": {
                    "201": {"description": "Entry created"},
                    "400": {"description": "Invalid input"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "List financial entries",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Page of entries plus totalAmount"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/entries/daily": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Daily entry summary",
                "responses": {
                    "200": {"description": "Entries grouped by day"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/entries/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Delete a financial entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Deleted entry"},
                    "404": {"description": "Entry not found"}
                }
            }
        },
        "/journal": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Create a journal entry",
                "responses": {
                    "201": {"description": "Journal entry created"},
                    "400": {"description": "Invalid input"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "List journal entries",
                "responses": {
                    "200": {"description": "Journal entries"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/journal/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Get journal entry by ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Journal entry"},
                    "404": {"description": "Entry not found"}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Update a journal entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Updated entry"},
                    "400": {"description": "Invalid input or no fields supplied"},
                    "404": {"description": "Entry not found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Delete a journal entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Deleted entry"},
                    "404": {"description": "Entry not found"}
                }
            }
        },
        "/categories": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "responses": {
                    "201": {"description": "Category created"},
                    "400": {"description": "Invalid input"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "Categories"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/categories/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Deleted category"},
                    "404": {"description": "Category not found"},
                    "409": {"description": "Category still referenced by to-do items"}
                }
            }
        },
        "/todos": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Create a to-do item",
                "responses": {
                    "201": {"description": "To-do created"},
                    "400": {"description": "Invalid input"},
                    "404": {"description": "Category not found"}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "List to-do items",
                "responses": {
                    "200": {"description": "To-do items"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/todos/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Update a to-do item",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Updated to-do"},
                    "400": {"description": "Invalid input or no fields supplied"},
                    "404": {"description": "To-do not found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Delete a to-do item",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Deleted to-do"},
                    "404": {"description": "To-do not found"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the session token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Dango Tracker API",
	Description:      "Dango Tracker is a personal finance, journal, and to-do tracking application.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
