// Package docs registers the OpenAPI description served at /swagger.
//
// This file follows the output layout of swaggo/swag and is meant to be
// regenerated from the handler annotations with:
//
//	swag init -g cmd/api/main.go -o docs
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
        "/api/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign up",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/signupRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/userEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/userEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorBody"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {"tags": ["auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}
        },
        "/api/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current account",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/userEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/api/admin/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Admin log in",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/userEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/api/admin/dashboard/stats": {
            "get": {
                "tags": ["admin-dashboard"],
                "summary": "Dashboard statistics",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Snapshot"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/api/cars": {
            "get": {
                "tags": ["catalog"],
                "summary": "List cars",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "brand", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/tracking/{code}": {
            "get": {
                "tags": ["tracking"],
                "summary": "Track document",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/api/rates": {
            "get": {
                "tags": ["rates"],
                "summary": "Exchange rate",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/api/admin/documents/preview": {
            "post": {
                "tags": ["admin-documents"],
                "summary": "Preview document",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/previewRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "errorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "signupRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72}
            }
        },
        "loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "userEnvelope": {
            "type": "object",
            "properties": {
                "user": {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "email": {"type": "string"},
                        "name": {"type": "string"},
                        "role": {"type": "string"},
                        "created_at": {"type": "string"}
                    }
                }
            }
        },
        "previewRequest": {
            "type": "object",
            "properties": {
                "documentId": {"type": "string"},
                "document": {"type": "object"}
            }
        },
        "domain.Snapshot": {
            "type": "object",
            "properties": {
                "stats": {
                    "type": "object",
                    "properties": {
                        "totalCars": {"type": "integer"},
                        "availableCars": {"type": "integer"},
                        "soldCars": {"type": "integer"},
                        "totalUsers": {"type": "integer"},
                        "totalOrders": {"type": "integer"},
                        "pendingOrders": {"type": "integer"},
                        "completedOrders": {"type": "integer"},
                        "totalRevenue": {"type": "number"},
                        "monthlyRevenue": {"type": "number"},
                        "categories": {"type": "integer"},
                        "activeTracking": {"type": "integer"}
                    }
                },
                "recentActivities": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "string"},
                            "type": {"type": "string", "enum": ["sale", "order", "update"]},
                            "message": {"type": "string"},
                            "time": {"type": "string"},
                            "icon": {"type": "string"}
                        }
                    }
                },
                "topSellingCars": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "string"},
                            "name": {"type": "string"},
                            "sales": {"type": "integer"},
                            "revenue": {"type": "number"}
                        }
                    }
                },
                "recentDocuments": {
                    "type": "array",
                    "items": {"type": "object"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dealership API",
	Description:      "Catalog, sales, documents and admin dashboard of the dealership back end.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
