// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package docs registers the Swagger 2.0 description of the HTTP API with
// swag so that http-swagger can serve it at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "AGPL-3.0-or-later"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recommend/similar/{itemID}": {
            "get": {
                "summary": "Items most similar to a product",
                "tags": ["recommend"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/itemID"},
                    {"$ref": "#/parameters/n"}
                ],
                "responses": {
                    "200": {"$ref": "#/responses/recommendations"},
                    "400": {"$ref": "#/responses/error"},
                    "503": {"$ref": "#/responses/error"}
                }
            }
        },
        "/recommend/user/{userID}": {
            "get": {
                "summary": "Hybrid recommendations for a user",
                "tags": ["recommend"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/userID"},
                    {"$ref": "#/parameters/n"}
                ],
                "responses": {
                    "200": {"$ref": "#/responses/recommendations"},
                    "400": {"$ref": "#/responses/error"},
                    "503": {"$ref": "#/responses/error"}
                }
            }
        },
        "/recommend/user/{userID}/collaborative": {
            "get": {
                "summary": "Collaborative recommendations for a user",
                "description": "Users without ratings or neighbors receive the popularity ranking with outcome fallback.",
                "tags": ["recommend"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/userID"},
                    {"$ref": "#/parameters/n"}
                ],
                "responses": {
                    "200": {"$ref": "#/responses/recommendations"},
                    "400": {"$ref": "#/responses/error"},
                    "503": {"$ref": "#/responses/error"}
                }
            }
        },
        "/recommend/popular": {
            "get": {
                "summary": "Highest rated products",
                "tags": ["recommend"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/n"}
                ],
                "responses": {
                    "200": {"$ref": "#/responses/recommendations"},
                    "400": {"$ref": "#/responses/error"},
                    "503": {"$ref": "#/responses/error"}
                }
            }
        },
        "/products": {
            "get": {
                "summary": "Full catalog in ascending id order",
                "tags": ["products"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "models.ProductList in the response envelope"},
                    "503": {"$ref": "#/responses/error"}
                }
            }
        },
        "/products/{itemID}": {
            "get": {
                "summary": "One product",
                "tags": ["products"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/itemID"}
                ],
                "responses": {
                    "200": {"description": "models.Product in the response envelope"},
                    "400": {"$ref": "#/responses/error"},
                    "404": {"$ref": "#/responses/error"}
                }
            }
        },
        "/engine/stats": {
            "get": {
                "summary": "Snapshot version and build statistics",
                "tags": ["engine"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "models.EngineStats in the response envelope"},
                    "503": {"$ref": "#/responses/error"}
                }
            }
        }
    },
    "parameters": {
        "itemID": {"name": "itemID", "in": "path", "required": true, "type": "integer"},
        "userID": {"name": "userID", "in": "path", "required": true, "type": "integer"},
        "n": {"name": "n", "in": "query", "type": "integer", "minimum": 1, "description": "Result count, defaults to recommend.default_n and is capped by recommend.max_n"}
    },
    "responses": {
        "recommendations": {
            "description": "models.RecommendationList in the response envelope",
            "schema": {"$ref": "#/definitions/models.APIResponse"}
        },
        "error": {
            "description": "Error envelope",
            "schema": {"$ref": "#/definitions/models.APIResponse"}
        }
    },
    "definitions": {
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["success", "error"]},
                "data": {"type": "object"},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string", "format": "date-time"},
                "query_time_ms": {"type": "integer"},
                "cached": {"type": "boolean"},
                "snapshot_version": {"type": "integer"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Shelfwise API",
	Description:      "Hybrid product recommendations: content similarity, collaborative filtering and popularity.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
