// Package docs registers the swagger document of the API.
// Regenerate with `swag init -g cmd/ratechart_backend/main.go -o cmd/docs`.
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
        "/interestratecharts/{chart_id}/chartslabs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves every slab of the chart together with its incentives",
                "produces": ["application/json"],
                "tags": ["interest rate chart slabs"],
                "summary": "List the slabs of an interest rate chart",
                "parameters": [
                    {"type": "integer", "description": "Interest rate chart ID", "name": "chart_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.RateSlabResponse"}}},
                    "400": {"description": "Invalid chart ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to retrieve slabs", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/interestratecharts/{chart_id}/chartslabs/template": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves the option lists needed to create a slab",
                "produces": ["application/json"],
                "tags": ["interest rate chart slabs"],
                "summary": "Get the template for a new interest rate chart slab",
                "parameters": [
                    {"type": "integer", "description": "Interest rate chart ID", "name": "chart_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateSlabTemplateResponse"}},
                    "400": {"description": "Invalid chart ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to retrieve template", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/interestratecharts/{chart_id}/chartslabs/{slab_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves one slab of the chart. With template=true the response also carries the option lists needed to edit it.",
                "produces": ["application/json"],
                "tags": ["interest rate chart slabs"],
                "summary": "Get an interest rate chart slab",
                "parameters": [
                    {"type": "integer", "description": "Interest rate chart ID", "name": "chart_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Slab ID", "name": "slab_id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Include template option lists", "name": "template", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Slab with template (template=true)", "schema": {"$ref": "#/definitions/dto.RateSlabTemplateResponse"}},
                    "400": {"description": "Invalid chart or slab ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Slab not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to retrieve slab", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.EnumOptionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "code": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "dto.CodeValueResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "position": {"type": "integer"},
                "active": {"type": "boolean"}
            }
        },
        "dto.CurrencyResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "nameCode": {"type": "string"},
                "displaySymbol": {"type": "string"},
                "decimalPlaces": {"type": "integer"},
                "inMultiplesOf": {"type": "integer"}
            }
        },
        "dto.IncentiveResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "entityType": {"$ref": "#/definitions/dto.EnumOptionResponse"},
                "attributeName": {"$ref": "#/definitions/dto.EnumOptionResponse"},
                "conditionType": {"$ref": "#/definitions/dto.EnumOptionResponse"},
                "attributeValue": {"type": "string"},
                "attributeValueDesc": {"type": "string"},
                "incentiveType": {"$ref": "#/definitions/dto.EnumOptionResponse"},
                "amount": {"type": "number"}
            }
        },
        "dto.RateSlabResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "description": {"type": "string"},
                "periodType": {"$ref": "#/definitions/dto.EnumOptionResponse"},
                "fromPeriod": {"type": "integer"},
                "toPeriod": {"type": "integer"},
                "amountRangeFrom": {"type": "number"},
                "amountRangeTo": {"type": "number"},
                "annualInterestRate": {"type": "number"},
                "currency": {"$ref": "#/definitions/dto.CurrencyResponse"},
                "incentives": {"type": "array", "items": {"$ref": "#/definitions/dto.IncentiveResponse"}}
            }
        },
        "dto.RateSlabTemplateResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "description": {"type": "string"},
                "periodType": {"$ref": "#/definitions/dto.EnumOptionResponse"},
                "fromPeriod": {"type": "integer"},
                "toPeriod": {"type": "integer"},
                "amountRangeFrom": {"type": "number"},
                "amountRangeTo": {"type": "number"},
                "annualInterestRate": {"type": "number"},
                "currency": {"$ref": "#/definitions/dto.CurrencyResponse"},
                "incentives": {"type": "array", "items": {"$ref": "#/definitions/dto.IncentiveResponse"}},
                "periodTypes": {"type": "array", "items": {"$ref": "#/definitions/dto.EnumOptionResponse"}},
                "entityTypeOptions": {"type": "array", "items": {"$ref": "#/definitions/dto.EnumOptionResponse"}},
                "attributeNameOptions": {"type": "array", "items": {"$ref": "#/definitions/dto.EnumOptionResponse"}},
                "conditionTypeOptions": {"type": "array", "items": {"$ref": "#/definitions/dto.EnumOptionResponse"}},
                "incentiveTypeOptions": {"type": "array", "items": {"$ref": "#/definitions/dto.EnumOptionResponse"}},
                "genderOptions": {"type": "array", "items": {"$ref": "#/definitions/dto.CodeValueResponse"}},
                "clientTypeOptions": {"type": "array", "items": {"$ref": "#/definitions/dto.CodeValueResponse"}},
                "clientClassificationOptions": {"type": "array", "items": {"$ref": "#/definitions/dto.CodeValueResponse"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	Title:            "Rate Chart Backend API",
	Description:      "Read API for interest rate chart slabs and their incentives.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
