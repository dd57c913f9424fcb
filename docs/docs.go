// Package docs holds the OpenAPI description served at /swagger.
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
        "/geocode": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Resolve an address to coordinates",
                "parameters": [
                    {"description": "address to resolve", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GeocodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GeocodeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/reverse-geocode": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Resolve coordinates to an address",
                "parameters": [
                    {"description": "coordinates", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ReverseGeocodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ReverseGeocodeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/records": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Search listings, nearest first when a center is given",
                "parameters": [
                    {"type": "number", "description": "center latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "center longitude", "name": "lng", "in": "query"},
                    {"type": "number", "description": "search radius in km (default 5, max 50)", "name": "radiusKm", "in": "query"},
                    {"type": "string", "description": "city filter", "name": "city", "in": "query"},
                    {"type": "integer", "description": "page offset", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "page size (default 20, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ListingPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/records/{id}/location": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Set the coordinate of a listing",
                "parameters": [
                    {"type": "integer", "description": "listing id", "name": "id", "in": "path", "required": true},
                    {"description": "coordinate", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateLocationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UpdateLocationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/directions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["directions"],
                "summary": "Route from a position to a listing",
                "parameters": [
                    {"description": "origin and destination", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DirectionsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DirectionsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and database reachability",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "invalid request parameters"}}
        },
        "handler.GeocodeRequest": {
            "type": "object",
            "required": ["address"],
            "properties": {"address": {"type": "string", "example": "Koramangala, Bengaluru"}}
        },
        "handler.GeocodeResponse": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number", "example": 12.9352},
                "longitude": {"type": "number", "example": 77.6245},
                "formattedAddress": {"type": "string", "example": "Koramangala, Bengaluru, Karnataka, India"},
                "fromCache": {"type": "boolean"}
            }
        },
        "handler.ReverseGeocodeRequest": {
            "type": "object",
            "required": ["latitude", "longitude"],
            "properties": {
                "latitude": {"type": "number", "maximum": 90, "minimum": -90, "example": 12.9716},
                "longitude": {"type": "number", "maximum": 180, "minimum": -180, "example": 77.5946}
            }
        },
        "handler.ReverseGeocodeResponse": {
            "type": "object",
            "properties": {"formattedAddress": {"type": "string", "example": "MG Road, Bengaluru, Karnataka 560001, India"}}
        },
        "handler.UpdateLocationRequest": {
            "type": "object",
            "required": ["latitude", "longitude"],
            "properties": {
                "latitude": {"type": "number", "maximum": 90, "minimum": -90, "example": 12.9716},
                "longitude": {"type": "number", "maximum": 180, "minimum": -180, "example": 77.5946},
                "confirmed": {"type": "boolean"}
            }
        },
        "handler.UpdateLocationResponse": {
            "type": "object",
            "properties": {
                "recordId": {"type": "integer", "example": 42},
                "latitude": {"type": "number", "example": 12.9716},
                "longitude": {"type": "number", "example": 77.5946},
                "confirmed": {"type": "boolean"}
            }
        },
        "handler.DirectionsRequest": {
            "type": "object",
            "required": ["destinationRecordId", "originLat", "originLng"],
            "properties": {
                "originLat": {"type": "number", "maximum": 90, "minimum": -90, "example": 12.9716},
                "originLng": {"type": "number", "maximum": 180, "minimum": -180, "example": 77.5946},
                "destinationRecordId": {"type": "integer", "minimum": 1, "example": 42},
                "mode": {"type": "string", "enum": ["driving", "walking", "transit", "bicycling"], "example": "driving"}
            }
        },
        "handler.DirectionsResponse": {
            "type": "object",
            "properties": {
                "distanceText": {"type": "string", "example": "5.8 km"},
                "durationText": {"type": "string", "example": "18 mins"},
                "encodedPath": {"type": "string"},
                "distanceMeters": {"type": "integer", "example": 5800},
                "durationSeconds": {"type": "integer", "example": 1080},
                "startAddress": {"type": "string"},
                "endAddress": {"type": "string"}
            }
        },
        "models.Listing": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "area": {"type": "string"},
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "avgRating": {"type": "number"},
                "reviewCount": {"type": "integer"},
                "createdAt": {"type": "string"},
                "distanceKm": {"type": "number"}
            }
        },
        "models.ListingPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.Listing"}},
                "total": {"type": "integer"},
                "offset": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Location API",
	Description:      "Address resolution, proximity search and directions for listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
