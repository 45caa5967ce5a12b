// Package docs holds the generated Swagger spec served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/events/dates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List upcoming event dates",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events on a date",
                "parameters": [{"type": "string", "name": "date", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/events/day-view": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Day view with date tabs",
                "parameters": [{"type": "string", "name": "date", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/clubs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clubs"],
                "summary": "List clubs",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/clubs/{clubID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clubs"],
                "summary": "Get a club",
                "parameters": [{"type": "integer", "name": "clubID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/favorites": {
            "get": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "List liked clubs",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/favorites/{clubID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Check a liked club",
                "parameters": [{"type": "string", "name": "clubID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Toggle a liked club",
                "parameters": [{"type": "string", "name": "clubID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/recommendations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "summary": "Recommended events from liked clubs",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "clubnights API",
	Description:      "Event discovery API: date-bucketed event listings, club favorites, and recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
