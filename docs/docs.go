// Package docs registers the OpenAPI document served at /swagger.
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
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Organizer login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/tournament": {
            "get": {"tags": ["tournament"], "summary": "Current tournament settings and progress", "responses": {"200": {"description": "OK"}}}
        },
        "/tournament/overview": {
            "get": {"tags": ["tournament"], "summary": "Tournament, registrations, schedule and standings in one response", "responses": {"200": {"description": "OK"}}}
        },
        "/tournament/preview": {
            "get": {"tags": ["tournament"], "summary": "Number of matches the current registrations would produce", "responses": {"200": {"description": "OK"}}}
        },
        "/tournament/settings": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["tournament"], "summary": "Change settings before the tournament is created", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/tournament/create": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["tournament"], "summary": "Freeze registrations and generate the round-robin schedule", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/tournament/reset": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["tournament"], "summary": "Clear every registration, match and setting", "responses": {"204": {"description": "No Content"}}}
        },
        "/competitors": {
            "get": {"tags": ["competitors"], "summary": "Registered competitors", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["competitors"], "summary": "Register a competitor", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/competitors/{competitorID}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["competitors"], "summary": "Unregister a competitor and drop its teams", "parameters": [{"type": "string", "name": "competitorID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/teams": {
            "get": {"tags": ["teams"], "summary": "Doubles teams", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["teams"], "summary": "Declare a team of two registered competitors", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/teams/draw": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["teams"], "summary": "Pair all competitors into random teams", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/teams/{teamID}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["teams"], "summary": "Remove a team", "parameters": [{"type": "string", "name": "teamID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/matches": {
            "get": {"tags": ["matches"], "summary": "Schedule with resolved names", "parameters": [{"type": "integer", "name": "round", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/matches/{matchID}/result": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["matches"], "summary": "Enter or correct the score of a match", "parameters": [{"type": "integer", "name": "matchID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/standings": {
            "get": {"tags": ["standings"], "summary": "Ranked table with derived rates", "responses": {"200": {"description": "OK"}}}
        },
        "/export": {
            "get": {"tags": ["transfer"], "summary": "Download the tournament as a JSON document", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/export/archive": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["transfer"], "summary": "Store an export in object storage", "responses": {"201": {"description": "Created"}, "503": {"description": "Service Unavailable"}}}
        },
        "/import": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["transfer"], "summary": "Replace the tournament with an exported document", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tournament League API",
	Description:      "Round-robin league: registrations, fixtures, results and standings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
