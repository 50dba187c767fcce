package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "AI Summary Panel",
    "description": "Ticket sidebar panel showing AI summary fields and capturing reviewer feedback",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/healthz": {
      "get": {
        "tags": ["health"],
        "summary": "Health check",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
      }
    },
    "/panels/{id}": {
      "get": {
        "tags": ["panels"],
        "summary": "Panel page",
        "produces": ["text/html"],
        "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
        "responses": {"200": {"description": "HTML page"}, "404": {"description": "Not Found"}}
      }
    },
    "/api/panels": {
      "post": {
        "tags": ["panels"],
        "summary": "Initialize a panel",
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"ticket_id": {"type": "string"}}}}],
        "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
      }
    },
    "/api/panels/{id}": {
      "get": {
        "tags": ["panels"],
        "summary": "Panel display",
        "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
      },
      "delete": {
        "tags": ["panels"],
        "summary": "Tear down a panel",
        "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
        "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
      }
    },
    "/api/panels/{id}/feedback": {
      "post": {
        "tags": ["panels"],
        "summary": "Record reviewer feedback",
        "parameters": [
          {"in": "path", "name": "id", "required": true, "type": "string"},
          {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"value": {"type": "string", "enum": ["positive", "negative"]}}}}
        ],
        "responses": {"202": {"description": "Accepted"}, "400": {"description": "Bad Request"}}
      }
    },
    "/api/dev/settings": {
      "put": {
        "tags": ["dev"],
        "summary": "Replace development host settings",
        "responses": {"204": {"description": "No Content"}}
      }
    },
    "/api/dev/tickets/{id}": {
      "put": {
        "tags": ["dev"],
        "summary": "Seed a development host ticket",
        "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
        "responses": {"204": {"description": "No Content"}}
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
