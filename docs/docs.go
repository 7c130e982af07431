// Package docs holds the OpenAPI document served at /api/openapi.json and
// rendered by Swagger UI at /api/docs. Regenerate with
// `swag init -g cmd/api/main.go -o docs` after changing handler annotations.
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
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessEnvelope"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessEnvelope"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessEnvelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "new account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.SuccessEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/auth.LoginResponse"}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/controllers.resultResponse"}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/profiles.MeDTO"}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/profile": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Update profile",
                "parameters": [
                    {"description": "profile", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.updateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/controllers.updateProfileResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/images/{role}/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["image/png", "image/jpeg"],
                "tags": ["profile"],
                "summary": "Profile image",
                "parameters": [
                    {"type": "string", "description": "mentor or mentee", "name": "role", "in": "path", "required": true},
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "302": {"description": "redirect to the role placeholder"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/mentors": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["mentors"],
                "summary": "List mentors",
                "parameters": [
                    {"type": "string", "description": "case-sensitive substring of the joined skills", "name": "skill", "in": "query"},
                    {"enum": ["skill", "name"], "type": "string", "description": "skill or name", "name": "orderBy", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/mentors.MentorDTO"}}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/match-requests": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["match-requests"],
                "summary": "Send a match request",
                "parameters": [
                    {"type": "string", "description": "replay key", "name": "Idempotency-Key", "in": "header"},
                    {"description": "request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.createMatchRequestBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/matching.MatchRequestDTO"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/match-requests/incoming": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["match-requests"],
                "summary": "Incoming match requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/matching.MatchRequestDTO"}}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/match-requests/outgoing": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["match-requests"],
                "summary": "Outgoing match requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/matching.MatchRequestDTO"}}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/match-requests/{id}/accept": {
            "put": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["match-requests"],
                "summary": "Accept a match request",
                "parameters": [
                    {"type": "integer", "description": "match request id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/controllers.resultResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/match-requests/{id}/reject": {
            "put": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["match-requests"],
                "summary": "Reject a match request",
                "parameters": [
                    {"type": "integer", "description": "match request id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/controllers.resultResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        },
        "/api/match-requests/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["match-requests"],
                "summary": "Cancel a match request",
                "parameters": [
                    {"type": "integer", "description": "match request id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/types.SuccessEnvelope"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/controllers.resultResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "auth.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "auth.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "auth.SignupRequest": {
            "type": "object",
            "required": ["email", "name", "password", "role"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["mentor", "mentee"]}
            }
        },
        "controllers.createMatchRequestBody": {
            "type": "object",
            "required": ["menteeId", "mentorId"],
            "properties": {
                "menteeId": {"type": "integer"},
                "mentorId": {"type": "integer"},
                "message": {"type": "string", "maxLength": 1000}
            }
        },
        "controllers.resultResponse": {
            "type": "object",
            "properties": {
                "result": {"type": "string"}
            }
        },
        "controllers.updateProfileRequest": {
            "type": "object",
            "required": ["id", "name", "role"],
            "properties": {
                "bio": {"type": "string", "maxLength": 2000},
                "id": {"type": "integer"},
                "image": {"type": "string", "description": "base64 or data URL; empty keeps the current image"},
                "name": {"type": "string", "maxLength": 100},
                "role": {"type": "string", "enum": ["mentor", "mentee"]},
                "skills": {"type": "array", "items": {"type": "string"}}
            }
        },
        "controllers.updateProfileResponse": {
            "type": "object",
            "properties": {
                "imageUrl": {"type": "string"},
                "result": {"type": "string"}
            }
        },
        "matching.MatchRequestDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "menteeId": {"type": "integer"},
                "mentorId": {"type": "integer"},
                "message": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "accepted", "rejected", "cancelled"]}
            }
        },
        "mentors.MentorDTO": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "profile": {"$ref": "#/definitions/profiles.ProfileDTO"},
                "role": {"type": "string", "enum": ["mentor", "mentee"]}
            }
        },
        "profiles.MeDTO": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "profile": {"$ref": "#/definitions/profiles.ProfileDTO"},
                "role": {"type": "string", "enum": ["mentor", "mentee"]}
            }
        },
        "profiles.ProfileDTO": {
            "type": "object",
            "properties": {
                "bio": {"type": "string"},
                "imageUrl": {"type": "string"},
                "name": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}}
            }
        },
        "types.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"}
            }
        },
        "types.ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/types.APIError"}
            }
        },
        "types.SuccessEnvelope": {
            "type": "object",
            "properties": {
                "data": {}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
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
	Title:            "Mentor Match API",
	Description:      "Mentor and mentee accounts, profiles, mentor search and the match request lifecycle.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
