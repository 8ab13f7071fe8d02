// Package docs registers the OpenAPI document served at /swagger/*.
// Regenerate the template with `swag init -g cmd/api/main.go` after changing
// handler annotations.
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
        "/api/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.profileResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/jobs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "List all jobs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.JobListing"}}}
                }
            }
        },
        "/api/post-job": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Post a job",
                "parameters": [
                    {"description": "Job details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.postJobRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.postJobResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/my-jobs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "List the caller's jobs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.JobListing"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/my-job/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Delete one of the caller's jobs",
                "parameters": [{"type": "string", "description": "Job ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/apply-job": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Apply to a job",
                "parameters": [
                    {"description": "Job to apply to", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.applyJobRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.applyJobResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/job-applicants/{jobId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "List applicants of one of the caller's jobs",
                "parameters": [{"type": "string", "description": "Job ID", "name": "jobId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.applicantsResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.adminUser"}}}
                }
            }
        },
        "/api/admin/users/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a user",
                "parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/admin/jobs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all jobs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.JobListing"}}}
                }
            }
        },
        "/api/admin/jobs/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete any job",
                "parameters": [{"type": "string", "description": "Job ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/admin/applications": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all applications",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ApplicationView"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.UserSummary": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}}
        },
        "domain.JobSummary": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "title": {"type": "string"}}
        },
        "domain.Job": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "location": {"type": "string"}, "salary": {"type": "number"}, "postedBy": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "domain.JobListing": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "location": {"type": "string"}, "salary": {"type": "number"},
                "postedBy": {"$ref": "#/definitions/domain.UserSummary"}, "createdAt": {"type": "string"}
            }
        },
        "domain.Application": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "job": {"type": "string"}, "applicant": {"type": "string"}, "appliedAt": {"type": "string"}}
        },
        "domain.ApplicationView": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "job": {"$ref": "#/definitions/domain.JobSummary"},
                "applicant": {"$ref": "#/definitions/domain.UserSummary"}, "appliedAt": {"type": "string"}
            }
        },
        "domain.AuthContext": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"},
                "role": {"type": "string"}, "issuedAt": {"type": "string"}, "expiresAt": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "role": {"type": "string", "enum": ["worker", "employer", "admin"]}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.publicUser": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.publicUser"}}
        },
        "handler.profileResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/domain.AuthContext"}}
        },
        "handler.postJobRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "location": {"type": "string"}, "salary": {"type": "number"}}
        },
        "handler.postJobResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "job": {"$ref": "#/definitions/domain.Job"}}
        },
        "handler.applyJobRequest": {
            "type": "object",
            "required": ["jobId"],
            "properties": {"jobId": {"type": "string"}}
        },
        "handler.applyJobResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "application": {"$ref": "#/definitions/domain.Application"}}
        },
        "handler.applicantsResponse": {
            "type": "object",
            "properties": {
                "jobTitle": {"type": "string"}, "totalApplicants": {"type": "integer"},
                "applicants": {"type": "array", "items": {"$ref": "#/definitions/domain.UserSummary"}}
            }
        },
        "handler.adminUser": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}, "createdAt": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Job Portal API",
	Description:      "Job portal backend: registration, login, job postings, applications and administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
