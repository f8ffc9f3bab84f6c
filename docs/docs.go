// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Reports that the proxy is up and which GitHub API it forwards to. The upstream is not contacted.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handlers.HealthResponse"}
                    }
                }
            }
        },
        "/users/{username}/repositories": {
            "get": {
                "description": "Version 1.0 returns a bare list; version 2.0 wraps it with a count",
                "produces": ["application/json"],
                "tags": ["Repositories"],
                "summary": "List non-fork repositories of a GitHub user with their branches",
                "parameters": [
                    {
                        "type": "string",
                        "description": "GitHub username",
                        "name": "username",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "default": "1.0",
                        "description": "Response version (1.0 or 2.0)",
                        "name": "API-Version",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "API-Version 1.0",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/dto.RepositoryResponse"}
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.BranchResponse": {
            "type": "object",
            "properties": {
                "lastCommitSha": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.RepositoriesResponseV2": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "repositories": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.RepositoryResponse"}
                }
            }
        },
        "dto.RepositoryResponse": {
            "type": "object",
            "properties": {
                "branches": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.BranchResponse"}
                },
                "ownerLogin": {"type": "string"},
                "repositoryName": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"},
                "upstream": {"type": "string"}
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
	Title:            "GitHub Repositories Proxy API",
	Description:      "Lists the non-fork repositories of a GitHub user together with their branches",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
