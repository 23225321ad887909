package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "JCPAO Staff Directory API",
        "description": "Staff directory, birthdays and workforce analytics",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Directory", "description": "Merged staff and office pet directory"},
        {"name": "Dashboard", "description": "Workforce analytics"},
        {"name": "Activity", "description": "User activity audit log"},
        {"name": "Exports", "description": "Directory files behind signed links"}
    ],
    "paths": {
        "/directory": {
            "get": {
                "tags": ["Directory"],
                "summary": "Filtered staff directory",
                "parameters": [
                    {"name": "position", "in": "query", "type": "string", "description": "Position code or All"},
                    {"name": "unit", "in": "query", "type": "string", "description": "Unit code or All"},
                    {"name": "office", "in": "query", "type": "string", "description": "Office location or All"},
                    {"name": "month", "in": "query", "type": "string", "description": "Birth month 1-12 or All"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Directory source unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/options": {
            "get": {
                "tags": ["Directory"],
                "summary": "Selectable values for the directory filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/birthdays": {
            "get": {
                "tags": ["Directory"],
                "summary": "Birthdays in a month",
                "parameters": [
                    {"name": "month", "in": "query", "type": "string", "description": "1-12, 0 or All for every month. Defaults to the current month"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/profile": {
            "get": {
                "tags": ["Directory"],
                "summary": "Employee profile with service context",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown email", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/refresh": {
            "post": {
                "tags": ["Directory"],
                "summary": "Invalidate caches and rebuild the directory",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Export the filtered directory",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/{token}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a stored export",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "token", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "404": {"description": "Invalid link", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "410": {"description": "Expired link", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Staff analytics dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/breakdowns/{field}": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "One staff breakdown",
                "parameters": [
                    {"name": "field", "in": "path", "type": "string", "required": true, "enum": ["position", "unit", "office", "race_total", "race_unique", "sex"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown field", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activity": {
            "post": {
                "tags": ["Activity"],
                "summary": "Record a user activity",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ActivityRequest"}}
                ],
                "responses": {
                    "202": {"description": "Queued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "summary": "Instrumentation counters",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "DirectoryQuery": {
            "type": "object",
            "properties": {
                "position": {"type": "string"},
                "unit": {"type": "string"},
                "office": {"type": "string"},
                "month": {"type": "string"},
                "search": {"type": "string"}
            }
        },
        "ExportRequest": {
            "type": "object",
            "required": ["format"],
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf", "xlsx"]},
                "filter": {"$ref": "#/definitions/DirectoryQuery"}
            }
        },
        "ActivityRequest": {
            "type": "object",
            "required": ["identifier", "activity"],
            "properties": {
                "identifier": {"type": "string"},
                "activity": {"type": "string", "example": "UPDATE_PHOTO"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
