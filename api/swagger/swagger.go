package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Back-Office API",
        "description": "Administrative records for academics, finance and communication.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": ["http"],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "in": "header",
            "name": "Authorization"
        }
    },
    "tags": [{"name": "System", "description": "Health and readiness"}, {"name": "Sessions"}, {"name": "Classes"}, {"name": "Batches"}, {"name": "Sections"}, {"name": "Subjects"}, {"name": "Shifts"}, {"name": "Holidays"}, {"name": "Exams"}, {"name": "Grades"}, {"name": "Students"}, {"name": "Bank Accounts"}, {"name": "Fee Types"}, {"name": "Discount Types"}, {"name": "Discounts"}, {"name": "Fee Collections"}, {"name": "SMS"}, {"name": "SMS Templates"}, {"name": "Notices"}, {"name": "Results"}, {"name": "Admit Cards"}],
    "paths": {
        "/health": {
            "get": {"tags": ["System"], "summary": "Liveness probe with a metrics summary", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/ready": {
            "get": {"tags": ["System"], "summary": "Readiness probe checking the document store", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "503": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sessions": {
            "get": {"tags": ["Sessions"], "summary": "List sessions", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Sessions"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sessions/export": {
            "get": {"tags": ["Sessions"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/sessions/{id}": {
            "get": {"tags": ["Sessions"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Sessions"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Sessions"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sessions/{id}/set-current": {
            "patch": {"tags": ["Sessions"], "summary": "Make this record the only flagged one", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/classes": {
            "get": {"tags": ["Classes"], "summary": "List classes", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Classes"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/classes/export": {
            "get": {"tags": ["Classes"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/classes/{id}": {
            "get": {"tags": ["Classes"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Classes"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Classes"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/classes/{id}/toggle-status": {
            "patch": {"tags": ["Classes"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/batches": {
            "get": {"tags": ["Batches"], "summary": "List batches", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Batches"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/batches/export": {
            "get": {"tags": ["Batches"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/batches/{id}": {
            "get": {"tags": ["Batches"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Batches"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Batches"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/batches/{id}/toggle-status": {
            "patch": {"tags": ["Batches"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sections": {
            "get": {"tags": ["Sections"], "summary": "List sections", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Sections"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sections/export": {
            "get": {"tags": ["Sections"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/sections/{id}": {
            "get": {"tags": ["Sections"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Sections"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Sections"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sections/{id}/toggle-status": {
            "patch": {"tags": ["Sections"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/subjects": {
            "get": {"tags": ["Subjects"], "summary": "List subjects", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Subjects"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/subjects/export": {
            "get": {"tags": ["Subjects"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/subjects/{id}": {
            "get": {"tags": ["Subjects"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Subjects"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Subjects"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/subjects/{id}/toggle-status": {
            "patch": {"tags": ["Subjects"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/shifts": {
            "get": {"tags": ["Shifts"], "summary": "List shifts", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Shifts"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/shifts/export": {
            "get": {"tags": ["Shifts"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/shifts/{id}": {
            "get": {"tags": ["Shifts"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Shifts"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Shifts"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/shifts/{id}/toggle-status": {
            "patch": {"tags": ["Shifts"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/shifts/{id}/toggle": {
            "patch": {"tags": ["Shifts"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/holidays": {
            "get": {"tags": ["Holidays"], "summary": "List holidays", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Holidays"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/holidays/export": {
            "get": {"tags": ["Holidays"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/holidays/{id}": {
            "get": {"tags": ["Holidays"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Holidays"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Holidays"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/exams": {
            "get": {"tags": ["Exams"], "summary": "List exams", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Exams"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/exams/export": {
            "get": {"tags": ["Exams"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/exams/{id}": {
            "get": {"tags": ["Exams"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Exams"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Exams"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/exams/{id}/toggle-status": {
            "patch": {"tags": ["Exams"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/grades": {
            "get": {"tags": ["Grades"], "summary": "List grades", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Grades"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/grades/export": {
            "get": {"tags": ["Grades"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/grades/{id}": {
            "get": {"tags": ["Grades"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Grades"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Grades"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/students": {
            "get": {"tags": ["Students"], "summary": "List students", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Students"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/students/export": {
            "get": {"tags": ["Students"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/students/{id}": {
            "get": {"tags": ["Students"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Students"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Students"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/students/bulk": {
            "post": {"tags": ["Students"], "summary": "Create many records, all or nothing", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/students/{id}/toggle-status": {
            "patch": {"tags": ["Students"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/bank-accounts": {
            "get": {"tags": ["Bank Accounts"], "summary": "List bank-accounts", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Bank Accounts"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/bank-accounts/export": {
            "get": {"tags": ["Bank Accounts"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/bank-accounts/{id}": {
            "get": {"tags": ["Bank Accounts"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Bank Accounts"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Bank Accounts"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/bank-accounts/{id}/toggle-status": {
            "patch": {"tags": ["Bank Accounts"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/bank-accounts/{id}/set-default": {
            "patch": {"tags": ["Bank Accounts"], "summary": "Make this record the only flagged one", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/fee-types": {
            "get": {"tags": ["Fee Types"], "summary": "List fee-types", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Fee Types"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/fee-types/export": {
            "get": {"tags": ["Fee Types"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/fee-types/{id}": {
            "get": {"tags": ["Fee Types"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Fee Types"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Fee Types"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/fee-types/{id}/toggle-status": {
            "patch": {"tags": ["Fee Types"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/discount-types": {
            "get": {"tags": ["Discount Types"], "summary": "List discount-types", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Discount Types"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/discount-types/export": {
            "get": {"tags": ["Discount Types"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/discount-types/{id}": {
            "get": {"tags": ["Discount Types"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Discount Types"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Discount Types"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/discount-types/{id}/toggle-status": {
            "patch": {"tags": ["Discount Types"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/discounts": {
            "get": {"tags": ["Discounts"], "summary": "List discounts", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Discounts"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/discounts/export": {
            "get": {"tags": ["Discounts"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/discounts/{id}": {
            "get": {"tags": ["Discounts"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Discounts"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Discounts"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/fee-collections": {
            "get": {"tags": ["Fee Collections"], "summary": "List fee-collections", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Fee Collections"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/fee-collections/export": {
            "get": {"tags": ["Fee Collections"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/fee-collections/{id}": {
            "get": {"tags": ["Fee Collections"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Fee Collections"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Fee Collections"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sms-balances": {
            "get": {"tags": ["SMS"], "summary": "List sms-balances", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["SMS"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sms-balances/export": {
            "get": {"tags": ["SMS"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/sms-balances/{id}": {
            "get": {"tags": ["SMS"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["SMS"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["SMS"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sms-balances/{id}/toggle-status": {
            "patch": {"tags": ["SMS"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sms-templates": {
            "get": {"tags": ["SMS Templates"], "summary": "List sms-templates", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["SMS Templates"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sms-templates/export": {
            "get": {"tags": ["SMS Templates"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/sms-templates/{id}": {
            "get": {"tags": ["SMS Templates"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["SMS Templates"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["SMS Templates"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sms-templates/{id}/toggle-status": {
            "patch": {"tags": ["SMS Templates"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/notices": {
            "get": {"tags": ["Notices"], "summary": "List notices", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Notices"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/notices/export": {
            "get": {"tags": ["Notices"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/notices/{id}": {
            "get": {"tags": ["Notices"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Notices"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Notices"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/notices/{id}/toggle-status": {
            "patch": {"tags": ["Notices"], "summary": "Flip the active flag", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/results": {
            "get": {"tags": ["Results"], "summary": "List results", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Results"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/results/export": {
            "get": {"tags": ["Results"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/results/{id}": {
            "get": {"tags": ["Results"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Results"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Results"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/admit-cards": {
            "get": {"tags": ["Admit Cards"], "summary": "List admit-cards", "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer", "maximum": 100}, {"name": "includeInactive", "in": "query", "type": "boolean"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "post": {"tags": ["Admit Cards"], "summary": "Create a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/admit-cards/export": {
            "get": {"tags": ["Admit Cards"], "summary": "Export as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "CSV file"}}}
        },
        "/admit-cards/{id}": {
            "get": {"tags": ["Admit Cards"], "summary": "Get a record", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "put": {"tags": ["Admit Cards"], "summary": "Update a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "delete": {"tags": ["Admit Cards"], "summary": "Delete a record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/admit-cards/bulk": {
            "post": {"tags": ["Admit Cards"], "summary": "Create many records, all or nothing", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/holidays/month/{year}/{month}": {
            "get": {"tags": ["Holidays"], "summary": "Holidays touching a calendar month", "parameters": [{"name": "year", "in": "path", "required": true, "type": "integer"}, {"name": "month", "in": "path", "required": true, "type": "integer"}, {"name": "sessionId", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/holidays/check/{date}": {
            "get": {"tags": ["Holidays"], "summary": "Whether a day is a holiday", "parameters": [{"name": "date", "in": "path", "required": true, "type": "string", "format": "date"}, {"name": "sessionId", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/sms-balances/{id}/use": {
            "post": {"tags": ["SMS"], "summary": "Consume SMS credits", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SMSUsage"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/results/{id}/send-sms": {
            "post": {"tags": ["Results"], "summary": "Queue a result notification SMS", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/SendSMSRequest"}}], "responses": {"202": {"description": "Accepted", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/admit-cards/{id}/pdf": {
            "get": {"tags": ["Admit Cards"], "summary": "Download an admit card as PDF", "produces": ["application/pdf"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "PDF file"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/notices/{id}/attachment": {
            "post": {"tags": ["Notices"], "summary": "Attach a file to a notice", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}, {"name": "file", "in": "formData", "required": true, "type": "file"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}},
            "get": {"tags": ["Notices"], "summary": "Signed download link for the attachment", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/files/{token}": {
            "get": {"tags": ["Notices"], "summary": "Download a file through a signed token", "produces": ["application/octet-stream"], "parameters": [{"name": "token", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "File"}, "403": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}}}
        }
    },
    "definitions": {
        "Pagination": {
            "type": "object",
            "properties": {"currentPage": {"type": "integer"}, "totalPages": {"type": "integer"}, "totalItems": {"type": "integer"}, "itemsPerPage": {"type": "integer"}}
        },
        "Envelope": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "data": {"type": "object"}, "message": {"type": "string"}, "code": {"type": "string"}, "error": {"type": "string"}, "pagination": {"$ref": "#/definitions/Pagination"}}
        },
        "SMSUsage": {
            "type": "object",
            "required": ["count"],
            "properties": {"count": {"type": "integer", "minimum": 1}}
        },
        "SendSMSRequest": {
            "type": "object",
            "properties": {"phone": {"type": "string"}, "message": {"type": "string"}}
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
