package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Banking API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Banking API",
    "version": "1.0.0"
  },
  "paths": {
    "/api/institution": {
      "get": {
        "summary": "List institutions",
        "responses": {
          "200": {"description": "All institutions"}
        }
      },
      "post": {
        "summary": "Add an institution",
        "responses": {
          "201": {"description": "Institution created"},
          "400": {"description": "Institution already exists"}
        }
      }
    },
    "/api/institution/{id}": {
      "get": {
        "summary": "Get institution by id",
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}
        ],
        "responses": {
          "200": {"description": "Institution"},
          "404": {"description": "Institution not found"}
        }
      }
    },
    "/api/member": {
      "get": {
        "summary": "List members with their accounts",
        "responses": {
          "200": {"description": "All members"}
        }
      },
      "post": {
        "summary": "Add a member",
        "responses": {
          "201": {"description": "Member created"},
          "400": {"description": "Validation failure"},
          "404": {"description": "Institution not found"}
        }
      }
    },
    "/api/member/{id}": {
      "get": {
        "summary": "Get member by id",
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}
        ],
        "responses": {
          "200": {"description": "Member"},
          "404": {"description": "Member not found"}
        }
      },
      "put": {
        "summary": "Update a member",
        "responses": {
          "204": {"description": "Member updated"},
          "404": {"description": "Institution or member not found"}
        }
      },
      "delete": {
        "summary": "Delete a member and its accounts",
        "responses": {
          "204": {"description": "Member deleted"},
          "404": {"description": "Member not found"}
        }
      }
    },
    "/api/account/{id}": {
      "put": {
        "summary": "Replace an account balance",
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}
        ],
        "requestBody": {
          "content": {
            "application/json": {"schema": {"type": "number"}}
          }
        },
        "responses": {
          "204": {"description": "Balance updated"},
          "400": {"description": "Negative balance"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/api/account/Transfer": {
      "put": {
        "summary": "Transfer between accounts within an institution",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "fromAccount": {"type": "integer"},
                  "toAccount": {"type": "integer"},
                  "amount": {"type": "number"}
                }
              }
            }
          }
        },
        "responses": {
          "204": {"description": "Transfer completed"},
          "404": {"description": "Account not found"},
          "409": {"description": "Conflicting concurrent update"},
          "422": {"description": "Business rule violation"}
        }
      }
    }
  }
}`
