// ABOUTME: REST API server for accounts, portfolios, and AI endpoints
// ABOUTME: JSON over net/http; all portfolio routes require a bearer token
package web

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Jeonsowon/Portfolio-Project/ai"
)

type Server struct {
	db        *sql.DB
	gen       ai.Generator
	jwtSecret []byte
}

func NewServer(database *sql.DB, gen ai.Generator, jwtSecret string) *Server {
	return &Server{
		db:        database,
		gen:       gen,
		jwtSecret: []byte(jwtSecret),
	}
}

// Handler builds the route table. Split from Start so tests can drive the
// server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	mux.HandleFunc("GET /api/v1/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("GET /api/v1/portfolios/my", s.requireAuth(s.handleListMy))
	mux.HandleFunc("GET /api/v1/portfolios", s.requireAuth(s.handleListByKind))
	mux.HandleFunc("GET /api/v1/portfolios/{id}", s.requireAuth(s.handleDetail))
	mux.HandleFunc("POST /api/v1/portfolios/create-default", s.requireAuth(s.handleCreateDefault))
	mux.HandleFunc("PUT /api/v1/portfolios/{id}", s.requireAuth(s.handleSave))
	mux.HandleFunc("DELETE /api/v1/portfolios/{id}", s.requireAuth(s.handleDelete))

	mux.HandleFunc("POST /api/v1/generate-summary", s.requireAuth(s.handleGenerateSummary))
	mux.HandleFunc("POST /api/v1/remodel/build", s.requireAuth(s.handleRemodelBuild))

	return corsMiddleware(mux)
}

func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting API server at http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// corsMiddleware lets the local dev frontend talk to the API directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
