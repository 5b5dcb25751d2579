// ABOUTME: Portfolio CRUD handlers
// ABOUTME: Every route checks ownership before touching a document
package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Jeonsowon/Portfolio-Project/db"
	"github.com/Jeonsowon/Portfolio-Project/models"
)

type portfolioSummary struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Role      string `json:"role,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

// handleListMy returns a flat array of the caller's portfolios, newest
// first.
func (s *Server) handleListMy(w http.ResponseWriter, r *http.Request, user *models.User) {
	portfolios, err := db.ListPortfoliosByUser(s.db, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]portfolioSummary, 0, len(portfolios))
	for _, p := range portfolios {
		out = append(out, portfolioSummary{
			ID:        p.ID,
			Kind:      p.Kind,
			Title:     p.Title,
			UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleListByKind filters the caller's portfolios by kind and includes
// the document role in each summary.
func (s *Server) handleListByKind(w http.ResponseWriter, r *http.Request, user *models.User) {
	kind := strings.ToUpper(r.URL.Query().Get("kind"))
	if kind != models.KindBasic && kind != models.KindRemodel {
		writeError(w, http.StatusBadRequest, "kind must be BASIC or REMODEL")
		return
	}

	portfolios, err := db.ListPortfoliosByUser(s.db, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]portfolioSummary, 0)
	for _, p := range portfolios {
		if p.Kind != kind {
			continue
		}
		role := strings.TrimSpace(p.Data.Role)
		if role == "" {
			role = "-"
		}
		out = append(out, portfolioSummary{
			ID:        p.ID,
			Kind:      p.Kind,
			Title:     p.Title,
			Role:      role,
			UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request, user *models.User) {
	p, ok := s.ownedPortfolio(w, r, user)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": p.ID, "kind": p.Kind, "data": p.Data})
}

// handleCreateDefault stores a fresh template document and returns it
// with its assigned id.
func (s *Server) handleCreateDefault(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req struct {
		Kind string `json:"kind"`
	}
	// Body is optional; an empty or invalid one means BASIC.
	_ = json.NewDecoder(r.Body).Decode(&req)

	kind := strings.ToUpper(req.Kind)
	if kind != models.KindRemodel {
		kind = models.KindBasic
	}

	p := &models.Portfolio{UserID: user.ID, Kind: kind, Data: models.Default()}
	if err := db.CreatePortfolio(s.db, p); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": p.ID, "kind": p.Kind, "data": p.Data})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request, user *models.User) {
	p, ok := s.ownedPortfolio(w, r, user)
	if !ok {
		return
	}

	var req struct {
		Data *models.PortfolioData `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Data == nil {
		writeError(w, http.StatusBadRequest, "request body must carry a data document")
		return
	}

	p.Data = *req.Data
	if err := db.UpdatePortfolio(s.db, p); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": p.ID})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, user *models.User) {
	p, ok := s.ownedPortfolio(w, r, user)
	if !ok {
		return
	}

	if err := db.DeletePortfolio(s.db, p.ID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "deleted"})
}

// ownedPortfolio loads the path portfolio and enforces ownership,
// answering 404 or 403 itself when the check fails.
func (s *Server) ownedPortfolio(w http.ResponseWriter, r *http.Request, user *models.User) (*models.Portfolio, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid portfolio id")
		return nil, false
	}

	p, err := db.GetPortfolio(s.db, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "portfolio not found")
		return nil, false
	}
	if p.UserID != user.ID {
		writeError(w, http.StatusForbidden, "no access to this portfolio")
		return nil, false
	}
	return p, true
}
