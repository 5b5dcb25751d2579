// ABOUTME: AI-backed handlers: project summary drafts and remodel builds
// ABOUTME: A remodel build persists a new REMODEL portfolio for the caller
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Jeonsowon/Portfolio-Project/ai"
	"github.com/Jeonsowon/Portfolio-Project/db"
	"github.com/Jeonsowon/Portfolio-Project/models"
)

func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req ai.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	summary, err := s.gen.GenerateSummary(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleRemodelBuild(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req struct {
		BasePortfolioID int64  `json:"basePortfolioId"`
		SourceType      string `json:"sourceType"`
		Title           string `json:"title"`
		Value           string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SourceType != ai.SourceURL && req.SourceType != ai.SourceText {
		writeError(w, http.StatusBadRequest, "sourceType must be 'url' or 'text'")
		return
	}

	base, err := db.GetPortfolio(s.db, req.BasePortfolioID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if base == nil {
		writeError(w, http.StatusNotFound, "base portfolio not found")
		return
	}
	if base.UserID != user.ID {
		writeError(w, http.StatusForbidden, "no access to the base portfolio")
		return
	}

	data, err := ai.BuildRemodel(r.Context(), s.gen, base.Data, req.SourceType, req.Value)
	if err != nil {
		if errors.Is(err, ai.ErrNoSections) {
			writeError(w, http.StatusUnprocessableEntity,
				"no requirement sections found in the posting; paste those sections as text instead")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	remodel := &models.Portfolio{
		UserID: user.ID,
		Kind:   models.KindRemodel,
		Title:  strings.TrimSpace(req.Title),
		Data:   data,
	}
	if err := db.CreatePortfolio(s.db, remodel); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": remodel.ID, "kind": remodel.Kind, "data": remodel.Data})
}
