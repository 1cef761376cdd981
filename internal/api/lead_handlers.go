package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hmiyata/shindan/internal/errors"
	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/models"
)

func (s *Server) handleSubmitLead(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sess := sessionFromContext(r.Context())

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	lead, err := s.Registration.Submit(r.Context(), sess, req.Name, req.Email)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("lead %d queued for forwarding", lead.ID)
	respondJSON(w, http.StatusAccepted, map[string]any{
		"lead_id": lead.ID,
		"status":  s.Registration.Status(sess),
	})
}

func (s *Server) handleLeadStatus(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{
		"status": s.Registration.Status(sess),
	})
}

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	q := r.URL.Query()

	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}

	perPage := 25
	switch q.Get("per_page") {
	case "10":
		perPage = 10
	case "25":
		perPage = 25
	case "50":
		perPage = 50
	case "100":
		perPage = 100
	}

	filter := models.LeadFilter{
		Quiz:          q.Get("quiz"),
		Dominant:      q.Get("type"),
		EmailContains: q.Get("q"),
		ForwardStatus: q.Get("status"),
		Limit:         perPage,
		Offset:        (page - 1) * perPage,
	}

	leads, err := s.Leads.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	total, err := s.Leads.Count(r.Context(), filter)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}

	log.Debug("listed %d of %d leads (page %d)", len(leads), total, page)
	respondJSON(w, http.StatusOK, map[string]any{
		"leads":       leads,
		"total":       total,
		"page":        page,
		"per_page":    perPage,
		"total_pages": totalPages,
	})
}
