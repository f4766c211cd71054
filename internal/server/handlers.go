package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/leadscout/leadscout/internal/export"
	"github.com/leadscout/leadscout/internal/leadgen"
	"github.com/leadscout/leadscout/internal/profile"
)

type searchRequest struct {
	Query string `json:"query"`
}

type selectionRequest struct {
	Profiles []*profile.Profile `json:"profiles"`
}

type syncReport struct {
	ProfileID string `json:"profileId"`
	ContactID string `json:"contactId,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type syncResponse struct {
	Results []syncReport `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		s.errorResponse(w, http.StatusBadRequest, "query is required")
		return
	}

	result, err := s.pipeline.Run(r.Context(), req.Query)
	if err != nil {
		if err == leadgen.ErrEmptyQuery {
			s.errorResponse(w, http.StatusBadRequest, "query is required")
			return
		}
		s.logger.Error("search request failed", zap.String("query", req.Query), zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, leadgen.DescribeSearchError(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if len(req.Profiles) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "at least one profile must be selected")
		return
	}

	filename := export.Filename(time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.Write(w, req.Profiles); err != nil {
		// Headers are already gone; all we can do is log.
		s.logger.Error("writing csv export", zap.Error(err))
	}
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if len(req.Profiles) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "at least one profile must be selected")
		return
	}

	if s.crm == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "hubspot is not configured")
		return
	}

	response := syncResponse{Results: make([]syncReport, 0, len(req.Profiles))}
	for _, p := range req.Profiles {
		report := syncReport{ProfileID: p.ID}

		contact, created, err := s.crm.UpsertProfile(r.Context(), p)
		switch {
		case err != nil:
			report.Status = "failed"
			report.Error = err.Error()
			s.logger.Warn("hubspot upsert failed",
				zap.String("linkedin_url", p.LinkedInURL),
				zap.Error(err),
			)
		case created:
			report.Status = "created"
			report.ContactID = contact.ID
		default:
			report.Status = "updated"
			report.ContactID = contact.ID
		}

		response.Results = append(response.Results, report)
	}

	s.jsonResponse(w, http.StatusOK, response)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
