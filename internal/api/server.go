// Package api exposes the rule builder, expression validator, and domain
// registry over HTTP. Every operation is synchronous and stateless; no
// session is carried between calls.
package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eruixma/one-click-campaign/internal/audit"
	"github.com/eruixma/one-click-campaign/internal/builder"
	"github.com/eruixma/one-click-campaign/internal/registry"
	"github.com/eruixma/one-click-campaign/internal/rules"
	"github.com/eruixma/one-click-campaign/internal/telemetry"
)

// Auditor is the subset of the audit service the server needs.
type Auditor interface {
	Log(event audit.Event)
}

type Server struct {
	apiKey  string
	auditor Auditor
}

// NewServer builds a server. apiKey may be empty, in which case build
// requests are unauthenticated; auditor may be nil to disable auditing.
func NewServer(apiKey string, auditor Auditor) *Server {
	return &Server{apiKey: apiKey, auditor: auditor}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(telemetry.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/v1/rules", s.requireKey(s.handleBuildRule))
	r.Post("/v1/rules/validate", s.handleValidate)
	r.Get("/v1/comparators", s.handleComparators)

	r.Route("/v1/registry", func(r chi.Router) {
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/tables", s.handleTables)
		r.Get("/tables/{name}/properties", s.handleTableProperties)
		r.Get("/exclusions", s.handleExclusions)
		r.Get("/suggest", s.handleSuggest)
		r.Get("/templates/{type}", s.handleTemplate)
	})

	return r
}

// ---- handlers ----

type buildRequest struct {
	Name        string                `json:"name"`
	AppliesTo   string                `json:"applies_to"`
	Description string                `json:"description"`
	CampaignID  string                `json:"campaign_id,omitempty"`
	Conditions  builder.ConditionSpec `json:"conditions"`
}

func (s *Server) handleBuildRule(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		s.auditFailure(r, audit.ActionBuilt, req.Name, err.Error())
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "invalid JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, ErrCodeMissingField, "name is required")
		return
	}
	if strings.TrimSpace(req.AppliesTo) == "" {
		writeError(w, r, http.StatusBadRequest, ErrCodeMissingField, "applies_to is required")
		return
	}

	rendered := builder.Build(builder.Params{
		Name:        req.Name,
		AppliesTo:   req.AppliesTo,
		Description: req.Description,
		CampaignID:  req.CampaignID,
		Conditions:  req.Conditions,
	})

	telemetry.RulesBuilt.WithLabelValues(rendered.AppliesTo).Inc()
	if s.auditor != nil {
		s.auditor.Log(audit.Event{
			RequestID:   middleware.GetReqID(r.Context()),
			Action:      audit.ActionBuilt,
			RuleName:    rendered.RuleName,
			AppliesTo:   rendered.AppliesTo,
			CampaignID:  rendered.CampaignID,
			Fingerprint: rendered.Fingerprint,
			Status:      audit.StatusSuccess,
		})
	}

	writeJSON(w, http.StatusOK, rendered)
}

type validateRequest struct {
	Expression string `json:"expression"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "invalid JSON: "+err.Error())
		return
	}

	result := builder.ValidateExpression(req.Expression)
	if n := len(result.Errors); n > 0 {
		telemetry.ValidationFindings.Add(float64(n))
	}
	if s.auditor != nil {
		status := audit.StatusSuccess
		if !result.Valid {
			status = audit.StatusFailure
		}
		s.auditor.Log(audit.Event{
			RequestID: middleware.GetReqID(r.Context()),
			Action:    audit.ActionValidated,
			Status:    status,
		})
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleComparators(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"comparators": rules.ListComparators(),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := registry.GetSnapshot()
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == snap.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", snap.ETag)
	_ = json.NewEncoder(w).Encode(snap)
}

func (s *Server) handleTables(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tables": registry.Tables()})
}

func (s *Server) handleTableProperties(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	props, err := registry.TableProperties(name)
	if err != nil {
		writeError(w, r, http.StatusNotFound, ErrCodeUnknownTable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"table":      strings.ToUpper(name),
		"properties": props,
	})
}

func (s *Server) handleExclusions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"exclusion_rules": registry.StandardExclusions(),
		"packages":        registry.ExclusionPackages(),
		"usage":           "Reference these rules using: {Rule <RuleName> evaluates to true}",
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, r, http.StatusBadRequest, ErrCodeMissingField, "query parameter q is required")
		return
	}
	writeJSON(w, http.StatusOK, registry.SuggestSource(q))
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	campaignType := chi.URLParam(r, "type")
	campaignID := r.URL.Query().Get("campaign_id")

	tmpl, err := registry.Template(campaignID, campaignType)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownCampaignType) {
			writeError(w, r, http.StatusNotFound, ErrCodeUnknownTemplate, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

// ---- middleware & helpers ----

// requireKey enforces bearer-token auth when an API key is configured.
func (s *Server) requireKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}
		got := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
		if got == "" {
			writeError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, "missing bearer token")
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.apiKey)) != 1 {
			writeError(w, r, http.StatusForbidden, ErrCodeForbidden, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	}
}

func (s *Server) auditFailure(r *http.Request, action, ruleName, msg string) {
	if s.auditor == nil {
		return
	}
	s.auditor.Log(audit.Event{
		RequestID:    middleware.GetReqID(r.Context()),
		Action:       action,
		RuleName:     ruleName,
		Status:       audit.StatusFailure,
		ErrorMessage: msg,
	})
}
