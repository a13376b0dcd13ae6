package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"golang.org/x/time/rate"

	"vitrin/api/internal/gitrepo"
	"vitrin/api/internal/persist"
	"vitrin/api/internal/project"
	"vitrin/api/internal/rbac"
	"vitrin/api/internal/search"
	"vitrin/api/internal/util"
)

// AuthorHeader names the collaborator recorded on publications.
const AuthorHeader = "X-Vitrin-User"

type HTTPOptions struct {
	CORSOrigin string
	// RateLimit is requests per second for the whole server; 0 disables it.
	RateLimit   float64
	DefaultRole rbac.Role
	Logger      *slog.Logger
}

type HTTPServer struct {
	service     *Service
	corsOrigin  string
	defaultRole rbac.Role
	limiter     *rate.Limiter
	logger      *slog.Logger
}

func NewHTTPServer(service *Service, opts HTTPOptions) *HTTPServer {
	s := &HTTPServer{
		service:     service,
		corsOrigin:  opts.CORSOrigin,
		defaultRole: opts.DefaultRole,
		logger:      opts.Logger,
	}
	if s.corsOrigin == "" {
		s.corsOrigin = "*"
	}
	if s.defaultRole == "" {
		s.defaultRole = rbac.RoleViewer
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst*2)
	}
	return s
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writeJSON(w, http.StatusNoContent, map[string]any{})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/ready" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		checks, ready := s.service.Ready(ctx)
		status, statusCode := "ready", http.StatusOK
		if !ready {
			status, statusCode = "not_ready", http.StatusServiceUnavailable
		}
		writeJSON(w, statusCode, map[string]any{
			"ok":     ready,
			"status": status,
			"checks": checks,
		})
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/templates" {
		writeJSON(w, http.StatusOK, map[string]any{"templates": s.service.Templates()})
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/sectors/resolve" {
		key := strings.TrimSpace(r.URL.Query().Get("key"))
		if key == "" {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "key is required", nil)
			return
		}
		writeJSON(w, http.StatusOK, s.service.ResolveSector(key))
		return
	}

	if r.Method == http.MethodPost && r.URL.Path == "/api/resolve" {
		var body templateBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		specs, err := s.service.Resolve(body.TemplateID, body.Data)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"templateId": body.TemplateID, "sections": specs})
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/sites/search" {
		q, err := searchQuery(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		writeJSON(w, http.StatusOK, s.service.SearchSites(q))
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/projects" {
		if !rbac.Can(s.role(r), rbac.ActionRead) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Forbidden", nil)
			return
		}
		limit, err := intParam(r, "limit", 20)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		ids, err := s.service.RecentProjects(r.Context(), limit)
		if err != nil {
			s.logger.Error("list projects failed", "error", err)
			writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Could not list projects", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"projects": ids})
		return
	}

	parts := splitPath(r.URL.Path)
	if len(parts) >= 4 && parts[0] == "api" && parts[1] == "projects" {
		s.handleProject(w, r, parts[2], parts[3:])
		return
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
}

type templateBody struct {
	TemplateID string `json:"templateId"`
	project.Data
}

func (s *HTTPServer) handleProject(w http.ResponseWriter, r *http.Request, projectID string, parts []string) {
	role := s.role(r)
	fail := func(err error) {
		status, code, message, details := mapError(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("project request failed", "project_id", projectID, "path", r.URL.Path, "error", err)
		}
		writeError(w, status, code, message, details)
	}
	need := func(action rbac.Action) bool {
		if rbac.Can(role, action) {
			return true
		}
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Forbidden", map[string]any{"role": role, "action": action})
		return false
	}

	switch {
	case len(parts) == 1 && parts[0] == "document" && r.Method == http.MethodGet:
		if !need(rbac.ActionRead) {
			return
		}
		view, err := s.service.Document(r.Context(), projectID)
		if err != nil {
			fail(err)
			return
		}
		writeJSON(w, http.StatusOK, view)
		return

	case len(parts) == 1 && parts[0] == "commands" && r.Method == http.MethodPost:
		if !need(rbac.ActionEdit) {
			return
		}
		var cmd CommandRequest
		if err := decodeBody(r, &cmd); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		view, created, err := s.service.Execute(r.Context(), projectID, cmd)
		if err != nil {
			fail(err)
			return
		}
		resp := map[string]any{"document": view}
		if created != "" {
			resp["createdId"] = created
		}
		writeJSON(w, http.StatusOK, resp)
		return

	case len(parts) == 1 && parts[0] == "template" && r.Method == http.MethodPost:
		if !need(rbac.ActionEdit) {
			return
		}
		var body templateBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		if strings.TrimSpace(body.TemplateID) == "" {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "templateId is required", nil)
			return
		}
		view, applied, err := s.service.ApplyTemplate(r.Context(), projectID, body.TemplateID, body.Data)
		if err != nil {
			fail(err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"document": view, "applied": applied})
		return

	case len(parts) == 1 && parts[0] == "undo" && r.Method == http.MethodPost:
		if !need(rbac.ActionEdit) {
			return
		}
		view, undone, err := s.service.Undo(r.Context(), projectID)
		if err != nil {
			fail(err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"document": view, "undone": undone})
		return

	case len(parts) == 1 && parts[0] == "publish" && r.Method == http.MethodPost:
		if !need(rbac.ActionPublish) {
			return
		}
		var body struct {
			Message string `json:"message"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		author := strings.TrimSpace(r.Header.Get(AuthorHeader))
		if author == "" {
			author = "Vitrin"
		}
		pub, err := s.service.Publish(r.Context(), projectID, author, body.Message)
		if err != nil {
			fail(err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"publication": pub})
		return

	case len(parts) == 1 && parts[0] == "publications" && r.Method == http.MethodGet:
		if !need(rbac.ActionRead) {
			return
		}
		limit, err := intParam(r, "limit", 50)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		pubs, err := s.service.Publications(r.Context(), projectID, limit)
		if err != nil {
			fail(err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"publications": pubs})
		return

	case len(parts) == 2 && parts[0] == "publications" && r.Method == http.MethodGet:
		if !need(rbac.ActionRead) {
			return
		}
		rec, pub, err := s.service.Publication(r.Context(), projectID, parts[1])
		if err != nil {
			fail(err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"publication": pub, "document": rec})
		return

	case len(parts) == 3 && parts[0] == "publications" && parts[2] == "tag" && r.Method == http.MethodPost:
		if !need(rbac.ActionPublish) {
			return
		}
		var body struct {
			Name string `json:"name"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		if err := s.service.TagPublication(r.Context(), projectID, parts[1], body.Name); err != nil {
			fail(err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "tag": strings.TrimSpace(body.Name)})
		return
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
}

func (s *HTTPServer) role(r *http.Request) rbac.Role {
	return rbac.FromHeader(r.Header.Get(rbac.Header), s.defaultRole)
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" || !util.ValidID(requestID) {
			requestID = util.NewID("")
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("X-Request-ID", requestID)

		if s.limiter != nil && r.URL.Path != "/api/health" && !s.limiter.Allow() {
			writer.Header().Set("Retry-After", "1")
			writeError(writer, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", nil)
		} else {
			next.ServeHTTP(writer, r)
		}

		s.logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", writer.status,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

type requestIDKey struct{}

// RequestID returns the id the middleware attached to ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func setCORSHeaders(header http.Header, corsOrigin string) {
	header.Set("Access-Control-Allow-Origin", corsOrigin)
	header.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, "+rbac.Header+", "+AuthorHeader)
	header.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
	header.Set("Cache-Control", "no-store")
	header.Set("Content-Type", "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	response := map[string]any{
		"code":  code,
		"error": message,
	}
	if details != nil {
		response["details"] = details
	}
	writeJSON(w, status, response)
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, http.ErrBodyReadAfterClose) || errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}

func searchQuery(r *http.Request) (search.Query, error) {
	limit, err := intParam(r, "limit", 20)
	if err != nil {
		return search.Query{}, err
	}
	offset, err := intParam(r, "offset", 0)
	if err != nil {
		return search.Query{}, err
	}
	return search.Query{
		Text:   strings.TrimSpace(r.URL.Query().Get("q")),
		Sector: strings.TrimSpace(r.URL.Query().Get("sector")),
		Limit:  limit,
		Offset: offset,
	}, nil
}

func mapError(err error) (status int, code, message string, details any) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Status, domainErr.Code, domainErr.Message, domainErr.Details
	}
	switch {
	case errors.Is(err, ErrUnknownTemplate):
		return http.StatusNotFound, "UNKNOWN_TEMPLATE", "Template not found", nil
	case errors.Is(err, persist.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "Not found", nil
	case errors.Is(err, gitrepo.ErrInvalidProject):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid project id", nil
	case errors.Is(err, gitrepo.ErrNotPublished):
		return http.StatusNotFound, "NOT_PUBLISHED", "Project has no publications", nil
	case errors.Is(err, plumbing.ErrReferenceNotFound), errors.Is(err, plumbing.ErrObjectNotFound):
		return http.StatusNotFound, "PUBLICATION_NOT_FOUND", "Publication not found", nil
	}
	return http.StatusInternalServerError, "SERVER_ERROR", "Server error", nil
}
