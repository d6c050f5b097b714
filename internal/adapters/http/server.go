// Package httpadapter exposes the audit backend over HTTP. The JSON shapes
// match what the audit widgets embedded on the marketing site send.
package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"leadfair/internal/domain"
	"leadfair/internal/ports"
	"leadfair/internal/services/audit"
	"leadfair/internal/services/conversation"
	"leadfair/internal/services/reports"
)

type Server struct {
	scanner   ports.WebsiteAnalyzer
	reports   *reports.Service
	sessions  *conversation.Manager
	snapshots ports.SnapshotRepository
	log       *zap.Logger
}

func New(scanner ports.WebsiteAnalyzer, rep *reports.Service, sessions *conversation.Manager, snapshots ports.SnapshotRepository, log *zap.Logger) *Server {
	return &Server{scanner: scanner, reports: rep, sessions: sessions, snapshots: snapshots, log: log}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze-website", s.handleAnalyzeWebsite)
		r.Post("/chat-audit", s.handleChatAudit)
		r.Post("/generate-visibility-report", s.handleVisibilityReport)
		r.Post("/generate-security-report", s.handleSecurityReport)
		r.Post("/generate-diagnostic-report", s.handleDiagnosticReport)
		r.Post("/submit-lead", s.handleSubmitLead)
		r.Get("/audits/{variant}", s.handleAuditDefinition)
		r.Route("/snapshots/{key}", func(r chi.Router) {
			r.Put("/", s.handleSnapshotSave)
			r.Get("/", s.handleSnapshotGet)
			r.Delete("/", s.handleSnapshotDelete)
		})
	})
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// analyze-website always answers 200: scan failures are data, not transport
// errors, so the widget can render a partial or skipped card.
func (s *Server) handleAnalyzeWebsite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	// A malformed body degrades to the skipped analysis, same as no URL.
	_ = json.NewDecoder(r.Body).Decode(&req)

	analysis := s.scanner.Analyze(r.Context(), req.URL)
	writeJSON(w, http.StatusOK, analysis)
}

type chatAuditRequest struct {
	SessionID       string                   `json:"sessionId,omitempty"`
	Messages        []domain.Message         `json:"messages"`
	BusinessContext domain.BusinessContext   `json:"businessContext"`
	Phase           domain.ConversationPhase `json:"phase,omitempty"`
	WebsiteAnalysis *domain.WebsiteAnalysis  `json:"websiteAnalysis,omitempty"`
}

// chat-audit streams the assistant turn as server-sent events: one
// data: {"text": ...} frame per model chunk, closed by data: [DONE].
// With a sessionId the server's own controller extracts discovery fields and
// derives the phase; without one the client-supplied phase and scan are
// trusted as-is.
func (s *Server) handleChatAudit(w http.ResponseWriter, r *http.Request) {
	var req chatAuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "messages required")
		return
	}

	bizCtx := req.BusinessContext
	phase := req.Phase
	scan := req.WebsiteAnalysis
	if req.SessionID != "" {
		ctrl := s.sessions.Get(req.SessionID)
		ctrl.SeedContext(req.BusinessContext)
		if last := req.Messages[len(req.Messages)-1]; last.Role == "user" {
			phase = ctrl.Ingest(last.Content)
		} else {
			phase = ctrl.Phase()
		}
		bizCtx = ctrl.Context()
		if res := ctrl.Scan(); res != nil {
			scan = res
		}
	}
	if phase == "" {
		phase = domain.ConvDiscovery
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	textCh, errCh := s.reports.ChatStream(r.Context(), req.Messages, bizCtx, phase, scan)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for text := range textCh {
		frame, err := json.Marshal(map[string]string{"text": text})
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", frame)
		flusher.Flush()
	}
	if err := <-errCh; err != nil {
		s.log.Warn("chat stream ended with error", zap.Error(err))
		frame, _ := json.Marshal(map[string]string{"error": "The conversation hit a snag. Please try again."})
		fmt.Fprintf(w, "data: %s\n\n", frame)
	}
	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

func (s *Server) handleVisibilityReport(w http.ResponseWriter, r *http.Request) {
	var req reports.VisibilityReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	report, err := s.reports.GenerateVisibility(r.Context(), req)
	s.writeReport(w, report, err)
}

func (s *Server) handleSecurityReport(w http.ResponseWriter, r *http.Request) {
	var req reports.SecurityReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	report, err := s.reports.GenerateSecurity(r.Context(), req)
	s.writeReport(w, report, err)
}

func (s *Server) handleDiagnosticReport(w http.ResponseWriter, r *http.Request) {
	var req reports.DiagnosticReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	report, err := s.reports.GenerateDiagnostic(r.Context(), req)
	s.writeReport(w, report, err)
}

func (s *Server) writeReport(w http.ResponseWriter, report string, err error) {
	if err != nil {
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"report": report})
}

type submitLeadRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`

	// Stateless clients that ran the questionnaire themselves send the
	// context and answers along.
	BusinessContext domain.BusinessContext `json:"businessContext"`
	Answers         domain.AnswerSet       `json:"answers,omitempty"`
}

type submitLeadResponse struct {
	SessionID string             `json:"sessionId"`
	Scores    domain.ScoreResult `json:"scores"`
}

// submit-lead captures contact details and kicks off the close-out sequence.
// Scores come back immediately; the report is generated in the background
// and the lead is relayed regardless of how the report fares.
func (s *Server) handleSubmitLead(w http.ResponseWriter, r *http.Request) {
	var req submitLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email required")
		return
	}

	ctrl := s.sessions.Get(req.SessionID)
	ctrl.SeedContext(req.BusinessContext)
	if len(req.Answers) > 0 {
		ctrl.Quiz().Load(req.Answers)
	}

	outcome := ctrl.SubmitLead(req.Name, req.Email, req.Phone)
	writeJSON(w, http.StatusOK, submitLeadResponse{
		SessionID: ctrl.ID,
		Scores:    outcome.Scores,
	})
}

func (s *Server) handleSnapshotSave(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var payload json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot payload")
		return
	}
	snap := domain.Snapshot{Key: key, Payload: payload}
	if err := s.snapshots.Save(r.Context(), snap); err != nil {
		s.log.Error("snapshot save failed", zap.String("key", key), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "snapshot save failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSnapshotGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	snap, err := s.snapshots.Get(r.Context(), key)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		s.log.Error("snapshot fetch failed", zap.String("key", key), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "snapshot fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSnapshotDelete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := s.snapshots.Delete(r.Context(), key); err != nil {
		s.log.Error("snapshot delete failed", zap.String("key", key), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "snapshot delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAuditDefinition serves the questionnaire for one variant so the
// widgets render from the same tables the scorer uses.
func (s *Server) handleAuditDefinition(w http.ResponseWriter, r *http.Request) {
	a, err := audit.Lookup(chi.URLParam(r, "variant"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown audit variant")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"variant":   a.Variant,
		"questions": a.Questions(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
