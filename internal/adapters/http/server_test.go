package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"leadfair/internal/adapters/memory"
	"leadfair/internal/domain"
	"leadfair/internal/services/conversation"
	"leadfair/internal/services/leads"
	"leadfair/internal/services/reports"
	"leadfair/internal/workers/scanrunner"
)

type fakeAnalyzer struct {
	result *domain.WebsiteAnalysis
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, rawURL string) *domain.WebsiteAnalysis {
	if f.result != nil {
		return f.result
	}
	return &domain.WebsiteAnalysis{
		Status: domain.ScanSkipped,
		Errors: []string{"No valid URL provided"},
	}
}

type fakeLLM struct {
	text string
	err  error
}

func (f *fakeLLM) Complete(ctx context.Context, system string, messages []domain.Message) (string, error) {
	return f.text, f.err
}

func (f *fakeLLM) Stream(ctx context.Context, system string, messages []domain.Message) (<-chan string, <-chan error) {
	deltas := make(chan string, 8)
	errc := make(chan error, 1)
	go func() {
		defer close(deltas)
		defer close(errc)
		if f.err != nil {
			errc <- f.err
			return
		}
		for _, word := range strings.SplitAfter(f.text, " ") {
			deltas <- word
		}
	}()
	return deltas, errc
}

func newTestServer(t *testing.T, llm *fakeLLM, analyzer *fakeAnalyzer) *Server {
	t.Helper()
	log := zap.NewNop()
	rep := reports.New(llm, log)
	runner := scanrunner.New(analyzer, 1, log)
	relay := leads.NewRelay("http://127.0.0.1:0", "x@example.com", log)
	sessions := conversation.NewManager(runner, rep, relay, log)
	t.Cleanup(sessions.Stop)
	return New(analyzer, rep, sessions, memory.NewSnapshotStore(), log)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeWebsiteAlways200(t *testing.T) {
	url := "https://example.com/"
	srv := newTestServer(t, &fakeLLM{}, &fakeAnalyzer{
		result: &domain.WebsiteAnalysis{Status: domain.ScanSuccess, URL: &url},
	})
	r := srv.Routes()

	rec := doJSON(t, r, http.MethodPost, "/api/analyze-website", map[string]string{"url": "example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	var res domain.WebsiteAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, domain.ScanSuccess, res.Status)

	// Malformed body still answers 200 with a scan payload.
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-website", strings.NewReader("{not json"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Non-POST is rejected at the router.
	rec = doJSON(t, r, http.MethodGet, "/api/analyze-website", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChatAuditStreamsEventFrames(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{text: "Hi there neighbor"}, &fakeAnalyzer{})
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/chat-audit", map[string]any{
		"messages": []domain.Message{{Role: "user", Content: "hello"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `data: {"text":"Hi "}`)
	assert.Contains(t, body, `data: {"text":"neighbor"}`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), "data: [DONE]"))
}

func TestChatAuditRequiresMessages(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{}, &fakeAnalyzer{})
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/chat-audit", map[string]any{"messages": []domain.Message{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatAuditStreamError(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{err: fmt.Errorf("upstream down")}, &fakeAnalyzer{})
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/chat-audit", map[string]any{
		"messages": []domain.Message{{Role: "user", Content: "hello"}},
	})

	// Stream errors surface inside the stream, not as an HTTP status.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
	assert.Contains(t, rec.Body.String(), "data: [DONE]")
}

func TestGenerateReportEndpoints(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{text: "# Report"}, &fakeAnalyzer{})
	r := srv.Routes()

	for _, path := range []string{
		"/api/generate-visibility-report",
		"/api/generate-security-report",
		"/api/generate-diagnostic-report",
	} {
		rec := doJSON(t, r, http.MethodPost, path, map[string]any{"businessName": "Acme"})
		require.Equal(t, http.StatusOK, rec.Code, path)
		var res map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "# Report", res["report"], path)
	}
}

func TestGenerateReportFailure(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{err: fmt.Errorf("no completion")}, &fakeAnalyzer{})
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/generate-visibility-report", map[string]any{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestAuditDefinitionEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{}, &fakeAnalyzer{})
	r := srv.Routes()

	rec := doJSON(t, r, http.MethodGet, "/api/audits/visibility", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var res struct {
		Variant   string            `json:"variant"`
		Questions []domain.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "visibility", res.Variant)
	assert.NotEmpty(t, res.Questions)

	rec = doJSON(t, r, http.MethodGet, "/api/audits/bogus", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSnapshotLifecycle(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{}, &fakeAnalyzer{})
	r := srv.Routes()

	rec := doJSON(t, r, http.MethodGet, "/api/snapshots/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/api/snapshots/abc", map[string]any{"answers": map[string]int{"q1": 7}})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/snapshots/abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "abc", snap.Key)
	assert.JSONEq(t, `{"answers":{"q1":7}}`, string(snap.Payload))

	rec = doJSON(t, r, http.MethodDelete, "/api/snapshots/abc", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, r, http.MethodGet, "/api/snapshots/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitLeadStateless(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{text: "# Report"}, &fakeAnalyzer{})
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/submit-lead", map[string]any{
		"name":  "Jo",
		"email": "jo@example.com",
		"businessContext": map[string]string{
			"name": "Acme", "city": "Huntsville", "industry": "Home Services", "url": "none",
		},
		"answers": map[string]int{"google-ranking": 6, "gbp-status": 10},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res struct {
		SessionID string             `json:"sessionId"`
		Scores    domain.ScoreResult `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.SessionID)
	assert.Len(t, res.Scores.Categories, 3)
	assert.Equal(t, "F", res.Scores.OverallGrade)
}

func TestSubmitLeadRequiresContact(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{}, &fakeAnalyzer{})
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/submit-lead", map[string]any{"name": "Jo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &fakeLLM{}, &fakeAnalyzer{})
	rec := doJSON(t, srv.Routes(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
