// File path: internal/api/server_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/llm"
	"github.com/lexigen/lexigen/internal/session"
)

type scriptedProvider struct {
	replies []string
	calls   int
}

func (p *scriptedProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	if p.calls >= len(p.replies) {
		return "", fmt.Errorf("no scripted reply for call %d", p.calls)
	}
	reply := p.replies[p.calls]
	p.calls++
	return reply, nil
}

func (p *scriptedProvider) Name() string { return "scripted" }

func newTestServer(t *testing.T, provider llm.Provider) *Server {
	t.Helper()
	sessions := session.NewCoordinator(session.NewMemoryStore(), session.DefaultTTL)
	docs, err := docgen.NewService(t.TempDir())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	srv, err := NewServer(context.Background(), sessions, docs, provider)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, srv *Server) sessionResponse {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/sessions", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status %d body %s", rec.Code, rec.Body.String())
	}
	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatalf("expected session id")
	}
	return resp
}

func TestRootRedirectDoesNotShadowAPIRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodGet, "/", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/ui/" {
		t.Fatalf("root: status %d location %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/config/defaults", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("defaults behind root redirect: status %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/v1/logs", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logs behind root redirect: status %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz: status %d body %q", rec.Code, rec.Body.String())
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t, nil)
	created := createSession(t, srv)
	if created.Config.MinimumAge != 18 {
		t.Fatalf("expected default minimum age, got %d", created.Config.MinimumAge)
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/sessions/"+created.SessionID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get session: status %d", rec.Code)
	}

	patch := map[string]interface{}{
		"company_name": "Acme Corp",
		"website_url":  "https://acme.example",
		"bogus_field":  true,
	}
	rec = doJSON(t, srv, http.MethodPatch, "/api/v1/sessions/"+created.SessionID+"/config", patch)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch config: status %d body %s", rec.Code, rec.Body.String())
	}
	var patched patchConfigResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &patched); err != nil {
		t.Fatalf("decode patch: %v", err)
	}
	if patched.Config.CompanyName != "Acme Corp" {
		t.Fatalf("expected company name applied, got %q", patched.Config.CompanyName)
	}
	if len(patched.Ignored) != 1 || patched.Ignored[0] != "bogus_field" {
		t.Fatalf("expected bogus_field ignored, got %v", patched.Ignored)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/sessions/"+created.SessionID+"/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: status %d", rec.Code)
	}
	var reset sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &reset); err != nil {
		t.Fatalf("decode reset: %v", err)
	}
	if reset.SessionID != created.SessionID {
		t.Fatalf("reset changed session id")
	}
	if reset.Config.CompanyName != "" {
		t.Fatalf("expected reset to clear company name, got %q", reset.Config.CompanyName)
	}
}

func TestSessionIDValidation(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/sessions/93a1b8ca-33ba-4f07-9a36-6d2a2f5e1a00", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestPatchRejectsDangerousKeys(t *testing.T) {
	srv := newTestServer(t, nil)
	created := createSession(t, srv)
	for _, key := range []string{"__proto__", "constructor", "prototype"} {
		rec := doJSON(t, srv, http.MethodPatch, "/api/v1/sessions/"+created.SessionID+"/config",
			map[string]interface{}{key: "x"})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("key %q: expected 400, got %d", key, rec.Code)
		}
	}
}

func TestGenerateAndDownload(t *testing.T) {
	srv := newTestServer(t, nil)
	created := createSession(t, srv)
	doJSON(t, srv, http.MethodPatch, "/api/v1/sessions/"+created.SessionID+"/config",
		map[string]interface{}{"company_name": "Acme Corp", "gdpr_compliant": true})

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/documents/generate", generateRequest{
		SessionID:     created.SessionID,
		DocumentTypes: []string{"privacy", "tos"},
		Format:        "markdown",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate: status %d body %s", rec.Code, rec.Body.String())
	}
	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode generate: %v", err)
	}
	if resp.Status != "success" || len(resp.Documents) != 2 {
		t.Fatalf("unexpected generate response: %+v", resp)
	}
	for _, doc := range resp.Documents {
		if !strings.HasPrefix(doc.Filename, "acme_corp_") {
			t.Errorf("filename %q missing company slug", doc.Filename)
		}
		if doc.Content == "" {
			t.Errorf("document %s has empty content", doc.DocType)
		}
	}

	dl := doJSON(t, srv, http.MethodGet, "/api/v1/documents/download/"+resp.Documents[0].Filename, nil)
	if dl.Code != http.StatusOK {
		t.Fatalf("download: status %d", dl.Code)
	}
	if got := dl.Header().Get("Content-Type"); got != "application/octet-stream" {
		t.Fatalf("download content type %q", got)
	}
	if dl.Body.String() != resp.Documents[0].Content {
		t.Fatalf("download body does not match generated content")
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	srv := newTestServer(t, nil)
	created := createSession(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/documents/generate", generateRequest{
		SessionID:     "93a1b8ca-33ba-4f07-9a36-6d2a2f5e1a00",
		DocumentTypes: []string{"privacy"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown session: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/documents/generate", generateRequest{
		SessionID:     created.SessionID,
		DocumentTypes: []string{"warranty"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown doc type: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/documents/generate", generateRequest{
		SessionID: created.SessionID,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty doc types: expected 400, got %d", rec.Code)
	}
}

func TestPreview(t *testing.T) {
	srv := newTestServer(t, nil)
	created := createSession(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/documents/preview/"+created.SessionID+"/cookie?format=html", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("preview: status %d body %s", rec.Code, rec.Body.String())
	}
	var resp previewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if resp.DocType != "cookie" || resp.Format != "html" {
		t.Fatalf("unexpected preview: %+v", resp)
	}
	if !strings.Contains(resp.Content, "<h1>") {
		t.Fatalf("expected html preview content")
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/documents/preview/93a1b8ca-33ba-4f07-9a36-6d2a2f5e1a00/cookie", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing session: expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/documents/preview/"+created.SessionID+"/warranty", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad doc type: expected 400, got %d", rec.Code)
	}
}

func TestDownloadRejectsTraversal(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/documents/download/..%2Fsecrets.md", nil)
	if rec.Code != http.StatusBadRequest && rec.Code != http.StatusNotFound {
		t.Fatalf("traversal name: expected rejection, got %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/documents/download/missing_privacy_policy_20250101_000000.md", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing file: expected 404, got %d", rec.Code)
	}
}

func TestWizardSteps(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/wizard/steps?doc_type=cookie", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("steps: status %d", rec.Code)
	}
	var resp wizardStepsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode steps: %v", err)
	}
	if len(resp.Steps) != 5 {
		t.Fatalf("expected 5 cookie policy steps, got %d", len(resp.Steps))
	}
	if resp.Steps[0].ID != "business" || resp.Steps[len(resp.Steps)-1].ID != "review" {
		t.Fatalf("unexpected step order: first %q last %q", resp.Steps[0].ID, resp.Steps[len(resp.Steps)-1].ID)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/wizard/steps?doc_type=warranty", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad doc type: expected 400, got %d", rec.Code)
	}
}

func TestConfigDefaults(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/config/defaults", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("defaults: status %d", rec.Code)
	}
	var resp configDefaultsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode defaults: %v", err)
	}
	if !resp.Config.UsesCookies {
		t.Fatalf("expected cookie default on")
	}
	if len(resp.Fields) < 100 {
		t.Fatalf("expected full field listing, got %d", len(resp.Fields))
	}
}

func TestAssistant(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		"```json\n{\"tool\": \"set_config\", \"args\": {\"company_name\": \"Acme Corp\"}}\n```",
		"Done, I set your company name to Acme Corp.",
	}}
	srv := newTestServer(t, provider)
	created := createSession(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/assistant", assistantRequest{
		SessionID: created.SessionID,
		Prompt:    "Set my company name to Acme Corp",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("assistant: status %d body %s", rec.Code, rec.Body.String())
	}
	var resp assistantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode assistant: %v", err)
	}
	if !strings.Contains(resp.Answer, "Acme Corp") {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
	if resp.Provider != "scripted" {
		t.Fatalf("unexpected provider %q", resp.Provider)
	}

	got := doJSON(t, srv, http.MethodGet, "/api/v1/sessions/"+created.SessionID, nil)
	var after sessionResponse
	if err := json.Unmarshal(got.Body.Bytes(), &after); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if after.Config.CompanyName != "Acme Corp" {
		t.Fatalf("expected tool call to patch config, got %q", after.Config.CompanyName)
	}
}

func TestAssistantRequiresPrompt(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/assistant", assistantRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty prompt, got %d", rec.Code)
	}
}
