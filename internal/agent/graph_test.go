// File path: internal/agent/graph_test.go
package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/llm"
	"github.com/lexigen/lexigen/internal/session"
)

type scriptedProvider struct {
	replies []string
	calls   int
	seen    [][]llm.Message
}

func (p *scriptedProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	p.seen = append(p.seen, messages)
	if p.calls >= len(p.replies) {
		return "done", nil
	}
	reply := p.replies[p.calls]
	p.calls++
	return reply, nil
}

func (p *scriptedProvider) Name() string { return "scripted" }

type stubDocs struct {
	calls     int
	lastTypes []docgen.DocType
}

func (d *stubDocs) Generate(cfg docgen.Config, docTypes []docgen.DocType, format docgen.Format) ([]docgen.Document, error) {
	d.calls++
	d.lastTypes = docTypes
	docs := make([]docgen.Document, 0, len(docTypes))
	for _, dt := range docTypes {
		docs = append(docs, docgen.Document{DocType: dt, Filename: string(dt) + ".md", Format: format})
	}
	return docs, nil
}

func newTestRunner(provider llm.Provider) (*Runner, *session.Coordinator, *stubDocs) {
	coordinator := session.NewCoordinator(session.NewMemoryStore(), time.Hour)
	docs := &stubDocs{}
	return NewRunner(provider, coordinator, docs), coordinator, docs
}

func TestRunPlainAnswer(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"Your privacy policy should name a contact email."}}
	runner, coordinator, _ := newTestRunner(provider)
	rec, _ := coordinator.CreateSession(context.Background())

	out, err := runner.Run(context.Background(), rec.ID, "what should a privacy policy contain?")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "contact email") {
		t.Fatalf("unexpected answer: %q", out)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}
}

func TestRunToolLoopPatchesConfig(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		"```json\n{\"tool\": \"set_config\", \"args\": {\"company_name\": \"Acme Corp\"}}\n```",
		"I set your company name to Acme Corp.",
	}}
	runner, coordinator, _ := newTestRunner(provider)
	rec, _ := coordinator.CreateSession(context.Background())

	out, err := runner.Run(context.Background(), rec.ID, "my company is Acme Corp")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Acme Corp") {
		t.Fatalf("unexpected answer: %q", out)
	}

	got, err := coordinator.GetSession(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Config.CompanyName != "Acme Corp" {
		t.Fatalf("tool did not patch the config: %q", got.Config.CompanyName)
	}

	// The second provider call must carry the tool result back.
	last := provider.seen[1]
	found := false
	for _, msg := range last {
		if msg.Role == "system" && strings.Contains(msg.Content, "configuration updated") {
			found = true
		}
	}
	if !found {
		t.Fatalf("tool result not fed back to the provider")
	}
}

func TestRunGenerateTool(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		"```json\n{\"tool\": \"generate_documents\", \"args\": {\"doc_types\": [\"privacy\", \"tos\"], \"format\": \"markdown\"}}\n```",
		"Both documents are ready.",
	}}
	runner, coordinator, docs := newTestRunner(provider)
	rec, _ := coordinator.CreateSession(context.Background())

	if _, err := runner.Run(context.Background(), rec.ID, "generate my documents"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if docs.calls != 1 {
		t.Fatalf("document service calls = %d, want 1", docs.calls)
	}
}

func TestRunGenerateAllExpansion(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		"```json\n{\"tool\": \"generate_documents\", \"args\": {\"doc_types\": [\"all\"], \"format\": \"markdown\"}}\n```",
		"All five documents are ready.",
	}}
	runner, coordinator, docs := newTestRunner(provider)
	rec, _ := coordinator.CreateSession(context.Background())

	if _, err := runner.Run(context.Background(), rec.ID, "generate everything"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if docs.calls != 1 {
		t.Fatalf("document service calls = %d, want 1", docs.calls)
	}
	if len(docs.lastTypes) != len(docgen.DocTypes()) {
		t.Fatalf("doc types = %v, want all five", docs.lastTypes)
	}
}

func TestRunUnknownToolReported(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		"```json\n{\"tool\": \"delete_everything\", \"args\": {}}\n```",
		"Sorry, I cannot do that.",
	}}
	runner, coordinator, _ := newTestRunner(provider)
	rec, _ := coordinator.CreateSession(context.Background())

	out, err := runner.Run(context.Background(), rec.ID, "wipe it all")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "Sorry, I cannot do that." {
		t.Fatalf("answer = %q", out)
	}
	last := provider.seen[1]
	found := false
	for _, msg := range last {
		if strings.Contains(msg.Content, "unknown tool") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown tool result not surfaced to the provider")
	}
}

func TestRunToolBudget(t *testing.T) {
	loop := "```json\n{\"tool\": \"get_config\", \"args\": {}}\n```"
	provider := &scriptedProvider{replies: []string{loop, loop, loop, loop, "final answer"}}
	runner, coordinator, _ := newTestRunner(provider)
	rec, _ := coordinator.CreateSession(context.Background())

	out, err := runner.Run(context.Background(), rec.ID, "loop forever")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "final answer" {
		t.Fatalf("answer = %q", out)
	}
	if provider.calls != maxToolRounds+1 {
		t.Fatalf("provider calls = %d, want %d", provider.calls, maxToolRounds+1)
	}
}

func TestRunEmptyPrompt(t *testing.T) {
	runner, _, _ := newTestRunner(&scriptedProvider{})
	if _, err := runner.Run(context.Background(), "any", "   "); err == nil {
		t.Fatalf("empty prompt must be rejected")
	}
}

func TestParseToolCall(t *testing.T) {
	if _, ok := parseToolCall("plain text, no tools"); ok {
		t.Fatalf("plain text must not parse as a tool call")
	}
	if _, ok := parseToolCall("```json\n{not json}\n```"); ok {
		t.Fatalf("bad json must not parse")
	}
	call, ok := parseToolCall("Sure!\n```json\n{\"tool\": \"reset_config\", \"args\": {}}\n```")
	if !ok || call.Tool != "reset_config" {
		t.Fatalf("call = %+v ok = %v", call, ok)
	}
}
