// File path: internal/agent/graph.go

// Package agent is the conversational assistant. It drives a chat provider
// through a small tool loop so the model can inspect and edit a session's
// configuration and trigger document generation on the user's behalf.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	langgraphgo "github.com/tmc/langgraphgo"

	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/common/telemetry"
	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/llm"
	"github.com/lexigen/lexigen/internal/session"
)

// maxToolRounds bounds the tool loop; the model gets this many chances to
// call tools before its last reply is returned as-is.
const maxToolRounds = 4

type DocumentService interface {
	Generate(cfg docgen.Config, docTypes []docgen.DocType, format docgen.Format) ([]docgen.Document, error)
}

type Runner struct {
	provider llm.Provider
	sessions *session.Coordinator
	docs     DocumentService
}

func NewRunner(provider llm.Provider, sessions *session.Coordinator, docs DocumentService) *Runner {
	return &Runner{provider: provider, sessions: sessions, docs: docs}
}

// toolCall is the fenced JSON payload the model emits to invoke a tool.
type toolCall struct {
	Tool string                 `json:"tool"`
	Args map[string]interface{} `json:"args"`
}

const systemPrompt = `You are an assistant that helps users prepare legal documents
(privacy policy, terms of service, cookie policy, EULA, refund policy) by
filling in a configuration describing their business.

To act, reply with exactly one fenced json block and nothing else:

` + "```json" + `
{"tool": "<name>", "args": {...}}
` + "```" + `

Available tools:
- set_config: args are configuration fields to change, e.g. {"company_name": "Acme"}
- get_config: args empty; returns the current configuration
- generate_documents: args {"doc_types": ["privacy", "tos", "cookie", "eula", "refund"] or ["all"], "format": "markdown"|"html"}
- reset_config: args empty; restores every field to its default

When no tool is needed, answer the user in plain text.`

// Run executes one assistant turn for the given session. The provider may
// call tools for a bounded number of rounds; tool results are fed back as
// system messages until the provider answers in plain text.
func (r *Runner) Run(ctx context.Context, sessionID, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("agent: empty prompt")
	}
	ctx, done := telemetry.StartSpan(ctx, "assistant.run")
	defer done("session_id", sessionID)
	graph := langgraphgo.NewGraph(func(ctx context.Context, goal string) (string, error) {
		if r.provider == nil {
			return fmt.Sprintf("no assistant provider available: %s", goal), nil
		}
		messages := []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: goal},
		}
		for round := 0; round < maxToolRounds; round++ {
			reply, err := r.provider.Chat(ctx, messages)
			if err != nil {
				return "", err
			}
			call, ok := parseToolCall(reply)
			if !ok {
				return reply, nil
			}
			result := r.dispatch(ctx, sessionID, call)
			common.Logger().Info("agent: tool executed", "tool", call.Tool, "session_id", sessionID)
			messages = append(messages,
				llm.Message{Role: "assistant", Content: reply},
				llm.Message{Role: "system", Content: "Tool result: " + result},
			)
		}
		return r.provider.Chat(ctx, append(messages,
			llm.Message{Role: "system", Content: "Tool budget exhausted; answer the user now in plain text."}))
	})
	return graph.Run(ctx, prompt)
}

// parseToolCall extracts a fenced json tool invocation from a model reply.
func parseToolCall(reply string) (toolCall, bool) {
	trimmed := strings.TrimSpace(reply)
	start := strings.Index(trimmed, "```json")
	if start < 0 {
		return toolCall{}, false
	}
	rest := trimmed[start+len("```json"):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return toolCall{}, false
	}
	var call toolCall
	if err := json.Unmarshal([]byte(strings.TrimSpace(rest[:end])), &call); err != nil {
		return toolCall{}, false
	}
	if call.Tool == "" {
		return toolCall{}, false
	}
	return call, true
}

func (r *Runner) dispatch(ctx context.Context, sessionID string, call toolCall) string {
	telemetry.RecordAssistantTool(call.Tool)
	switch call.Tool {
	case "set_config":
		return r.toolSetConfig(ctx, sessionID, call.Args)
	case "get_config":
		return r.toolGetConfig(ctx, sessionID)
	case "generate_documents":
		return r.toolGenerate(ctx, sessionID, call.Args)
	case "reset_config":
		return r.toolReset(ctx, sessionID)
	default:
		return fmt.Sprintf("unknown tool %q", call.Tool)
	}
}

func (r *Runner) toolSetConfig(ctx context.Context, sessionID string, args map[string]interface{}) string {
	if len(args) == 0 {
		return "no fields provided"
	}
	_, ignored, err := r.sessions.PatchConfig(ctx, sessionID, args)
	if err != nil {
		return "updating the configuration failed: " + err.Error()
	}
	if len(ignored) > 0 {
		return fmt.Sprintf("configuration updated; unknown fields ignored: %s", strings.Join(ignored, ", "))
	}
	return "configuration updated"
}

func (r *Runner) toolGetConfig(ctx context.Context, sessionID string) string {
	rec, err := r.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return "loading the configuration failed: " + err.Error()
	}
	payload, err := json.Marshal(rec.Config)
	if err != nil {
		return "encoding the configuration failed: " + err.Error()
	}
	return string(payload)
}

func (r *Runner) toolGenerate(ctx context.Context, sessionID string, args map[string]interface{}) string {
	rec, err := r.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return "loading the session failed: " + err.Error()
	}
	docTypes, err := parseDocTypesArg(args["doc_types"])
	if err != nil {
		return err.Error()
	}
	format := docgen.FormatMarkdown
	if raw, ok := args["format"].(string); ok {
		parsed, err := docgen.ParseFormat(raw)
		if err != nil {
			return err.Error()
		}
		format = parsed
	}
	docs, err := r.docs.Generate(rec.Config, docTypes, format)
	if err != nil {
		return "document generation failed: " + err.Error()
	}
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Filename)
	}
	return "generated: " + strings.Join(names, ", ")
}

func (r *Runner) toolReset(ctx context.Context, sessionID string) string {
	if _, err := r.sessions.ResetConfig(ctx, sessionID); err != nil {
		return "resetting the configuration failed: " + err.Error()
	}
	return "configuration reset to defaults"
}

func parseDocTypesArg(raw interface{}) ([]docgen.DocType, error) {
	list, ok := raw.([]interface{})
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("doc_types must be a non-empty list")
	}
	docTypes := make([]docgen.DocType, 0, len(list))
	for _, item := range list {
		name, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("doc_types entries must be strings")
		}
		// "all" expands to every supported document type.
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			return docgen.DocTypes(), nil
		}
		docType, err := docgen.ParseDocType(name)
		if err != nil {
			return nil, err
		}
		docTypes = append(docTypes, docType)
	}
	return docTypes, nil
}
