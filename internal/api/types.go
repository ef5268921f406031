// File path: internal/api/types.go
package api

import (
	"time"

	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/session"
	"github.com/lexigen/lexigen/internal/wizard"
)

type sessionResponse struct {
	SessionID string        `json:"session_id"`
	Config    docgen.Config `json:"config"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newSessionResponse(rec session.Record) sessionResponse {
	return sessionResponse{
		SessionID: rec.ID,
		Config:    rec.Config,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

type patchConfigResponse struct {
	Status  string        `json:"status"`
	Config  docgen.Config `json:"config"`
	Ignored []string      `json:"ignored_keys,omitempty"`
}

type generateRequest struct {
	SessionID     string   `json:"session_id"`
	DocumentTypes []string `json:"document_types"`
	Format        string   `json:"format"`
}

type generateResponse struct {
	Status    string            `json:"status"`
	Documents []docgen.Document `json:"documents"`
}

type previewResponse struct {
	DocType string `json:"doc_type"`
	Content string `json:"content"`
	Format  string `json:"format"`
}

type wizardStepsResponse struct {
	DocType string        `json:"doc_type"`
	Steps   []wizard.Step `json:"steps"`
}

type configDefaultsResponse struct {
	Config docgen.Config `json:"config"`
	Fields []string      `json:"fields"`
}

type assistantRequest struct {
	SessionID string `json:"session_id"`
	Prompt    string `json:"prompt"`
}

type assistantResponse struct {
	Answer   string `json:"answer"`
	Provider string `json:"provider"`
}
