// File path: internal/api/assistant_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lexigen/lexigen/internal/common"
)

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: assistant decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Prompt == "" {
		logger.Warn("api: assistant prompt missing")
		writeError(w, http.StatusBadRequest, fmt.Errorf("prompt required"))
		return
	}
	logger.Info("api: assistant request received", "session", req.SessionID, "prompt_length", len(req.Prompt))
	answer, err := s.agent.Run(r.Context(), req.SessionID, req.Prompt)
	if err != nil {
		logger.Error("api: assistant run failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	providerName := "unknown"
	if s.provider != nil {
		providerName = s.provider.Name()
	}
	logger.Info("api: assistant run succeeded", "provider", providerName)
	writeJSON(w, http.StatusOK, assistantResponse{Answer: answer, Provider: providerName})
}
