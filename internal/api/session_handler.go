// File path: internal/api/session_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/session"
)

// dangerousKeys are rejected outright in config patches instead of being
// reported as ignored; they exist only in hostile payloads.
var dangerousKeys = []string{"__proto__", "constructor", "prototype"}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	rec, err := s.sessions.CreateSession(r.Context())
	if err != nil {
		logger.Error("api: session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: session created", "session", rec.ID)
	writeJSON(w, http.StatusCreated, newSessionResponse(rec))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid session id %q", id))
		return
	}
	rec, err := s.sessions.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("session %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(rec))
}

func (s *Server) handlePatchConfig(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid session id %q", id))
		return
	}
	var partial map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		logger.Warn("api: config patch decode failed", "session", id, "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	for _, key := range dangerousKeys {
		if _, ok := partial[key]; ok {
			logger.Warn("api: dangerous config key rejected", "session", id, "key", key)
			writeError(w, http.StatusBadRequest, fmt.Errorf("config key %q not allowed", key))
			return
		}
	}
	rec, ignored, err := s.sessions.PatchConfig(r.Context(), id, partial)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("session %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: config patched", "session", id, "keys", len(partial), "ignored", len(ignored))
	writeJSON(w, http.StatusOK, patchConfigResponse{Status: "success", Config: rec.Config, Ignored: ignored})
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid session id %q", id))
		return
	}
	rec, err := s.sessions.ResetConfig(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("session %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: session reset", "session", id)
	writeJSON(w, http.StatusOK, newSessionResponse(rec))
}
