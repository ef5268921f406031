// File path: internal/api/documents_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/session"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: generate decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("session_id required"))
		return
	}
	if len(req.DocumentTypes) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("document_types required"))
		return
	}
	docTypes := make([]docgen.DocType, 0, len(req.DocumentTypes))
	for _, raw := range req.DocumentTypes {
		docType, err := docgen.ParseDocType(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("document type %q: %w", raw, err))
			return
		}
		docTypes = append(docTypes, docType)
	}
	format, err := docgen.ParseFormat(req.Format)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("format %q: %w", req.Format, err))
		return
	}
	rec, err := s.sessions.GetSession(r.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("session %s not found", req.SessionID))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	documents, err := s.docs.Generate(rec.Config, docTypes, format)
	if err != nil {
		logger.Error("api: generate failed", "session", req.SessionID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: documents generated", "session", req.SessionID, "count", len(documents), "format", format)
	writeJSON(w, http.StatusOK, generateResponse{Status: "success", Documents: documents})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	rec, err := s.sessions.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("session %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	docType, err := docgen.ParseDocType(chi.URLParam(r, "doc_type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	format, err := docgen.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	doc, err := s.docs.Preview(rec.Config, docType, format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{DocType: string(doc.DocType), Content: doc.Content, Format: string(doc.Format)})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	filename := chi.URLParam(r, "filename")
	data, err := s.docs.Open(filename)
	if err != nil {
		switch {
		case errors.Is(err, docgen.ErrInvalidFilename):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, docgen.ErrDocumentNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	logger.Info("api: document download", "filename", filename, "bytes", len(data))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
