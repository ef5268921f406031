// File path: internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/lexigen/lexigen/internal/agent"
	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/llm"
	"github.com/lexigen/lexigen/internal/session"
)

type Server struct {
	router   chi.Router
	sessions *session.Coordinator
	docs     *docgen.Service
	provider llm.Provider
	agent    *agent.Runner
}

func NewServer(ctx context.Context, sessions *session.Coordinator, docs *docgen.Service, provider llm.Provider) (*Server, error) {
	logger := common.Logger()
	if sessions == nil {
		return nil, fmt.Errorf("session coordinator required")
	}
	if docs == nil {
		return nil, fmt.Errorf("document service required")
	}
	providerName := "unknown"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: building server", "provider", providerName, "output", docs.OutputRoot())
	srv := &Server{
		router:   chi.NewRouter(),
		sessions: sessions,
		docs:     docs,
		provider: provider,
		agent:    agent.NewRunner(provider, sessions, docs),
	}
	srv.routes()
	logger.Info("api: server ready", "routes", true)
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	uiPath := filepath.Join("web", "ui")
	if _, err := os.Stat(filepath.Join(uiPath, "index.html")); err != nil {
		logger.Warn("api: ui index missing", "path", filepath.Join(uiPath, "index.html"), "error", err)
	} else {
		logger.Info("api: ui assets located", "path", uiPath)
	}
	uiDir := http.Dir(uiPath)
	fileServer := http.FileServer(uiDir)
	s.router.Get("/ui", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusMovedPermanently)
	})
	s.router.Get("/ui/*", func(w http.ResponseWriter, r *http.Request) {
		trimmed := strings.TrimPrefix(r.URL.Path, "/ui/")
		if trimmed == "" || trimmed == "/" {
			http.ServeFile(w, r, filepath.Join("web", "ui", "index.html"))
			return
		}
		http.StripPrefix("/ui/", fileServer).ServeHTTP(w, r)
	})

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusFound)
	})

	s.router.Post("/api/v1/sessions", s.handleCreateSession)
	s.router.Get("/api/v1/sessions/{id}", s.handleGetSession)
	s.router.Patch("/api/v1/sessions/{id}/config", s.handlePatchConfig)
	s.router.Post("/api/v1/sessions/{id}/reset", s.handleResetSession)
	s.router.Post("/api/v1/documents/generate", s.handleGenerate)
	s.router.Get("/api/v1/documents/preview/{session_id}/{doc_type}", s.handlePreview)
	s.router.Get("/api/v1/documents/download/{filename}", s.handleDownload)
	s.router.Get("/api/v1/config/defaults", s.handleConfigDefaults)
	s.router.Get("/api/v1/wizard/steps", s.handleWizardSteps)
	s.router.Post("/api/v1/assistant", s.handleAssistant)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	combined := append([]common.LogEntry(nil), common.LogEntries()...)
	sort.SliceStable(combined, func(i, j int) bool {
		if combined[i].Time.Equal(combined[j].Time) {
			if combined[i].Component == combined[j].Component {
				if combined[i].Level == combined[j].Level {
					return combined[i].Message < combined[j].Message
				}
				return combined[i].Level < combined[j].Level
			}
			return combined[i].Component < combined[j].Component
		}
		return combined[i].Time.Before(combined[j].Time)
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": combined})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
