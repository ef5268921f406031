// File path: cmd/lexigen/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lexigen/lexigen/internal/api"
	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/llm"
	"github.com/lexigen/lexigen/internal/session"
	"github.com/lexigen/lexigen/internal/sqlite"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("lexigen: .env file not loaded", "error", err)
	} else {
		logger.Info("lexigen: environment loaded from .env")
	}

	addrDefault := ":8001"
	if env := strings.TrimSpace(os.Getenv("LEXIGEN_ADDR")); env != "" {
		addrDefault = env
	}
	outputDefault := "generated_policies"
	if env := strings.TrimSpace(os.Getenv("LEXIGEN_OUTPUT_DIR")); env != "" {
		outputDefault = env
	}
	ttlDefault := session.DefaultTTL.String()
	if env := strings.TrimSpace(os.Getenv("LEXIGEN_SESSION_TTL")); env != "" {
		ttlDefault = env
	}

	addr := flag.String("addr", addrDefault, "listen address")
	catalogPath := flag.String("catalog", defaultCatalogPath(), "path to the SQLite session catalog (empty for in-memory sessions)")
	outputDir := flag.String("output", outputDefault, "directory for generated documents")
	sessionTTL := flag.String("session-ttl", ttlDefault, "how long an idle session survives (e.g. 30m, 24h)")
	flag.Parse()

	logger.Info("lexigen: startup initiated", "addr", *addr, "catalog", *catalogPath, "output", *outputDir)

	ttl, err := time.ParseDuration(*sessionTTL)
	if err != nil {
		logger.Error("lexigen: invalid session ttl", "value", *sessionTTL, "error", err)
		fmt.Println("session ttl error:", err)
		os.Exit(1)
	}

	var store session.Store
	if trimmed := strings.TrimSpace(*catalogPath); trimmed != "" {
		sqlStore, err := sqlite.Open(trimmed)
		if err != nil {
			logger.Error("lexigen: catalog open failed", "path", trimmed, "error", err)
			fmt.Println("catalog error:", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		store = sqlite.NewCatalog(sqlStore)
		logger.Info("lexigen: session catalog ready", "path", trimmed)
	} else {
		store = session.NewMemoryStore()
		logger.Info("lexigen: using in-memory session store")
	}

	sessions := session.NewCoordinator(store, ttl)

	docs, err := docgen.NewService(*outputDir)
	if err != nil {
		logger.Error("lexigen: document service init failed", "error", err)
		fmt.Println("document service error:", err)
		os.Exit(1)
	}

	provider := llm.NewProvider()
	logger.Info("lexigen: llm provider ready", "provider", provider.Name())

	server, err := api.NewServer(ctx, sessions, docs, provider)
	if err != nil {
		logger.Error("lexigen: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("lexigen: server listening", "addr", *addr, "ui", "/ui/", "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("lexigen: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("lexigen: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultCatalogPath() string {
	if env := strings.TrimSpace(os.Getenv("SQLITE_PATH")); env != "" {
		return env
	}
	return filepath.Join("data", "catalog.db")
}
