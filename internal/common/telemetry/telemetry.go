// File path: internal/common/telemetry/telemetry.go
package telemetry

import (
	"context"
	"expvar"
	"strings"
	"sync"
	"time"

	"github.com/lexigen/lexigen/internal/common"
)

type spanKey struct{}

type span struct {
	name  string
	start time.Time
}

var (
	initOnce sync.Once

	generateTotal     *expvar.Int
	generateDocsTotal *expvar.Map
	generateLatencyMS *expvar.Int

	sessionsCreated *expvar.Int
	sessionsExpired *expvar.Int

	assistantToolTotal *expvar.Map
)

func ensureInit() {
	initOnce.Do(func() {
		generateTotal = expvar.NewInt("lexigen_generate_total")
		generateDocsTotal = expvar.NewMap("lexigen_generate_docs_total")
		generateLatencyMS = expvar.NewInt("lexigen_generate_latency_ms")

		sessionsCreated = expvar.NewInt("lexigen_sessions_created_total")
		sessionsExpired = expvar.NewInt("lexigen_sessions_expired_total")

		assistantToolTotal = expvar.NewMap("lexigen_assistant_tool_total")
	})
}

func StartSpan(ctx context.Context, name string) (context.Context, func(attrs ...interface{})) {
	ensureInit()
	sp := &span{name: name, start: time.Now()}
	ctx = context.WithValue(ctx, spanKey{}, sp)
	logger := common.Logger()
	logger.Debug("trace: start", "span", name)
	return ctx, func(attrs ...interface{}) {
		if sp == nil {
			return
		}
		duration := time.Since(sp.start)
		logger.Debug("trace: end", append([]interface{}{"span", name, "dur", duration}, attrs...)...)
	}
}

// RecordGenerate counts one generation request and its per-type documents.
func RecordGenerate(docTypes []string, duration time.Duration) {
	ensureInit()
	generateTotal.Add(1)
	for _, docType := range docTypes {
		key := strings.TrimSpace(strings.ToLower(docType))
		if key == "" {
			key = "unknown"
		}
		generateDocsTotal.Add(key, 1)
	}
	if duration > 0 {
		generateLatencyMS.Add(duration.Milliseconds())
	}
}

func RecordSessionCreated() {
	ensureInit()
	sessionsCreated.Add(1)
}

func RecordSessionsExpired(count int) {
	ensureInit()
	if count <= 0 {
		return
	}
	sessionsExpired.Add(int64(count))
}

func RecordAssistantTool(tool string) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(tool))
	if key == "" {
		key = "unknown"
	}
	assistantToolTotal.Add(key, 1)
}

func SpanDuration(ctx context.Context) time.Duration {
	sp, _ := ctx.Value(spanKey{}).(*span)
	if sp == nil {
		return 0
	}
	return time.Since(sp.start)
}
