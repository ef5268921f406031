// File path: internal/docgen/service.go
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/common/telemetry"
)

const slugMaxLen = 20

// Service renders documents from a configuration and manages the generated
// files on disk.
type Service struct {
	outputRoot string
	now        func() time.Time
}

func NewService(outputRoot string) (*Service, error) {
	if outputRoot == "" {
		outputRoot = "generated_policies"
	}
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return nil, fmt.Errorf("docgen: create output dir: %w", err)
	}
	return &Service{outputRoot: outputRoot, now: time.Now}, nil
}

// OutputRoot returns the directory generated documents are written to.
func (s *Service) OutputRoot() string {
	return s.outputRoot
}

// Generate renders each requested document type, writes it under the output
// directory, and returns the rendered documents. All documents from a single
// call share one timestamp so they sort together.
func (s *Service) Generate(cfg Config, docTypes []DocType, format Format) ([]Document, error) {
	logger := common.Logger()
	start := time.Now()
	timestamp := s.now().Format("20060102_150405")
	slug := companySlug(cfg)
	docs := make([]Document, 0, len(docTypes))
	names := make([]string, 0, len(docTypes))
	for _, docType := range docTypes {
		content, err := Render(cfg, docType, format)
		if err != nil {
			return nil, err
		}
		filename := fmt.Sprintf("%s_%s_%s.%s", slug, docType.fileStem(), timestamp, format.ext())
		path := filepath.Join(s.outputRoot, filename)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("docgen: write %s: %w", filename, err)
		}
		logger.Info("docgen: document generated", "doc_type", string(docType), "filename", filename)
		docs = append(docs, Document{
			DocType:  docType,
			Filename: filename,
			Content:  content,
			Format:   format,
		})
		names = append(names, string(docType))
	}
	telemetry.RecordGenerate(names, time.Since(start))
	return docs, nil
}

// Preview renders a single document without touching the filesystem.
func (s *Service) Preview(cfg Config, docType DocType, format Format) (Document, error) {
	content, err := Render(cfg, docType, format)
	if err != nil {
		return Document{}, err
	}
	return Document{DocType: docType, Content: content, Format: format}, nil
}

// Open returns the contents of a previously generated document. The filename
// must be a bare name produced by Generate; anything that would escape the
// output directory is rejected.
func (s *Service) Open(filename string) ([]byte, error) {
	if filename == "" || filename != filepath.Base(filename) ||
		strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return nil, ErrInvalidFilename
	}
	path := filepath.Join(s.outputRoot, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("docgen: read %s: %w", filename, err)
	}
	return data, nil
}

func companySlug(cfg Config) string {
	name := strings.TrimSpace(cfg.CompanyName)
	if name == "" {
		name = "document"
	}
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	if len(slug) > slugMaxLen {
		slug = slug[:slugMaxLen]
	}
	return slug
}
