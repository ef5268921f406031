// File path: internal/docgen/service_test.go
package docgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	return svc
}

func TestGenerateWritesFiles(t *testing.T) {
	svc := newTestService(t)
	cfg := Defaults()
	cfg.CompanyName = "Acme Corp"

	docs, err := svc.Generate(cfg, []DocType{DocPrivacy, DocTerms}, FormatMarkdown)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(docs))
	}
	if docs[0].Filename != "acme_corp_privacy_policy_20250314_092653.md" {
		t.Fatalf("filename = %q", docs[0].Filename)
	}
	if docs[1].Filename != "acme_corp_terms_of_service_20250314_092653.md" {
		t.Fatalf("filename = %q", docs[1].Filename)
	}
	data, err := os.ReadFile(filepath.Join(svc.OutputRoot(), docs[0].Filename))
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Privacy Policy") {
		t.Fatalf("unexpected file content: %.40s", data)
	}
}

func TestGenerateHTMLExtension(t *testing.T) {
	svc := newTestService(t)
	docs, err := svc.Generate(Defaults(), []DocType{DocCookie}, FormatHTML)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasSuffix(docs[0].Filename, ".html") {
		t.Fatalf("filename = %q, want .html", docs[0].Filename)
	}
	if !strings.HasPrefix(docs[0].Content, "<!DOCTYPE html>") {
		t.Fatalf("content is not html")
	}
}

func TestCompanySlug(t *testing.T) {
	cfg := Config{CompanyName: "Very Long Company Name Incorporated"}
	slug := companySlug(cfg)
	if len(slug) != slugMaxLen {
		t.Fatalf("slug length = %d, want %d", len(slug), slugMaxLen)
	}
	if strings.Contains(slug, " ") || slug != strings.ToLower(slug) {
		t.Fatalf("slug not normalized: %q", slug)
	}
	if got := companySlug(Config{}); got != "document" {
		t.Fatalf("empty name slug = %q", got)
	}
}

func TestPreviewDoesNotWrite(t *testing.T) {
	svc := newTestService(t)
	doc, err := svc.Preview(Defaults(), DocEULA, FormatMarkdown)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if doc.Filename != "" {
		t.Fatalf("preview should not name a file, got %q", doc.Filename)
	}
	entries, err := os.ReadDir(svc.OutputRoot())
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("preview wrote %d files", len(entries))
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	svc := newTestService(t)
	for _, name := range []string{
		"../etc/passwd",
		"..\\secrets.md",
		"a/b.md",
		"..",
		"",
	} {
		if _, err := svc.Open(name); err != ErrInvalidFilename {
			t.Errorf("Open(%q) err = %v, want ErrInvalidFilename", name, err)
		}
	}
	if _, err := svc.Open("missing_privacy_policy_20250314.md"); err != ErrDocumentNotFound {
		t.Errorf("missing file err = %v, want ErrDocumentNotFound", err)
	}
}

func TestOpenRoundTrip(t *testing.T) {
	svc := newTestService(t)
	docs, err := svc.Generate(Defaults(), []DocType{DocRefund}, FormatMarkdown)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := svc.Open(docs[0].Filename)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(data) != docs[0].Content {
		t.Fatalf("downloaded content differs from generated content")
	}
}
