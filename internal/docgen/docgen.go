// File path: internal/docgen/docgen.go

// Package docgen renders legal documents (privacy policy, terms of
// service, cookie policy, EULA, refund policy) from a configuration
// record describing a business's practices.
package docgen

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DocType identifies one of the five supported document categories.
type DocType string

const (
	DocPrivacy DocType = "privacy"
	DocTerms   DocType = "tos"
	DocCookie  DocType = "cookie"
	DocEULA    DocType = "eula"
	DocRefund  DocType = "refund"
)

// DocTypes lists every supported document type in catalog order.
func DocTypes() []DocType {
	return []DocType{DocPrivacy, DocTerms, DocCookie, DocEULA, DocRefund}
}

// ParseDocType validates a wire value against the closed document type set.
func ParseDocType(value string) (DocType, error) {
	dt := DocType(strings.ToLower(strings.TrimSpace(value)))
	switch dt {
	case DocPrivacy, DocTerms, DocCookie, DocEULA, DocRefund:
		return dt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocType, value)
}

// Title returns the document's display name.
func (d DocType) Title() string {
	switch d {
	case DocPrivacy:
		return "Privacy Policy"
	case DocTerms:
		return "Terms of Service"
	case DocCookie:
		return "Cookie Policy"
	case DocEULA:
		return "End User License Agreement"
	case DocRefund:
		return "Refund Policy"
	default:
		return string(d)
	}
}

func (d DocType) fileStem() string {
	switch d {
	case DocPrivacy:
		return "privacy_policy"
	case DocTerms:
		return "terms_of_service"
	case DocCookie:
		return "cookie_policy"
	case DocEULA:
		return "eula"
	case DocRefund:
		return "refund_policy"
	default:
		return string(d)
	}
}

// Format selects the rendered output representation.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat validates a wire value, defaulting empty input to markdown.
func ParseFormat(value string) (Format, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	switch Format(trimmed) {
	case FormatMarkdown, FormatHTML:
		return Format(trimmed), nil
	case "":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}

func (f Format) ext() string {
	if f == FormatHTML {
		return "html"
	}
	return "md"
}

// Document is one rendered output.
type Document struct {
	DocType  DocType `json:"doc_type"`
	Filename string  `json:"filename,omitempty"`
	Content  string  `json:"content"`
	Format   Format  `json:"format"`
}

var (
	ErrUnknownDocType   = errors.New("unknown document type")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrInvalidFilename  = errors.New("invalid document filename")
	ErrDocumentNotFound = errors.New("document not found")
)

// Render produces the document of the given type from the record.
func Render(cfg Config, docType DocType, format Format) (string, error) {
	var markdown string
	switch docType {
	case DocPrivacy:
		markdown = renderPrivacy(cfg)
	case DocTerms:
		markdown = renderTerms(cfg)
	case DocCookie:
		markdown = renderCookie(cfg)
	case DocEULA:
		markdown = renderEULA(cfg)
	case DocRefund:
		markdown = renderRefund(cfg)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDocType, docType)
	}
	if format == FormatHTML {
		return markdownToHTML(markdown, htmlTitle(cfg, docType)), nil
	}
	return markdown, nil
}

func htmlTitle(cfg Config, docType DocType) string {
	if name := companyName(cfg, ""); name != "" {
		return name + " " + docType.Title()
	}
	return docType.Title()
}

// companyName resolves the display name, falling back through website and
// app names to the provided default.
func companyName(cfg Config, fallback string) string {
	for _, candidate := range []string{cfg.CompanyName, cfg.WebsiteName, cfg.AppName} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return fallback
}

// serviceType returns the short noun used throughout the documents.
func serviceType(cfg Config) string {
	switch cfg.PlatformType {
	case "both":
		return "website and application"
	case "app":
		return "application"
	default:
		return "website"
	}
}

// platformText returns the long-form description of what the business runs.
func platformText(cfg Config) string {
	website := cfg.WebsiteURL
	if website == "" {
		website = cfg.WebsiteName
	}
	switch cfg.PlatformType {
	case "both":
		var parts []string
		if website != "" {
			parts = append(parts, "the website "+website)
		}
		if cfg.AppName != "" {
			parts = append(parts, "the "+cfg.AppName+" mobile application")
		}
		if len(parts) == 0 {
			return "our website and mobile application"
		}
		return strings.Join(parts, " and ")
	case "app":
		if cfg.AppName != "" {
			return "the " + cfg.AppName + " mobile application"
		}
		return "our mobile application"
	default:
		if website != "" {
			return "the website " + website
		}
		return "our website"
	}
}

func effectiveDate(cfg Config) string {
	if strings.TrimSpace(cfg.EffectiveDate) != "" {
		return cfg.EffectiveDate
	}
	return time.Now().Format("January 2, 2006")
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

func joinSections(sections []string) string {
	kept := sections[:0]
	for _, section := range sections {
		if strings.TrimSpace(section) != "" {
			kept = append(kept, section)
		}
	}
	return strings.Join(kept, "\n\n")
}

func contactSection(cfg Config, subject string) string {
	var info []string
	if cfg.ContactEmail != "" {
		info = append(info, "**Email:** "+cfg.ContactEmail)
	}
	if cfg.ContactPhone != "" {
		info = append(info, "**Phone:** "+cfg.ContactPhone)
	}
	if cfg.CompanyAddress != "" {
		info = append(info, "**Address:** "+cfg.CompanyAddress)
	}
	if cfg.WebsiteURL != "" {
		info = append(info, "**Website:** "+cfg.WebsiteURL)
	}
	contact := "Please visit our website for contact information."
	if len(info) > 0 {
		contact = strings.Join(info, "\n")
	}
	return fmt.Sprintf(`## Contact Us

If you have any questions about this %s, please contact us:

**%s**

%s

We will respond to your inquiry as soon as possible, typically within 30 days.`,
		subject, companyName(cfg, "Us"), contact)
}
