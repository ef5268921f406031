// File path: internal/docgen/html.go
package docgen

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	h3Pattern     = regexp.MustCompile(`(?m)^### (.+)$`)
	h2Pattern     = regexp.MustCompile(`(?m)^## (.+)$`)
	h1Pattern     = regexp.MustCompile(`(?m)^# (.+)$`)
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
	orderedLine   = regexp.MustCompile(`^\d+\. `)
)

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            line-height: 1.6;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            color: #333;
        }
        h1 { color: #2c3e50; border-bottom: 2px solid #27ae60; padding-bottom: 10px; }
        h2 { color: #34495e; margin-top: 30px; border-bottom: 1px solid #bdc3c7; padding-bottom: 5px; }
        h3 { color: #7f8c8d; margin-top: 20px; }
        ul, ol { padding-left: 20px; }
        li { margin: 5px 0; }
        strong { color: #2c3e50; }
        p { margin: 10px 0; text-align: justify; }
    </style>
</head>
<body>
%s
</body>
</html>`

// markdownToHTML converts the line-oriented markdown the generators emit into
// a self-contained styled HTML page. It is not a general markdown parser;
// it handles exactly the constructs the generators produce: headings, bold,
// italic, bullet lists, and numbered lists.
func markdownToHTML(markdown, title string) string {
	content := markdown
	content = h3Pattern.ReplaceAllString(content, "<h3>$1</h3>")
	content = h2Pattern.ReplaceAllString(content, "<h2>$1</h2>")
	content = h1Pattern.ReplaceAllString(content, "<h1>$1</h1>")
	content = boldPattern.ReplaceAllString(content, "<strong>$1</strong>")
	content = italicPattern.ReplaceAllString(content, "<em>$1</em>")
	content = convertLists(content)
	content = wrapParagraphs(content)
	return fmt.Sprintf(htmlShell, title, content)
}

func convertLists(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	inUL, inOL := false, false
	closeLists := func() {
		if inUL {
			result = append(result, "</ul>")
			inUL = false
		}
		if inOL {
			result = append(result, "</ol>")
			inOL = false
		}
	}
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		switch {
		case orderedLine.MatchString(stripped):
			if inUL {
				result = append(result, "</ul>")
				inUL = false
			}
			if !inOL {
				result = append(result, "<ol>")
				inOL = true
			}
			_, item, _ := strings.Cut(stripped, ". ")
			result = append(result, "<li>"+item+"</li>")
		case strings.HasPrefix(stripped, "- "):
			if inOL {
				result = append(result, "</ol>")
				inOL = false
			}
			if !inUL {
				result = append(result, "<ul>")
				inUL = true
			}
			result = append(result, "<li>"+stripped[2:]+"</li>")
		default:
			closeLists()
			result = append(result, line)
		}
	}
	closeLists()
	return strings.Join(result, "\n")
}

// wrapParagraphs wraps remaining bare text blocks in <p> tags. Lines that
// already start with a tag (headings, list markup) are left alone.
func wrapParagraphs(content string) string {
	blocks := strings.Split(content, "\n\n")
	for i, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" || strings.HasPrefix(trimmed, "<") {
			continue
		}
		blocks[i] = "<p>" + block + "</p>"
	}
	return strings.Join(blocks, "\n\n")
}
