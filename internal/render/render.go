// internal/render/render.go

// Package render turns a finished glossary into one of the supported output
// formats. Renderers preserve the glossary's entry order (the aggregator's
// ranking) and never reorder or drop entries.
package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"glossgen/internal/glossary"
)

// Format selects the output representation.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
	FormatPlain    Format = "plain"
	FormatTable    Format = "table"
)

// emptyMessage is printed by the text formats when no terms were found.
const emptyMessage = "No technical terms found requiring clarification."

// Formats returns all supported formats in display order.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatJSON, FormatHTML, FormatPlain, FormatTable}
}

// ParseFormat validates a format name from the command line.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected one of markdown, json, html, plain, table)", name)
}

// Render produces the glossary in the requested format.
func Render(g glossary.Glossary, format Format) (string, error) {
	switch format {
	case FormatMarkdown:
		return Markdown(g), nil
	case FormatJSON:
		return JSON(g)
	case FormatHTML:
		return HTML(g), nil
	case FormatPlain:
		return Plain(g), nil
	case FormatTable:
		return Table(g), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// audienceLine resolves the profile's audience prose for subtitle lines,
// falling back to the raw level name.
func audienceLine(level glossary.Level) string {
	if p, err := glossary.ProfileFor(level); err == nil {
		return p.Audience
	}
	return string(level)
}

// Markdown renders the glossary as a markdown document with one section per
// term.
func Markdown(g glossary.Glossary) string {
	if len(g.Entries) == 0 {
		return emptyMessage + "\n"
	}

	var b strings.Builder
	b.WriteString("# Technical Glossary\n\n")
	fmt.Fprintf(&b, "*Generated for: %s*\n\n", audienceLine(g.Level))

	for _, entry := range g.Entries {
		fmt.Fprintf(&b, "## %s\n\n", entry.Term)
		b.WriteString(entry.Definition + "\n\n")
		if entry.ContextNote != "" {
			fmt.Fprintf(&b, "*Context: %s*\n\n", entry.ContextNote)
		}
		if entry.DocLink != "" {
			fmt.Fprintf(&b, "[Documentation](%s)\n\n", entry.DocLink)
		}
	}
	return b.String()
}

// JSON renders the glossary as indented JSON.
func JSON(g glossary.Glossary) (string, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal glossary: %w", err)
	}
	return string(data) + "\n", nil
}

// Plain renders the glossary as plain text with underlined term headers.
func Plain(g glossary.Glossary) string {
	if len(g.Entries) == 0 {
		return emptyMessage + "\n"
	}

	var b strings.Builder
	b.WriteString("TECHNICAL GLOSSARY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "For: %s\n", audienceLine(g.Level))

	for _, entry := range g.Entries {
		b.WriteString("\n" + strings.ToUpper(entry.Term) + "\n")
		b.WriteString(strings.Repeat("-", len(entry.Term)) + "\n")
		b.WriteString(entry.Definition + "\n")
		if entry.ContextNote != "" {
			fmt.Fprintf(&b, "\nContext: %s\n", entry.ContextNote)
		}
		if entry.DocLink != "" {
			fmt.Fprintf(&b, "\nDocumentation: %s\n", entry.DocLink)
		}
	}
	return b.String()
}

// HTML renders the glossary as a self-contained page with one card per term.
func HTML(g glossary.Glossary) string {
	if len(g.Entries) == 0 {
		return "<!DOCTYPE html>\n<html><body><p>" + emptyMessage + "</p></body></html>\n"
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <title>Technical Glossary</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            line-height: 1.6;
        }
        h1 { color: #2563eb; }
        .subtitle { color: #6b7280; font-style: italic; margin-bottom: 2em; }
        .term {
            margin-bottom: 25px;
            padding: 20px;
            background: #f3f4f6;
            border-left: 4px solid #2563eb;
            border-radius: 6px;
        }
        .term-title { font-size: 1.3em; font-weight: bold; margin-bottom: 10px; }
        .definition { margin-bottom: 10px; }
        .context { font-style: italic; color: #4b5563; margin-top: 10px; }
        .doc-link { display: inline-block; margin-top: 10px; }
    </style>
</head>
<body>
    <h1>Technical Glossary</h1>
`)
	fmt.Fprintf(&b, "    <div class=\"subtitle\">Generated for: %s</div>\n", html.EscapeString(audienceLine(g.Level)))

	for _, entry := range g.Entries {
		b.WriteString("    <div class=\"term\">\n")
		fmt.Fprintf(&b, "        <div class=\"term-title\">%s</div>\n", html.EscapeString(entry.Term))
		fmt.Fprintf(&b, "        <div class=\"definition\">%s</div>\n", html.EscapeString(entry.Definition))
		if entry.ContextNote != "" {
			fmt.Fprintf(&b, "        <div class=\"context\">Context: %s</div>\n", html.EscapeString(entry.ContextNote))
		}
		if entry.DocLink != "" {
			fmt.Fprintf(&b, "        <a href=%q class=\"doc-link\">Documentation</a>\n", entry.DocLink)
		}
		b.WriteString("    </div>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
