// internal/render/table.go
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glossgen/internal/glossary"
)

const definitionColumnWidth = 60

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableTermStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("86"))
)

// Table renders the glossary as a styled terminal table: term, definition,
// and a marker for entries that carry a documentation link.
func Table(g glossary.Glossary) string {
	if len(g.Entries) == 0 {
		return emptyMessage + "\n"
	}

	headers := []string{"Term", "Definition", "Docs"}
	rows := make([][]string, 0, len(g.Entries))
	for _, entry := range g.Entries {
		doc := "-"
		if entry.DocLink != "" {
			doc = "yes"
		}
		rows = append(rows, []string{entry.Term, wrap(entry.Definition, definitionColumnWidth), doc})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	var b strings.Builder
	b.WriteString(tableTitleStyle.Render("Technical Glossary") + "\n")
	b.WriteString("Generated for: " + audienceLine(g.Level) + "\n\n")

	for i, h := range headers {
		b.WriteString(tableHeaderStyle.Width(widths[i]).Render(h))
	}
	b.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("-", total) + "\n")

	for _, row := range rows {
		lines := 1
		split := make([][]string, len(row))
		for i, cell := range row {
			split[i] = strings.Split(cell, "\n")
			if len(split[i]) > lines {
				lines = len(split[i])
			}
		}
		for line := 0; line < lines; line++ {
			for i := range row {
				text := ""
				if line < len(split[i]) {
					text = split[i][line]
				}
				style := tableCellStyle
				if i == 0 {
					style = tableTermStyle
				}
				b.WriteString(style.Width(widths[i]).Render(text))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// wrap breaks text into lines of at most width characters on word
// boundaries.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return strings.Join(lines, "\n")
}
