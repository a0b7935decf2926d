// Package renderer turns a computed analysis into markdown, standalone HTML,
// and chart images.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"
)

//go:embed templates/*.md templates/*.html
var templates embed.FS

var funcs = template.FuncMap{
	// pct renders a fraction as a percentage, e.g. 0.1234 -> "12.34%".
	"pct": func(v float64) string { return fmt.Sprintf("%.2f%%", 100*v) },
	// spct is pct with an explicit sign, e.g. "-1.20%".
	"spct": func(v float64) string { return fmt.Sprintf("%+.2f%%", 100*v) },
	// f2 renders a plain number with two decimals.
	"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	// monthNum renders a month as its zero-padded number, e.g. "03".
	"monthNum": func(m time.Month) string { return fmt.Sprintf("%02d", int(m)) },
}

// Markdown renders the analysis report to a markdown string.
func Markdown(r *Report) string {
	partials := map[string]string{
		"report_title":    "report_title.md",
		"report_holdings": "report_holdings.md",
		"report_metrics":  "report_metrics.md",
		"report_monthly":  "report_monthly.md",
		"report_dropped":  "report_dropped.md",
	}
	return renderTemplate("report", "report.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile("templates/" + mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := templates.ReadFile("templates/" + file)
		if err != nil {
			return fmt.Sprintf("error reading partial %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial %q: %v", file, err)
		}
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("error rendering %q: %v", templateName, err)
	}
	return buf.String()
}
