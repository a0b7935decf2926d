package renderer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown is the converter for the report body. The report relies on tables,
// which are a goldmark extension.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders the analysis as a standalone HTML page with the chart
// embedded, suitable for saving and sharing as a single file.
func HTML(r *Report) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(r)), &body); err != nil {
		return nil, fmt.Errorf("converting report body: %w", err)
	}

	// typed as template.URL: html/template would otherwise reject the data URI
	var chart template.URL
	if r.HasData() {
		png, err := Chart(r)
		if err != nil {
			// the report is still worth producing without its chart
			log.Printf("chart skipped: %v", err)
		} else {
			chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
		}
	}

	pageContent, err := templates.ReadFile("templates/page.html")
	if err != nil {
		return nil, err
	}
	page, err := template.New("page").Parse(string(pageContent))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = page.Execute(&out, struct {
		Title string
		Body  template.HTML
		Chart template.URL
	}{
		Title: r.Title,
		Body:  template.HTML(body.String()),
		Chart: chart,
	})
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
