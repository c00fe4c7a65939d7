package content

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/layout.html
var templatesFS embed.FS

var layout = template.Must(template.ParseFS(templatesFS, "templates/layout.html"))

const brandName = "Agile Edge SAFe Training"

type layoutData struct {
	Subject    string
	Brand      string
	Heading    string
	Paragraphs []string
	CTALabel   string
	CTALink    string
	SiteURL    string
}

func renderLayout(data layoutData) (string, error) {
	if data.Brand == "" {
		data.Brand = brandName
	}
	var buf bytes.Buffer
	if err := layout.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func plainText(heading string, paragraphs []string, ctaLabel, ctaLink string) string {
	var b strings.Builder
	if heading != "" {
		b.WriteString(heading)
		b.WriteString("\n\n")
	}
	for _, p := range paragraphs {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
	if ctaLink != "" {
		b.WriteString(ctaLabel)
		b.WriteString(": ")
		b.WriteString(ctaLink)
		b.WriteString("\n")
	}
	return b.String()
}
