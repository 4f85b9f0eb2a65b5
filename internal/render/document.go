package render

import (
	"bytes"
	"html/template"
	"strings"

	"careercortex/internal/domain"
)

const baseStyle = `
html, body { margin: 0; padding: 0; }
@media print {
  body { -webkit-print-color-adjust: exact; color-adjust: exact; }
}
h1 .anchor, h2 .anchor, h3 .anchor, h4 .anchor, h5 .anchor, h6 .anchor { display: none; }
a { color: #0366d6; text-decoration: none; }
`

const resumeStyle = `
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif, "Apple Color Emoji", "Segoe UI Emoji";
  font-size: 16px;
  line-height: 1.5;
}
h1, h2, h3, h4, h5, h6 { margin-top: 24px; margin-bottom: 16px; font-weight: 600; line-height: 1.25; }
h2 { padding-bottom: 0.3em; border-bottom: 1px solid #eaecef; }
p { text-align: justify; }
div[align="right"], div[style*="text-align: right"] { text-align: right !important; margin: 0 0 8px 0 !important; padding: 0 !important; }
ul { padding-left: 2em; display: block !important; list-style-type: disc; margin: 0 0 16px 0; }
li { display: list-item !important; margin-bottom: 4px; line-height: 1.6; page-break-inside: avoid; }
`

const coverLetterStyle = `
body {
  font-family: 'Times New Roman', Times, serif;
  font-size: 12pt;
  line-height: 1.6;
  color: #000;
  max-width: 8.5in;
  margin: 0 auto;
}
p { margin-bottom: 12pt; text-align: justify; }
h1, h2, h3, h4, h5, h6 { margin-top: 18pt; margin-bottom: 12pt; font-weight: bold; line-height: 1.3; }
p:last-child { margin-top: 24pt; }
`

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>{{.Style}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Document wraps an HTML fragment in a printable page styled for kind.
func Document(kind domain.Kind, body string) string {
	style := baseStyle + resumeStyle
	if kind == domain.KindCoverLetter {
		style = baseStyle + coverLetterStyle
	}
	var buf bytes.Buffer
	// the template and its inputs are fixed; Execute cannot fail here
	_ = page.Execute(&buf, struct {
		Style template.CSS
		Body  template.HTML
	}{template.CSS(style), template.HTML(body)})
	return buf.String()
}

// Margins are page margins in millimetres.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// MarginsFor returns the print margins used for kind.
func MarginsFor(kind domain.Kind) Margins {
	if kind == domain.KindCoverLetter {
		return Margins{Top: 20, Right: 25, Bottom: 20, Left: 25}
	}
	return Margins{Top: 12, Right: 12, Bottom: 12, Left: 12}
}

// Filename returns the attachment name for a rendered document. Quotes,
// path separators and control characters are dropped from requested.
func Filename(kind domain.Kind, requested string) string {
	name := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || r == '"' || r == '/' || r == '\\' {
			return -1
		}
		return r
	}, requested)
	if name = strings.TrimSpace(name); name != "" {
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			name += ".pdf"
		}
		return name
	}
	if kind == domain.KindCoverLetter {
		return "cover-letter.pdf"
	}
	return "resume.pdf"
}
