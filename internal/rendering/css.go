package rendering

import (
	"bytes"
	"text/template"

	"github.com/jonathan/resume-renderer/internal/templates"
)

// cssData is the stylesheet template context: shared style parameters plus
// the template the document was composed with.
type cssData struct {
	Style
	TemplateID string
	TwoColumn  bool
}

// documentCSS generates the full inlined stylesheet for one composed
// document. The output has no external dependencies so the document stays
// self-contained for headless rendering.
func documentCSS(cfg templates.Config, st Style) (string, error) {
	var buf bytes.Buffer
	err := cssTmpl.Execute(&buf, cssData{
		Style:      st,
		TemplateID: cfg.ID,
		TwoColumn:  cfg.Layout == templates.LayoutTwoColumn,
	})
	if err != nil {
		return "", &TemplateError{Message: "failed to generate stylesheet", Cause: err}
	}
	return buf.String(), nil
}

var cssTmpl = template.Must(template.New("css").Parse(`
* { box-sizing: border-box; }
html, body { margin: 0; padding: 0; }
body {
  font-family: {{.FontFamily}};
  font-size: {{.FontSize}};
  line-height: {{.LineHeight}};
  color: #1a1a1a;
  background: #fff;
}
.resume { padding: {{.PageMargin}}; }
a { color: inherit; text-decoration: none; }

.personal-header { margin-bottom: 14pt; }
.personal-header h1 {
  margin: 0 0 2pt 0;
  font-size: 2em;
  letter-spacing: 0.01em;
}
.personal-title {
  margin: 0 0 6pt 0;
  font-size: 1.1em;
  color: {{.AccentColor}};
}
.contact-line { font-size: 0.92em; color: #444; }
.contact-line span + span::before { content: "  \00b7  "; color: #999; }

.section { margin-bottom: 12pt; }
.section-title {
  margin: 0 0 6pt 0;
  font-size: 1.05em;
  text-transform: uppercase;
  letter-spacing: 0.08em;
  color: {{.AccentColor}};
}
.entry { margin-bottom: 8pt; }
.entry:last-child { margin-bottom: 0; }
.entry-header { display: flex; justify-content: space-between; align-items: baseline; }
.entry-heading { font-weight: 600; }
.entry-sub { color: #444; }
.entry-dates { font-size: 0.9em; color: #666; white-space: nowrap; }
.entry-description { margin: 2pt 0 0 0; }
.bullets { margin: 3pt 0 0 0; padding-left: 14pt; }
.bullets li { margin-bottom: 1.5pt; }
.skill-group { margin-bottom: 3pt; }
.skill-label { font-weight: 600; margin-right: 4pt; }
.technologies { font-size: 0.9em; color: #555; }
{{if .TwoColumn}}
.resume.two-column { display: flex; gap: 18pt; padding: 0; min-height: 100vh; }
.resume.two-column .sidebar {
  flex: 0 0 32%;
  background: color-mix(in srgb, {{.AccentColor}} 8%, #fff);
  padding: {{.PageMargin}};
}
.resume.two-column .main { flex: 1 1 auto; padding: {{.PageMargin}} {{.PageMargin}} {{.PageMargin}} 0; }
.sidebar .personal-header h1 { font-size: 1.5em; }
.sidebar .contact-line span { display: block; }
.sidebar .contact-line span + span::before { content: none; }
{{end}}
{{if eq .TemplateID "modern"}}
.personal-header { border-left: 4pt solid {{.AccentColor}}; padding-left: 10pt; }
{{end}}
{{if eq .TemplateID "classic"}}
.personal-header { text-align: center; }
.personal-header .contact-line { justify-content: center; }
.section-title { border-bottom: 1pt solid #999; padding-bottom: 2pt; color: #1f2937; }
{{end}}
{{if eq .TemplateID "minimal"}}
.section-title { font-size: 0.95em; color: #111; letter-spacing: 0.12em; }
.personal-title { color: #111; }
{{end}}
`))
