package rendering

import (
	"bytes"
	"html/template"

	"github.com/jonathan/resume-renderer/internal/templates"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Document is a fully composed resume: a self-contained HTML document with
// inlined CSS, plus the template it was composed with. It is independent of
// the final sink; the preview endpoint serves it as-is and the export
// pipeline feeds it to a headless browser.
type Document struct {
	HTML     string
	Template templates.Config
	Title    string
}

// Compose assembles the full document for a resume and a template id.
// Unknown template ids fall back to the default template; that is the
// documented policy, not an error. Section keys absent from the effective
// order are never rendered even when data exists for them, and unknown keys
// in the order are skipped. The only failure tied to input is a nil resume.
func Compose(data *types.ResumeData, templateID string) (*Document, error) {
	if data == nil {
		return nil, &ComposeError{Message: "resume data is required"}
	}

	cfg := templates.ResolveOrDefault(templateID)
	st := StyleFor(cfg)
	order := types.EffectiveSectionOrder(data.SectionOrder)

	var body template.HTML
	var err error
	if cfg.Layout == templates.LayoutTwoColumn {
		body, err = composeTwoColumn(data, st, order)
	} else {
		body, err = composeSingleColumn(data, st, order)
	}
	if err != nil {
		return nil, err
	}

	css, err := documentCSS(cfg, st)
	if err != nil {
		return nil, err
	}

	title := data.DisplayName()
	if title == "" {
		title = "Resume"
	}

	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, pageData{
		Title:      title,
		TemplateID: cfg.ID,
		CSS:        template.CSS(css),
		Body:       body,
	})
	if err != nil {
		return nil, &TemplateError{Message: "failed to execute page template", Cause: err}
	}

	return &Document{HTML: buf.String(), Template: cfg, Title: title}, nil
}

// composeSingleColumn renders the effective order top to bottom, skipping
// empty fragments.
func composeSingleColumn(data *types.ResumeData, st Style, order []types.SectionKey) (template.HTML, error) {
	fragments, err := renderAll(data, st, order)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString(`<div class="resume">`)
	for _, f := range fragments {
		buf.WriteString(string(f))
	}
	buf.WriteString(`</div>`)
	return template.HTML(buf.String()), nil
}

// composeTwoColumn partitions the effective order into the fixed sidebar
// subset (personal, skills) and the main subset, both preserving relative
// order. The columns render independently; there is no cross-column reflow.
func composeTwoColumn(data *types.ResumeData, st Style, order []types.SectionKey) (template.HTML, error) {
	var sidebarKeys, mainKeys []types.SectionKey
	for _, key := range order {
		switch key {
		case types.SectionPersonal, types.SectionSkills:
			sidebarKeys = append(sidebarKeys, key)
		default:
			mainKeys = append(mainKeys, key)
		}
	}

	sidebar, err := renderAll(data, st, sidebarKeys)
	if err != nil {
		return "", err
	}
	main, err := renderAll(data, st, mainKeys)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString(`<div class="resume two-column"><aside class="sidebar">`)
	for _, f := range sidebar {
		buf.WriteString(string(f))
	}
	buf.WriteString(`</aside><main class="main">`)
	for _, f := range main {
		buf.WriteString(string(f))
	}
	buf.WriteString(`</main></div>`)
	return template.HTML(buf.String()), nil
}

// renderAll renders keys in order, dropping empty fragments and unknown keys.
func renderAll(data *types.ResumeData, st Style, order []types.SectionKey) ([]template.HTML, error) {
	fragments := make([]template.HTML, 0, len(order))
	for _, key := range order {
		if !key.Known() {
			continue
		}
		fragment, err := RenderSection(key, data, st)
		if err != nil {
			return nil, err
		}
		if fragment == "" {
			continue
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

type pageData struct {
	Title      string
	TemplateID string
	CSS        template.CSS
	Body       template.HTML
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body class="tpl-{{.TemplateID}}">
{{.Body}}
</body>
</html>
`))
