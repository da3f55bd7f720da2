package rendering

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-renderer/internal/types"
)

// RenderSection renders one section of a resume into an HTML fragment. It
// returns the empty fragment when the underlying data is empty: suppressing
// the whole section, heading included, is a strict invariant. Unknown keys
// also yield the empty fragment. The function is pure; it never mutates the
// resume.
func RenderSection(key types.SectionKey, data *types.ResumeData, st Style) (template.HTML, error) {
	switch key {
	case types.SectionPersonal:
		return renderPersonal(data.PersonalInfo, data.DisplayName())
	case types.SectionSummary:
		return renderSummary(data.Summary)
	case types.SectionExperience:
		return renderExperience(data.Experience)
	case types.SectionEducation:
		return renderEducation(data.Education)
	case types.SectionSkills:
		return renderSkills(data.Skills)
	case types.SectionProjects:
		return renderProjects(data.Projects)
	case types.SectionCertifications:
		return renderCertifications(data.Certifications)
	case types.SectionCustom:
		return renderCustomSections(data.CustomSections)
	}
	return "", nil
}

// contactItem is one entry of the header contact line.
type contactItem struct {
	Text string
	Href string
}

type personalView struct {
	Name     string
	Title    string
	Contacts []contactItem
}

func renderPersonal(info types.PersonalInfo, name string) (template.HTML, error) {
	view := personalView{Name: name, Title: info.Title}
	add := func(text, href string) {
		if text != "" {
			view.Contacts = append(view.Contacts, contactItem{Text: text, Href: href})
		}
	}
	add(info.Email, mailtoHref(info.Email))
	add(info.Phone, "")
	add(info.Location, "")
	add(info.Website, linkHref(info.Website))
	add(info.LinkedIn, linkHref(info.LinkedIn))
	add(info.GitHub, linkHref(info.GitHub))

	if view.Name == "" && view.Title == "" && len(view.Contacts) == 0 {
		return "", nil
	}
	return executeFragment("personal", view)
}

func renderSummary(summary types.Markup) (template.HTML, error) {
	if summary.Empty() {
		return "", nil
	}
	// Trusted rich text: inserted as markup, not escaped. See types.Markup.
	return executeFragment("summary", struct{ Content template.HTML }{summary.HTML()})
}

type experienceEntryView struct {
	Title       string
	Company     string
	Location    string
	Dates       string
	Description string
	Bullets     []string
}

func renderExperience(entries []types.Experience) (template.HTML, error) {
	if len(entries) == 0 {
		return "", nil
	}
	views := make([]experienceEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, experienceEntryView{
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			Dates:       FormatDateRange(e.StartDate, e.EndDate, e.Current),
			Description: e.Description,
			Bullets:     filterBullets(e.Bullets),
		})
	}
	return executeFragment("experience", views)
}

// filterBullets drops blank entries before rendering.
func filterBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return out
}

type educationEntryView struct {
	Degree      string
	Institution string
	Dates       string
	GPA         string
}

func renderEducation(entries []types.Education) (template.HTML, error) {
	if len(entries) == 0 {
		return "", nil
	}
	views := make([]educationEntryView, 0, len(entries))
	for _, e := range entries {
		degree := e.Degree
		if e.Field != "" {
			if degree != "" {
				degree += ", " + e.Field
			} else {
				degree = e.Field
			}
		}
		views = append(views, educationEntryView{
			Degree:      degree,
			Institution: e.Institution,
			Dates:       FormatDateRange(e.StartDate, e.EndDate, false),
			GPA:         e.GPA,
		})
	}
	return executeFragment("education", views)
}

type skillsView struct {
	Technical []string
	Soft      []string
}

func renderSkills(skills types.Skills) (template.HTML, error) {
	if skills.Empty() {
		return "", nil
	}
	return executeFragment("skills", skillsView{Technical: skills.Technical, Soft: skills.Soft})
}

type projectEntryView struct {
	Name         string
	URL          string
	Dates        string
	Description  template.HTML
	Technologies []string
}

func renderProjects(entries []types.Project) (template.HTML, error) {
	if len(entries) == 0 {
		return "", nil
	}
	views := make([]projectEntryView, 0, len(entries))
	for _, p := range entries {
		views = append(views, projectEntryView{
			Name:  p.Name,
			URL:   linkHref(p.URL),
			Dates: FormatDateRange(p.StartDate, p.EndDate, false),
			// Trusted rich text, same boundary as the summary.
			Description:  p.Description.HTML(),
			Technologies: p.Technologies,
		})
	}
	return executeFragment("projects", views)
}

type certificationEntryView struct {
	Name   string
	Issuer string
	Date   string
	URL    string
}

func renderCertifications(entries []types.Certification) (template.HTML, error) {
	if len(entries) == 0 {
		return "", nil
	}
	views := make([]certificationEntryView, 0, len(entries))
	for _, c := range entries {
		views = append(views, certificationEntryView{
			Name:   c.Name,
			Issuer: c.Issuer,
			Date:   FormatDate(c.Date),
			URL:    linkHref(c.URL),
		})
	}
	return executeFragment("certifications", views)
}

type customSectionView struct {
	Label   string
	Content string
}

func renderCustomSections(sections []types.CustomSection) (template.HTML, error) {
	views := make([]customSectionView, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s.Content) == "" {
			continue
		}
		label := s.Label
		if label == "" {
			label = "Additional"
		}
		views = append(views, customSectionView{Label: label, Content: s.Content})
	}
	if len(views) == 0 {
		return "", nil
	}
	return executeFragment("custom", views)
}

func mailtoHref(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

// linkHref normalizes a user-entered URL for use as an href. Bare domains get
// an https scheme so they stay clickable in the exported PDF.
func linkHref(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}

func executeFragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := sectionTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", &TemplateError{Message: fmt.Sprintf("failed to execute section %q", name), Cause: err}
	}
	return template.HTML(buf.String()), nil
}

var sectionTmpl = template.Must(template.New("sections").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`
{{define "personal"}}
<header class="personal-header">
{{if .Name}}<h1>{{.Name}}</h1>{{end}}
{{if .Title}}<p class="personal-title">{{.Title}}</p>{{end}}
{{if .Contacts}}<div class="contact-line">{{range .Contacts}}<span>{{if .Href}}<a href="{{.Href}}">{{.Text}}</a>{{else}}{{.Text}}{{end}}</span>{{end}}</div>{{end}}
</header>
{{end}}

{{define "summary"}}
<section class="section section-summary">
<h2 class="section-title">Summary</h2>
<div class="summary-body">{{.Content}}</div>
</section>
{{end}}

{{define "experience"}}
<section class="section section-experience">
<h2 class="section-title">Experience</h2>
{{range .}}<div class="entry">
<div class="entry-header"><span><span class="entry-heading">{{.Title}}</span>{{if .Company}}<span class="entry-sub">{{if .Title}} · {{end}}{{.Company}}</span>{{end}}{{if .Location}}<span class="entry-sub"> · {{.Location}}</span>{{end}}</span>{{if .Dates}}<span class="entry-dates">{{.Dates}}</span>{{end}}</div>
{{if .Description}}<p class="entry-description">{{.Description}}</p>{{end}}
{{if .Bullets}}<ul class="bullets">{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}</section>
{{end}}

{{define "education"}}
<section class="section section-education">
<h2 class="section-title">Education</h2>
{{range .}}<div class="entry">
<div class="entry-header"><span><span class="entry-heading">{{.Degree}}</span>{{if .Institution}}<span class="entry-sub">{{if .Degree}} · {{end}}{{.Institution}}</span>{{end}}</span>{{if .Dates}}<span class="entry-dates">{{.Dates}}</span>{{end}}</div>
{{if .GPA}}<p class="entry-description">GPA: {{.GPA}}</p>{{end}}
</div>
{{end}}</section>
{{end}}

{{define "skills"}}
<section class="section section-skills">
<h2 class="section-title">Skills</h2>
{{if .Technical}}<div class="skill-group"><span class="skill-label">Technical</span><span>{{join .Technical ", "}}</span></div>{{end}}
{{if .Soft}}<div class="skill-group"><span class="skill-label">Soft</span><span>{{join .Soft ", "}}</span></div>{{end}}
</section>
{{end}}

{{define "projects"}}
<section class="section section-projects">
<h2 class="section-title">Projects</h2>
{{range .}}<div class="entry">
<div class="entry-header"><span class="entry-heading">{{if .URL}}<a href="{{.URL}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</span>{{if .Dates}}<span class="entry-dates">{{.Dates}}</span>{{end}}</div>
{{if .Description}}<div class="entry-description">{{.Description}}</div>{{end}}
{{if .Technologies}}<p class="technologies">{{join .Technologies " · "}}</p>{{end}}
</div>
{{end}}</section>
{{end}}

{{define "certifications"}}
<section class="section section-certifications">
<h2 class="section-title">Certifications</h2>
{{range .}}<div class="entry">
<div class="entry-header"><span><span class="entry-heading">{{if .URL}}<a href="{{.URL}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</span>{{if .Issuer}}<span class="entry-sub">{{if .Name}} · {{end}}{{.Issuer}}</span>{{end}}</span>{{if .Date}}<span class="entry-dates">{{.Date}}</span>{{end}}</div>
</div>
{{end}}</section>
{{end}}

{{define "custom"}}
{{range .}}<section class="section section-custom">
<h2 class="section-title">{{.Label}}</h2>
<p class="entry-description">{{.Content}}</p>
</section>
{{end}}
{{end}}
`))
