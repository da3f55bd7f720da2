package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-renderer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Title:     "Software Engineer",
			Email:     "jane@example.com",
		},
		Summary: "Ten years of shipping software.",
		Experience: []types.Experience{{
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: "2020-01",
			Current:   true,
			Bullets:   []string{"Built things"},
		}},
		Education: []types.Education{{
			Degree:      "BSc",
			Field:       "Computer Science",
			Institution: "MIT",
			StartDate:   "2010-09",
			EndDate:     "2014-06",
		}},
		Skills: types.Skills{
			Technical: []string{"Go", "PostgreSQL"},
			Soft:      []string{"Mentoring"},
		},
		Projects: []types.Project{{
			Name:        "renderer",
			Description: "A renderer.",
		}},
		Certifications: []types.Certification{{
			Name:   "CKA",
			Issuer: "CNCF",
			Date:   "2023-05",
		}},
	}
}

func composeDoc(t *testing.T, data *types.ResumeData, templateID string) *goquery.Document {
	t.Helper()
	doc, err := Compose(data, templateID)
	require.NoError(t, err)
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	require.NoError(t, err)
	return parsed
}

// sectionSequence extracts the section identity of each rendered block in
// document order.
func sectionSequence(doc *goquery.Document) []string {
	var out []string
	doc.Find(".personal-header, section.section").Each(func(_ int, sel *goquery.Selection) {
		if sel.HasClass("personal-header") {
			out = append(out, "personal")
			return
		}
		class := sel.AttrOr("class", "")
		for _, c := range strings.Fields(class) {
			if strings.HasPrefix(c, "section-") {
				out = append(out, strings.TrimPrefix(c, "section-"))
			}
		}
	})
	return out
}

func TestCompose_NilResumeFails(t *testing.T) {
	_, err := Compose(nil, "modern")
	require.Error(t, err)
	var composeErr *ComposeError
	assert.ErrorAs(t, err, &composeErr)
}

func TestCompose_DefaultOrderFallback(t *testing.T) {
	data := fullResume()
	data.SectionOrder = nil

	doc := composeDoc(t, data, "modern")
	assert.Equal(t,
		[]string{"personal", "summary", "experience", "skills", "education", "certifications", "projects"},
		sectionSequence(doc))
}

func TestCompose_EmptyOrderFallsBackToDefault(t *testing.T) {
	data := fullResume()
	data.SectionOrder = []types.SectionKey{}

	doc := composeDoc(t, data, "modern")
	assert.Equal(t,
		[]string{"personal", "summary", "experience", "skills", "education", "certifications", "projects"},
		sectionSequence(doc))
}

func TestCompose_OrderFidelity(t *testing.T) {
	data := fullResume()
	data.SectionOrder = []types.SectionKey{
		types.SectionSkills,
		types.SectionPersonal,
		types.SectionEducation,
	}

	doc := composeDoc(t, data, "modern")
	assert.Equal(t, []string{"skills", "personal", "education"}, sectionSequence(doc))
}

func TestCompose_UnknownKeysIgnored(t *testing.T) {
	data := fullResume()
	data.SectionOrder = []types.SectionKey{
		types.SectionPersonal,
		types.SectionKey("hobbies"),
		types.SectionExperience,
	}

	doc := composeDoc(t, data, "modern")
	assert.Equal(t, []string{"personal", "experience"}, sectionSequence(doc))
}

func TestCompose_KeysAbsentFromOrderNotRendered(t *testing.T) {
	data := fullResume()
	data.SectionOrder = []types.SectionKey{types.SectionPersonal}

	doc := composeDoc(t, data, "modern")
	assert.Equal(t, []string{"personal"}, sectionSequence(doc))
	assert.Zero(t, doc.Find(".section-experience").Length())
}

func TestCompose_EmptySectionsSuppressed(t *testing.T) {
	data := fullResume()
	data.Experience = nil
	data.Certifications = nil

	doc := composeDoc(t, data, "modern")
	assert.Zero(t, doc.Find(".section-experience").Length())
	assert.Zero(t, doc.Find(".section-certifications").Length())
	headings := doc.Find("h2").Map(func(_ int, sel *goquery.Selection) string { return sel.Text() })
	assert.NotContains(t, headings, "Experience")
	assert.NotContains(t, headings, "Certifications")
}

func TestCompose_PersonalOnlyScenario(t *testing.T) {
	data := &types.ResumeData{
		PersonalInfo: types.PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		SectionOrder: []types.SectionKey{
			types.SectionPersonal,
			types.SectionSummary,
			types.SectionExperience,
		},
	}

	doc := composeDoc(t, data, "modern")
	assert.Equal(t, []string{"personal"}, sectionSequence(doc))
	assert.Zero(t, doc.Find(".section-summary").Length())
	assert.Zero(t, doc.Find(".section-experience").Length())
	assert.Equal(t, "Jane Doe", doc.Find("h1").Text())
}

func TestCompose_UnknownTemplateFallsBackToDefault(t *testing.T) {
	data := fullResume()

	doc, err := Compose(data, "nonexistent-id")
	require.NoError(t, err)
	assert.Equal(t, "modern", doc.Template.ID)
	assert.Contains(t, doc.HTML, "Jane Doe")
}

func TestCompose_TwoColumnPartition(t *testing.T) {
	data := fullResume()

	doc := composeDoc(t, data, "sidebar")
	sidebar := doc.Find("aside.sidebar")
	main := doc.Find("main.main")
	require.Equal(t, 1, sidebar.Length())
	require.Equal(t, 1, main.Length())

	// Sidebar holds exactly personal and skills.
	assert.Equal(t, 1, sidebar.Find(".personal-header").Length())
	assert.Equal(t, 1, sidebar.Find(".section-skills").Length())
	assert.Zero(t, sidebar.Find(".section-experience").Length())

	// Main holds the rest, preserving relative order.
	assert.Zero(t, main.Find(".personal-header").Length())
	assert.Zero(t, main.Find(".section-skills").Length())
	assert.Equal(t, 1, main.Find(".section-experience").Length())
	assert.Equal(t, 1, main.Find(".section-education").Length())
}

func TestCompose_SelfContainedDocument(t *testing.T) {
	data := fullResume()

	doc, err := Compose(data, "modern")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.HTML, "<!DOCTYPE html>"))
	assert.Contains(t, doc.HTML, "<style>")
	assert.NotContains(t, doc.HTML, `<link rel="stylesheet"`)
	assert.NotContains(t, doc.HTML, "<script")
}

func TestCompose_DocumentTitle(t *testing.T) {
	data := fullResume()
	doc, err := Compose(data, "modern")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Title)

	empty := types.NewResumeData()
	empty.Summary = "Some summary text"
	doc, err = Compose(empty, "modern")
	require.NoError(t, err)
	assert.Equal(t, "Resume", doc.Title)
}

func TestCompose_DoesNotMutateInput(t *testing.T) {
	data := fullResume()
	data.Experience[0].Bullets = []string{"A", "", "B"}

	_, err := Compose(data, "modern")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "", "B"}, data.Experience[0].Bullets)
}

func TestCompose_AccentColorInStylesheet(t *testing.T) {
	data := fullResume()
	doc, err := Compose(data, "sidebar")
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "#0f766e")
}
