// Package types defines the normalized, template-agnostic resume data model
// shared by the rendering, export, and storage layers.
package types

// PersonalInfo holds the contact header of a resume. All fields are plain
// strings; renderers tolerate empty values and degrade gracefully.
type PersonalInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Title     string `json:"title,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// Experience is a single position. Current=true overrides EndDate, which is
// rendered as "Present". Bullets may contain blank entries; they are filtered
// at render time.
type Experience struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Current     bool     `json:"current,omitempty"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Education is a single degree entry.
type Education struct {
	ID          string `json:"id,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Skills groups skill entries. Duplicates are not deduplicated; they render
// twice.
type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
}

// Empty reports whether there is nothing to render for the skills section.
func (s Skills) Empty() bool {
	return len(s.Technical) == 0 && len(s.Soft) == 0
}

// Project is a portfolio entry. Description is trusted rich text.
type Project struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Description  Markup   `json:"description,omitempty"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// Certification is a single certificate entry.
type Certification struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// CustomSection is a free-form user-defined section. Content is plain text
// and is escaped on render.
type CustomSection struct {
	Key     string `json:"key,omitempty"`
	Label   string `json:"label,omitempty"`
	Content string `json:"content,omitempty"`
}

// ResumeData is the root aggregate. It is created empty, mutated only by the
// editor layer, and read-only inside the render and export pipeline.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        Markup          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         Skills          `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	SectionOrder   []SectionKey    `json:"sectionOrder,omitempty"`
	CustomSections []CustomSection `json:"customSections,omitempty"`
}

// NewResumeData returns an empty resume: all collections empty, all strings "".
func NewResumeData() *ResumeData {
	return &ResumeData{}
}

// DisplayName returns the space-joined non-empty name parts, or "" when the
// resume has no name at all.
func (r *ResumeData) DisplayName() string {
	first := r.PersonalInfo.FirstName
	last := r.PersonalInfo.LastName
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
