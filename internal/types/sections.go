package types

// SectionKey identifies one resume content block. The set is closed; section
// dispatch switches over these constants so a new key cannot be added without
// touching the renderer.
type SectionKey string

// The closed section key set.
const (
	SectionPersonal       SectionKey = "personal"
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionSkills         SectionKey = "skills"
	SectionProjects       SectionKey = "projects"
	SectionCertifications SectionKey = "certifications"
	SectionCustom         SectionKey = "custom"
)

// DefaultSectionOrder is used when a resume carries no explicit section order.
var DefaultSectionOrder = []SectionKey{
	SectionPersonal,
	SectionSummary,
	SectionExperience,
	SectionSkills,
	SectionEducation,
	SectionCertifications,
	SectionProjects,
}

// Known reports whether k belongs to the closed section key set. Renderers
// skip unknown keys instead of failing.
func (k SectionKey) Known() bool {
	switch k {
	case SectionPersonal, SectionSummary, SectionExperience, SectionEducation,
		SectionSkills, SectionProjects, SectionCertifications, SectionCustom:
		return true
	}
	return false
}

// EffectiveSectionOrder returns order when non-empty, otherwise the default
// order. The returned slice must not be mutated by callers.
func EffectiveSectionOrder(order []SectionKey) []SectionKey {
	if len(order) == 0 {
		return DefaultSectionOrder
	}
	return order
}
