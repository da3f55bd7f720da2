package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionKey_Known(t *testing.T) {
	for _, key := range DefaultSectionOrder {
		assert.True(t, key.Known(), "default order key %q must be known", key)
	}
	assert.True(t, SectionCustom.Known())
	assert.False(t, SectionKey("hobbies").Known())
	assert.False(t, SectionKey("").Known())
}

func TestEffectiveSectionOrder_NilUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultSectionOrder, EffectiveSectionOrder(nil))
}

func TestEffectiveSectionOrder_EmptyUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultSectionOrder, EffectiveSectionOrder([]SectionKey{}))
}

func TestEffectiveSectionOrder_ExplicitOrderKept(t *testing.T) {
	order := []SectionKey{SectionSkills, SectionPersonal}
	assert.Equal(t, order, EffectiveSectionOrder(order))
}

func TestDisplayName(t *testing.T) {
	r := NewResumeData()
	assert.Equal(t, "", r.DisplayName())

	r.PersonalInfo.FirstName = "Jane"
	assert.Equal(t, "Jane", r.DisplayName())

	r.PersonalInfo.LastName = "Doe"
	assert.Equal(t, "Jane Doe", r.DisplayName())

	r.PersonalInfo.FirstName = ""
	assert.Equal(t, "Doe", r.DisplayName())
}

func TestSkills_Empty(t *testing.T) {
	assert.True(t, Skills{}.Empty())
	assert.False(t, Skills{Technical: []string{"Go"}}.Empty())
	assert.False(t, Skills{Soft: []string{"Mentoring"}}.Empty())
}

func TestMarkup_Empty(t *testing.T) {
	assert.True(t, Markup("").Empty())
	assert.True(t, Markup("  \n\t ").Empty())
	assert.False(t, Markup("<strong>hi</strong>").Empty())
}

func TestMarkup_HTMLPassesThrough(t *testing.T) {
	m := Markup("line one<br>line two")
	assert.Equal(t, "line one<br>line two", string(m.HTML()))
}

func TestResumeData_JSONFieldNames(t *testing.T) {
	data := &ResumeData{
		PersonalInfo: PersonalInfo{FirstName: "Jane", LinkedIn: "in/janedoe"},
		Summary:      "hello",
		Experience:   []Experience{{StartDate: "2020-01", Current: true}},
		SectionOrder: []SectionKey{SectionPersonal},
	}

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "personalInfo")
	assert.Contains(t, decoded, "sectionOrder")
	personal := decoded["personalInfo"].(map[string]any)
	assert.Equal(t, "Jane", personal["firstName"])
	assert.Equal(t, "in/janedoe", personal["linkedin"])
	exp := decoded["experience"].([]any)[0].(map[string]any)
	assert.Equal(t, "2020-01", exp["startDate"])
	assert.Equal(t, true, exp["current"])
}

func TestResumeData_RoundTripKeepsSectionOrder(t *testing.T) {
	data := &ResumeData{SectionOrder: []SectionKey{SectionSkills, SectionPersonal}}

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var back ResumeData
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, data.SectionOrder, back.SectionOrder)
}
