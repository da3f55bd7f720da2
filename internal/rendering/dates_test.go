package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_MonthYear(t *testing.T) {
	assert.Equal(t, "Jan 2023", FormatDate("2023-01"))
	assert.Equal(t, "Dec 2019", FormatDate("2019-12"))
}

func TestFormatDate_FullDate(t *testing.T) {
	assert.Equal(t, "Mar 2021", FormatDate("2021-03-15"))
}

func TestFormatDate_SlashLayout(t *testing.T) {
	assert.Equal(t, "Aug 2020", FormatDate("08/2020"))
}

func TestFormatDate_YearOnly(t *testing.T) {
	assert.Equal(t, "2021", FormatDate("2021"))
}

func TestFormatDate_EmptyString(t *testing.T) {
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "", FormatDate("   "))
}

func TestFormatDate_UnparseableRenderedVerbatim(t *testing.T) {
	assert.Equal(t, "Fall 2020", FormatDate("Fall 2020"))
	assert.Equal(t, "soon", FormatDate("soon"))
}

func TestFormatDate_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "Jan 2023", FormatDate(" 2023-01 "))
}

func TestFormatDateRange_CurrentOverridesEndDate(t *testing.T) {
	result := FormatDateRange("2020-01", "2022-06", true)
	assert.Equal(t, "Jan 2020 – Present", result)
}

func TestFormatDateRange_CurrentWithEmptyEndDate(t *testing.T) {
	result := FormatDateRange("2020-01", "", true)
	assert.Equal(t, "Jan 2020 – Present", result)
}

func TestFormatDateRange_BothDates(t *testing.T) {
	result := FormatDateRange("2020-01", "2022-06", false)
	assert.Equal(t, "Jan 2020 – Jun 2022", result)
}

func TestFormatDateRange_StartOnly(t *testing.T) {
	assert.Equal(t, "Jan 2020", FormatDateRange("2020-01", "", false))
}

func TestFormatDateRange_EndOnly(t *testing.T) {
	assert.Equal(t, "Jun 2022", FormatDateRange("", "2022-06", false))
}

func TestFormatDateRange_BothEmpty(t *testing.T) {
	assert.Equal(t, "", FormatDateRange("", "", false))
}

func TestFormatDateRange_OnlyCurrent(t *testing.T) {
	assert.Equal(t, PresentLabel, FormatDateRange("", "", true))
}
