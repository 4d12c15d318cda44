package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Status
	}{
		{name: "already canonical", raw: "GOOD", expected: GoodStatus},
		{name: "lowercase", raw: "basic", expected: BasicStatus},
		{name: "surrounding whitespace", raw: "  cft \n", expected: CFTStatus},
		{name: "unknown value passes through", raw: "unknown", expected: Status("UNKNOWN")},
		{name: "empty", raw: "", expected: Status("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStatus(tt.raw))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, IsValidStatus(s), "status %s should be valid", s)
	}
	assert.False(t, IsValidStatus(Status("UNKNOWN")))
	assert.False(t, IsValidStatus(Status("good")), "validity check is case sensitive")
	assert.False(t, IsValidStatus(Status("")))
}

func TestDisplayName(t *testing.T) {
	meta := &SystemMetadata{Names: map[string]string{"ubuntu": "Ubuntu", "blank": ""}}

	assert.Equal(t, "Ubuntu", meta.DisplayName("ubuntu"))
	assert.Equal(t, "armbian", meta.DisplayName("armbian"), "unknown id falls back to itself")
	assert.Equal(t, "blank", meta.DisplayName("blank"), "empty display name falls back to id")

	var nilMeta *SystemMetadata
	assert.Equal(t, "debian", nilMeta.DisplayName("debian"))
}

func TestReportPagePath(t *testing.T) {
	doc := Report{BoardID: "visionfive2", Sys: "debian", FileName: "debian"}
	assert.Equal(t, "reports/visionfive2-debian-debian", doc.PagePath())

	bulk := Report{BoardID: "visionfive2", Sys: "openbsd", Source: OtherSource}
	assert.Empty(t, bulk.PagePath(), "bulk entries have no backing document")
}

func TestSupportedSystemNames(t *testing.T) {
	meta := &SystemMetadata{Names: map[string]string{"ubuntu": "Ubuntu"}}
	board := &Board{
		ID: "mars",
		Systems: map[string][]Report{
			"ubuntu": {{Sys: "ubuntu"}},
			"nixos":  {{Sys: "nixos"}},
		},
	}

	names := board.SupportedSystemNames(meta)
	assert.ElementsMatch(t, []string{"Ubuntu", "nixos"}, names)
}

func TestReportHasDate(t *testing.T) {
	now := time.Now()
	assert.True(t, (&Report{LastUpdate: &now}).HasDate())
	assert.False(t, (&Report{}).HasDate())
}

func TestFindSortOption(t *testing.T) {
	opt, ok := FindSortOption(ReportSortOptions, "date-asc")
	assert.True(t, ok)
	assert.Equal(t, DateField, opt.Field)
	assert.False(t, opt.Desc)

	_, ok = FindSortOption(ReportSortOptions, "nope")
	assert.False(t, ok)
}
