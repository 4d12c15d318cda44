package load

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

func TestMarkdownReports(t *testing.T) {
	src := contract.MapSource{
		"visionfive2/debian/debian.md":    []byte("---\nsys: debian\nsys_ver: \"12\"\nstatus: good\nlast_update: 2024-03-15\n---\nbody"),
		"visionfive2/debian/debian_zh.md": []byte("---\nsys: debian\nstatus: good\n---\n"),
		"mars/ubuntu/ubuntu.md":           []byte("---\nsys: ubuntu\nsys_var: server\nstatus: CFT\n---\n"),
		"mars/ubuntu/nodate.md":           []byte("---\nsys: ubuntu\nstatus: basic\nlast_update: soonish\n---\n"),
		"mars/ubuntu/nosys.md":            []byte("---\nstatus: good\n---\n"),
		"report-template/sys/report.md":   []byte("---\nsys: x\nstatus: good\n---\n"),
	}

	reports, err := MarkdownReports(src)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	byFile := map[string]schema.Report{}
	for _, r := range reports {
		byFile[r.FileName] = r
	}

	debian := byFile["debian"]
	assert.Equal(t, "visionfive2", debian.BoardID)
	assert.Equal(t, "12", debian.SysVer)
	assert.Equal(t, schema.GoodStatus, debian.Status, "status is uppercased")
	require.NotNil(t, debian.LastUpdate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *debian.LastUpdate)

	ubuntu := byFile["ubuntu"]
	assert.Equal(t, "server", ubuntu.SysVar)
	assert.Equal(t, schema.CFTStatus, ubuntu.Status)
	assert.Nil(t, ubuntu.LastUpdate)

	nodate := byFile["nodate"]
	assert.Nil(t, nodate.LastUpdate, "an unparsable date degrades to no date")
	assert.Equal(t, schema.BasicStatus, nodate.Status)

	_, hasZh := byFile["debian_zh"]
	assert.False(t, hasZh, "secondary language duplicates are skipped")
}

func TestParseReportDateFormats(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "plain date", value: "2024-01-02", want: true},
		{name: "rfc3339", value: "2024-01-02T10:30:00Z", want: true},
		{name: "datetime", value: "2024-01-02 10:30:00", want: true},
		{name: "empty", value: "", want: false},
		{name: "garbage", value: "last week", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseReportDate("x/y/z.md", tt.value)
			if tt.want {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
