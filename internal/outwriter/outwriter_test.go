package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{Output: schema.TextOut, UseEmojis: false, UseColors: false}
}

func sampleReports() []schema.EnrichedReport {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return []schema.EnrichedReport{
		{
			Report: schema.Report{
				Sys: "debian", SysVer: "12", Status: schema.GoodStatus,
				LastUpdate: &date, BoardID: "visionfive2",
				Source: schema.ReportSource, FileName: "debian",
			},
			BoardProduct: "VisionFive 2",
			BoardCPU:     "JH7110",
			BoardVendor:  "StarFive",
			SystemName:   "Debian",
		},
		{
			Report: schema.Report{
				Sys: "openbsd", Status: schema.CFHStatus, BoardID: "lpi4a",
				Source: schema.OtherSource,
			},
			BoardProduct: "LicheePi 4A",
			BoardCPU:     "TH1520",
			BoardVendor:  "Sipeed",
			SystemName:   "OpenBSD",
		},
	}
}

func TestWriteBoardTable(t *testing.T) {
	boards := []schema.BoardMeta{
		{Dir: "mars", Vendor: "Milk-V", Product: "Mars", CPU: "JH7110", CPUCore: "U74", RAM: "4GB"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeBoardTable(&buf, boards, testConfig()))

	out := buf.String()
	assert.Contains(t, out, "Mars")
	assert.Contains(t, out, "Milk-V")
	assert.Contains(t, out, "Showing 1 board(s)")
}

func TestWriteBoardCSV(t *testing.T) {
	boards := []schema.BoardMeta{
		{Dir: "mars", Vendor: "Milk-V", Product: "Mars", CPU: "JH7110", CPUCore: "U74", RAM: "4GB"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeBoardCSV(&buf, boards))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"board", "vendor", "product", "cpu", "cpu_core", "ram"}, records[0])
	assert.Equal(t, "mars", records[1][0])
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportCSV(&buf, sampleReports()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "visionfive2", records[1][0])
	assert.Equal(t, "2024-03-15", records[1][8])
	assert.Equal(t, "reports/visionfive2-debian-debian", records[1][10])

	assert.Empty(t, records[2][8], "bulk entries have no date")
	assert.Empty(t, records[2][10], "bulk entries have no page path")
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportJSON(&buf, sampleReports()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "reports/visionfive2-debian-debian", decoded[0]["page"])
	_, hasPage := decoded[1]["page"]
	assert.False(t, hasPage, "bulk entries omit the page field")
}

func TestWriteReportTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportTable(&buf, sampleReports(), testConfig()))

	out := buf.String()
	assert.Contains(t, out, "GOOD")
	assert.Contains(t, out, "Debian")
	assert.Contains(t, out, "-", "missing values render as a dash")
	assert.Contains(t, out, "Showing 2 report(s)")
}

func TestWriteMatrixTables(t *testing.T) {
	matrix := []schema.MatrixCategory{
		{
			ID:      "linux",
			Systems: []schema.SystemEntry{{ID: "debian", Name: "Debian"}},
			Rows: []schema.MatrixRow{
				{Board: schema.BoardMeta{Dir: "mars", Product: "Mars"}, Statuses: []schema.Status{schema.CFTStatus}},
			},
		},
		{ID: "bsd", Systems: []schema.SystemEntry{{ID: "openbsd", Name: "OpenBSD"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeMatrixTables(&buf, matrix, testConfig()))

	out := buf.String()
	assert.Contains(t, out, "linux")
	assert.Contains(t, out, "CFT")
	assert.Contains(t, out, "No boards with reports in this category")
}

func TestWriteMatrixCSV(t *testing.T) {
	matrix := []schema.MatrixCategory{
		{
			ID: "linux",
			Systems: []schema.SystemEntry{
				{ID: "debian", Name: "Debian"},
				{ID: "ubuntu", Name: "Ubuntu"},
			},
			Rows: []schema.MatrixRow{
				{Board: schema.BoardMeta{Dir: "mars"}, Statuses: []schema.Status{schema.CFTStatus, ""}},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeMatrixCSV(&buf, matrix))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "empty cells are not emitted")
	assert.Equal(t, []string{"linux", "mars", "debian", "CFT"}, records[1])
}

func TestWriteStatisticsText(t *testing.T) {
	stats := schema.SiteStatistics{
		TotalBoards:  2,
		TotalSystems: 3,
		TotalReports: 5,
		StatusCounts: map[schema.Status]int{
			schema.GoodStatus: 3,
			schema.WIPStatus:  2,
		},
		BoardsByVendor:    map[string][]string{"Sipeed": {"lpi4a"}},
		SystemsByCategory: map[string][]string{"linux": {"debian", "ubuntu"}},
		LastUpdated:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, writeStatisticsText(&buf, stats, testConfig()))

	out := buf.String()
	assert.Contains(t, out, "Boards: 2  Systems: 3  Reports: 5")
	assert.Contains(t, out, "GOOD")
	assert.Contains(t, out, "Sipeed")
	assert.True(t, strings.Index(out, "GOOD") < strings.Index(out, "WIP"), "statuses keep display order")
}

func TestTruncateField(t *testing.T) {
	assert.Equal(t, "short", truncateField("short", 24))
	assert.Equal(t, "exactly-24-characters-ok", truncateField("exactly-24-characters-ok", 24))
	assert.Equal(t, "SpacemiT K1 (X60, RVA...", truncateField("SpacemiT K1 (X60, RVA22 Profile)", 24))
	assert.Equal(t, "ab", truncateField("abcdef", 2))
}

func TestHeading(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, "title", heading("📊", "title", cfg))

	cfg.UseEmojis = true
	assert.Equal(t, "📊 title", heading("📊", "title", cfg))
}
