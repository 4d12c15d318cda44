package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panglars/VeRForTe/schema"
)

func TestBuildMatrix(t *testing.T) {
	data := loadFixture(t)

	matrix := BuildMatrix(data)
	require.Len(t, matrix, 2)

	linux := matrix[0]
	assert.Equal(t, "linux", linux.ID)
	require.Len(t, linux.Systems, 3, "customized entries fold into linux")
	assert.Equal(t, "armbian", linux.Systems[2].ID)

	// Rows follow board directory order; boards without any status in the
	// category are dropped.
	require.Len(t, linux.Rows, 3)
	assert.Equal(t, "lpi4a", linux.Rows[0].Board.Dir)
	assert.Equal(t, []schema.Status{schema.WIPStatus, "", ""}, linux.Rows[0].Statuses)
	assert.Equal(t, "mars", linux.Rows[1].Board.Dir)
	assert.Equal(t, []schema.Status{schema.CFTStatus, "", ""}, linux.Rows[1].Statuses)
	assert.Equal(t, "visionfive2", linux.Rows[2].Board.Dir)
	assert.Equal(t, []schema.Status{schema.GoodStatus, schema.BasicStatus, ""}, linux.Rows[2].Statuses)

	bsd := matrix[1]
	assert.Equal(t, "bsd", bsd.ID)
	require.Len(t, bsd.Rows, 1, "only lpi4a has a bsd report")
	assert.Equal(t, []schema.Status{schema.CFHStatus}, bsd.Rows[0].Statuses)
}

func TestCellStatusCaseFoldDeterministic(t *testing.T) {
	// Two sys keys folding to the same id must always resolve to the same
	// cell, regardless of map iteration order.
	board := &schema.Board{
		ID: "vf2",
		Systems: map[string][]schema.Report{
			"debian": {{Sys: "debian", BoardID: "vf2", Status: schema.BasicStatus}},
			"Debian": {{Sys: "Debian", BoardID: "vf2", Status: schema.GoodStatus}},
		},
	}

	for range 50 {
		assert.Equal(t, schema.GoodStatus, cellStatus(board, "debian"))
	}
}

func TestApplyCompareSelections(t *testing.T) {
	data := loadFixture(t)
	linux := BuildMatrix(data)[0]

	sel := schema.CompareSelection{
		Boards:  []string{"mars", "visionfive2"},
		Systems: []string{"debian", "ubuntu"},
	}
	compared := ApplyCompare(linux, sel)

	require.Len(t, compared.Systems, 2)
	require.Len(t, compared.Rows, 2)
	assert.Equal(t, []schema.Status{schema.CFTStatus, ""}, compared.Rows[0].Statuses)
	assert.Equal(t, []schema.Status{schema.GoodStatus, schema.BasicStatus}, compared.Rows[1].Statuses)
}

func TestApplyCompareHideIdentical(t *testing.T) {
	cat := schema.MatrixCategory{
		ID: "linux",
		Systems: []schema.SystemEntry{
			{ID: "debian", Name: "Debian"},
			{ID: "ubuntu", Name: "Ubuntu"},
		},
		Rows: []schema.MatrixRow{
			{Board: schema.BoardMeta{Dir: "same"}, Statuses: []schema.Status{schema.GoodStatus, schema.GoodStatus}},
			{Board: schema.BoardMeta{Dir: "mixed"}, Statuses: []schema.Status{schema.GoodStatus, schema.BasicStatus}},
			{Board: schema.BoardMeta{Dir: "blank"}, Statuses: []schema.Status{"", ""}},
			{Board: schema.BoardMeta{Dir: "partial"}, Statuses: []schema.Status{schema.GoodStatus, ""}},
		},
	}

	sel := schema.CompareSelection{
		Systems:       []string{"debian", "ubuntu"},
		HideIdentical: true,
	}
	compared := ApplyCompare(cat, sel)

	var dirs []string
	for _, row := range compared.Rows {
		dirs = append(dirs, row.Board.Dir)
	}
	assert.Equal(t, []string{"mixed", "partial"}, dirs, "identical and all-empty rows are hidden, mixed and partial stay")
}

func TestApplyCompareHideIdenticalNeedsTwoSystems(t *testing.T) {
	cat := schema.MatrixCategory{
		ID:      "linux",
		Systems: []schema.SystemEntry{{ID: "debian", Name: "Debian"}},
		Rows: []schema.MatrixRow{
			{Board: schema.BoardMeta{Dir: "a"}, Statuses: []schema.Status{schema.GoodStatus}},
			{Board: schema.BoardMeta{Dir: "b"}, Statuses: []schema.Status{schema.GoodStatus}},
		},
	}

	sel := schema.CompareSelection{
		Systems:       []string{"debian"},
		HideIdentical: true,
	}
	compared := ApplyCompare(cat, sel)
	assert.Len(t, compared.Rows, 2, "hide-identical needs at least two selected systems")
}

func TestApplyCompareNoSelection(t *testing.T) {
	data := loadFixture(t)
	linux := BuildMatrix(data)[0]

	compared := ApplyCompare(linux, schema.CompareSelection{})
	assert.Equal(t, linux.Systems, compared.Systems)
	assert.Len(t, compared.Rows, len(linux.Rows), "empty selections mean no restriction")
}
