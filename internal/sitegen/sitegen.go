// Package sitegen renders the aggregated support data as a static HTML
// site: an index with per-category matrices, one page per board and one
// page per document-sourced report.
package sitegen

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/panglars/VeRForTe/core"
	"github.com/panglars/VeRForTe/core/load"
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// Generator writes the static site for one content source.
type Generator struct {
	src      contract.ContentSource
	provider contract.SiteProvider
	outDir   string
}

// New returns a generator writing under outDir.
func New(src contract.ContentSource, provider contract.SiteProvider, outDir string) *Generator {
	return &Generator{src: src, provider: provider, outDir: outDir}
}

// Generate renders every page. A failed load still produces an index page
// carrying the error, so a broken deploy is visible instead of blank; the
// load error is returned either way. An empty dataset renders the index
// with an explicit no-data message.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return err
	}

	data, err := g.provider.Get(ctx)
	if err != nil {
		if renderErr := g.renderIndex(nil, err); renderErr != nil {
			return renderErr
		}
		return err
	}

	if err := g.renderIndex(data, nil); err != nil {
		return err
	}
	if err := g.renderBoards(data); err != nil {
		return err
	}
	return g.renderReports(data)
}

func (g *Generator) renderIndex(data *schema.SiteData, loadErr error) error {
	model := struct {
		Error  string
		Empty  bool
		Stats  schema.SiteStatistics
		Matrix []schema.MatrixCategory
	}{}
	if loadErr != nil {
		model.Error = loadErr.Error()
	} else {
		model.Empty = len(data.AllReports) == 0
		model.Stats = data.Statistics
		model.Matrix = core.BuildMatrix(data)
	}
	return g.renderPage("index.html", indexTemplate, model)
}

func (g *Generator) renderBoards(data *schema.SiteData) error {
	type reportRow struct {
		SystemName string
		SysVer     string
		SysVar     string
		Status     schema.Status
		Updated    string
		Page       string
	}

	for _, id := range core.SortedBoardIDs(data) {
		board := data.Boards[id]
		model := struct {
			Board   *schema.Board
			Reports []reportRow
		}{Board: board}

		for _, r := range core.BoardReports(board) {
			row := reportRow{
				SystemName: data.Metadata.DisplayName(r.Sys),
				SysVer:     r.SysVer,
				SysVar:     r.SysVar,
				Status:     r.Status,
				Page:       r.PagePath(),
			}
			if r.HasDate() {
				row.Updated = r.LastUpdate.Format(contract.DateFormat)
			}
			model.Reports = append(model.Reports, row)
		}

		if err := g.renderPage(filepath.Join("boards", id+".html"), boardTemplate, model); err != nil {
			return err
		}
	}
	return nil
}

// renderReports walks the report documents again so each page can carry
// its rendered markdown body. Documents that did not survive validation
// have no aggregated counterpart and are skipped.
func (g *Generator) renderReports(data *schema.SiteData) error {
	byDoc := map[string]schema.Report{}
	for _, r := range data.AllReports {
		if r.FileName != "" {
			byDoc[r.BoardID+"/"+r.FileName] = r
		}
	}

	paths, err := g.src.Glob("*/*/*.md")
	if err != nil {
		return err
	}
	for _, p := range paths {
		parts := strings.Split(p, "/")
		if len(parts) != 3 {
			continue
		}
		boardID := parts[0]
		fileName := strings.TrimSuffix(parts[2], ".md")

		report, ok := byDoc[boardID+"/"+fileName]
		if !ok {
			continue
		}

		content, err := g.src.ReadFile(p)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("skipping report page for %s", p), err)
			continue
		}
		body, err := renderMarkdown([]byte(load.DocumentBody(content)))
		if err != nil {
			contract.LogWarn(fmt.Sprintf("skipping report page for %s", p), err)
			continue
		}

		boardName := boardID
		if board, ok := data.Boards[boardID]; ok {
			boardName = board.Meta.Product
		}
		model := struct {
			Title   string
			BoardID string
			BoardName string
			Status  schema.Status
			Updated string
			Body    template.HTML
		}{
			Title:     fmt.Sprintf("%s on %s", data.Metadata.DisplayName(report.Sys), boardName),
			BoardID:   boardID,
			BoardName: boardName,
			Status:    report.Status,
			Body:      body,
		}
		if report.HasDate() {
			model.Updated = report.LastUpdate.Format(contract.DateFormat)
		}

		if err := g.renderPage(report.PagePath()+".html", reportTemplate, model); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) renderPage(relPath string, tmpl *template.Template, model any) error {
	dest := filepath.Join(g.outDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	return tmpl.Execute(file, model)
}
