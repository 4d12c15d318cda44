package sitegen

import "html/template"

// Templates are compiled once at package init. Pages are self-contained
// HTML documents sharing a small inline stylesheet.

const baseStyle = `
body { font-family: sans-serif; margin: 2rem auto; max-width: 64rem; padding: 0 1rem; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
th { background: #f4f4f4; }
.status { font-weight: bold; }
.empty, .error { padding: 1rem; border: 1px solid #ccc; background: #fafafa; }
.error { border-color: #c00; color: #c00; }
nav { margin-bottom: 1.5rem; }
`

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>RISC-V Board and OS Support Matrix</title>
<style>` + baseStyle + `</style>
</head>
<body>
<h1>RISC-V Board and OS Support Matrix</h1>
{{if .Error}}
<div class="error">Failed to load support matrix data: {{.Error}}</div>
{{else if .Empty}}
<div class="empty">No support data available yet.</div>
{{else}}
<p>{{.Stats.TotalBoards}} boards, {{.Stats.TotalSystems}} systems, {{.Stats.TotalReports}} reports.</p>
{{range .Matrix}}
<h2>{{.ID}}</h2>
{{if .Rows}}
<table>
<tr><th>Board</th>{{range .Systems}}<th>{{.Name}}</th>{{end}}</tr>
{{range .Rows}}
<tr>
<td><a href="boards/{{.Board.Dir}}.html">{{.Board.Product}}</a></td>
{{range .Statuses}}<td class="status">{{if .}}{{.}}{{else}}-{{end}}</td>{{end}}
</tr>
{{end}}
</table>
{{else}}
<div class="empty">No boards with reports in this category.</div>
{{end}}
{{end}}
{{end}}
</body>
</html>
`))

var boardTemplate = template.Must(template.New("board").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Board.Meta.Product}}</title>
<style>` + baseStyle + `</style>
</head>
<body>
<nav><a href="../index.html">Support matrix</a></nav>
<h1>{{.Board.Meta.Product}}</h1>
<table>
<tr><th>Vendor</th><td>{{.Board.Meta.Vendor}}</td></tr>
<tr><th>CPU</th><td>{{.Board.Meta.CPU}}</td></tr>
<tr><th>Core</th><td>{{.Board.Meta.CPUCore}}</td></tr>
<tr><th>RAM</th><td>{{.Board.Meta.RAM}}</td></tr>
</table>
<h2>Reports</h2>
{{if .Reports}}
<table>
<tr><th>System</th><th>Version</th><th>Variant</th><th>Status</th><th>Updated</th></tr>
{{range .Reports}}
<tr>
<td>{{if .Page}}<a href="../{{.Page}}.html">{{.SystemName}}</a>{{else}}{{.SystemName}}{{end}}</td>
<td>{{.SysVer}}</td>
<td>{{.SysVar}}</td>
<td class="status">{{.Status}}</td>
<td>{{.Updated}}</td>
</tr>
{{end}}
</table>
{{else}}
<div class="empty">No reports for this board yet.</div>
{{end}}
</body>
</html>
`))

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>` + baseStyle + `</style>
</head>
<body>
<nav><a href="../index.html">Support matrix</a> / <a href="../boards/{{.BoardID}}.html">{{.BoardName}}</a></nav>
<h1>{{.Title}}</h1>
<p class="status">Status: {{.Status}}{{if .Updated}} (updated {{.Updated}}){{end}}</p>
{{.Body}}
</body>
</html>
`))
