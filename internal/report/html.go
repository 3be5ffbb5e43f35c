package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
)

// HTMLRenderer renders a Document as a single self-contained HTML file
// with print-oriented styling and photos embedded as data URIs.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates an HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"dataURI": func(p Photo) template.URL {
			return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(p.JPEG))
		},
	}
	return &HTMLRenderer{
		tmpl: template.Must(template.New("report").Funcs(funcs).Parse(reportTemplate)),
	}
}

// Ext returns "html".
func (r *HTMLRenderer) Ext() string {
	return "html"
}

// Render produces the HTML bytes.
func (r *HTMLRenderer) Render(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("executing report template: %w", err)
	}
	return buf.Bytes(), nil
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.CategoryName}}</title>
<style>
  @page { size: A4 portrait; margin: 10mm; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; color: #111; }
  header h1 { margin: 0; font-size: 16pt; }
  header p { margin: 2pt 0 10pt; color: #666; font-size: 9pt; }
  table { width: 100%; border-collapse: collapse; }
  th, td { border: 1px solid #999; padding: 4pt; vertical-align: top; text-align: left; }
  th { background: #eee; font-size: 9pt; }
  tr { page-break-inside: avoid; }
  .idx { width: 5%; }
  .photos { width: 30%; }
  .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 2pt; }
  .grid img { width: 100%; height: auto; }
  .name { font-weight: bold; }
  .meta { color: #444; font-size: 9pt; }
  .note { color: #666; font-size: 9pt; white-space: pre-wrap; }
  footer { margin-top: 8pt; text-align: right; color: #666; font-size: 9pt;
           border-top: 1px solid #999; padding-top: 4pt; }
</style>
</head>
<body>
<header>
  <h1>{{.CategoryName}}</h1>
  <p>Exported {{.ExportDate.Format "2006-01-02"}}</p>
</header>
<table>
  <tr><th class="idx">#</th><th class="photos">Photos</th><th>Details</th><th>Location</th><th>Note</th></tr>
  {{range .Rows}}
  <tr>
    <td class="idx">{{.Index}}</td>
    <td class="photos">{{if .Photos}}<div class="grid">{{range .Photos}}<img src="{{dataURI .}}" alt="">{{end}}</div>{{end}}</td>
    <td>
      <div class="name">{{.Name}}</div>
      {{if .AssetID}}<div class="meta">Code: {{.AssetID}}</div>{{end}}
      {{if .SerialNumber}}<div class="meta">SN: {{.SerialNumber}}</div>{{end}}
    </td>
    <td>{{.Location}}</td>
    <td class="note">{{.Note}}</td>
  </tr>
  {{end}}
</table>
<footer>Total: {{.Total}} assets</footer>
</body>
</html>
`
