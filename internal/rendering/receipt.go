// Package rendering turns verification receipts into shareable documents:
// an HTML page, and a PDF printed from that page in a headless browser.
package rendering

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/hirelogic/hirelogic-api/internal/verification"
)

const receiptTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Verification Receipt {{.ID}}</title>
<style>
  body { font-family: Georgia, serif; margin: 48px; color: #1a1a2e; }
  h1 { font-size: 22px; border-bottom: 2px solid #1a1a2e; padding-bottom: 8px; }
  .meta { color: #555; font-size: 13px; margin-bottom: 24px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #ddd; font-size: 14px; }
  .status-genuine { color: #1b7f3a; font-weight: bold; }
  .status-fraud { color: #b00020; font-weight: bold; }
  .overall { margin-top: 24px; font-size: 15px; }
</style>
</head>
<body>
<h1>Document Verification Receipt</h1>
<div class="meta">
  Receipt ID: {{.ID}}<br>
  Generated: {{.GeneratedAt.Format "02 Jan 2006 15:04 MST"}}
</div>
<table>
  <tr><th>Document</th><th>Result</th></tr>
  {{range .Entries}}
  <tr>
    <td>{{.Title}}</td>
    <td class="{{if eq (printf "%s" .Status) "Genuine"}}status-genuine{{else}}status-fraud{{end}}">{{.Status}}</td>
  </tr>
  {{end}}
</table>
<div class="overall">Overall status: <strong>{{.Overall}}</strong></div>
</body>
</html>
`

var receiptTmpl = template.Must(template.New("receipt").Parse(receiptTemplate))

// RenderReceiptHTML renders a receipt as a standalone HTML page.
func RenderReceiptHTML(r *verification.Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.String(), nil
}
