package printing

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

// ReportDocument carries the data rendered into the inspection report PDF.
// The application layer maps domain objects into this structure so the
// renderer stays decoupled from domain types.
type ReportDocument struct {
	Title            string
	Status           string
	OrganizationName string
	VesselName       string
	IMONumber        string
	InspectorName    string
	InspectionDate   time.Time
	Port             string
	Summary          string
	OverallRating    string
	SubmittedAt      *time.Time
	ReviewedAt       *time.Time
	GeneratedAt      time.Time
	Entries          []ReportDocumentEntry
}

// ReportDocumentEntry is a single inspection finding on the PDF.
type ReportDocumentEntry struct {
	Category         string
	Item             string
	Condition        string
	Description      string
	MeasuredValue    *decimal.Decimal
	MeasuredUnit     string
	RequiresFollowup bool
}

// FollowupCount returns the number of entries flagged for followup.
func (d *ReportDocument) FollowupCount() int {
	n := 0
	for _, e := range d.Entries {
		if e.RequiresFollowup {
			n++
		}
	}
	return n
}

var reportTemplateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02")
	},
	"formatDateTime": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04 MST")
	},
	"formatMeasurement": func(v *decimal.Decimal, unit string) string {
		if v == nil {
			return "-"
		}
		s := v.String()
		if unit != "" {
			s += " " + unit
		}
		return s
	},
}

// reportTemplateHTML is the built-in layout for inspection report exports.
const reportTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: #1a1a1a; }
h1 { font-size: 18px; margin-bottom: 2px; }
.meta { color: #555; margin-bottom: 14px; }
.status { display: inline-block; padding: 2px 8px; border: 1px solid #888; border-radius: 3px; font-weight: bold; }
table { width: 100%; border-collapse: collapse; margin-top: 10px; }
th, td { border: 1px solid #ccc; padding: 5px 7px; text-align: left; vertical-align: top; }
th { background: #f0f2f5; }
.critical { color: #b00020; font-weight: bold; }
.followup { color: #b06000; }
.summary { margin-top: 12px; padding: 8px; background: #fafafa; border: 1px solid #e0e0e0; }
.footer { margin-top: 18px; color: #777; font-size: 9px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">
  <span class="status">{{.Status}}</span>
  &nbsp; {{.OrganizationName}} &mdash; {{.VesselName}} (IMO {{.IMONumber}})
</div>
<table>
  <tr><th>Inspector</th><td>{{.InspectorName}}</td><th>Inspection date</th><td>{{formatDate .InspectionDate}}</td></tr>
  <tr><th>Port</th><td>{{if .Port}}{{.Port}}{{else}}-{{end}}</td><th>Overall rating</th><td>{{if .OverallRating}}{{.OverallRating}}{{else}}-{{end}}</td></tr>
  <tr><th>Submitted</th><td>{{formatDateTime .SubmittedAt}}</td><th>Reviewed</th><td>{{formatDateTime .ReviewedAt}}</td></tr>
</table>
{{if .Summary}}<div class="summary">{{.Summary}}</div>{{end}}
<h1 style="font-size:14px;margin-top:16px;">Findings ({{len .Entries}}{{if gt (.FollowupCount) 0}}, {{.FollowupCount}} require followup{{end}})</h1>
<table>
  <tr><th>Category</th><th>Item</th><th>Condition</th><th>Measurement</th><th>Description</th><th>Followup</th></tr>
  {{range .Entries}}
  <tr>
    <td>{{.Category}}</td>
    <td>{{.Item}}</td>
    <td{{if eq .Condition "CRITICAL"}} class="critical"{{end}}>{{.Condition}}</td>
    <td>{{formatMeasurement .MeasuredValue .MeasuredUnit}}</td>
    <td>{{.Description}}</td>
    <td{{if .RequiresFollowup}} class="followup"{{end}}>{{if .RequiresFollowup}}YES{{else}}no{{end}}</td>
  </tr>
  {{else}}
  <tr><td colspan="6">No findings recorded.</td></tr>
  {{end}}
</table>
<div class="footer">Generated {{formatDate .GeneratedAt}} by ship-reporting.</div>
</body>
</html>`

var reportTemplate = template.Must(
	template.New("inspection_report").Funcs(reportTemplateFuncs).Parse(reportTemplateHTML),
)

// BuildReportHTML renders the inspection report document to HTML.
func BuildReportHTML(doc *ReportDocument) (string, error) {
	if doc == nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "report document is nil", nil)
	}
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now()
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, doc); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to render report template", err)
	}
	return buf.String(), nil
}
