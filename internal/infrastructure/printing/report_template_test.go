package printing

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *ReportDocument {
	thickness := decimal.NewFromFloat(12.5)
	submitted := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	return &ReportDocument{
		Title:            "Quarterly Hull Inspection",
		Status:           "SUBMITTED",
		OrganizationName: "Northstar Maritime",
		VesselName:       "MV Northern Light",
		IMONumber:        "9074729",
		InspectorName:    "J. Halloran",
		InspectionDate:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		Port:             "Rotterdam",
		SubmittedAt:      &submitted,
		Entries: []ReportDocumentEntry{
			{
				Category:         "HULL",
				Item:             "Ballast tank 2P",
				Condition:        "CRITICAL",
				Description:      "Severe pitting on frame 42",
				MeasuredValue:    &thickness,
				MeasuredUnit:     "mm",
				RequiresFollowup: true,
			},
			{
				Category:  "SAFETY",
				Item:      "Lifeboat davits",
				Condition: "GOOD",
			},
		},
	}
}

func TestBuildReportHTML(t *testing.T) {
	t.Run("renders a full document", func(t *testing.T) {
		html, err := BuildReportHTML(sampleDocument())

		require.NoError(t, err)
		assert.Contains(t, html, "Quarterly Hull Inspection")
		assert.Contains(t, html, "MV Northern Light")
		assert.Contains(t, html, "IMO 9074729")
		assert.Contains(t, html, "12.5 mm")
		assert.Contains(t, html, "1 require followup")
		assert.Contains(t, html, `class="critical"`)
	})

	t.Run("escapes HTML in user content", func(t *testing.T) {
		doc := sampleDocument()
		doc.Summary = `<script>alert("x")</script>`

		html, err := BuildReportHTML(doc)

		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})

	t.Run("renders empty findings placeholder", func(t *testing.T) {
		doc := sampleDocument()
		doc.Entries = nil

		html, err := BuildReportHTML(doc)

		require.NoError(t, err)
		assert.Contains(t, html, "No findings recorded.")
	})

	t.Run("nil document errors", func(t *testing.T) {
		_, err := BuildReportHTML(nil)

		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeTemplateFailed, renderErr.Code)
	})
}

func TestReportDocument_FollowupCount(t *testing.T) {
	doc := sampleDocument()
	assert.Equal(t, 1, doc.FollowupCount())

	doc.Entries = nil
	assert.Equal(t, 0, doc.FollowupCount())
}

func TestChromedpRenderer_buildPrintParams(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{Scale: 1.0}}

	t.Run("A4 portrait with default margins", func(t *testing.T) {
		params := r.buildPrintParams(&RenderRequest{
			PaperSize: PaperSizeA4,
			Margins:   DefaultMargins(),
		})

		assert.InDelta(t, 8.27, params.paperWidth, 0.01)
		assert.InDelta(t, 11.69, params.paperHeight, 0.01)
		assert.False(t, params.landscape)
		assert.False(t, params.displayHeaderFooter)
	})

	t.Run("footer forces minimum bottom margin", func(t *testing.T) {
		params := r.buildPrintParams(&RenderRequest{
			PaperSize:  PaperSizeA4,
			FooterHTML: "<span>page</span>",
		})

		assert.True(t, params.displayHeaderFooter)
		assert.GreaterOrEqual(t, params.marginBottom, mmToInches(10))
	})
}

func TestChromedpRenderer_buildCompleteHTML(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{}}

	t.Run("wraps fragments", func(t *testing.T) {
		html := r.buildCompleteHTML(&RenderRequest{HTML: "<p>hi</p>", Title: "Report"})

		assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
		assert.Contains(t, html, "<title>Report</title>")
	})

	t.Run("passes through full documents", func(t *testing.T) {
		full := "<!DOCTYPE html><html><body>done</body></html>"
		assert.Equal(t, full, r.buildCompleteHTML(&RenderRequest{HTML: full}))
	})
}

func TestPaperSize(t *testing.T) {
	assert.True(t, PaperSizeA4.IsValid())
	assert.True(t, PaperSizeLetter.IsValid())
	assert.False(t, PaperSize("A5").IsValid())

	w, h := PaperSizeLetter.Dimensions()
	assert.InDelta(t, 215.9, w, 0.001)
	assert.InDelta(t, 279.4, h, 0.001)
}

func TestEstimatePageCount(t *testing.T) {
	pdf := []byte("%PDF /Type /Pages /Type /Page /Type /Page trailer")
	assert.Equal(t, 2, estimatePageCount(pdf))

	assert.Equal(t, 1, estimatePageCount([]byte("%PDF empty")))
}
