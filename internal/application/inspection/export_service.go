package inspection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/printing"
)

// ExportService renders inspection reports as PDF documents
type ExportService struct {
	reports    *ReportService
	vesselRepo fleet.VesselRepository
	orgRepo    identity.OrganizationRepository
	userRepo   identity.UserRepository
	renderer   printing.PDFRenderer
	logger     *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(
	reports *ReportService,
	vesselRepo fleet.VesselRepository,
	orgRepo identity.OrganizationRepository,
	userRepo identity.UserRepository,
	renderer printing.PDFRenderer,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		reports:    reports,
		vesselRepo: vesselRepo,
		orgRepo:    orgRepo,
		userRepo:   userRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

// ExportPDF renders a report, with its entries, as an A4 PDF. Visibility
// follows the same scoping as reading the report.
func (s *ExportService) ExportPDF(ctx context.Context, actor Actor, reportID uuid.UUID) (*ExportReportResult, error) {
	if s.renderer == nil {
		return nil, shared.NewDomainError("EXPORT_DISABLED", "PDF export is not configured")
	}

	report, err := s.reports.loadVisibleReport(ctx, actor, reportID)
	if err != nil {
		return nil, err
	}

	doc := &printing.ReportDocument{
		Title:          report.Title,
		Status:         string(report.Status),
		InspectionDate: report.InspectionDate,
		Port:           report.Port,
		Summary:        report.Summary,
		OverallRating:  string(report.OverallRating),
		SubmittedAt:    report.SubmittedAt,
		ReviewedAt:     report.ReviewedAt,
		GeneratedAt:    time.Now(),
	}

	// Lookups are best-effort: a deleted vessel or user must not block export
	if vessel, err := s.vesselRepo.FindByID(ctx, report.VesselID); err == nil {
		doc.VesselName = vessel.Name
		doc.IMONumber = vessel.IMONumber
	}
	if org, err := s.orgRepo.FindByID(ctx, report.OrganizationID); err == nil {
		doc.OrganizationName = org.Name
	}
	if inspector, err := s.userRepo.FindByID(ctx, report.InspectorID); err == nil {
		doc.InspectorName = inspector.GetDisplayNameOrEmail()
	}

	for _, entry := range report.Entries {
		doc.Entries = append(doc.Entries, printing.ReportDocumentEntry{
			Category:         string(entry.Category),
			Item:             entry.Item,
			Condition:        string(entry.Condition),
			Description:      entry.Description,
			MeasuredValue:    entry.MeasuredValue,
			MeasuredUnit:     entry.MeasuredUnit,
			RequiresFollowup: entry.RequiresFollowup,
		})
	}

	html, err := printing.BuildReportHTML(doc)
	if err != nil {
		s.logger.Error("Failed to build report document", zap.Error(err))
		return nil, shared.NewDomainError("EXPORT_FAILED", "Failed to build report document")
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:      html,
		PaperSize: printing.PaperSizeA4,
		Margins:   printing.DefaultMargins(),
		Title:     report.Title,
	})
	if err != nil {
		s.logger.Error("Failed to render report PDF",
			zap.String("report_id", report.ID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("EXPORT_FAILED", "Failed to render report PDF")
	}

	s.logger.Info("Report exported as PDF",
		zap.String("report_id", report.ID.String()),
		zap.Int("pages", result.PageCount),
		zap.Duration("render_duration", result.RenderDuration))

	return &ExportReportResult{
		PDFData:   result.PDFData,
		FileName:  exportFileName(report.Title, report.InspectionDate),
		PageCount: result.PageCount,
	}, nil
}

// exportFileName builds a filesystem-safe file name for the exported PDF
func exportFileName(title string, inspectionDate time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, title)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "inspection-report"
	}
	return fmt.Sprintf("%s-%s.pdf", slug, inspectionDate.Format("2006-01-02"))
}
