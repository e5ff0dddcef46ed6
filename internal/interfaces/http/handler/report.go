package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	inspectionapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/inspection"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/inspection"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/interfaces/http/middleware"
)

// ReportHandler handles inspection report endpoints
type ReportHandler struct {
	BaseHandler
	reportService *inspectionapp.ReportService
	exportService *inspectionapp.ExportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *inspectionapp.ReportService, exportService *inspectionapp.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// RegisterRoutes registers inspection report routes. Review and archive
// are administrator actions; everything else is gated per-report by the
// application layer (captains touch only their own vessel's drafts).
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.POST("", h.Create)
	reports.GET("", h.List)
	reports.GET("/:id", h.Get)
	reports.PUT("/:id", h.Update)
	reports.DELETE("/:id", h.Delete)

	reports.POST("/:id/entries", h.AddEntry)
	reports.PUT("/:id/entries/:entry_id", h.UpdateEntry)
	reports.PUT("/:id/entries/:entry_id/measurement", h.SetMeasurement)
	reports.DELETE("/:id/entries/:entry_id", h.RemoveEntry)

	reports.POST("/:id/entries/:entry_id/photo", h.RequestPhotoUpload)
	reports.POST("/:id/entries/:entry_id/photo/attach", h.AttachPhoto)
	reports.GET("/:id/entries/:entry_id/photo", h.GetPhotoURL)

	reports.POST("/:id/submit", h.Submit)
	reports.POST("/:id/review", middleware.RequireAdmin(), h.Review)
	reports.POST("/:id/archive", middleware.RequireAdmin(), h.Archive)
	reports.GET("/:id/export", h.Export)
}

// Create opens a draft inspection report
func (h *ReportHandler) Create(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	vesselID, err := uuid.Parse(req.VesselID)
	if err != nil {
		h.BadRequest(c, "Invalid vessel_id")
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), inspectionapp.CreateReportInput{
		Actor:          actor,
		VesselID:       vesselID,
		Title:          req.Title,
		InspectionDate: req.InspectionDate,
		Port:           req.Port,
		Summary:        req.Summary,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newReportResponse(report))
}

// Get returns a single report with its entries
func (h *ReportHandler) Get(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Get(c.Request.Context(), actor, reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReportResponse(report))
}

// List returns a page of reports without entries
func (h *ReportHandler) List(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req ListReportsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	input := inspectionapp.ListReportsInput{
		OrganizationID:  actor.OrganizationID,
		Keyword:         req.Keyword,
		DateFrom:        req.DateFrom,
		DateTo:          req.DateTo,
		IncludeInactive: req.IncludeInactive,
		Page:            req.Page,
		PageSize:        req.PageSize,
		SortBy:          req.SortBy,
		SortOrder:       req.SortOrder,
	}
	if req.VesselID != "" {
		vesselID, err := uuid.Parse(req.VesselID)
		if err != nil {
			h.BadRequest(c, "Invalid vessel_id")
			return
		}
		input.VesselID = &vesselID
	}
	if req.InspectorID != "" {
		inspectorID, err := uuid.Parse(req.InspectorID)
		if err != nil {
			h.BadRequest(c, "Invalid inspector_id")
			return
		}
		input.InspectorID = &inspectorID
	}
	if req.Status != "" {
		status := inspection.Status(req.Status)
		input.Status = &status
	}

	result, err := h.reportService.List(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, newReportSummaryResponses(result.Reports), result.Total, result.Page, result.PageSize)
}

// Update changes a draft report's header fields
func (h *ReportHandler) Update(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	report, err := h.reportService.Update(c.Request.Context(), inspectionapp.UpdateReportInput{
		Actor:          actor,
		ReportID:       reportID,
		Title:          req.Title,
		Port:           req.Port,
		Summary:        req.Summary,
		InspectionDate: req.InspectionDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReportResponse(report))
}

// Delete soft-deletes a draft report
func (h *ReportHandler) Delete(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), actor, reportID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddEntry adds an inspection entry to a draft report
func (h *ReportHandler) AddEntry(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	entry, err := h.reportService.AddEntry(c.Request.Context(), inspectionapp.AddEntryInput{
		Actor:       actor,
		ReportID:    reportID,
		Category:    inspection.Category(req.Category),
		Item:        req.Item,
		Condition:   inspection.Condition(req.Condition),
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newEntryResponse(entry))
}

// UpdateEntry updates an entry's condition, description and followup flag
func (h *ReportHandler) UpdateEntry(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := h.parseUUIDParam(c, "entry_id")
	if !ok {
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	report, err := h.reportService.UpdateEntry(c.Request.Context(), inspectionapp.UpdateEntryInput{
		Actor:            actor,
		ReportID:         reportID,
		EntryID:          entryID,
		Condition:        inspection.Condition(req.Condition),
		Description:      req.Description,
		RequiresFollowup: req.RequiresFollowup,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReportResponse(report))
}

// SetMeasurement records a measured value on an entry
func (h *ReportHandler) SetMeasurement(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := h.parseUUIDParam(c, "entry_id")
	if !ok {
		return
	}

	var req SetMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	report, err := h.reportService.SetEntryMeasurement(c.Request.Context(), inspectionapp.SetEntryMeasurementInput{
		Actor:    actor,
		ReportID: reportID,
		EntryID:  entryID,
		Value:    decimal.NewFromFloat(req.Value),
		Unit:     req.Unit,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReportResponse(report))
}

// RemoveEntry removes an entry from a draft report
func (h *ReportHandler) RemoveEntry(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := h.parseUUIDParam(c, "entry_id")
	if !ok {
		return
	}

	report, err := h.reportService.RemoveEntry(c.Request.Context(), inspectionapp.RemoveEntryInput{
		Actor:    actor,
		ReportID: reportID,
		EntryID:  entryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReportResponse(report))
}

// RequestPhotoUpload presigns a direct photo upload for an entry
func (h *ReportHandler) RequestPhotoUpload(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := h.parseUUIDParam(c, "entry_id")
	if !ok {
		return
	}

	var req RequestPhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.reportService.RequestPhotoUpload(c.Request.Context(), inspectionapp.RequestPhotoUploadInput{
		Actor:       actor,
		ReportID:    reportID,
		EntryID:     entryID,
		ContentType: req.ContentType,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PhotoUploadResponse{
		UploadURL: result.UploadURL,
		PhotoKey:  result.PhotoKey,
		ExpiresAt: result.ExpiresAt,
	})
}

// AttachPhoto confirms an uploaded photo and binds it to the entry
func (h *ReportHandler) AttachPhoto(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := h.parseUUIDParam(c, "entry_id")
	if !ok {
		return
	}

	var req AttachPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	report, err := h.reportService.AttachPhoto(c.Request.Context(), inspectionapp.AttachPhotoInput{
		Actor:    actor,
		ReportID: reportID,
		EntryID:  entryID,
		PhotoKey: req.PhotoKey,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReportResponse(report))
}

// GetPhotoURL returns a presigned download URL for an entry's photo
func (h *ReportHandler) GetPhotoURL(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := h.parseUUIDParam(c, "entry_id")
	if !ok {
		return
	}

	result, err := h.reportService.GetPhotoURL(c.Request.Context(), actor, reportID, entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PhotoDownloadResponse{
		DownloadURL: result.DownloadURL,
		ExpiresAt:   result.ExpiresAt,
	})
}

// Submit moves a draft report to SUBMITTED
func (h *ReportHandler) Submit(c *gin.Context) {
	h.transition(c, h.reportService.Submit)
}

// Review marks a submitted report as REVIEWED
func (h *ReportHandler) Review(c *gin.Context) {
	h.transition(c, h.reportService.Review)
}

// Archive moves a reviewed report to ARCHIVED
func (h *ReportHandler) Archive(c *gin.Context) {
	h.transition(c, h.reportService.Archive)
}

func (h *ReportHandler) transition(c *gin.Context, op func(ctx context.Context, actor inspectionapp.Actor, reportID uuid.UUID) (*inspection.Report, error)) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	report, err := op(c.Request.Context(), actor, reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReportResponse(report))
}

// Export renders the report as a PDF download
func (h *ReportHandler) Export(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	reportID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.exportService.ExportPDF(c.Request.Context(), actor, reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.PDFData)
}
