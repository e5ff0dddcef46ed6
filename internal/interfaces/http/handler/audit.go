package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/audit"
	identityapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/interfaces/http/middleware"
)

// AuditHandler handles audit trail endpoints
type AuditHandler struct {
	BaseHandler
	queryService *auditapp.QueryService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(queryService *auditapp.QueryService) *AuditHandler {
	return &AuditHandler{queryService: queryService}
}

// RegisterRoutes registers audit trail routes. The trail is sensitive, so
// reads are administrator-only.
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	logs := rg.Group("/audit-logs", middleware.RequireAdmin())
	logs.GET("", h.List)
	logs.GET("/:id", h.Get)
}

// ListAuditLogsRequest represents query filters for the audit trail.
// organization_id is honored for platform operators only.
type ListAuditLogsRequest struct {
	Page           int        `form:"page" binding:"omitempty,min=1"`
	PageSize       int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy         string     `form:"sort_by"`
	SortOrder      string     `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	OrganizationID string     `form:"organization_id" binding:"omitempty,uuid"`
	EntityType     string     `form:"entity_type"`
	EntityID       string     `form:"entity_id" binding:"omitempty,uuid"`
	ActorID        string     `form:"actor_id" binding:"omitempty,uuid"`
	Action         string     `form:"action"`
	From           *time.Time `form:"from" time_format:"2006-01-02"`
	To             *time.Time `form:"to" time_format:"2006-01-02"`
}

// List returns a page of audit log entries for the actor's organization
func (h *AuditHandler) List(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req ListAuditLogsRequest
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

	orgScope, ok := h.auditOrgScope(c, actor, req.OrganizationID)
	if !ok {
		return
	}

	input := auditapp.ListLogsInput{
		OrganizationID: orgScope,
		EntityType:     req.EntityType,
		Action:         req.Action,
		From:           req.From,
		To:             req.To,
		Page:           req.Page,
		PageSize:       req.PageSize,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
	}
	if req.EntityID != "" {
		entityID, err := uuid.Parse(req.EntityID)
		if err != nil {
			h.BadRequest(c, "Invalid entity_id")
			return
		}
		input.EntityID = &entityID
	}
	if req.ActorID != "" {
		actorID, err := uuid.Parse(req.ActorID)
		if err != nil {
			h.BadRequest(c, "Invalid actor_id")
			return
		}
		input.ActorID = &actorID
	}

	result, err := h.queryService.ListLogs(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Logs, result.Total, result.Page, result.PageSize)
}

// Get returns a single audit log entry
func (h *AuditHandler) Get(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	logID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	orgScope, ok := h.auditOrgScope(c, actor, "")
	if !ok {
		return
	}

	log, err := h.queryService.GetLog(c.Request.Context(), orgScope, logID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, log)
}

// auditOrgScope resolves the organization scope for audit reads. Admins are
// always pinned to their own organization; platform operators read
// platform-wide unless they pin a scope via the override header or an
// explicit organization_id filter.
func (h *AuditHandler) auditOrgScope(c *gin.Context, actor identityapp.Actor, requestedOrg string) (*uuid.UUID, bool) {
	if !actor.IsSuperAdmin() {
		orgID := actor.OrganizationID
		return &orgID, true
	}
	if requestedOrg != "" {
		orgID, err := uuid.Parse(requestedOrg)
		if err != nil {
			h.BadRequest(c, "Invalid organization_id")
			return nil, false
		}
		return &orgID, true
	}
	if actor.OrgScoped {
		orgID := actor.OrganizationID
		return &orgID, true
	}
	return nil, true
}
