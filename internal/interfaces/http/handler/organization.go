package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/interfaces/http/middleware"
)

// OrganizationHandler handles organization endpoints
type OrganizationHandler struct {
	BaseHandler
	orgService *identityapp.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(orgService *identityapp.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// RegisterRoutes registers organization routes. Creation and lifecycle
// changes are platform-operator only.
func (h *OrganizationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orgs := rg.Group("/organizations")
	orgs.POST("", middleware.RequireSuperAdmin(), h.Create)
	orgs.GET("", h.List)
	orgs.GET("/:id", h.Get)
	orgs.PUT("/:id", h.Update)
	orgs.POST("/:id/activate", middleware.RequireSuperAdmin(), h.Activate)
	orgs.POST("/:id/deactivate", middleware.RequireSuperAdmin(), h.Deactivate)
}

// Create provisions a new organization
func (h *OrganizationHandler) Create(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	org, err := h.orgService.Create(c.Request.Context(), identityapp.CreateOrganizationInput{
		Actor:        actor,
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newOrganizationResponse(org))
}

// Get returns a single organization
func (h *OrganizationHandler) Get(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	orgID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	org, err := h.orgService.Get(c.Request.Context(), actor, orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrganizationResponse(org))
}

// List returns a page of organizations. Non-operators see only their own.
func (h *OrganizationHandler) List(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req ListOrganizationsRequest
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

	result, err := h.orgService.List(c.Request.Context(), actor, identityapp.ListOrganizationsInput{
		Keyword:         req.Keyword,
		IncludeInactive: req.IncludeInactive,
		Page:            req.Page,
		PageSize:        req.PageSize,
		SortBy:          req.SortBy,
		SortOrder:       req.SortOrder,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, newOrganizationResponses(result.Organizations), result.Total, result.Page, result.PageSize)
}

// Update changes organization details
func (h *OrganizationHandler) Update(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	orgID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), identityapp.UpdateOrganizationInput{
		Actor:          actor,
		OrganizationID: orgID,
		Name:           req.Name,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		Address:        req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrganizationResponse(org))
}

// Activate restores a deactivated organization
func (h *OrganizationHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate soft-deletes an organization
func (h *OrganizationHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *OrganizationHandler) setActive(c *gin.Context, active bool) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	orgID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var err error
	if active {
		err = h.orgService.Activate(c.Request.Context(), actor, orgID)
	} else {
		err = h.orgService.Deactivate(c.Request.Context(), actor, orgID)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
