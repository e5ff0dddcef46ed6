package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	fleetapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/interfaces/http/middleware"
)

// VesselHandler handles fleet endpoints
type VesselHandler struct {
	BaseHandler
	vesselService *fleetapp.VesselService
}

// NewVesselHandler creates a new VesselHandler
func NewVesselHandler(vesselService *fleetapp.VesselService) *VesselHandler {
	return &VesselHandler{vesselService: vesselService}
}

// RegisterRoutes registers fleet routes. Captains can read; mutations
// require an administrator.
func (h *VesselHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vessels := rg.Group("/vessels")
	vessels.POST("", middleware.RequireAdmin(), h.Register)
	vessels.GET("", h.List)
	vessels.GET("/:id", h.Get)
	vessels.PUT("/:id", middleware.RequireAdmin(), h.Update)
	vessels.PUT("/:id/captain", middleware.RequireAdmin(), h.AssignCaptain)
	vessels.DELETE("/:id/captain", middleware.RequireAdmin(), h.UnassignCaptain)
	vessels.POST("/:id/activate", middleware.RequireAdmin(), h.Activate)
	vessels.POST("/:id/deactivate", middleware.RequireAdmin(), h.Deactivate)
}

// Register adds a vessel to the fleet
func (h *VesselHandler) Register(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req RegisterVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	orgID := actor.OrganizationID
	if req.OrganizationID != "" {
		parsed, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			h.BadRequest(c, "Invalid organization_id")
			return
		}
		orgID = parsed
	}

	vessel, err := h.vesselService.Register(c.Request.Context(), fleetapp.RegisterVesselInput{
		Actor:          actor,
		OrganizationID: orgID,
		Name:           req.Name,
		IMONumber:      req.IMONumber,
		Type:           fleet.VesselType(req.Type),
		FlagState:      req.FlagState,
		GrossTonnage:   toDecimalPtr(req.GrossTonnage),
		YearBuilt:      req.YearBuilt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newVesselResponse(vessel))
}

// Get returns a single vessel
func (h *VesselHandler) Get(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	vesselID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	vessel, err := h.vesselService.Get(c.Request.Context(), actor, vesselID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newVesselResponse(vessel))
}

// List returns a page of vessels in the actor's organization
func (h *VesselHandler) List(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req ListVesselsRequest
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

	input := fleetapp.ListVesselsInput{
		OrganizationID:  actor.OrganizationID,
		Keyword:         req.Keyword,
		IncludeInactive: req.IncludeInactive,
		Page:            req.Page,
		PageSize:        req.PageSize,
		SortBy:          req.SortBy,
		SortOrder:       req.SortOrder,
	}
	if req.Type != "" {
		vesselType := fleet.VesselType(req.Type)
		input.Type = &vesselType
	}

	result, err := h.vesselService.List(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, newVesselResponses(result.Vessels), result.Total, result.Page, result.PageSize)
}

// Update changes vessel details
func (h *VesselHandler) Update(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	vesselID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	input := fleetapp.UpdateVesselInput{
		Actor:        actor,
		VesselID:     vesselID,
		Name:         req.Name,
		FlagState:    req.FlagState,
		GrossTonnage: toDecimalPtr(req.GrossTonnage),
		YearBuilt:    req.YearBuilt,
	}
	if req.Type != nil {
		vesselType := fleet.VesselType(*req.Type)
		input.Type = &vesselType
	}

	vessel, err := h.vesselService.Update(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newVesselResponse(vessel))
}

// AssignCaptain assigns a captain to the vessel
func (h *VesselHandler) AssignCaptain(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	vesselID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignCaptainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	captainID, err := uuid.Parse(req.CaptainID)
	if err != nil {
		h.BadRequest(c, "Invalid captain_id")
		return
	}

	vessel, err := h.vesselService.AssignCaptain(c.Request.Context(), fleetapp.AssignCaptainInput{
		Actor:     actor,
		VesselID:  vesselID,
		CaptainID: captainID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newVesselResponse(vessel))
}

// UnassignCaptain removes the vessel's captain
func (h *VesselHandler) UnassignCaptain(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	vesselID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	vessel, err := h.vesselService.UnassignCaptain(c.Request.Context(), actor, vesselID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newVesselResponse(vessel))
}

// Activate restores a deactivated vessel
func (h *VesselHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate soft-deletes a vessel
func (h *VesselHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *VesselHandler) setActive(c *gin.Context, active bool) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	vesselID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var err error
	if active {
		err = h.vesselService.Activate(c.Request.Context(), actor, vesselID)
	} else {
		err = h.vesselService.Deactivate(c.Request.Context(), actor, vesselID)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
