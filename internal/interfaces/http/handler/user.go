package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/interfaces/http/middleware"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user management routes. All mutations require
// at least an organization administrator.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("", middleware.RequireAdmin(), h.Create)
	users.GET("", h.List)
	users.GET("/:id", h.Get)
	users.PUT("/:id", middleware.RequireAdmin(), h.Update)
	users.PUT("/:id/role", middleware.RequireAdmin(), h.ChangeRole)
	users.PUT("/:id/vessel", middleware.RequireAdmin(), h.AssignVessel)
	users.DELETE("/:id/vessel", middleware.RequireAdmin(), h.UnassignVessel)
	users.POST("/:id/activate", middleware.RequireAdmin(), h.Activate)
	users.POST("/:id/deactivate", middleware.RequireAdmin(), h.Deactivate)
	users.POST("/:id/unlock", middleware.RequireAdmin(), h.Unlock)
	users.POST("/:id/reset-password", middleware.RequireAdmin(), h.ResetPassword)
}

// Create adds a user to an organization
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	// Admins create users in their own organization; operators may target
	// any organization explicitly
	orgID := actor.OrganizationID
	if req.OrganizationID != "" {
		parsed, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			h.BadRequest(c, "Invalid organization_id")
			return
		}
		orgID = parsed
	}

	input := identityapp.CreateUserInput{
		Actor:          actor,
		OrganizationID: orgID,
		Email:          req.Email,
		Password:       req.Password,
		DisplayName:    req.DisplayName,
		Role:           identity.Role(req.Role),
	}
	if req.VesselID != nil {
		vesselID, err := uuid.Parse(*req.VesselID)
		if err != nil {
			h.BadRequest(c, "Invalid vessel_id")
			return
		}
		input.VesselID = &vesselID
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newUserResponse(user))
}

// Get returns a single user
func (h *UserHandler) Get(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	userID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), actor, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(user))
}

// List returns a page of users in the actor's organization
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	var req ListUsersRequest
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

	input := identityapp.ListUsersInput{
		OrganizationID:  actor.OrganizationID,
		Keyword:         req.Keyword,
		IncludeInactive: req.IncludeInactive,
		Page:            req.Page,
		PageSize:        req.PageSize,
		SortBy:          req.SortBy,
		SortOrder:       req.SortOrder,
	}
	if req.Role != "" {
		role := identity.Role(req.Role)
		input.Role = &role
	}

	result, err := h.userService.List(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, newUserResponses(result.Users), result.Total, result.Page, result.PageSize)
}

// Update changes a user's profile
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	userID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), identityapp.UpdateUserInput{
		Actor:       actor,
		UserID:      userID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(user))
}

// ChangeRole changes a user's role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	userID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ChangeUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.ChangeRole(c.Request.Context(), identityapp.ChangeUserRoleInput{
		Actor:  actor,
		UserID: userID,
		Role:   identity.Role(req.Role),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(user))
}

// AssignVessel assigns a captain to a vessel
func (h *UserHandler) AssignVessel(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	userID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	vesselID, err := uuid.Parse(req.VesselID)
	if err != nil {
		h.BadRequest(c, "Invalid vessel_id")
		return
	}

	user, err := h.userService.AssignVessel(c.Request.Context(), identityapp.AssignUserVesselInput{
		Actor:    actor,
		UserID:   userID,
		VesselID: vesselID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(user))
}

// UnassignVessel removes a captain's vessel assignment
func (h *UserHandler) UnassignVessel(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	userID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.UnassignVessel(c.Request.Context(), actor, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(user))
}

// Activate restores a deactivated user
func (h *UserHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate soft-deletes a user
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

// Unlock clears a login lockout before it expires
func (h *UserHandler) Unlock(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	userID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Unlock(c.Request.Context(), actor, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ResetPassword sets a new password on behalf of a user
func (h *UserHandler) ResetPassword(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	userID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), actor, userID, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}

	userID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var err error
	if active {
		err = h.userService.Activate(c.Request.Context(), actor, userID)
	} else {
		err = h.userService.Deactivate(c.Request.Context(), actor, userID)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
