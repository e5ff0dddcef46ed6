package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/interfaces/http/dto"
)

// parseUUIDParam parses a UUID path parameter. Writes a 400 response and
// returns false on failure.
func (h *BaseHandler) parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" parameter, must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// bindListRequest binds common pagination query parameters with defaults
func (h *BaseHandler) bindListRequest(c *gin.Context) (dto.ListRequest, bool) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return req, false
	}
	req.Normalize()
	return req, true
}

// toDecimalPtr converts an optional float into an optional decimal
func toDecimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
