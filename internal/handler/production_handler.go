package handler

import (
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/analytics"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

type ProductionHandler struct {
	svc *service.ProductionService
}

func NewProductionHandler(svc *service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

type updateStationRequest struct {
	Status string `json:"status" binding:"required"`
}

// List returns station status rows, optionally filtered by vehicle
// number and status
func (h *ProductionHandler) List(c *gin.Context) {
	var filter analytics.ProductionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "invalid filter")
		return
	}

	rows, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, rows)
}

// UpdateStatus sets one station of one vehicle to pending, in_progress
// or completed
func (h *ProductionHandler) UpdateStatus(c *gin.Context) {
	var req updateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "status is required")
		return
	}

	row, err := h.svc.UpdateStatus(c.Request.Context(), GetActor(c),
		c.Param("number"), c.Param("station"), req.Status)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, row)
}
