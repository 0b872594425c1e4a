package handler

import (
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

type PartLocationHandler struct {
	svc *service.PartLocationService
}

func NewPartLocationHandler(svc *service.PartLocationService) *PartLocationHandler {
	return &PartLocationHandler{svc: svc}
}

// Lookup GET /parts/:part_no/locations
func (h *PartLocationHandler) Lookup(c *gin.Context) {
	locations, err := h.svc.Lookup(c.Request.Context(), c.Param("part_no"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, locations)
}
