package handler

import (
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Overview returns the aggregated dashboard payload scoped to the
// caller's role
func (h *DashboardHandler) Overview(c *gin.Context) {
	Success(c, h.svc.Overview(c.Request.Context(), GetActor(c)))
}
