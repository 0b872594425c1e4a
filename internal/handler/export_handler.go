package handler

import (
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/analytics"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	svc *service.ExportService
}

func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Workbook GET /exports/workbook
func (h *ExportHandler) Workbook(c *gin.Context) {
	var filter analytics.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "invalid filter")
		return
	}

	f, filename, err := h.svc.Workbook(c.Request.Context(), GetActor(c), filter)
	if err != nil {
		ServiceError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}

// RequestsPDF GET /exports/requests.pdf
func (h *ExportHandler) RequestsPDF(c *gin.Context) {
	var filter analytics.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "invalid filter")
		return
	}

	data, filename, err := h.svc.RequestsPDF(c.Request.Context(), GetActor(c), filter)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(200, "application/pdf", data)
}

// AnalyticsPDF GET /exports/analytics.pdf
func (h *ExportHandler) AnalyticsPDF(c *gin.Context) {
	data, filename, err := h.svc.AnalyticsPDF(c.Request.Context(), GetActor(c))
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(200, "application/pdf", data)
}
