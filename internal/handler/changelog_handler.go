package handler

import (
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

type ChangeLogHandler struct {
	svc *service.ChangeLogService
}

func NewChangeLogHandler(svc *service.ChangeLogService) *ChangeLogHandler {
	return &ChangeLogHandler{svc: svc}
}

type notifyToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// List returns the most recent audit entries matching the query
// filters. Dates use the YYYY-MM-DD form; "to" covers its whole day.
func (h *ChangeLogHandler) List(c *gin.Context) {
	filter := repository.ChangeLogFilter{
		Username:   c.Query("username"),
		ActionType: c.Query("action_type"),
		Search:     c.Query("search"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			BadRequest(c, "invalid from date, expected YYYY-MM-DD")
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			BadRequest(c, "invalid to date, expected YYYY-MM-DD")
			return
		}
		filter.To = &t
	}

	entries, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, entries)
}

// NotifyStatus reports whether audit notifications are being delivered
func (h *ChangeLogHandler) NotifyStatus(c *gin.Context) {
	Success(c, gin.H{"enabled": h.svc.NotifyEnabled(c.Request.Context())})
}

// SetNotify flips the notification switch
func (h *ChangeLogHandler) SetNotify(c *gin.Context) {
	var req notifyToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "enabled is required")
		return
	}

	if err := h.svc.SetNotifyEnabled(c.Request.Context(), *req.Enabled); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"enabled": *req.Enabled})
}
