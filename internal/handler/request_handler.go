package handler

import (
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/analytics"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	svc *service.RequestService
}

func NewRequestHandler(svc *service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// List returns requests visible to the caller, newest first, with the
// combined filter applied and paginated
func (h *RequestHandler) List(c *gin.Context) {
	var filter analytics.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, "invalid filter")
		return
	}

	requests, err := h.svc.List(c.Request.Context(), GetActor(c), filter)
	if err != nil {
		ServiceError(c, err)
		return
	}

	page, pageSize := GetPagination(c)
	items, pagination := Paginate(requests, page, pageSize)
	Success(c, ListResponse{Items: items, Pagination: pagination})
}

// Create registers a station or part request
func (h *RequestHandler) Create(c *gin.Context) {
	var input service.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "vehicle_type, vehicle_number, station_code and request_type are required")
		return
	}

	request, err := h.svc.Create(c.Request.Context(), GetActor(c), &input)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, request)
}

// Deliver marks an open request as delivered
func (h *RequestHandler) Deliver(c *gin.Context) {
	request, err := h.svc.MarkDelivered(c.Request.Context(), GetActor(c), c.Param("id"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, request)
}

// Delete removes a request
func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), GetActor(c), c.Param("id")); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}
