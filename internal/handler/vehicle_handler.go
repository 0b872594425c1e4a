package handler

import (
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	svc *service.VehicleService
}

func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// List returns all vehicles with per-station progress, sorted by type
// then natural vehicle number order
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.svc.List(c.Request.Context())
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, vehicles)
}

// Create registers a vehicle along with its station status rows
func (h *VehicleHandler) Create(c *gin.Context) {
	var req service.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "vehicle_type and vehicle_number are required")
		return
	}

	vehicle, err := h.svc.Create(c.Request.Context(), GetActor(c), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, vehicle)
}

// Delete removes a vehicle and its station rows
func (h *VehicleHandler) Delete(c *gin.Context) {
	number := c.Param("number")
	if err := h.svc.Delete(c.Request.Context(), GetActor(c), number); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}
