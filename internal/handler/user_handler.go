package handler

import (
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type resetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "username, password and role are required")
		return
	}

	user, err := h.svc.Create(c.Request.Context(), GetActor(c), &input)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), GetActor(c), c.Param("id")); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "role is required")
		return
	}

	user, err := h.svc.UpdateRole(c.Request.Context(), GetActor(c), c.Param("id"), req.Role)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, user)
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "password is required")
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), GetActor(c), c.Param("id"), req.Password); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, nil)
}
