package handler

import (
	"errors"
	"strconv"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers is the full HTTP handler set
type Handlers struct {
	Auth         *AuthHandler
	Vehicle      *VehicleHandler
	Production   *ProductionHandler
	Request      *RequestHandler
	User         *UserHandler
	ChangeLog    *ChangeLogHandler
	Dashboard    *DashboardHandler
	Export       *ExportHandler
	PartLocation *PartLocationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Vehicle:      NewVehicleHandler(services.Vehicle),
		Production:   NewProductionHandler(services.Production),
		Request:      NewRequestHandler(services.Request),
		User:         NewUserHandler(services.User),
		ChangeLog:    NewChangeLogHandler(services.ChangeLog),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Export:       NewExportHandler(services.Export),
		PartLocation: NewPartLocationHandler(services.PartLocation),
	}
}

// === response helpers ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// ServiceError maps service and repository errors onto HTTP responses
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "record not found")
	case errors.Is(err, repository.ErrConflict):
		Conflict(c, "record already exists")
	default:
		InternalError(c, err.Error())
	}
}

// GetActor reads the authenticated user from the gin context
func GetActor(c *gin.Context) service.Actor {
	return service.Actor{
		UserID:   c.GetString("user_id"),
		Username: c.GetString("username"),
		Role:     c.GetString("role"),
		IP:       c.ClientIP(),
	}
}

func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}

// Paginate slices a full result set to one page
func Paginate[T any](items []T, page, pageSize int) ([]T, *Pagination) {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return items[start:end], &Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
