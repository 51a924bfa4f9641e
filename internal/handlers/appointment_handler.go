package handlers

import (
	"net/http"

	"aegis_backend/internal/middleware"
	"aegis_backend/internal/models"
	"aegis_backend/internal/services"
	"aegis_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	*BaseHandler
	appointmentService services.AppointmentService
	guard              *middleware.AuthGuard
}

func NewAppointmentHandler(base *BaseHandler, appointmentService services.AppointmentService, guard *middleware.AuthGuard) *AppointmentHandler {
	return &AppointmentHandler{
		BaseHandler:        base,
		appointmentService: appointmentService,
		guard:              guard,
	}
}

// RegisterRoutes регистрирует маршруты заявок на встречи
func (h *AppointmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	appointments := rg.Group("/appointments")
	appointments.Use(h.guard.Authenticate())
	{
		appointments.GET("", h.ListOwn)
		appointments.POST("", h.Create)
	}

	admin := rg.Group("/appointments")
	admin.Use(h.guard.Authenticate())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/all", h.ListAll)
		admin.GET("/:id", h.GetByID)
		admin.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *AppointmentHandler) ListOwn(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	appointments, err := h.appointmentService.ListForUser(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.Create(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	limit, offset := ParsePagination(c)

	appointments, err := h.appointmentService.ListAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	appointment, err := h.appointmentService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAppointmentStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.appointmentService.UpdateStatus(c.Param("id"), models.AppointmentStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated"})
}
