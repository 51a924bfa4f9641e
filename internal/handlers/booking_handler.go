package handlers

import (
	"net/http"

	"aegis_backend/internal/middleware"
	"aegis_backend/internal/models"
	"aegis_backend/internal/services"
	"aegis_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
	guard          *middleware.AuthGuard
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService, guard *middleware.AuthGuard) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
		guard:          guard,
	}
}

// RegisterRoutes регистрирует маршруты бронирований
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(h.guard.Authenticate())
	{
		bookings.GET("", h.ListOwn)
		bookings.GET("/:id", h.GetOwn)
		bookings.POST("", h.Create)
		bookings.DELETE("/:id", h.Cancel)
	}

	admin := rg.Group("/bookings")
	admin.Use(h.guard.Authenticate())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/all", h.ListAll)
		admin.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *BookingHandler) ListOwn(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListForUser(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) GetOwn(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetForUser(c.Param("id"), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *BookingHandler) Create(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Create(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Param("id"), user.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	limit, offset := ParsePagination(c)

	bookings, err := h.bookingService.ListAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.bookingService.UpdateStatus(c.Param("id"), models.BookingStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
}
