package handlers

import (
	"net/http"

	"aegis_backend/internal/middleware"
	"aegis_backend/internal/models"
	"aegis_backend/internal/services"
	"aegis_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	*BaseHandler
	catalogService services.CatalogService
	guard          *middleware.AuthGuard
}

func NewServiceHandler(base *BaseHandler, catalogService services.CatalogService, guard *middleware.AuthGuard) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		catalogService: catalogService,
		guard:          guard,
	}
}

// RegisterRoutes регистрирует маршруты каталога услуг.
// Чтение публичное, запись только для администратора.
func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/services")
	{
		public.GET("", h.List)
		public.GET("/:id", h.GetByID)
	}

	admin := rg.Group("/services")
	admin.Use(h.guard.Authenticate())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/all", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	servicesList, err := h.catalogService.ListAvailable()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": servicesList})
}

// ListAll возвращает каталог целиком, включая снятые с публикации услуги
func (h *ServiceHandler) ListAll(c *gin.Context) {
	servicesList, err := h.catalogService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": servicesList})
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	service, err := h.catalogService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.catalogService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.catalogService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
