package handlers

import (
	"net/http"

	"aegis_backend/internal/middleware"
	"aegis_backend/internal/models"
	"aegis_backend/internal/services"
	"aegis_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// LeadHandler обслуживает три лид-формы: обращения, партнерство и вакансии
type LeadHandler struct {
	*BaseHandler
	leadService services.LeadService
	guard       *middleware.AuthGuard
}

func NewLeadHandler(base *BaseHandler, leadService services.LeadService, guard *middleware.AuthGuard) *LeadHandler {
	return &LeadHandler{
		BaseHandler: base,
		leadService: leadService,
		guard:       guard,
	}
}

// RegisterRoutes регистрирует маршруты лид-форм.
// Создание доступно любому вошедшему пользователю,
// просмотр и смена статуса - администратору.
func (h *LeadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	leads := rg.Group("")
	leads.Use(h.guard.Authenticate())
	{
		leads.POST("/contacts", h.CreateContact)
		leads.POST("/partners", h.CreatePartner)
		leads.POST("/careers", h.CreateCareer)
	}

	admin := rg.Group("")
	admin.Use(h.guard.Authenticate())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/contacts", h.ListContacts)
		admin.GET("/contacts/:id", h.GetContact)
		admin.PUT("/contacts/:id/status", h.UpdateContactStatus)

		admin.GET("/partners", h.ListPartners)
		admin.GET("/partners/:id", h.GetPartner)
		admin.PUT("/partners/:id/status", h.UpdatePartnerStatus)

		admin.GET("/careers", h.ListCareers)
		admin.GET("/careers/:id", h.GetCareer)
		admin.PUT("/careers/:id/status", h.UpdateCareerStatus)
	}
}

func (h *LeadHandler) CreateContact(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contact, err := h.leadService.CreateContact(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contact": contact})
}

func (h *LeadHandler) ListContacts(c *gin.Context) {
	limit, offset := ParsePagination(c)

	contacts, err := h.leadService.ListContacts(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *LeadHandler) GetContact(c *gin.Context) {
	contact, err := h.leadService.GetContact(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

func (h *LeadHandler) UpdateContactStatus(c *gin.Context) {
	var req dto.UpdateLeadStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.leadService.UpdateContactStatus(c.Param("id"), models.LeadStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact status updated"})
}

func (h *LeadHandler) CreatePartner(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreatePartnerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	partner, err := h.leadService.CreatePartner(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"partner": partner})
}

func (h *LeadHandler) ListPartners(c *gin.Context) {
	limit, offset := ParsePagination(c)

	partners, err := h.leadService.ListPartners(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *LeadHandler) GetPartner(c *gin.Context) {
	partner, err := h.leadService.GetPartner(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partner": partner})
}

func (h *LeadHandler) UpdatePartnerStatus(c *gin.Context) {
	var req dto.UpdateLeadStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.leadService.UpdatePartnerStatus(c.Param("id"), models.LeadStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner status updated"})
}

func (h *LeadHandler) CreateCareer(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateCareerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	career, err := h.leadService.CreateCareer(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"career": career})
}

func (h *LeadHandler) ListCareers(c *gin.Context) {
	limit, offset := ParsePagination(c)

	careers, err := h.leadService.ListCareers(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"careers": careers})
}

func (h *LeadHandler) GetCareer(c *gin.Context) {
	career, err := h.leadService.GetCareer(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"career": career})
}

func (h *LeadHandler) UpdateCareerStatus(c *gin.Context) {
	var req dto.UpdateLeadStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.leadService.UpdateCareerStatus(c.Param("id"), models.LeadStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Career application status updated"})
}
