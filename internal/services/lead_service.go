package services

import (
	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/config"
	"aegis_backend/internal/email"
	"aegis_backend/internal/logger"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/services/dto"
)

// LeadService обслуживает три лид-формы сайта: обращения, партнерские
// заявки и отклики на вакансии. О каждой новой заявке администратор
// получает email-уведомление.
type LeadService interface {
	CreateContact(userID string, req *dto.CreateContactRequest) (*models.Contact, error)
	ListContacts(limit, offset int) ([]models.Contact, error)
	GetContact(id string) (*models.Contact, error)
	UpdateContactStatus(id string, status models.LeadStatus) error

	CreatePartner(userID string, req *dto.CreatePartnerRequest) (*models.Partner, error)
	ListPartners(limit, offset int) ([]models.Partner, error)
	GetPartner(id string) (*models.Partner, error)
	UpdatePartnerStatus(id string, status models.LeadStatus) error

	CreateCareer(userID string, req *dto.CreateCareerRequest) (*models.Career, error)
	ListCareers(limit, offset int) ([]models.Career, error)
	GetCareer(id string) (*models.Career, error)
	UpdateCareerStatus(id string, status models.LeadStatus) error
}

type LeadServiceImpl struct {
	cfg           *config.Config
	contactRepo   repositories.ContactRepository
	partnerRepo   repositories.PartnerRepository
	careerRepo    repositories.CareerRepository
	emailProvider email.Provider
}

func NewLeadService(
	cfg *config.Config,
	contactRepo repositories.ContactRepository,
	partnerRepo repositories.PartnerRepository,
	careerRepo repositories.CareerRepository,
	emailProvider email.Provider,
) LeadService {
	return &LeadServiceImpl{
		cfg:           cfg,
		contactRepo:   contactRepo,
		partnerRepo:   partnerRepo,
		careerRepo:    careerRepo,
		emailProvider: emailProvider,
	}
}

func (s *LeadServiceImpl) CreateContact(userID string, req *dto.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		UserID:           userID,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Industry:         req.Industry,
		CompanyName:      req.CompanyName,
		CompanySize:      req.CompanySize,
		CompanyWebsite:   req.CompanyWebsite,
		Address:          req.Address,
		Country:          req.Country,
		Inquiry:          req.Inquiry,
		InquiryType:      req.InquiryType,
		Budget:           req.Budget,
		Timeframe:        req.Timeframe,
		HowDidYouHear:    req.HowDidYouHear,
		SignUpForUpdates: req.SignUpForUpdates,
		Status:           models.LeadStatusNew,
	}
	if contact.InquiryType == "" {
		contact.InquiryType = "general"
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, appErrors.InternalError(err)
	}

	s.notifyAdmin("contact", email.TemplateData{
		"Name":    contact.Name,
		"Email":   contact.Email,
		"Company": contact.CompanyName,
		"Message": contact.Inquiry,
	})

	return contact, nil
}

func (s *LeadServiceImpl) ListContacts(limit, offset int) ([]models.Contact, error) {
	contacts, err := s.contactRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return contacts, nil
}

func (s *LeadServiceImpl) GetContact(id string) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrLeadNotFound) {
			return nil, appErrors.ErrLeadNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return contact, nil
}

func (s *LeadServiceImpl) UpdateContactStatus(id string, status models.LeadStatus) error {
	return s.wrapLeadErr(s.contactRepo.UpdateStatus(id, status))
}

func (s *LeadServiceImpl) CreatePartner(userID string, req *dto.CreatePartnerRequest) (*models.Partner, error) {
	partner := &models.Partner{
		UserID:             userID,
		Name:               req.Name,
		Email:              req.Email,
		Company:            req.Company,
		ServicesInterested: req.ServicesInterested,
		Status:             models.LeadStatusNew,
	}

	if err := s.partnerRepo.Create(partner); err != nil {
		return nil, appErrors.InternalError(err)
	}

	s.notifyAdmin("partner", email.TemplateData{
		"Name":    partner.Name,
		"Email":   partner.Email,
		"Company": partner.Company,
		"Message": partner.ServicesInterested,
	})

	return partner, nil
}

func (s *LeadServiceImpl) ListPartners(limit, offset int) ([]models.Partner, error) {
	partners, err := s.partnerRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return partners, nil
}

func (s *LeadServiceImpl) GetPartner(id string) (*models.Partner, error) {
	partner, err := s.partnerRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrLeadNotFound) {
			return nil, appErrors.ErrLeadNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return partner, nil
}

func (s *LeadServiceImpl) UpdatePartnerStatus(id string, status models.LeadStatus) error {
	return s.wrapLeadErr(s.partnerRepo.UpdateStatus(id, status))
}

func (s *LeadServiceImpl) CreateCareer(userID string, req *dto.CreateCareerRequest) (*models.Career, error) {
	career := &models.Career{
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Experience: req.Experience,
		ResumeURL:  req.ResumeURL,
		CoverNote:  req.CoverNote,
		Status:     models.LeadStatusNew,
	}

	if err := s.careerRepo.Create(career); err != nil {
		return nil, appErrors.InternalError(err)
	}

	s.notifyAdmin("career", email.TemplateData{
		"Name":    career.Name,
		"Email":   career.Email,
		"Message": career.Position,
	})

	return career, nil
}

func (s *LeadServiceImpl) ListCareers(limit, offset int) ([]models.Career, error) {
	careers, err := s.careerRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return careers, nil
}

func (s *LeadServiceImpl) GetCareer(id string) (*models.Career, error) {
	career, err := s.careerRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrLeadNotFound) {
			return nil, appErrors.ErrLeadNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return career, nil
}

func (s *LeadServiceImpl) UpdateCareerStatus(id string, status models.LeadStatus) error {
	return s.wrapLeadErr(s.careerRepo.UpdateStatus(id, status))
}

func (s *LeadServiceImpl) wrapLeadErr(err error) error {
	if err == nil {
		return nil
	}
	if appErrors.Is(err, repositories.ErrLeadNotFound) {
		return appErrors.ErrLeadNotFound
	}
	return appErrors.InternalError(err)
}

// notifyAdmin отправляет уведомление о новой заявке в фоне,
// чтобы не задерживать ответ клиенту
func (s *LeadServiceImpl) notifyAdmin(kind string, data email.TemplateData) {
	if s.emailProvider == nil || s.cfg.Email.AdminEmail == "" {
		return
	}

	to := s.cfg.Email.AdminEmail
	go func() {
		if err := s.emailProvider.SendLeadNotification(to, kind, data); err != nil {
			logger.Error("failed to send lead notification", "kind", kind, "error", err)
		}
	}()
}
