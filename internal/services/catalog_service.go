package services

import (
	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/services/dto"
)

type CatalogService interface {
	ListAvailable() ([]models.Service, error)
	ListAll() ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
	Create(req *dto.CreateServiceRequest) (*models.Service, error)
	Update(id string, req *dto.UpdateServiceRequest) (*models.Service, error)
	Delete(id string) error
}

type CatalogServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &CatalogServiceImpl{serviceRepo: serviceRepo}
}

// ListAvailable возвращает услуги, видимые на публичной витрине
func (s *CatalogServiceImpl) ListAvailable() ([]models.Service, error) {
	services, err := s.serviceRepo.FindAvailable()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return services, nil
}

// ListAll возвращает все услуги, включая скрытые (для админки)
func (s *CatalogServiceImpl) ListAll() ([]models.Service, error) {
	services, err := s.serviceRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return services, nil
}

func (s *CatalogServiceImpl) GetByID(id string) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, appErrors.ErrServiceNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) Create(req *dto.CreateServiceRequest) (*models.Service, error) {
	service := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    models.ServiceCategory(req.Category),
		Image:       req.Image,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		service.IsAvailable = *req.IsAvailable
	}

	if err := s.serviceRepo.Create(service); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) Update(id string, req *dto.UpdateServiceRequest) (*models.Service, error) {
	service, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.Description != "" {
		service.Description = req.Description
	}
	if req.Price != 0 {
		service.Price = req.Price
	}
	if req.Category != "" {
		service.Category = models.ServiceCategory(req.Category)
	}
	if req.Image != "" {
		service.Image = req.Image
	}
	if req.IsAvailable != nil {
		service.IsAvailable = *req.IsAvailable
	}

	if err := s.serviceRepo.Update(service); err != nil {
		if appErrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, appErrors.ErrServiceNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) Delete(id string) error {
	if err := s.serviceRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrServiceNotFound) {
			return appErrors.ErrServiceNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
