package repositories

import (
	"errors"

	"aegis_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	FindByID(id string) (*models.Service, error)
	FindAvailable() ([]models.Service, error)
	FindAll() ([]models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	Delete(id string) error
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) FindByID(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindAvailable() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("is_available = ?", true).Order("created_at DESC").Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindAll() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("created_at DESC").Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepositoryImpl) Update(service *models.Service) error {
	result := r.db.Model(service).Updates(map[string]interface{}{
		"name":         service.Name,
		"description":  service.Description,
		"price":        service.Price,
		"category":     service.Category,
		"image":        service.Image,
		"is_available": service.IsAvailable,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
