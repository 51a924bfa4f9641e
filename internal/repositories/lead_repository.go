package repositories

import (
	"errors"

	"aegis_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLeadNotFound = errors.New("lead not found")

// Лид-формы устроены одинаково: создание с сайта, просмотр и смена
// статуса администратором. Репозитории для трех форм живут в одном файле.

type ContactRepository interface {
	FindByID(id string) (*models.Contact, error)
	FindAll(limit, offset int) ([]models.Contact, error)
	Create(contact *models.Contact) error
	UpdateStatus(id string, status models.LeadStatus) error
}

type PartnerRepository interface {
	FindByID(id string) (*models.Partner, error)
	FindAll(limit, offset int) ([]models.Partner, error)
	Create(partner *models.Partner) error
	UpdateStatus(id string, status models.LeadStatus) error
}

type CareerRepository interface {
	FindByID(id string) (*models.Career, error)
	FindAll(limit, offset int) ([]models.Career, error)
	Create(career *models.Career) error
	UpdateStatus(id string, status models.LeadStatus) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) FindByID(id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) FindAll(limit, offset int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepositoryImpl) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepositoryImpl) UpdateStatus(id string, status models.LeadStatus) error {
	return updateLeadStatus(r.db, &models.Contact{}, id, status)
}

type PartnerRepositoryImpl struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &PartnerRepositoryImpl{db: db}
}

func (r *PartnerRepositoryImpl) FindByID(id string) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.First(&partner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *PartnerRepositoryImpl) FindAll(limit, offset int) ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&partners).Error
	return partners, err
}

func (r *PartnerRepositoryImpl) Create(partner *models.Partner) error {
	return r.db.Create(partner).Error
}

func (r *PartnerRepositoryImpl) UpdateStatus(id string, status models.LeadStatus) error {
	return updateLeadStatus(r.db, &models.Partner{}, id, status)
}

type CareerRepositoryImpl struct {
	db *gorm.DB
}

func NewCareerRepository(db *gorm.DB) CareerRepository {
	return &CareerRepositoryImpl{db: db}
}

func (r *CareerRepositoryImpl) FindByID(id string) (*models.Career, error) {
	var career models.Career
	err := r.db.First(&career, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &career, nil
}

func (r *CareerRepositoryImpl) FindAll(limit, offset int) ([]models.Career, error) {
	var careers []models.Career
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&careers).Error
	return careers, err
}

func (r *CareerRepositoryImpl) Create(career *models.Career) error {
	return r.db.Create(career).Error
}

func (r *CareerRepositoryImpl) UpdateStatus(id string, status models.LeadStatus) error {
	return updateLeadStatus(r.db, &models.Career{}, id, status)
}

func updateLeadStatus(db *gorm.DB, model interface{}, id string, status models.LeadStatus) error {
	result := db.Model(model).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeadNotFound
	}
	return nil
}
