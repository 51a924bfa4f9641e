package repositories

import (
	"errors"

	"aegis_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentRepository interface {
	FindByID(id string) (*models.Appointment, error)
	FindByUserID(userID string) ([]models.Appointment, error)
	FindAll(limit, offset int) ([]models.Appointment, error)
	Create(appointment *models.Appointment) error
	UpdateStatus(id string, status models.AppointmentStatus) error
}

type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

func (r *AppointmentRepositoryImpl) FindByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepositoryImpl) FindByUserID(userID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepositoryImpl) FindAll(limit, offset int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Order("date DESC").Limit(limit).Offset(offset).Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepositoryImpl) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *AppointmentRepositoryImpl) UpdateStatus(id string, status models.AppointmentStatus) error {
	result := r.db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
