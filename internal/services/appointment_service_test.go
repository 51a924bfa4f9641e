package services

import (
	"testing"
	"time"

	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	appointments map[string]*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*models.Appointment)}
}

func (r *fakeAppointmentRepo) FindByID(id string) (*models.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrAppointmentNotFound
}

func (r *fakeAppointmentRepo) FindByUserID(userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindAll(limit, offset int) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Create(appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus) error {
	a, ok := r.appointments[id]
	if !ok {
		return repositories.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func testAppointmentRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Name:            "Visitor",
		Email:           "visitor@example.com",
		Phone:           "+77001234567",
		Date:            time.Now().Add(72 * time.Hour),
		Time:            "14:00",
		ServiceTitle:    "Security Audit",
		ServiceDuration: "2h",
		ServicePrice:    "499",
	}
}

func TestAppointmentCreate(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	appointment, err := svc.Create("user-1", testAppointmentRequest())
	require.NoError(t, err)

	assert.Equal(t, "user-1", appointment.UserID)
	assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
	// Данные услуги копируются в запись на момент создания
	assert.Equal(t, "Security Audit", appointment.ServiceTitle)
}

func TestAppointmentGet(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	appointment, err := svc.Create("user-1", testAppointmentRequest())
	require.NoError(t, err)

	got, err := svc.Get(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, got.ID)
	assert.Equal(t, "visitor@example.com", got.Email)

	_, err = svc.Get(uuid.NewString())
	assert.ErrorIs(t, err, appErrors.ErrAppointmentNotFound)
}
