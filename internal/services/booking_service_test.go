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

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) FindByID(id string) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		return b, nil
	}
	return nil, repositories.ErrBookingNotFound
}

func (r *fakeBookingRepo) FindByUserID(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindAll(limit, offset int) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return repositories.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		repo.services[s.ID] = s
	}
	return repo
}

func (r *fakeServiceRepo) FindByID(id string) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, repositories.ErrServiceNotFound
}

func (r *fakeServiceRepo) FindAvailable() ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.IsAvailable {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) FindAll() ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(service *models.Service) error {
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Update(service *models.Service) error {
	if _, ok := r.services[service.ID]; !ok {
		return repositories.ErrServiceNotFound
	}
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	if _, ok := r.services[id]; !ok {
		return repositories.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func testService() *models.Service {
	svc := &models.Service{
		Name:        "Security Audit",
		Description: "Full infrastructure audit",
		Price:       499,
		Category:    models.ServiceCategoryAudit,
		IsAvailable: true,
	}
	svc.ID = uuid.NewString()
	return svc
}

func TestBookingCreate_Success(t *testing.T) {
	service := testService()
	bookingRepo := newFakeBookingRepo()
	svc := NewBookingService(bookingRepo, newFakeServiceRepo(service))

	booking, err := svc.Create("user-1", &dto.CreateBookingRequest{
		ServiceID:   service.ID,
		BookingDate: time.Now().Add(48 * time.Hour),
		Notes:       "morning please",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	require.NotNil(t, booking.Service)
	assert.Equal(t, service.ID, booking.Service.ID)
}

func TestBookingCreate_UnknownService(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeServiceRepo())

	_, err := svc.Create("user-1", &dto.CreateBookingRequest{
		ServiceID:   uuid.NewString(),
		BookingDate: time.Now().Add(48 * time.Hour),
	})
	assert.ErrorIs(t, err, appErrors.ErrServiceNotFound)
}

func TestBookingGetForUser_Ownership(t *testing.T) {
	service := testService()
	bookingRepo := newFakeBookingRepo()
	svc := NewBookingService(bookingRepo, newFakeServiceRepo(service))

	booking, err := svc.Create("owner", &dto.CreateBookingRequest{
		ServiceID:   service.ID,
		BookingDate: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	// Владелец видит свое бронирование
	got, err := svc.GetForUser(booking.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)

	// Чужое бронирование недоступно
	_, err = svc.GetForUser(booking.ID, "intruder")
	assert.ErrorIs(t, err, appErrors.ErrNotOwner)

	_, err = svc.GetForUser(uuid.NewString(), "owner")
	assert.ErrorIs(t, err, appErrors.ErrBookingNotFound)
}

func TestBookingCancel(t *testing.T) {
	service := testService()
	bookingRepo := newFakeBookingRepo()
	svc := NewBookingService(bookingRepo, newFakeServiceRepo(service))

	booking, err := svc.Create("owner", &dto.CreateBookingRequest{
		ServiceID:   service.ID,
		BookingDate: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	// Чужой запрос не отменяет бронирование
	assert.ErrorIs(t, svc.Cancel(booking.ID, "intruder"), appErrors.ErrNotOwner)
	assert.Equal(t, models.BookingStatusPending, bookingRepo.bookings[booking.ID].Status)

	require.NoError(t, svc.Cancel(booking.ID, "owner"))
	assert.Equal(t, models.BookingStatusCancelled, bookingRepo.bookings[booking.ID].Status)
}

func TestBookingUpdateStatus(t *testing.T) {
	service := testService()
	bookingRepo := newFakeBookingRepo()
	svc := NewBookingService(bookingRepo, newFakeServiceRepo(service))

	booking, err := svc.Create("owner", &dto.CreateBookingRequest{
		ServiceID:   service.ID,
		BookingDate: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(booking.ID, models.BookingStatusConfirmed))
	assert.Equal(t, models.BookingStatusConfirmed, bookingRepo.bookings[booking.ID].Status)

	assert.ErrorIs(t, svc.UpdateStatus(uuid.NewString(), models.BookingStatusConfirmed), appErrors.ErrBookingNotFound)
}
