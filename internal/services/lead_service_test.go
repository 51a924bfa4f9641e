package services

import (
	"testing"

	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/config"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	contacts map[string]*models.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*models.Contact)}
}

func (r *fakeContactRepo) FindByID(id string) (*models.Contact, error) {
	if c, ok := r.contacts[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrLeadNotFound
}

func (r *fakeContactRepo) FindAll(limit, offset int) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range r.contacts {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeContactRepo) Create(contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	r.contacts[contact.ID] = contact
	return nil
}

func (r *fakeContactRepo) UpdateStatus(id string, status models.LeadStatus) error {
	c, ok := r.contacts[id]
	if !ok {
		return repositories.ErrLeadNotFound
	}
	c.Status = status
	return nil
}

type fakePartnerRepo struct {
	partners map[string]*models.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: make(map[string]*models.Partner)}
}

func (r *fakePartnerRepo) FindByID(id string) (*models.Partner, error) {
	if p, ok := r.partners[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrLeadNotFound
}

func (r *fakePartnerRepo) FindAll(limit, offset int) ([]models.Partner, error) {
	var out []models.Partner
	for _, p := range r.partners {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePartnerRepo) Create(partner *models.Partner) error {
	if partner.ID == "" {
		partner.ID = uuid.NewString()
	}
	r.partners[partner.ID] = partner
	return nil
}

func (r *fakePartnerRepo) UpdateStatus(id string, status models.LeadStatus) error {
	p, ok := r.partners[id]
	if !ok {
		return repositories.ErrLeadNotFound
	}
	p.Status = status
	return nil
}

type fakeCareerRepo struct {
	careers map[string]*models.Career
}

func newFakeCareerRepo() *fakeCareerRepo {
	return &fakeCareerRepo{careers: make(map[string]*models.Career)}
}

func (r *fakeCareerRepo) FindByID(id string) (*models.Career, error) {
	if c, ok := r.careers[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrLeadNotFound
}

func (r *fakeCareerRepo) FindAll(limit, offset int) ([]models.Career, error) {
	var out []models.Career
	for _, c := range r.careers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCareerRepo) Create(career *models.Career) error {
	if career.ID == "" {
		career.ID = uuid.NewString()
	}
	r.careers[career.ID] = career
	return nil
}

func (r *fakeCareerRepo) UpdateStatus(id string, status models.LeadStatus) error {
	c, ok := r.careers[id]
	if !ok {
		return repositories.ErrLeadNotFound
	}
	c.Status = status
	return nil
}

// newTestLeadService собирает сервис без почтового провайдера:
// уведомления в этих тестах не интересны
func newTestLeadService() LeadService {
	return NewLeadService(&config.Config{}, newFakeContactRepo(), newFakePartnerRepo(), newFakeCareerRepo(), nil)
}

func TestLeadGetContact_NotFound(t *testing.T) {
	svc := newTestLeadService()

	_, err := svc.GetContact(uuid.NewString())
	assert.ErrorIs(t, err, appErrors.ErrLeadNotFound)
}

func TestLeadGetPartner(t *testing.T) {
	svc := newTestLeadService()

	partner, err := svc.CreatePartner("user-1", &dto.CreatePartnerRequest{
		Name:               "Partner Person",
		Email:              "partner@example.com",
		Company:            "Acme Security",
		ServicesInterested: "audits",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, partner.Status)

	got, err := svc.GetPartner(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, partner.ID, got.ID)
	assert.Equal(t, "Acme Security", got.Company)

	_, err = svc.GetPartner(uuid.NewString())
	assert.ErrorIs(t, err, appErrors.ErrLeadNotFound)
}

func TestLeadGetCareer(t *testing.T) {
	svc := newTestLeadService()

	career, err := svc.CreateCareer("user-1", &dto.CreateCareerRequest{
		Name:     "Applicant",
		Email:    "applicant@example.com",
		Phone:    "+77001234567",
		Position: "Pentester",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, career.Status)

	got, err := svc.GetCareer(career.ID)
	require.NoError(t, err)
	assert.Equal(t, career.ID, got.ID)
	assert.Equal(t, "Pentester", got.Position)

	_, err = svc.GetCareer(uuid.NewString())
	assert.ErrorIs(t, err, appErrors.ErrLeadNotFound)
}
