package groomingconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	configRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/groomingconfig"
	"github.com/PawCareDash/PCD-FacilityService/internal/service/groomingconfig/models"
	"github.com/PawCareDash/PCD-FacilityService/pkg/ptr"
)

type fakeRepo struct {
	config *domain.GroomingFacilityConfig
	err    error
	saved  *domain.GroomingFacilityConfig
}

func (f *fakeRepo) GetByFacility(_ context.Context, _ int64) (*domain.GroomingFacilityConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

func (f *fakeRepo) Upsert(_ context.Context, config *domain.GroomingFacilityConfig) (*domain.GroomingFacilityConfig, error) {
	f.saved = config
	saved := *config
	saved.ID = 1
	return &saved, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		Enabled: true,
		BookingRules: domain.BookingRules{
			LeadTime:         domain.LeadTimeRules{MinimumHours: 24, AllowTomorrow: true},
			GroomerSelection: domain.GroomerSelectionRules{Mode: domain.SelectionStealth},
			Deposit:          domain.DepositPolicy{Type: domain.DepositNone},
			ServiceCategories: []domain.ServiceCategory{
				{ID: "full-groom", Name: "Full Groom", Enabled: true},
			},
		},
		OperatingHours: domain.WeeklyHours{
			Monday: &domain.DayHours{Open: "08:00", Close: "18:00"},
		},
	}
}

func TestGetByFacility_MissingConfigReturnsDefaults(t *testing.T) {
	svc := NewService(&fakeRepo{err: configRepo.ErrConfigNotFound}, nopLogger{})

	resp, err := svc.GetByFacility(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.FacilityID)
	assert.False(t, resp.Enabled)
	assert.Equal(t, domain.DefaultLeadTimeHours, resp.BookingRules.LeadTime.MinimumHours)
	assert.Nil(t, resp.CreatedAt)
}

func TestUpdate_Valid(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 7, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(7), resp.FacilityID)
	assert.True(t, resp.Enabled)
	require.NotNil(t, repo.saved)
	assert.Equal(t, int64(7), repo.saved.FacilityID)
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpdateConfigRequest)
	}{
		{
			name: "lead time above maximum",
			mutate: func(r *models.UpdateConfigRequest) {
				r.BookingRules.LeadTime.MinimumHours = domain.MaxLeadTimeHours + 1
			},
		},
		{
			name: "negative lead time",
			mutate: func(r *models.UpdateConfigRequest) {
				r.BookingRules.LeadTime.MinimumHours = -1
			},
		},
		{
			name: "unknown selection mode",
			mutate: func(r *models.UpdateConfigRequest) {
				r.BookingRules.GroomerSelection.Mode = "roulette"
			},
		},
		{
			name: "fixed deposit without amount",
			mutate: func(r *models.UpdateConfigRequest) {
				r.BookingRules.Deposit = domain.DepositPolicy{Type: domain.DepositFixed}
			},
		},
		{
			name: "deposit amount above maximum",
			mutate: func(r *models.UpdateConfigRequest) {
				r.BookingRules.Deposit = domain.DepositPolicy{
					Type:   domain.DepositFixed,
					Amount: ptr.Ptr(domain.MaxDepositAmount + 1),
				}
			},
		},
		{
			name: "percentage deposit out of range",
			mutate: func(r *models.UpdateConfigRequest) {
				r.BookingRules.Deposit = domain.DepositPolicy{
					Type:       domain.DepositPercentage,
					Percentage: ptr.Ptr(101),
				}
			},
		},
		{
			name: "unknown deposit type",
			mutate: func(r *models.UpdateConfigRequest) {
				r.BookingRules.Deposit = domain.DepositPolicy{Type: "crypto"}
			},
		},
		{
			name: "category without name",
			mutate: func(r *models.UpdateConfigRequest) {
				r.BookingRules.ServiceCategories = []domain.ServiceCategory{{ID: "x"}}
			},
		},
		{
			name: "malformed open time",
			mutate: func(r *models.UpdateConfigRequest) {
				r.OperatingHours.Monday = &domain.DayHours{Open: "8:00", Close: "18:00"}
			},
		},
		{
			name: "close before open",
			mutate: func(r *models.UpdateConfigRequest) {
				r.OperatingHours.Monday = &domain.DayHours{Open: "18:00", Close: "08:00"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			svc := NewService(&fakeRepo{}, nopLogger{})
			_, err := svc.Update(context.Background(), 7, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
