package validate_prebooking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/groomingconfig"
	"github.com/PawCareDash/PCD-FacilityService/internal/integrations/petservice"
	"github.com/PawCareDash/PCD-FacilityService/pkg/ptr"
)

type fakeConfigRepo struct {
	config *domain.GroomingFacilityConfig
	err    error
}

func (f *fakeConfigRepo) GetByFacility(_ context.Context, _ int64) (*domain.GroomingFacilityConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

type fakePetClient struct {
	pet *petservice.Pet
	err error
}

func (f *fakePetClient) GetPetWithGracefulDegradation(_ context.Context, _ int64) (*petservice.Pet, error) {
	return f.pet, f.err
}

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Воскресенье, 10:30 утра
var testNow = time.Date(2024, 3, 10, 10, 30, 0, 0, time.UTC)

func enabledConfig() *domain.GroomingFacilityConfig {
	return &domain.GroomingFacilityConfig{
		ID:         1,
		FacilityID: 7,
		Enabled:    true,
		BookingRules: domain.BookingRules{
			LeadTime: domain.LeadTimeRules{MinimumHours: 24, AllowSameDay: false, AllowTomorrow: true},
			GroomerSelection: domain.GroomerSelectionRules{
				Mode: domain.SelectionOptional,
			},
			Deposit: domain.DepositPolicy{
				Type:   domain.DepositFixed,
				Amount: ptr.Ptr(25.0),
			},
			ServiceCategories: []domain.ServiceCategory{
				{ID: "full-groom", Name: "Full Groom", Enabled: true},
				{ID: "bath-only", Name: "Bath Only", Enabled: false},
			},
			Vaccination: domain.VaccinationGate{
				Required:         true,
				RequiredVaccines: []string{"rabies"},
			},
		},
		OperatingHours: domain.WeeklyHours{
			Sunday:    &domain.DayHours{Open: "10:00", Close: "16:00"},
			Monday:    &domain.DayHours{Open: "08:00", Close: "18:00"},
			Tuesday:   &domain.DayHours{Open: "08:00", Close: "18:00"},
			Wednesday: &domain.DayHours{Open: "08:00", Close: "18:00"},
			Thursday:  &domain.DayHours{Open: "08:00", Close: "18:00"},
			Friday:    &domain.DayHours{Open: "08:00", Close: "18:00"},
			Saturday:  &domain.DayHours{Open: "09:00", Close: "14:00"},
		},
	}
}

func newTestUseCase(repo *fakeConfigRepo, pets *fakePetClient) *UseCase {
	if pets == nil {
		pets = &fakePetClient{}
	}
	return NewUseCase(repo, pets, fakeClock{now: testNow}, nopLogger{})
}

func TestExecute_DisabledConfig(t *testing.T) {
	config := enabledConfig()
	config.Enabled = false

	uc := newTestUseCase(&fakeConfigRepo{config: config}, nil)

	result, err := uc.Execute(context.Background(), &Request{FacilityID: 7})
	require.NoError(t, err)

	assert.False(t, result.IsAvailable)
	assert.Nil(t, result.EarliestAvailableDate)
	assert.Empty(t, result.AvailableCategories)
	assert.False(t, result.GroomerSelectionOptions.CanSelectGroomer)
	assert.False(t, result.GroomerSelectionOptions.CanSelectTier)
	assert.False(t, result.DepositInfo.Required)
	assert.Equal(t, domain.DepositNone, result.DepositInfo.Type)
	assert.Equal(t, "", result.DepositInfo.Message)
	assert.Len(t, result.ValidationErrors, 1)
}

func TestExecute_MissingConfigBehavesAsDisabled(t *testing.T) {
	uc := newTestUseCase(&fakeConfigRepo{err: groomingconfig.ErrConfigNotFound}, nil)

	result, err := uc.Execute(context.Background(), &Request{FacilityID: 7})
	require.NoError(t, err)
	assert.False(t, result.IsAvailable)
}

func TestExecute_EnabledConfig(t *testing.T) {
	uc := newTestUseCase(&fakeConfigRepo{config: enabledConfig()}, nil)

	result, err := uc.Execute(context.Background(), &Request{FacilityID: 7})
	require.NoError(t, err)

	assert.True(t, result.IsAvailable)
	require.NotNil(t, result.EarliestAvailableDate)
	// lead 24h от 2024-03-10 10:30
	assert.True(t, result.EarliestAvailableDate.Equal(time.Date(2024, 3, 11, 10, 30, 0, 0, time.UTC)))

	require.Len(t, result.AvailableCategories, 1)
	assert.Equal(t, "full-groom", result.AvailableCategories[0].ID)

	assert.True(t, result.GroomerSelectionOptions.CanSelectGroomer)
	assert.True(t, result.GroomerSelectionOptions.CanSelectTier)
	assert.False(t, result.GroomerSelectionOptions.ShowGroomerNames)

	assert.True(t, result.DepositInfo.Required)
	assert.Contains(t, result.DepositInfo.Message, "$25.00")

	assert.Empty(t, result.ValidationErrors)
	assert.Empty(t, result.ValidationWarnings)
}

func TestExecute_RequestedDateTooSoonIsAdvisoryOnly(t *testing.T) {
	uc := newTestUseCase(&fakeConfigRepo{config: enabledConfig()}, nil)

	requested := testNow.Add(2 * time.Hour)
	result, err := uc.Execute(context.Background(), &Request{FacilityID: 7, RequestedDate: &requested})
	require.NoError(t, err)

	// Ошибка советующая: isAvailable остается true
	assert.True(t, result.IsAvailable)
	assert.Len(t, result.ValidationErrors, 1)
}

func TestExecute_VaccinationWarning(t *testing.T) {
	pets := &fakePetClient{pet: &petservice.Pet{
		ID:           3,
		Vaccinations: []petservice.Vaccination{},
	}}
	uc := newTestUseCase(&fakeConfigRepo{config: enabledConfig()}, pets)

	result, err := uc.Execute(context.Background(), &Request{FacilityID: 7, PetID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	assert.True(t, result.IsAvailable)
	require.Len(t, result.ValidationWarnings, 1)
	assert.Contains(t, result.ValidationWarnings[0], "rabies")
}

func TestExecute_VaccinationCheckDegradesGracefully(t *testing.T) {
	pets := &fakePetClient{err: petservice.ErrServiceDegraded}
	uc := newTestUseCase(&fakeConfigRepo{config: enabledConfig()}, pets)

	result, err := uc.Execute(context.Background(), &Request{FacilityID: 7, PetID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	assert.True(t, result.IsAvailable)
	require.Len(t, result.ValidationWarnings, 1)
	assert.Equal(t, msgVaccinationUnverified, result.ValidationWarnings[0])
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeConfigRepo{err: errors.New("connection refused")}, nil)

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 7})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteNextSlot_FindsFirstOpenDay(t *testing.T) {
	uc := newTestUseCase(&fakeConfigRepo{config: enabledConfig()}, nil)

	slot, err := uc.ExecuteNextSlot(context.Background(), &NextSlotRequest{FacilityID: 7})
	require.NoError(t, err)
	require.NotNil(t, slot)

	// earliest = понедельник 10:30, понедельник открыт 08:00-18:00
	assert.True(t, slot.Equal(time.Date(2024, 3, 11, 10, 30, 0, 0, time.UTC)))
}

func TestExecuteNextSlot_WalksPastClosedDays(t *testing.T) {
	config := enabledConfig()
	// Понедельник и вторник закрыты: первый кандидат и следующий день мимо
	config.OperatingHours.Monday = nil
	config.OperatingHours.Tuesday = nil

	uc := newTestUseCase(&fakeConfigRepo{config: config}, nil)

	slot, err := uc.ExecuteNextSlot(context.Background(), &NextSlotRequest{FacilityID: 7})
	require.NoError(t, err)
	require.NotNil(t, slot)

	// Среда, стандартное утреннее время
	assert.True(t, slot.Equal(time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)))
}

func TestExecuteNextSlot_NeverOpenReturnsNil(t *testing.T) {
	closed := &domain.DayHours{Open: "00:00", Close: "00:00"}
	config := enabledConfig()
	config.OperatingHours = domain.WeeklyHours{
		Sunday: closed, Monday: closed, Tuesday: closed, Wednesday: closed,
		Thursday: closed, Friday: closed, Saturday: closed,
	}

	uc := newTestUseCase(&fakeConfigRepo{config: config}, nil)

	slot, err := uc.ExecuteNextSlot(context.Background(), &NextSlotRequest{FacilityID: 7})
	require.NoError(t, err)
	assert.Nil(t, slot)
}

func TestExecuteNextSlot_DisabledGroomingReturnsNil(t *testing.T) {
	config := enabledConfig()
	config.Enabled = false

	uc := newTestUseCase(&fakeConfigRepo{config: config}, nil)

	slot, err := uc.ExecuteNextSlot(context.Background(), &NextSlotRequest{FacilityID: 7})
	require.NoError(t, err)
	assert.Nil(t, slot)
}
