package validate_prebooking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/groomingconfig"
	"github.com/PawCareDash/PCD-FacilityService/internal/integrations/petservice"
)

// UseCase use case предварительной валидации бронирования груминга
type UseCase struct {
	configRepo   GroomingConfigRepository
	petService   PetServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo GroomingConfigRepository,
	petService PetServiceClient,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:   configRepo,
		petService:   petService,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute вычисляет, доступен ли груминг на объекте и на каких условиях.
// Оценка строится только по статической конфигурации: занятость реального
// календаря здесь не проверяется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.GroomingPreBookingValidation, error) {
	config, err := uc.getConfig(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}

	// Выключенный груминг: короткий ответ, остальные поля не вычисляются
	if !config.Enabled {
		uc.logger.Info("ValidatePreBooking: grooming disabled for facility=%d", req.FacilityID)
		return &domain.GroomingPreBookingValidation{
			IsAvailable:           false,
			EarliestAvailableDate: nil,
			AvailableCategories:   []domain.ServiceCategory{},
			GroomerSelectionOptions: domain.GroomerSelectionOptions{
				CanSelectGroomer: false,
				CanSelectTier:    false,
				ShowGroomerNames: false,
			},
			DepositInfo: domain.DepositInfo{
				Required: false,
				Type:     domain.DepositNone,
				Message:  "",
			},
			ValidationErrors:   []string{msgGroomingDisabled},
			ValidationWarnings: []string{},
		}, nil
	}

	now := uc.timeProvider.Now()
	earliest := computeEarliestDate(now, config.BookingRules.LeadTime)

	validationErrors := make([]string, 0)
	validationWarnings := make([]string, 0)

	// Слишком ранняя желаемая дата дает советующую ошибку,
	// но не меняет isAvailable
	if req.RequestedDate != nil && req.RequestedDate.Before(earliest) {
		validationErrors = append(validationErrors, msgRequestedDateTooSoon)
	}

	if config.BookingRules.Vaccination.Required && req.PetID != nil {
		validationWarnings = append(validationWarnings, uc.checkVaccinations(ctx, config, *req.PetID, now)...)
	}

	result := &domain.GroomingPreBookingValidation{
		IsAvailable:             true,
		EarliestAvailableDate:   &earliest,
		AvailableCategories:     enabledCategories(config.BookingRules.ServiceCategories),
		GroomerSelectionOptions: buildSelectionOptions(config.BookingRules.GroomerSelection),
		DepositInfo:             buildDepositInfo(config.BookingRules.Deposit),
		ValidationErrors:        validationErrors,
		ValidationWarnings:      validationWarnings,
	}

	uc.logger.Info("ValidatePreBooking: facility=%d earliest=%s categories=%d errors=%d warnings=%d",
		req.FacilityID, earliest.Format(time.RFC3339), len(result.AvailableCategories),
		len(result.ValidationErrors), len(result.ValidationWarnings))

	return result, nil
}

// ExecuteNextSlot ищет ближайший момент внутри часов работы груминга.
// Ограниченный линейный поиск: первый кандидат - earliestAvailableDate,
// затем каждый следующий день в 09:00, максимум 14 попыток. Ничего не
// найдено - возвращается nil без ошибки.
func (uc *UseCase) ExecuteNextSlot(ctx context.Context, req *NextSlotRequest) (*time.Time, error) {
	validation, err := uc.Execute(ctx, &Request{FacilityID: req.FacilityID})
	if err != nil {
		return nil, err
	}
	if !validation.IsAvailable || validation.EarliestAvailableDate == nil {
		return nil, nil
	}

	config, err := uc.getConfig(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}

	candidate := *validation.EarliestAvailableDate
	for attempt := 0; attempt < domain.MaxNextSlotAttempts; attempt++ {
		if isWithinOperatingHours(candidate, config.OperatingHours) {
			uc.logger.Info("NextSlot: facility=%d slot=%s found on attempt %d",
				req.FacilityID, candidate.Format(time.RFC3339), attempt+1)
			return &candidate, nil
		}

		// Следующие дни пробуем на стандартное утреннее время
		next := startOfDay(candidate).AddDate(0, 0, 1)
		candidate = time.Date(next.Year(), next.Month(), next.Day(), 9, 0, 0, 0, next.Location())
	}

	uc.logger.Info("NextSlot: facility=%d no slot within %d days", req.FacilityID, domain.MaxNextSlotAttempts)
	return nil, nil
}

// getConfig читает конфигурацию объекта; отсутствие конфигурации не является
// ошибкой - подставляются значения по умолчанию (груминг выключен)
func (uc *UseCase) getConfig(ctx context.Context, facilityID int64) (*domain.GroomingFacilityConfig, error) {
	config, err := uc.configRepo.GetByFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, groomingconfig.ErrConfigNotFound) {
			return domain.DefaultGroomingConfig(facilityID), nil
		}
		uc.logger.Error("ValidatePreBooking: failed to get config for facility=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: failed to get grooming config: %v", ErrInternal, err)
	}
	return config, nil
}

// checkVaccinations проверяет прививки питомца через PetService.
// Недоступность сервиса или отсутствие питомца деградируют в общее
// предупреждение, бронирование не блокируется.
func (uc *UseCase) checkVaccinations(ctx context.Context, config *domain.GroomingFacilityConfig, petID int64, now time.Time) []string {
	pet, err := uc.petService.GetPetWithGracefulDegradation(ctx, petID)
	if err != nil {
		if errors.Is(err, petservice.ErrPetNotFound) || errors.Is(err, petservice.ErrServiceDegraded) {
			return []string{msgVaccinationUnverified}
		}
		uc.logger.Error("ValidatePreBooking: vaccination check failed for pet=%d: %v", petID, err)
		return []string{msgVaccinationUnverified}
	}

	return vaccinationWarnings(config.BookingRules.Vaccination, pet, now.Format(domain.DateFormat))
}
