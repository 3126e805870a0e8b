package groomingconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	configRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/groomingconfig"
	"github.com/PawCareDash/PCD-FacilityService/internal/service/groomingconfig/models"
)

// Service сервис для работы с конфигурацией груминга объектов
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации груминга
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetByFacility получает конфигурацию груминга объекта
// Отсутствие сохранённой конфигурации не является ошибкой: возвращается
// конфигурация по умолчанию (груминг выключен)
func (s *Service) GetByFacility(ctx context.Context, facilityID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetByFacility: fetching grooming config for facility=%d", facilityID)

	config, err := s.configRepo.GetByFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetByFacility: no config for facility=%d, returning defaults", facilityID)
			return models.FromDomainConfig(domain.DefaultGroomingConfig(facilityID)), nil
		}
		s.logger.Error("GetByFacility: repository error for facility=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: GetByFacility - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// Update создает или полностью заменяет конфигурацию груминга объекта
func (s *Service) Update(ctx context.Context, facilityID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating grooming config for facility=%d, enabled=%t", facilityID, req.Enabled)

	if err := s.validateRules(&req.BookingRules, &req.OperatingHours); err != nil {
		s.logger.Warn("Update: validation failed for facility=%d: %v", facilityID, err)
		return nil, err
	}

	config, err := s.configRepo.Upsert(ctx, req.ToDomainConfig(facilityID))
	if err != nil {
		s.logger.Error("Update: repository error for facility=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated grooming config id=%d for facility=%d", config.ID, facilityID)
	return models.FromDomainConfig(config), nil
}

// validateRules проверяет бизнес-правила конфигурации перед сохранением
func (s *Service) validateRules(rules *domain.BookingRules, hours *domain.WeeklyHours) error {
	if rules.LeadTime.MinimumHours < domain.MinLeadTimeHours || rules.LeadTime.MinimumHours > domain.MaxLeadTimeHours {
		return fmt.Errorf("%w: lead time must be between %d and %d hours",
			ErrInvalidInput, domain.MinLeadTimeHours, domain.MaxLeadTimeHours)
	}

	switch rules.GroomerSelection.Mode {
	case domain.SelectionStealth, domain.SelectionOptional, domain.SelectionTierOnly, domain.SelectionFullChoice:
	default:
		return fmt.Errorf("%w: unknown groomer selection mode %q", ErrInvalidInput, rules.GroomerSelection.Mode)
	}

	if err := s.validateDeposit(&rules.Deposit); err != nil {
		return err
	}

	if len(rules.ServiceCategories) > domain.MaxServiceCategories {
		return fmt.Errorf("%w: too many service categories (max %d)", ErrInvalidInput, domain.MaxServiceCategories)
	}
	for _, c := range rules.ServiceCategories {
		if c.ID == "" || c.Name == "" {
			return fmt.Errorf("%w: service category requires id and name", ErrInvalidInput)
		}
	}

	if len(rules.Vaccination.RequiredVaccines) > domain.MaxRequiredVaccines {
		return fmt.Errorf("%w: too many required vaccines (max %d)", ErrInvalidInput, domain.MaxRequiredVaccines)
	}

	return s.validateHours(hours)
}

func (s *Service) validateDeposit(deposit *domain.DepositPolicy) error {
	switch deposit.Type {
	case domain.DepositNone:
		return nil
	case domain.DepositFixed:
		if deposit.Amount == nil {
			return fmt.Errorf("%w: fixed deposit requires an amount", ErrInvalidInput)
		}
		if *deposit.Amount < domain.MinDepositAmount || *deposit.Amount > domain.MaxDepositAmount {
			return fmt.Errorf("%w: deposit amount must be between %.2f and %.2f",
				ErrInvalidInput, domain.MinDepositAmount, domain.MaxDepositAmount)
		}
	case domain.DepositPercentage:
		if deposit.Percentage == nil {
			return fmt.Errorf("%w: percentage deposit requires a percentage", ErrInvalidInput)
		}
		if *deposit.Percentage < domain.MinDepositPercentage || *deposit.Percentage > domain.MaxDepositPercentage {
			return fmt.Errorf("%w: deposit percentage must be between %d and %d",
				ErrInvalidInput, domain.MinDepositPercentage, domain.MaxDepositPercentage)
		}
	default:
		return fmt.Errorf("%w: unknown deposit type %q", ErrInvalidInput, deposit.Type)
	}
	return nil
}

func (s *Service) validateHours(hours *domain.WeeklyHours) error {
	days := []*domain.DayHours{
		hours.Sunday, hours.Monday, hours.Tuesday, hours.Wednesday,
		hours.Thursday, hours.Friday, hours.Saturday,
	}
	for _, day := range days {
		if day == nil {
			continue
		}
		if err := day.Open.Validate(); err != nil {
			return fmt.Errorf("%w: invalid open time %q", ErrInvalidInput, day.Open)
		}
		if err := day.Close.Validate(); err != nil {
			return fmt.Errorf("%w: invalid close time %q", ErrInvalidInput, day.Close)
		}
		if day.Close.IsBefore(day.Open) {
			return fmt.Errorf("%w: close time %q is before open time %q", ErrInvalidInput, day.Close, day.Open)
		}
	}
	return nil
}
