package validate_prebooking

import (
	"fmt"
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/integrations/petservice"
	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// computeEarliestDate вычисляет самый ранний момент, на который можно
// забронировать груминг. Порядок ограничений важен и обязан сохраняться:
// сначала lead time, затем запрет same-day, затем запрет tomorrow.
// Запреты комбинируются: оба флага false сдвигают пол до послезавтра
// независимо от minimumHours.
func computeEarliestDate(now time.Time, rules domain.LeadTimeRules) time.Time {
	earliest := now.Add(time.Duration(rules.MinimumHours) * time.Hour)

	if !rules.AllowSameDay {
		tomorrow := startOfDay(now).AddDate(0, 0, 1)
		if earliest.Before(tomorrow) {
			earliest = tomorrow
		}
	}

	if !rules.AllowTomorrow {
		dayAfterTomorrow := startOfDay(now).AddDate(0, 0, 2)
		if earliest.Before(dayAfterTomorrow) {
			earliest = dayAfterTomorrow
		}
	}

	return earliest
}

// startOfDay возвращает локальную полночь даты t
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// buildSelectionOptions раскрывает режим выбора грумера в клиентские флаги.
// Таблица фиксирована: canSelectGroomer - optional|full-choice,
// canSelectTier - tier-only|optional, showGroomerNames - только full-choice.
func buildSelectionOptions(rules domain.GroomerSelectionRules) domain.GroomerSelectionOptions {
	return domain.GroomerSelectionOptions{
		CanSelectGroomer: rules.Mode == domain.SelectionOptional || rules.Mode == domain.SelectionFullChoice,
		CanSelectTier:    rules.Mode == domain.SelectionTierOnly || rules.Mode == domain.SelectionOptional,
		ShowGroomerNames: rules.Mode == domain.SelectionFullChoice,
		Tiers:            rules.Tiers,
	}
}

// buildDepositInfo собирает клиентский блок о депозите
func buildDepositInfo(policy domain.DepositPolicy) domain.DepositInfo {
	return domain.DepositInfo{
		Required:   policy.Type != domain.DepositNone,
		Type:       policy.Type,
		Amount:     policy.Amount,
		Percentage: policy.Percentage,
		Refundable: policy.Refundable,
		Message:    depositMessage(policy),
	}
}

// depositMessage формирует текст о депозите: ровно три шаблона плюс пустая
// строка для type=none
func depositMessage(policy domain.DepositPolicy) string {
	switch policy.Type {
	case domain.DepositNone:
		return ""
	case domain.DepositFixed:
		if policy.Amount != nil {
			return fmt.Sprintf("A deposit of $%.2f is required to secure your appointment.", *policy.Amount)
		}
	case domain.DepositPercentage:
		if policy.Percentage != nil {
			return fmt.Sprintf("A deposit of %d%% of the service price is required to secure your appointment.", *policy.Percentage)
		}
	}
	return "A deposit is required to secure your appointment."
}

// enabledCategories отбирает категории с enabled=true.
// Флаги hiddenWhenFullyBooked/fullyBookedWeeksThreshold здесь сознательно
// не учитываются: проверка занятости календаря по категориям не выполняется.
func enabledCategories(categories []domain.ServiceCategory) []domain.ServiceCategory {
	result := make([]domain.ServiceCategory, 0, len(categories))
	for _, c := range categories {
		if c.Enabled {
			result = append(result, c)
		}
	}
	return result
}

// isWithinOperatingHours проверяет, что момент date попадает в часы работы
// груминга для своего дня недели. Сравнение включительное по обеим границам;
// отсутствие записи на день означает "закрыто".
func isWithinOperatingHours(date time.Time, hours domain.WeeklyHours) bool {
	day := hours.ForWeekday(date.Weekday())
	if day == nil {
		return false
	}

	current := types.NewTimeString(date)
	return !current.IsBefore(day.Open) && !current.IsAfter(day.Close)
}

// vaccinationWarnings сравнивает требуемые прививки с записями питомца.
// Возвращает советующие предупреждения; бронирование они не блокируют.
func vaccinationWarnings(gate domain.VaccinationGate, pet *petservice.Pet, today string) []string {
	warnings := make([]string, 0)

	for _, required := range gate.RequiredVaccines {
		if !hasValidVaccination(pet, required, today) {
			warnings = append(warnings, fmt.Sprintf(msgVaccinationMissing, required))
		}
	}

	return warnings
}

func hasValidVaccination(pet *petservice.Pet, name string, today string) bool {
	for _, v := range pet.Vaccinations {
		if v.Name != name {
			continue
		}
		// Пустой expires_at означает бессрочную прививку
		if v.ExpiresAt == "" || v.ExpiresAt >= today {
			return true
		}
	}
	return false
}
