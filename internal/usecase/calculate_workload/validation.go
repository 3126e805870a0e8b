package calculate_workload

import (
	"fmt"
	"strings"
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// normalizeDate обрезает ISO datetime до календарной даты YYYY-MM-DD
// Часовые пояса не разбираются: вход обязан быть в локальной дате объекта
func normalizeDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

// parseDate разбирает нормализованную дату; ошибка означает мусорный вход,
// который выше по стеку деградирует в нулевые метрики, а не в отказ
func parseDate(date string) (time.Time, error) {
	return time.Parse(domain.DateFormat, date)
}

// parseTimeBlock разбирает строку "HH:MM-HH:MM" в доменный TimeBlock
// Единственная жёсткая проверка формата во всём расчете загрузки:
// блок обязан делиться ровно на две непустые части по дефису
func parseTimeBlock(block string) (domain.TimeBlock, error) {
	parts := strings.Split(block, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domain.TimeBlock{}, fmt.Errorf("%w: %q", ErrInvalidTimeBlock, block)
	}

	// Сами времена дальше не валидируются: мусорные значения деградируют
	// в пустые выборки за счёт лексического сравнения строк
	return domain.TimeBlock{
		Start: types.TimeString(parts[0]),
		End:   types.TimeString(parts[1]),
	}, nil
}

// sameDateString сравнивает календарную дату с её строковым представлением
func sameDateString(t time.Time, date string) bool {
	return t.Format(domain.DateFormat) == date
}
