package calculate_workload

import "errors"

var (
	// ErrInvalidTimeBlock возвращается, когда строка временного блока
	// не имеет формата "HH:MM-HH:MM" (ровно один дефис, две непустые части)
	ErrInvalidTimeBlock = errors.New("invalid time block format, expected HH:MM-HH:MM")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
