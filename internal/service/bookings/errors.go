package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCheckIn возвращается, когда бронирование нельзя отметить прибывшим
	ErrCannotCheckIn = errors.New("booking cannot be checked in")

	// ErrCannotCheckOut возвращается, когда бронирование нельзя отметить убывшим
	ErrCannotCheckOut = errors.New("booking cannot be checked out")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
