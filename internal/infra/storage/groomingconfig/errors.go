package groomingconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация объекта не найдена
	ErrConfigNotFound = errors.New("groomingconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("groomingconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("groomingconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("groomingconfig.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации правил в JSON
	ErrEncode = errors.New("groomingconfig.repository: failed to encode rules")

	// ErrDecode возвращается при ошибке десериализации правил из JSON
	ErrDecode = errors.New("groomingconfig.repository: failed to decode rules")
)
