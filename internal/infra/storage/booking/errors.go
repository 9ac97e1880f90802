package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotConflict возвращается, когда вставка нарушила ограничение
	// непересечения слотов на уровне БД
	ErrSlotConflict = errors.New("booking.repository: slot conflict")

	// ErrConcurrentUpdate возвращается, когда CAS-обновление статуса не
	// применилось: статус уже изменён другим писателем
	ErrConcurrentUpdate = errors.New("booking.repository: concurrent status update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
