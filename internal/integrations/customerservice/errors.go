package customerservice

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда профиль клиента не найден
	ErrCustomerNotFound = errors.New("customer profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("customerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("customerservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что CustomerService недоступен и бронирование создается
	// без денормализованных данных клиента
	ErrServiceDegraded = errors.New("customerservice unavailable: graceful degradation applied")
)
