package service

import "errors"

// Сентинельные ошибки сервисного слоя. Хэндлеры сопоставляют их с
// HTTP-статусами, всё остальное считается внутренней ошибкой.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrEmailTaken     = errors.New("email already registered")
	ErrStorage        = errors.New("storage failure")
)
