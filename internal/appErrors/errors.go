package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails возвращает копию ошибки с деталями
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithError возвращает копию ошибки с обернутой причиной
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация.
	// Все отказы access guard отдают клиенту один и тот же generic текст,
	// различаются только внутренними кодами для диагностики.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Incorrect email or password", http.StatusUnauthorized)
	ErrAccountLocked      = New(CodeAccountLocked, "Account temporarily locked due to too many failed login attempts", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "You are not logged in. Please log in to get access", http.StatusUnauthorized)
	ErrSessionExpired     = New(CodeTokenExpired, "Your session has expired. Please log in again", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid token. Please log in again", http.StatusUnauthorized)
	ErrTokenUserGone      = New(CodeUserNotFound, "The user belonging to this token no longer exists", http.StatusUnauthorized)
	ErrPasswordChanged    = New(CodePasswordChanged, "Password was recently changed. Please log in again", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "You do not have permission to perform this action", http.StatusForbidden)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "User already exists with this email", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrPasswordMismatch   = New(CodePasswordMismatch, "Passwords do not match", http.StatusBadRequest)
	ErrResetTokenInvalid  = New(CodeResetTokenInvalid, "Reset token is invalid or has expired", http.StatusBadRequest)

	// Ресурсы
	ErrServiceNotFound     = New(CodeServiceNotFound, "Service not found", http.StatusNotFound)
	ErrBookingNotFound     = New(CodeBookingNotFound, "Booking not found", http.StatusNotFound)
	ErrAppointmentNotFound = New(CodeAppointmentNotFound, "Appointment not found", http.StatusNotFound)
	ErrLeadNotFound        = New(CodeLeadNotFound, "Submission not found", http.StatusNotFound)
	ErrNotOwner            = New(CodeNotOwner, "Not authorized to access this resource", http.StatusForbidden)
	ErrInvalidStatus       = New(CodeInvalidStatus, "Invalid status value", http.StatusBadRequest)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeUserNotFound, message, http.StatusNotFound)
}
