package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeAccountLocked      ErrorCode = "ACCOUNT_LOCKED"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodePasswordChanged    ErrorCode = "PASSWORD_CHANGED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"

	// Ресурсы
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeServiceNotFound     ErrorCode = "SERVICE_NOT_FOUND"
	CodeBookingNotFound     ErrorCode = "BOOKING_NOT_FOUND"
	CodeAppointmentNotFound ErrorCode = "APPOINTMENT_NOT_FOUND"
	CodeLeadNotFound        ErrorCode = "LEAD_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeResetTokenInvalid  ErrorCode = "RESET_TOKEN_INVALID"
	CodeNotOwner           ErrorCode = "NOT_OWNER"
	CodeInvalidStatus      ErrorCode = "INVALID_STATUS"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
