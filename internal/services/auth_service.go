package services

import (
	"fmt"
	"strings"
	"time"

	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/auth"
	"aegis_backend/internal/config"
	"aegis_backend/internal/email"
	"aegis_backend/internal/logger"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/services/dto"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(emailAddr string) error
	ResetPassword(token, newPassword string) error
	ChangePassword(userID, currentPassword, newPassword string) error
	CurrentUser(userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	cfg           *config.Config
	userRepo      repositories.UserRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
}

func NewAuthService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		cfg:           cfg,
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}
	if req.PasswordConfirm != "" && req.PasswordConfirm != req.Password {
		return nil, appErrors.ErrPasswordMismatch
	}

	user := &models.User{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(req.Email),
		Role:  models.UserRoleUser,
	}
	if err := s.setPassword(user, req.Password); err != nil {
		return nil, appErrors.InternalError(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	token, err := s.tokens.GenerateToken(user.ID, string(user.Role), s.cfg.TokenTTL(false))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Login - аутентификация пользователя с учетом блокировки после
// неудачных попыток. "Нет такого пользователя" и "неверный пароль"
// для клиента неразличимы.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	now := time.Now()

	// Активная блокировка: отказ без проверки пароля и без изменения счетчика
	if user.IsLocked(now) {
		return nil, appErrors.ErrAccountLocked
	}

	// Истекшая блокировка снимается лениво, при первой же попытке входа
	dirty := false
	if user.LockedUntil != nil {
		user.LockedUntil = nil
		user.FailedLoginCount = 0
		dirty = true
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.recordFailedLogin(user, now)
		return nil, appErrors.ErrInvalidCredentials
	}

	// Успешный вход сбрасывает счетчик неудачных попыток
	if user.FailedLoginCount != 0 {
		user.FailedLoginCount = 0
		dirty = true
	}
	if dirty {
		if err := s.userRepo.Update(user); err != nil {
			logger.Warn("failed to reset login counter", "user_id", user.ID, "error", err)
		}
	}

	token, err := s.tokens.GenerateToken(user.ID, string(user.Role), s.cfg.TokenTTL(req.RememberMe))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// ForgotPassword - запрос сброса пароля. Неизвестный email здесь
// отдается как 404: форма восстановления и так требует существующего
// аккаунта, в отличие от логина.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	resetToken, err := auth.GenerateResetToken()
	if err != nil {
		return appErrors.InternalError(err)
	}

	// Новый токен перезаписывает любой предыдущий
	exp := time.Now().Add(s.cfg.ResetTokenLifetime())
	user.ResetToken = resetToken
	user.ResetTokenExp = &exp

	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)

	return nil
}

// ResetPassword - смена пароля по reset token. Токен одноразовый:
// поля очищаются той же записью, что устанавливает новый пароль.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return appErrors.ErrResetTokenInvalid
	}

	if user.ResetToken != token || user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return appErrors.ErrResetTokenInvalid
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return appErrors.ErrWeakPassword
	}

	if err := s.setPassword(user, newPassword); err != nil {
		return appErrors.InternalError(err)
	}
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}

	return nil
}

// ChangePassword - смена пароля, когда пользователь знает текущий
func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return appErrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return appErrors.ErrWeakPassword
	}

	if err := s.setPassword(user, newPassword); err != nil {
		return appErrors.InternalError(err)
	}
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}

	return nil
}

// CurrentUser возвращает профиль аутентифицированного пользователя
func (s *AuthServiceImpl) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// setPassword хеширует пароль и отмечает момент смены.
// Метка сдвигается на секунду назад, чтобы токен, выданный тем же
// запросом, не считался выданным до смены пароля.
func (s *AuthServiceImpl) setPassword(user *models.User, plaintext string) error {
	hash, err := auth.HashPassword(plaintext)
	if err != nil {
		return err
	}
	changedAt := time.Now().Add(-time.Second)
	user.PasswordHash = hash
	user.PasswordChangedAt = &changedAt
	return nil
}

// recordFailedLogin увеличивает счетчик и при достижении порога ставит
// блокировку. Потерянная запись при гонке двух неудачных попыток
// допустима - нужна итоговая блокировка, а не точный счетчик.
func (s *AuthServiceImpl) recordFailedLogin(user *models.User, now time.Time) {
	user.FailedLoginCount++
	if user.FailedLoginCount >= s.cfg.Auth.LockoutThreshold {
		lockedUntil := now.Add(s.cfg.LockoutDuration())
		user.LockedUntil = &lockedUntil
	}

	if err := s.userRepo.Update(user); err != nil {
		logger.Warn("failed to record login failure", "user_id", user.ID, "error", err)
	}
}

// sendPasswordResetEmail отправляет письмо со ссылкой для сброса пароля
func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.Email.FrontendURL, token)
	go func() {
		if err := s.emailProvider.SendPasswordReset(to, resetURL); err != nil {
			logger.Error("failed to send password reset email", "error", err)
		}
	}()
}
