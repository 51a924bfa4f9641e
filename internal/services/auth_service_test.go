package services

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/auth"
	"aegis_backend/internal/config"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo - потокобезопасное in-memory хранилище пользователей.
// Хранит копии, как это делала бы настоящая БД: изменения видны только
// после Update.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken != "" && u.ResetToken == token {
			copied := u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// stored возвращает текущее сохраненное состояние пользователя
func (r *fakeUserRepo) stored(t *testing.T, id string) models.User {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	require.True(t, ok, "user %s not found in repo", id)
	return u
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 24
	cfg.JWT.RememberTTL = 30 * 24
	cfg.Auth.LockoutThreshold = 5
	cfg.Auth.LockoutMinutes = 15
	cfg.Auth.ResetTokenTTL = 10
	cfg.Email.FrontendURL = "http://localhost:5173"
	return cfg
}

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo, *config.Config) {
	t.Helper()
	cfg := newTestConfig()
	repo := newFakeUserRepo()
	tokens := auth.NewTokenManager(cfg.JWT.Secret)
	return NewAuthService(cfg, repo, tokens, nil), repo, cfg
}

// seedUser заводит пользователя с известным паролем напрямую в репозитории
func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestRegister_Success(t *testing.T) {
	svc, repo, cfg := newTestAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "New User",
		Email:    "New@Example.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.Token)

	// Email нормализуется к нижнему регистру, роль всегда user
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, models.UserRoleUser, resp.User.Role)

	// Выданный токен валиден
	claims, err := auth.NewTokenManager(cfg.JWT.Secret).ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// Пароль сохранен хешем, метка смены пароля проставлена
	stored := repo.stored(t, resp.User.ID)
	assert.NotEqual(t, "super_password123", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("super_password123", stored.PasswordHash))
	require.NotNil(t, stored.PasswordChangedAt)
	assert.True(t, stored.PasswordChangedAt.Before(time.Now()))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	seedUser(t, repo, "taken@example.com", "super_password123")

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Another",
		Email:    "Taken@Example.com",
		Password: "super_password123",
	})
	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)

	// Повтор email - это 400, как и остальные ошибки данных регистрации
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:            "New User",
		Email:           "new@example.com",
		Password:        "super_password123",
		PasswordConfirm: "different_password",
	})
	assert.ErrorIs(t, err, appErrors.ErrPasswordMismatch)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "login@example.com", "super_password123")

	resp, err := svc.Login(&dto.LoginRequest{
		Email:    "login@example.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "login@example.com", "super_password123")

	_, err := svc.Login(&dto.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong_password",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	// Неудачная попытка записана
	assert.Equal(t, 1, repo.stored(t, user.ID).FailedLoginCount)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// Отсутствующий аккаунт неотличим от неверного пароля
	_, err := svc.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "super_password123",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLogin_LockoutAfterThreshold(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "victim@example.com", "super_password123")

	// Пять неудачных попыток подряд
	for i := 0; i < 5; i++ {
		_, err := svc.Login(&dto.LoginRequest{
			Email:    "victim@example.com",
			Password: "wrong_password",
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials, "attempt %d", i+1)
	}

	stored := repo.stored(t, user.ID)
	assert.Equal(t, 5, stored.FailedLoginCount)
	require.NotNil(t, stored.LockedUntil)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), *stored.LockedUntil, 5*time.Second)

	// Шестая попытка с ПРАВИЛЬНЫМ паролем тоже отбивается: блокировка
	// активна, пароль даже не проверяется
	_, err := svc.Login(&dto.LoginRequest{
		Email:    "victim@example.com",
		Password: "super_password123",
	})
	assert.ErrorIs(t, err, appErrors.ErrAccountLocked)

	// Счетчик при активной блокировке не растет
	assert.Equal(t, 5, repo.stored(t, user.ID).FailedLoginCount)
}

func TestLogin_ExpiredLockReopens(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "victim@example.com", "super_password123")

	// Блокировка, срок которой уже прошел
	expired := time.Now().Add(-time.Minute)
	stored := repo.stored(t, user.ID)
	stored.FailedLoginCount = 5
	stored.LockedUntil = &expired
	require.NoError(t, repo.Update(&stored))

	resp, err := svc.Login(&dto.LoginRequest{
		Email:    "victim@example.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// Истекшая блокировка снята, счетчик обнулен
	after := repo.stored(t, user.ID)
	assert.Nil(t, after.LockedUntil)
	assert.Equal(t, 0, after.FailedLoginCount)
}

func TestLogin_ExpiredLockWrongPasswordStartsOver(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "victim@example.com", "super_password123")

	expired := time.Now().Add(-time.Minute)
	stored := repo.stored(t, user.ID)
	stored.FailedLoginCount = 5
	stored.LockedUntil = &expired
	require.NoError(t, repo.Update(&stored))

	// Неверный пароль после истекшей блокировки: отсчет начинается заново,
	// а не продолжает старый счетчик
	_, err := svc.Login(&dto.LoginRequest{
		Email:    "victim@example.com",
		Password: "wrong_password",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	after := repo.stored(t, user.ID)
	assert.Equal(t, 1, after.FailedLoginCount)
	assert.Nil(t, after.LockedUntil)
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "login@example.com", "super_password123")

	for i := 0; i < 2; i++ {
		_, err := svc.Login(&dto.LoginRequest{
			Email:    "login@example.com",
			Password: "wrong_password",
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	}
	assert.Equal(t, 2, repo.stored(t, user.ID).FailedLoginCount)

	_, err := svc.Login(&dto.LoginRequest{
		Email:    "login@example.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.stored(t, user.ID).FailedLoginCount)
}

func TestLogin_RememberMeTTL(t *testing.T) {
	svc, repo, cfg := newTestAuthService(t)
	seedUser(t, repo, "login@example.com", "super_password123")

	resp, err := svc.Login(&dto.LoginRequest{
		Email:      "login@example.com",
		Password:   "super_password123",
		RememberMe: true,
	})
	require.NoError(t, err)

	claims, err := auth.NewTokenManager(cfg.JWT.Secret).ParseToken(resp.Token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	err := svc.ForgotPassword("nobody@example.com")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}

func TestForgotPassword_IssuesToken(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "forgot@example.com", "super_password123")

	require.NoError(t, svc.ForgotPassword("forgot@example.com"))

	stored := repo.stored(t, user.ID)
	assert.Len(t, stored.ResetToken, 64)
	require.NotNil(t, stored.ResetTokenExp)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *stored.ResetTokenExp, 5*time.Second)

	// Повторный запрос перезаписывает токен
	firstToken := stored.ResetToken
	require.NoError(t, svc.ForgotPassword("forgot@example.com"))
	assert.NotEqual(t, firstToken, repo.stored(t, user.ID).ResetToken)
}

func TestResetPassword_SingleUse(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "reset@example.com", "old_password123")

	require.NoError(t, svc.ForgotPassword("reset@example.com"))
	token := repo.stored(t, user.ID).ResetToken

	require.NoError(t, svc.ResetPassword(token, "new_password123"))

	// Новый пароль работает, старый нет
	_, err := svc.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "new_password123"})
	require.NoError(t, err)
	_, err = svc.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "old_password123"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	// Токен одноразовый: поля очищены, повторное использование отбивается
	stored := repo.stored(t, user.ID)
	assert.Empty(t, stored.ResetToken)
	assert.Nil(t, stored.ResetTokenExp)
	assert.ErrorIs(t, svc.ResetPassword(token, "another_password123"), appErrors.ErrResetTokenInvalid)
}

func TestResetPassword_Expired(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "reset@example.com", "old_password123")

	require.NoError(t, svc.ForgotPassword("reset@example.com"))

	// Просроченный токен
	stored := repo.stored(t, user.ID)
	expired := time.Now().Add(-time.Minute)
	stored.ResetTokenExp = &expired
	require.NoError(t, repo.Update(&stored))

	err := svc.ResetPassword(stored.ResetToken, "new_password123")
	assert.ErrorIs(t, err, appErrors.ErrResetTokenInvalid)

	// Пароль не изменился
	_, err = svc.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "old_password123"})
	require.NoError(t, err)
}

func TestResetPassword_UnknownToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	err := svc.ResetPassword("deadbeef", "new_password123")
	assert.ErrorIs(t, err, appErrors.ErrResetTokenInvalid)
}

func TestResetPassword_WeakPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "reset@example.com", "old_password123")

	require.NoError(t, svc.ForgotPassword("reset@example.com"))
	token := repo.stored(t, user.ID).ResetToken

	assert.ErrorIs(t, svc.ResetPassword(token, "short"), appErrors.ErrWeakPassword)
}

func TestChangePassword_Success(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "change@example.com", "old_password123")
	before := repo.stored(t, user.ID)

	require.NoError(t, svc.ChangePassword(user.ID, "old_password123", "new_password123"))

	after := repo.stored(t, user.ID)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
	require.NotNil(t, after.PasswordChangedAt)

	_, err := svc.Login(&dto.LoginRequest{Email: "change@example.com", Password: "new_password123"})
	require.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "change@example.com", "old_password123")

	err := svc.ChangePassword(user.ID, "wrong_password", "new_password123")
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestChangePassword_ClearsResetToken(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "change@example.com", "old_password123")

	// Выданный ранее reset token перестает действовать после смены пароля
	require.NoError(t, svc.ForgotPassword("change@example.com"))
	token := repo.stored(t, user.ID).ResetToken

	require.NoError(t, svc.ChangePassword(user.ID, "old_password123", "new_password123"))

	assert.Empty(t, repo.stored(t, user.ID).ResetToken)
	assert.ErrorIs(t, svc.ResetPassword(token, "another_password123"), appErrors.ErrResetTokenInvalid)
}

// TestAuthLifecycle - сквозной сценарий: регистрация, вход, сброс пароля,
// отзыв старого токена, повторный вход
func TestAuthLifecycle(t *testing.T) {
	svc, repo, cfg := newTestAuthService(t)
	tokens := auth.NewTokenManager(cfg.JWT.Secret)

	regResp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Lifecycle",
		Email:    "cycle@example.com",
		Password: "first_password123",
	})
	require.NoError(t, err)

	// Токен, выданный при регистрации, не считается устаревшим:
	// метка смены пароля сдвинута на секунду назад
	regClaims, err := tokens.ParseToken(regResp.Token)
	require.NoError(t, err)
	user := repo.stored(t, regResp.User.ID)
	assert.False(t, user.PasswordChangedAfter(regClaims.IssuedAt.Time))

	loginResp, err := svc.Login(&dto.LoginRequest{Email: "cycle@example.com", Password: "first_password123"})
	require.NoError(t, err)
	oldClaims, err := tokens.ParseToken(loginResp.Token)
	require.NoError(t, err)

	// iat хранится с точностью до секунды: ждем, чтобы смена пароля
	// гарантированно попала в следующую секунду
	time.Sleep(2 * time.Second)

	require.NoError(t, svc.ForgotPassword("cycle@example.com"))
	resetToken := repo.stored(t, regResp.User.ID).ResetToken
	require.NoError(t, svc.ResetPassword(resetToken, "second_password123"))

	// Старый токен криптографически валиден, но выдан до смены пароля
	user = repo.stored(t, regResp.User.ID)
	assert.True(t, user.PasswordChangedAfter(oldClaims.IssuedAt.Time))

	// Повторный вход с новым паролем выдает свежий, не устаревший токен
	reloginResp, err := svc.Login(&dto.LoginRequest{Email: "cycle@example.com", Password: "second_password123"})
	require.NoError(t, err)
	newClaims, err := tokens.ParseToken(reloginResp.Token)
	require.NoError(t, err)
	user = repo.stored(t, regResp.User.ID)
	assert.False(t, user.PasswordChangedAfter(newClaims.IssuedAt.Time))
}

func TestCurrentUser(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "me@example.com", "super_password123")

	resp, err := svc.CurrentUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "me@example.com", resp.Email)

	_, err = svc.CurrentUser("missing-id")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}
