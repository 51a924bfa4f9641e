package middleware

import (
	"strings"

	"aegis_backend/internal/appErrors"
	"aegis_backend/internal/auth"
	"aegis_backend/internal/logger"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Ключи gin-контекста, под которыми guard сохраняет личность запроса
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthGuard - middleware проверки bearer токена. Проверяет подпись и
// срок токена, загружает пользователя и отклоняет токены, выданные до
// последней смены пароля.
type AuthGuard struct {
	tokens   *auth.TokenManager
	userRepo repositories.UserRepository

	// Старый вариант guard не сверял токен со временем смены пароля.
	// Поведение доступно только как флаг bug-совместимости.
	skipPasswordCheck bool
}

func NewAuthGuard(tokens *auth.TokenManager, userRepo repositories.UserRepository, skipPasswordCheck bool) *AuthGuard {
	return &AuthGuard{
		tokens:            tokens,
		userRepo:          userRepo,
		skipPasswordCheck: skipPasswordCheck,
	}
}

// Authenticate возвращает gin.HandlerFunc, пропускающий только запросы
// с действительным bearer токеном
func (g *AuthGuard) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := g.tokens.ParseToken(tokenStr)
		if err != nil {
			if appErrors.Is(err, auth.ErrTokenExpired) {
				appErrors.HandleError(c, appErrors.ErrSessionExpired)
				return
			}
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			return
		}

		// Наши токены всегда несут iat; без него проверка смены пароля
		// невозможна, такой токен не принимается
		if claims.IssuedAt == nil {
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			return
		}

		// Пользователь мог быть удален после выдачи токена
		user, err := g.userRepo.FindByID(claims.UserID)
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrTokenUserGone)
			return
		}

		// Токен, выданный до смены пароля, недействителен, даже если
		// подпись и срок в порядке
		if !g.skipPasswordCheck && user.PasswordChangedAfter(claims.IssuedAt.Time) {
			logger.CtxWarn(c.Request.Context(), "token issued before password change",
				"user_id", user.ID,
			)
			appErrors.HandleError(c, appErrors.ErrPasswordChanged)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextRoleKey, user.Role)
		c.Next()
	}
}

// RequireRoles - middleware ограничения по ролям, ставится после Authenticate
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			return
		}

		if !roleSet[user.Role] {
			appErrors.HandleError(c, appErrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

// CurrentUser извлекает аутентифицированного пользователя из контекста
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}

	user, ok := val.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
