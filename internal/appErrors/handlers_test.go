package appErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/anything", nil)
	return c, rec
}

func TestHandleServiceError_AppError(t *testing.T) {
	c, rec := newErrorContext(t)

	HandleServiceError(c, ErrLeadNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "LEAD_NOT_FOUND")
	assert.True(t, c.IsAborted())
}

func TestHandleServiceError_WrappedAppError(t *testing.T) {
	c, rec := newErrorContext(t)

	HandleServiceError(c, ErrUserNotFound.WithError(errors.New("record not found")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestHandleServiceError_UnknownError(t *testing.T) {
	c, rec := newErrorContext(t)

	HandleServiceError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Исходный текст ошибки клиенту не уходит
	assert.NotContains(t, rec.Body.String(), "boom")
}
