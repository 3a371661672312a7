package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"employee_voting_system/configs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSignout_ExpiresCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(configs.HTTP{}, nil, nil, nil, nil, zap.NewNop().Sugar())

	router := gin.New()
	router.POST("/api/auth/signout", handler.Signout)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	request.AddCookie(&http.Cookie{Name: authCookieName, Value: "stale-token"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, authCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
