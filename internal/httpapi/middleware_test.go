package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"employee_voting_system/internal/db/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func protectedRouter(secret []byte, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{RequireAuth(secret)}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := CurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})

	router.GET("/protected", handlers...)
	return router
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router := protectedRouter(tokenSecret, false)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	router := protectedRouter(tokenSecret, false)

	tokenString, err := GenerateToken(&models.User{ID: 42}, tokenSecret, time.Hour)
	assert.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+tokenString)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "42")
}

func TestRequireAuth_CookieFallback(t *testing.T) {
	router := protectedRouter(tokenSecret, false)

	tokenString, err := GenerateToken(&models.User{ID: 42}, tokenSecret, time.Hour)
	assert.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.AddCookie(&http.Cookie{Name: authCookieName, Value: tokenString})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	router := protectedRouter(tokenSecret, false)

	tokenString, err := GenerateToken(&models.User{ID: 42}, []byte("other-secret"), time.Hour)
	assert.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+tokenString)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAdmin_NonAdminForbidden(t *testing.T) {
	router := protectedRouter(tokenSecret, true)

	tokenString, err := GenerateToken(&models.User{ID: 42, IsAdmin: false}, tokenSecret, time.Hour)
	assert.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+tokenString)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	router := protectedRouter(tokenSecret, true)

	tokenString, err := GenerateToken(&models.User{ID: 42, IsAdmin: true}, tokenSecret, time.Hour)
	assert.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+tokenString)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRateLimit_BurstThenRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(30, 3))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
