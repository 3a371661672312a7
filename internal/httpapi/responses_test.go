package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"employee_voting_system/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewPagination_FirstOfThreePages(t *testing.T) {
	pagination := NewPagination(1, 6, 13)

	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, 13, pagination.TotalItems)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}

func TestNewPagination_MiddlePage(t *testing.T) {
	pagination := NewPagination(2, 6, 13)

	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestNewPagination_LastPage(t *testing.T) {
	pagination := NewPagination(3, 6, 13)

	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestNewPagination_Empty(t *testing.T) {
	pagination := NewPagination(1, 6, 0)

	assert.Equal(t, 0, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{shared.ErrUserNotFound, http.StatusNotFound},
		{shared.ErrPollNotFound, http.StatusNotFound},
		{shared.ErrCandidateNotFound, http.StatusNotFound},
		{shared.ErrSignupRequestNotFound, http.StatusNotFound},
		{shared.ErrDuplicateVote, http.StatusConflict},
		{shared.ErrUserAlreadyExists, http.StatusConflict},
		{shared.ErrSignupAlreadyPending, http.StatusConflict},
		{shared.ErrSignupRejected, http.StatusConflict},
		{shared.ErrSignupAlreadyReviewed, http.StatusConflict},
		{shared.ErrPollNotOpen, http.StatusForbidden},
		{shared.ErrVotingBlocked, http.StatusForbidden},
		{shared.ErrAccountInactive, http.StatusForbidden},
		{shared.ErrSelfAction, http.StatusForbidden},
		{shared.ErrAdminImmutable, http.StatusForbidden},
		{shared.ErrInvalidOTP, http.StatusUnauthorized},
		{shared.ErrValidation, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, zap.NewNop().Sugar(), tc.err)
		assert.Equal(t, tc.status, recorder.Code, "error: %v", tc.err)
	}
}
