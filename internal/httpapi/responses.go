package httpapi

import (
	"errors"
	"net/http"

	"employee_voting_system/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pagination mirrors the shape every list endpoint returns.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

func NewPagination(page, limit, total int) Pagination {
	if limit <= 0 {
		limit = 1
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (total + limit - 1) / limit

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Precondition
// failures keep their specific messages so a caller can tell "already
// voted" apart from "poll closed"; anything unexpected collapses to a
// generic 500 and is logged as a system error.
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, shared.ErrUserNotFound),
		errors.Is(err, shared.ErrPollNotFound),
		errors.Is(err, shared.ErrCandidateNotFound),
		errors.Is(err, shared.ErrSignupRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})

	case errors.Is(err, shared.ErrDuplicateVote),
		errors.Is(err, shared.ErrUserAlreadyExists),
		errors.Is(err, shared.ErrSignupAlreadyPending),
		errors.Is(err, shared.ErrSignupRejected),
		errors.Is(err, shared.ErrSignupAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})

	case errors.Is(err, shared.ErrPollNotOpen),
		errors.Is(err, shared.ErrVotingBlocked),
		errors.Is(err, shared.ErrAccountInactive),
		errors.Is(err, shared.ErrSelfAction),
		errors.Is(err, shared.ErrAdminImmutable):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})

	case errors.Is(err, shared.ErrInvalidOTP):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})

	case errors.Is(err, shared.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})

	default:
		logger.Errorw("request failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
