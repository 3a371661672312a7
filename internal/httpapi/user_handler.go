package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userRepository   repositories.UserRepository
	votingService    services.VotingService
	pollQueryService services.PollQueryService
	logger           *zap.SugaredLogger
}

func NewUserHandler(
	userRepository repositories.UserRepository,
	votingService services.VotingService,
	pollQueryService services.PollQueryService,
	logger *zap.SugaredLogger,
) *UserHandler {
	return &UserHandler{
		userRepository:   userRepository,
		votingService:    votingService,
		pollQueryService: pollQueryService,
		logger:           logger,
	}
}

// pollView is the voter-facing projection: candidate descriptions only,
// no vote counts and no ledger.
type pollView struct {
	ID            int64           `json:"id"`
	Subject       string          `json:"subject"`
	StartDateTime time.Time       `json:"start_date_time"`
	EndDateTime   time.Time       `json:"end_date_time"`
	Candidates    []candidateView `json:"candidates"`
}

type candidateView struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

func newPollView(poll *models.Poll) pollView {
	view := pollView{
		ID:            poll.ID,
		Subject:       poll.Subject,
		StartDateTime: poll.StartDateTime,
		EndDateTime:   poll.EndDateTime,
		Candidates:    make([]candidateView, 0, len(poll.Candidates)),
	}
	for _, candidate := range poll.Candidates {
		view.Candidates = append(view.Candidates, candidateView{
			ID:          candidate.ID,
			Description: candidate.Description,
		})
	}
	return view
}

// ActivePolls handles GET /api/user/polls/active.
func (h *UserHandler) ActivePolls(c *gin.Context) {
	page, limit := pageParams(c)

	polls, total, err := h.pollQueryService.ActivePolls(page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views := make([]pollView, 0, len(polls))
	for _, poll := range polls {
		views = append(views, newPollView(poll))
	}

	c.JSON(http.StatusOK, gin.H{
		"polls":      views,
		"pagination": NewPagination(page, limit, total),
	})
}

// UpcomingPolls handles GET /api/user/polls/upcoming.
func (h *UserHandler) UpcomingPolls(c *gin.Context) {
	page, limit := pageParams(c)

	polls, total, err := h.pollQueryService.UpcomingPolls(time.Now().UTC(), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views := make([]pollView, 0, len(polls))
	for _, poll := range polls {
		views = append(views, newPollView(poll))
	}

	c.JSON(http.StatusOK, gin.H{
		"polls":      views,
		"pagination": NewPagination(page, limit, total),
	})
}

// CastVote handles POST /api/user/polls/:pollID/candidates/:candidateID/vote.
func (h *UserHandler) CastVote(c *gin.Context) {
	claims := CurrentClaims(c)

	pollID, err := strconv.ParseInt(c.Param("pollID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid poll id"})
		return
	}

	candidateID, err := strconv.ParseInt(c.Param("candidateID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid candidate id"})
		return
	}

	if err := h.votingService.CastVote(claims.UserID, pollID, candidateID, time.Now().UTC()); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote submitted successfully."})
}

// VotedHistory handles GET /api/user/voted.
func (h *UserHandler) VotedHistory(c *gin.Context) {
	claims := CurrentClaims(c)
	page, limit := pageParams(c)

	records, total, err := h.pollQueryService.VotedHistory(claims.UserID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, record := range records {
		item := gin.H{
			"poll_id":               record.PollID,
			"voted_at":              record.VotedAt,
			"candidate_description": record.CandidateDescription,
		}

		// A record can outlive its poll; render what we still know.
		if record.Poll != nil {
			item["subject"] = record.Poll.Subject
			item["start_date_time"] = record.Poll.StartDateTime
			item["end_date_time"] = record.Poll.EndDateTime
			item["is_active"] = record.Poll.IsActive
		} else {
			item["poll_unavailable"] = true
		}

		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"voted_list": items,
		"pagination": NewPagination(page, limit, total),
	})
}

type editProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EditProfile handles PUT /api/user/profile.
func (h *UserHandler) EditProfile(c *gin.Context) {
	claims := CurrentClaims(c)

	var req editProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name and email are required"})
		return
	}

	user, err := h.userRepository.GetOneByID(claims.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.UpdatedAt = time.Now().UTC()

	updated, err := h.userRepository.Update(user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user": gin.H{
			"id":    updated.ID,
			"name":  updated.Name,
			"email": updated.Email,
		},
	})
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}

	return page, limit
}
