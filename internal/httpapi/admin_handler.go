package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/services"
	"employee_voting_system/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	userRepository   repositories.UserRepository
	signupService    services.SignupService
	pollAdminService services.PollAdminService
	pollQueryService services.PollQueryService
	logger           *zap.SugaredLogger
}

func NewAdminHandler(
	userRepository repositories.UserRepository,
	signupService services.SignupService,
	pollAdminService services.PollAdminService,
	pollQueryService services.PollQueryService,
	logger *zap.SugaredLogger,
) *AdminHandler {
	return &AdminHandler{
		userRepository:   userRepository,
		signupService:    signupService,
		pollAdminService: pollAdminService,
		pollQueryService: pollQueryService,
		logger:           logger,
	}
}

// SignupRequests handles GET /api/admin/requests?status=&page=&limit=.
func (h *AdminHandler) SignupRequests(c *gin.Context) {
	page, limit := pageParams(c)

	status := models.PendingUserStatus(c.DefaultQuery("status", "pending"))
	switch status {
	case models.PendingUserStatusPending, models.PendingUserStatusApproved, models.PendingUserStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "unknown status"})
		return
	}

	requests, total, err := h.signupService.Requests(status, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests":   requests,
		"pagination": NewPagination(page, limit, total),
	})
}

type reviewRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// ApproveRequest handles POST /api/admin/requests/:requestID/approve.
func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	claims := CurrentClaims(c)

	requestID, err := strconv.ParseInt(c.Param("requestID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request id"})
		return
	}

	var req reviewRequest
	_ = c.ShouldBindJSON(&req)

	user, err := h.signupService.Approve(requestID, claims.UserID, req.AdminNotes, time.Now().UTC())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Request approved successfully. User created.",
		"user": gin.H{
			"id":          user.ID,
			"employee_id": user.EmployeeID,
			"created_at":  user.CreatedAt,
		},
	})
}

// RejectRequest handles POST /api/admin/requests/:requestID/reject.
func (h *AdminHandler) RejectRequest(c *gin.Context) {
	claims := CurrentClaims(c)

	requestID, err := strconv.ParseInt(c.Param("requestID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request id"})
		return
	}

	var req reviewRequest
	_ = c.ShouldBindJSON(&req)

	request, err := h.signupService.Reject(requestID, claims.UserID, req.AdminNotes, time.Now().UTC())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Request rejected successfully",
		"request": gin.H{
			"id":          request.ID,
			"employee_id": request.EmployeeID,
			"status":      request.Status,
			"admin_notes": request.AdminNotes,
			"reviewed_at": request.ReviewedAt,
		},
	})
}

type createPollRequest struct {
	Subject       string `json:"subject"`
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
	Candidates    []struct {
		UserID      int64  `json:"user_id"`
		Description string `json:"description"`
	} `json:"candidates"`
}

// CreatePoll handles POST /api/admin/polls.
func (h *AdminHandler) CreatePoll(c *gin.Context) {
	claims := CurrentClaims(c)

	var req createPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "start_date_time must be RFC3339"})
		return
	}

	end, err := time.Parse(time.RFC3339, req.EndDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "end_date_time must be RFC3339"})
		return
	}

	poll := &models.Poll{
		Subject:       req.Subject,
		StartDateTime: start,
		EndDateTime:   end,
		CreatedByID:   claims.UserID,
	}
	for _, candidate := range req.Candidates {
		poll.Candidates = append(poll.Candidates, &models.Candidate{
			UserID:      candidate.UserID,
			Description: candidate.Description,
		})
	}

	created, err := h.pollAdminService.CreatePoll(poll, time.Now().UTC())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vote created successfully",
		"poll": gin.H{
			"id":               created.ID,
			"subject":          created.Subject,
			"start_date_time":  created.StartDateTime,
			"end_date_time":    created.EndDateTime,
			"candidates_count": len(created.Candidates),
			"is_active":        created.IsActive,
		},
	})
}

// EndedPolls handles GET /api/admin/polls/ended, with full tallies.
func (h *AdminHandler) EndedPolls(c *gin.Context) {
	page, limit := pageParams(c)

	polls, total, err := h.pollQueryService.EndedPolls(time.Now().UTC(), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"polls":      polls,
		"pagination": NewPagination(page, limit, total),
	})
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.pollQueryService.Dashboard(time.Now().UTC())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

type createUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RefName    string `json:"ref_name"`
	EmployeeID string `json:"employee_id"`
	BirthDate  string `json:"birth_date"`
}

// CreateUser handles POST /api/admin/users: an account provisioned
// directly by an admin, active immediately.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "birth date must be a valid date (YYYY-MM-DD)"})
		return
	}

	user, err := h.signupService.CreateUser(&models.User{
		Name:       req.Name,
		Email:      req.Email,
		RefName:    req.RefName,
		EmployeeID: req.EmployeeID,
		BirthDate:  birthDate,
	}, time.Now().UTC())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"employee_id": user.EmployeeID,
			"email":       user.Email,
		},
	})
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	page, limit := pageParams(c)

	users, total, err := h.userRepository.GetMany(page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": NewPagination(page, limit, total),
	})
}

// UserNames handles GET /api/admin/users/names, the candidate picker.
func (h *AdminHandler) UserNames(c *gin.Context) {
	users, err := h.userRepository.GetManyNonAdmin()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]gin.H, 0, len(users))
	for _, user := range users {
		items = append(items, gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"employee_id": user.EmployeeID,
		})
	}

	c.JSON(http.StatusOK, items)
}

type editUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	RefName string `json:"ref_name"`
	IsVote  *bool  `json:"is_vote"`
}

// EditUser handles PUT /api/admin/users/:userID.
func (h *AdminHandler) EditUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	var req editUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	user, err := h.userRepository.GetOneByID(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if user == nil {
		respondError(c, h.logger, shared.ErrUserNotFound)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.RefName != "" {
		user.RefName = req.RefName
	}
	if req.IsVote != nil {
		user.IsVote = *req.IsVote
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := h.userRepository.Update(user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": updated})
}

// ToggleUserActivation handles PATCH /api/admin/users/:userID/activation.
func (h *AdminHandler) ToggleUserActivation(c *gin.Context) {
	claims := CurrentClaims(c)

	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	if claims.UserID == userID {
		respondError(c, h.logger, shared.ErrSelfAction)
		return
	}

	user, err := h.userRepository.GetOneByID(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if user == nil {
		respondError(c, h.logger, shared.ErrUserNotFound)
		return
	}

	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now().UTC()

	if _, err := h.userRepository.Update(user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "User deactivated"
	if user.IsActive {
		message = "User activated"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteUser handles DELETE /api/admin/users/:userID.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	claims := CurrentClaims(c)

	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	if claims.UserID == userID {
		respondError(c, h.logger, shared.ErrSelfAction)
		return
	}

	user, err := h.userRepository.GetOneByID(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if user == nil {
		respondError(c, h.logger, shared.ErrUserNotFound)
		return
	}
	if user.IsAdmin {
		respondError(c, h.logger, shared.ErrAdminImmutable)
		return
	}

	if err := h.userRepository.Delete(user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
