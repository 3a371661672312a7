package services

import (
	"fmt"
	"regexp"
	"time"

	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/shared"

	"go.uber.org/zap"
)

// Employee ids are six digits starting with 950, 951 or 952.
var employeeIDPattern = regexp.MustCompile(`^95[012]\d{3}$`)

type signupService struct {
	userRepository        repositories.UserRepository
	pendingUserRepository repositories.PendingUserRepository
	logger                *zap.SugaredLogger
}

type SignupService interface {
	Submit(request *models.PendingUser, now time.Time) (*models.PendingUser, error)
	Approve(requestID, reviewerID int64, notes string, now time.Time) (*models.User, error)
	Reject(requestID, reviewerID int64, notes string, now time.Time) (*models.PendingUser, error)
	Requests(status models.PendingUserStatus, page, limit int) ([]*models.PendingUser, int, error)
	CreateUser(user *models.User, now time.Time) (*models.User, error)
}

func NewSignupService(
	userRepository repositories.UserRepository,
	pendingUserRepository repositories.PendingUserRepository,
	logger *zap.SugaredLogger,
) SignupService {
	return &signupService{
		userRepository:        userRepository,
		pendingUserRepository: pendingUserRepository,
		logger:                logger,
	}
}

// Submit files a signup request for admin review. The same employee id
// or email may not exist as a user nor as an unresolved request.
func (s *signupService) Submit(request *models.PendingUser, now time.Time) (*models.PendingUser, error) {
	if err := validateSignup(request, now); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepository.GetOneByEmployeeIDOrEmail(request.EmployeeID, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, shared.ErrUserAlreadyExists
	}

	existingRequest, err := s.pendingUserRepository.GetOneByEmployeeIDOrEmail(request.EmployeeID, request.Email)
	if err != nil {
		return nil, err
	}
	if existingRequest != nil {
		switch existingRequest.Status {
		case models.PendingUserStatusPending:
			return nil, shared.ErrSignupAlreadyPending
		case models.PendingUserStatusRejected:
			return nil, shared.ErrSignupRejected
		}
	}

	request.Status = models.PendingUserStatusPending
	if request.RefName == "" {
		request.RefName = "none"
	}
	request.CreatedAt = now

	created, err := s.pendingUserRepository.Create(request)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("signup request submitted", "request_id", created.ID, "employee_id", created.EmployeeID)
	return created, nil
}

// Approve turns a pending request into an active user account.
func (s *signupService) Approve(requestID, reviewerID int64, notes string, now time.Time) (*models.User, error) {
	request, err := s.pendingUserRepository.GetOneByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, shared.ErrSignupRequestNotFound
	}

	existingUser, err := s.userRepository.GetOneByEmployeeIDOrEmail(request.EmployeeID, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, shared.ErrUserAlreadyExists
	}

	user, err := s.userRepository.Create(&models.User{
		Name:       request.Name,
		Email:      request.Email,
		EmployeeID: request.EmployeeID,
		RefName:    request.RefName,
		BirthDate:  request.BirthDate,
		IsVote:     true,
		IsActive:   true,
		CreatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	request.Status = models.PendingUserStatusApproved
	request.AdminNotes = notes
	request.ReviewedBy = reviewerID
	request.ReviewedAt = now
	request.UpdatedAt = now

	if _, err := s.pendingUserRepository.Update(request); err != nil {
		return nil, err
	}

	s.logger.Infow("signup request approved", "request_id", request.ID, "user_id", user.ID)
	return user, nil
}

func (s *signupService) Reject(requestID, reviewerID int64, notes string, now time.Time) (*models.PendingUser, error) {
	request, err := s.pendingUserRepository.GetOneByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, shared.ErrSignupRequestNotFound
	}
	if request.Status != models.PendingUserStatusPending {
		return nil, shared.ErrSignupAlreadyReviewed
	}

	request.Status = models.PendingUserStatusRejected
	request.AdminNotes = notes
	request.ReviewedBy = reviewerID
	request.ReviewedAt = now
	request.UpdatedAt = now

	updated, err := s.pendingUserRepository.Update(request)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("signup request rejected", "request_id", request.ID)
	return updated, nil
}

func (s *signupService) Requests(status models.PendingUserStatus, page, limit int) ([]*models.PendingUser, int, error) {
	return s.pendingUserRepository.GetManyByStatus(status, page, limit)
}

// CreateUser provisions an account directly, skipping the approval
// queue. The same field rules and duplicate checks as a signup request
// apply, so an admin cannot create what a signup could not ask for.
func (s *signupService) CreateUser(user *models.User, now time.Time) (*models.User, error) {
	err := validateSignup(&models.PendingUser{
		Name:       user.Name,
		Email:      user.Email,
		EmployeeID: user.EmployeeID,
		BirthDate:  user.BirthDate,
	}, now)
	if err != nil {
		return nil, err
	}

	existingUser, err := s.userRepository.GetOneByEmployeeIDOrEmail(user.EmployeeID, user.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, shared.ErrUserAlreadyExists
	}

	if user.RefName == "" {
		user.RefName = "none"
	}
	user.IsVote = true
	user.IsActive = true
	user.CreatedAt = now

	created, err := s.userRepository.Create(user)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user created by admin", "user_id", created.ID, "employee_id", created.EmployeeID)
	return created, nil
}

func validateSignup(request *models.PendingUser, now time.Time) error {
	if request.Name == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if request.Email == "" {
		return fmt.Errorf("%w: email is required", shared.ErrValidation)
	}
	if !employeeIDPattern.MatchString(request.EmployeeID) {
		return fmt.Errorf("%w: employee id must be 6 digits starting with 950, 951 or 952", shared.ErrValidation)
	}
	if request.BirthDate.IsZero() || request.BirthDate.After(now) {
		return fmt.Errorf("%w: birth date cannot be in the future", shared.ErrValidation)
	}
	if request.BirthDate.Year() < 1900 {
		return fmt.Errorf("%w: birth date must be after 1900", shared.ErrValidation)
	}
	return nil
}
