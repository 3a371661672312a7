package services

import (
	"fmt"
	"time"

	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/notify"
	"employee_voting_system/internal/shared"

	"go.uber.org/zap"
)

const minPollWindow = time.Hour

type pollAdminService struct {
	userRepository repositories.UserRepository
	pollRepository repositories.PollRepository
	notifier       notify.Notifier
	logger         *zap.SugaredLogger
}

type PollAdminService interface {
	CreatePoll(poll *models.Poll, now time.Time) (*models.Poll, error)
}

func NewPollAdminService(
	userRepository repositories.UserRepository,
	pollRepository repositories.PollRepository,
	notifier notify.Notifier,
	logger *zap.SugaredLogger,
) PollAdminService {
	return &pollAdminService{
		userRepository: userRepository,
		pollRepository: pollRepository,
		notifier:       notifier,
		logger:         logger,
	}
}

// CreatePoll validates and persists a new poll. The window and the
// candidate list are immutable afterwards; only the reconciler and the
// vote engine touch the record again. The announcement email is
// best-effort and never fails the creation.
func (s *pollAdminService) CreatePoll(poll *models.Poll, now time.Time) (*models.Poll, error) {
	if err := validatePoll(poll, now); err != nil {
		return nil, err
	}

	// Same predicate the reconciler applies, so the two recomputation
	// paths cannot disagree.
	poll.IsActive = poll.WindowContains(now)
	poll.TotalVotes = 0
	poll.CreatedAt = now

	created, err := s.pollRepository.Create(poll)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("poll created",
		"poll_id", created.ID,
		"subject", created.Subject,
		"candidates", len(created.Candidates),
	)

	s.announce(created)

	return created, nil
}

func (s *pollAdminService) announce(poll *models.Poll) {
	recipients, err := s.userRepository.GetManyActiveEmails()
	if err != nil {
		s.logger.Errorw("failed to load announcement recipients", "error", err)
		return
	}

	if err := s.notifier.PollCreated(recipients, poll.Subject, poll.StartDateTime, poll.EndDateTime); err != nil {
		s.logger.Errorw("failed to announce poll", "error", err, "poll_id", poll.ID)
	}
}

func validatePoll(poll *models.Poll, now time.Time) error {
	if len(poll.Subject) < 3 || len(poll.Subject) > 200 {
		return fmt.Errorf("%w: subject must be 3-200 characters", shared.ErrValidation)
	}
	if !poll.StartDateTime.After(now) {
		return fmt.Errorf("%w: start date and time must be in the future", shared.ErrValidation)
	}
	if !poll.EndDateTime.After(poll.StartDateTime) {
		return fmt.Errorf("%w: end date and time must be after start date and time", shared.ErrValidation)
	}
	if poll.EndDateTime.Sub(poll.StartDateTime) < minPollWindow {
		return fmt.Errorf("%w: voting period must be at least 1 hour", shared.ErrValidation)
	}
	if len(poll.Candidates) < 2 {
		return fmt.Errorf("%w: a poll needs at least 2 candidates", shared.ErrValidation)
	}

	seen := make(map[int64]bool, len(poll.Candidates))
	for _, candidate := range poll.Candidates {
		if candidate.UserID == 0 {
			return fmt.Errorf("%w: every candidate must reference a user", shared.ErrValidation)
		}
		if seen[candidate.UserID] {
			return fmt.Errorf("%w: a user cannot be listed twice as a candidate", shared.ErrValidation)
		}
		seen[candidate.UserID] = true

		if len(candidate.Description) < 5 || len(candidate.Description) > 500 {
			return fmt.Errorf("%w: candidate description must be 5-500 characters", shared.ErrValidation)
		}
	}

	return nil
}
