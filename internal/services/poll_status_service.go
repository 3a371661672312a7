package services

import (
	"fmt"
	"time"

	"employee_voting_system/internal/db/repositories"

	"go.uber.org/zap"
)

type pollStatusService struct {
	pollRepository repositories.PollRepository
	logger         *zap.SugaredLogger
}

type PollStatusService interface {
	Reconcile(now time.Time) (activated, deactivated int, err error)
}

func NewPollStatusService(pollRepository repositories.PollRepository, logger *zap.SugaredLogger) PollStatusService {
	return &pollStatusService{
		pollRepository: pollRepository,
		logger:         logger,
	}
}

// Reconcile brings every poll's cached active flag in line with the
// given instant. The two bulk passes are independent and order does
// not matter: a poll can never match both predicates. Re-running with
// the same instant against consistent data touches zero rows, so the
// scheduler can call this unconditionally every tick and a failed tick
// needs no special retry beyond the next one.
func (s *pollStatusService) Reconcile(now time.Time) (int, int, error) {
	activated, activateErr := s.pollRepository.ActivateDue(now)
	if activateErr != nil {
		s.logger.Errorw("failed to activate due polls", "error", activateErr)
	}

	deactivated, deactivateErr := s.pollRepository.DeactivateExpired(now)
	if deactivateErr != nil {
		s.logger.Errorw("failed to deactivate expired polls", "error", deactivateErr)
	}

	if activated > 0 || deactivated > 0 {
		s.logger.Infow("poll statuses reconciled", "activated", activated, "deactivated", deactivated)
	}

	if activateErr != nil || deactivateErr != nil {
		return activated, deactivated, fmt.Errorf("reconcile incomplete: activate: %v, deactivate: %v", activateErr, deactivateErr)
	}

	return activated, deactivated, nil
}
