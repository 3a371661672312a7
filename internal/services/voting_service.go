package services

import (
	"time"

	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/shared"

	"go.uber.org/zap"
)

type votingService struct {
	userRepository repositories.UserRepository
	pollRepository repositories.PollRepository
	voteRepository repositories.VoteRepository
	logger         *zap.SugaredLogger
}

type VotingService interface {
	CastVote(userID, pollID, candidateID int64, now time.Time) error
}

func NewVotingService(
	userRepository repositories.UserRepository,
	pollRepository repositories.PollRepository,
	voteRepository repositories.VoteRepository,
	logger *zap.SugaredLogger,
) VotingService {
	return &votingService{
		userRepository: userRepository,
		pollRepository: pollRepository,
		voteRepository: voteRepository,
		logger:         logger,
	}
}

// CastVote validates a single vote attempt and commits it to both
// stores. Preconditions run in a fixed order and the first failure
// wins. The duplicate precheck below only fixes error ordering; the
// guarantee that at most one cast per (user, poll) succeeds comes from
// the unique constraint inside VoteRepository.Cast, so a concurrent
// racer that slips past the precheck still fails with ErrDuplicateVote.
func (s *votingService) CastVote(userID, pollID, candidateID int64, now time.Time) error {
	user, err := s.userRepository.GetOneByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return shared.ErrUserNotFound
	}

	poll, err := s.pollRepository.GetOneByID(pollID)
	if err != nil {
		return err
	}
	if poll == nil {
		return shared.ErrPollNotFound
	}

	voted, err := s.voteRepository.HasVoted(userID, pollID)
	if err != nil {
		return err
	}
	if voted {
		return shared.ErrDuplicateVote
	}

	// The cached flag is the authority for "is voting open". It may
	// lag the wall clock by up to one reconciler tick; that staleness
	// is accepted rather than recomputing the window here.
	if !poll.IsActive {
		return shared.ErrPollNotOpen
	}

	if !user.IsVote {
		return shared.ErrVotingBlocked
	}

	candidate := poll.Candidate(candidateID)
	if candidate == nil {
		return shared.ErrCandidateNotFound
	}

	record := &models.VotedRecord{
		UserID:               userID,
		PollID:               pollID,
		CandidateUserID:      candidate.UserID,
		CandidateDescription: candidate.Description,
		VotedAt:              now,
	}
	ballot := &models.Ballot{
		CandidateID: candidateID,
		PollID:      pollID,
		VoterID:     userID,
		CreatedAt:   now,
	}

	if err := s.voteRepository.Cast(record, ballot); err != nil {
		return err
	}

	s.logger.Infow("vote cast", "user_id", userID, "poll_id", pollID, "candidate_id", candidateID)
	return nil
}
