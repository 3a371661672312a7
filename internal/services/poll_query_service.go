package services

import (
	"time"

	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/shared"
)

// Dashboard is the admin landing-page aggregate.
type Dashboard struct {
	ActivePolls   int              `json:"active_polls"`
	UpcomingPolls int              `json:"upcoming_polls"`
	EndedPolls    int              `json:"ended_polls"`
	TotalUsers    int              `json:"total_users"`
	TotalVotes    int              `json:"total_votes"`
	RecentBallots []*models.Ballot `json:"recent_ballots"`
}

type pollQueryService struct {
	userRepository repositories.UserRepository
	pollRepository repositories.PollRepository
	voteRepository repositories.VoteRepository
}

// PollQueryService serves read-only projections. Every listing filters
// on the cached active flag and the window columns; none of them
// recompute activity from the clock, so results lag reality by at most
// one reconciler tick.
type PollQueryService interface {
	ActivePolls(page, limit int) ([]*models.Poll, int, error)
	UpcomingPolls(now time.Time, page, limit int) ([]*models.Poll, int, error)
	EndedPolls(now time.Time, page, limit int) ([]*models.Poll, int, error)
	VotedHistory(userID int64, page, limit int) ([]*models.VotedRecord, int, error)
	Dashboard(now time.Time) (*Dashboard, error)
}

func NewPollQueryService(
	userRepository repositories.UserRepository,
	pollRepository repositories.PollRepository,
	voteRepository repositories.VoteRepository,
) PollQueryService {
	return &pollQueryService{
		userRepository: userRepository,
		pollRepository: pollRepository,
		voteRepository: voteRepository,
	}
}

func (s *pollQueryService) ActivePolls(page, limit int) ([]*models.Poll, int, error) {
	return s.pollRepository.GetManyActive(page, limit)
}

func (s *pollQueryService) UpcomingPolls(now time.Time, page, limit int) ([]*models.Poll, int, error) {
	return s.pollRepository.GetManyUpcoming(now, page, limit)
}

func (s *pollQueryService) EndedPolls(now time.Time, page, limit int) ([]*models.Poll, int, error) {
	return s.pollRepository.GetManyEnded(now, page, limit)
}

// VotedHistory lists a user's ballots, most recent first. Records whose
// poll has since disappeared are kept; the caller renders them as
// unavailable rather than failing the whole page.
func (s *pollQueryService) VotedHistory(userID int64, page, limit int) ([]*models.VotedRecord, int, error) {
	user, err := s.userRepository.GetOneByID(userID)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, shared.ErrUserNotFound
	}

	return s.voteRepository.GetManyByUserID(userID, page, limit)
}

func (s *pollQueryService) Dashboard(now time.Time) (*Dashboard, error) {
	active, err := s.pollRepository.CountActive()
	if err != nil {
		return nil, err
	}

	upcoming, err := s.pollRepository.CountUpcoming(now)
	if err != nil {
		return nil, err
	}

	ended, err := s.pollRepository.CountEnded(now)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepository.Count()
	if err != nil {
		return nil, err
	}

	votes, err := s.pollRepository.SumTotalVotes()
	if err != nil {
		return nil, err
	}

	recent, err := s.voteRepository.GetRecentBallots(10)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		ActivePolls:   active,
		UpcomingPolls: upcoming,
		EndedPolls:    ended,
		TotalUsers:    users,
		TotalVotes:    votes,
		RecentBallots: recent,
	}, nil
}
