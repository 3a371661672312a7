package repositories

import (
	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/shared"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Cast(record *models.VotedRecord, ballot *models.Ballot) error
	HasVoted(userID, pollID int64) (bool, error)
	GetManyByUserID(userID int64, page, limit int) ([]*models.VotedRecord, int, error)
	GetRecentBallots(limit int) ([]*models.Ballot, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

// Cast commits both halves of a vote in one transaction. The voter-side
// insert goes first: its unique (user_id, poll_id) constraint is the
// atomic duplicate guard, so two concurrent casts for the same pair
// cannot both reach the ledger append. A unique violation here is a
// lost race, reported as the same duplicate-vote error the engine's
// precheck produces.
func (r *voteRepository) Cast(record *models.VotedRecord, ballot *models.Ballot) error {
	return r.db.RunInTransaction(r.db.Context(), func(tx *pg.Tx) error {
		if _, err := tx.Model(record).Insert(); err != nil {
			if isUniqueViolation(err) {
				return shared.ErrDuplicateVote
			}
			return err
		}

		if _, err := tx.Model(ballot).Insert(); err != nil {
			return err
		}

		if _, err := tx.Model((*models.Candidate)(nil)).
			Set("vote_count = vote_count + 1").
			Where("id = ?", ballot.CandidateID).
			Update(); err != nil {
			return err
		}

		_, err := tx.Model((*models.Poll)(nil)).
			Set("total_votes = total_votes + 1").
			Set("updated_at = ?", record.VotedAt).
			Where("id = ?", ballot.PollID).
			Update()
		return err
	})
}

func (r *voteRepository) HasVoted(userID, pollID int64) (bool, error) {
	return r.db.Model((*models.VotedRecord)(nil)).
		Where("user_id = ?", userID).
		Where("poll_id = ?", pollID).
		Exists()
}

func (r *voteRepository) GetManyByUserID(userID int64, page, limit int) ([]*models.VotedRecord, int, error) {
	records := make([]*models.VotedRecord, 0)

	offset, limit := normalizePage(page, limit)

	total, err := r.db.Model(&records).
		Relation("Poll").
		Relation("Poll.Candidates").
		Where("voted_record.user_id = ?", userID).
		Order("voted_at DESC").
		Offset(offset).
		Limit(limit).
		SelectAndCount()

	return records, total, err
}

func (r *voteRepository) GetRecentBallots(limit int) ([]*models.Ballot, error) {
	if limit <= 0 {
		limit = 10
	}

	ballots := make([]*models.Ballot, 0)

	err := r.db.Model(&ballots).
		Relation("Voter").
		Relation("Poll").
		Order("ballot.created_at DESC").
		Limit(limit).
		Select()

	return ballots, err
}
