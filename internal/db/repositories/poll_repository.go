package repositories

import (
	"errors"
	"time"

	"employee_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type pollRepository struct {
	repository
}

type PollRepository interface {
	Create(request *models.Poll) (*models.Poll, error)
	GetOneByID(pollID int64) (*models.Poll, error)
	GetManyActive(page, limit int) ([]*models.Poll, int, error)
	GetManyUpcoming(now time.Time, page, limit int) ([]*models.Poll, int, error)
	GetManyEnded(now time.Time, page, limit int) ([]*models.Poll, int, error)
	ActivateDue(now time.Time) (int, error)
	DeactivateExpired(now time.Time) (int, error)
	CountActive() (int, error)
	CountUpcoming(now time.Time) (int, error)
	CountEnded(now time.Time) (int, error)
	SumTotalVotes() (int, error)
}

func NewPollRepository(db *pg.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRepository) Create(request *models.Poll) (*models.Poll, error) {
	err := r.db.RunInTransaction(r.db.Context(), func(tx *pg.Tx) error {
		if _, err := tx.Model(request).Insert(); err != nil {
			return err
		}

		for _, candidate := range request.Candidates {
			candidate.PollID = request.ID
			if _, err := tx.Model(candidate).Insert(); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetOneByID(request.ID)
}

func (r *pollRepository) GetOneByID(pollID int64) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Relation("Candidates").
		Relation("Candidates.Ballots").
		Where("poll.id = ?", pollID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return poll, err
}

func (r *pollRepository) GetManyActive(page, limit int) ([]*models.Poll, int, error) {
	polls := make([]*models.Poll, 0)

	offset, limit := normalizePage(page, limit)

	total, err := r.db.Model(&polls).
		Relation("Candidates").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		SelectAndCount()

	return polls, total, err
}

func (r *pollRepository) GetManyUpcoming(now time.Time, page, limit int) ([]*models.Poll, int, error) {
	polls := make([]*models.Poll, 0)

	offset, limit := normalizePage(page, limit)

	total, err := r.db.Model(&polls).
		Relation("Candidates").
		Where("is_active = ?", false).
		Where("start_date_time > ?", now).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		SelectAndCount()

	return polls, total, err
}

func (r *pollRepository) GetManyEnded(now time.Time, page, limit int) ([]*models.Poll, int, error) {
	polls := make([]*models.Poll, 0)

	offset, limit := normalizePage(page, limit)

	total, err := r.db.Model(&polls).
		Relation("Candidates").
		Relation("Candidates.Ballots").
		Relation("Candidates.Ballots.Voter").
		Where("is_active = ?", false).
		Where("end_date_time <= ?", now).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		SelectAndCount()

	return polls, total, err
}

// ActivateDue flips every poll whose window now contains the given
// instant in one set-based update, so cost is bounded by the number of
// polls actually transitioning.
func (r *pollRepository) ActivateDue(now time.Time) (int, error) {
	res, err := r.db.Model((*models.Poll)(nil)).
		Set("is_active = ?", true).
		Set("updated_at = ?", now).
		Where("is_active = ?", false).
		Where("start_date_time <= ?", now).
		Where("end_date_time > ?", now).
		Update()
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}

// DeactivateExpired is the counterpart bulk pass: polls flagged active
// whose window no longer contains the given instant.
func (r *pollRepository) DeactivateExpired(now time.Time) (int, error) {
	res, err := r.db.Model((*models.Poll)(nil)).
		Set("is_active = ?", false).
		Set("updated_at = ?", now).
		Where("is_active = ?", true).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.
				WhereOr("start_date_time > ?", now).
				WhereOr("end_date_time <= ?", now), nil
		}).
		Update()
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}

func (r *pollRepository) CountActive() (int, error) {
	return r.db.Model((*models.Poll)(nil)).
		Where("is_active = ?", true).
		Count()
}

func (r *pollRepository) CountUpcoming(now time.Time) (int, error) {
	return r.db.Model((*models.Poll)(nil)).
		Where("is_active = ?", false).
		Where("start_date_time > ?", now).
		Count()
}

func (r *pollRepository) CountEnded(now time.Time) (int, error) {
	return r.db.Model((*models.Poll)(nil)).
		Where("is_active = ?", false).
		Where("end_date_time <= ?", now).
		Count()
}

func (r *pollRepository) SumTotalVotes() (int, error) {
	var sum int

	err := r.db.Model((*models.Poll)(nil)).
		ColumnExpr("coalesce(sum(total_votes), 0)").
		Select(&sum)

	return sum, err
}
