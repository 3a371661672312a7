package repositories

import (
	"errors"

	"employee_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type pendingUserRepository struct {
	repository
}

type PendingUserRepository interface {
	Create(request *models.PendingUser) (*models.PendingUser, error)
	Update(request *models.PendingUser) (*models.PendingUser, error)
	GetOneByID(requestID int64) (*models.PendingUser, error)
	GetOneByEmployeeIDOrEmail(employeeID, email string) (*models.PendingUser, error)
	GetManyByStatus(status models.PendingUserStatus, page, limit int) ([]*models.PendingUser, int, error)
}

func NewPendingUserRepository(db *pg.DB) PendingUserRepository {
	return &pendingUserRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pendingUserRepository) Create(request *models.PendingUser) (*models.PendingUser, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOneByID(request.ID)
}

func (r *pendingUserRepository) Update(request *models.PendingUser) (*models.PendingUser, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOneByID(request.ID)
}

func (r *pendingUserRepository) GetOneByID(requestID int64) (*models.PendingUser, error) {
	request := &models.PendingUser{}

	err := r.db.Model(request).
		Where("id = ?", requestID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return request, err
}

func (r *pendingUserRepository) GetOneByEmployeeIDOrEmail(employeeID, email string) (*models.PendingUser, error) {
	request := &models.PendingUser{}

	err := r.db.Model(request).
		Where("employee_id = ?", employeeID).
		WhereOr("email = ?", email).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return request, err
}

func (r *pendingUserRepository) GetManyByStatus(status models.PendingUserStatus, page, limit int) ([]*models.PendingUser, int, error) {
	requests := make([]*models.PendingUser, 0)

	offset, limit := normalizePage(page, limit)

	total, err := r.db.Model(&requests).
		Where("status = ?", status).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		SelectAndCount()

	return requests, total, err
}
