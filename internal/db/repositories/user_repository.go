package repositories

import (
	"errors"

	"employee_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	Create(request *models.User) (*models.User, error)
	Update(request *models.User) (*models.User, error)
	Delete(request *models.User) error
	GetOneByID(userID int64) (*models.User, error)
	GetOneByEmail(email string) (*models.User, error)
	GetOneByEmployeeIDOrEmail(employeeID, email string) (*models.User, error)
	GetMany(page, limit int) ([]*models.User, int, error)
	GetManyNonAdmin() ([]*models.User, error)
	GetManyActiveEmails() ([]string, error)
	Count() (int, error)
}

func NewUserRepository(db *pg.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) Create(request *models.User) (*models.User, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOneByID(request.ID)
}

func (r *userRepository) Update(request *models.User) (*models.User, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOneByID(request.ID)
}

func (r *userRepository) Delete(request *models.User) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}

func (r *userRepository) GetOneByID(userID int64) (*models.User, error) {
	user := &models.User{}

	err := r.db.Model(user).
		Relation("VotedRecords").
		Where("\"user\".id = ?", userID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return user, err
}

func (r *userRepository) GetOneByEmail(email string) (*models.User, error) {
	user := &models.User{}

	err := r.db.Model(user).
		Relation("VotedRecords").
		Where("\"user\".email = ?", email).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return user, err
}

func (r *userRepository) GetOneByEmployeeIDOrEmail(employeeID, email string) (*models.User, error) {
	user := &models.User{}

	err := r.db.Model(user).
		Where("employee_id = ?", employeeID).
		WhereOr("email = ?", email).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return user, err
}

func (r *userRepository) GetMany(page, limit int) ([]*models.User, int, error) {
	users := make([]*models.User, 0)

	offset, limit := normalizePage(page, limit)

	total, err := r.db.Model(&users).
		Relation("VotedRecords").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		SelectAndCount()

	return users, total, err
}

func (r *userRepository) GetManyNonAdmin() ([]*models.User, error) {
	users := make([]*models.User, 0)

	err := r.db.Model(&users).
		Column("id", "name", "employee_id").
		Where("is_admin = ?", false).
		Order("name ASC").
		Select()

	return users, err
}

func (r *userRepository) GetManyActiveEmails() ([]string, error) {
	emails := make([]string, 0)

	err := r.db.Model((*models.User)(nil)).
		Column("email").
		Where("is_active = ?", true).
		Select(&emails)

	return emails, err
}

func (r *userRepository) Count() (int, error) {
	return r.db.Model((*models.User)(nil)).Count()
}
