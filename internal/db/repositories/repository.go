package repositories

import "github.com/go-pg/pg/v10"

type repository struct {
	db *pg.DB
}

const defaultLimit = 6

// normalizePage clamps pagination arguments and returns the offset.
func normalizePage(page, limit int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if page <= 0 {
		page = 1
	}
	return (page - 1) * limit, limit
}

func isUniqueViolation(err error) bool {
	pgErr, ok := err.(pg.Error)
	return ok && pgErr.IntegrityViolation()
}
