package repository

import "gorm.io/gorm"

// ciLike applies a case-insensitive substring match. lower() LIKE lower()
// behaves identically on PostgreSQL and SQLite, unlike ILIKE.
func ciLike(tx *gorm.DB, column, value string) *gorm.DB {
	return tx.Where("lower("+column+") LIKE lower(?)", "%"+value+"%")
}

// paginate applies skip/limit with a non-negative floor.
func paginate(tx *gorm.DB, skip, limit int) *gorm.DB {
	if skip > 0 {
		tx = tx.Offset(skip)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	return tx
}
