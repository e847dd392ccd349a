package scope

import "gorm.io/gorm"

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

func OrderByLastActivityDesc(db *gorm.DB) *gorm.DB {
	return db.Order("last_activity_at DESC")
}

func OrderByRatingDesc(db *gorm.DB) *gorm.DB {
	return db.Order("rating DESC").Order("id ASC")
}
