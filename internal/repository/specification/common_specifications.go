package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByNumericID is ByID for serial keys.
type ByNumericID struct {
	ID uint
}

func (s ByNumericID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// Ascending orders by the named column.
type Ascending string

func (s Ascending) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: string(s)}})
}

// Limit caps the row count. Zero or less leaves the query unbounded.
type Limit int

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	if s <= 0 {
		return db
	}
	return db.Limit(int(s))
}
