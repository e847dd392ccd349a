package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Scope lets a plain gorm scope func be passed where a Specification is expected.
type Scope func(db *gorm.DB) *gorm.DB

func (s Scope) Apply(db *gorm.DB) *gorm.DB {
	return s(db)
}
