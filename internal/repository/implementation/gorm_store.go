package implementation

import (
	"context"
	"errors"

	"dinedesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

// gormStore is the query plumbing every repository shares: specifications
// narrow the query, M is the GORM model, E the entity handed to services.
type gormStore[E, M any] struct {
	db       *gorm.DB
	toEntity func(*M) *E
	toModel  func(*E) *M
}

func newGormStore[E, M any](db *gorm.DB, toEntity func(*M) *E, toModel func(*E) *M) gormStore[E, M] {
	return gormStore[E, M]{db: db, toEntity: toEntity, toModel: toModel}
}

func (s gormStore[E, M]) query(ctx context.Context, specs ...specification.Specification) *gorm.DB {
	db := s.db.WithContext(ctx).Model(new(M))
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// create inserts e and copies generated columns back into it.
func (s gormStore[E, M]) create(ctx context.Context, e *E, omit ...string) error {
	m := s.toModel(e)
	db := s.db.WithContext(ctx)
	if len(omit) > 0 {
		db = db.Omit(omit...)
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}
	*e = *s.toEntity(m)
	return nil
}

// findOne returns nil, nil when nothing matches.
func (s gormStore[E, M]) findOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	var m M
	if err := s.query(ctx, specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.toEntity(&m), nil
}

func (s gormStore[E, M]) findAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	if err := s.query(ctx, specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*E, len(models))
	for i, m := range models {
		out[i] = s.toEntity(m)
	}
	return out, nil
}

func (s gormStore[E, M]) count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	if err := s.query(ctx, specs...).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
