package implementation

import (
	"context"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/mapper"
	"dinedesk-be/internal/model"
	"dinedesk-be/internal/repository/contract"
	"dinedesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	store gormStore[entity.User, model.User]
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	m := mapper.NewUserMapper()
	return &UserRepositoryImpl{store: newGormStore(db, m.ToEntity, m.ToModel)}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	return r.store.create(ctx, user)
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return r.store.findOne(ctx, specs...)
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.store.count(ctx, specs...)
}
