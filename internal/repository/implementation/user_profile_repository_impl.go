package implementation

import (
	"context"
	"errors"

	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/mapper"
	"ai-healthassist-be/internal/model"
	"ai-healthassist-be/internal/repository/contract"
	"ai-healthassist-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserProfileMapper
}

func NewUserProfileRepository(db *gorm.DB) contract.UserProfileRepository {
	return &UserProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserProfileMapper(),
	}
}

func (r *UserProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserProfileRepositoryImpl) Create(ctx context.Context, profile *entity.UserProfile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserProfileRepositoryImpl) Update(ctx context.Context, profile *entity.UserProfile) error {
	m := r.mapper.ToModel(profile)
	return r.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", profile.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(m).Error
}

func (r *UserProfileRepositoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserProfile{}).Error
}

func (r *UserProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error) {
	var m model.UserProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProfile, error) {
	var models []*model.UserProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserProfile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *UserProfileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserProfile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
