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

type HealthConditionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConditionMapper
}

func NewHealthConditionRepository(db *gorm.DB) contract.HealthConditionRepository {
	return &HealthConditionRepositoryImpl{
		db:     db,
		mapper: mapper.NewConditionMapper(),
	}
}

func (r *HealthConditionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HealthConditionRepositoryImpl) Create(ctx context.Context, condition *entity.HealthCondition) error {
	m := r.mapper.ToModel(condition)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*condition = *r.mapper.ToEntity(m)
	return nil
}

func (r *HealthConditionRepositoryImpl) Update(ctx context.Context, condition *entity.HealthCondition) error {
	m := r.mapper.ToModel(condition)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*condition = *r.mapper.ToEntity(m)
	return nil
}

func (r *HealthConditionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HealthCondition, error) {
	var m model.HealthCondition
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *HealthConditionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HealthCondition, error) {
	var models []*model.HealthCondition
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.HealthCondition, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *HealthConditionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.HealthCondition{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *HealthConditionRepositoryImpl) DeleteAllByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.HealthCondition{}).Error
}
