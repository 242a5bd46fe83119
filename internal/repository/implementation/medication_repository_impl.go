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

type MedicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MedicationMapper
}

func NewMedicationRepository(db *gorm.DB) contract.MedicationRepository {
	return &MedicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewMedicationMapper(),
	}
}

func (r *MedicationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MedicationRepositoryImpl) Create(ctx context.Context, med *entity.Medication) error {
	m := r.mapper.ToModel(med)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*med = *r.mapper.ToEntity(m)
	return nil
}

func (r *MedicationRepositoryImpl) Update(ctx context.Context, med *entity.Medication) error {
	m := r.mapper.ToModel(med)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*med = *r.mapper.ToEntity(m)
	return nil
}

func (r *MedicationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Medication, error) {
	var m model.Medication
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MedicationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Medication, error) {
	var models []*model.Medication
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Medication, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *MedicationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Medication{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MedicationRepositoryImpl) DeleteAllByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Medication{}).Error
}
