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
	"gorm.io/gorm/clause"
)

type MedicationTakenRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MedicationMapper
}

func NewMedicationTakenRepository(db *gorm.DB) contract.MedicationTakenRepository {
	return &MedicationTakenRepositoryImpl{
		db:     db,
		mapper: mapper.NewMedicationMapper(),
	}
}

func (r *MedicationTakenRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MedicationTakenRepositoryImpl) Upsert(ctx context.Context, taken *entity.MedicationTaken) error {
	m := r.mapper.TakenToModel(taken)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "medication_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"taken", "time_taken", "notes", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*taken = *r.mapper.TakenToEntity(m)
	return nil
}

func (r *MedicationTakenRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MedicationTaken, error) {
	var m model.MedicationTaken
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TakenToEntity(&m), nil
}

func (r *MedicationTakenRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MedicationTaken, error) {
	var models []*model.MedicationTaken
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MedicationTaken, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TakenToEntity(m)
	}
	return entities, nil
}

func (r *MedicationTakenRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MedicationTaken{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MedicationTakenRepositoryImpl) DeleteAllByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.MedicationTaken{}).Error
}
