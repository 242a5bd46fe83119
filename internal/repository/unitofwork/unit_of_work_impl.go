package unitofwork

import (
	"context"
	"fmt"

	"ai-healthassist-be/internal/repository/contract"
	"ai-healthassist-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserProfileRepository() contract.UserProfileRepository {
	return implementation.NewUserProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MedicationRepository() contract.MedicationRepository {
	return implementation.NewMedicationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MedicationTakenRepository() contract.MedicationTakenRepository {
	return implementation.NewMedicationTakenRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MoodEntryRepository() contract.MoodEntryRepository {
	return implementation.NewMoodEntryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HealthConditionRepository() contract.HealthConditionRepository {
	return implementation.NewHealthConditionRepository(u.getDB())
}
