package unitofwork

import (
	"context"

	"ai-healthassist-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserProfileRepository() contract.UserProfileRepository
	ChatMessageRepository() contract.ChatMessageRepository
	MedicationRepository() contract.MedicationRepository
	MedicationTakenRepository() contract.MedicationTakenRepository
	MoodEntryRepository() contract.MoodEntryRepository
	HealthConditionRepository() contract.HealthConditionRepository
}
