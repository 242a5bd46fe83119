package service

import (
	"context"
	"testing"
	"time"

	"ai-healthassist-be/internal/constant"
	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHealthService(now time.Time) (IHealthService, *fakeUow) {
	factory, uow := newFakeFactory()
	uow.profiles.items = []*entity.UserProfile{testProfile("u1")}
	return &healthService{
		uowFactory: factory,
		log:        noopLogger{},
		now:        func() time.Time { return now },
	}, uow
}

func TestCreateConditionDefaultsRecordedDate(t *testing.T) {
	now := time.Date(2026, 1, 20, 15, 30, 0, 0, time.UTC)
	svc, uow := newTestHealthService(now)

	res, err := svc.CreateCondition(context.Background(), &dto.CreateConditionRequest{
		UserID: "u1", ConditionName: "Migraine", Severity: "moderate",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-20", res.RecordedDate)
	assert.True(t, res.IsActive)
	require.Len(t, uow.conditions.items, 1)

	_, err = svc.CreateCondition(context.Background(), &dto.CreateConditionRequest{
		UserID: "ghost", ConditionName: "Migraine", Severity: "mild",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteConditionIsSoft(t *testing.T) {
	svc, uow := newTestHealthService(time.Now())
	conditionID := uuid.New()
	uow.conditions.items = []*entity.HealthCondition{
		{Id: conditionID, UserID: "u1", ConditionName: "Migraine", IsActive: true},
	}

	require.NoError(t, svc.DeleteCondition(context.Background(), conditionID))
	require.Len(t, uow.conditions.items, 1)
	assert.False(t, uow.conditions.items[0].IsActive)

	assert.ErrorIs(t, svc.DeleteCondition(context.Background(), uuid.New()), apperr.ErrNotFound)
}

func TestExtractTopics(t *testing.T) {
	msgs := []*entity.ChatMessage{
		{Sender: constant.ChatSenderUser, Message: "The pain keeps me from sleep"},
		{Sender: constant.ChatSenderUser, Message: "I feel so tired and the PAIN is worse"},
		// Assistant turns never contribute topics.
		{Sender: constant.ChatSenderAssistant, Message: "Have you seen a doctor about your symptoms?"},
	}

	topics := extractTopics(msgs)

	// Deduplicated and reported in vocabulary order.
	assert.Equal(t, []string{"pain", "tired", "sleep"}, topics)
}

func TestExtractTopicsEmpty(t *testing.T) {
	assert.Empty(t, extractTopics(nil))
	assert.Empty(t, extractTopics([]*entity.ChatMessage{
		{Sender: constant.ChatSenderUser, Message: "thanks for the recipe"},
	}))
}

func TestGenerateReportDefaultWindow(t *testing.T) {
	now := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)
	svc, uow := newTestHealthService(now)

	uow.meds.items = []*entity.Medication{
		{Id: uuid.New(), UserID: "u1", Name: "Aspirin", IsActive: true},
		{Id: uuid.New(), UserID: "u1", Name: "Retired", IsActive: false},
	}
	uow.conditions.items = []*entity.HealthCondition{
		{Id: uuid.New(), UserID: "u1", ConditionName: "Migraine", IsActive: true},
	}
	uow.moods.items = []*entity.MoodEntry{
		{Id: uuid.New(), UserID: "u1", Date: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), Mood: "good", EnergyLevel: 6},
		// Outside the trailing 30 days.
		{Id: uuid.New(), UserID: "u1", Date: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), Mood: "bad", EnergyLevel: 2},
	}
	uow.chats.items = []*entity.ChatMessage{
		{Id: uuid.New(), UserID: "u1", Sender: constant.ChatSenderUser, Message: "my medication ran out", Timestamp: now.AddDate(0, 0, -2)},
		{Id: uuid.New(), UserID: "u1", Sender: constant.ChatSenderAssistant, Message: "noted", Timestamp: now.AddDate(0, 0, -2)},
	}

	report, err := svc.GenerateReport(context.Background(), &dto.HealthReportRequest{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "u1", report.UserID)
	require.NotNil(t, report.UserInfo)
	assert.Equal(t, "Maya", report.UserInfo.PersonalInfo.FirstName)

	require.Len(t, report.Medications, 1)
	assert.Equal(t, "Aspirin", report.Medications[0].Name)

	require.Len(t, report.RecentMoods, 1)
	assert.Equal(t, "2026-01-15", report.RecentMoods[0].Date)

	require.Len(t, report.ActiveConditions, 1)

	assert.Equal(t, 2, report.ChatSummary.TotalConversations)
	assert.Equal(t, "2026-01-01 to 2026-01-31", report.ChatSummary.DateRange)
	assert.Equal(t, []string{"medication"}, report.ChatSummary.RecentTopics)
}

func TestGenerateReportExplicitWindow(t *testing.T) {
	svc, _ := newTestHealthService(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))

	report, err := svc.GenerateReport(context.Background(), &dto.HealthReportRequest{
		UserID: "u1", StartDate: "2025-12-01", EndDate: "2025-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01 to 2025-12-31", report.ChatSummary.DateRange)

	_, err = svc.GenerateReport(context.Background(), &dto.HealthReportRequest{
		UserID: "u1", StartDate: "last month",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGetSummaryCompliance(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	svc, uow := newTestHealthService(now)

	medA, medB := uuid.New(), uuid.New()
	uow.meds.items = []*entity.Medication{
		{Id: medA, UserID: "u1", Name: "A", IsActive: true},
		{Id: medB, UserID: "u1", Name: "B", IsActive: true},
	}
	uow.taken.items = []*entity.MedicationTaken{
		{Id: uuid.New(), UserID: "u1", MedicationID: medA, Date: now, Taken: true},
		{Id: uuid.New(), UserID: "u1", MedicationID: medB, Date: now, Taken: false},
	}
	uow.moods.items = []*entity.MoodEntry{
		{Id: uuid.New(), UserID: "u1", Date: now.AddDate(0, 0, -1), Mood: "okay", EnergyLevel: 5},
		{Id: uuid.New(), UserID: "u1", Date: now, Mood: "good", EnergyLevel: 7},
	}
	uow.chats.items = []*entity.ChatMessage{
		{Id: uuid.New(), UserID: "u1", Sender: constant.ChatSenderUser, Message: "hi", Timestamp: now.AddDate(0, 0, -3)},
		{Id: uuid.New(), UserID: "u1", Sender: constant.ChatSenderUser, Message: "old", Timestamp: now.AddDate(0, 0, -10)},
	}

	summary, err := svc.GetSummary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.ActiveMedications)
	assert.Equal(t, int64(2), summary.MedicationComplianceToday.Total)
	assert.Equal(t, int64(1), summary.MedicationComplianceToday.Taken)
	assert.InDelta(t, 50.0, summary.MedicationComplianceToday.Percentage, 0.001)
	assert.Equal(t, "good", summary.LatestMood)
	assert.Equal(t, int64(1), summary.RecentChatMessages)
}

func TestGetSummaryComplianceNoDosesTracked(t *testing.T) {
	svc, uow := newTestHealthService(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))

	uow.meds.items = []*entity.Medication{
		{Id: uuid.New(), UserID: "u1", Name: "A", IsActive: true},
	}

	summary, err := svc.GetSummary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.MedicationComplianceToday.Total)
	assert.Zero(t, summary.MedicationComplianceToday.Taken)
	assert.Zero(t, summary.MedicationComplianceToday.Percentage)
}

func TestGetSummaryZeroGuards(t *testing.T) {
	svc, _ := newTestHealthService(time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))

	summary, err := svc.GetSummary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Zero(t, summary.ActiveMedications)
	assert.Zero(t, summary.MedicationComplianceToday.Percentage)
	assert.Equal(t, constant.MoodNotRecorded, summary.LatestMood)

	_, err = svc.GetSummary(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateConditionPartial(t *testing.T) {
	svc, uow := newTestHealthService(time.Now())
	conditionID := uuid.New()
	uow.conditions.items = []*entity.HealthCondition{
		{
			Id: conditionID, UserID: "u1", ConditionName: "Migraine",
			Severity: "mild", Notes: "original", IsActive: true,
			RecordedDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	severity := "severe"
	res, err := svc.UpdateCondition(context.Background(), conditionID, &dto.UpdateConditionRequest{
		Severity: &severity,
	})
	require.NoError(t, err)

	assert.Equal(t, "severe", res.Severity)
	assert.Equal(t, "Migraine", res.ConditionName)
	assert.Equal(t, "original", res.Notes)
}
