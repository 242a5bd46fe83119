package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-healthassist-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(userID string) *entity.UserProfile {
	return &entity.UserProfile{
		UserID: userID,
		PersonalInfo: entity.PersonalInfo{
			FirstName:   "Maya",
			LastName:    "Lopez",
			DateOfBirth: "1990-04-12",
		},
	}
}

func newTestBuilder(factory *fakeFactory, now time.Time) *contextBuilder {
	return &contextBuilder{
		uowFactory: factory,
		log:        noopLogger{},
		now:        func() time.Time { return now },
	}
}

func TestBuildProfileSections(t *testing.T) {
	factory, _ := newFakeFactory()
	builder := newTestBuilder(factory, time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC))

	profile := testProfile("u1")
	profile.MedicalHistory.Allergies = "penicillin"
	profile.MedicalHistory.ChronicConditions = "asthma"
	profile.HealthStatus.IsPregnant = "YES"
	profile.HealthStatus.DueDate = "2026-06-01"
	profile.FamilyHistory.Diabetes = true
	profile.FamilyHistory.Other = "glaucoma"

	out := builder.Build(context.Background(), profile)

	assert.Contains(t, out, "Patient: Maya (DOB: 1990-04-12)")
	assert.Contains(t, out, "⚠️ ALLERGIES: penicillin")
	assert.Contains(t, out, "Chronic Conditions: asthma")
	assert.Contains(t, out, "⚠️ PREGNANT (Due: 2026-06-01)")
	assert.Contains(t, out, "Family history of: Diabetes, Other: glaucoma")
}

func TestBuildMedicalHistoryAllergiesOnly(t *testing.T) {
	factory, _ := newFakeFactory()
	builder := newTestBuilder(factory, time.Now())

	profile := testProfile("u1")
	profile.MedicalHistory.Allergies = "peanuts"

	out := builder.Build(context.Background(), profile)

	assert.Contains(t, out, "=== MEDICAL HISTORY ===")
	assert.Contains(t, out, "⚠️ ALLERGIES: peanuts")
	assert.NotContains(t, out, "Chronic Conditions:")
	assert.NotContains(t, out, "Past Surgeries:")
	assert.NotContains(t, out, "Current Medications (from history):")
}

func TestBuildPregnancyMarker(t *testing.T) {
	tests := []struct {
		name       string
		isPregnant string
		want       bool
	}{
		{"yes lowercase", "yes", true},
		{"true mixed case", "True", true},
		{"no", "no", false},
		{"empty", "", false},
		{"free text", "maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, _ := newFakeFactory()
			builder := newTestBuilder(factory, time.Now())

			profile := testProfile("u1")
			profile.HealthStatus.IsPregnant = tt.isPregnant

			out := builder.Build(context.Background(), profile)
			assert.Equal(t, tt.want, strings.Contains(out, "⚠️ PREGNANT"))
		})
	}
}

func TestBuildMedicationAndAdherence(t *testing.T) {
	factory, uow := newFakeFactory()
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
	builder := newTestBuilder(factory, now)

	medID := uuid.New()
	uow.meds.items = []*entity.Medication{
		{
			Id: medID, UserID: "u1", Name: "Lisinopril", Dosage: "10mg",
			Frequency: "Daily", Time: "08:00", Notes: "with food", IsActive: true,
		},
	}
	uow.taken.items = []*entity.MedicationTaken{
		{Id: uuid.New(), UserID: "u1", MedicationID: medID, Date: now.AddDate(0, 0, -1), Taken: true},
		{Id: uuid.New(), UserID: "u1", MedicationID: medID, Date: now.AddDate(0, 0, -2), Taken: true},
		{Id: uuid.New(), UserID: "u1", MedicationID: medID, Date: now.AddDate(0, 0, -3), Taken: false},
	}

	out := builder.Build(context.Background(), testProfile("u1"))

	assert.Contains(t, out, "• Lisinopril - 10mg, Daily at 08:00")
	assert.Contains(t, out, "  Notes: with food")
	assert.Contains(t, out, "Adherence Rate: 66.7% (2/3 doses taken)")
	assert.Contains(t, out, "Recently Missed (1 doses):")
	assert.Contains(t, out, "  • Lisinopril on "+now.AddDate(0, 0, -3).Format(dateLayout))
}

func TestBuildAdherenceOmittedWithoutDoseRecords(t *testing.T) {
	factory, uow := newFakeFactory()
	builder := newTestBuilder(factory, time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC))

	uow.meds.items = []*entity.Medication{
		{Id: uuid.New(), UserID: "u1", Name: "Aspirin", Time: "08:00", IsActive: true},
	}

	out := builder.Build(context.Background(), testProfile("u1"))

	// An active medication with no doses tracked yields no adherence math at all.
	assert.Contains(t, out, "=== CURRENT MEDICATIONS ===")
	assert.NotContains(t, out, "=== MEDICATION ADHERENCE")
	assert.NotContains(t, out, "Adherence Rate:")
}

func TestBuildAdherenceMissedCap(t *testing.T) {
	factory, uow := newFakeFactory()
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
	builder := newTestBuilder(factory, now)

	medID := uuid.New()
	for i := 1; i <= 7; i++ {
		uow.taken.items = append(uow.taken.items, &entity.MedicationTaken{
			Id: uuid.New(), UserID: "u1", MedicationID: medID,
			Date: now.AddDate(0, 0, -i%7), Taken: false,
		})
	}

	out := builder.Build(context.Background(), testProfile("u1"))

	require.Contains(t, out, "Recently Missed (7 doses):")
	assert.Equal(t, 5, strings.Count(out, "  • "))
	// No active medication matches, so the raw identifier is printed.
	assert.Contains(t, out, medID.String())
}

func TestBuildSkipsFailingSections(t *testing.T) {
	factory, uow := newFakeFactory()
	builder := newTestBuilder(factory, time.Now())

	uow.meds.err = errors.New("connection reset")
	uow.moods.items = []*entity.MoodEntry{
		{Id: uuid.New(), UserID: "u1", Date: time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), Mood: "good", EnergyLevel: 7},
	}

	out := builder.Build(context.Background(), testProfile("u1"))

	assert.NotContains(t, out, "=== CURRENT MEDICATIONS ===")
	assert.Contains(t, out, "=== RECENT MOOD & SYMPTOMS ===")
	assert.Contains(t, out, "Patient: Maya")
}

func TestBuildMoodSection(t *testing.T) {
	factory, uow := newFakeFactory()
	builder := newTestBuilder(factory, time.Now())

	sleep := 7.5
	uow.moods.items = []*entity.MoodEntry{
		{
			Id: uuid.New(), UserID: "u1",
			Date: time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC),
			Mood: "excellent", EnergyLevel: 9, SleepHours: &sleep,
			Symptoms: []string{"headache"}, Notes: "long walk",
		},
	}

	out := builder.Build(context.Background(), testProfile("u1"))

	assert.Contains(t, out, "2026-01-18: 😊 Excellent | Energy: 9/10 | Sleep: 7.5h")
	assert.Contains(t, out, "  Symptoms: headache")
	assert.Contains(t, out, "  Notes: long walk")
}

func TestBuildConditionSection(t *testing.T) {
	factory, uow := newFakeFactory()
	builder := newTestBuilder(factory, time.Now())

	uow.conditions.items = []*entity.HealthCondition{
		{
			Id: uuid.New(), UserID: "u1", ConditionName: "Migraine",
			Severity: "severe", Symptoms: []string{"aura", "nausea"},
			RecordedDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			IsActive:     true,
		},
	}

	out := builder.Build(context.Background(), testProfile("u1"))

	assert.Contains(t, out, "🔴 Migraine")
	assert.Contains(t, out, "  Severity: Severe")
	assert.Contains(t, out, "  Recorded: 2026-01-02")
	assert.Contains(t, out, "  Symptoms: aura, nausea")
}
