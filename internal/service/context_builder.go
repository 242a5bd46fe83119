package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-healthassist-be/internal/constant"
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/pkg/logger"
	"ai-healthassist-be/internal/repository/specification"
	"ai-healthassist-be/internal/repository/unitofwork"
)

// IContextBuilder assembles the health context string that seeds a chat
// session. Sections backed by storage are best effort: a failed query drops
// that section and the rest of the context still builds.
type IContextBuilder interface {
	Build(ctx context.Context, profile *entity.UserProfile) string
}

type contextBuilder struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
	now        func() time.Time
}

func NewContextBuilder(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IContextBuilder {
	return &contextBuilder{
		uowFactory: uowFactory,
		log:        log,
		now:        time.Now,
	}
}

func (b *contextBuilder) Build(ctx context.Context, profile *entity.UserProfile) string {
	var parts []string

	parts = append(parts, b.identificationSection(profile)...)
	parts = append(parts, b.medicalHistorySection(profile)...)
	parts = append(parts, b.healthStatusSection(profile)...)
	parts = append(parts, b.familyHistorySection(profile)...)

	uow := b.uowFactory.NewUnitOfWork(ctx)

	medNames := map[string]string{}
	lines, err := b.medicationSection(ctx, uow, profile.UserID, medNames)
	if err != nil {
		b.log.Warn("context_builder", "skipping medication section", map[string]interface{}{
			"user_id": profile.UserID, "error": err.Error(),
		})
	} else {
		parts = append(parts, lines...)
	}

	lines, err = b.adherenceSection(ctx, uow, profile.UserID, medNames)
	if err != nil {
		b.log.Warn("context_builder", "skipping adherence section", map[string]interface{}{
			"user_id": profile.UserID, "error": err.Error(),
		})
	} else {
		parts = append(parts, lines...)
	}

	lines, err = b.conditionSection(ctx, uow, profile.UserID)
	if err != nil {
		b.log.Warn("context_builder", "skipping condition section", map[string]interface{}{
			"user_id": profile.UserID, "error": err.Error(),
		})
	} else {
		parts = append(parts, lines...)
	}

	lines, err = b.moodSection(ctx, uow, profile.UserID)
	if err != nil {
		b.log.Warn("context_builder", "skipping mood section", map[string]interface{}{
			"user_id": profile.UserID, "error": err.Error(),
		})
	} else {
		parts = append(parts, lines...)
	}

	return strings.Join(parts, "\n")
}

func (b *contextBuilder) identificationSection(profile *entity.UserProfile) []string {
	firstName := profile.PersonalInfo.FirstName
	if firstName == "" {
		return nil
	}
	ageContext := ""
	if profile.PersonalInfo.DateOfBirth != "" {
		ageContext = fmt.Sprintf(" (DOB: %s)", profile.PersonalInfo.DateOfBirth)
	}
	return []string{fmt.Sprintf("Patient: %s%s", firstName, ageContext), ""}
}

func (b *contextBuilder) medicalHistorySection(profile *entity.UserProfile) []string {
	h := profile.MedicalHistory
	if h.Allergies == "" && h.ChronicConditions == "" && h.PastSurgeries == "" && h.CurrentMedications == "" {
		return nil
	}

	parts := []string{"=== MEDICAL HISTORY ==="}
	if h.Allergies != "" {
		parts = append(parts, fmt.Sprintf("⚠️ ALLERGIES: %s", h.Allergies))
	}
	if h.ChronicConditions != "" {
		parts = append(parts, fmt.Sprintf("Chronic Conditions: %s", h.ChronicConditions))
	}
	if h.PastSurgeries != "" {
		parts = append(parts, fmt.Sprintf("Past Surgeries: %s", h.PastSurgeries))
	}
	if h.CurrentMedications != "" {
		parts = append(parts, fmt.Sprintf("Current Medications (from history): %s", h.CurrentMedications))
	}
	return append(parts, "")
}

func (b *contextBuilder) healthStatusSection(profile *entity.UserProfile) []string {
	s := profile.HealthStatus
	if s.CurrentConditions == "" && s.Symptoms == "" && s.IsPregnant == "" && s.DueDate == "" {
		return nil
	}

	parts := []string{"=== CURRENT HEALTH STATUS ==="}
	if s.CurrentConditions != "" {
		parts = append(parts, fmt.Sprintf("Current Conditions: %s", s.CurrentConditions))
	}
	if s.Symptoms != "" {
		parts = append(parts, fmt.Sprintf("Current Symptoms: %s", s.Symptoms))
	}
	switch strings.ToLower(s.IsPregnant) {
	case "yes", "true":
		pregnancy := "⚠️ PREGNANT"
		if s.DueDate != "" {
			pregnancy += fmt.Sprintf(" (Due: %s)", s.DueDate)
		}
		parts = append(parts, pregnancy)
	}
	return append(parts, "")
}

func (b *contextBuilder) familyHistorySection(profile *entity.UserProfile) []string {
	f := profile.FamilyHistory
	var conditions []string
	if f.HeartDisease {
		conditions = append(conditions, "Heart Disease")
	}
	if f.Diabetes {
		conditions = append(conditions, "Diabetes")
	}
	if f.Cancer {
		conditions = append(conditions, "Cancer")
	}
	if f.MentalHealth {
		conditions = append(conditions, "Mental Health Issues")
	}
	if f.Other != "" {
		conditions = append(conditions, fmt.Sprintf("Other: %s", f.Other))
	}
	if len(conditions) == 0 {
		return nil
	}
	return []string{
		"=== FAMILY HEALTH HISTORY ===",
		"Family history of: " + strings.Join(conditions, ", "),
		"",
	}
}

// medicationSection also fills medNames so the adherence section can name
// missed doses instead of printing raw identifiers.
func (b *contextBuilder) medicationSection(ctx context.Context, uow unitofwork.UnitOfWork, userID string, medNames map[string]string) ([]string, error) {
	meds, err := uow.MedicationRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if len(meds) == 0 {
		return nil, nil
	}

	parts := []string{"=== CURRENT MEDICATIONS ==="}
	for _, med := range meds {
		medNames[med.Id.String()] = med.Name

		line := fmt.Sprintf("• %s", med.Name)
		if med.Dosage != "" {
			line += fmt.Sprintf(" - %s", med.Dosage)
		}
		if med.Frequency != "" {
			line += fmt.Sprintf(", %s", med.Frequency)
		}
		if med.Time != "" {
			line += fmt.Sprintf(" at %s", med.Time)
		}
		parts = append(parts, line)

		if med.Notes != "" {
			parts = append(parts, fmt.Sprintf("  Notes: %s", med.Notes))
		}
	}
	return append(parts, ""), nil
}

func (b *contextBuilder) adherenceSection(ctx context.Context, uow unitofwork.UnitOfWork, userID string, medNames map[string]string) ([]string, error) {
	sevenDaysAgo := b.now().AddDate(0, 0, -7)
	entries, err := uow.MedicationTakenRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.DateSince{Since: sevenDaysAgo},
		specification.OrderBy{Field: "date", Desc: true},
		specification.Pagination{Limit: 50},
	)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	taken := 0
	var missed []*entity.MedicationTaken
	for _, entry := range entries {
		if entry.Taken {
			taken++
		} else {
			missed = append(missed, entry)
		}
	}
	rate := float64(0)
	if len(entries) > 0 {
		rate = float64(taken) / float64(len(entries)) * 100
	}

	parts := []string{
		"=== MEDICATION ADHERENCE (LAST 7 DAYS) ===",
		fmt.Sprintf("Adherence Rate: %.1f%% (%d/%d doses taken)", rate, taken, len(entries)),
	}
	if len(missed) > 0 {
		parts = append(parts, "", fmt.Sprintf("Recently Missed (%d doses):", len(missed)))
		show := missed
		if len(show) > 5 {
			show = show[:5]
		}
		for _, entry := range show {
			name := medNames[entry.MedicationID.String()]
			if name == "" {
				name = entry.MedicationID.String()
			}
			parts = append(parts, fmt.Sprintf("  • %s on %s", name, entry.Date.Format("2006-01-02")))
		}
	}
	return append(parts, ""), nil
}

func (b *contextBuilder) conditionSection(ctx context.Context, uow unitofwork.UnitOfWork, userID string) ([]string, error) {
	conditions, err := uow.HealthConditionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if len(conditions) == 0 {
		return nil, nil
	}

	parts := []string{"=== TRACKED HEALTH CONDITIONS ==="}
	for _, cond := range conditions {
		icon := constant.SeverityIndicators[cond.Severity]
		parts = append(parts, strings.TrimSpace(fmt.Sprintf("%s %s", icon, cond.ConditionName)))
		if cond.Severity != "" {
			parts = append(parts, fmt.Sprintf("  Severity: %s", titleCase(cond.Severity)))
		}
		if !cond.RecordedDate.IsZero() {
			parts = append(parts, fmt.Sprintf("  Recorded: %s", cond.RecordedDate.Format("2006-01-02")))
		}
		if len(cond.Symptoms) > 0 {
			parts = append(parts, fmt.Sprintf("  Symptoms: %s", strings.Join(cond.Symptoms, ", ")))
		}
		if cond.Notes != "" {
			parts = append(parts, fmt.Sprintf("  Notes: %s", cond.Notes))
		}
		parts = append(parts, "")
	}
	return parts, nil
}

func (b *contextBuilder) moodSection(ctx context.Context, uow unitofwork.UnitOfWork, userID string) ([]string, error) {
	entries, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "date", Desc: true},
		specification.Pagination{Limit: 7},
	)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	parts := []string{"=== RECENT MOOD & SYMPTOMS ==="}
	for _, entry := range entries {
		emoji := constant.MoodIndicators[strings.ToLower(entry.Mood)]
		line := fmt.Sprintf("%s: %s %s", entry.Date.Format("2006-01-02"), emoji, titleCase(entry.Mood))
		if entry.EnergyLevel > 0 {
			line += fmt.Sprintf(" | Energy: %d/10", entry.EnergyLevel)
		}
		if entry.SleepHours != nil {
			line += fmt.Sprintf(" | Sleep: %gh", *entry.SleepHours)
		}
		parts = append(parts, line)

		if len(entry.Symptoms) > 0 {
			parts = append(parts, fmt.Sprintf("  Symptoms: %s", strings.Join(entry.Symptoms, ", ")))
		}
		if entry.Notes != "" {
			parts = append(parts, fmt.Sprintf("  Notes: %s", entry.Notes))
		}
	}
	return append(parts, ""), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
