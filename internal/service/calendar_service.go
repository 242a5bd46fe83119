package service

import (
	"context"
	"time"

	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/pkg/apperr"
	"ai-healthassist-be/internal/pkg/logger"
	"ai-healthassist-be/internal/repository/specification"
	"ai-healthassist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ICalendarService interface {
	CreateMedication(ctx context.Context, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error)
	GetMedications(ctx context.Context, userID string, activeOnly bool) ([]*dto.MedicationResponse, error)
	UpdateMedication(ctx context.Context, medicationID uuid.UUID, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error)
	DeleteMedication(ctx context.Context, medicationID uuid.UUID) error
	TrackMedication(ctx context.Context, req *dto.TrackMedicationRequest) (*dto.MedicationTakenResponse, error)
	GetMedicationTracking(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*dto.MedicationTakenResponse, error)
	LogMood(ctx context.Context, req *dto.LogMoodRequest) (*dto.MoodEntryResponse, error)
	GetMoodEntries(ctx context.Context, userID string, startDate, endDate *time.Time, limit int) ([]*dto.MoodEntryResponse, error)
	GetCalendarView(ctx context.Context, userID string, month, year int) (*dto.CalendarViewResponse, error)
}

type calendarService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewCalendarService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICalendarService {
	return &calendarService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *calendarService) CreateMedication(ctx context.Context, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByUserID{UserID: req.UserID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("user", req.UserID)
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, apperr.Validation("invalid start_date %q", req.StartDate)
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, apperr.Validation("invalid end_date %q", req.EndDate)
	}

	med := &entity.Medication{
		UserID:    req.UserID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Time:      req.Time,
		Frequency: req.Frequency,
		Notes:     req.Notes,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  true,
	}
	if err := uow.MedicationRepository().Create(ctx, med); err != nil {
		return nil, apperr.Upstream("create medication", err)
	}

	return toMedicationResponse(med), nil
}

func (s *calendarService) GetMedications(ctx context.Context, userID string, activeOnly bool) ([]*dto.MedicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "time", Desc: false},
	}
	if activeOnly {
		specs = append(specs, specification.ActiveOnly{})
	}

	meds, err := uow.MedicationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Upstream("list medications", err)
	}

	responses := make([]*dto.MedicationResponse, len(meds))
	for i, med := range meds {
		responses[i] = toMedicationResponse(med)
	}
	return responses, nil
}

func (s *calendarService) UpdateMedication(ctx context.Context, medicationID uuid.UUID, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.MedicationRepository()

	med, err := repo.FindOne(ctx, specification.ByID{ID: medicationID})
	if err != nil {
		return nil, apperr.Upstream("load medication", err)
	}
	if med == nil {
		return nil, apperr.NotFound("medication", medicationID.String())
	}

	if req.Name != nil {
		med.Name = *req.Name
	}
	if req.Dosage != nil {
		med.Dosage = *req.Dosage
	}
	if req.Time != nil {
		med.Time = *req.Time
	}
	if req.Frequency != nil {
		med.Frequency = *req.Frequency
	}
	if req.Notes != nil {
		med.Notes = *req.Notes
	}
	if req.StartDate != nil {
		startDate, err := parseOptionalDate(*req.StartDate)
		if err != nil {
			return nil, apperr.Validation("invalid start_date %q", *req.StartDate)
		}
		med.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseOptionalDate(*req.EndDate)
		if err != nil {
			return nil, apperr.Validation("invalid end_date %q", *req.EndDate)
		}
		med.EndDate = endDate
	}

	if err := repo.Update(ctx, med); err != nil {
		return nil, apperr.Upstream("update medication", err)
	}
	return toMedicationResponse(med), nil
}

// DeleteMedication is a soft delete: the record stays for adherence history
// with is_active flipped off.
func (s *calendarService) DeleteMedication(ctx context.Context, medicationID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.MedicationRepository()

	med, err := repo.FindOne(ctx, specification.ByID{ID: medicationID})
	if err != nil {
		return apperr.Upstream("load medication", err)
	}
	if med == nil {
		return apperr.NotFound("medication", medicationID.String())
	}

	med.IsActive = false
	if err := repo.Update(ctx, med); err != nil {
		return apperr.Upstream("deactivate medication", err)
	}
	return nil
}

func (s *calendarService) TrackMedication(ctx context.Context, req *dto.TrackMedicationRequest) (*dto.MedicationTakenResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperr.Validation("invalid date %q", req.Date)
	}

	var timeTaken *time.Time
	if req.TimeTaken != "" {
		t, err := time.Parse("15:04", req.TimeTaken)
		if err != nil {
			return nil, apperr.Validation("invalid time_taken %q", req.TimeTaken)
		}
		timeTaken = &t
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := &entity.MedicationTaken{
		UserID:       req.UserID,
		MedicationID: req.MedicationID,
		Date:         date,
		Taken:        req.Taken,
		TimeTaken:    timeTaken,
		Notes:        req.Notes,
	}
	if err := uow.MedicationTakenRepository().Upsert(ctx, record); err != nil {
		return nil, apperr.Upstream("track medication", err)
	}

	return toTakenResponse(record), nil
}

func (s *calendarService) GetMedicationTracking(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*dto.MedicationTakenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := dateRangeSpecs(userID, startDate, endDate)
	specs = append(specs, specification.OrderBy{Field: "date", Desc: true})

	records, err := uow.MedicationTakenRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Upstream("list medication tracking", err)
	}

	responses := make([]*dto.MedicationTakenResponse, len(records))
	for i, record := range records {
		responses[i] = toTakenResponse(record)
	}
	return responses, nil
}

func (s *calendarService) LogMood(ctx context.Context, req *dto.LogMoodRequest) (*dto.MoodEntryResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperr.Validation("invalid date %q", req.Date)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry := &entity.MoodEntry{
		UserID:      req.UserID,
		Date:        date,
		Mood:        req.Mood,
		EnergyLevel: req.EnergyLevel,
		SleepHours:  req.SleepHours,
		Notes:       req.Notes,
		Symptoms:    req.Symptoms,
	}
	if err := uow.MoodEntryRepository().Upsert(ctx, entry); err != nil {
		return nil, apperr.Upstream("log mood", err)
	}

	return toMoodResponse(entry), nil
}

func (s *calendarService) GetMoodEntries(ctx context.Context, userID string, startDate, endDate *time.Time, limit int) ([]*dto.MoodEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := dateRangeSpecs(userID, startDate, endDate)
	specs = append(specs,
		specification.OrderBy{Field: "date", Desc: true},
		specification.Pagination{Limit: limit},
	)

	entries, err := uow.MoodEntryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Upstream("list mood entries", err)
	}

	responses := make([]*dto.MoodEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = toMoodResponse(entry)
	}
	return responses, nil
}

func (s *calendarService) GetCalendarView(ctx context.Context, userID string, month, year int) (*dto.CalendarViewResponse, error) {
	if month < 1 || month > 12 {
		return nil, apperr.Validation("month must be between 1 and 12, got %d", month)
	}
	if year < 2000 || year > 2100 {
		return nil, apperr.Validation("year must be between 2000 and 2100, got %d", year)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByUserID{UserID: userID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("user", userID)
	}

	// AddDate handles the December rollover into January of the next year.
	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	meds, err := uow.MedicationRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperr.Upstream("list medications", err)
	}
	medResponses := make([]dto.MedicationResponse, len(meds))
	for i, med := range meds {
		medResponses[i] = *toMedicationResponse(med)
	}

	tracking, err := uow.MedicationTakenRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.DateBetween{From: startDate, To: endDate},
	)
	if err != nil {
		return nil, apperr.Upstream("list medication tracking", err)
	}

	moods, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.DateBetween{From: startDate, To: endDate},
	)
	if err != nil {
		return nil, apperr.Upstream("list mood entries", err)
	}

	conditions, err := uow.HealthConditionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperr.Upstream("list health conditions", err)
	}
	conditionNames := make([]string, len(conditions))
	for i, cond := range conditions {
		conditionNames[i] = cond.ConditionName
	}

	var days []dto.CalendarDay
	for current := startDate; !current.After(endDate); current = current.AddDate(0, 0, 1) {
		dayKey := current.Format(dateLayout)

		var medsTaken []uuid.UUID
		for _, record := range tracking {
			if record.Date.Format(dateLayout) == dayKey && record.Taken {
				medsTaken = append(medsTaken, record.MedicationID)
			}
		}

		// First entry wins; the upsert invariant keeps one per date anyway.
		var moodEntry *dto.MoodEntryResponse
		for _, mood := range moods {
			if mood.Date.Format(dateLayout) == dayKey {
				moodEntry = toMoodResponse(mood)
				break
			}
		}

		days = append(days, dto.CalendarDay{
			Date:             dayKey,
			Medications:      medResponses,
			MedicationsTaken: medsTaken,
			MoodEntry:        moodEntry,
			HealthConditions: conditionNames,
		})
	}

	return &dto.CalendarViewResponse{
		UserID: userID,
		Month:  month,
		Year:   year,
		Days:   days,
	}, nil
}

// Helpers

func dateRangeSpecs(userID string, startDate, endDate *time.Time) []specification.Specification {
	specs := []specification.Specification{specification.ByUserID{UserID: userID}}
	switch {
	case startDate != nil && endDate != nil:
		specs = append(specs, specification.DateBetween{From: *startDate, To: *endDate})
	case startDate != nil:
		specs = append(specs, specification.DateSince{Since: *startDate})
	case endDate != nil:
		specs = append(specs, specification.DateUntil{Until: *endDate})
	}
	return specs
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toMedicationResponse(med *entity.Medication) *dto.MedicationResponse {
	return &dto.MedicationResponse{
		MedicationID: med.Id,
		UserID:       med.UserID,
		Name:         med.Name,
		Dosage:       med.Dosage,
		Time:         med.Time,
		Frequency:    med.Frequency,
		Notes:        med.Notes,
		StartDate:    formatOptionalDate(med.StartDate),
		EndDate:      formatOptionalDate(med.EndDate),
		IsActive:     med.IsActive,
		CreatedAt:    med.CreatedAt,
		UpdatedAt:    med.UpdatedAt,
	}
}

func toTakenResponse(record *entity.MedicationTaken) *dto.MedicationTakenResponse {
	var timeTaken *string
	if record.TimeTaken != nil {
		s := record.TimeTaken.Format("15:04")
		timeTaken = &s
	}
	return &dto.MedicationTakenResponse{
		RecordID:     record.Id,
		UserID:       record.UserID,
		MedicationID: record.MedicationID,
		Date:         record.Date.Format(dateLayout),
		Taken:        record.Taken,
		TimeTaken:    timeTaken,
		Notes:        record.Notes,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func toMoodResponse(entry *entity.MoodEntry) *dto.MoodEntryResponse {
	return &dto.MoodEntryResponse{
		EntryID:     entry.Id,
		UserID:      entry.UserID,
		Date:        entry.Date.Format(dateLayout),
		Mood:        entry.Mood,
		EnergyLevel: entry.EnergyLevel,
		SleepHours:  entry.SleepHours,
		Notes:       entry.Notes,
		Symptoms:    entry.Symptoms,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
