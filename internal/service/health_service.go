package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-healthassist-be/internal/constant"
	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/pkg/apperr"
	"ai-healthassist-be/internal/pkg/logger"
	"ai-healthassist-be/internal/repository/specification"
	"ai-healthassist-be/internal/repository/unitofwork"
	"ai-healthassist-be/pkg/events"
	pktNats "ai-healthassist-be/pkg/nats"

	"github.com/google/uuid"
)

type IHealthService interface {
	CreateCondition(ctx context.Context, req *dto.CreateConditionRequest) (*dto.ConditionResponse, error)
	GetConditions(ctx context.Context, userID string, activeOnly bool) ([]*dto.ConditionResponse, error)
	UpdateCondition(ctx context.Context, conditionID uuid.UUID, req *dto.UpdateConditionRequest) (*dto.ConditionResponse, error)
	DeleteCondition(ctx context.Context, conditionID uuid.UUID) error
	GenerateReport(ctx context.Context, req *dto.HealthReportRequest) (*dto.HealthReportResponse, error)
	GetSummary(ctx context.Context, userID string) (*dto.HealthSummaryResponse, error)
}

type healthService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *pktNats.Publisher
	log        logger.ILogger
	now        func() time.Time
}

func NewHealthService(uowFactory unitofwork.RepositoryFactory, publisher *pktNats.Publisher, log logger.ILogger) IHealthService {
	return &healthService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
		now:        time.Now,
	}
}

func (s *healthService) CreateCondition(ctx context.Context, req *dto.CreateConditionRequest) (*dto.ConditionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByUserID{UserID: req.UserID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("user", req.UserID)
	}

	recordedDate := s.now().UTC().Truncate(24 * time.Hour)
	if req.RecordedDate != "" {
		parsed, err := time.Parse(dateLayout, req.RecordedDate)
		if err != nil {
			return nil, apperr.Validation("invalid recorded_date %q", req.RecordedDate)
		}
		recordedDate = parsed
	}

	condition := &entity.HealthCondition{
		UserID:        req.UserID,
		ConditionName: req.ConditionName,
		Severity:      req.Severity,
		Symptoms:      req.Symptoms,
		RecordedDate:  recordedDate,
		Notes:         req.Notes,
		IsActive:      true,
	}
	if err := uow.HealthConditionRepository().Create(ctx, condition); err != nil {
		return nil, apperr.Upstream("create condition", err)
	}

	return toConditionResponse(condition), nil
}

func (s *healthService) GetConditions(ctx context.Context, userID string, activeOnly bool) ([]*dto.ConditionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "recorded_date", Desc: true},
	}
	if activeOnly {
		specs = append(specs, specification.ActiveOnly{})
	}

	conditions, err := uow.HealthConditionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Upstream("list conditions", err)
	}

	responses := make([]*dto.ConditionResponse, len(conditions))
	for i, condition := range conditions {
		responses[i] = toConditionResponse(condition)
	}
	return responses, nil
}

func (s *healthService) UpdateCondition(ctx context.Context, conditionID uuid.UUID, req *dto.UpdateConditionRequest) (*dto.ConditionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.HealthConditionRepository()

	condition, err := repo.FindOne(ctx, specification.ByID{ID: conditionID})
	if err != nil {
		return nil, apperr.Upstream("load condition", err)
	}
	if condition == nil {
		return nil, apperr.NotFound("condition", conditionID.String())
	}

	if req.ConditionName != nil {
		condition.ConditionName = *req.ConditionName
	}
	if req.Severity != nil {
		condition.Severity = *req.Severity
	}
	if req.Symptoms != nil {
		condition.Symptoms = *req.Symptoms
	}
	if req.RecordedDate != nil {
		parsed, err := time.Parse(dateLayout, *req.RecordedDate)
		if err != nil {
			return nil, apperr.Validation("invalid recorded_date %q", *req.RecordedDate)
		}
		condition.RecordedDate = parsed
	}
	if req.Notes != nil {
		condition.Notes = *req.Notes
	}

	if err := repo.Update(ctx, condition); err != nil {
		return nil, apperr.Upstream("update condition", err)
	}
	return toConditionResponse(condition), nil
}

// DeleteCondition is a soft delete, mirroring medications.
func (s *healthService) DeleteCondition(ctx context.Context, conditionID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.HealthConditionRepository()

	condition, err := repo.FindOne(ctx, specification.ByID{ID: conditionID})
	if err != nil {
		return apperr.Upstream("load condition", err)
	}
	if condition == nil {
		return apperr.NotFound("condition", conditionID.String())
	}

	condition.IsActive = false
	if err := repo.Update(ctx, condition); err != nil {
		return apperr.Upstream("deactivate condition", err)
	}
	return nil
}

func (s *healthService) GenerateReport(ctx context.Context, req *dto.HealthReportRequest) (*dto.HealthReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByUserID{UserID: req.UserID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("user", req.UserID)
	}

	// Default window is the trailing 30 days.
	endDate := s.now().UTC().Truncate(24 * time.Hour)
	if req.EndDate != "" {
		parsed, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, apperr.Validation("invalid end_date %q", req.EndDate)
		}
		endDate = parsed
	}
	startDate := endDate.AddDate(0, 0, -30)
	if req.StartDate != "" {
		parsed, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, apperr.Validation("invalid start_date %q", req.StartDate)
		}
		startDate = parsed
	}

	meds, err := uow.MedicationRepository().FindAll(ctx,
		specification.ByUserID{UserID: req.UserID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperr.Upstream("list medications", err)
	}
	medResponses := make([]*dto.MedicationResponse, len(meds))
	for i, med := range meds {
		medResponses[i] = toMedicationResponse(med)
	}

	moods, err := uow.MoodEntryRepository().FindAll(ctx,
		specification.ByUserID{UserID: req.UserID},
		specification.DateBetween{From: startDate, To: endDate},
		specification.OrderBy{Field: "date", Desc: true},
		specification.Pagination{Limit: 30},
	)
	if err != nil {
		return nil, apperr.Upstream("list mood entries", err)
	}
	moodResponses := make([]*dto.MoodEntryResponse, len(moods))
	for i, mood := range moods {
		moodResponses[i] = toMoodResponse(mood)
	}

	conditions, err := uow.HealthConditionRepository().FindAll(ctx,
		specification.ByUserID{UserID: req.UserID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperr.Upstream("list conditions", err)
	}
	conditionResponses := make([]*dto.ConditionResponse, len(conditions))
	for i, condition := range conditions {
		conditionResponses[i] = toConditionResponse(condition)
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByUserID{UserID: req.UserID},
		specification.TimestampSince{Since: startDate},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: 20},
	)
	if err != nil {
		return nil, apperr.Upstream("load chat history", err)
	}

	dateRange := fmt.Sprintf("%s to %s", startDate.Format(dateLayout), endDate.Format(dateLayout))
	s.publish(ctx, events.NewReportGenerated(req.UserID, dateRange))

	return &dto.HealthReportResponse{
		UserID:           req.UserID,
		GeneratedAt:      s.now().UTC(),
		UserInfo:         toUserProfileResponse(profile),
		Medications:      medResponses,
		RecentMoods:      moodResponses,
		ActiveConditions: conditionResponses,
		ChatSummary: dto.ChatSummary{
			TotalConversations: len(messages),
			DateRange:          dateRange,
			RecentTopics:       extractTopics(messages),
		},
	}, nil
}

func (s *healthService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("health_service", "event publish failed", map[string]interface{}{
			"event": event.EventType(), "error": err.Error(),
		})
	}
}

// extractTopics scans user-authored messages for the known topic vocabulary.
// Matches are deduplicated and reported in vocabulary order.
func extractTopics(messages []*entity.ChatMessage) []string {
	seen := map[string]bool{}
	for _, msg := range messages {
		if msg.Sender != constant.ChatSenderUser {
			continue
		}
		text := strings.ToLower(msg.Message)
		for _, keyword := range constant.ReportTopicKeywords {
			if strings.Contains(text, keyword) {
				seen[keyword] = true
			}
		}
	}

	topics := make([]string, 0, len(seen))
	for _, keyword := range constant.ReportTopicKeywords {
		if seen[keyword] {
			topics = append(topics, keyword)
		}
	}
	return topics
}

func (s *healthService) GetSummary(ctx context.Context, userID string) (*dto.HealthSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByUserID{UserID: userID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("user", userID)
	}

	activeMedications, err := uow.MedicationRepository().Count(ctx,
		specification.ByUserID{UserID: userID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperr.Upstream("count medications", err)
	}

	activeConditions, err := uow.HealthConditionRepository().Count(ctx,
		specification.ByUserID{UserID: userID},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperr.Upstream("count conditions", err)
	}

	today := s.now().UTC()
	takenToday, err := uow.MedicationTakenRepository().Count(ctx,
		specification.ByUserID{UserID: userID},
		specification.OnDate{Date: today},
		specification.TakenOnly{},
	)
	if err != nil {
		return nil, apperr.Upstream("count doses taken today", err)
	}

	// Zero active medications means zero compliance, not a division error.
	percentage := float64(0)
	if activeMedications > 0 {
		percentage = float64(takenToday) / float64(activeMedications) * 100
	}

	latestMood, err := uow.MoodEntryRepository().FindOne(ctx,
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, apperr.Upstream("load latest mood", err)
	}
	moodStatus := constant.MoodNotRecorded
	if latestMood != nil {
		moodStatus = latestMood.Mood
	}

	recentChats, err := uow.ChatMessageRepository().Count(ctx,
		specification.ByUserID{UserID: userID},
		specification.TimestampSince{Since: today.AddDate(0, 0, -7)},
	)
	if err != nil {
		return nil, apperr.Upstream("count recent chats", err)
	}

	return &dto.HealthSummaryResponse{
		UserID:            userID,
		ActiveMedications: activeMedications,
		ActiveConditions:  activeConditions,
		MedicationComplianceToday: dto.MedicationComplianceToday{
			Total:      activeMedications,
			Taken:      takenToday,
			Percentage: percentage,
		},
		LatestMood:         moodStatus,
		RecentChatMessages: recentChats,
		GeneratedAt:        s.now().UTC(),
	}, nil
}

func toConditionResponse(condition *entity.HealthCondition) *dto.ConditionResponse {
	return &dto.ConditionResponse{
		ConditionID:   condition.Id,
		UserID:        condition.UserID,
		ConditionName: condition.ConditionName,
		Severity:      condition.Severity,
		Symptoms:      condition.Symptoms,
		RecordedDate:  condition.RecordedDate.Format(dateLayout),
		Notes:         condition.Notes,
		IsActive:      condition.IsActive,
		CreatedAt:     condition.CreatedAt,
		UpdatedAt:     condition.UpdatedAt,
	}
}
