package service

import (
	"context"

	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/pkg/apperr"
	"ai-healthassist-be/internal/pkg/logger"
	"ai-healthassist-be/internal/repository/specification"
	"ai-healthassist-be/internal/repository/unitofwork"
	"ai-healthassist-be/pkg/events"
	pktNats "ai-healthassist-be/pkg/nats"
)

type IUserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserProfileResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserProfileResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context, limit, skip int) ([]*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   ISessionManager
	publisher  *pktNats.Publisher
	log        logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	sessions ISessionManager,
	publisher *pktNats.Publisher,
	log logger.ILogger,
) IUserService {
	return &userService{
		uowFactory: uowFactory,
		sessions:   sessions,
		publisher:  publisher,
		log:        log,
	}
}

func (s *userService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserProfileRepository()

	existing, err := repo.FindOne(ctx, specification.ByUserID{UserID: req.UserID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if existing != nil {
		return nil, apperr.Validation("user %q already exists", req.UserID)
	}

	profile := &entity.UserProfile{
		UserID:           req.UserID,
		PersonalInfo:     toPersonalInfo(&req.PersonalInfo),
		MedicalHistory:   toMedicalHistory(&req.MedicalHistory),
		HealthStatus:     toHealthStatus(&req.HealthStatus),
		FamilyHistory:    toFamilyHistory(&req.FamilyHistory),
		EmergencyContact: toEmergencyContact(&req.EmergencyContact),
	}
	if err := repo.Create(ctx, profile); err != nil {
		return nil, apperr.Upstream("create user", err)
	}

	s.publish(ctx, events.NewUserCreated(req.UserID))

	return toUserProfileResponse(profile), nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByUserID{UserID: userID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("user", userID)
	}
	return toUserProfileResponse(profile), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserProfileRepository()

	profile, err := repo.FindOne(ctx, specification.ByUserID{UserID: userID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("user", userID)
	}

	// Partial update: only the sections present in the request change.
	if req.PersonalInfo != nil {
		profile.PersonalInfo = toPersonalInfo(req.PersonalInfo)
	}
	if req.MedicalHistory != nil {
		profile.MedicalHistory = toMedicalHistory(req.MedicalHistory)
	}
	if req.HealthStatus != nil {
		profile.HealthStatus = toHealthStatus(req.HealthStatus)
	}
	if req.FamilyHistory != nil {
		profile.FamilyHistory = toFamilyHistory(req.FamilyHistory)
	}
	if req.EmergencyContact != nil {
		profile.EmergencyContact = toEmergencyContact(req.EmergencyContact)
	}

	if err := repo.Update(ctx, profile); err != nil {
		return nil, apperr.Upstream("update user", err)
	}

	updated, err := repo.FindOne(ctx, specification.ByUserID{UserID: userID})
	if err != nil {
		return nil, apperr.Upstream("reload user", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("user", userID)
	}
	return toUserProfileResponse(updated), nil
}

// DeleteUser removes the profile and everything hanging off it. Related
// records go first so a failed cascade never leaves an orphaned profile
// pointing at missing data.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByUserID{UserID: userID})
	if err != nil {
		return apperr.Upstream("load user", err)
	}
	if profile == nil {
		return apperr.NotFound("user", userID)
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Upstream("begin delete", err)
	}

	steps := []func(context.Context, string) error{
		uow.ChatMessageRepository().DeleteAllByUserID,
		uow.MedicationRepository().DeleteAllByUserID,
		uow.MedicationTakenRepository().DeleteAllByUserID,
		uow.MoodEntryRepository().DeleteAllByUserID,
		uow.HealthConditionRepository().DeleteAllByUserID,
		uow.UserProfileRepository().DeleteByUserID,
	}
	for _, step := range steps {
		if err := step(ctx, userID); err != nil {
			_ = uow.Rollback()
			return apperr.Upstream("delete user data", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return apperr.Upstream("commit delete", err)
	}

	if err := s.sessions.Clear(ctx, userID); err != nil {
		s.log.Warn("user_service", "session clear failed after delete", map[string]interface{}{
			"user_id": userID, "error": err.Error(),
		})
	}

	s.publish(ctx, events.NewUserDeleted(userID))

	return nil
}

func (s *userService) ListUsers(ctx context.Context, limit, skip int) ([]*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profiles, err := uow.UserProfileRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Pagination{Limit: limit, Offset: skip},
	)
	if err != nil {
		return nil, apperr.Upstream("list users", err)
	}

	responses := make([]*dto.UserProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = toUserProfileResponse(profile)
	}
	return responses, nil
}

func (s *userService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("user_service", "event publish failed", map[string]interface{}{
			"event": event.EventType(), "error": err.Error(),
		})
	}
}

// DTO conversions

func toPersonalInfo(d *dto.PersonalInfoDTO) entity.PersonalInfo {
	return entity.PersonalInfo{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		DateOfBirth: d.DateOfBirth,
		Gender:      d.Gender,
		Email:       d.Email,
		Phone:       d.Phone,
	}
}

func toMedicalHistory(d *dto.MedicalHistoryDTO) entity.MedicalHistory {
	return entity.MedicalHistory{
		Allergies:          d.Allergies,
		ChronicConditions:  d.ChronicConditions,
		PastSurgeries:      d.PastSurgeries,
		CurrentMedications: d.CurrentMedications,
	}
}

func toHealthStatus(d *dto.HealthStatusDTO) entity.HealthStatus {
	return entity.HealthStatus{
		CurrentConditions: d.CurrentConditions,
		Symptoms:          d.Symptoms,
		IsPregnant:        d.IsPregnant,
		DueDate:           d.DueDate,
	}
}

func toFamilyHistory(d *dto.FamilyHistoryDTO) entity.FamilyHistory {
	return entity.FamilyHistory{
		HeartDisease: d.HeartDisease,
		Diabetes:     d.Diabetes,
		Cancer:       d.Cancer,
		MentalHealth: d.MentalHealth,
		Other:        d.Other,
	}
}

func toEmergencyContact(d *dto.EmergencyContactDTO) entity.EmergencyContact {
	return entity.EmergencyContact{
		Name:         d.Name,
		Relationship: d.Relationship,
		Phone:        d.Phone,
	}
}

func toUserProfileResponse(p *entity.UserProfile) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		UserID: p.UserID,
		PersonalInfo: dto.PersonalInfoDTO{
			FirstName:   p.PersonalInfo.FirstName,
			LastName:    p.PersonalInfo.LastName,
			DateOfBirth: p.PersonalInfo.DateOfBirth,
			Gender:      p.PersonalInfo.Gender,
			Email:       p.PersonalInfo.Email,
			Phone:       p.PersonalInfo.Phone,
		},
		MedicalHistory: dto.MedicalHistoryDTO{
			Allergies:          p.MedicalHistory.Allergies,
			ChronicConditions:  p.MedicalHistory.ChronicConditions,
			PastSurgeries:      p.MedicalHistory.PastSurgeries,
			CurrentMedications: p.MedicalHistory.CurrentMedications,
		},
		HealthStatus: dto.HealthStatusDTO{
			CurrentConditions: p.HealthStatus.CurrentConditions,
			Symptoms:          p.HealthStatus.Symptoms,
			IsPregnant:        p.HealthStatus.IsPregnant,
			DueDate:           p.HealthStatus.DueDate,
		},
		FamilyHistory: dto.FamilyHistoryDTO{
			HeartDisease: p.FamilyHistory.HeartDisease,
			Diabetes:     p.FamilyHistory.Diabetes,
			Cancer:       p.FamilyHistory.Cancer,
			MentalHealth: p.FamilyHistory.MentalHealth,
			Other:        p.FamilyHistory.Other,
		},
		EmergencyContact: dto.EmergencyContactDTO{
			Name:         p.EmergencyContact.Name,
			Relationship: p.EmergencyContact.Relationship,
			Phone:        p.EmergencyContact.Phone,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
