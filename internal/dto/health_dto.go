package dto

import "time"

type HealthReportRequest struct {
	UserID    string `json:"user_id" validate:"required,min=1"`
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ChatSummary struct {
	TotalConversations int      `json:"total_conversations"`
	DateRange          string   `json:"date_range"`
	RecentTopics       []string `json:"recent_topics"`
}

type HealthReportResponse struct {
	UserID           string                `json:"user_id"`
	GeneratedAt      time.Time             `json:"generated_at"`
	UserInfo         *UserProfileResponse  `json:"user_info"`
	Medications      []*MedicationResponse `json:"medications"`
	RecentMoods      []*MoodEntryResponse  `json:"recent_moods"`
	ActiveConditions []*ConditionResponse  `json:"active_conditions"`
	ChatSummary      ChatSummary           `json:"chat_summary"`
}

type MedicationComplianceToday struct {
	Total      int64   `json:"total"`
	Taken      int64   `json:"taken"`
	Percentage float64 `json:"percentage"`
}

type HealthSummaryResponse struct {
	UserID                    string                    `json:"user_id"`
	ActiveMedications         int64                     `json:"active_medications"`
	ActiveConditions          int64                     `json:"active_conditions"`
	MedicationComplianceToday MedicationComplianceToday `json:"medication_compliance_today"`
	LatestMood                string                    `json:"latest_mood"`
	RecentChatMessages        int64                     `json:"recent_chat_messages"`
	GeneratedAt               time.Time                 `json:"generated_at"`
}
