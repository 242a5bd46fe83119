package constant

// Medication frequency values accepted by the API.
const (
	FrequencyDaily       = "Daily"
	FrequencyTwiceDaily  = "Twice daily"
	FrequencyThriceDaily = "Three times daily"
	FrequencyAsNeeded    = "As needed"
	FrequencyWeekly      = "Weekly"
	FrequencyCustom      = "Custom"
)

// Mood levels accepted by the API.
const (
	MoodExcellent = "excellent"
	MoodGood      = "good"
	MoodOkay      = "okay"
	MoodBad       = "bad"
	MoodTerrible  = "terrible"
)

// Condition severity tiers.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// MoodNotRecorded is the dashboard sentinel when a user has no mood entries.
const MoodNotRecorded = "Not recorded"

// SeverityIndicators and MoodIndicators are lookup tables, kept as data so
// deployments can extend them without touching branching code.
var SeverityIndicators = map[string]string{
	SeverityMild:     "🟢",
	SeverityModerate: "🟡",
	SeveritySevere:   "🔴",
}

var MoodIndicators = map[string]string{
	MoodExcellent: "😊",
	MoodGood:      "🙂",
	MoodOkay:      "😐",
	MoodBad:       "☹️",
	MoodTerrible:  "😢",
}

// ReportTopicKeywords is the vocabulary scanned against user-authored chat
// messages when summarising recent conversation topics.
var ReportTopicKeywords = []string{"pain", "medication", "tired", "sleep", "doctor", "symptoms"}
