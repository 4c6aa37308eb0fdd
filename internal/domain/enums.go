package domain

// IntentType enumerates everything the classifier can label a message with.
type IntentType string

const (
	IntentCreateTask      IntentType = "CREATE_TASK"
	IntentBreakdownTask   IntentType = "BREAKDOWN_TASK"
	IntentUpdateTask      IntentType = "UPDATE_TASK"
	IntentScheduleEvent   IntentType = "SCHEDULE_EVENT"
	IntentUpdateEvent     IntentType = "UPDATE_EVENT"
	IntentDeleteEvent     IntentType = "DELETE_EVENT"
	IntentViewCalendar    IntentType = "VIEW_CALENDAR"
	IntentGetRecipe       IntentType = "GET_RECIPE"
	IntentSuggestSchedule IntentType = "SUGGEST_SCHEDULE"
	IntentGeneralQuery    IntentType = "GENERAL_QUERY"
)

// validIntents is the set of known intent types for classifier validation.
var validIntents = map[IntentType]bool{
	IntentCreateTask: true, IntentBreakdownTask: true, IntentUpdateTask: true,
	IntentScheduleEvent: true, IntentUpdateEvent: true, IntentDeleteEvent: true,
	IntentViewCalendar: true, IntentGetRecipe: true, IntentSuggestSchedule: true,
	IntentGeneralQuery: true,
}

// IsValidIntent returns true if the given type is a known intent.
func IsValidIntent(t IntentType) bool {
	return validIntents[t]
}

// Recurrence is a stored label only; it is never expanded into instances.
type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
	RecurYearly  Recurrence = "yearly"
)

// ValidRecurrences is the canonical set of accepted recurrence labels.
var ValidRecurrences = map[string]bool{
	"none": true, "daily": true, "weekly": true, "monthly": true, "yearly": true,
}

// Role tags a conversation message as user- or assistant-authored.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

const (
	// DefaultCategory is filled in when an event is created without one.
	DefaultCategory = "personal"

	// DefaultReminderMinutes is filled in when an event is created without one.
	DefaultReminderMinutes = 30

	// DefaultEventDurationMin is the span assumed when neither an explicit
	// end nor a duration is available.
	DefaultEventDurationMin = 60
)
