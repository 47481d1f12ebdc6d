package domain

import "time"

// ActivityEventType defines the type of a service-emitted activity log entry
type ActivityEventType string

const (
	// Registration events
	UserRegisteredEvent ActivityEventType = "USER_REGISTERED"
	BotRegisteredEvent  ActivityEventType = "BOT_REGISTERED"

	// Authentication events
	UserLoginEvent ActivityEventType = "USER_LOGIN"

	// Credential settings events
	TwilioSettingsRegisteredEvent ActivityEventType = "TWILIO_SETTINGS_REGISTERED"
	TwilioSettingsUpdatedEvent    ActivityEventType = "TWILIO_SETTINGS_UPDATED"

	// Lifecycle events
	PhoneUpdatedEvent ActivityEventType = "PHONE_UPDATED"
	UserDeletedEvent  ActivityEventType = "USER_DELETED"
	TestMessageEvent  ActivityEventType = "TEST_MESSAGE_SENT"
)

// NewActivityEntry builds a log entry for a service-emitted lifecycle event
func NewActivityEntry(identityID string, eventType ActivityEventType, message string) *LogEntry {
	return &LogEntry{
		Timestamp:  time.Now().UTC(),
		LogType:    string(eventType),
		Message:    message,
		IdentityID: identityID,
	}
}
