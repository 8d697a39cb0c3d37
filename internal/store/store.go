package store

import (
	"context"

	"github.com/nhle/plant-reminder/internal/model"
)

// Setting keys for the key/value settings table. These mirror the
// entries of the app's persisted settings layout.
const (
	SettingNotificationTime = "notification-time"
	SettingNotificationsOn  = "notifications-enabled"
	SettingTheme            = "theme"
	SettingLanguage         = "language"
)

// Store defines the persistence interface for the user's garden, care
// history, settings, and locally generated reminders.
type Store interface {
	// === Garden ===

	CreateUserPlant(ctx context.Context, up model.UserPlant) error
	DeleteUserPlant(ctx context.Context, id string) error
	GetUserPlant(ctx context.Context, id string) (*model.UserPlant, error)
	ListUserPlants(ctx context.Context) ([]model.UserPlant, error)

	// AppendCareEntry records a completed care action. It reports
	// false when an entry for the same (plant, action, day) already
	// exists; the history is left unchanged in that case.
	AppendCareEntry(ctx context.Context, e model.CareHistoryEntry) (bool, error)

	// === Settings ===

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// ResetAll removes all plants, history, settings, and reminders.
	ResetAll(ctx context.Context) error

	// === Reminders ===

	CreateReminder(ctx context.Context, r model.Reminder) error
	UnreadReminders(ctx context.Context) ([]model.Reminder, error)
	MarkReminderRead(ctx context.Context, id string) error
}
