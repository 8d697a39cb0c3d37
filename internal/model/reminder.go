package model

import "time"

// Reminder is a locally generated care reminder. Reminders are a
// best-effort nudge shown inside the app, not a delivery-guaranteed
// notification channel.
type Reminder struct {
	ID        string    `json:"id" db:"id"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
