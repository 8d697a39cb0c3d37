// Package remind generates the daily care reminder at the user's
// configured time. Reminders are local, best-effort rows surfaced in
// the app's status bar; there is no external delivery channel.
package remind

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/store"
)

// ReminderMsg is a tea.Msg sent when a new reminder has been created.
type ReminderMsg struct {
	Reminder model.Reminder
}

// Settings supplies the current reminder configuration. Read on every
// tick so settings changes apply without a restart.
type Settings func(ctx context.Context) (enabled bool, timeHHMM string)

// PendingFunc reports how many plants have care actions due right now.
type PendingFunc func(ctx context.Context) (int, error)

// tickInterval is how often the scheduler compares the clock against
// the configured reminder time.
const tickInterval = 30 * time.Second

// Scheduler watches the clock and records a reminder once per day when
// the configured time passes and plants still need care.
type Scheduler struct {
	store    store.Store
	settings Settings
	pending  PendingFunc
	message  func() string

	resultCh chan ReminderMsg
	stopCh   chan struct{}

	mu        sync.Mutex
	running   bool
	firedDay  string
	now       func() time.Time
}

// New creates a scheduler. message produces the reminder text at fire
// time (localized by the caller).
func New(
	s store.Store,
	settings Settings,
	pending PendingFunc,
	message func() string,
) *Scheduler {
	return &Scheduler{
		store:    s,
		settings: settings,
		pending:  pending,
		message:  message,
		resultCh: make(chan ReminderMsg, 4),
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
}

// Start launches the clock-watching goroutine and returns the
// subscription command that delivers ReminderMsg values to the
// Bubble Tea runtime.
func (s *Scheduler) Start() tea.Cmd {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return s.WaitForNext()
	}
	s.running = true
	s.mu.Unlock()

	go s.run()
	return s.WaitForNext()
}

// Stop halts the scheduler goroutine.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stopCh)
	s.running = false
}

// WaitForNext returns a tea.Cmd that blocks until the next reminder.
func (s *Scheduler) WaitForNext() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-s.resultCh
		if !ok {
			return nil
		}
		return msg
	}
}

// run is the scheduler loop.
func (s *Scheduler) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick fires the reminder when the configured time has passed today,
// at most once per calendar day, and only while care is still pending.
func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	enabled, at := s.settings(ctx)
	if !enabled || at == "" {
		return
	}

	target, err := time.Parse("15:04", at)
	if err != nil {
		return
	}

	now := s.now()
	today := now.Format("2006-01-02")

	s.mu.Lock()
	fired := s.firedDay == today
	s.mu.Unlock()
	if fired {
		return
	}

	due := time.Date(now.Year(), now.Month(), now.Day(),
		target.Hour(), target.Minute(), 0, 0, now.Location())
	if now.Before(due) {
		return
	}

	count, err := s.pending(ctx)
	if err != nil || count == 0 {
		return
	}

	reminder := model.Reminder{
		Message:   fmt.Sprintf("%s (%d)", s.message(), count),
		CreatedAt: now,
	}
	if err := s.store.CreateReminder(ctx, reminder); err != nil {
		return
	}

	s.mu.Lock()
	s.firedDay = today
	s.mu.Unlock()

	select {
	case s.resultCh <- ReminderMsg{Reminder: reminder}:
	default:
		// Drop if the channel is full rather than blocking the loop.
	}
}
