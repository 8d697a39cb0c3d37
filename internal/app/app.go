// Package app is the root Bubble Tea model: view routing, the weather
// refresh loop, the reminder scheduler, and global keybindings.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	adviceservice "github.com/nhle/plant-reminder/internal/advice"
	"github.com/nhle/plant-reminder/internal/catalog"
	"github.com/nhle/plant-reminder/internal/care"
	"github.com/nhle/plant-reminder/internal/credential"
	"github.com/nhle/plant-reminder/internal/garden"
	"github.com/nhle/plant-reminder/internal/i18n"
	"github.com/nhle/plant-reminder/internal/keys"
	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/remind"
	"github.com/nhle/plant-reminder/internal/store"
	"github.com/nhle/plant-reminder/internal/theme"
	"github.com/nhle/plant-reminder/internal/ui"
	adviceview "github.com/nhle/plant-reminder/internal/ui/advice"
	"github.com/nhle/plant-reminder/internal/ui/command"
	"github.com/nhle/plant-reminder/internal/ui/dashboard"
	"github.com/nhle/plant-reminder/internal/ui/detail"
	helpview "github.com/nhle/plant-reminder/internal/ui/help"
	"github.com/nhle/plant-reminder/internal/ui/plantlist"
	settingsview "github.com/nhle/plant-reminder/internal/ui/settings"
	"github.com/nhle/plant-reminder/internal/weather"
)

// WeatherMsg carries a fresh weather observation.
type WeatherMsg struct {
	Obs weather.Observation
	Err error
}

// weatherTickMsg triggers the next scheduled weather refresh.
type weatherTickMsg struct{}

// unreadCountMsg carries the number of unread reminders.
type unreadCountMsg struct {
	count int
}

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewCatalog
	ViewDetail
	ViewSettings
	ViewAdvice
	ViewHelp
	ViewCommand
)

// conditionHolder shares the latest weather condition between the UI
// loop and the garden service's derivation callback.
type conditionHolder struct {
	mu   sync.RWMutex
	cond weather.Condition
}

func (h *conditionHolder) get() weather.Condition {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cond
}

func (h *conditionHolder) set(c weather.Condition) {
	h.mu.Lock()
	h.cond = c
	h.mu.Unlock()
}

// translatorHolder shares the active translator with the reminder
// scheduler goroutine, which resolves its message at fire time.
type translatorHolder struct {
	mu sync.RWMutex
	tr *i18n.Translator
}

func (h *translatorHolder) get() *i18n.Translator {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tr
}

func (h *translatorHolder) set(tr *i18n.Translator) {
	h.mu.Lock()
	h.tr = tr
	h.mu.Unlock()
}

// reminderMessage builds the scheduler's message callback. It reads the
// holder on every call so a language change reaches reminders fired
// later the same day.
func reminderMessage(h *translatorHolder) func() string {
	return func() string {
		return h.get().T("remind.careDue", "Your plants need care today")
	}
}

// Model is the root Bubble Tea model that manages view routing,
// layout, and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        store.Store
	cfg          *model.AppConfig
	garden       *garden.Service
	weather      weather.Provider
	cond         *conditionHolder
	tr           *i18n.Translator
	trHold       *translatorHolder
	keys         *keys.KeyMap

	dashboard    dashboard.Model
	plantList    plantlist.Model
	detail       detail.Model
	settingsView settingsview.Model
	adviceView   adviceview.Model
	helpView     helpview.Model
	commandView  command.Model

	scheduler *remind.Scheduler

	obs         *weather.Observation
	ready       bool
	unreadCount int
	statusMsg   string
}

// New creates the root application model.
func New(s store.Store, cfg *model.AppConfig) Model {
	k := keys.DefaultKeyMap()
	cond := &conditionHolder{cond: weather.ConditionTemperate}

	g := garden.New(s, catalog.Static{}, care.NewEngine(care.DefaultPolicy()), cond.get)
	tr := i18n.New(loadLanguage(s, cfg.Display.Language))
	trHold := &translatorHolder{tr: tr}
	advisor := loadAdvisor(cfg)
	wc := weather.NewClient(cfg.Weather.Latitude, cfg.Weather.Longitude)
	theme.Apply(loadTheme(s, cfg.Display.Theme))

	scheduler := remind.New(s,
		reminderSettings(s),
		pendingCount(g),
		reminderMessage(trHold),
	)

	return Model{
		currentView:  ViewDashboard,
		store:        s,
		cfg:          cfg,
		garden:       g,
		weather:      wc,
		cond:         cond,
		tr:           tr,
		trHold:       trHold,
		keys:         k,
		dashboard:    dashboard.New(g, tr, k, 80, 24),
		plantList:    plantlist.New(g, tr, k, 80, 24),
		detail:       detail.New(g, tr, k, 80, 24),
		settingsView: settingsview.New(s, tr, k, 80, 24),
		adviceView:   adviceview.New(advisor, tr, k, 80, 24),
		helpView:     helpview.New(k, 80, 24),
		commandView:  command.New(80, 24),
		scheduler:    scheduler,
	}
}

// loadAdvisor attempts to create the advice client by loading the API
// key from the environment variable or system keyring. Returns nil if
// no key is available.
func loadAdvisor(cfg *model.AppConfig) *adviceservice.Advisor {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		var err error
		apiKey, err = credential.Get(credential.KeyGeminiAPI)
		if err != nil || apiKey == "" {
			return nil
		}
	}

	advisor, err := adviceservice.New(apiKey, cfg.AI.Model)
	if err != nil {
		return nil
	}
	return advisor
}

// loadLanguage reads the stored language preference, falling back to
// the config file default.
func loadLanguage(s store.Store, fallback string) string {
	lang, err := s.GetSetting(context.Background(), store.SettingLanguage)
	if err != nil || lang == "" {
		return fallback
	}
	return lang
}

// loadTheme reads the stored theme preference, falling back to the
// config file default.
func loadTheme(s store.Store, fallback string) string {
	name, err := s.GetSetting(context.Background(), store.SettingTheme)
	if err != nil || name == "" {
		if fallback == "" {
			return "dark"
		}
		return fallback
	}
	return name
}

// reminderSettings adapts the settings store to the scheduler.
func reminderSettings(s store.Store) remind.Settings {
	return func(ctx context.Context) (bool, string) {
		on, err := s.GetSetting(ctx, store.SettingNotificationsOn)
		if err != nil || on == "false" || on == "0" {
			return false, ""
		}
		t, err := s.GetSetting(ctx, store.SettingNotificationTime)
		if err != nil || t == "" {
			t = "08:00"
		}
		return true, t
	}
}

// pendingCount adapts the garden service to the scheduler's pending
// query: the number of plants with at least one action due.
func pendingCount(g *garden.Service) remind.PendingFunc {
	return func(ctx context.Context) (int, error) {
		actions, err := g.TodaysActions(ctx)
		if err != nil {
			return 0, err
		}
		n := 0
		for _, acts := range actions {
			if len(acts) > 0 {
				n++
			}
		}
		return n, nil
	}
}

// Init loads the dashboard, fetches the weather, and starts the
// reminder scheduler.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashboard.Init(),
		m.fetchWeather(),
		m.scheduler.Start(),
		m.fetchUnreadCount(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.dashboard.SetSize(contentWidth, contentHeight)
		m.plantList.SetSize(contentWidth, contentHeight)
		m.detail.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		m.adviceView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case WeatherMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("weather unavailable: %v", msg.Err)
			return m, m.scheduleWeatherTick()
		}
		m.statusMsg = ""
		obs := msg.Obs
		m.obs = &obs
		m.cond.set(obs.Condition)
		m.dashboard.SetObservation(&obs)
		// Re-derive actions under the new condition.
		return m, tea.Batch(m.dashboard.LoadData(), m.scheduleWeatherTick())

	case weatherTickMsg:
		return m, m.fetchWeather()

	case remind.ReminderMsg:
		m.statusMsg = msg.Reminder.Message
		return m, tea.Batch(m.fetchUnreadCount(), m.scheduler.WaitForNext())

	case unreadCountMsg:
		m.unreadCount = msg.count
		return m, nil

	case dashboard.DataLoadedMsg:
		// Deliver regardless of the active view; reloads are often
		// triggered from elsewhere (weather refresh, palette commands).
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case plantlist.ItemsLoadedMsg:
		var cmd tea.Cmd
		m.plantList, cmd = m.plantList.Update(msg)
		return m, cmd

	case dashboard.SelectedPlantMsg:
		return m.openDetail(msg.PlantID)

	case plantlist.SelectedPlantMsg:
		return m.openDetail(msg.PlantID)

	case dashboard.ActionCompletedMsg:
		// Let the dashboard reload, then refresh the unread count since
		// completing care can clear the day's pending reminder state.
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, tea.Batch(cmd, m.fetchUnreadCount())

	case plantlist.MembershipChangedMsg:
		var cmd tea.Cmd
		m.plantList, cmd = m.plantList.Update(msg)
		return m, tea.Batch(cmd, m.dashboard.LoadData())

	case detail.MembershipChangedMsg:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, tea.Batch(cmd, m.dashboard.LoadData(), m.plantList.LoadItems())

	case detail.BackMsg:
		m.currentView = m.previousView
		return m, nil

	case settingsview.DoneMsg:
		m.currentView = ViewDashboard
		return m, m.dashboard.LoadData()

	case settingsview.ChangedMsg:
		return m.applySettingChange(msg)

	case settingsview.RefreshWeatherMsg:
		return m, m.fetchWeather()

	case settingsview.ResetDoneMsg:
		// All garden data is gone; rebuild every data-bearing view.
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, tea.Batch(cmd, m.dashboard.LoadData(), m.plantList.LoadItems())

	case adviceview.CloseMsg:
		m.currentView = m.previousView
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		cmd := m.executeCommand(string(msg))
		return m, cmd

	case commandResultMsg:
		m.statusMsg = msg.text
		return m, tea.Batch(m.dashboard.LoadData(), m.plantList.LoadItems())

	case tea.KeyMsg:
		if newModel, cmd, handled := m.handleGlobalKeys(msg); handled {
			return newModel, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that apply regardless of the current
// view. Views with text input (command palette, settings forms,
// catalog search) only see ctrl+c.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		m.scheduler.Stop()
		return m, tea.Quit, true
	}

	if m.typingView() {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.currentView == ViewDashboard {
			m.scheduler.Stop()
			return m, tea.Quit, true
		}
		return m, nil, false

	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m, m.commandView.Focus(), true

	case key.Matches(msg, m.keys.Dashboard):
		m.currentView = ViewDashboard
		return m, m.dashboard.LoadData(), true

	case key.Matches(msg, m.keys.Catalog):
		m.currentView = ViewCatalog
		return m, m.plantList.LoadItems(), true

	case key.Matches(msg, m.keys.Settings):
		m.previousView = m.currentView
		m.currentView = ViewSettings
		return m, m.settingsView.Init(), true

	case key.Matches(msg, m.keys.Advice):
		m.previousView = m.currentView
		m.currentView = ViewAdvice
		if m.obs != nil {
			return m, m.adviceView.Fetch(*m.obs), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Refresh):
		if m.currentView == ViewAdvice && m.obs != nil {
			return m, m.adviceView.Fetch(*m.obs), true
		}
		return m, m.fetchWeather(), true
	}

	return m, nil, false
}

// typingView reports whether the active view owns free-form text
// input and must receive printable keys untouched.
func (m Model) typingView() bool {
	switch m.currentView {
	case ViewCommand, ViewSettings:
		return true
	case ViewCatalog:
		return m.plantList.Searching()
	}
	return false
}

// openDetail switches to the detail view for the given plant.
func (m Model) openDetail(plantID string) (tea.Model, tea.Cmd) {
	m.previousView = m.currentView
	m.currentView = ViewDetail
	m.detail.SetLoading(true)
	return m, m.detail.Load(plantID)
}

// applySettingChange reacts to a persisted preference update.
func (m Model) applySettingChange(msg settingsview.ChangedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.settingsView, cmd = m.settingsView.Update(msg)

	switch msg.Key {
	case store.SettingLanguage:
		m.tr = i18n.New(msg.Value)
		m.trHold.set(m.tr)
		m.dashboard.SetTranslator(m.tr)
		m.plantList.SetTranslator(m.tr)
		m.detail.SetTranslator(m.tr)
		m.settingsView.SetTranslator(m.tr)
		m.adviceView.SetTranslator(m.tr)
		return m, tea.Batch(cmd, m.dashboard.LoadData(), m.plantList.LoadItems())

	case store.SettingTheme:
		m.cfg.Display.Theme = msg.Value
		theme.Apply(msg.Value)
	}

	return m, cmd
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewCatalog:
		m.plantList, cmd = m.plantList.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case ViewAdvice:
		m.adviceView, cmd = m.adviceView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	headerTitle := "Plant Reminder"
	if m.unreadCount > 0 {
		headerTitle = fmt.Sprintf("Plant Reminder [%d]", m.unreadCount)
	}
	header := m.layout.RenderHeader(headerTitle, m.weatherStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboard.View()
	case ViewCatalog:
		return m.plantList.View()
	case ViewDetail:
		return m.detail.View()
	case ViewSettings:
		return m.settingsView.View()
	case ViewAdvice:
		return m.adviceView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

// weatherStatus returns a short header string for the current weather.
func (m Model) weatherStatus() string {
	if m.obs == nil {
		return "fetching weather"
	}
	return fmt.Sprintf("%s %.0f°C",
		m.tr.ConditionLabel(m.obs.Condition), m.obs.TemperatureC)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusMsg != "" && m.currentView == ViewDashboard {
		return m.statusMsg
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return ": close command | enter execute | esc back"
	case ViewDetail:
		return "esc back | a add/remove | j/k scroll"
	case ViewCatalog:
		return "/ search | a add/remove | enter open | 1 dashboard"
	case ViewSettings:
		return "enter change | j/k move | esc back"
	case ViewAdvice:
		return "r refresh advice | esc back"
	default:
		return "q quit | ? help | 2 catalog | 3 settings | 4 advice | r weather"
	}
}

// fetchWeather returns a command that requests a fresh observation.
func (m Model) fetchWeather() tea.Cmd {
	provider := m.weather
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		obs, err := provider.Current(ctx)
		return WeatherMsg{Obs: obs, Err: err}
	}
}

// scheduleWeatherTick queues the next periodic weather refresh.
func (m Model) scheduleWeatherTick() tea.Cmd {
	interval := time.Duration(m.cfg.Weather.RefreshIntervalMin) * time.Minute
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return weatherTickMsg{}
	})
}

// fetchUnreadCount returns a command that counts unread reminders.
func (m Model) fetchUnreadCount() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		reminders, err := s.UnreadReminders(context.Background())
		if err != nil {
			return unreadCountMsg{count: 0}
		}
		return unreadCountMsg{count: len(reminders)}
	}
}
