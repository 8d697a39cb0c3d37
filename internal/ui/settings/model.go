// Package settings is the preferences view: care reminders, reminder
// time, theme, language, the AI key, and the reset-data action.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/plant-reminder/internal/credential"
	"github.com/nhle/plant-reminder/internal/i18n"
	"github.com/nhle/plant-reminder/internal/keys"
	"github.com/nhle/plant-reminder/internal/store"
	"github.com/nhle/plant-reminder/internal/theme"
)

// SettingsMode represents the current state of the settings view.
type SettingsMode int

const (
	ModeList         SettingsMode = iota // Settings overview
	ModeFormTime                         // Reminder time input
	ModeFormKey                          // Gemini API key input
	ModeConfirmReset                     // Confirm data reset
)

// Rows of the settings list, in display order.
const (
	rowNotifications = iota
	rowReminderTime
	rowTheme
	rowLanguage
	rowAPIKey
	rowRefreshWeather
	rowReset
	rowCount
)

// DoneMsg signals the settings view should close.
type DoneMsg struct{}

// ChangedMsg signals a preference was updated. The parent re-reads the
// values it cares about (theme, language, reminder schedule).
type ChangedMsg struct {
	Key   string
	Value string
}

// RefreshWeatherMsg asks the parent to re-fetch the weather now.
type RefreshWeatherMsg struct{}

// ResetDoneMsg signals all app data was wiped.
type ResetDoneMsg struct {
	Err error
}

// loadedMsg carries the current setting values from the store.
type loadedMsg struct {
	notificationsOn bool
	reminderTime    string
	theme           string
	language        string
	hasAPIKey       bool
	err             error
}

// savedMsg is sent after a setting was persisted.
type savedMsg struct {
	key   string
	value string
	err   error
}

// Model is the Bubble Tea model for the settings view.
type Model struct {
	mode        SettingsMode
	store       store.Store
	tr          *i18n.Translator
	keys        *keys.KeyMap
	selectedIdx int

	notificationsOn bool
	reminderTime    string
	theme           string
	language        string
	hasAPIKey       bool

	// Huh forms (huh binds to the form* fields)
	timeForm  *huh.Form
	keyForm   *huh.Form
	resetForm *huh.Form

	formTime     string
	formKey      string
	resetConfirm bool

	statusMsg     string
	width, height int
}

// New creates a new settings view model.
func New(s store.Store, tr *i18n.Translator, k *keys.KeyMap, width, height int) Model {
	return Model{
		mode:   ModeList,
		store:  s,
		tr:     tr,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init loads settings from the store on first render.
func (m Model) Init() tea.Cmd {
	return m.loadSettings()
}

// Update handles messages and dispatches based on current mode.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error loading settings: %v", msg.err)
			return m, nil
		}
		m.notificationsOn = msg.notificationsOn
		m.reminderTime = msg.reminderTime
		m.theme = msg.theme
		m.language = msg.language
		m.hasAPIKey = msg.hasAPIKey
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error saving setting: %v", msg.err)
			m.mode = ModeList
			return m, nil
		}
		m.statusMsg = ""
		m.mode = ModeList
		return m, tea.Batch(
			m.loadSettings(),
			func() tea.Msg { return ChangedMsg{Key: msg.key, Value: msg.value} },
		)

	case ResetDoneMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("Error resetting data: %v", msg.Err)
		} else {
			m.statusMsg = "All data cleared"
		}
		m.mode = ModeList
		return m, m.loadSettings()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateActiveForm(msg)
}

// handleKeyMsg processes key messages based on the current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case ModeList:
		return m.handleListKeys(msg)
	case ModeFormTime:
		return m.updateTimeForm(msg)
	case ModeFormKey:
		return m.updateKeyForm(msg)
	case ModeConfirmReset:
		return m.updateConfirmReset(msg)
	}
	return m, nil
}

// handleListKeys processes key events in the settings list.
func (m Model) handleListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return DoneMsg{} }

	case key.Matches(msg, m.keys.Down):
		m.selectedIdx = (m.selectedIdx + 1) % rowCount
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.selectedIdx--
		if m.selectedIdx < 0 {
			m.selectedIdx = rowCount - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Toggle):
		return m.activateRow()
	}
	return m, nil
}

// activateRow toggles or opens the editor for the selected setting.
func (m Model) activateRow() (Model, tea.Cmd) {
	switch m.selectedIdx {
	case rowNotifications:
		next := "false"
		if !m.notificationsOn {
			next = "true"
		}
		return m, m.saveSetting(store.SettingNotificationsOn, next)

	case rowReminderTime:
		m.formTime = m.reminderTime
		m.timeForm = m.buildTimeForm()
		m.mode = ModeFormTime
		return m, m.timeForm.Init()

	case rowTheme:
		next := "dark"
		if m.theme == "dark" {
			next = "light"
		}
		return m, m.saveSetting(store.SettingTheme, next)

	case rowLanguage:
		next := "en"
		if m.language == "en" {
			next = "id"
		}
		return m, m.saveSetting(store.SettingLanguage, next)

	case rowAPIKey:
		m.formKey = ""
		m.keyForm = m.buildKeyForm()
		m.mode = ModeFormKey
		return m, m.keyForm.Init()

	case rowRefreshWeather:
		m.statusMsg = "Refreshing weather data..."
		return m, func() tea.Msg { return RefreshWeatherMsg{} }

	case rowReset:
		m.resetConfirm = false
		m.resetForm = m.buildResetConfirmForm()
		m.mode = ModeConfirmReset
		return m, m.resetForm.Init()
	}
	return m, nil
}

// updateActiveForm dispatches non-key messages to the active form.
func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case ModeFormTime:
		return m.updateTimeForm(msg)
	case ModeFormKey:
		return m.updateKeyForm(msg)
	case ModeConfirmReset:
		return m.updateConfirmReset(msg)
	}
	return m, nil
}

// --- Reminder time form ---

func (m *Model) buildTimeForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(m.tr.T("settings.reminderTime", "Reminder Time")).
				Description("24-hour clock, HH:MM").
				Placeholder("08:00").
				Value(&m.formTime).
				Validate(validateClockTime),
		),
	).WithWidth(m.formWidth())
}

func (m Model) updateTimeForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.timeForm == nil {
		return m, nil
	}

	mdl, cmd := m.timeForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.timeForm = f
	}

	if m.timeForm.State == huh.StateCompleted {
		return m, m.saveSetting(store.SettingNotificationTime, m.formTime)
	}
	if m.timeForm.State == huh.StateAborted {
		m.mode = ModeList
		return m, nil
	}

	return m, cmd
}

// --- API key form ---

func (m *Model) buildKeyForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API Key").
				Description("Stored in the system keyring, never on disk").
				EchoMode(huh.EchoModePassword).
				Value(&m.formKey).
				Validate(validateRequired("API key")),
		),
	).WithWidth(m.formWidth())
}

func (m Model) updateKeyForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.keyForm == nil {
		return m, nil
	}

	mdl, cmd := m.keyForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.keyForm = f
	}

	if m.keyForm.State == huh.StateCompleted {
		return m.saveAPIKey()
	}
	if m.keyForm.State == huh.StateAborted {
		m.mode = ModeList
		return m, nil
	}

	return m, cmd
}

func (m Model) saveAPIKey() (Model, tea.Cmd) {
	if err := credential.Set(credential.KeyGeminiAPI, m.formKey); err != nil {
		m.statusMsg = fmt.Sprintf("Error saving credential: %v", err)
		m.mode = ModeList
		return m, nil
	}
	m.formKey = ""
	m.hasAPIKey = true
	m.statusMsg = "API key saved"
	m.mode = ModeList
	return m, func() tea.Msg {
		return ChangedMsg{Key: "api-key", Value: ""}
	}
}

// --- Reset confirmation ---

func (m *Model) buildResetConfirmForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(m.tr.T("settings.resetData", "Reset App Data")).
				Description(m.tr.T("settings.resetConfirm",
					"Delete all plants, history and settings?")).
				Affirmative("Yes, delete everything").
				Negative("Cancel").
				Value(&m.resetConfirm),
		),
	).WithWidth(m.formWidth())
}

func (m Model) updateConfirmReset(msg tea.Msg) (Model, tea.Cmd) {
	if m.resetForm == nil {
		return m, nil
	}

	mdl, cmd := m.resetForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.resetForm = f
	}

	if m.resetForm.State == huh.StateCompleted {
		if m.resetConfirm {
			return m, m.resetAll()
		}
		m.mode = ModeList
		return m, nil
	}
	if m.resetForm.State == huh.StateAborted {
		m.mode = ModeList
		return m, nil
	}

	return m, cmd
}

// --- View ---

// View renders the settings UI based on the current mode.
func (m Model) View() string {
	switch m.mode {
	case ModeList:
		return m.viewList()
	case ModeFormTime:
		return m.viewForm(m.timeForm)
	case ModeFormKey:
		return m.viewForm(m.keyForm)
	case ModeConfirmReset:
		return m.viewForm(m.resetForm)
	default:
		return ""
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(m.tr.T("settings.title", "Settings")))
	b.WriteString("\n\n")

	onLabel := m.tr.T("settings.on", "On")
	offLabel := m.tr.T("settings.off", "Off")

	notif := offLabel
	if m.notificationsOn {
		notif = onLabel
	}
	apiKey := "not set"
	if m.hasAPIKey {
		apiKey = "configured"
	}

	rows := []struct {
		label string
		value string
	}{
		{m.tr.T("settings.notifications", "Care Reminders"), notif},
		{m.tr.T("settings.reminderTime", "Reminder Time"), m.reminderTime},
		{m.tr.T("settings.darkMode", "Dark Mode"), m.theme},
		{m.tr.T("settings.language", "Language"), languageName(m.language)},
		{"Gemini API Key", apiKey},
		{m.tr.T("settings.refreshWeather", "Refresh Weather Data"), ""},
		{m.tr.T("settings.resetData", "Reset App Data"), ""},
	}

	for i, r := range rows {
		line := fmt.Sprintf("%-22s %s", r.label, r.value)
		if i == m.selectedIdx {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		statusStyle := lipgloss.NewStyle().
			Foreground(theme.ColorYellow).
			Italic(true)
		b.WriteString(statusStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	hintStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	b.WriteString(hintStyle.Render("enter change | j/k move | esc back"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Height(m.height).
		Render(b.String())
}

func (m Model) viewForm(f *huh.Form) string {
	if f == nil {
		return ""
	}
	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Height(m.height).
		Render(f.View())
}

// --- Helpers ---

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTranslator swaps the display language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

// loadSettings returns a command that reads all settings from the store.
func (m Model) loadSettings() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		var out loadedMsg

		v, err := s.GetSetting(ctx, store.SettingNotificationsOn)
		if err != nil {
			return loadedMsg{err: err}
		}
		out.notificationsOn = v != "false" && v != "0"

		if out.reminderTime, err = s.GetSetting(ctx, store.SettingNotificationTime); err != nil {
			return loadedMsg{err: err}
		}
		if out.reminderTime == "" {
			out.reminderTime = "08:00"
		}

		if out.theme, err = s.GetSetting(ctx, store.SettingTheme); err != nil {
			return loadedMsg{err: err}
		}
		if out.theme == "" {
			out.theme = "dark"
		}

		if out.language, err = s.GetSetting(ctx, store.SettingLanguage); err != nil {
			return loadedMsg{err: err}
		}
		if out.language == "" {
			out.language = "en"
		}

		_, keyErr := credential.Get(credential.KeyGeminiAPI)
		out.hasAPIKey = keyErr == nil

		return out
	}
}

// saveSetting returns a command that persists one setting.
func (m Model) saveSetting(key, value string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.SetSetting(context.Background(), key, value)
		return savedMsg{key: key, value: value, err: err}
	}
}

// resetAll returns a command that wipes all app data.
func (m Model) resetAll() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return ResetDoneMsg{Err: s.ResetAll(context.Background())}
	}
}

func languageName(code string) string {
	switch code {
	case "id":
		return "Bahasa Indonesia"
	default:
		return "English"
	}
}

// --- Validators ---

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// validateClockTime accepts 24-hour HH:MM.
func validateClockTime(s string) error {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return fmt.Errorf("time must be HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return fmt.Errorf("hour must be 00-23")
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return fmt.Errorf("minute must be 00-59")
	}
	return nil
}
