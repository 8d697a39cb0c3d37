// Package advice shows AI-generated daily care recommendations based
// on the current weather observation.
package advice

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	adviceservice "github.com/nhle/plant-reminder/internal/advice"
	"github.com/nhle/plant-reminder/internal/i18n"
	"github.com/nhle/plant-reminder/internal/keys"
	"github.com/nhle/plant-reminder/internal/theme"
	"github.com/nhle/plant-reminder/internal/weather"
)

// CloseMsg signals the parent to close the advice view.
type CloseMsg struct{}

// AdviceMsg carries the generated recommendation text.
type AdviceMsg struct {
	Text string
	Err  error
}

// Model is the daily advice Bubble Tea model.
type Model struct {
	advisor  *adviceservice.Advisor
	viewport viewport.Model
	spinner  spinner.Model
	tr       *i18n.Translator
	keys     *keys.KeyMap
	text     string
	err      error
	loading  bool
	width    int
	height   int
	noAPIKey bool
}

// New creates a new advice view model. If advisor is nil (no API key),
// the view displays a configuration prompt instead.
func New(
	advisor *adviceservice.Advisor,
	tr *i18n.Translator,
	k *keys.KeyMap,
	width, height int,
) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(width-4, height-6)
	vp.Style = lipgloss.NewStyle()

	return Model{
		advisor:  advisor,
		viewport: vp,
		spinner:  sp,
		tr:       tr,
		keys:     k,
		width:    width,
		height:   height,
		noAPIKey: advisor == nil,
	}
}

// Init returns the initial command for the advice view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Fetch requests fresh advice for the given observation.
func (m *Model) Fetch(obs weather.Observation) tea.Cmd {
	if m.noAPIKey {
		return nil
	}
	m.loading = true
	m.err = nil

	advisor := m.advisor
	lang := m.tr.Lang()
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			text, err := advisor.DailyAdvice(context.Background(), obs, lang)
			return AdviceMsg{Text: text, Err: err}
		},
	)
}

// Update handles messages for the advice view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AdviceMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.text = msg.Text
			m.viewport.SetContent(m.renderAdvice())
			m.viewport.GotoTop()
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the advice view.
func (m Model) View() string {
	if m.noAPIKey {
		return m.renderNoAPIKey()
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render(
		"🌦 " + m.tr.T("advice.title", "Daily Advice"),
	)

	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " " +
			m.tr.T("advice.loading", "Asking the garden assistant...")
	case m.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(theme.ColorRed)
		body = errStyle.Render("Error: "+m.err.Error()) + "\n\n" +
			theme.MutedStyle.Render("r retry | esc back")
	case m.text == "":
		body = theme.MutedStyle.Render("Press 'r' to fetch today's advice.")
	default:
		body = m.viewport.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(content)
}

func (m Model) renderAdvice() string {
	return lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Width(min(m.width-8, 90)).
		Render(strings.TrimSpace(m.text))
}

// renderNoAPIKey shows a message when the API key is not configured.
func (m Model) renderNoAPIKey() string {
	style := lipgloss.NewStyle().
		Width(m.width - 4).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	msg := m.tr.T("advice.noKey",
		"No API key configured. Store one with the 'key' command.") +
		"\n\nPress Esc to go back."

	return theme.PanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(style.Render(msg))
}

// SetTranslator swaps the display language. Cached advice is kept; the
// next fetch uses the new language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
}

// SetSize updates the advice view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	vpHeight := height - 6
	if vpHeight < 4 {
		vpHeight = 4
	}
	m.viewport.Height = vpHeight
	if m.text != "" {
		m.viewport.SetContent(m.renderAdvice())
	}
}
