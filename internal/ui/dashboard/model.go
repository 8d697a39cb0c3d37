// Package dashboard renders today's care view: the weather card and a
// card per plant with its pending actions.
package dashboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/plant-reminder/internal/garden"
	"github.com/nhle/plant-reminder/internal/i18n"
	"github.com/nhle/plant-reminder/internal/keys"
	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/theme"
	"github.com/nhle/plant-reminder/internal/weather"
)

// DataLoadedMsg carries the garden state for today's view.
type DataLoadedMsg struct {
	Plants  []model.UserPlant
	Actions map[string][]model.CareAction
	Err     error
}

// SelectedPlantMsg is sent when the user opens a plant's detail page.
type SelectedPlantMsg struct {
	PlantID string
}

// ActionCompletedMsg is sent after an action completion was recorded.
type ActionCompletedMsg struct {
	PlantID  string
	ActionID string
	Err      error
}

// row is one navigable line: a plant header or a derived action.
type row struct {
	plantID string
	action  *model.CareAction
}

// Model is the dashboard view component.
type Model struct {
	garden *garden.Service
	tr     *i18n.Translator
	keys   *keys.KeyMap

	plants   []model.UserPlant
	actions  map[string][]model.CareAction
	expanded map[string]bool
	rows     []row
	cursor   int

	obs    *weather.Observation
	width  int
	height int
}

// New creates a dashboard model.
func New(g *garden.Service, tr *i18n.Translator, k *keys.KeyMap, width, height int) Model {
	return Model{
		garden:   g,
		tr:       tr,
		keys:     k,
		expanded: make(map[string]bool),
		width:    width,
		height:   height,
	}
}

// Init loads the initial garden state.
func (m Model) Init() tea.Cmd {
	return m.LoadData()
}

// LoadData returns a command that fetches the garden and today's
// derived actions.
func (m Model) LoadData() tea.Cmd {
	g := m.garden
	return func() tea.Msg {
		ctx := context.Background()
		plants, err := g.ListUserPlants(ctx)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		actions, err := g.TodaysActions(ctx)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		return DataLoadedMsg{Plants: plants, Actions: actions}
	}
}

// completeAction records the completion and reloads.
func (m Model) completeAction(plantID, actionID string) tea.Cmd {
	g := m.garden
	return func() tea.Msg {
		err := g.MarkActionComplete(context.Background(), plantID, actionID)
		return ActionCompletedMsg{PlantID: plantID, ActionID: actionID, Err: err}
	}
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DataLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.plants = msg.Plants
		m.actions = msg.Actions
		m.rebuildRows()
		return m, nil

	case ActionCompletedMsg:
		if msg.Err != nil {
			return m, nil
		}
		return m, m.LoadData()

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Expand):
		if r, ok := m.currentRow(); ok {
			m.expanded[r.plantID] = !m.expanded[r.plantID]
			m.rebuildRows()
		}
	case key.Matches(msg, m.keys.Select):
		if r, ok := m.currentRow(); ok && r.action == nil {
			id := r.plantID
			return m, func() tea.Msg { return SelectedPlantMsg{PlantID: id} }
		}
	case key.Matches(msg, m.keys.Complete):
		if r, ok := m.currentRow(); ok && r.action != nil {
			return m, m.completeAction(r.plantID, r.action.ID)
		}
	}
	return m, nil
}

func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// rebuildRows flattens plants and their expanded actions into the
// navigable row list. Plants with nothing due still appear so the
// whole garden is visible at a glance.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	for _, up := range m.plants {
		m.rows = append(m.rows, row{plantID: up.ID})
		if !m.expanded[up.ID] {
			continue
		}
		acts := m.actions[up.ID]
		for i := range acts {
			m.rows = append(m.rows, row{plantID: up.ID, action: &acts[i]})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetObservation updates the weather card contents.
func (m *Model) SetObservation(obs *weather.Observation) {
	m.obs = obs
}

// SetTranslator swaps the display language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the dashboard.
func (m Model) View() string {
	sections := []string{m.weatherCard()}

	header := theme.HeaderStyle.Render(
		m.tr.T("dashboard.todaysCare", "Today's Care"))
	sections = append(sections, "", header)

	if len(m.plants) == 0 {
		sections = append(sections,
			theme.MutedStyle.Render(m.tr.T("dashboard.noPlants",
				"You haven't added any plants yet.")))
	} else if m.nothingDue() {
		sections = append(sections,
			theme.MutedStyle.Render(m.tr.T("dashboard.allCaredFor",
				"All plants are cared for!")),
			theme.HelpStyle.Render(m.tr.T("dashboard.checkTomorrow",
				"Check back tomorrow for new care tasks.")))
	}

	for i, r := range m.rows {
		sections = append(sections, m.renderRow(r, i == m.cursor))
	}

	if m.obs != nil {
		sections = append(sections, "",
			theme.HeaderStyle.Render(m.tr.T("dashboard.weatherTips", "Weather Tips")),
			theme.MutedStyle.Render(m.tr.ConditionTip(m.obs.Condition)))
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) nothingDue() bool {
	for _, acts := range m.actions {
		if len(acts) > 0 {
			return false
		}
	}
	return true
}

// weatherCard renders the current conditions summary.
func (m Model) weatherCard() string {
	if m.obs == nil {
		return theme.CardStyle.Render(theme.MutedStyle.Render("weather unavailable"))
	}
	line := fmt.Sprintf("%s  %.1f°C  %s %.0f km/h",
		theme.ConditionStyle(m.obs.Condition).Render(
			m.tr.ConditionLabel(m.obs.Condition)),
		m.obs.TemperatureC,
		theme.MutedStyle.Render("wind"),
		m.obs.WindSpeedKmh,
	)
	return theme.CardStyle.Width(m.width - 2).Render(line)
}

// renderRow renders one plant header or action line.
func (m Model) renderRow(r row, selected bool) string {
	style := theme.ListItemStyle
	if selected {
		style = theme.SelectedItemStyle
	}

	if r.action == nil {
		plant, ok := m.garden.GetPlantByID(r.plantID)
		if !ok {
			return ""
		}
		name := m.tr.TranslatePlant(plant).Name
		n := len(m.actions[r.plantID])
		suffix := theme.MutedStyle.Render(fmt.Sprintf("%d due", n))
		if n == 0 {
			suffix = theme.MutedStyle.Render("✓")
		}
		return style.Render(fmt.Sprintf("🌿 %s  %s", name, suffix))
	}

	a := *r.action
	return style.Render(fmt.Sprintf("   %s %s · %s",
		theme.PriorityStyle(a.Priority).Render("["+string(a.Priority)+"]"),
		m.tr.ActionName(a),
		theme.MutedStyle.Render(m.tr.ActionDescription(a)),
	))
}
