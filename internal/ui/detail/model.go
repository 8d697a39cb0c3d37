// Package detail renders a single plant's full profile: care
// requirements, instructions, garden membership and care history.
package detail

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/plant-reminder/internal/garden"
	"github.com/nhle/plant-reminder/internal/i18n"
	"github.com/nhle/plant-reminder/internal/keys"
	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/theme"
)

// BackMsg signals the parent to navigate back to the previous view.
type BackMsg struct{}

// DetailLoadedMsg carries the loaded plant profile.
type DetailLoadedMsg struct {
	Plant     model.Plant
	UserPlant *model.UserPlant
	Err       error
}

// MembershipChangedMsg is sent after an add/remove completed.
type MembershipChangedMsg struct {
	PlantID string
	Added   bool
	Err     error
}

// Model is the plant detail view component.
type Model struct {
	plant     *model.Plant
	userPlant *model.UserPlant
	viewport  viewport.Model
	garden    *garden.Service
	tr        *i18n.Translator
	keys      *keys.KeyMap
	width     int
	height    int
	loading   bool
}

// New creates a new detail view model.
func New(g *garden.Service, tr *i18n.Translator, k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		garden:   g,
		tr:       tr,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Load fetches the plant profile and, if adopted, its garden record.
func (m Model) Load(plantID string) tea.Cmd {
	g := m.garden
	return func() tea.Msg {
		p, ok := g.GetPlantByID(plantID)
		if !ok {
			return DetailLoadedMsg{Err: garden.ErrNotFound}
		}
		up, err := g.GetUserPlantByID(context.Background(), plantID)
		if err != nil {
			return DetailLoadedMsg{Err: err}
		}
		return DetailLoadedMsg{Plant: p, UserPlant: up}
	}
}

// toggleMembership adds or removes the displayed plant.
func (m Model) toggleMembership() tea.Cmd {
	if m.plant == nil {
		return nil
	}
	g := m.garden
	id := m.plant.ID
	owned := m.userPlant != nil
	return func() tea.Msg {
		ctx := context.Background()
		if owned {
			err := g.RemovePlant(ctx, id)
			return MembershipChangedMsg{PlantID: id, Added: false, Err: err}
		}
		_, err := g.AddPlant(ctx, id)
		return MembershipChangedMsg{PlantID: id, Added: true, Err: err}
	}
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DetailLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			return m, nil
		}
		m.plant = &msg.Plant
		m.userPlant = msg.UserPlant
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
		return m, nil

	case MembershipChangedMsg:
		if msg.Err != nil || m.plant == nil {
			return m, nil
		}
		return m, m.Load(m.plant.ID)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg {
				return BackMsg{}
			}

		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggleMembership()
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.loading {
		loadingStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return loadingStyle.Render(m.tr.T("detail.loading", "Loading plant..."))
	}

	if m.plant == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render(m.tr.T("detail.empty", "No plant selected"))
	}

	return m.viewport.View()
}

// renderContent builds the full profile string for the viewport.
func (m Model) renderContent() string {
	if m.plant == nil {
		return ""
	}

	plant := m.tr.TranslatePlant(*m.plant)
	var sections []string

	// Name line
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sciStyle := lipgloss.NewStyle().Italic(true).Foreground(theme.ColorGray)
	sections = append(sections, lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleStyle.Render("🌿 "+plant.Name),
		"  ",
		sciStyle.Render(plant.ScientificName),
	))

	// Membership badge
	if m.userPlant != nil {
		badge := theme.DoneStyle.Render(
			"🌿 " + m.tr.T("detail.inGarden", "In your garden"),
		)
		added := m.userPlant.DateAdded.Format("2006-01-02")
		sections = append(sections, lipgloss.JoinHorizontal(
			lipgloss.Top, badge, "  ",
			theme.MutedStyle.Render(
				m.tr.T("detail.since", "since")+" "+added,
			),
		))
	} else {
		sections = append(sections, theme.MutedStyle.Render(
			m.tr.T("detail.notInGarden", "Not in your garden. Press 'a' to add."),
		))
	}
	sections = append(sections, "")

	sections = append(sections, plant.Description)
	sections = append(sections, "")

	// Care requirements table
	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	row := func(label, value string) string {
		return fmt.Sprintf("%s %s",
			metaStyle.Render(fmt.Sprintf("%-14s", label+":")),
			valStyle.Render(value))
	}

	sections = append(sections,
		row(m.tr.T("detail.watering", "Watering"),
			m.tr.WateringLabel(plant.WateringFrequency)),
		row(m.tr.T("detail.light", "Light"),
			m.tr.LightLabel(plant.LightPreference)),
		row(m.tr.T("detail.fertilizer", "Fertilizer"), plant.Fertilizer),
		row(m.tr.T("detail.height", "Height"),
			fmt.Sprintf("%d-%d cm", plant.HeightRange.Min, plant.HeightRange.Max)),
		row(m.tr.T("detail.temperature", "Temperature"),
			fmt.Sprintf("%d-%d °C", plant.IdealTemperature.Min, plant.IdealTemperature.Max)),
	)

	// Separator
	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", min(m.width-4, 80)))
	sections = append(sections, "", separator, "")

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sections = append(sections, headerStyle.Render(
		m.tr.T("detail.careInstructions", "Care Instructions"),
	))
	sections = append(sections, plant.CareInstructions)

	// Care history, most recent first
	if m.userPlant != nil && len(m.userPlant.CareHistory) > 0 {
		sections = append(sections, "", separator, "")
		sections = append(sections, headerStyle.Render(fmt.Sprintf(
			"%s (%d)",
			m.tr.T("detail.careHistory", "Care History"),
			len(m.userPlant.CareHistory),
		)))
		sections = append(sections, "")

		entries := make([]model.CareHistoryEntry, len(m.userPlant.CareHistory))
		copy(entries, m.userPlant.CareHistory)
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Day != entries[j].Day {
				return entries[i].Day > entries[j].Day
			}
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		})

		dayStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)
		for _, e := range entries {
			label := m.tr.T("actions."+string(e.Action)+".name", string(e.Action))
			sections = append(sections, fmt.Sprintf(
				"%s  %s",
				dayStyle.Render(e.Day),
				valStyle.Render(label),
			))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// SetTranslator swaps the display language and re-renders.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
	if m.plant != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	if m.plant != nil {
		m.viewport.SetContent(m.renderContent())
	}
}
