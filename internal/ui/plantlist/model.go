// Package plantlist is the catalog browser: every species with its
// adoption state, searchable, with add/remove from the garden.
package plantlist

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/plant-reminder/internal/garden"
	"github.com/nhle/plant-reminder/internal/i18n"
	"github.com/nhle/plant-reminder/internal/keys"
	"github.com/nhle/plant-reminder/internal/theme"
)

// ItemsLoadedMsg is sent when the catalog view has been (re)built.
type ItemsLoadedMsg struct {
	Items []PlantItem
	Err   error
}

// SelectedPlantMsg is sent when a user opens a plant's detail page.
type SelectedPlantMsg struct {
	PlantID string
}

// MembershipChangedMsg is sent after an add/remove completed.
type MembershipChangedMsg struct {
	PlantID string
	Added   bool
	Err     error
}

// Model is the catalog browser view component.
type Model struct {
	list        list.Model
	garden      *garden.Service
	tr          *i18n.Translator
	keys        *keys.KeyMap
	searchMode  bool
	searchInput textinput.Model
	all         []PlantItem
	width       int
	height      int
}

// New creates a catalog browser model.
func New(g *garden.Service, tr *i18n.Translator, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Plant Catalog"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search plants..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		garden:      g,
		tr:          tr,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// Init loads the catalog.
func (m Model) Init() tea.Cmd {
	return m.LoadItems()
}

// LoadItems rebuilds the catalog items with current adoption state
// and translations.
func (m Model) LoadItems() tea.Cmd {
	g := m.garden
	tr := m.tr
	return func() tea.Msg {
		owned, err := g.ListUserPlants(context.Background())
		if err != nil {
			return ItemsLoadedMsg{Err: err}
		}
		inGarden := make(map[string]bool, len(owned))
		for _, up := range owned {
			inGarden[up.ID] = true
		}

		var items []PlantItem
		for _, p := range g.ListCatalog() {
			items = append(items, PlantItem{
				Plant:    p,
				Name:     tr.TranslatePlant(p).Name,
				InGarden: inGarden[p.ID],
			})
		}
		return ItemsLoadedMsg{Items: items}
	}
}

// toggleMembership adds or removes the plant under the cursor.
func (m Model) toggleMembership(item PlantItem) tea.Cmd {
	g := m.garden
	return func() tea.Msg {
		ctx := context.Background()
		if item.InGarden {
			err := g.RemovePlant(ctx, item.Plant.ID)
			return MembershipChangedMsg{PlantID: item.Plant.ID, Added: false, Err: err}
		}
		_, err := g.AddPlant(ctx, item.Plant.ID)
		return MembershipChangedMsg{PlantID: item.Plant.ID, Added: true, Err: err}
	}
}

// Update handles messages for the catalog browser.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemsLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.all = msg.Items
		return m, m.applyFilter()

	case MembershipChangedMsg:
		return m, m.LoadItems()

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchMode = false
		m.searchInput.Blur()
		return m, m.applyFilter()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, tea.Batch(cmd, m.applyFilter())
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Select):
		if item, ok := m.list.SelectedItem().(PlantItem); ok {
			return m, func() tea.Msg {
				return SelectedPlantMsg{PlantID: item.Plant.ID}
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.list.SelectedItem().(PlantItem); ok {
			return m, m.toggleMembership(item)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// applyFilter narrows the visible items by the search query.
func (m *Model) applyFilter() tea.Cmd {
	query := strings.ToLower(strings.TrimSpace(m.searchInput.Value()))

	var items []list.Item
	for _, it := range m.all {
		if query == "" ||
			strings.Contains(strings.ToLower(it.FilterValue()), query) {
			items = append(items, it)
		}
	}
	return m.list.SetItems(items)
}

// Searching reports whether the search input currently owns the
// keyboard.
func (m Model) Searching() bool {
	return m.searchMode
}

// SetTranslator swaps the display language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}

// View renders the catalog browser.
func (m Model) View() string {
	if m.searchMode {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.searchInput.View(), m.list.View())
	}
	return m.list.View()
}
