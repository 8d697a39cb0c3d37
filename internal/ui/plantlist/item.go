package plantlist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/theme"
)

// PlantItem wraps a catalog plant so it can be used in a bubbles/list.
// Name holds the localized display name; InGarden marks adoption.
type PlantItem struct {
	Plant    model.Plant
	Name     string
	InGarden bool
}

// FilterValue returns the string used for fuzzy filtering.
func (i PlantItem) FilterValue() string {
	return i.Name + " " + i.Plant.ScientificName
}

// ItemDelegate implements list.ItemDelegate for catalog entries.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single catalog line: adoption marker, name,
// scientific name, and watering tier.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(PlantItem)
	if !ok {
		return
	}

	marker := "  "
	if pi.InGarden {
		marker = theme.MutedStyle.Render("🌿")
	}

	line := fmt.Sprintf("%s %s  %s  %s",
		marker,
		pi.Name,
		theme.MutedStyle.Italic(true).Render(pi.Plant.ScientificName),
		theme.MutedStyle.Render("💧 "+string(pi.Plant.WateringFrequency)),
	)

	style := theme.ListItemStyle
	if index == m.Index() {
		style = theme.SelectedItemStyle
	}
	fmt.Fprint(w, style.Render(line))
}
