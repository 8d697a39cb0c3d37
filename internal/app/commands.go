package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/plant-reminder/internal/credential"
	"github.com/nhle/plant-reminder/internal/garden"
	"github.com/nhle/plant-reminder/internal/model"
)

// commandResultMsg carries the outcome of a palette command.
type commandResultMsg struct {
	text string
}

// executeCommand handles a command string from the command palette.
// Plant arguments are catalog ids ("rose", "snake-plant").
func (m *Model) executeCommand(cmd string) tea.Cmd {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return nil
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "quit", "q":
		m.scheduler.Stop()
		return tea.Quit

	case "refresh", "weather":
		return m.fetchWeather()

	case "dashboard":
		m.currentView = ViewDashboard
		return m.dashboard.LoadData()

	case "catalog", "plants":
		m.currentView = ViewCatalog
		return m.plantList.LoadItems()

	case "settings":
		m.previousView = m.currentView
		m.currentView = ViewSettings
		return m.settingsView.Init()

	case "advice":
		m.previousView = m.currentView
		m.currentView = ViewAdvice
		if m.obs != nil {
			return m.adviceView.Fetch(*m.obs)
		}
		return nil

	case "add":
		if len(args) != 1 {
			return reportResult("usage: add <plant-id>")
		}
		return m.addPlantCmd(args[0])

	case "remove":
		if len(args) != 1 {
			return reportResult("usage: remove <plant-id>")
		}
		return m.removePlantCmd(args[0])

	case "water":
		if len(args) != 1 {
			return reportResult("usage: water <plant-id>")
		}
		return m.completeCmd(args[0], model.ActionWater)

	case "fertilize":
		if len(args) != 1 {
			return reportResult("usage: fertilize <plant-id>")
		}
		return m.completeCmd(args[0], model.ActionFertilize)

	case "key":
		if len(args) != 1 {
			return reportResult("usage: key <gemini-api-key>")
		}
		return storeAPIKeyCmd(args[0])

	default:
		return reportResult(fmt.Sprintf("unknown command %q", verb))
	}
}

func (m Model) addPlantCmd(plantID string) tea.Cmd {
	g := m.garden
	return func() tea.Msg {
		_, err := g.AddPlant(context.Background(), plantID)
		switch {
		case errors.Is(err, garden.ErrNotFound):
			return commandResultMsg{text: fmt.Sprintf("unknown plant %q", plantID)}
		case errors.Is(err, garden.ErrAlreadyExists):
			return commandResultMsg{text: fmt.Sprintf("%s is already in your garden", plantID)}
		case err != nil:
			return commandResultMsg{text: fmt.Sprintf("add failed: %v", err)}
		}
		return commandResultMsg{text: fmt.Sprintf("added %s", plantID)}
	}
}

func (m Model) removePlantCmd(plantID string) tea.Cmd {
	g := m.garden
	return func() tea.Msg {
		err := g.RemovePlant(context.Background(), plantID)
		switch {
		case errors.Is(err, garden.ErrNotFound):
			return commandResultMsg{text: fmt.Sprintf("%s is not in your garden", plantID)}
		case err != nil:
			return commandResultMsg{text: fmt.Sprintf("remove failed: %v", err)}
		}
		return commandResultMsg{text: fmt.Sprintf("removed %s", plantID)}
	}
}

func (m Model) completeCmd(plantID string, kind model.ActionKind) tea.Cmd {
	g := m.garden
	return func() tea.Msg {
		actionID := model.ActionID(kind, time.Now())
		err := g.MarkActionComplete(context.Background(), plantID, actionID)
		switch {
		case errors.Is(err, garden.ErrNotFound):
			return commandResultMsg{text: fmt.Sprintf("%s is not in your garden", plantID)}
		case err != nil:
			return commandResultMsg{text: fmt.Sprintf("complete failed: %v", err)}
		}
		return commandResultMsg{text: fmt.Sprintf("recorded %s for %s", kind, plantID)}
	}
}

func storeAPIKeyCmd(value string) tea.Cmd {
	return func() tea.Msg {
		if err := credential.Set(credential.KeyGeminiAPI, value); err != nil {
			return commandResultMsg{text: fmt.Sprintf("key not saved: %v", err)}
		}
		return commandResultMsg{text: "API key saved; restart to enable advice"}
	}
}

func reportResult(text string) tea.Cmd {
	return func() tea.Msg {
		return commandResultMsg{text: text}
	}
}
