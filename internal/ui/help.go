package ui

import (
	"strings"

	"morsel/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, width int) string {
	if mode == model.ModeInsert {
		return renderFormHelp(width)
	}

	switch screen {
	case model.ScreenCountries:
		return renderCountriesHelp(width)
	case model.ScreenDishes:
		return renderDishesHelp(width)
	case model.ScreenRestaurants:
		return renderRestaurantsHelp(width)
	case model.ScreenTimeline:
		return renderTimelineHelp(width)
	case model.ScreenCountryDetail:
		return renderCountryDetailHelp(width)
	case model.ScreenDishDetail, model.ScreenNotFound:
		return renderDetailHelp(width)
	case model.ScreenRestaurantDetail:
		return renderRestaurantDetailHelp(width)
	default:
		return renderDefaultHelp(width)
	}
}

func renderCountriesHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("s", "sort"),
		helpKey("enter", "country dishes"),
		helpKey("1-4", "switch tab"),
		helpKey("?", "help"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderDishesHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("/", "search"),
		helpKey("c/C", "country filter"),
		helpKey("t/T", "tag filter"),
		helpKey("x", "clear filters"),
		helpKey("a", "add dish"),
		helpKey("enter", "details"),
	}
	return renderHelpLine(keys, width)
}

func renderRestaurantsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("c/C", "city filter"),
		helpKey("s", "sort"),
		helpKey("a", "add restaurant"),
		helpKey("enter", "details"),
	}
	return renderHelpLine(keys, width)
}

func renderTimelineHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "details"),
		helpKey("1-4", "switch tab"),
		helpKey("?", "help"),
	}
	return renderHelpLine(keys, width)
}

func renderCountryDetailHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "dish details"),
		helpKey("h/esc", "back"),
	}
	return renderHelpLine(keys, width)
}

func renderDetailHelp(width int) string {
	keys := []string{
		helpKey("h/esc", "back"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderRestaurantDetailHelp(width int) string {
	keys := []string{
		helpKey("h/esc", "back"),
		helpKey("p", "place details"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderFormHelp(width int) string {
	keys := []string{
		helpKey("tab", "next field"),
		helpKey("shift+tab", "prev field"),
		helpKey("ctrl+s", "save"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func renderDefaultHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("h/l", "back/select"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation (Nav Mode)"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"h / ← / b", "Go back / parent"},
			{"l / → / enter", "Open / select"},
			{"1 / 2 / 3 / 4", "Map, dishes, restaurants, timeline"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"esc", "Cancel / close"},
			{"q", "Quit (from top-level)"},
			{"?", "Toggle help"},
		}),
		titleSection("Map Screen"),
		helpSection([]helpItem{
			{"s / S", "Sort by dish count / country"},
			{"enter / l", "Open country dishes"},
		}),
		titleSection("Dishes Screen"),
		helpSection([]helpItem{
			{"/", "Search name, description, tags"},
			{"c / C", "Cycle country filter / clear"},
			{"t / T", "Cycle tag filter / clear"},
			{"x", "Clear all filters"},
			{"a", "Log a dish"},
			{"enter / l", "Open dish detail"},
		}),
		titleSection("Restaurants Screen"),
		helpSection([]helpItem{
			{"c / C", "Cycle city filter / clear"},
			{"s", "Sort by visit date"},
			{"a", "Log a restaurant"},
			{"enter / l", "Open restaurant detail"},
		}),
		titleSection("Restaurant Detail"),
		helpSection([]helpItem{
			{"p", "Load Google place details"},
		}),
		titleSection("Forms (Insert Mode)"),
		helpSection([]helpItem{
			{"tab", "Next field"},
			{"shift+tab", "Previous field"},
			{"ctrl+s", "Save"},
			{"esc", "Cancel"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
