package main

import (
	"fmt"
	"os"

	"morsel/cmd"
	"morsel/internal/data"
	"morsel/internal/places"
	"morsel/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := data.New()
	if config.Empty {
		store = data.NewFrom(nil, nil)
	}

	placesClient := places.NewClient(config.PlacesAPIKey)

	p := tea.NewProgram(ui.New(store, placesClient), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
