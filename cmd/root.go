package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	Empty        bool
	PlacesAPIKey string
	ShowVersion  bool
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	config := &Config{}

	// Load .env files first so env-based defaults work with flag parsing.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	flag.BoolVar(&config.Empty, "empty", false, "Start with an empty journal instead of the sample entries")
	flag.StringVar(&config.PlacesAPIKey, "places-key", "", "Google Places API key (or set PLACES_API_KEY env var)")
	flag.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
	flag.Parse()

	if config.ShowVersion {
		fmt.Printf("morsel %s\n", version)
		os.Exit(0)
	}

	if config.PlacesAPIKey == "" {
		config.PlacesAPIKey = os.Getenv("PLACES_API_KEY")
	}

	return config, nil
}
