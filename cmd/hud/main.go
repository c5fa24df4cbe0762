package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Komil-goat/Futuristic-HUD/internal/config"
	"github.com/Komil-goat/Futuristic-HUD/internal/metrics"
	"github.com/Komil-goat/Futuristic-HUD/internal/monitor"
	"github.com/Komil-goat/Futuristic-HUD/internal/ui"
	"github.com/Komil-goat/Futuristic-HUD/internal/weather"
)

func main() {
	// Parse flags
	mockMode := flag.Bool("mock", false, "Run in mock mode with simulated data")
	configPath := flag.String("config", "", "Path to a hud.json profile")
	flag.Parse()

	// Load profile
	var profile *config.Profile
	var err error
	if *configPath != "" {
		profile, err = config.LoadProfile(*configPath)
	} else {
		profile, err = config.LoadDefaultProfile()
	}
	if err != nil {
		log.Printf("Config load failed, using defaults: %v", err)
	}

	// Initialize metrics provider
	var provider metrics.Provider
	if *mockMode {
		log.Println("Starting in MOCK mode...")
		provider = &metrics.MockProvider{}
	} else {
		provider = &metrics.SystemProvider{}
	}

	if err := provider.Init(); err != nil {
		log.Fatalf("Failed to initialize metrics provider: %v", err)
	}
	defer provider.Shutdown()

	// Build the core: store + weather worker
	mon := monitor.New(provider, weather.NewClient(), monitor.Options{
		Latitude:  profile.Latitude,
		Longitude: profile.Longitude,
		History:   profile.HistoryLength,
	})
	defer mon.Close()

	if profile.WeatherOnStart {
		mon.RequestWeatherRefresh()
	}

	// Start Bubble Tea program
	root := ui.NewRootModel(mon, profile)
	p := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running HUD: %v\n", err)
		os.Exit(1)
	}
}
