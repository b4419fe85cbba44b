package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Varun5711/promokit/cmd/tui/client"
	"github.com/Varun5711/promokit/cmd/tui/ui"
)

func main() {
	authURL := os.Getenv("AUTH_SERVICE_URL")
	if authURL == "" {
		authURL = "http://localhost:3002"
	}
	plannerURL := os.Getenv("PLANNER_SERVICE_URL")
	if plannerURL == "" {
		plannerURL = "http://localhost:3001"
	}

	apiClient := client.New(authURL, plannerURL)

	program := tea.NewProgram(ui.NewModel(apiClient), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
