package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pokedex-api/cmd/pokedex-tui/ui"
)

func main() {
	api := flag.String("api", "http://127.0.0.1:3000", "Pokedex API base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "Request timeout")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(ui.NewClient(*api, *timeout)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run ui: %v", err)
	}
}
