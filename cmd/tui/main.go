// Command tui watches a running solver's spectator feed and renders its
// board and progress live.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/callegarimattia/battleship/internal/client"
	"github.com/callegarimattia/battleship/internal/env"
	"github.com/callegarimattia/battleship/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := env.LoadClientConfig()
	if err != nil {
		log.Fatalf("failed to load client config: %v", err)
	}

	watchURL := flag.String("watch-url", cfg.JudgeBaseURL, "base URL of the solver's spectator feed (its -watch-addr)")
	flag.Parse()

	feed, err := client.DialSpectator(*watchURL, "/watch")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to spectator feed: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(feed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v", err)
		os.Exit(1)
	}
}
