// Command exceedbar-tui shows an exceedable progress bar in the terminal
// and lets the progress and the planned maximum be adjusted with the
// arrow keys.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var (
		plannedMax = flag.Float64("max", 1500, "planned maximum")
		progress   = flag.Float64("progress", 1200, "initial progress")
		unit       = flag.String("unit", "kWh", "unit appended to the planned maximum")
	)
	flag.Parse()

	if _, err := tea.NewProgram(newModel(*plannedMax, *progress, *unit), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("exceedbar-tui: %v", err)
	}
}
