package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// playbackInterval is how often the timeline playhead advances.
const playbackInterval = 100 * time.Millisecond

// TickMsg advances the timeline playhead. ID names the playback run that
// scheduled it; ticks from an earlier run are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick for run id after
// interval.
func tickCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
