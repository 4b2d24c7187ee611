package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/the-ray/events"
)

// HUD is the information bar under the playfield: current level on the
// left, remaining lives on the right.
type HUD struct {
	level  int
	lives  int
	active bool
}

// NewHUD creates an empty HUD; labels stay blank until the first event.
func NewHUD() *HUD {
	return &HUD{}
}

// Apply folds game events into the HUD labels.
func (h *HUD) Apply(evs []events.GameEvent) {
	for _, ev := range evs {
		switch ev.Type {
		case events.EventLevelStarted:
			if p, ok := ev.Payload.(*events.LevelStartedPayload); ok {
				h.level = p.Level
				h.active = true
			}
		case events.EventLivesChanged:
			if p, ok := ev.Payload.(*events.LivesChangedPayload); ok {
				h.lives = p.Lives
				h.active = true
			}
		}
	}
}

// Draw renders the HUD onto the bottom screen row.
func (h *HUD) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	if height < 1 || !h.active {
		return
	}
	row := height - 1
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	left := fmt.Sprintf("LEVEL %d", h.level)
	right := fmt.Sprintf("LIVES: %d", h.lives)

	for i, r := range left {
		if i < width {
			screen.SetContent(i, row, r, nil, style)
		}
	}
	for i, r := range right {
		x := width - len(right) + i
		if x >= 0 {
			screen.SetContent(x, row, r, nil, style)
		}
	}
}
