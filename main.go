package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/the-ray/config"
	"github.com/lixenwraith/the-ray/constants"
	"github.com/lixenwraith/the-ray/core"
	"github.com/lixenwraith/the-ray/engine"
	"github.com/lixenwraith/the-ray/events"
	"github.com/lixenwraith/the-ray/game"
	"github.com/lixenwraith/the-ray/render"
)

// App is the terminal host: it owns the screen, pumps the scheduler, routes
// mouse input into the game and draws the canvas plus HUD every frame.
type App struct {
	screen  tcell.Screen
	surface *render.TermCanvas
	hud     *render.HUD
	sim     *game.Game
	logger  *log.Logger

	button1Held bool
}

// NewApp initializes the screen and wires the game to it.
func NewApp(cfg config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	logger := log.New(io.Discard, "", 0)
	if cfg.DebugLog != "" {
		f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			screen.Fini()
			return nil, fmt.Errorf("open debug log: %w", err)
		}
		logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	surface := render.NewTermCanvas()
	sim := game.New(surface, engine.NewTimeProvider(), rng, cfg.TickInterval)

	logger.Printf("session host up: seed=%d tick=%s", seed, cfg.TickInterval)

	return &App{
		screen:  screen,
		surface: surface,
		hud:     render.NewHUD(),
		sim:     sim,
		logger:  logger,
	}, nil
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

	case *tcell.EventMouse:
		held := ev.Buttons()&tcell.Button1 != 0
		cx, cy := ev.Position()
		width, height := a.screen.Size()
		x, y := render.CellToLogical(cx, cy, width, height-1)

		switch {
		case held && !a.button1Held:
			a.sim.Click(x, y)
		case held && a.button1Held:
			a.sim.Drag(x, y)
		case !held && a.button1Held:
			a.sim.Release()
		}
		a.button1Held = held

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) drainEvents() {
	evs := a.sim.Queue.Consume()
	if len(evs) == 0 {
		return
	}
	a.hud.Apply(evs)
	for _, ev := range evs {
		switch ev.Type {
		case events.EventEnemyDestroyed:
			a.logger.Printf("enemy destroyed")
		case events.EventGameOver:
			a.logger.Printf("game over")
		case events.EventLevelStarted:
			if p, ok := ev.Payload.(*events.LevelStartedPayload); ok {
				a.logger.Printf("level %d started", p.Level)
			}
		}
	}
}

func (a *App) draw() {
	a.screen.Clear()
	a.surface.Draw(a.screen)
	a.hud.Draw(a.screen)
	a.screen.Show()
}

func (a *App) run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			a.drainEvents()

		case <-ticker.C:
			a.sim.Scheduler.RunDue()
			a.drainEvents()
			a.draw()
		}
	}
}

func (a *App) cleanup() {
	a.screen.Fini()
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
