// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, rendering, and score
// persistence around the pure simulation core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuisteroids/tuisteroids/internal/audio"
	"github.com/tuisteroids/tuisteroids/internal/config"
	"github.com/tuisteroids/tuisteroids/internal/core"
	"github.com/tuisteroids/tuisteroids/internal/game"
	"github.com/tuisteroids/tuisteroids/internal/storage"
)

// Cap on simulation updates per tick message. After a long stall (laptop
// suspend, SIGSTOP) the accumulator would otherwise demand thousands of
// catch-up updates in one frame.
const maxUpdatesPerTick = 10

// Model is the Bubble Tea model driving the whole game: attract menu,
// play, and game over, all backed by the same state machine.
type Model struct {
	machine *game.Machine
	screen  *core.Screen
	store   *storage.Store
	engine  *audio.Engine
	mapper  *KeyMapper

	runtime core.RuntimeConfig
	acc     *game.Accumulator
	last    time.Time

	// Terminals report key presses but never releases, so held actions are
	// bridged with decrementing counters refreshed by auto-repeat.
	held        map[core.Action]int
	pendingFire bool
	fireEdge    core.FireEdge

	highScore  int
	scoreSaved bool
	quitting   bool
}

// NewModel creates the top-level model. store and engine may be nil; the
// game then runs without persistence or sound.
func NewModel(gameCfg config.GameConfig, runtime core.RuntimeConfig, store *storage.Store, engine *audio.Engine) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	m := Model{
		machine: game.NewMachine(gameCfg, runtime.TickRate, runtime.Seed),
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:   store,
		engine:  engine,
		mapper:  NewKeyMapper(),
		runtime: runtime,
		acc:     game.NewAccumulator(1.0 / float64(runtime.TickRate)),
		held:    make(map[core.Action]int),
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input per state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.shutdown()
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		if m.machine.Quit() {
			return m.shutdown()
		}
		// Abandoned run back to the menu.
		m.resetInput()
		return m, nil
	}

	switch m.machine.State() {
	case game.StatePlaying:
		switch action {
		case core.ActionFire:
			m.pendingFire = true
		case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust:
			m.held[action] = holdTicks
		}
	default:
		// Menu and game over advance on any key that is not a quit.
		m.machine.Confirm()
		m.resetInput()
		m.scoreSaved = false
	}
	return m, nil
}

// handleTick feeds elapsed wall time into the accumulator and runs the due
// simulation updates.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.acc.Timestep()
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last).Seconds()
	}
	m.last = now

	updates := m.acc.Accumulate(elapsed)
	if updates > maxUpdatesPerTick {
		updates = maxUpdatesPerTick
	}

	for i := 0; i < updates; i++ {
		events := m.machine.Tick(m.buildFrame())
		if m.engine != nil {
			m.engine.Process(events)
		}
	}

	if m.machine.State() == game.StateGameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.runtime.TickRate)
}

// buildFrame assembles one tick of input from the hold counters and the
// fire edge detector, decaying the counters as it goes.
func (m *Model) buildFrame() core.InputFrame {
	frame := core.NewInputFrame()
	for action, ticks := range m.held {
		if ticks <= 0 {
			continue
		}
		frame.Set(action)
		m.held[action] = ticks - 1
	}
	if m.fireEdge.Update(m.pendingFire) {
		frame.Set(core.ActionFire)
	}
	m.pendingFire = false
	return frame
}

// saveScore persists the finished run, best effort.
func (m *Model) saveScore() {
	score, wave := m.machine.FinalScore(), m.machine.FinalWave()
	if score > m.highScore {
		m.highScore = score
	}
	if m.store != nil && score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(score, wave)
	}
}

func (m *Model) resetInput() {
	for k := range m.held {
		delete(m.held, k)
	}
	m.pendingFire = false
}

func (m Model) shutdown() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.engine != nil {
		m.engine.Close()
	}
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	RenderFrame(m.screen, m.machine, m.highScore)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg config.GameConfig, runtime core.RuntimeConfig, store *storage.Store, engine *audio.Engine) error {
	model := NewModel(gameCfg, runtime, store, engine)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
