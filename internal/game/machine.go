package game

import (
	"github.com/tuisteroids/tuisteroids/internal/config"
	"github.com/tuisteroids/tuisteroids/internal/core"
)

// StateKind identifies which screen the game currently shows.
type StateKind int

const (
	StateMenu StateKind = iota
	StatePlaying
	StateGameOver
)

func (s StateKind) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	default:
		return "game_over"
	}
}

// Machine owns the menu/playing/game-over flow and the worlds behind it.
// The menu runs a self-playing demo world in the background; starting a
// game discards the demo and builds a fresh player world; game over keeps
// the final score for the results screen. The machine does not read the
// clock; the caller drives it tick by tick.
type Machine struct {
	state StateKind

	playing *World
	demo    *World

	cfg        config.GameConfig
	tickRate   int
	seed       int64
	demoSeed   int64
	finalScore int
	finalWave  int
}

// NewMachine starts in the menu with the attract demo already running.
// seed anchors the player world; the demo derives its own stream so each
// menu visit shows a different run while remaining reproducible.
func NewMachine(cfg config.GameConfig, tickRate int, seed int64) *Machine {
	m := &Machine{
		state:    StateMenu,
		cfg:      cfg,
		tickRate: tickRate,
		seed:     seed,
		demoSeed: seed + 1,
	}
	m.demo = NewWorld(cfg, tickRate, m.demoSeed)
	return m
}

// State returns the current screen.
func (m *Machine) State() StateKind { return m.state }

// Playing returns the active player world, or nil outside StatePlaying.
func (m *Machine) Playing() *World { return m.playing }

// Demo returns the attract-mode world, or nil outside StateMenu.
func (m *Machine) Demo() *World { return m.demo }

// FinalScore returns the score of the last finished run.
func (m *Machine) FinalScore() int { return m.finalScore }

// FinalWave returns the wave reached by the last finished run.
func (m *Machine) FinalWave() int { return m.finalWave }

// Confirm handles the "press any key" affordance of the menu and game-over
// screens. In the menu it starts a run; on game over it returns to the menu.
// It is a no-op while playing, where keys are simulation input instead.
func (m *Machine) Confirm() {
	switch m.state {
	case StateMenu:
		m.demo = nil
		m.playing = NewWorld(m.cfg, m.tickRate, m.seed)
		m.state = StatePlaying
	case StateGameOver:
		m.restartDemo()
		m.state = StateMenu
	}
}

// Quit handles the quit action per state: playing abandons the run back to
// the menu; menu and game over report that the program should exit.
func (m *Machine) Quit() (exit bool) {
	switch m.state {
	case StatePlaying:
		m.playing = nil
		m.restartDemo()
		m.state = StateMenu
		return false
	default:
		return true
	}
}

// Tick advances whichever world is live. In the menu the demo pilot supplies
// the input and the provided frame is ignored; a demo that dies simply
// restarts. While playing, a game-over transition captures the final score
// and flips the state. Returns the tick's events for the audio layer; demo
// ticks stay silent.
func (m *Machine) Tick(in core.InputFrame) []Event {
	switch m.state {
	case StateMenu:
		res := m.demo.Step(DemoInput(m.demo))
		if res.Transition != TransitionNone {
			m.restartDemo()
		}
		return nil
	case StatePlaying:
		res := m.playing.Step(in)
		switch res.Transition {
		case TransitionGameOver:
			m.finalScore = m.playing.Score()
			m.finalWave = m.playing.Wave()
			m.playing = nil
			m.state = StateGameOver
		case TransitionQuit:
			m.playing = nil
			m.restartDemo()
			m.state = StateMenu
		}
		return res.Events
	default:
		return nil
	}
}

// restartDemo builds a fresh attract world on a new derived seed.
func (m *Machine) restartDemo() {
	m.demoSeed++
	m.demo = NewWorld(m.cfg, m.tickRate, m.demoSeed)
}
