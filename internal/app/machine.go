// Package app tracks which screen of the notebook is active.
package app

import (
	"fmt"
	"sync"

	"github.com/osse101/scribble/internal/domain"
)

// Screen is a section of the notebook
type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenInventory Screen = "inventory"
	ScreenEnemies   Screen = "enemies"
	ScreenStats     Screen = "stats"
	ScreenDice      Screen = "dice"
)

// Event is a named navigation request
type Event string

const (
	EventOpenInventory Event = "open_inventory"
	EventOpenEnemies   Event = "open_enemies"
	EventOpenStats     Event = "open_stats"
	EventOpenDice      Event = "open_dice"
	EventBack          Event = "back"
)

// transitions maps a screen and event to the next screen
var transitions = map[Screen]map[Event]Screen{
	ScreenHome: {
		EventOpenInventory: ScreenInventory,
		EventOpenEnemies:   ScreenEnemies,
		EventOpenStats:     ScreenStats,
		EventOpenDice:      ScreenDice,
	},
	ScreenInventory: {EventBack: ScreenHome},
	ScreenEnemies:   {EventBack: ScreenHome},
	ScreenStats:     {EventBack: ScreenHome},
	ScreenDice:      {EventBack: ScreenHome},
}

// Machine holds the current screen
type Machine struct {
	mu      sync.Mutex
	current Screen
}

// NewMachine starts on the home screen
func NewMachine() *Machine {
	return &Machine{current: ScreenHome}
}

// Current returns the active screen
func (m *Machine) Current() Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Fire applies ev. An event that is not valid from the current screen returns
// ErrInvalidTransition and leaves the screen unchanged.
func (m *Machine) Fire(ev Event) (Screen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, ok := transitions[m.current][ev]
	if !ok {
		return m.current, fmt.Errorf("%w: %s from %s", domain.ErrInvalidTransition, ev, m.current)
	}
	m.current = next
	return next, nil
}

// Events lists the events valid from the current screen
func (m *Machine) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []Event
	for _, ev := range []Event{EventOpenInventory, EventOpenEnemies, EventOpenStats, EventOpenDice, EventBack} {
		if _, ok := transitions[m.current][ev]; ok {
			events = append(events, ev)
		}
	}
	return events
}

// OpenEvent returns the event that opens screen s from home
func OpenEvent(s Screen) (Event, bool) {
	for ev, next := range transitions[ScreenHome] {
		if next == s {
			return ev, true
		}
	}
	return "", false
}
