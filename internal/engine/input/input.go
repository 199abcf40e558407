// Package input turns SDL2 events and keyboard state into per-frame snapshots.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/visicull/internal/engine/camera"
)

// Event types for viewer use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
}

// Input collects events and the pointer position each frame.
type Input struct {
	events []Event
	keys   camera.KeyState
	mouseX int
	mouseY int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and refreshes the keyboard snapshot.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.mouseX = int(e.X)
			i.mouseY = int(e.Y)
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: i.mouseX,
				MouseY: i.mouseY,
			})
		}
	}

	i.keys = snapshot(sdl.GetKeyboardState())
	return quit
}

// snapshot maps SDL scancodes to the ASCII key codes the camera reads.
func snapshot(state []uint8) camera.KeyState {
	var keys camera.KeyState
	for sc := int(sdl.SCANCODE_A); sc <= int(sdl.SCANCODE_Z) && sc < len(state); sc++ {
		keys['A'+sc-int(sdl.SCANCODE_A)] = state[sc] != 0
	}
	for sc := int(sdl.SCANCODE_1); sc <= int(sdl.SCANCODE_0) && sc < len(state); sc++ {
		// SDL orders digits 1..9 then 0
		digit := (sc - int(sdl.SCANCODE_1) + 1) % 10
		keys['0'+digit] = state[sc] != 0
	}
	if sc := int(sdl.SCANCODE_SPACE); sc < len(state) {
		keys[' '] = state[sc] != 0
	}
	return keys
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Keys returns the keyboard snapshot from the last Update.
func (i *Input) Keys() *camera.KeyState {
	return &i.keys
}

// Mouse returns the last known pointer position in pixels.
func (i *Input) Mouse() (x, y int) {
	return i.mouseX, i.mouseY
}
