package viewer

import "github.com/veandco/go-sdl2/sdl"

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleFirstPerson
	ActionToggleProjection
	ActionFreeze
	ActionLogPose
	ActionScreenshot
	ActionReseed
	ActionToggleCulled
	ActionCycleNodes
	ActionFullscreen
	ActionInspect
	ActionSavePose
)

// NodesOff disables the octree node overlay.
const NodesOff = -2

// Deepest node level the overlay cycles through before turning off.
const maxNodeDepth = 4

var keyBindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE: ActionQuit,
	sdl.SCANCODE_F:      ActionToggleFirstPerson,
	sdl.SCANCODE_O:      ActionToggleProjection,
	sdl.SCANCODE_SPACE:  ActionFreeze,
	sdl.SCANCODE_P:      ActionLogPose,
	sdl.SCANCODE_F12:    ActionScreenshot,
	sdl.SCANCODE_R:      ActionReseed,
	sdl.SCANCODE_C:      ActionToggleCulled,
	sdl.SCANCODE_N:      ActionCycleNodes,
	sdl.SCANCODE_F11:    ActionFullscreen,
	sdl.SCANCODE_I:      ActionInspect,
	sdl.SCANCODE_K:      ActionSavePose,
}

func actionFor(key sdl.Scancode) Action {
	return keyBindings[key]
}

// State holds the overlay toggles driven by key presses.
type State struct {
	Frozen     bool // cull against a saved frustum instead of the live one
	ShowCulled bool
	Screenshot bool // capture at the end of the current frame
	// NodesOff, -1 for leaves only, or the deepest level drawn
	NodeDepth int
}

// Apply updates the toggles an action owns. Other actions are ignored.
func (s *State) Apply(a Action) {
	switch a {
	case ActionFreeze:
		s.Frozen = !s.Frozen
	case ActionToggleCulled:
		s.ShowCulled = !s.ShowCulled
	case ActionScreenshot:
		s.Screenshot = true
	case ActionCycleNodes:
		switch {
		case s.NodeDepth == NodesOff:
			s.NodeDepth = -1
		case s.NodeDepth >= maxNodeDepth:
			s.NodeDepth = NodesOff
		default:
			s.NodeDepth++
		}
	}
}
