package game

import "github.com/they4kman/gomaze/util/collections"

type Control int

const (
	ControlReset Control = iota
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
)

var Controls = []Control{
	ControlReset,
	ControlUp,
	ControlDown,
	ControlLeft,
	ControlRight,
}

// InputSource reports which controls are active on the current frame.
// Reset should only report a fresh press; the directional controls should
// also report while held, at whatever repeat rate the source uses.
type InputSource interface {
	Pressed(control Control) bool
}

// ControlSet is an InputSource whose active controls are set by hand. The
// terminal frontend collects key events into one per frame.
type ControlSet struct {
	controls collections.Set[Control]
}

func NewControlSet(controls ...Control) *ControlSet {
	set := &ControlSet{controls: make(collections.Set[Control])}
	for _, control := range controls {
		set.Press(control)
	}
	return set
}

func (set *ControlSet) Press(control Control) {
	set.controls.Add(control)
}

func (set *ControlSet) Release(control Control) {
	set.controls.Remove(control)
}

func (set *ControlSet) Pressed(control Control) bool {
	return set.controls.Contains(control)
}

func (set *ControlSet) Clear() {
	set.controls = make(collections.Set[Control])
}
