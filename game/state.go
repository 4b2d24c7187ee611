package game

// State is one screen of the game: title, playing, or the lose screen.
// Input the state does not care about is simply ignored.
type State interface {
	Enter()
	Exit()
	Click(x, y int)
	Drag(x, y int)
	Release()
}

// Machine manages the active state, exiting the old one before entering the
// new one.
type Machine struct {
	current State
}

// NewMachine creates a machine with no active state.
func NewMachine() *Machine {
	return &Machine{}
}

// SetState transitions to a new state.
func (m *Machine) SetState(next State) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	if m.current != nil {
		m.current.Enter()
	}
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.current
}

// Click forwards a pointer press to the active state.
func (m *Machine) Click(x, y int) {
	if m.current != nil {
		m.current.Click(x, y)
	}
}

// Drag forwards a pointer drag motion to the active state.
func (m *Machine) Drag(x, y int) {
	if m.current != nil {
		m.current.Drag(x, y)
	}
}

// Release forwards a pointer release to the active state.
func (m *Machine) Release() {
	if m.current != nil {
		m.current.Release()
	}
}
