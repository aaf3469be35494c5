// internal/input/input.go
package input

// State — снимок намерений игрока за один кадр. Хост заполняет его сам,
// ядро никогда не опрашивает устройства.
type State struct {
	Left    bool
	Right   bool
	Fire    bool
	Confirm bool
}

// Accept reports whether the frame carries a fire or confirm intent.
func (s State) Accept() bool {
	return s.Fire || s.Confirm
}

// Edge tracks the previous frame's Accept so menus react to a fresh press
// instead of a held key.
type Edge struct {
	prev bool
}

// Pressed returns true on the first frame Accept becomes true.
func (e *Edge) Pressed(s State) bool {
	cur := s.Accept()
	pressed := cur && !e.prev
	e.prev = cur
	return pressed
}
