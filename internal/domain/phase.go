package domain

// Phase enumerates the lifecycle states of the exchange group.
type Phase string

const (
	// PhaseOpen allows membership changes; assignments have not been drawn.
	PhaseOpen Phase = "OPEN"
	// PhaseClosed is entered once assignments are drawn and never left
	// within a process lifetime.
	PhaseClosed Phase = "CLOSED"
)

// IsOpen reports whether membership changes are still allowed.
func (p Phase) IsOpen() bool {
	return p != PhaseClosed
}

// IsClosed reports whether assignments have been drawn.
func (p Phase) IsClosed() bool {
	return p == PhaseClosed
}
