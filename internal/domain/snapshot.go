package domain

// Snapshot is the complete serialized registry state used for durable
// persistence. Saves always replace the whole document.
type Snapshot struct {
	Participants []Participant `json:"participants"`
	Shuffled     bool          `json:"shuffled"`
}

// Sanitize returns a copy of the snapshot with malformed records dropped and
// the shuffled flag reconciled. A record without an id or name is skipped
// rather than aborting the whole load. The flag is recomputed as the stored
// value OR the presence of any assignment: a snapshot that lost the flag but
// kept assignment data still loads as shuffled. The OR is intentionally
// conservative; a stray leftover assignment locks the group rather than
// risking a second draw.
func (s Snapshot) Sanitize() Snapshot {
	out := Snapshot{
		Participants: make([]Participant, 0, len(s.Participants)),
		Shuffled:     s.Shuffled,
	}
	for _, p := range s.Participants {
		if p.ID == "" || p.Name == "" {
			continue
		}
		out.Participants = append(out.Participants, p)
		if p.AssignedTo != nil {
			out.Shuffled = true
		}
	}
	return out
}

// Phase derives the lifecycle phase from the shuffled flag.
func (s Snapshot) Phase() Phase {
	if s.Shuffled {
		return PhaseClosed
	}
	return PhaseOpen
}
