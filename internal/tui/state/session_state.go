package state

// SessionState tracks which saved session the board belongs to and whether it
// changed since it was last saved or loaded.
type SessionState struct {
	Name  string
	Dirty bool
}

// NewSessionState creates a clean state for the named session ("" for unsaved)
func NewSessionState(name string) *SessionState {
	return &SessionState{Name: name}
}

// MarkDirty records an unsaved change
func (s *SessionState) MarkDirty() {
	s.Dirty = true
}

// MarkSaved records that the board now matches the named session
func (s *SessionState) MarkSaved(name string) {
	s.Name = name
	s.Dirty = false
}
