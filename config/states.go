package config

// StateID is the game loop state.
type StateID int

const (
	StateSetup StateID = iota
	StateRunning
	StateFailed
	StateCompleted
)

func (s StateID) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateRunning:
		return "running"
	case StateFailed:
		return "failed"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Ended reports whether the state is terminal.
func (s StateID) Ended() bool {
	return s == StateFailed || s == StateCompleted
}
