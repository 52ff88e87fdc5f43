package learn

// State records the progress of a learning run
type State int

// List of valid State values. The order is important: the two finished
// states sort above the others and Finished() relies on that
const (
	Unknown State = iota
	Running
	Cancelled
	Complete
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Running:
		return "running"
	case Cancelled:
		return "cancelled"
	case Complete:
		return "complete"
	}
	return "invalid state"
}

// Finished returns true if the run has reached a terminal state. Both
// Cancelled and Complete count as finished
func (s State) Finished() bool {
	return s >= Cancelled
}
