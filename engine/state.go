package engine

// RunState is the lifecycle state of an Engine
type RunState int

const (
	// Idle allows editing; no automatic stepping happens
	Idle RunState = iota
	// Running steps on every scheduler tick and rejects editing
	Running
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}
