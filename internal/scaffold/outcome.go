package scaffold

// Action identifies which kind of artifact a step touched.
type Action int

const (
	ActionDir Action = iota
	ActionMarker
	ActionKeep
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionDir:
		return "directory"
	case ActionMarker:
		return "marker"
	case ActionKeep:
		return "keep"
	default:
		return "unknown"
	}
}

// Status describes what a step did to its path.
type Status int

const (
	// StatusCreated means the path did not exist and was created.
	StatusCreated Status = iota
	// StatusExisted means the path already existed and was left alone.
	StatusExisted
	// StatusWritten means an existing marker had its content replaced.
	StatusWritten
	// StatusPlanned means a dry run would have created or written the path.
	StatusPlanned
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusExisted:
		return "existed"
	case StatusWritten:
		return "written"
	case StatusPlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// Outcome records the result of one scaffolding step.
type Outcome struct {
	Action Action
	Path   string // Slash-separated, relative to the root
	Status Status
}

// Result collects every outcome of a run in execution order. On failure it
// holds the steps that completed before the error.
type Result struct {
	Root     string
	Outcomes []Outcome
}

// Count returns how many outcomes match the given action.
func (r *Result) Count(a Action) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == a {
			n++
		}
	}
	return n
}
