package orchestrator

// State is a step of the per-generation state machine.
type State string

const (
	// StatePending checks whether the generation is already complete.
	StatePending State = "Pending"
	// StateAcceleratorInstalling installs and links toolkits and runtime libraries.
	StateAcceleratorInstalling State = "AcceleratorInstalling"
	// StateVenvInstalling installs every buildable venv.
	StateVenvInstalling State = "VenvInstalling"
	// StateOptimizing writes link caches and deduplicates files.
	StateOptimizing State = "Optimizing"
	// StatePublished marks the generation complete and repoints latest if requested.
	StatePublished State = "Published"
	// StateDone is terminal.
	StateDone State = "Done"
)
