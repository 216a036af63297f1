package loader

// State is a step of [Loader.Load]. States only move forward.
type State int

const (
	StateUninitialized State = iota
	StateNameResolved
	StateRootResolved
	StateEnvResolved
	StateDefaultsLoaded
	StateMainLoaded
	StateOverridesCollected
	StateMerged
)

var stateNames = [...]string{
	"uninitialized",
	"name-resolved",
	"root-resolved",
	"env-resolved",
	"defaults-loaded",
	"main-loaded",
	"overrides-collected",
	"merged",
}

// String returns the kebab-case name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
