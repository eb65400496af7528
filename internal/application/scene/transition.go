package scene

// TransitionKind identifies what a Transition asks the manager to do
type TransitionKind int

const (
	// Continue keeps the current scene
	Continue TransitionKind = iota
	// SwitchToDescriptor realizes a descriptor and makes it current
	SwitchToDescriptor
	// SwitchToScene makes an already realized scene current
	SwitchToScene
)

// String returns the string representation of the transition kind
func (k TransitionKind) String() string {
	switch k {
	case Continue:
		return "Continue"
	case SwitchToDescriptor:
		return "SwitchToDescriptor"
	case SwitchToScene:
		return "SwitchToScene"
	default:
		return "Unknown"
	}
}

// Transition is the result of Scene.Update. The zero value means Continue.
type Transition struct {
	kind       TransitionKind
	descriptor Descriptor
	scene      Scene
}

// Stay keeps the current scene
func Stay() Transition {
	return Transition{}
}

// ToDescriptor asks the manager to realize d and switch to it
func ToDescriptor(d Descriptor) Transition {
	return Transition{kind: SwitchToDescriptor, descriptor: d}
}

// ToScene hands s over to the manager, which makes it current.
// The caller must drop its own reference to s.
func ToScene(s Scene) Transition {
	return Transition{kind: SwitchToScene, scene: s}
}

// Kind returns the transition kind
func (t Transition) Kind() TransitionKind {
	return t.kind
}

// Descriptor returns the descriptor of a SwitchToDescriptor transition
func (t Transition) Descriptor() Descriptor {
	return t.descriptor
}

// Scene returns the scene of a SwitchToScene transition
func (t Transition) Scene() Scene {
	return t.scene
}
