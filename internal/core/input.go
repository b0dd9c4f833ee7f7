package core

// Intent represents a semantic player intent, abstracted from physical key
// presses. The platform maps keys to intents; the simulation only sees these.
type Intent int

const (
	IntentNone    Intent = iota
	IntentJump           // Space, W, Up - jump
	IntentDuck           // S, Down - duck (held)
	IntentRestart        // R - restart after game over
	IntentQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentJump:
		return "Jump"
	case IntentDuck:
		return "Duck"
	case IntentRestart:
		return "Restart"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the snapshot of player intents for a single simulation tick.
type InputFrame struct {
	Intents map[Intent]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Intents: make(map[Intent]bool),
	}
}

// Set marks an intent as active for this frame.
func (f *InputFrame) Set(i Intent) {
	if f.Intents == nil {
		f.Intents = make(map[Intent]bool)
	}
	f.Intents[i] = true
}

// Has reports whether an intent is active in this frame.
func (f InputFrame) Has(i Intent) bool {
	return f.Intents[i]
}

// Clear removes all intents, reusing the underlying map.
func (f *InputFrame) Clear() {
	for k := range f.Intents {
		delete(f.Intents, k)
	}
}
