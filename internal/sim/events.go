package sim

// Event is a discrete trigger emitted by Advance for one tick, in order of
// occurrence. The audio layer consumes events after the tick; the simulation
// itself never touches audio.
type Event int

const (
	EventJump Event = iota
	EventLand
	EventDuck
	EventSpawn
	EventMilestone
	EventGameOver
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "Jump"
	case EventLand:
		return "Land"
	case EventDuck:
		return "Duck"
	case EventSpawn:
		return "Spawn"
	case EventMilestone:
		return "Milestone"
	case EventGameOver:
		return "GameOver"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
