package game

// Event is a discrete tag describing something audible that happened during
// one simulation tick. The platform forwards these to the audio engine
// fire-and-forget; they never feed back into simulation state.
type Event int

const (
	EventThrust Event = iota // thrust active this tick
	EventFire                // a bullet was fired
	EventExplosionLarge
	EventExplosionMedium
	EventExplosionSmall
	EventShipDestroyed
	EventExtraLife
	EventNewWave
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventThrust:
		return "thrust"
	case EventFire:
		return "fire"
	case EventExplosionLarge:
		return "explosion_large"
	case EventExplosionMedium:
		return "explosion_medium"
	case EventExplosionSmall:
		return "explosion_small"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventExtraLife:
		return "extra_life"
	case EventNewWave:
		return "new_wave"
	default:
		return "unknown"
	}
}

// explosionEvent maps a destroyed asteroid's size to its explosion tag.
func explosionEvent(size Size) Event {
	switch size {
	case SizeLarge:
		return EventExplosionLarge
	case SizeMedium:
		return EventExplosionMedium
	default:
		return EventExplosionSmall
	}
}
