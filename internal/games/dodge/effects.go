package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// MultiplierDuration is the number of ticks a multiplier pickup doubles scoring.
const MultiplierDuration = 5

// Effects tracks active power-up effects. Shield and speed boost last until
// the run is reset; the multiplier counts down once per tick.
type Effects struct {
	Shield          bool
	SpeedBoost      bool
	MultiplierTicks int // Ticks left with doubled scoring, 0 = inactive
}

// MultiplierActive reports whether scoring is currently doubled.
func (e Effects) MultiplierActive() bool {
	return e.MultiplierTicks > 0
}

// ScoreIncrement returns the points awarded for surviving the current tick.
func (e Effects) ScoreIncrement() int {
	if e.MultiplierActive() {
		return 2
	}
	return 1
}

// expireMultiplier counts the multiplier down after the tick's scoring.
func (e *Effects) expireMultiplier() {
	if e.MultiplierTicks > 0 {
		e.MultiplierTicks--
	}
}

// HitOutcome is what an obstacle collision did to the player.
type HitOutcome int

const (
	HitNone     HitOutcome = iota
	HitAbsorbed            // Shield took the hit
	HitLifeLost            // One life lost, still alive
	HitFatal               // Last life lost
)

// applyPowerUp grants the effect of a collected power-up. Collecting a kind
// that is already active re-arms it.
func applyPowerUp(st *State, kind PowerUpKind) {
	switch kind {
	case PowerUpShield:
		st.Effects.Shield = true
	case PowerUpSpeed:
		st.Effects.SpeedBoost = true
		st.Player.Speed = BoostedSpeed
	case PowerUpMultiplier:
		st.Effects.MultiplierTicks = MultiplierDuration
	}
}

// applyObstacleHit resolves one obstacle collision against lives and shield.
func applyObstacleHit(st *State) HitOutcome {
	if st.Effects.Shield {
		return HitAbsorbed
	}
	if st.Lives == 0 {
		return HitNone
	}
	st.Lives--
	if st.Lives == 0 {
		return HitFatal
	}
	return HitLifeLost
}

// applyCollisions runs the effect engine over one tick's collisions and
// returns the resulting events.
func applyCollisions(st *State, c Collisions) []core.Event {
	var events []core.Event

	if c.Obstacle != nil {
		switch applyObstacleHit(st) {
		case HitAbsorbed:
			events = append(events, core.Event{Kind: core.EventShieldBlocked})
		case HitLifeLost, HitFatal:
			events = append(events, core.Event{Kind: core.EventObstacleHit})
		}
	}

	for _, p := range c.PowerUps {
		applyPowerUp(st, p.Kind)
		events = append(events, core.Event{Kind: core.EventPowerUp, Detail: p.Kind.String()})
	}

	return events
}
