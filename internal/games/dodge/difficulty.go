package dodge

import "time"

// The difficulty curve is fixed.
const (
	DifficultyInterval = 5 * time.Second
	InitialBlockSpeed  = 5
	InitialSpawnRate   = 0.05
	BlockSpeedStep     = 1
	SpawnRateStep      = 0.02

	// IntensifyAbove is the block speed beyond which every escalation asks
	// the platform for more intense music.
	IntensifyAbove = 10
)

// Difficulty holds the parameters that escalate over a run.
// Times are offsets on the run's simulated clock.
type Difficulty struct {
	BlockSpeed   int           // Fall distance per tick
	SpawnRate    float64       // Obstacle spawn probability per tick
	LastIncrease time.Duration // When the last escalation happened
}

func newDifficulty() Difficulty {
	return Difficulty{
		BlockSpeed: InitialBlockSpeed,
		SpawnRate:  InitialSpawnRate,
	}
}

// Escalation reports what MaybeEscalate did.
type Escalation struct {
	Escalated bool
	Intensify bool
}

// MaybeEscalate raises speed and spawn rate once a full interval has passed
// since the last increase. Intensify is set on every escalation that leaves
// the speed above IntensifyAbove, not only the first one.
func (d *Difficulty) MaybeEscalate(now time.Duration) Escalation {
	if now-d.LastIncrease < DifficultyInterval {
		return Escalation{}
	}

	d.BlockSpeed += BlockSpeedStep
	d.SpawnRate += SpawnRateStep
	d.LastIncrease = now

	return Escalation{
		Escalated: true,
		Intensify: d.BlockSpeed > IntensifyAbove,
	}
}
