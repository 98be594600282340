package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// PowerUpSpawnRate is the fixed per-tick probability of a power-up appearing.
const PowerUpSpawnRate = 0.01

// RNG is the randomness the spawner needs. *math/rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// SpawnTick rolls for new entities at the top of the field.
// The obstacle and power-up rolls are independent draws, in that order.
// A nil result means nothing spawned for that kind. IDs are left zero; the
// store assigns them on insertion.
func SpawnTick(rng RNG, blockSpawnRate, powerUpRate float64) (*Obstacle, *PowerUp) {
	var obstacle *Obstacle
	if rng.Float64() < blockSpawnRate {
		obstacle = spawnObstacle(rng)
	}

	var powerUp *PowerUp
	if rng.Float64() < powerUpRate {
		powerUp = spawnPowerUp(rng)
	}

	return obstacle, powerUp
}

func spawnObstacle(rng RNG) *Obstacle {
	width := ObstacleMinW + rng.Intn(ObstacleMaxW-ObstacleMinW+1)
	x := rng.Intn(FieldW - width + 1)
	return &Obstacle{Box: core.NewRect(x, 0, width, ObstacleH)}
}

func spawnPowerUp(rng RNG) *PowerUp {
	x := rng.Intn(FieldW - PowerUpSize + 1)
	kind := PowerUpKind(rng.Intn(int(powerUpKindCount)))
	return &PowerUp{
		Box:  core.NewRect(x, 0, PowerUpSize, PowerUpSize),
		Kind: kind,
	}
}
