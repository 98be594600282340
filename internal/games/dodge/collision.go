package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Overlaps is the strict AABB test: boxes that only touch along an edge do
// not overlap.
func Overlaps(a, b core.Rect) bool {
	return a.Intersects(b)
}

// Collisions is what the player touched during one tick.
type Collisions struct {
	// Obstacle is the first overlapping obstacle in insertion order, or nil.
	// Further overlapping obstacles stay in the store for the next tick.
	Obstacle *Obstacle

	// PowerUps holds every overlapping power-up, in insertion order.
	PowerUps []PowerUp
}

// DetectCollisions tests the player against the store and removes everything
// that was hit: at most one obstacle and any number of power-ups.
func DetectCollisions(player core.Rect, store *Store) Collisions {
	var c Collisions

	for _, o := range store.Obstacles() {
		if Overlaps(player, o.Box) {
			hit := o
			c.Obstacle = &hit
			break
		}
	}
	if c.Obstacle != nil {
		store.RemoveObstacle(c.Obstacle.ID)
	}

	for _, p := range store.PowerUps() {
		if Overlaps(player, p.Box) {
			c.PowerUps = append(c.PowerUps, p)
		}
	}
	for _, p := range c.PowerUps {
		store.RemovePowerUp(p.ID)
	}

	return c
}
