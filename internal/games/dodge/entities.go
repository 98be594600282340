package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Playfield and entity geometry in playfield units.
const (
	FieldW = 400
	FieldH = 400

	PlayerW      = 40
	PlayerH      = 20
	PlayerY      = 350
	PlayerStartX = 180

	BaseSpeed    = 20 // Player step per key press
	BoostedSpeed = 30 // Player step with the speed power-up

	ObstacleH    = 20
	ObstacleMinW = 15
	ObstacleMaxW = 30

	PowerUpSize = 15
)

// EntityID identifies an obstacle or power-up for the lifetime of a run.
type EntityID uint64

// Player is the paddle controlled by the user.
type Player struct {
	Box   core.Rect
	Speed int // Horizontal step for Move
}

func newPlayer() Player {
	return Player{
		Box:   core.NewRect(PlayerStartX, PlayerY, PlayerW, PlayerH),
		Speed: BaseSpeed,
	}
}

// Move shifts the player one step in the given direction, staying inside the field.
func (p *Player) Move(dir core.Direction) {
	p.Box.X = core.Clamp(p.Box.X+dir.Sign()*p.Speed, 0, FieldW-p.Box.W)
}

// CenterOn places the player so its center is at x, clamped to the field.
func (p *Player) CenterOn(x int) {
	p.Box.X = core.Clamp(x-p.Box.W/2, 0, FieldW-p.Box.W)
}

// Obstacle is a falling block. It costs a life on contact unless shielded.
type Obstacle struct {
	ID  EntityID
	Box core.Rect
}

// PowerUpKind is the effect granted by a collected power-up.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpSpeed
	PowerUpMultiplier
	powerUpKindCount
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "Shield"
	case PowerUpSpeed:
		return "Speed"
	case PowerUpMultiplier:
		return "Multiplier"
	default:
		return "Unknown"
	}
}

// Glyph returns the display character for the power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpShield:
		return 'S'
	case PowerUpSpeed:
		return '>'
	case PowerUpMultiplier:
		return '2'
	default:
		return '?'
	}
}

// Color returns the display color for the power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpShield:
		return core.ColorCyan
	case PowerUpSpeed:
		return core.ColorGreen
	case PowerUpMultiplier:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	ID   EntityID
	Box  core.Rect
	Kind PowerUpKind
}

// Store holds the falling entities of a run in insertion order.
// IDs are never reused within a run, so removal by ID is stable while the
// collision pass walks the sequences.
type Store struct {
	nextID    EntityID
	obstacles []Obstacle
	powerUps  []PowerUp
}

// AddObstacle appends an obstacle and returns its assigned ID.
func (s *Store) AddObstacle(o Obstacle) EntityID {
	s.nextID++
	o.ID = s.nextID
	s.obstacles = append(s.obstacles, o)
	return o.ID
}

// AddPowerUp appends a power-up and returns its assigned ID.
func (s *Store) AddPowerUp(p PowerUp) EntityID {
	s.nextID++
	p.ID = s.nextID
	s.powerUps = append(s.powerUps, p)
	return p.ID
}

// Obstacles returns the live obstacles in insertion order.
// The slice is owned by the store and must not be modified.
func (s *Store) Obstacles() []Obstacle {
	return s.obstacles
}

// PowerUps returns the live power-ups in insertion order.
// The slice is owned by the store and must not be modified.
func (s *Store) PowerUps() []PowerUp {
	return s.powerUps
}

// RemoveObstacle deletes the obstacle with the given ID.
// Returns false, and does nothing, if no such obstacle exists.
func (s *Store) RemoveObstacle(id EntityID) bool {
	for i, o := range s.obstacles {
		if o.ID == id {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			return true
		}
	}
	return false
}

// RemovePowerUp deletes the power-up with the given ID.
// Returns false, and does nothing, if no such power-up exists.
func (s *Store) RemovePowerUp(id EntityID) bool {
	for i, p := range s.powerUps {
		if p.ID == id {
			s.powerUps = append(s.powerUps[:i], s.powerUps[i+1:]...)
			return true
		}
	}
	return false
}

// Fall moves every entity down by dy.
func (s *Store) Fall(dy int) {
	for i := range s.obstacles {
		s.obstacles[i].Box.Y += dy
	}
	for i := range s.powerUps {
		s.powerUps[i].Box.Y += dy
	}
}

// Cull removes entities whose top edge is at or below height.
// Returns the number of entities removed.
func (s *Store) Cull(height int) int {
	removed := 0

	obstacles := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Box.Y < height {
			obstacles = append(obstacles, o)
		} else {
			removed++
		}
	}
	s.obstacles = obstacles

	powerUps := s.powerUps[:0]
	for _, p := range s.powerUps {
		if p.Box.Y < height {
			powerUps = append(powerUps, p)
		} else {
			removed++
		}
	}
	s.powerUps = powerUps

	return removed
}

// Len returns the total number of live entities.
func (s *Store) Len() int {
	return len(s.obstacles) + len(s.powerUps)
}

// Clear drops every entity. IDs keep increasing.
func (s *Store) Clear() {
	s.obstacles = s.obstacles[:0]
	s.powerUps = s.powerUps[:0]
}
