package dodge

import "time"

// State is everything that belongs to a single run.
type State struct {
	Player           Player
	Entities         Store
	Score            int
	Lives            int
	Difficulty       Difficulty
	PowerUpSpawnRate float64
	Effects          Effects
	Elapsed          time.Duration // Simulated time since the run started
	Ticks            int
	GameOver         bool
	Paused           bool
}

// StartingLives is the number of lives at the start of each run.
const StartingLives = 3

func newState() State {
	return State{
		Player:           newPlayer(),
		Lives:            StartingLives,
		Difficulty:       newDifficulty(),
		PowerUpSpawnRate: PowerUpSpawnRate,
	}
}

// Session owns the current run and the best score seen by this process.
// The high score survives Reset and is never persisted.
type Session struct {
	State     State
	HighScore int
	Runs      int // Completed runs
}

// NewSession returns a session with a fresh run.
func NewSession() *Session {
	return &Session{State: newState()}
}

// Reset starts a new run in place, keeping the high score.
func (s *Session) Reset() {
	entities := s.State.Entities
	entities.Clear()

	s.State = newState()
	s.State.Entities = entities
}

// finish ends the current run and folds its score into the high score.
func (s *Session) finish() {
	s.State.GameOver = true
	s.Runs++
	if s.State.Score > s.HighScore {
		s.HighScore = s.State.Score
	}
}

// Progress summarizes how far the current run has gone.
type Progress struct {
	Ticks      int
	Elapsed    time.Duration
	BlockSpeed int
	SpawnRate  float64
}

// Progress reports the current run's clock and difficulty.
func (s *Session) Progress() Progress {
	return Progress{
		Ticks:      s.State.Ticks,
		Elapsed:    s.State.Elapsed,
		BlockSpeed: s.State.Difficulty.BlockSpeed,
		SpawnRate:  s.State.Difficulty.SpawnRate,
	}
}
