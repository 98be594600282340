package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestStoreInsertionOrderAndRemoval(t *testing.T) {
	var s Store
	a := s.AddObstacle(Obstacle{Box: core.NewRect(0, 0, 20, 20)})
	b := s.AddObstacle(Obstacle{Box: core.NewRect(50, 0, 20, 20)})
	p := s.AddPowerUp(PowerUp{Box: core.NewRect(100, 0, 15, 15), Kind: PowerUpSpeed})

	if a == b || b == p {
		t.Fatalf("IDs should be unique, got %d %d %d", a, b, p)
	}
	if got := s.Obstacles(); len(got) != 2 || got[0].ID != a || got[1].ID != b {
		t.Fatalf("obstacles not in insertion order: %+v", got)
	}

	if !s.RemoveObstacle(a) {
		t.Error("RemoveObstacle should report removing a live obstacle")
	}
	if s.RemoveObstacle(a) {
		t.Error("removing an already removed obstacle should be a no-op")
	}
	if s.RemovePowerUp(EntityID(999)) {
		t.Error("removing an unknown power-up should be a no-op")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
}

func TestStoreFallAndCull(t *testing.T) {
	var s Store
	s.AddObstacle(Obstacle{Box: core.NewRect(0, 390, 20, 20)})
	s.AddObstacle(Obstacle{Box: core.NewRect(0, 100, 20, 20)})
	s.AddPowerUp(PowerUp{Box: core.NewRect(0, 396, 15, 15)})

	s.Fall(5)
	if s.Obstacles()[1].Box.Y != 105 {
		t.Errorf("Fall should move obstacles down, Y = %d", s.Obstacles()[1].Box.Y)
	}

	removed := s.Cull(FieldH)
	if removed != 1 {
		t.Errorf("Cull removed %d entities, expected 1", removed)
	}
	if len(s.Obstacles()) != 2 {
		t.Errorf("obstacle still partly on screen should survive, got %d", len(s.Obstacles()))
	}
	if len(s.PowerUps()) != 0 {
		t.Errorf("power-up below the field should be culled, got %d", len(s.PowerUps()))
	}
}

func TestPlayerStaysInField(t *testing.T) {
	p := newPlayer()

	for i := 0; i < 50; i++ {
		p.Move(core.DirLeft)
		if p.Box.X < 0 {
			t.Fatalf("player left the field: x_min = %d", p.Box.X)
		}
	}
	if p.Box.X != 0 {
		t.Errorf("player should stop at the left wall, x_min = %d", p.Box.X)
	}

	for i := 0; i < 50; i++ {
		p.Move(core.DirRight)
		if p.Box.Right() > FieldW {
			t.Fatalf("player left the field: x_max = %d", p.Box.Right())
		}
	}
	if p.Box.Right() != FieldW {
		t.Errorf("player should stop at the right wall, x_max = %d", p.Box.Right())
	}
}

func TestPlayerCenterOnClamps(t *testing.T) {
	tests := []struct {
		x        int
		expected int // expected x_min
	}{
		{200, 180},
		{-100, 0},
		{0, 0},
		{400, FieldW - PlayerW},
		{1000, FieldW - PlayerW},
	}

	for _, tc := range tests {
		p := newPlayer()
		p.CenterOn(tc.x)
		if p.Box.X != tc.expected {
			t.Errorf("CenterOn(%d): x_min = %d, expected %d", tc.x, p.Box.X, tc.expected)
		}
	}
}
