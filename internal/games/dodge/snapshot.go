package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// EntityKind distinguishes entities in a render snapshot.
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityObstacle
	EntityPowerUp
)

// EntityView is a read-only description of one entity for presentation.
type EntityView struct {
	Kind    EntityKind
	Box     core.Rect
	PowerUp PowerUpKind // Only meaningful for EntityPowerUp
}

// Entities lists the player followed by obstacles and power-ups in
// insertion order.
func (g *Game) Entities() []EntityView {
	st := &g.session.State
	views := make([]EntityView, 0, 1+st.Entities.Len())

	views = append(views, EntityView{Kind: EntityPlayer, Box: st.Player.Box})
	for _, o := range st.Entities.Obstacles() {
		views = append(views, EntityView{Kind: EntityObstacle, Box: o.Box})
	}
	for _, p := range st.Entities.PowerUps() {
		views = append(views, EntityView{Kind: EntityPowerUp, Box: p.Box, PowerUp: p.Kind})
	}
	return views
}
