package entities

import "dungeoncrawler/pkg/engine/world"

// Player is the controllable character
type Player struct {
	Class  PlayerClass
	Pos    world.Position
	Facing world.Direction
}

// Enemy wanders the dungeon until its health runs out
type Enemy struct {
	ID     int
	Pos    world.Position
	Health int
	RoomID int // Room the enemy spawned in
}

// TakeDamage reduces health and reports whether the enemy died
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.IsDead()
}

// IsDead reports whether health has dropped to zero or below
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

// Projectile is a shot in flight, kept for rendering the last volley
type Projectile struct {
	Path   []world.Position // Cells the shot crossed, in order
	Damage int
	Hit    bool
}

// End returns the last cell the shot reached, or false if it never left the shooter
func (p Projectile) End() (world.Position, bool) {
	if len(p.Path) == 0 {
		return world.Position{}, false
	}
	return p.Path[len(p.Path)-1], true
}
