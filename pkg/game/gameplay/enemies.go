package gameplay

import (
	"time"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/state"
)

// Advance runs the enemy wander step if a full interval has passed since the last one.
// The first call only starts the clock. Returns true if enemies stepped.
func Advance(g *state.Game, now time.Time) bool {
	if g.EnemyStepInterval <= 0 {
		return false
	}
	if g.LastEnemyStep.IsZero() {
		g.LastEnemyStep = now
		return false
	}
	if now.Sub(g.LastEnemyStep) < g.EnemyStepInterval {
		return false
	}

	StepEnemies(g)
	g.LastEnemyStep = now
	return true
}

// StepEnemies moves each enemy one cell in a uniformly random direction.
// The step is skipped when the target is not floor or is occupied.
func StepEnemies(g *state.Game) {
	dirs := world.AllDirections()
	for _, e := range g.Enemies {
		dir := dirs[g.Rng.Intn(len(dirs))]
		target := e.Pos.Step(dir)
		if !g.IsWalkable(target) || g.IsOccupied(target) {
			continue
		}
		e.Pos = target
	}
}
