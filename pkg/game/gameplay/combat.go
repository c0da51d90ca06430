package gameplay

import (
	"dungeoncrawler/pkg/engine/logger"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/state"
)

// Melee hits an adjacent enemy with the player's class melee damage
func Melee(g *state.Game, enemy *entities.Enemy) {
	damage := g.Player.Class.Info().MeleeDamage
	logMessage(g, "MELEE_HIT", damage)
	applyDamage(g, enemy, damage)
}

// Fire launches a projectile in the facing direction. It travels over floor
// cells until it hits an enemy, leaves the floor or runs out of range.
// Returns the shot, or nil if the class has no ranged attack.
func Fire(g *state.Game) *entities.Projectile {
	info := g.Player.Class.Info()
	if info.RangedDamage <= 0 {
		logMessage(g, "NO_RANGED")
		return nil
	}

	shot := &entities.Projectile{Damage: info.RangedDamage}
	pos := g.Player.Pos
	var target *entities.Enemy

	for i := 0; i < info.RangedRange; i++ {
		pos = pos.Step(g.Player.Facing)
		if !g.IsWalkable(pos) {
			break
		}
		shot.Path = append(shot.Path, pos)
		if enemy := g.EnemyAt(pos); enemy != nil {
			target = enemy
			break
		}
	}

	g.LastShot = shot
	if target == nil {
		logMessage(g, "RANGED_MISS")
		return shot
	}

	shot.Hit = true
	logMessage(g, "RANGED_HIT", shot.Damage)
	applyDamage(g, target, shot.Damage)
	return shot
}

// applyDamage hurts enemy and removes it once its health is gone
func applyDamage(g *state.Game, enemy *entities.Enemy, damage int) {
	if !enemy.TakeDamage(damage) {
		return
	}

	g.RemoveDead()
	logger.Debug("enemy slain", "enemy", enemy.ID, "remaining", len(g.Enemies))
	logMessage(g, "ENEMY_SLAIN")
	if len(g.Enemies) == 0 {
		logMessage(g, "ALL_SLAIN")
	}
}
