package gameplay

import (
	"time"

	"dungeoncrawler/pkg/engine/logger"
	"dungeoncrawler/pkg/game/config"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/setup"
	"dungeoncrawler/pkg/game/state"
)

// ResolveSeed returns the configured seed, or one taken from now when it is zero
func ResolveSeed(cfg *config.Config, now time.Time) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return now.UnixNano()
}

// BuildGame generates a fresh dungeon for the chosen class.
// Every call with an unset seed produces a new layout.
func BuildGame(cfg *config.Config, class entities.PlayerClass, now time.Time) (*state.Game, error) {
	seed := ResolveSeed(cfg, now)

	g, err := setup.NewGame(cfg, class, seed)
	if err != nil {
		return nil, err
	}

	g.ClearMessages()
	logMessage(g, "WELCOME", seed)
	logMessage(g, "HELP")

	logger.Info("game started", "seed", seed, "class", class.String())
	return g, nil
}
