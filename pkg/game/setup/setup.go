// Package setup builds a playable game from configuration and the class chosen on the menu.
package setup

import (
	"errors"
	"fmt"
	"math/rand"

	"dungeoncrawler/pkg/engine/logger"
	"dungeoncrawler/pkg/game/config"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/generator"
	"dungeoncrawler/pkg/game/state"
)

// ErrNoClassSelected is returned when the game is entered without a chosen class
var ErrNoClassSelected = errors.New("no class selected")

// CarverFor maps a configured carver name to its implementation
func CarverFor(name string) (generator.Carver, error) {
	switch name {
	case config.CarverFixed, "":
		return generator.DefaultCarver, nil
	case config.CarverRandom:
		return generator.RandomMargin{}, nil
	}
	return nil, fmt.Errorf("unknown carver %q", name)
}

// NewGame generates a dungeon for seed and populates it.
// Generation, spawning and enemy wandering all draw from one stream seeded by seed.
func NewGame(cfg *config.Config, class entities.PlayerClass, seed int64) (*state.Game, error) {
	if !class.IsValid() {
		return nil, ErrNoClassSelected
	}

	carver, err := CarverFor(cfg.Map.Carver)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	d, err := generator.Generate(generator.Options{
		Root:   generator.Rect{Width: cfg.Map.Width, Height: cfg.Map.Height},
		Depth:  cfg.Map.Depth,
		Carver: carver,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}

	g := state.NewGame(d, seed, rng)
	g.EnemyStepInterval = cfg.Enemies.StepInterval()

	PlacePlayer(g, class)
	SpawnEnemies(g, cfg.Enemies.SpawnChance, cfg.Enemies.Health)

	logger.Info("dungeon generated",
		"seed", seed,
		"class", class.String(),
		"rooms", len(d.Rooms),
		"floor", d.Floor.Size(),
		"walls", d.Walls.Size(),
		"enemies", len(g.Enemies))

	return g, nil
}
