package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"dungeoncrawler/locales"
	"dungeoncrawler/pkg/engine/logger"
	"dungeoncrawler/pkg/engine/terminal"
	"dungeoncrawler/pkg/game/config"
	"dungeoncrawler/pkg/game/devtools"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/gameplay"
	"dungeoncrawler/pkg/game/menu"
	"dungeoncrawler/pkg/game/renderer"
	ebitenrenderer "dungeoncrawler/pkg/game/renderer/ebiten"
	"dungeoncrawler/pkg/game/renderer/tui"
)

func main() {
	configPath := flag.String("config", "dungeon.yaml", "path to the YAML config file")
	dumpPath := flag.String("dump", "", "write <path>.txt and <path>.yaml for the configured seed and exit")
	var overrides config.Overrides
	overrides.Register(flag.CommandLine)
	flag.Parse()

	if err := run(*configPath, *dumpPath, overrides); err != nil {
		fmt.Fprintf(os.Stderr, "dungeoncrawler: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dumpPath string, overrides config.Overrides) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cfg.Apply(flag.CommandLine, overrides)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Initialize(logger.Config{
		Level:          cfg.Logging.Level,
		FilePath:       cfg.Logging.File,
		FileMaxSizeMB:  cfg.Logging.MaxSizeMB,
		FileMaxBackups: cfg.Logging.MaxBackups,
		FileMaxAgeDays: cfg.Logging.MaxAgeDays,
		// The TUI owns the terminal, so only other modes log to stderr
		Console: dumpPath != "" || cfg.Render.Backend != config.BackendTUI,
	}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Close()

	lang, err := locales.Load(cfg.Locale)
	if err != nil {
		return fmt.Errorf("load locale: %w", err)
	}
	logger.Info("starting", "config", configPath, "locale", lang, "backend", cfg.Render.Backend)

	if dumpPath != "" {
		return dump(cfg, dumpPath)
	}

	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	renderer.SetRenderer(r)
	renderer.Init()
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	var loopErr error
	runErr := renderer.Run(func() {
		loopErr = play(cfg)
	})

	renderer.Clear()
	renderer.ShowMessage(gotext.Get("GOODBYE"))
	return errors.Join(runErr, loopErr)
}

// newRenderer builds the configured backend
func newRenderer(cfg *config.Config) (renderer.Renderer, error) {
	switch cfg.Render.Backend {
	case config.BackendEbiten:
		return ebitenrenderer.New(ebitenrenderer.Options{
			WindowWidth:  cfg.Render.WindowWidth,
			WindowHeight: cfg.Render.WindowHeight,
			TileSize:     cfg.Render.TileSize,
			MinimapScale: cfg.Render.MinimapScale,
			Tick:         cfg.Enemies.StepInterval(),
		}), nil
	default:
		if !terminal.IsInteractive() {
			return nil, errors.New("the tui backend needs an interactive terminal; try -backend ebiten")
		}
		return tui.New(cfg.Enemies.StepInterval()), nil
	}
}

// play alternates between the class menu and a fresh dungeon until the player leaves
func play(cfg *config.Config) error {
	for {
		class, ok := menu.RunClassMenu()
		if !ok {
			return nil
		}

		g, err := gameplay.BuildGame(cfg, class, time.Now())
		if err != nil {
			return err
		}

		for !g.QuitToMenu {
			renderer.RenderFrame(g)
			gameplay.ProcessIntent(g, renderer.GetInput(), time.Now())
		}
		logger.Info("left dungeon", "seed", g.Seed, "enemies_left", len(g.Enemies))

		if g.Exit {
			return nil
		}
	}
}

// dump writes the configured dungeon to disk with a warrior placed in it
func dump(cfg *config.Config, path string) error {
	g, err := gameplay.BuildGame(cfg, entities.ClassWarrior, time.Now())
	if err != nil {
		return err
	}
	if err := devtools.Dump(path, g.Dungeon, g.Seed, devtools.GameOverlay(g)); err != nil {
		return err
	}
	logger.Info("dungeon dumped", "path", path, "seed", g.Seed, "rooms", len(g.Dungeon.Rooms))
	return nil
}
