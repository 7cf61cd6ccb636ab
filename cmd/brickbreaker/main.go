package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/audio"
	"github.com/lixenwraith/brick-breaker/config"
	"github.com/lixenwraith/brick-breaker/engine"
	"github.com/lixenwraith/brick-breaker/game"
	"github.com/lixenwraith/brick-breaker/level"
	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/progression"
	"github.com/lixenwraith/brick-breaker/render"
	"github.com/lixenwraith/brick-breaker/status"
	"github.com/lixenwraith/brick-breaker/storage"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	levelFlag  = flag.Int("level", 0, "Level to start on; defaults to the saved current level")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v (using defaults)\n", err)
	}
	log := logger.New(cfg.Log)

	a, err := setup(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBRICK-BREAKER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	a.screen = screen
	a.renderer = render.NewRenderer(screen)

	if cfg.Audio.Enabled {
		if err := a.sound.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		}
		defer a.sound.Cleanup()
	}

	start := *levelFlag
	if start == 0 {
		start = a.store.CurrentLevel()
	}
	if err := a.load(start); err != nil {
		log.WithError(err).WithField("level", start).Warn("start level unavailable, falling back")
		if err := a.load(cfg.Game.StartLevel); err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
			os.Exit(1)
		}
	}

	a.run(cfg.Game.TickRate)
	log.WithFields(logrus.Fields(a.reg.Snapshot())).Info("session closed")
}

// setup builds every non-terminal collaborator from configuration
func setup(cfg config.Config, log *logrus.Logger) (*app, error) {
	reg := status.NewRegistry()

	store := storage.NewManager(storage.NewFileBackend(filepath.Join(cfg.Storage.Path, parameter.StorageFileName)), log)

	catalog := level.Builtin()
	if cfg.Levels.Dir != "" {
		c, err := level.LoadDir(catalog, cfg.Levels.Dir)
		if err != nil {
			return nil, fmt.Errorf("level packs: %w", err)
		}
		catalog = c
	}

	progress := progression.NewService(store, catalog, log)
	settings := store.Settings()

	g, err := game.New(game.Options{
		Catalog:            catalog,
		Progress:           progress,
		Log:                log,
		Status:             reg,
		UseLevelDropChance: cfg.Game.UseLevelDropChance,
		Sensitivity:        settings.Sensitivity,
	})
	if err != nil {
		return nil, err
	}

	sound := audio.NewSoundManager(log, reg)
	sound.SetEnabled(settings.SoundEnabled)

	return &app{
		game:     g,
		sound:    sound,
		store:    store,
		progress: progress,
		catalog:  catalog,
		stepper:  engine.NewFixedStepper(engine.NewMonotonicTimeProvider(), parameter.TickInterval, parameter.MaxCatchUpSteps),
		log:      log,
		reg:      reg,
	}, nil
}
