package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/brick-breaker/config"
	"github.com/lixenwraith/brick-breaker/game"
	"github.com/lixenwraith/brick-breaker/level"
	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/progression"
	"github.com/lixenwraith/brick-breaker/status"
	"github.com/lixenwraith/brick-breaker/storage"
)

var (
	configFlag    = flag.String("config", "", "Path to a TOML config file")
	fromFlag      = flag.Int("from", 1, "First level to play")
	countFlag     = flag.Int("count", 0, "Number of levels to play; 0 plays to the end of the catalog")
	seedFlag      = flag.Uint64("seed", 0, "Random seed; 0 uses game.seed from config")
	ticksFlag     = flag.Int("max-ticks", 20000, "Tick budget per level")
	continuesFlag = flag.Int("continues", 1, "Continues granted per level")
	persistFlag   = flag.Bool("persist", false, "Write progress to the configured save file instead of memory")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v (using defaults)\n", err)
	}
	cfg.Log.Console = true
	log := logger.New(cfg.Log)

	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Game.Seed
	}

	catalog := level.Builtin()
	if cfg.Levels.Dir != "" {
		if catalog, err = level.LoadDir(catalog, cfg.Levels.Dir); err != nil {
			log.WithError(err).Fatal("level packs")
		}
	}

	var backend storage.Backend = &storage.MemoryBackend{}
	if *persistFlag {
		backend = storage.NewFileBackend(filepath.Join(cfg.Storage.Path, parameter.StorageFileName))
	}
	store := storage.NewManager(backend, log)
	progress := progression.NewService(store, catalog, log)
	reg := status.NewRegistry()

	g, err := game.New(game.Options{
		Catalog:            catalog,
		Progress:           progress,
		Rand:               rand.New(rand.NewSource(seed)),
		Log:                log,
		Status:             reg,
		UseLevelDropChance: cfg.Game.UseLevelDropChance,
		Sensitivity:        parameter.SensitivityMax,
	})
	if err != nil {
		log.WithError(err).Fatal("game setup")
	}

	b := &bot{game: g, log: log, maxTicks: *ticksFlag, maxContinues: *continuesFlag}
	results := runLevels(b, catalog, *fromFlag, *countFlag, log)

	won := 0
	for _, r := range results {
		if r.Outcome == OutcomeWon {
			won++
		}
	}
	log.WithFields(logrus.Fields{
		"seed":        seed,
		"played":      len(results),
		"won":         won,
		"total_stars": store.TotalStars(),
		"worlds":      store.UnlockedWorlds(),
	}).Info("autoplay finished")
	log.WithFields(logrus.Fields(reg.Snapshot())).Info("metrics")
}

// runLevels plays count levels in catalog order from id; count 0 means all remaining
func runLevels(b *bot, catalog *level.Catalog, from, count int, log logrus.FieldLogger) []Result {
	var results []Result
	id, ok := from, true
	if _, exists := catalog.Level(id); !exists {
		log.WithField("level", id).Error("unknown start level")
		return nil
	}
	for ok && (count == 0 || len(results) < count) {
		r, err := b.play(id)
		if err != nil {
			log.WithError(err).WithField("level", id).Error("level failed to load")
			break
		}
		results = append(results, r)
		id, ok = catalog.NextLevel(id)
	}
	return results
}
