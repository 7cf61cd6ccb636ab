package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/lixenwraith/brick-breaker/parameter"
)

// Config is the runtime configuration of a host process
type Config struct {
	Log     LogConfig
	Game    GameConfig
	Storage StorageConfig
	Levels  LevelsConfig
	Audio   AudioConfig
}

// LogConfig controls logrus output and lumberjack rotation
type LogConfig struct {
	File       string
	Level      string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Console    bool
}

type GameConfig struct {
	TickRate int // ticks per second
	Seed     uint64
	// UseLevelDropChance replaces the fixed drop probability with each level's own
	UseLevelDropChance bool
	StartLevel         int
}

type StorageConfig struct {
	Path string // directory holding the save file
}

type LevelsConfig struct {
	Dir string // optional directory of TOML level packs
}

type AudioConfig struct {
	Enabled bool
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Log: LogConfig{
			File:       "brickbreaker.log",
			Level:      "Info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Game: GameConfig{
			TickRate:   int(time.Second / parameter.TickInterval),
			StartLevel: 1,
		},
		Storage: StorageConfig{Path: defaultDataDir()},
		Audio:   AudioConfig{Enabled: true},
	}
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "brick-breaker")
	}
	return "."
}

// Load reads configuration from path, or searches the default locations when path is empty
// A missing file is not an error; BRICK_* environment variables override file values
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix("BRICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("brickbreaker")
		v.SetConfigType("toml")
		v.AddConfigPath("./")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "brick-breaker"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Default(), fmt.Errorf("read config: %w", err)
		}
	}

	return decode(v), nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("log.console", d.Log.Console)

	v.SetDefault("game.tick_rate", d.Game.TickRate)
	v.SetDefault("game.seed", d.Game.Seed)
	v.SetDefault("game.use_level_drop_chance", d.Game.UseLevelDropChance)
	v.SetDefault("game.start_level", d.Game.StartLevel)

	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("levels.dir", d.Levels.Dir)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
}

func decode(v *viper.Viper) Config {
	cfg := Config{
		Log: LogConfig{
			File:       cast.ToString(v.Get("log.file")),
			Level:      cast.ToString(v.Get("log.level")),
			MaxSize:    cast.ToInt(v.Get("log.max_size")),
			MaxBackups: cast.ToInt(v.Get("log.max_backups")),
			MaxAge:     cast.ToInt(v.Get("log.max_age")),
			Compress:   cast.ToBool(v.Get("log.compress")),
			Console:    cast.ToBool(v.Get("log.console")),
		},
		Game: GameConfig{
			TickRate:           cast.ToInt(v.Get("game.tick_rate")),
			Seed:               cast.ToUint64(v.Get("game.seed")),
			UseLevelDropChance: cast.ToBool(v.Get("game.use_level_drop_chance")),
			StartLevel:         cast.ToInt(v.Get("game.start_level")),
		},
		Storage: StorageConfig{Path: cast.ToString(v.Get("storage.path"))},
		Levels:  LevelsConfig{Dir: cast.ToString(v.Get("levels.dir"))},
		Audio:   AudioConfig{Enabled: cast.ToBool(v.Get("audio.enabled"))},
	}

	if cfg.Game.TickRate <= 0 {
		cfg.Game.TickRate = Default().Game.TickRate
	}
	if cfg.Game.StartLevel <= 0 {
		cfg.Game.StartLevel = 1
	}
	return cfg
}
