package storage

import (
	"maps"
	"slices"

	"github.com/lixenwraith/brick-breaker/parameter"
)

// Settings are the player's persisted preferences
type Settings struct {
	SoundEnabled     bool `msgpack:"sound"`
	HapticEnabled    bool `msgpack:"haptic"`
	DarkMode         bool `msgpack:"dark"`
	ParticlesEnabled bool `msgpack:"particles"`
	TiltControl      bool `msgpack:"tilt"`
	Sensitivity      int  `msgpack:"sensitivity"`
}

// SettingsPatch updates only its non-nil fields
type SettingsPatch struct {
	SoundEnabled     *bool
	HapticEnabled    *bool
	DarkMode         *bool
	ParticlesEnabled *bool
	TiltControl      *bool
	Sensitivity      *int
}

func (p SettingsPatch) apply(s Settings) Settings {
	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}
	if p.HapticEnabled != nil {
		s.HapticEnabled = *p.HapticEnabled
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.ParticlesEnabled != nil {
		s.ParticlesEnabled = *p.ParticlesEnabled
	}
	if p.TiltControl != nil {
		s.TiltControl = *p.TiltControl
	}
	if p.Sensitivity != nil {
		s.Sensitivity = min(max(*p.Sensitivity, parameter.SensitivityMin), parameter.SensitivityMax)
	}
	return s
}

// Progress is everything persisted between sessions
type Progress struct {
	InstallID      string      `msgpack:"install_id"`
	HighScores     map[int]int `msgpack:"high_scores"`
	LevelStars     map[int]int `msgpack:"level_stars"`
	TotalStars     int         `msgpack:"total_stars"`
	UnlockedWorlds []int       `msgpack:"unlocked_worlds"`
	CurrentLevel   int         `msgpack:"current_level"`
	Settings       Settings    `msgpack:"settings"`
}

// DefaultSettings returns first-run preferences
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:     true,
		HapticEnabled:    true,
		DarkMode:         true,
		ParticlesEnabled: true,
		TiltControl:      false,
		Sensitivity:      parameter.SensitivityDefault,
	}
}

// DefaultProgress returns first-run progress: world 1 open, level 1 current
func DefaultProgress() Progress {
	return Progress{
		HighScores:     make(map[int]int),
		LevelStars:     make(map[int]int),
		UnlockedWorlds: []int{1},
		CurrentLevel:   1,
		Settings:       DefaultSettings(),
	}
}

func (p Progress) clone() Progress {
	p.HighScores = maps.Clone(p.HighScores)
	p.LevelStars = maps.Clone(p.LevelStars)
	p.UnlockedWorlds = slices.Clone(p.UnlockedWorlds)
	return p
}

// normalize repairs maps and slices a decoder left nil
func (p *Progress) normalize() {
	if p.HighScores == nil {
		p.HighScores = make(map[int]int)
	}
	if p.LevelStars == nil {
		p.LevelStars = make(map[int]int)
	}
	if !slices.Contains(p.UnlockedWorlds, 1) {
		p.UnlockedWorlds = append([]int{1}, p.UnlockedWorlds...)
	}
	if p.CurrentLevel < 1 {
		p.CurrentLevel = 1
	}
}

// envelope is the on-disk wrapper
type envelope struct {
	Version   string   `msgpack:"version"`
	Timestamp int64    `msgpack:"timestamp"`
	Data      Progress `msgpack:"data"`
}
