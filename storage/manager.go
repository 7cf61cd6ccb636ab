package storage

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/parameter"
)

var ErrVersionMismatch = errors.New("save version mismatch")

// Store is the persisted-progress surface the game and progression rules use
type Store interface {
	SaveLevelScore(levelID, score, stars int) (newBest bool)
	LevelScore(levelID int) int
	LevelStars(levelID int) int
	TotalStars() int
	IsWorldUnlocked(worldID int) bool
	UnlockWorld(worldID int) bool
	UnlockedWorlds() []int
	CurrentLevel() int
	SetCurrentLevel(levelID int)
	Settings() Settings
	UpdateSettings(p SettingsPatch) Settings
	Reset()
}

// Manager is a Store over a Backend
// Every mutation is written through; write failures are logged and the in-memory state stays authoritative
type Manager struct {
	mu      sync.RWMutex
	backend Backend
	log     logrus.FieldLogger
	now     func() time.Time
	data    Progress
}

var _ Store = (*Manager)(nil)

// NewManager loads progress from backend, falling back to defaults on any failure
func NewManager(backend Backend, log logrus.FieldLogger) *Manager {
	m := &Manager{
		backend: backend,
		log:     logger.OrDiscard(log),
		now:     time.Now,
	}
	m.data = m.load()
	return m
}

func (m *Manager) load() Progress {
	raw, err := m.backend.Read()
	if errors.Is(err, ErrNotFound) {
		m.log.Info("no saved data, using defaults")
		return m.fresh()
	}
	if err != nil {
		m.log.WithError(err).Error("load save failed, using defaults")
		return m.fresh()
	}

	p, err := Decode(raw)
	if err != nil {
		m.log.WithError(err).Warn("save unreadable, using defaults")
		return m.fresh()
	}
	m.log.WithField("install_id", p.InstallID).Info("save loaded")
	return p
}

func (m *Manager) fresh() Progress {
	p := DefaultProgress()
	p.InstallID = uuid.NewString()
	return p
}

// Encode wraps progress in a versioned envelope
func Encode(p Progress, at time.Time) ([]byte, error) {
	return msgpack.Marshal(&envelope{
		Version:   parameter.StorageVersion,
		Timestamp: at.UnixMilli(),
		Data:      p,
	})
}

// Decode unwraps an envelope, rejecting other versions
func Decode(raw []byte) (Progress, error) {
	var env envelope
	if err := msgpack.Unmarshal(raw, &env); err != nil {
		return Progress{}, fmt.Errorf("decode save: %w", err)
	}
	if env.Version != parameter.StorageVersion {
		return Progress{}, fmt.Errorf("%w: got %q want %q", ErrVersionMismatch, env.Version, parameter.StorageVersion)
	}
	env.Data.normalize()
	return env.Data, nil
}

// persist writes the current state; callers hold mu
func (m *Manager) persist() {
	raw, err := Encode(m.data, m.now())
	if err != nil {
		m.log.WithError(err).Error("encode save failed")
		return
	}
	if err := m.backend.Write(raw); err != nil {
		m.log.WithError(err).Error("write save failed")
	}
}

// SaveLevelScore records a completion; score and stars each only ever increase
// Returns true if either improved
func (m *Manager) SaveLevelScore(levelID, score, stars int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	improved := false
	if score > m.data.HighScores[levelID] {
		m.data.HighScores[levelID] = score
		improved = true
	}
	if cur := m.data.LevelStars[levelID]; stars > cur {
		m.data.LevelStars[levelID] = stars
		m.data.TotalStars += stars - cur
		improved = true
	}
	if improved {
		m.persist()
	}
	return improved
}

func (m *Manager) LevelScore(levelID int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.HighScores[levelID]
}

func (m *Manager) LevelStars(levelID int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.LevelStars[levelID]
}

func (m *Manager) TotalStars() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.TotalStars
}

func (m *Manager) IsWorldUnlocked(worldID int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Contains(m.data.UnlockedWorlds, worldID)
}

// UnlockWorld opens worldID, returning false if it was already open
func (m *Manager) UnlockWorld(worldID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slices.Contains(m.data.UnlockedWorlds, worldID) {
		return false
	}
	m.data.UnlockedWorlds = append(m.data.UnlockedWorlds, worldID)
	m.persist()
	m.log.WithField("world", worldID).Info("world unlocked")
	return true
}

// UnlockedWorlds returns open world ids ascending
func (m *Manager) UnlockedWorlds() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := slices.Clone(m.data.UnlockedWorlds)
	sort.Ints(out)
	return out
}

func (m *Manager) CurrentLevel() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.CurrentLevel
}

func (m *Manager) SetCurrentLevel(levelID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if levelID < 1 || levelID == m.data.CurrentLevel {
		return
	}
	m.data.CurrentLevel = levelID
	m.persist()
}

func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Settings
}

// UpdateSettings merges p into the settings and returns the result
func (m *Manager) UpdateSettings(p SettingsPatch) Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data.Settings = p.apply(m.data.Settings)
	m.persist()
	return m.data.Settings
}

// InstallID identifies this save across sessions
func (m *Manager) InstallID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.InstallID
}

// Snapshot returns a copy of all progress
func (m *Manager) Snapshot() Progress {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.clone()
}

// Reset restores defaults, keeping the install id
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.data.InstallID
	m.data = DefaultProgress()
	m.data.InstallID = id
	m.persist()
	m.log.Info("progress reset")
}
