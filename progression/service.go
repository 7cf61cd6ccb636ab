package progression

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/level"
	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/storage"
)

// Result is the outcome of recording a completed level
type Result struct {
	Stars int
	// NewBest is true when the stored score or stars improved
	NewBest        bool
	UnlockedWorlds []int
	NextLevel      int
	HasNext        bool
}

// WorldProgress summarizes one world's completion
type WorldProgress struct {
	Completed int
	Total     int
	Stars     int
	MaxStars  int
}

// NextWorld is the first locked world and the stars still missing for it
type NextWorld struct {
	World       level.World
	StarsNeeded int
}

// Service applies star rating and unlock gating to persisted progress
type Service struct {
	store   storage.Store
	catalog *level.Catalog
	log     logrus.FieldLogger
}

// NewService creates a progression service
func NewService(store storage.Store, catalog *level.Catalog, log logrus.FieldLogger) *Service {
	return &Service{store: store, catalog: catalog, log: logger.OrDiscard(log)}
}

// CompleteLevel rates a finished level, saves it, advances the current level and unlocks worlds
func (s *Service) CompleteLevel(levelID, score int, stats Stats) Result {
	r := Result{Stars: CalculateStars(stats)}
	r.NewBest = s.store.SaveLevelScore(levelID, score, r.Stars)

	r.NextLevel, r.HasNext = s.catalog.NextLevel(levelID)
	if r.HasNext && levelID >= s.store.CurrentLevel() {
		s.store.SetCurrentLevel(r.NextLevel)
	}

	r.UnlockedWorlds = s.CheckWorldUnlocks()

	s.log.WithFields(logrus.Fields{
		"level":    levelID,
		"score":    score,
		"stars":    r.Stars,
		"new_best": r.NewBest,
		"unlocked": r.UnlockedWorlds,
	}).Info("level completed")
	return r
}

// CheckWorldUnlocks opens every locked world whose threshold the star total meets
// Returns the newly opened ids
func (s *Service) CheckWorldUnlocks() []int {
	total := s.store.TotalStars()
	var opened []int
	for _, w := range s.catalog.Worlds() {
		if !s.store.IsWorldUnlocked(w.ID) && total >= w.UnlockStars {
			s.store.UnlockWorld(w.ID)
			opened = append(opened, w.ID)
		}
	}
	return opened
}

// IsWorldUnlocked reports whether worldID is open
func (s *Service) IsWorldUnlocked(worldID int) bool {
	return s.store.IsWorldUnlocked(worldID)
}

// IsLevelUnlocked reports whether levelID is playable
// The first level is always open; others need their world open and the previous level starred
func (s *Service) IsLevelUnlocked(levelID int) bool {
	l, ok := s.catalog.Level(levelID)
	if !ok {
		return false
	}
	prev, hasPrev := s.catalog.PreviousLevel(levelID)
	if !hasPrev {
		return true
	}
	if !s.store.IsWorldUnlocked(l.WorldID) {
		return false
	}
	return s.store.LevelStars(prev) > 0
}

// StarsToNextWorld reports the first locked world, false when all are open
func (s *Service) StarsToNextWorld() (NextWorld, bool) {
	total := s.store.TotalStars()
	for _, w := range s.catalog.Worlds() {
		if !s.store.IsWorldUnlocked(w.ID) {
			return NextWorld{World: w, StarsNeeded: max(0, w.UnlockStars-total)}, true
		}
	}
	return NextWorld{}, false
}

// WorldProgress counts starred levels and stars earned in worldID
func (s *Service) WorldProgress(worldID int) WorldProgress {
	w, ok := s.catalog.World(worldID)
	if !ok {
		return WorldProgress{}
	}
	p := WorldProgress{Total: len(w.Levels), MaxStars: 3 * len(w.Levels)}
	for _, id := range w.Levels {
		stars := s.store.LevelStars(id)
		if stars > 0 {
			p.Completed++
		}
		p.Stars += stars
	}
	return p
}
