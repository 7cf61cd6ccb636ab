package event

import (
	"strings"
	"sync"
)

var (
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
	registryOnce sync.Once
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	InitRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et == EventTick {
		return "Tick"
	}
	InitRegistry()
	return typeToName[et]
}

func (et EventType) String() string {
	if name := GetEventName(et); name != "" {
		return name
	}
	return "Unknown"
}

// InitRegistry populates the registry with all game events, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("LaunchRequest", EventLaunchRequest)
		RegisterType("PauseRequest", EventPauseRequest)
		RegisterType("ResumeRequest", EventResumeRequest)
		RegisterType("ContinueRequest", EventContinueRequest)

		RegisterType("BrickHit", EventBrickHit)
		RegisterType("BrickDestroyed", EventBrickDestroyed)
		RegisterType("PaddleBounce", EventPaddleBounce)
		RegisterType("WallBounce", EventWallBounce)
		RegisterType("BallAttached", EventBallAttached)

		RegisterType("BallLaunched", EventBallLaunched)
		RegisterType("BallLost", EventBallLost)
		RegisterType("BallRecovered", EventBallRecovered)
		RegisterType("BallsDepleted", EventBallsDepleted)

		RegisterType("PowerUpSpawned", EventPowerUpSpawned)
		RegisterType("PowerUpCollected", EventPowerUpCollected)
		RegisterType("PowerUpExpired", EventPowerUpExpired)

		RegisterType("ScoreChanged", EventScoreChanged)
		RegisterType("LifeAdded", EventLifeAdded)
		RegisterType("LifeLost", EventLifeLost)
		RegisterType("AllBricksDestroyed", EventAllBricksDestroyed)
		RegisterType("LevelWin", EventLevelWin)
		RegisterType("LevelLose", EventLevelLose)
		RegisterType("StateChanged", EventStateChanged)
	})
}
