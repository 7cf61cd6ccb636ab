package asset

// GameFSMConfig is the level session state graph
// Action and guard names are registered by the game package before loading
const GameFSMConfig = `
initial = "Idle"

# --- SERVE ---
# A ball rests on the paddle until launched; leaving Idle launches it

[states.Idle]
on_enter = [
    { action = "ServeBall" },
]
on_exit = [
    { action = "LaunchBalls" },
]
transitions = [
    { trigger = "LaunchRequest", target = "Playing" },
]

# --- PLAY ---

[states.Playing]
transitions = [
    { trigger = "PauseRequest", target = "Paused" },
    { trigger = "AllBricksDestroyed", target = "LevelComplete" },
    { trigger = "BallsDepleted", target = "Idle", guard = "HasLives" },
    { trigger = "BallsDepleted", target = "GameOver" },
]

[states.Paused]
on_enter = [
    { action = "PauseClock" },
]
on_exit = [
    { action = "ResumeClock" },
]
transitions = [
    { trigger = "ResumeRequest", target = "Playing" },
]

# --- RESULT ---

[states.LevelComplete]
on_enter = [
    { action = "FinishLevel", event = "LevelWin" },
]

[states.GameOver]
on_enter = [
    { action = "FinishLevel", event = "LevelLose" },
]
on_exit = [
    { action = "GrantContinue" },
]
transitions = [
    { trigger = "ContinueRequest", target = "Idle" },
]
`
