package config

import "time"

// CadenceConfig holds the per-phase waits returned by the lifecycle machine.
type CadenceConfig struct {
	IdleWait           time.Duration
	PregameWindow      time.Duration
	AwaitingWait       time.Duration
	OfficialsRetryWait time.Duration
	LiveWait           time.Duration
	IntermissionWait   time.Duration
	RecapRetryWait     time.Duration
	CooldownWait       time.Duration
	RecapDeadline      time.Duration
	GoalHoldCycles     int
}

func loadCadence() CadenceConfig {
	return CadenceConfig{
		IdleWait:           durationEnvOrDefault(envIdleWait, defaultIdleWait),
		PregameWindow:      durationEnvOrDefault(envPregameWindow, defaultPregameWindow),
		AwaitingWait:       durationEnvOrDefault(envAwaitingWait, defaultAwaitingWait),
		OfficialsRetryWait: durationEnvOrDefault(envOfficialsRetryWait, defaultOfficialsRetryWait),
		LiveWait:           durationEnvOrDefault(envLiveWait, defaultLiveWait),
		IntermissionWait:   durationEnvOrDefault(envIntermissionWait, defaultIntermissionWait),
		RecapRetryWait:     durationEnvOrDefault(envRecapRetryWait, defaultRecapRetryWait),
		CooldownWait:       durationEnvOrDefault(envCooldownWait, defaultCooldownWait),
		RecapDeadline:      durationEnvOrDefault(envRecapDeadline, defaultRecapDeadline),
		GoalHoldCycles:     intEnvOrDefault(envGoalHoldCycles, defaultGoalHoldCycles),
	}
}
