package service

import "time"

// MetricsRecorder receives operational counters from the usecases
type MetricsRecorder interface {
	ObserveDispatch(notificationType string, err error)
	ObserveEvent(table, outcome string)
	ObserveLeaderboardRun(participants int, elapsed time.Duration, err error)
}
