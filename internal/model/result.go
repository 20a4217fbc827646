package model

import "time"

// SessionResult is one finished run as stored in the results history.
type SessionResult struct {
	ID             int64
	Seed           int64
	Outcome        string
	WavesCompleted int32
	Score          int32
	Kills          int32
	Breaches       int32
	BaseHealth     int32
	DurationMs     int64
	CreatedAt      time.Time
}
