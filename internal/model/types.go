// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Digit level bounds for the drill.
const (
	MinDigits = 1
	MaxDigits = 3
)

// TrialCounts lists the trial counts the UI cycles through.
var TrialCounts = []int{10, 25, 50}

// Config defines drill settings.
type Config struct {
	Digits int
	Trials int
	Volume float64
	Voice  string
	Rate   int
	Engine string
	Mute   bool
}

// TrialRecord captures one length-complete attempt at a target.
type TrialRecord struct {
	Target    string
	Response  string
	Correct   bool
	ElapsedMs int64
}

// DigitAggregate accumulates per-digit stats within a session.
type DigitAggregate struct {
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// SessionSummary is a read-only snapshot of a drill session.
type SessionSummary struct {
	ID              uuid.UUID
	StartedAt       time.Time
	EndedAt         time.Time
	Digits          int
	Trials          int
	TrialsStarted   int
	FirstTryCorrect int
	Records         []TrialRecord
}

// Voice describes a text-to-speech voice reported by the engine.
type Voice struct {
	Name   string
	Lang   string
	Gender string
}
