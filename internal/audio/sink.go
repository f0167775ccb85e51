// Package audio dispatches speech and feedback sounds to external engines.
package audio

import "github.com/verte-zerg/numdrill/internal/model"

// Sink receives playback requests from the drill. Implementations must never
// fail loudly: if the environment cannot play audio the drill continues in
// silent mode.
type Sink interface {
	// Speak silences any in-flight playback and speaks the phrase.
	Speak(phrase string)
	// Success plays the success chime.
	Success()
	// Failure plays the error tone.
	Failure()
	// Stop silences any in-flight playback.
	Stop()
	// SetVolume adjusts playback volume in [0, 1].
	SetVolume(v float64)
	// Probe refreshes the available voice list and selects a voice.
	Probe() error
	// Voices returns the voices reported by the engine, if probed.
	Voices() []model.Voice
}

// NopSink discards all playback requests. Used for --mute and in tests.
type NopSink struct{}

// Speak implements Sink.
func (NopSink) Speak(string) {}

// Success implements Sink.
func (NopSink) Success() {}

// Failure implements Sink.
func (NopSink) Failure() {}

// Stop implements Sink.
func (NopSink) Stop() {}

// SetVolume implements Sink.
func (NopSink) SetVolume(float64) {}

// Probe implements Sink.
func (NopSink) Probe() error { return nil }

// Voices implements Sink.
func (NopSink) Voices() []model.Voice { return nil }
