package audio

import (
	"fmt"
	"os/exec"
	"strconv"
	"sync"

	"github.com/verte-zerg/numdrill/internal/model"
)

// Engine names in detection order.
var engineOrder = []string{"say", "espeak-ng", "espeak", "spd-say"}

// tonePlayer is the sox binary used for feedback tones when present.
const tonePlayer = "play"

// CommandSink speaks through an external text-to-speech binary. All playback
// is fire-and-forget; a missing or failing binary degrades to silence.
type CommandSink struct {
	engine     string
	enginePath string
	tonePath   string

	mu     sync.Mutex
	cmd    *exec.Cmd
	volume float64
	rate   int
	pref   Preference
	voice  *model.Voice
	voices []model.Voice
}

// NewCommandSink detects a TTS engine and returns a sink configured from cfg.
// cfg.Engine forces a specific engine. An error means no engine was found;
// callers may still run the drill with a NopSink.
func NewCommandSink(cfg model.Config) (*CommandSink, error) {
	engines := engineOrder
	if cfg.Engine != "" {
		engines = []string{cfg.Engine}
	}
	var enginePath, engine string
	for _, name := range engines {
		if path, err := exec.LookPath(name); err == nil {
			engine = name
			enginePath = path
			break
		}
	}
	if engine == "" {
		return nil, fmt.Errorf("no text-to-speech engine found (tried %v)", engines)
	}
	tonePath, _ := exec.LookPath(tonePlayer)
	pref := DefaultPreference
	pref.Name = cfg.Voice
	return &CommandSink{
		engine:     engine,
		enginePath: enginePath,
		tonePath:   tonePath,
		volume:     cfg.Volume,
		rate:       cfg.Rate,
		pref:       pref,
	}, nil
}

// Engine returns the detected engine name.
func (s *CommandSink) Engine() string { return s.engine }

// Speak implements Sink.
func (s *CommandSink) Speak(phrase string) {
	s.mu.Lock()
	s.stopLocked()
	args := s.speakArgs(phrase)
	cmd := exec.Command(s.enginePath, args...)
	if err := cmd.Start(); err != nil {
		s.mu.Unlock()
		return
	}
	s.cmd = cmd
	s.mu.Unlock()
	go func() {
		// Reap the process; playback failures stay silent.
		_ = cmd.Wait()
	}()
}

func (s *CommandSink) speakArgs(phrase string) []string {
	var args []string
	switch s.engine {
	case "say":
		if s.voice != nil {
			args = append(args, "-v", s.voice.Name)
		}
		if s.rate > 0 {
			args = append(args, "-r", strconv.Itoa(s.rate))
		}
	case "espeak", "espeak-ng":
		// espeak amplitude range is 0-200.
		args = append(args, "-a", strconv.Itoa(int(s.volume*200)))
		if s.voice != nil {
			args = append(args, "-v", s.voice.Lang)
		}
		if s.rate > 0 {
			args = append(args, "-s", strconv.Itoa(s.rate))
		}
	case "spd-say":
		// spd-say volume range is -100..100.
		args = append(args, "-i", strconv.Itoa(int(s.volume*200)-100))
		if s.voice != nil {
			args = append(args, "-y", s.voice.Name)
		}
	}
	return append(args, phrase)
}

// Success implements Sink.
func (s *CommandSink) Success() {
	s.playTone("880", "0.12")
}

// Failure implements Sink.
func (s *CommandSink) Failure() {
	s.playTone("220", "0.25")
}

func (s *CommandSink) playTone(freq, duration string) {
	if s.tonePath == "" {
		return
	}
	s.mu.Lock()
	vol := s.volume
	s.mu.Unlock()
	cmd := exec.Command(s.tonePath, "-qn", "synth", duration, "sine", freq,
		"vol", strconv.FormatFloat(vol, 'f', 2, 64))
	if err := cmd.Start(); err != nil {
		return
	}
	go func() {
		_ = cmd.Wait()
	}()
}

// Stop implements Sink.
func (s *CommandSink) Stop() {
	s.mu.Lock()
	s.stopLocked()
	s.mu.Unlock()
}

func (s *CommandSink) stopLocked() {
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	s.cmd = nil
}

// SetVolume implements Sink.
func (s *CommandSink) SetVolume(v float64) {
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
}

// Probe implements Sink. It queries the engine's voice list and selects the
// preferred voice. The list may arrive after the first Speak; until then the
// engine's default voice is used.
func (s *CommandSink) Probe() error {
	var out []byte
	var err error
	switch s.engine {
	case "say":
		out, err = exec.Command(s.enginePath, "-v", "?").Output()
	case "espeak", "espeak-ng":
		out, err = exec.Command(s.enginePath, "--voices").Output()
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list voices: %w", err)
	}
	var voices []model.Voice
	if s.engine == "say" {
		voices = ParseSayVoices(string(out))
	} else {
		voices = ParseEspeakVoices(string(out))
	}
	s.mu.Lock()
	s.voices = voices
	if v, ok := SelectVoice(voices, s.pref); ok {
		s.voice = &v
	}
	s.mu.Unlock()
	return nil
}

// Voices implements Sink.
func (s *CommandSink) Voices() []model.Voice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Voice, len(s.voices))
	copy(out, s.voices)
	return out
}
