// Package drill owns the trial state machine for a dictation session.
package drill

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/numdrill/internal/generator"
	"github.com/verte-zerg/numdrill/internal/model"
	"github.com/verte-zerg/numdrill/internal/words"
)

// FeedbackDelay is how long correct/incorrect feedback stays on screen
// before the session advances.
const FeedbackDelay = 2 * time.Second

// Status is the current phase of the session.
type Status int

// Session phases.
const (
	StatusIdle Status = iota
	StatusListening
	StatusCorrect
	StatusIncorrect
	StatusComplete
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusListening:
		return "listening"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Event is an external input to the session.
type Event interface{ isEvent() }

// Start begins the first trial from idle, or restarts after completion.
type Start struct{}

// Digit appends a typed digit ('0'..'9') to the current input.
type Digit struct{ Digit byte }

// Backspace removes the last input digit.
type Backspace struct{}

// Clear empties the current input.
type Clear struct{}

// Replay re-speaks the current target without altering state.
type Replay struct{}

// Reset discards all progress and starts a fresh session.
type Reset struct{}

// Advance fires after the feedback delay. Stale epochs no-op.
type Advance struct{ Epoch uint64 }

// SetDigits changes the digit level and resets to idle.
type SetDigits struct{ Digits int }

// SetTrials changes the trial count and restarts the session.
type SetTrials struct{ Trials int }

// SetVolume adjusts speech volume without resetting progress.
type SetVolume struct{ Volume float64 }

// ShowHint reveals the written phrase for the current target.
type ShowHint struct{}

// ToggleGuide toggles the persistent number-word guide.
type ToggleGuide struct{}

func (Start) isEvent()       {}
func (Digit) isEvent()       {}
func (Backspace) isEvent()   {}
func (Clear) isEvent()       {}
func (Replay) isEvent()      {}
func (Reset) isEvent()       {}
func (Advance) isEvent()     {}
func (SetDigits) isEvent()   {}
func (SetTrials) isEvent()   {}
func (SetVolume) isEvent()   {}
func (ShowHint) isEvent()    {}
func (ToggleGuide) isEvent() {}

// Effect is a side effect the caller must carry out.
type Effect interface{ isEffect() }

// Speak requests playback of a phrase.
type Speak struct{ Phrase string }

// PlaySuccess requests the success chime.
type PlaySuccess struct{}

// PlayFailure requests the error tone.
type PlayFailure struct{}

// Schedule requests an Advance event after Delay, tagged with Epoch.
type Schedule struct {
	Epoch uint64
	Delay time.Duration
}

func (Speak) isEffect()       {}
func (PlaySuccess) isEffect() {}
func (PlayFailure) isEffect() {}
func (Schedule) isEffect()    {}

// Session holds all drill state. All mutation goes through Apply; consumers
// read snapshots via the accessor methods.
type Session struct {
	cfg model.Config
	gen *generator.Generator

	id        uuid.UUID
	startedAt time.Time
	endedAt   time.Time

	status          Status
	target          string
	input           []byte
	trialsStarted   int
	firstTryCorrect int
	records         []model.TrialRecord
	missed          bool
	epoch           uint64

	listenStartedAt time.Time
	lastKeyAt       time.Time
	digitStats      map[byte]*model.DigitAggregate

	hintShown  bool
	guideShown bool

	now func() time.Time
}

// NewSession constructs an idle session with the given settings.
func NewSession(cfg model.Config, gen *generator.Generator) *Session {
	return &Session{
		cfg:        cfg,
		gen:        gen,
		id:         uuid.New(),
		startedAt:  time.Now(),
		status:     StatusIdle,
		digitStats: map[byte]*model.DigitAggregate{},
		now:        time.Now,
	}
}

// Apply processes one event and returns the effects the caller must perform.
func (s *Session) Apply(ev Event) []Effect {
	switch ev := ev.(type) {
	case Start:
		return s.handleStart()
	case Digit:
		return s.handleDigit(ev.Digit)
	case Backspace:
		if s.status == StatusListening && len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
		return nil
	case Clear:
		if s.status == StatusListening {
			s.input = s.input[:0]
		}
		return nil
	case Replay:
		if s.target == "" {
			return nil
		}
		return []Effect{Speak{Phrase: s.Phrase()}}
	case Reset:
		return s.restart()
	case Advance:
		return s.handleAdvance(ev.Epoch)
	case SetDigits:
		return s.handleSetDigits(ev.Digits)
	case SetTrials:
		return s.handleSetTrials(ev.Trials)
	case SetVolume:
		s.cfg.Volume = clampVolume(ev.Volume)
		return nil
	case ShowHint:
		if s.target != "" {
			s.hintShown = true
		}
		return nil
	case ToggleGuide:
		s.guideShown = !s.guideShown
		return nil
	default:
		return nil
	}
}

func (s *Session) handleStart() []Effect {
	switch s.status {
	case StatusIdle:
		return s.startTrial()
	case StatusComplete:
		return s.restart()
	default:
		return nil
	}
}

func (s *Session) startTrial() []Effect {
	s.trialsStarted++
	s.target = s.gen.Generate(s.cfg.Digits)
	s.input = s.input[:0]
	s.missed = false
	s.hintShown = false
	s.status = StatusListening
	s.listenStartedAt = s.now()
	s.lastKeyAt = time.Time{}
	return []Effect{Speak{Phrase: s.Phrase()}}
}

func (s *Session) handleDigit(d byte) []Effect {
	if s.status != StatusListening || d < '0' || d > '9' {
		return nil
	}
	if len(s.input) >= len(s.target) {
		return nil
	}
	s.recordKeystroke(s.target[len(s.input)], d)
	s.input = append(s.input, d)
	if len(s.input) < len(s.target) {
		return nil
	}
	return s.evaluate()
}

func (s *Session) recordKeystroke(expected, typed byte) {
	agg, ok := s.digitStats[expected]
	if !ok {
		agg = &model.DigitAggregate{}
		s.digitStats[expected] = agg
	}
	now := s.now()
	prev := s.lastKeyAt
	if prev.IsZero() {
		prev = s.listenStartedAt
	}
	agg.LatencySumMs += now.Sub(prev).Milliseconds()
	agg.LatencyCount++
	s.lastKeyAt = now
	if typed == expected {
		agg.Correct++
		return
	}
	agg.Incorrect++
}

func (s *Session) evaluate() []Effect {
	response := string(s.input)
	correct := response == s.target
	elapsed := s.now().Sub(s.listenStartedAt).Milliseconds()
	s.records = append(s.records, model.TrialRecord{
		Target:    s.target,
		Response:  response,
		Correct:   correct,
		ElapsedMs: elapsed,
	})
	if correct {
		s.status = StatusCorrect
		if !s.missed {
			s.firstTryCorrect++
		}
		return []Effect{PlaySuccess{}, Schedule{Epoch: s.epoch, Delay: FeedbackDelay}}
	}
	s.status = StatusIncorrect
	s.missed = true
	return []Effect{PlayFailure{}, Schedule{Epoch: s.epoch, Delay: FeedbackDelay}}
}

func (s *Session) handleAdvance(epoch uint64) []Effect {
	if epoch != s.epoch {
		return nil
	}
	switch s.status {
	case StatusCorrect:
		if s.trialsStarted >= s.cfg.Trials {
			s.status = StatusComplete
			s.endedAt = s.now()
			return nil
		}
		return s.startTrial()
	case StatusIncorrect:
		s.input = s.input[:0]
		s.status = StatusListening
		s.listenStartedAt = s.now()
		s.lastKeyAt = time.Time{}
		return []Effect{Speak{Phrase: s.Phrase()}}
	default:
		return nil
	}
}

func (s *Session) restart() []Effect {
	s.epoch++
	s.clearProgress()
	return s.startTrial()
}

func (s *Session) handleSetDigits(n int) []Effect {
	if n < model.MinDigits {
		n = model.MinDigits
	}
	if n > model.MaxDigits {
		n = model.MaxDigits
	}
	if n == s.cfg.Digits {
		return nil
	}
	s.cfg.Digits = n
	s.epoch++
	s.clearProgress()
	s.status = StatusIdle
	s.target = ""
	return nil
}

func (s *Session) handleSetTrials(n int) []Effect {
	if n <= 0 || n == s.cfg.Trials {
		return nil
	}
	s.cfg.Trials = n
	return s.restart()
}

func (s *Session) clearProgress() {
	s.id = uuid.New()
	s.startedAt = s.now()
	s.endedAt = time.Time{}
	s.trialsStarted = 0
	s.firstTryCorrect = 0
	s.records = nil
	s.input = s.input[:0]
	s.missed = false
	s.hintShown = false
	s.digitStats = map[byte]*model.DigitAggregate{}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Phrase returns the spoken form of the current target.
func (s *Session) Phrase() string {
	n, err := strconv.Atoi(s.target)
	if err != nil {
		return s.target
	}
	return words.Verbalize(n)
}

// HintText returns the written form of the current target for display.
func (s *Session) HintText() string {
	return words.Capitalize(words.Hyphenate(s.Phrase()))
}

// Status returns the current phase.
func (s *Session) Status() Status { return s.status }

// Target returns the current target digits.
func (s *Session) Target() string { return s.target }

// Input returns the digits typed so far.
func (s *Session) Input() string { return string(s.input) }

// Config returns the session settings.
func (s *Session) Config() model.Config { return s.cfg }

// Epoch returns the scheduling epoch for delayed transitions.
func (s *Session) Epoch() uint64 { return s.epoch }

// TrialsStarted returns the number of trials begun.
func (s *Session) TrialsStarted() int { return s.trialsStarted }

// FirstTryCorrect returns the number of trials solved without a miss.
func (s *Session) FirstTryCorrect() int { return s.firstTryCorrect }

// HintShown reports whether the hint is revealed for the current target.
func (s *Session) HintShown() bool { return s.hintShown }

// GuideShown reports whether the number-word guide is visible.
func (s *Session) GuideShown() bool { return s.guideShown }

// Records returns a copy of the attempt history.
func (s *Session) Records() []model.TrialRecord {
	out := make([]model.TrialRecord, len(s.records))
	copy(out, s.records)
	return out
}

// DigitStats returns a copy of the per-digit aggregates.
func (s *Session) DigitStats() map[byte]model.DigitAggregate {
	out := make(map[byte]model.DigitAggregate, len(s.digitStats))
	for d, agg := range s.digitStats {
		out[d] = *agg
	}
	return out
}

// Summary snapshots the session for reporting.
func (s *Session) Summary() model.SessionSummary {
	return model.SessionSummary{
		ID:              s.id,
		StartedAt:       s.startedAt,
		EndedAt:         s.endedAt,
		Digits:          s.cfg.Digits,
		Trials:          s.cfg.Trials,
		TrialsStarted:   s.trialsStarted,
		FirstTryCorrect: s.firstTryCorrect,
		Records:         s.Records(),
	}
}
