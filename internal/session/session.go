// Package session holds the data model for one subject run: the
// session itself and the scored trials it accumulates. Trials are
// value types and never change after scoring.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AndHofma/musical-ear-test/internal/stimuli"
)

// ExperimentName tags every result row.
const ExperimentName = "musical_ear_test"

// Phase distinguishes practice from scored test trials.
type Phase string

const (
	PhasePractice Phase = "practice"
	PhaseTest     Phase = "test"
)

// Accuracy codes match the published scoring of the instrument.
const (
	AccuracyWrong      = 0
	AccuracyCorrect    = 1
	AccuracyNoResponse = 99
)

// Trial is one stimulus presentation with its recorded judgment.
type Trial struct {
	Part     stimuli.Part
	Phase    Phase
	Index    int // 1-based within part and phase
	Stimulus string
	Expected stimuli.Answer
	Response stimuli.Answer
	Accuracy int

	// PhaseStart is when the enclosing part began, End when the trial
	// was scored. Duration in the results file is End minus PhaseStart,
	// matching the instrument's running-clock convention.
	PhaseStart time.Time
	End        time.Time
}

// Duration is the running time from part start to this trial's end.
func (t Trial) Duration() time.Duration {
	d := t.End.Sub(t.PhaseStart)
	if d < 0 {
		return 0
	}
	return d
}

// Score maps a response against the expected answer to an accuracy
// code. A lapsed response window scores 99 rather than 0 so analysis
// can separate misses from errors.
func Score(response, expected stimuli.Answer) int {
	switch {
	case response == stimuli.None:
		return AccuracyNoResponse
	case response == expected:
		return AccuracyCorrect
	default:
		return AccuracyWrong
	}
}

// Session is one subject's run.
type Session struct {
	ID      uuid.UUID
	Subject string
	Started time.Time

	trials []Trial
}

// New starts a session for the given subject.
func New(subject string) *Session {
	return &Session{
		ID:      uuid.New(),
		Subject: subject,
		Started: time.Now(),
	}
}

// Date is the session start in the format echoed into result rows.
func (s *Session) Date() string {
	return s.Started.Format("2006-01-02 15:04")
}

// Record appends a scored trial.
func (s *Session) Record(t Trial) {
	s.trials = append(s.trials, t)
}

// Trials returns all recorded trials in order.
func (s *Session) Trials() []Trial {
	return s.trials
}

// CorrectTestCount counts correct test-phase responses for one part.
func (s *Session) CorrectTestCount(part stimuli.Part) int {
	n := 0
	for _, t := range s.trials {
		if t.Part == part && t.Phase == PhaseTest && t.Accuracy == AccuracyCorrect {
			n++
		}
	}
	return n
}

// TestCount counts test-phase trials for one part.
func (s *Session) TestCount(part stimuli.Part) int {
	n := 0
	for _, t := range s.trials {
		if t.Part == part && t.Phase == PhaseTest {
			n++
		}
	}
	return n
}

// ScoreSummary renders the per-part score screen shown in the short
// form of the test.
func (s *Session) ScoreSummary() string {
	return fmt.Sprintf(
		"Ergebnis Melodie-Test\n\nKorrekt erkannt: %d von %d\n\n\n"+
			"Ergebnis Rhythmus-Test\n\nKorrekt erkannt: %d von %d",
		s.CorrectTestCount(stimuli.PartMelody), s.TestCount(stimuli.PartMelody),
		s.CorrectTestCount(stimuli.PartRhythm), s.TestCount(stimuli.PartRhythm),
	)
}
