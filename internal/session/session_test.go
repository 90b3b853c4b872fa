package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AndHofma/musical-ear-test/internal/stimuli"
)

func TestScore(t *testing.T) {
	cases := []struct {
		response, expected stimuli.Answer
		want               int
	}{
		{stimuli.Yes, stimuli.Yes, AccuracyCorrect},
		{stimuli.No, stimuli.No, AccuracyCorrect},
		{stimuli.Yes, stimuli.No, AccuracyWrong},
		{stimuli.No, stimuli.Yes, AccuracyWrong},
		{stimuli.None, stimuli.Yes, AccuracyNoResponse},
		{stimuli.None, stimuli.No, AccuracyNoResponse},
	}
	for _, c := range cases {
		got := Score(c.response, c.expected)
		if got != c.want {
			t.Errorf("Score(%s, %s) = %d, want %d", c.response, c.expected, got, c.want)
		}
	}
}

func TestTrialDuration(t *testing.T) {
	start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	tr := Trial{PhaseStart: start, End: start.Add(90 * time.Second)}
	assert.Equal(t, 90*time.Second, tr.Duration())

	// Clock skew never produces a negative duration in the output.
	tr = Trial{PhaseStart: start, End: start.Add(-time.Second)}
	assert.Equal(t, time.Duration(0), tr.Duration())
}

func TestSessionCounts(t *testing.T) {
	s := New("s01")
	assert.Equal(t, "s01", s.Subject)
	assert.NotEmpty(t, s.ID)

	record := func(part stimuli.Part, phase Phase, acc int) {
		s.Record(Trial{Part: part, Phase: phase, Accuracy: acc})
	}
	record(stimuli.PartMelody, PhasePractice, AccuracyCorrect)
	record(stimuli.PartMelody, PhaseTest, AccuracyCorrect)
	record(stimuli.PartMelody, PhaseTest, AccuracyWrong)
	record(stimuli.PartMelody, PhaseTest, AccuracyNoResponse)
	record(stimuli.PartRhythm, PhaseTest, AccuracyCorrect)

	assert.Equal(t, 1, s.CorrectTestCount(stimuli.PartMelody))
	assert.Equal(t, 3, s.TestCount(stimuli.PartMelody))
	assert.Equal(t, 1, s.CorrectTestCount(stimuli.PartRhythm))
	assert.Equal(t, 1, s.TestCount(stimuli.PartRhythm))
	assert.Len(t, s.Trials(), 5)
}

func TestScoreSummary(t *testing.T) {
	s := New("s01")
	s.Record(Trial{Part: stimuli.PartMelody, Phase: PhaseTest, Accuracy: AccuracyCorrect})
	s.Record(Trial{Part: stimuli.PartMelody, Phase: PhaseTest, Accuracy: AccuracyWrong})
	s.Record(Trial{Part: stimuli.PartRhythm, Phase: PhaseTest, Accuracy: AccuracyCorrect})

	text := s.ScoreSummary()
	assert.Contains(t, text, "Korrekt erkannt: 1 von 2")
	assert.Contains(t, text, "Korrekt erkannt: 1 von 1")
}

func TestDateFormat(t *testing.T) {
	s := &Session{Started: time.Date(2026, 8, 30, 9, 5, 0, 0, time.UTC)}
	assert.Equal(t, "2026-08-30 09:05", s.Date())
}
