package met

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndHofma/musical-ear-test/internal/stimuli"
)

func TestTruncateTests(t *testing.T) {
	inv := &stimuli.Inventory{
		Melody: stimuli.Set{Tests: make([]stimuli.Stimulus, 52)},
		Rhythm: stimuli.Set{Tests: make([]stimuli.Stimulus, 52)},
	}

	truncateTests(inv, 20)
	assert.Len(t, inv.Melody.Tests, 20)
	assert.Len(t, inv.Rhythm.Tests, 20)

	// Zero leaves the full set.
	inv.Melody.Tests = make([]stimuli.Stimulus, 52)
	truncateTests(inv, 0)
	assert.Len(t, inv.Melody.Tests, 52)
}

func TestCheckInventory(t *testing.T) {
	inv := &stimuli.Inventory{
		Melody: stimuli.Set{
			Examples: make([]stimuli.Stimulus, 2),
			Tests:    make([]stimuli.Stimulus, 2),
		},
		Rhythm: stimuli.Set{
			Examples: make([]stimuli.Stimulus, 2),
			Tests:    make([]stimuli.Stimulus, 2),
		},
	}
	require.NoError(t, checkInventory(inv))

	inv.Rhythm.Tests = nil
	err := checkInventory(inv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rhythm")
}

func TestTrialPrompt(t *testing.T) {
	assert.Equal(t, "Sind die Melodien identisch?", trialPrompt(stimuli.PartMelody))
	assert.Equal(t, "Sind die Rhythmen identisch?", trialPrompt(stimuli.PartRhythm))
}

func TestTestIntroMentionsCounts(t *testing.T) {
	text := testIntro(stimuli.PartMelody, 52, 2)
	assert.Contains(t, text, "52 Melodie-Paare")
	assert.Contains(t, text, "2 Sekunden")

	text = testIntro(stimuli.PartRhythm, 20, 2)
	assert.Contains(t, text, "20 Rhythmus-Paare")
}

func TestPracticeExplanation(t *testing.T) {
	text := practiceExplanation(stimuli.PartMelody, stimuli.Yes, false)
	assert.Contains(t, text, "identisch")
	assert.Contains(t, text, "yes / ja")
	assert.Contains(t, text, "nächste Beispiel")

	text = practiceExplanation(stimuli.PartRhythm, stimuli.No, true)
	assert.Contains(t, text, "nicht identisch")
	assert.Contains(t, text, "no / nein")
	assert.Contains(t, text, "abzuschließen")
}

func TestQuestionnaireShape(t *testing.T) {
	require.Len(t, Questions, 9)
	assert.Equal(t, "hoeren_schlecht_ja", Questions[0].Label)
	assert.Equal(t, QuestionBool, Questions[0].Kind)
	assert.Equal(t, "musik_hoeren", Questions[8].Label)
	assert.Equal(t, QuestionText, Questions[8].Kind)
}
