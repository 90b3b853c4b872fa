package results

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndHofma/musical-ear-test/internal/session"
	"github.com/AndHofma/musical-ear-test/internal/stimuli"
)

var fileAt = time.Date(2026, 8, 30, 14, 30, 5, 0, time.UTC)

func newSession(subject string) *session.Session {
	s := session.New(subject)
	s.Started = time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	return s
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCreate_FileNames(t *testing.T) {
	dir := t.TempDir()
	w, err := Create(dir, "s01", fileAt)
	require.NoError(t, err)
	defer w.Close()

	practicePattern := regexp.MustCompile(`^MET_practice_results_s01_\d{8}_\d{6}\.csv$`)
	testPattern := regexp.MustCompile(`^MET_test_results_s01_\d{8}_\d{6}\.csv$`)
	assert.Regexp(t, practicePattern, filepath.Base(w.PracticePath()))
	assert.Regexp(t, testPattern, filepath.Base(w.TestPath()))
	assert.Contains(t, w.TestPath(), "20260830_143005")
}

func TestAppend_RowPerTrial(t *testing.T) {
	dir := t.TempDir()
	s := newSession("s02")
	w, err := Create(dir, s.Subject, fileAt)
	require.NoError(t, err)

	phaseStart := s.Started
	trials := []session.Trial{
		{
			Part: stimuli.PartMelody, Phase: session.PhasePractice, Index: 1,
			Stimulus: "audio/melody_example1_ident.wav",
			Expected: stimuli.Yes, Response: stimuli.Yes,
			Accuracy:   session.AccuracyCorrect,
			PhaseStart: phaseStart, End: phaseStart.Add(10 * time.Second),
		},
		{
			Part: stimuli.PartMelody, Phase: session.PhaseTest, Index: 1,
			Stimulus: "audio/melody_test1_diff.wav",
			Expected: stimuli.No, Response: stimuli.Yes,
			Accuracy:   session.AccuracyWrong,
			PhaseStart: phaseStart, End: phaseStart.Add(25 * time.Second),
		},
		{
			Part: stimuli.PartMelody, Phase: session.PhaseTest, Index: 2,
			Stimulus: "audio/melody_test2_ident.wav",
			Expected: stimuli.Yes, Response: stimuli.None,
			Accuracy:   session.AccuracyNoResponse,
			PhaseStart: phaseStart, End: phaseStart.Add(40 * time.Second),
		},
	}
	for _, tr := range trials {
		s.Record(tr)
		require.NoError(t, w.Append(s, tr))
	}
	require.NoError(t, w.Close())

	practiceRows := readCSV(t, w.PracticePath())
	testRows := readCSV(t, w.TestPath())

	assert.Equal(t, Header, practiceRows[0])
	assert.Equal(t, Header, testRows[0])
	assert.Len(t, practiceRows, 2) // header + 1 practice trial
	assert.Len(t, testRows, 3)     // header + 2 test trials

	row := testRows[2]
	assert.Equal(t, "musical_ear_test", row[0])
	assert.Equal(t, "s02", row[1])
	assert.Equal(t, "2026-08-30 14:30", row[2])
	assert.Equal(t, "2", row[3])
	assert.Equal(t, "melody", row[4])
	assert.Equal(t, "test", row[5])
	assert.Equal(t, "NA", row[7])
	assert.Equal(t, "yes", row[8])
	assert.Equal(t, "99", row[9])
	assert.Equal(t, "14:30:00", row[10])
	assert.Equal(t, "14:30:40", row[11])
	assert.Equal(t, "00:00:40", row[12])
}

func TestAppend_FlushedImmediately(t *testing.T) {
	dir := t.TempDir()
	s := newSession("s03")
	w, err := Create(dir, s.Subject, fileAt)
	require.NoError(t, err)
	defer w.Close()

	tr := session.Trial{
		Part: stimuli.PartRhythm, Phase: session.PhaseTest, Index: 1,
		Stimulus: "audio/rhythm_test1_ident.wav",
		Expected: stimuli.Yes, Response: stimuli.Yes, Accuracy: session.AccuracyCorrect,
		PhaseStart: s.Started, End: s.Started.Add(time.Second),
	}
	require.NoError(t, w.Append(s, tr))

	// Row must be on disk before Close: a crash mid-run keeps it.
	rows := readCSV(t, w.TestPath())
	assert.Len(t, rows, 2)
}

func TestCreate_SameSecondDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()

	w1, err := Create(dir, "s04", fileAt)
	require.NoError(t, err)
	require.NoError(t, w1.Close())

	w2, err := Create(dir, "s04", fileAt)
	require.NoError(t, err)
	require.NoError(t, w2.Close())

	assert.NotEqual(t, w1.TestPath(), w2.TestPath())
	assert.NotEqual(t, w1.PracticePath(), w2.PracticePath())

	// The first run's files are untouched.
	rows := readCSV(t, w1.TestPath())
	assert.Len(t, rows, 1)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:00", formatDuration(0))
	assert.Equal(t, "00:01:05", formatDuration(65*time.Second))
	assert.Equal(t, "01:02:03", formatDuration(time.Hour+2*time.Minute+3*time.Second))
}

func TestWriteQuestionnaire(t *testing.T) {
	dir := t.TempDir()
	answers := []QuestionnaireAnswer{
		{Label: "hoeren_schlecht_ja", Value: "false"},
		{Label: "instrument_list", Value: "Klavier (5 Jahre), Geige (2)"},
		{Label: "chor_dauer", Value: ""},
	}

	path, err := WriteQuestionnaire(dir, "s05", "2026-08-30 14:30", fileAt, answers)
	require.NoError(t, err)
	assert.Regexp(t, `^musicality_PSD_s05_\d{8}_\d{6}\.csv$`, filepath.Base(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Subject_ID", "Date", "hoeren_schlecht_ja", "instrument_list", "chor_dauer"}, rows[0])
	assert.Equal(t, "s05", rows[1][0])
	assert.Equal(t, "false", rows[1][2])
	// Commas stripped so the row stays single-field-per-answer.
	assert.Equal(t, "Klavier (5 Jahre) Geige (2)", rows[1][3])
	assert.Equal(t, "NA", rows[1][4])
}
