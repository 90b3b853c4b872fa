// Package results persists scored trials to CSV. Rows are appended and
// flushed as soon as a trial is scored, so an aborted run keeps
// everything up to the last completed trial. Files are write-once: a
// run never touches an earlier run's output.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AndHofma/musical-ear-test/internal/session"
)

// Header is the column schema of both trial result files.
var Header = []string{
	"experiment", "subject_id", "date",
	"trial", "type", "phase", "stimulus",
	"response", "correct", "accuracy",
	"start_time", "end_time", "duration",
}

// TimestampLayout names result files down to the second.
const TimestampLayout = "20060102_150405"

// Writer appends trial rows to the practice and test files of one run.
type Writer struct {
	practice *csvFile
	test     *csvFile
}

type csvFile struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// Create opens the two result files for a run. Call it only after
// intake succeeds; a cancelled run must leave no files behind.
func Create(dir, subject string, now time.Time) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results dir: %w", err)
	}

	ts := now.Format(TimestampLayout)
	practice, err := createCSV(dir, fmt.Sprintf("MET_practice_results_%s_%s", subject, ts))
	if err != nil {
		return nil, err
	}
	test, err := createCSV(dir, fmt.Sprintf("MET_test_results_%s_%s", subject, ts))
	if err != nil {
		practice.close()
		os.Remove(practice.path)
		return nil, err
	}

	return &Writer{practice: practice, test: test}, nil
}

// PracticePath is the practice results file of this run.
func (w *Writer) PracticePath() string { return w.practice.path }

// TestPath is the test results file of this run.
func (w *Writer) TestPath() string { return w.test.path }

// Append writes one scored trial and flushes it to disk.
func (w *Writer) Append(s *session.Session, t session.Trial) error {
	dst := w.test
	if t.Phase == session.PhasePractice {
		dst = w.practice
	}

	row := []string{
		session.ExperimentName,
		s.Subject,
		s.Date(),
		strconv.Itoa(t.Index),
		string(t.Part),
		string(t.Phase),
		t.Stimulus,
		string(t.Response),
		string(t.Expected),
		strconv.Itoa(t.Accuracy),
		t.PhaseStart.Format("15:04:05"),
		t.End.Format("15:04:05"),
		formatDuration(t.Duration()),
	}
	if err := dst.w.Write(row); err != nil {
		return fmt.Errorf("writing trial row: %w", err)
	}
	dst.w.Flush()
	if err := dst.w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", dst.path, err)
	}
	return nil
}

// Close flushes and closes both files.
func (w *Writer) Close() error {
	perr := w.practice.close()
	terr := w.test.close()
	if perr != nil {
		return perr
	}
	return terr
}

func createCSV(dir, stem string) (*csvFile, error) {
	f, path, err := exclusiveCreate(dir, stem)
	if err != nil {
		return nil, err
	}

	cf := &csvFile{path: path, f: f, w: csv.NewWriter(f)}
	if err := cf.w.Write(Header); err != nil {
		cf.close()
		os.Remove(path)
		return nil, fmt.Errorf("writing header: %w", err)
	}
	cf.w.Flush()
	if err := cf.w.Error(); err != nil {
		cf.close()
		os.Remove(path)
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return cf, nil
}

// exclusiveCreate opens <stem>.csv, falling back to <stem>_2.csv and so
// on when a file from the same second already exists. Two runs for the
// same subject therefore never share an output file.
func exclusiveCreate(dir, stem string) (*os.File, string, error) {
	for i := 1; i <= 100; i++ {
		name := stem + ".csv"
		if i > 1 {
			name = fmt.Sprintf("%s_%d.csv", stem, i)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !os.IsExist(err) {
			return nil, "", fmt.Errorf("creating %s: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("no free name for %s in %s", stem, dir)
}

func (cf *csvFile) close() error {
	cf.w.Flush()
	werr := cf.w.Error()
	cerr := cf.f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
