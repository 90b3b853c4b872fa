package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"
)

// QuestionnaireAnswer is one answered questionnaire item, in
// presentation order.
type QuestionnaireAnswer struct {
	Label string
	Value string
}

// WriteQuestionnaire writes the musicality questionnaire to its own
// single-row CSV and returns the file path. Empty answers become NA and
// commas inside free-text answers are stripped, matching the layout the
// downstream analysis scripts expect.
func WriteQuestionnaire(dir, subject, date string, now time.Time, answers []QuestionnaireAnswer) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating results dir: %w", err)
	}

	stem := fmt.Sprintf("musicality_PSD_%s_%s", subject, now.Format(TimestampLayout))
	f, path, err := exclusiveCreate(dir, stem)
	if err != nil {
		return "", err
	}
	defer f.Close()

	header := []string{"Subject_ID", "Date"}
	row := []string{subject, date}
	for _, a := range answers {
		header = append(header, a.Label)
		row = append(row, cleanAnswer(a.Value))
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing questionnaire header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return "", fmt.Errorf("writing questionnaire row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", path, err)
	}
	return path, nil
}

func cleanAnswer(v string) string {
	v = strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
	if v == "" {
		return "NA"
	}
	return v
}
