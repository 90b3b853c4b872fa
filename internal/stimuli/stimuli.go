// Package stimuli builds the stimulus inventory from the audio
// directory. File names carry all trial metadata: the part prefix
// (melody/rhythm), the phase marker (_example or _testN) and, as the
// final underscore-separated token, whether the pair is identical.
package stimuli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Part is one of the two halves of the test.
type Part string

const (
	PartMelody Part = "melody"
	PartRhythm Part = "rhythm"
)

// Parts lists both parts in canonical order.
var Parts = []Part{PartMelody, PartRhythm}

// Answer is a forced-choice judgment.
type Answer string

const (
	Yes  Answer = "yes"
	No   Answer = "no"
	None Answer = "NA" // no response within the window
)

// Stimulus is one audio file with its derived trial metadata.
type Stimulus struct {
	Path     string
	Part     Part
	Trial    int // 1-based position within its list
	Expected Answer
}

// Set holds the practice and test stimuli for one part.
type Set struct {
	Examples []Stimulus
	Tests    []Stimulus
}

// Inventory is the complete scanned stimulus collection.
type Inventory struct {
	Melody Set
	Rhythm Set
}

// ForPart returns the set for the given part.
func (inv *Inventory) ForPart(p Part) *Set {
	if p == PartRhythm {
		return &inv.Rhythm
	}
	return &inv.Melody
}

var testNumberRe = regexp.MustCompile(`_test(\d+)`)

// ExpectedAnswer derives the correct judgment from a stimulus file
// name: a final token starting with "ident" marks an identical pair.
func ExpectedAnswer(name string) Answer {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	parts := strings.Split(base, "_")
	token := strings.ToLower(parts[len(parts)-1])
	if strings.HasPrefix(token, "ident") {
		return Yes
	}
	return No
}

// Scan reads dir and assembles the inventory. Test items are ordered by
// the trial number embedded in their name; a duplicate or gap in the
// numbering is an error so a run never silently skips a trial.
func Scan(dir string) (*Inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning stimuli: %w", err)
	}

	inv := &Inventory{}
	numbered := map[Part]map[int]Stimulus{
		PartMelody: {},
		PartRhythm: {},
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.ToLower(filepath.Ext(name)) != ".wav" {
			continue
		}

		var part Part
		switch {
		case strings.HasPrefix(name, string(PartMelody)):
			part = PartMelody
		case strings.HasPrefix(name, string(PartRhythm)):
			part = PartRhythm
		default:
			continue
		}

		s := Stimulus{
			Path:     filepath.Join(dir, name),
			Part:     part,
			Expected: ExpectedAnswer(name),
		}

		switch {
		case strings.Contains(name, "_example"):
			set := inv.ForPart(part)
			set.Examples = append(set.Examples, s)
		case strings.Contains(name, "_test"):
			m := testNumberRe.FindStringSubmatch(name)
			if m == nil {
				return nil, fmt.Errorf("stimulus %q: no trial number after _test", name)
			}
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("stimulus %q: bad trial number %q", name, m[1])
			}
			if prev, dup := numbered[part][n]; dup {
				return nil, fmt.Errorf("stimulus %q: trial number %d already used by %q",
					name, n, filepath.Base(prev.Path))
			}
			s.Trial = n
			numbered[part][n] = s
		}
	}

	for _, part := range Parts {
		set := inv.ForPart(part)
		sort.Slice(set.Examples, func(i, j int) bool {
			return set.Examples[i].Path < set.Examples[j].Path
		})
		for i := range set.Examples {
			set.Examples[i].Trial = i + 1
		}

		tests, err := orderTests(part, numbered[part])
		if err != nil {
			return nil, err
		}
		set.Tests = tests
	}

	return inv, nil
}

// Paths returns every stimulus path in the inventory, for preloading.
func (inv *Inventory) Paths() []string {
	var paths []string
	for _, part := range Parts {
		set := inv.ForPart(part)
		for _, s := range set.Examples {
			paths = append(paths, s.Path)
		}
		for _, s := range set.Tests {
			paths = append(paths, s.Path)
		}
	}
	return paths
}

func orderTests(part Part, byNumber map[int]Stimulus) ([]Stimulus, error) {
	tests := make([]Stimulus, 0, len(byNumber))
	for n := 1; n <= len(byNumber); n++ {
		s, ok := byNumber[n]
		if !ok {
			return nil, fmt.Errorf("%s test stimuli: trial %d missing (have %d files)",
				part, n, len(byNumber))
		}
		tests = append(tests, s)
	}
	return tests, nil
}
