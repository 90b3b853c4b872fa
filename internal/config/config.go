// Package config holds the experiment configuration, loaded from a YAML
// file and overridable from the command line. Durations are kept as
// strings in the file ("2s", "1500ms") and parsed on access.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "met.yaml"

// Config is the full configuration for one run of the test.
type Config struct {
	AudioDir   string `yaml:"audio_dir"`
	ImageDir   string `yaml:"image_dir"`
	ResultsDir string `yaml:"results_dir"`

	Screen ScreenConfig `yaml:"screen"`
	Font   FontConfig   `yaml:"font"`
	Trial  TrialConfig  `yaml:"trial"`

	Questionnaire QuestionnaireConfig `yaml:"questionnaire"`
	ShowScore     bool                `yaml:"show_score"`

	Trigger TriggerConfig `yaml:"trigger"`
	Log     LogConfig     `yaml:"log"`
}

// ScreenConfig configures the experiment window.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Background string `yaml:"background"` // "R,G,B,A"
	TextColor  string `yaml:"text_color"` // "R,G,B,A"
}

// FontConfig selects the TTF font used for all on-screen text. An empty
// File falls back to a per-platform system font lookup.
type FontConfig struct {
	File string `yaml:"file"`
	Size int    `yaml:"size"`
}

// TrialConfig configures trial pacing and the test-phase deadline.
type TrialConfig struct {
	ResponseWindow    string `yaml:"response_window"`
	PostStimulusDelay string `yaml:"post_stimulus_delay"`
	FeedbackDuration  string `yaml:"feedback_duration"`

	// MaxTestTrials caps the test trials per part. Zero means the whole
	// stimulus set; the short (PSD) form uses 20.
	MaxTestTrials int `yaml:"max_test_trials"`
}

// QuestionnaireConfig enables the musicality questionnaire presented
// before the trial loop.
type QuestionnaireConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TriggerConfig configures the optional DLP-IO8-G trigger box. An empty
// Device disables marker output.
type TriggerConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// LogConfig configures logging.
type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		AudioDir:   "audio",
		ImageDir:   "pics",
		ResultsDir: "results",
		Screen: ScreenConfig{
			Width:      1920,
			Height:     1080,
			Fullscreen: true,
			Background: "255,255,255,255",
			TextColor:  "0,0,0,255",
		},
		Font: FontConfig{
			Size: 24,
		},
		Trial: TrialConfig{
			ResponseWindow:    "2s",
			PostStimulusDelay: "1s",
			FeedbackDuration:  "1s",
		},
		Trigger: TriggerConfig{
			Baud: 9600,
		},
	}
}

// Load reads the config at path. A missing file yields the defaults, so
// a first run works without any setup step.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// EnsureDirs verifies the audio directory exists and creates the image
// and results directories when missing.
func (c *Config) EnsureDirs() error {
	if _, err := os.Stat(c.AudioDir); err != nil {
		return fmt.Errorf("audio directory %q not found: %w", c.AudioDir, err)
	}
	for _, dir := range []string{c.ImageDir, c.ResultsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %q: %w", dir, err)
		}
	}
	return nil
}

// ResponseWindow returns the test-phase response deadline.
func (c TrialConfig) ResponseWindowDuration() time.Duration {
	return parseDuration(c.ResponseWindow, 2*time.Second)
}

// PostStimulusDelayDuration returns the pause between playback end and
// the response buttons appearing.
func (c TrialConfig) PostStimulusDelayDuration() time.Duration {
	return parseDuration(c.PostStimulusDelay, time.Second)
}

// FeedbackDurationDuration returns how long practice feedback stays up.
func (c TrialConfig) FeedbackDurationDuration() time.Duration {
	return parseDuration(c.FeedbackDuration, time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
