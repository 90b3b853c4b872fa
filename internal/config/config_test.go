package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "audio", cfg.AudioDir)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.True(t, cfg.Screen.Fullscreen)
	assert.Equal(t, 2*time.Second, cfg.Trial.ResponseWindowDuration())
	assert.Equal(t, time.Second, cfg.Trial.PostStimulusDelayDuration())
	assert.Equal(t, 0, cfg.Trial.MaxTestTrials)
	assert.False(t, cfg.Questionnaire.Enabled)
	assert.Equal(t, 9600, cfg.Trigger.Baud)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "met.yaml")

	cfg := Default()
	cfg.AudioDir = "psd_audio"
	cfg.ResultsDir = "psd_results"
	cfg.Trial.MaxTestTrials = 20
	cfg.Trial.ResponseWindow = "1500ms"
	cfg.Questionnaire.Enabled = true
	cfg.ShowScore = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 1500*time.Millisecond, loaded.Trial.ResponseWindowDuration())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "met.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audio_dir: stimuli\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "stimuli", cfg.AudioDir)
	assert.Equal(t, "pics", cfg.ImageDir)
	assert.Equal(t, 24, cfg.Font.Size)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "met.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audio_dir: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseDuration("", 2*time.Second))
	assert.Equal(t, 2*time.Second, parseDuration("garbage", 2*time.Second))
	assert.Equal(t, 2*time.Second, parseDuration("-1s", 2*time.Second))
	assert.Equal(t, 250*time.Millisecond, parseDuration("250ms", 2*time.Second))
}

func TestEnsureDirs(t *testing.T) {
	tmp := t.TempDir()
	cfg := Default()
	cfg.AudioDir = filepath.Join(tmp, "audio")
	cfg.ImageDir = filepath.Join(tmp, "pics")
	cfg.ResultsDir = filepath.Join(tmp, "results")

	// Audio dir absent: hard error, nothing is worth creating.
	err := cfg.EnsureDirs()
	assert.Error(t, err)

	require.NoError(t, os.MkdirAll(cfg.AudioDir, 0o755))
	require.NoError(t, cfg.EnsureDirs())

	for _, dir := range []string{cfg.ImageDir, cfg.ResultsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
