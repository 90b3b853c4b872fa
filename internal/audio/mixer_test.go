package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSoundDuration(t *testing.T) {
	// 1 second of S16 stereo at 44100 Hz = 44100 * 2 channels * 2 bytes.
	s := &Sound{Data: make([]byte, 44100*4), Spec: DeviceSpec}
	assert.Equal(t, time.Second, s.Duration())

	s = &Sound{Data: make([]byte, 44100), Spec: DeviceSpec}
	assert.Equal(t, 250*time.Millisecond, s.Duration())

	empty := &Sound{}
	assert.Equal(t, time.Duration(0), empty.Duration())
}

func TestMixerVoices(t *testing.T) {
	m := NewMixer()
	assert.False(t, m.Playing())

	s := &Sound{Data: make([]byte, 1024), Spec: DeviceSpec}
	for i := 0; i < maxVoices; i++ {
		assert.True(t, m.Play(s))
	}
	assert.False(t, m.Play(s), "all voices busy")
	assert.True(t, m.Playing())

	m.Stop()
	assert.False(t, m.Playing())
	assert.True(t, m.Play(s))
}
