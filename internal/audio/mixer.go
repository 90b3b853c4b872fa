// Package audio plays WAV stimuli through an SDL audio stream. A fixed
// set of voice slots is mixed into the stream callback; the test only
// ever plays one stimulus at a time, but the mixer tolerates overlap.
package audio

import (
	"sync"
	"time"
	"unsafe"

	"github.com/Zyko0/go-sdl3/sdl"
)

const (
	maxVoices    = 8
	scratchBytes = 4096
)

// DeviceSpec is the output format every sound is converted to.
var DeviceSpec = sdl.AudioSpec{Format: sdl.AUDIO_S16, Channels: 2, Freq: 44100}

// Sound is a decoded stimulus in the device format.
type Sound struct {
	Data []byte
	Spec sdl.AudioSpec
}

// Duration derives the playback length from the sample data. S16 only.
func (s *Sound) Duration() time.Duration {
	channels := int(s.Spec.Channels)
	freq := int(s.Spec.Freq)
	if channels == 0 || freq == 0 {
		return 0
	}
	frames := len(s.Data) / (2 * channels)
	return time.Duration(frames) * time.Second / time.Duration(freq)
}

type voice struct {
	sound  *Sound
	pos    uint32
	active bool
}

// Mixer sums active voices into the SDL audio stream. Callback runs on
// the audio thread; everything it touches is guarded by mu.
type Mixer struct {
	mu      sync.Mutex
	voices  [maxVoices]voice
	scratch []byte
}

func NewMixer() *Mixer {
	return &Mixer{scratch: make([]byte, scratchBytes)}
}

// Callback feeds the audio stream. Registered via
// sdl.NewAudioStreamCallback.
func (m *Mixer) Callback(stream *sdl.AudioStream, additionalAmount, totalAmount int32) {
	remaining := int(additionalAmount)
	for remaining > 0 {
		chunk := remaining
		if chunk > scratchBytes {
			chunk = scratchBytes
		}
		for i := 0; i < chunk; i++ {
			m.scratch[i] = 0
		}

		m.mu.Lock()
		dst := unsafe.Slice((*int16)(unsafe.Pointer(&m.scratch[0])), chunk/2)
		for i := range m.voices {
			v := &m.voices[i]
			if !v.active {
				continue
			}

			left := uint32(len(v.sound.Data)) - v.pos
			toMix := uint32(chunk)
			if toMix > left {
				toMix = left
			}

			src := unsafe.Slice((*int16)(unsafe.Pointer(&v.sound.Data[v.pos])), toMix/2)
			for j := range src {
				sample := int32(dst[j]) + int32(src[j])
				if sample > 32767 {
					sample = 32767
				} else if sample < -32768 {
					sample = -32768
				}
				dst[j] = int16(sample)
			}

			v.pos += toMix
			if v.pos >= uint32(len(v.sound.Data)) {
				v.active = false
			}
		}
		m.mu.Unlock()

		stream.PutData(m.scratch[:chunk])
		remaining -= chunk
	}
}

// Play starts a sound on a free voice. False means every slot is busy.
func (m *Mixer) Play(s *Sound) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.voices {
		if !m.voices[i].active {
			m.voices[i] = voice{sound: s, active: true}
			return true
		}
	}
	return false
}

// Playing reports whether any voice is still mixing.
func (m *Mixer) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.voices {
		if m.voices[i].active {
			return true
		}
	}
	return false
}

// Stop silences all voices.
func (m *Mixer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.voices {
		m.voices[i] = voice{}
	}
}
