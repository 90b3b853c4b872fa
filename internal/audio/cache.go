package audio

import (
	"fmt"

	"github.com/Zyko0/go-sdl3/sdl"
)

// Cache loads WAV files once and keeps them converted to the device
// format for the session's lifetime.
type Cache struct {
	sounds map[string]*Sound
}

func NewCache() *Cache {
	return &Cache{sounds: make(map[string]*Sound)}
}

// Load decodes the WAV at path, converting it to DeviceSpec when the
// file format differs. A failed load is a hard error: the test must not
// run with a silently missing stimulus.
func (c *Cache) Load(path string) (*Sound, error) {
	if s, ok := c.sounds[path]; ok {
		return s, nil
	}

	spec := &sdl.AudioSpec{}
	data, err := sdl.LoadWAV(path, spec)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	s := &Sound{Data: data, Spec: *spec}
	if spec.Format != DeviceSpec.Format || spec.Channels != DeviceSpec.Channels || spec.Freq != DeviceSpec.Freq {
		converted, err := sdl.ConvertAudioSamples(spec, data, &DeviceSpec)
		if err != nil {
			return nil, fmt.Errorf("converting %s to device format: %w", path, err)
		}
		s = &Sound{Data: converted, Spec: DeviceSpec}
	}

	c.sounds[path] = s
	return s, nil
}

// Preload decodes every path up front so the trial loop never blocks on
// disk I/O between stimulus onset and response capture.
func (c *Cache) Preload(paths []string) error {
	for _, p := range paths {
		if _, err := c.Load(p); err != nil {
			return err
		}
	}
	return nil
}
