package ui

import (
	"time"

	"github.com/Zyko0/go-sdl3/img"
	"github.com/Zyko0/go-sdl3/sdl"
)

var (
	colorWhite = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	colorBlack = sdl.Color{R: 0, G: 0, B: 0, A: 255}
	colorGreen = sdl.Color{R: 0, G: 150, B: 0, A: 255}
	colorRed   = sdl.Color{R: 200, G: 0, B: 0, A: 255}
	colorGray  = sdl.Color{R: 150, G: 150, B: 150, A: 255}
	colorFocus = sdl.Color{R: 0, G: 120, B: 255, A: 255}
)

// ShowMessage displays a wrapped text page and blocks until any key is
// pressed. False means the subject closed the window or hit Escape.
func (u *UI) ShowMessage(text string) bool {
	u.clear()
	u.drawParagraph(text, float32(u.Height)/2, u.Text)
	u.Renderer.Present()

	for {
		var e sdl.Event
		if err := sdl.WaitEvent(&e); err != nil {
			return false
		}
		switch e.Type {
		case sdl.EVENT_QUIT:
			return false
		case sdl.EVENT_KEY_DOWN:
			if e.KeyboardEvent().Key == sdl.K_ESCAPE {
				return false
			}
			return true
		}
	}
}

// ShowFeedback flashes a short message for the given duration, still
// honoring abort events.
func (u *UI) ShowFeedback(text string, d time.Duration) bool {
	u.clear()
	u.drawParagraph(text, float32(u.Height)/2, u.Text)
	u.Renderer.Present()
	return u.pause(d)
}

// pause waits for d while pumping events. False means abort.
func (u *UI) pause(d time.Duration) bool {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		var e sdl.Event
		for sdl.PollEvent(&e) {
			switch e.Type {
			case sdl.EVENT_QUIT:
				return false
			case sdl.EVENT_KEY_DOWN:
				if e.KeyboardEvent().Key == sdl.K_ESCAPE {
					return false
				}
			}
		}
		sdl.Delay(10)
	}
	return true
}

// Illustration is a static per-part image shown during trials.
type Illustration struct {
	Texture *sdl.Texture
	W, H    float32
}

// LoadIllustration loads the image at path. A missing file yields a nil
// texture; the trial screen simply renders without it.
func (u *UI) LoadIllustration(path string) (Illustration, error) {
	tex, err := img.LoadTexture(u.Renderer, path)
	if err != nil {
		return Illustration{}, err
	}
	w, h, _ := tex.Size()
	return Illustration{Texture: tex, W: w, H: h}, nil
}

// Destroy releases the texture.
func (il *Illustration) Destroy() {
	if il.Texture != nil {
		il.Texture.Destroy()
		il.Texture = nil
	}
}
