package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/Zyko0/go-sdl3/sdl"

	"github.com/AndHofma/musical-ear-test/internal/stimuli"
)

// TrialView is everything the trial screen shows: counter, part label,
// prompt, the part illustration and the progress bar. Buttons appear
// only once the response phase starts.
type TrialView struct {
	Number      int
	Total       int
	PartLabel   string
	Prompt      string
	Image       Illustration
	ShowButtons bool
}

func (u *UI) yesButton() sdl.FRect {
	w, h := float32(u.Width), float32(u.Height)
	return sdl.FRect{X: w*0.5 - w*0.18, Y: h * 0.56, W: w * 0.13, H: h * 0.16}
}

func (u *UI) noButton() sdl.FRect {
	w, h := float32(u.Width), float32(u.Height)
	return sdl.FRect{X: w*0.5 + w*0.05, Y: h * 0.56, W: w * 0.13, H: h * 0.16}
}

// DrawTrial renders the trial screen and presents it.
func (u *UI) DrawTrial(v TrialView) {
	w, h := float32(u.Width), float32(u.Height)
	u.clear()

	u.drawText(strconv.Itoa(v.Number), w*0.1, h*0.08, u.Text)
	u.drawTextCentered(v.PartLabel, h*0.08, u.Text)
	u.drawTextCentered(v.Prompt, h*0.20, u.Text)

	if v.Image.Texture != nil {
		dst := sdl.FRect{
			X: (w - v.Image.W) / 2,
			Y: h*0.38 - v.Image.H/2,
			W: v.Image.W,
			H: v.Image.H,
		}
		u.Renderer.RenderTexture(v.Image.Texture, nil, &dst)
	}

	if v.ShowButtons {
		yes, no := u.yesButton(), u.noButton()
		u.fillRect(yes, colorGreen)
		u.fillRect(no, colorRed)
		u.drawButtonLabel("y\nyes / ja", yes)
		u.drawButtonLabel("n\nno / nein", no)
	}

	u.drawProgressBar(v.Number, v.Total)
	u.Renderer.Present()
}

func (u *UI) drawButtonLabel(label string, btn sdl.FRect) {
	lines := strings.Split(label, "\n")
	lh := u.lineHeight()
	y := btn.Y + btn.H/2 - lh*float32(len(lines))/2
	for _, line := range lines {
		lw, _ := u.measure(line)
		u.drawText(line, btn.X+(btn.W-lw)/2, y, colorWhite)
		y += lh
	}
}

func (u *UI) drawProgressBar(current, total int) {
	if total <= 0 || current > total {
		return
	}
	w, h := float32(u.Width), float32(u.Height)
	barW := w * 0.6
	barH := h * 0.03
	bg := sdl.FRect{X: (w - barW) / 2, Y: h * 0.88, W: barW, H: barH}
	u.fillRect(bg, colorGray)

	filled := barW * float32(current) / float32(total)
	if filled > 0 {
		u.fillRect(sdl.FRect{X: bg.X, Y: bg.Y, W: filled, H: barH}, u.Text)
	}
}

// Hold keeps the trial screen up for d while pumping events, used to
// bridge stimulus playback. False means abort.
func (u *UI) Hold(v TrialView, d time.Duration) bool {
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
		u.DrawTrial(v)
		sdl.Delay(10)
	}
	return true
}

// AwaitAnswer shows the response buttons and blocks until the subject
// answers, the window lapses (answer None), or the run is aborted
// (ok=false). window == 0 waits indefinitely, as practice trials do.
func (u *UI) AwaitAnswer(v TrialView, window time.Duration) (answer stimuli.Answer, ok bool) {
	v.ShowButtons = true
	started := time.Now()

	for {
		if window > 0 && time.Since(started) >= window {
			return stimuli.None, true
		}

		var e sdl.Event
		for sdl.PollEvent(&e) {
			switch e.Type {
			case sdl.EVENT_QUIT:
				return stimuli.None, false
			case sdl.EVENT_KEY_DOWN:
				key := e.KeyboardEvent().Key
				if key == sdl.K_ESCAPE {
					return stimuli.None, false
				}
				switch strings.ToLower(key.KeyName()) {
				case "y":
					return stimuli.Yes, true
				case "n":
					return stimuli.No, true
				}
			case sdl.EVENT_MOUSE_BUTTON_DOWN:
				me := e.MouseButtonEvent()
				if inRect(me.X, me.Y, u.yesButton()) {
					return stimuli.Yes, true
				}
				if inRect(me.X, me.Y, u.noButton()) {
					return stimuli.No, true
				}
			}
		}

		u.DrawTrial(v)
		sdl.Delay(10)
	}
}
