package ui

import (
	"github.com/Zyko0/go-sdl3/sdl"

	"github.com/AndHofma/musical-ear-test/internal/config"
)

type resolution struct {
	W, H  int
	Label string
}

var resolutions = []resolution{
	{1280, 720, "1280x720 (HD)"},
	{1366, 768, "1366x768 (WXGA)"},
	{1920, 1080, "1920x1080 (FHD)"},
	{2560, 1440, "2560x1440 (QHD)"},
	{3840, 2160, "3840x2160 (4K UHD)"},
}

// SetupForm edits the run configuration in place: stimulus and results
// directories, screen resolution and the run options. Returns false when
// the window was closed without confirming.
func (u *UI) SetupForm(cfg *config.Config) bool {
	u.Window.StartTextInput()
	defer u.Window.StopTextInput()

	fields := []struct {
		label string
		value *string
	}{
		{"Audio-Verzeichnis:", &cfg.AudioDir},
		{"Bild-Verzeichnis:", &cfg.ImageDir},
		{"Ergebnis-Verzeichnis:", &cfg.ResultsDir},
	}
	toggles := []struct {
		label string
		value *bool
	}{
		{"Vollbild", &cfg.Screen.Fullscreen},
		{"Fragebogen Musikalität", &cfg.Questionnaire.Enabled},
		{"Ergebnis am Ende anzeigen", &cfg.ShowScore},
	}

	selectedRes := 2
	for i, res := range resolutions {
		if cfg.Screen.Width == res.W && cfg.Screen.Height == res.H {
			selectedRes = i
			break
		}
	}

	const (
		fieldX    = float32(50)
		fieldW    = float32(600)
		fieldH    = float32(32)
		rowStride = float32(72)
	)
	fieldRect := func(i int) sdl.FRect {
		return sdl.FRect{X: fieldX, Y: float32(60 + i*int(rowStride)), W: fieldW, H: fieldH}
	}
	resRect := func(i int) sdl.FRect {
		return sdl.FRect{X: fieldX, Y: float32(300 + i*40), W: 20, H: 20}
	}
	toggleRect := func(i int) sdl.FRect {
		return sdl.FRect{X: fieldX, Y: float32(520 + i*44), W: 20, H: 20}
	}
	startBtn := sdl.FRect{X: 330, Y: 680, W: 140, H: 44}

	focus := -1
	for {
		var e sdl.Event
		for sdl.PollEvent(&e) {
			switch e.Type {
			case sdl.EVENT_QUIT:
				return false
			case sdl.EVENT_MOUSE_BUTTON_DOWN:
				me := e.MouseButtonEvent()
				focus = -1
				for i := range fields {
					if inRect(me.X, me.Y, fieldRect(i)) {
						focus = i
					}
				}
				for i := range resolutions {
					if inRect(me.X, me.Y, resRect(i)) {
						selectedRes = i
					}
				}
				for i := range toggles {
					if inRect(me.X, me.Y, toggleRect(i)) {
						*toggles[i].value = !*toggles[i].value
					}
				}
				if inRect(me.X, me.Y, startBtn) && cfg.AudioDir != "" {
					cfg.Screen.Width = resolutions[selectedRes].W
					cfg.Screen.Height = resolutions[selectedRes].H
					return true
				}
			case sdl.EVENT_TEXT_INPUT:
				if focus >= 0 {
					*fields[focus].value += e.TextInputEvent().Text
				}
			case sdl.EVENT_KEY_DOWN:
				ke := e.KeyboardEvent()
				switch ke.Key {
				case sdl.K_ESCAPE:
					return false
				case sdl.K_BACKSPACE:
					if focus >= 0 && len(*fields[focus].value) > 0 {
						*fields[focus].value = trimLastRune(*fields[focus].value)
					}
				}
			}
		}

		u.clear()
		for i, f := range fields {
			box := fieldRect(i)
			u.drawText(f.label, box.X, box.Y-26, u.Text)
			u.fillRect(box, colorWhite)
			if focus == i {
				u.outlineRect(box, colorFocus)
			} else {
				u.outlineRect(box, colorGray)
			}
			u.drawText(*f.value, box.X+6, box.Y+5, colorBlack)
		}

		for i, res := range resolutions {
			box := resRect(i)
			u.fillRect(box, colorWhite)
			u.outlineRect(box, colorBlack)
			if selectedRes == i {
				mark := sdl.FRect{X: box.X + 4, Y: box.Y + 4, W: 12, H: 12}
				u.fillRect(mark, colorGreen)
			}
			u.drawText(res.Label, box.X+30, box.Y-2, u.Text)
		}

		for i, tg := range toggles {
			box := toggleRect(i)
			u.fillRect(box, colorWhite)
			u.outlineRect(box, colorBlack)
			if *tg.value {
				mark := sdl.FRect{X: box.X + 4, Y: box.Y + 4, W: 12, H: 12}
				u.fillRect(mark, colorGreen)
			}
			u.drawText(tg.label, box.X+30, box.Y-2, u.Text)
		}

		u.fillRect(startBtn, colorGreen)
		u.drawText("START", startBtn.X+38, startBtn.Y+10, colorWhite)

		u.Renderer.Present()
		sdl.Delay(10)
	}
}
