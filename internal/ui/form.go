package ui

import (
	"strings"

	"github.com/Zyko0/go-sdl3/sdl"
)

// Intake shows the blocking subject-ID form: experiment name and date
// are display-only, the subject ID is typed in. Confirmation needs a
// non-empty ID; cancelling returns ok=false and the run must terminate
// without writing anything.
func (u *UI) Intake(experiment, date string) (subject string, ok bool) {
	u.Window.StartTextInput()
	defer u.Window.StopTextInput()

	w := float32(u.Width)
	h := float32(u.Height)
	boxW := w * 0.4
	boxX := (w - boxW) / 2
	rowH := float32(36)

	idBox := sdl.FRect{X: boxX, Y: h*0.45, W: boxW, H: rowH}
	okBtn := sdl.FRect{X: w/2 - 60, Y: h * 0.62, W: 120, H: 44}

	for {
		var e sdl.Event
		for sdl.PollEvent(&e) {
			switch e.Type {
			case sdl.EVENT_QUIT:
				return "", false
			case sdl.EVENT_KEY_DOWN:
				switch e.KeyboardEvent().Key {
				case sdl.K_ESCAPE:
					return "", false
				case sdl.K_BACKSPACE:
					if len(subject) > 0 {
						subject = trimLastRune(subject)
					}
				case sdl.K_RETURN:
					if strings.TrimSpace(subject) != "" {
						return strings.TrimSpace(subject), true
					}
				}
			case sdl.EVENT_TEXT_INPUT:
				subject += e.TextInputEvent().Text
			case sdl.EVENT_MOUSE_BUTTON_DOWN:
				me := e.MouseButtonEvent()
				if inRect(me.X, me.Y, okBtn) && strings.TrimSpace(subject) != "" {
					return strings.TrimSpace(subject), true
				}
			}
		}

		u.clear()
		u.drawTextCentered("Musical Ear Test", h*0.18, u.Text)
		u.drawText("Experiment:  "+experiment, boxX, h*0.30, u.Text)
		u.drawText("Datum:  "+date, boxX, h*0.30+rowH*1.2, u.Text)
		u.drawText("Subject ID:", boxX, idBox.Y-rowH*0.9, u.Text)

		u.fillRect(idBox, colorWhite)
		u.outlineRect(idBox, colorFocus)
		u.drawText(subject, idBox.X+6, idBox.Y+6, colorBlack)

		u.fillRect(okBtn, colorGreen)
		u.drawText("OK", okBtn.X+okBtn.W/2-14, okBtn.Y+10, colorWhite)

		u.Renderer.Present()
		sdl.Delay(10)
	}
}

// AskBool shows a single checkbox question. The second return value is
// false when the subject cancelled.
func (u *UI) AskBool(prompt string) (bool, bool) {
	w := float32(u.Width)
	h := float32(u.Height)

	check := sdl.FRect{X: w/2 - 12, Y: h * 0.52, W: 24, H: 24}
	okBtn := sdl.FRect{X: w/2 - 60, Y: h * 0.66, W: 120, H: 44}
	checked := false

	for {
		var e sdl.Event
		for sdl.PollEvent(&e) {
			switch e.Type {
			case sdl.EVENT_QUIT:
				return false, false
			case sdl.EVENT_KEY_DOWN:
				switch e.KeyboardEvent().Key {
				case sdl.K_ESCAPE:
					return false, false
				case sdl.K_RETURN:
					return checked, true
				case sdl.K_SPACE:
					checked = !checked
				}
			case sdl.EVENT_MOUSE_BUTTON_DOWN:
				me := e.MouseButtonEvent()
				if inRect(me.X, me.Y, check) {
					checked = !checked
				}
				if inRect(me.X, me.Y, okBtn) {
					return checked, true
				}
			}
		}

		u.clear()
		u.drawParagraph(prompt, h*0.3, u.Text)

		u.fillRect(check, colorWhite)
		u.outlineRect(check, colorBlack)
		if checked {
			mark := sdl.FRect{X: check.X + 5, Y: check.Y + 5, W: check.W - 10, H: check.H - 10}
			u.fillRect(mark, colorGreen)
		}

		u.fillRect(okBtn, colorGreen)
		u.drawText("OK", okBtn.X+okBtn.W/2-14, okBtn.Y+10, colorWhite)

		u.Renderer.Present()
		sdl.Delay(10)
	}
}

// AskText shows a single free-text question. The second return value is
// false when the subject cancelled.
func (u *UI) AskText(prompt string) (string, bool) {
	u.Window.StartTextInput()
	defer u.Window.StopTextInput()

	w := float32(u.Width)
	h := float32(u.Height)

	box := sdl.FRect{X: w * 0.2, Y: h * 0.52, W: w * 0.6, H: 36}
	okBtn := sdl.FRect{X: w/2 - 60, Y: h * 0.66, W: 120, H: 44}
	answer := ""

	for {
		var e sdl.Event
		for sdl.PollEvent(&e) {
			switch e.Type {
			case sdl.EVENT_QUIT:
				return "", false
			case sdl.EVENT_KEY_DOWN:
				switch e.KeyboardEvent().Key {
				case sdl.K_ESCAPE:
					return "", false
				case sdl.K_BACKSPACE:
					if len(answer) > 0 {
						answer = trimLastRune(answer)
					}
				case sdl.K_RETURN:
					return answer, true
				}
			case sdl.EVENT_TEXT_INPUT:
				answer += e.TextInputEvent().Text
			case sdl.EVENT_MOUSE_BUTTON_DOWN:
				me := e.MouseButtonEvent()
				if inRect(me.X, me.Y, okBtn) {
					return answer, true
				}
			}
		}

		u.clear()
		u.drawParagraph(prompt, h*0.3, u.Text)

		u.fillRect(box, colorWhite)
		u.outlineRect(box, colorFocus)
		u.drawText(answer, box.X+6, box.Y+6, colorBlack)

		u.fillRect(okBtn, colorGreen)
		u.drawText("OK", okBtn.X+okBtn.W/2-14, okBtn.Y+10, colorWhite)

		u.Renderer.Present()
		sdl.Delay(10)
	}
}

func trimLastRune(s string) string {
	r := []rune(s)
	return string(r[:len(r)-1])
}
