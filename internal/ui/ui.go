// Package ui renders the experiment screens with SDL: instruction
// pages, the intake and questionnaire forms and the trial display.
// Everything is immediate-mode drawing on a single window, the same way
// the presentation engine this grew out of renders its setup screen.
package ui

import (
	"fmt"
	"strings"

	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
)

// UI bundles the window, renderer and font for one run.
type UI struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Font     *ttf.Font

	Width, Height int
	Background    sdl.Color
	Text          sdl.Color
}

// Setup creates the experiment window. SDL and TTF must already be
// initialized by the caller.
func Setup(title string, width, height int, fullscreen bool, fontFile string, fontSize int, bg, text sdl.Color) (*UI, error) {
	flags := sdl.WINDOW_RESIZABLE
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	window, renderer, err := sdl.CreateWindowAndRenderer(title, width, height, flags)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	renderer.SetVSync(1)

	if fontFile == "" {
		fontFile = DefaultFontPath()
	}
	if fontFile == "" {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("no usable TTF font found")
	}
	font, err := ttf.OpenFont(fontFile, float32(fontSize))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("loading font %s: %w", fontFile, err)
	}

	return &UI{
		Window:     window,
		Renderer:   renderer,
		Font:       font,
		Width:      width,
		Height:     height,
		Background: bg,
		Text:       text,
	}, nil
}

// Destroy releases the window resources.
func (u *UI) Destroy() {
	if u.Font != nil {
		u.Font.Close()
	}
	if u.Renderer != nil {
		u.Renderer.Destroy()
	}
	if u.Window != nil {
		u.Window.Destroy()
	}
}

// ParseColor reads an "R,G,B,A" string.
func ParseColor(s string) sdl.Color {
	var r, g, b, a uint8
	fmt.Sscanf(s, "%d,%d,%d,%d", &r, &g, &b, &a)
	return sdl.Color{R: r, G: g, B: b, A: a}
}

func (u *UI) clear() {
	u.Renderer.SetDrawColor(u.Background.R, u.Background.G, u.Background.B, u.Background.A)
	u.Renderer.Clear()
}

// drawText renders one line at x,y and returns its size.
func (u *UI) drawText(text string, x, y float32, color sdl.Color) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	surf, err := u.Font.RenderTextBlended(text, color)
	if err != nil || surf == nil {
		return 0, 0
	}
	w, h := float32(surf.W), float32(surf.H)
	tex, err := u.Renderer.CreateTextureFromSurface(surf)
	if err == nil {
		r := sdl.FRect{X: x, Y: y, W: w, H: h}
		u.Renderer.RenderTexture(tex, nil, &r)
		tex.Destroy()
	}
	surf.Destroy()
	return w, h
}

// drawTextCentered renders one line horizontally centered at y.
func (u *UI) drawTextCentered(text string, y float32, color sdl.Color) float32 {
	surf, err := u.Font.RenderTextBlended(text, color)
	if err != nil || surf == nil {
		return 0
	}
	w, h := float32(surf.W), float32(surf.H)
	x := (float32(u.Width) - w) / 2
	surf.Destroy()
	u.drawText(text, x, y, color)
	return h
}

// lineHeight approximates the vertical advance of the font.
func (u *UI) lineHeight() float32 {
	_, h := u.measure("Ag")
	if h == 0 {
		return 28
	}
	return h * 1.3
}

func (u *UI) measure(text string) (float32, float32) {
	surf, err := u.Font.RenderTextBlended(text, u.Text)
	if err != nil || surf == nil {
		return 0, 0
	}
	w, h := float32(surf.W), float32(surf.H)
	surf.Destroy()
	return w, h
}

// drawParagraph renders wrapped multi-line text centered around cy and
// returns the y of the line below it.
func (u *UI) drawParagraph(text string, cy float32, color sdl.Color) float32 {
	lines := wrapLines(text, 70)
	lh := u.lineHeight()
	y := cy - lh*float32(len(lines))/2
	for _, line := range lines {
		if line != "" {
			u.drawTextCentered(line, y, color)
		}
		y += lh
	}
	return y
}

// wrapLines splits text on newlines and wraps each line at word
// boundaries to at most limit runes.
func wrapLines(text string, limit int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " ")
		if len([]rune(line)) <= limit {
			out = append(out, strings.TrimLeft(line, " "))
			continue
		}
		var cur strings.Builder
		for _, word := range strings.Fields(line) {
			if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(word)) > limit {
				out = append(out, cur.String())
				cur.Reset()
			}
			if cur.Len() > 0 {
				cur.WriteByte(' ')
			}
			cur.WriteString(word)
		}
		if cur.Len() > 0 {
			out = append(out, cur.String())
		}
	}
	return out
}

func (u *UI) fillRect(r sdl.FRect, c sdl.Color) {
	u.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	u.Renderer.RenderFillRect(&r)
}

func (u *UI) outlineRect(r sdl.FRect, c sdl.Color) {
	u.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	u.Renderer.RenderRect(&r)
}

func inRect(x, y float32, r sdl.FRect) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// FlushEvents drops all pending input, so stale key presses from the
// playback phase never count as responses.
func (u *UI) FlushEvents() {
	var e sdl.Event
	for sdl.PollEvent(&e) {
	}
}
