// Package ebiten provides the drop-down console presentation for
// ebiten-hosted games.
package ebiten

import (
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/fh9501/fps/pkg/engine/console"
)

const (
	// maxOutputLines bounds the scrollback kept for display.
	maxOutputLines = 50

	// animDuration is the open/close slide time in milliseconds.
	animDuration = 200

	// lineHeight matches the debug font's cell height.
	lineHeight = 16

	paddingX = 10
	paddingY = 10
)

// Ui is the ebiten drop-down console. The host game forwards its Draw
// to DrawOn each frame; input is consumed inside OnUpdate while the
// console is open.
type Ui struct {
	console *console.Console

	active       bool
	animating    bool
	animStart    int64
	animProgress float64

	text         string
	output       []string
	scrollOffset int

	overlayText    string
	overlayX       int
	overlayY       int
	overlayPending bool
}

// New creates an ebiten console presentation. Attach must be called
// before the first frame.
func New() *Ui {
	return &Ui{}
}

// Attach wires the presentation back to the console that drives it,
// for command submission and history recall.
func (u *Ui) Attach(c *console.Console) {
	u.console = c
}

// Init prepares the presentation.
func (u *Ui) Init() {
	u.output = make([]string, 0, maxOutputLines)
}

// Shutdown closes the console.
func (u *Ui) Shutdown() {
	u.active = false
	u.animating = false
	u.animProgress = 0
}

// OutputString appends a line to the scrollback.
func (u *Ui) OutputString(text string) {
	u.output = append(u.output, text)
	if len(u.output) > maxOutputLines {
		u.output = u.output[len(u.output)-maxOutputLines:]
	}
}

// IsOpen reports whether the console is visible or still sliding.
func (u *Ui) IsOpen() bool {
	return u.active || u.animating
}

// SetOpen opens or closes the console with the slide animation.
func (u *Ui) SetOpen(open bool) {
	if u.active == open || u.animating {
		return
	}
	u.active = open
	u.animating = true
	u.animStart = time.Now().UnixMilli()
	if !open {
		u.text = ""
	}
}

// OnUpdate handles the toggle key and, while open, console input.
func (u *Ui) OnUpdate() {
	u.overlayPending = false

	if inpututil.IsKeyJustPressed(ebiten.KeyBackquote) {
		u.SetOpen(!u.active)
		return
	}
	if u.active {
		u.handleInput()
	}
}

// OnLateUpdate is the late per-frame hook.
func (u *Ui) OnLateUpdate() {}

// Clear drops the scrollback.
func (u *Ui) Clear() {
	u.output = nil
	u.scrollOffset = 0
}

// DrawText buffers the transient overlay line; it is rendered on the
// next DrawOn call at the given anchor.
func (u *Ui) DrawText(text string, x, y int) {
	u.overlayText = text
	u.overlayX = x
	u.overlayY = y
	u.overlayPending = true
}

// handleInput processes keyboard input while the console is open.
func (u *Ui) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(u.text) > 0 {
			u.text = u.text[:len(u.text)-1]
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		if strings.TrimSpace(u.text) != "" {
			u.console.Enqueue(u.text)
			u.text = ""
			u.scrollOffset = 0
		}
		return
	}

	// History recall through the engine's ring buffer.
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		u.text = u.console.RecallPrevious()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		u.text = u.console.RecallNext()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		u.scrollOffset += 10
		if u.scrollOffset > len(u.output) {
			u.scrollOffset = len(u.output)
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		u.scrollOffset -= 10
		if u.scrollOffset < 0 {
			u.scrollOffset = 0
		}
		return
	}

	u.appendTypedCharacters()
}

// appendTypedCharacters extends the input line with printable keys.
func (u *Ui) appendTypedCharacters() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		if inpututil.IsKeyJustPressed(k) {
			char := string(rune('a' + (k - ebiten.KeyA)))
			if shift {
				char = strings.ToUpper(char)
			}
			u.text += char
			return
		}
	}

	for k := ebiten.Key0; k <= ebiten.Key9; k++ {
		if inpututil.IsKeyJustPressed(k) {
			u.text += string(rune('0' + (k - ebiten.Key0)))
			return
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		u.text += " "
		return
	}

	specials := []struct {
		key            ebiten.Key
		plain, shifted string
	}{
		{ebiten.KeyMinus, "-", "_"},
		{ebiten.KeyEqual, "=", "+"},
		{ebiten.KeyPeriod, ".", ">"},
		{ebiten.KeyComma, ",", "<"},
		{ebiten.KeySlash, "/", "?"},
		{ebiten.KeySemicolon, ";", ":"},
		{ebiten.KeyApostrophe, "'", "\""},
	}
	for _, s := range specials {
		if inpututil.IsKeyJustPressed(s.key) {
			if shift {
				u.text += s.shifted
			} else {
				u.text += s.plain
			}
			return
		}
	}
}

// DrawOn draws the console panel and the transient overlay onto the
// frame. The host calls this at the end of its Draw pass so the console
// sits above the scene.
func (u *Ui) DrawOn(screen *ebiten.Image) {
	u.drawConsole(screen)
	if u.overlayPending {
		ebitenutil.DebugPrintAt(screen, u.overlayText, u.overlayX, u.overlayY)
	}
}

func (u *Ui) drawConsole(screen *ebiten.Image) {
	progress := u.progress()
	if progress <= 0 {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Console takes up the top 40% of the screen, animated.
	consoleHeight := int(float64(screenHeight) * 0.4 * progress)

	bg := color.RGBA{0, 0, 0, uint8(220 * progress)}
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(consoleHeight), bg, false)

	border := color.RGBA{100, 100, 150, uint8(255 * progress)}
	vector.DrawFilledRect(screen, 0, float32(consoleHeight-2), float32(screenWidth), 2, border, false)

	if consoleHeight < lineHeight*2 {
		return
	}

	// Reserve the bottom line of the panel for input.
	linesToShow := (consoleHeight - paddingY*2 - lineHeight) / lineHeight
	if linesToShow > 0 && len(u.output) > 0 {
		startIdx := len(u.output) - linesToShow - u.scrollOffset
		if startIdx < 0 {
			startIdx = 0
		}
		y := paddingY
		for i := startIdx; i < len(u.output) && i < startIdx+linesToShow; i++ {
			ebitenutil.DebugPrintAt(screen, u.output[i], paddingX, y)
			y += lineHeight
		}
	}

	cursor := "_"
	if int(time.Now().UnixMilli()/500)%2 == 0 {
		cursor = " "
	}
	inputY := consoleHeight - paddingY - lineHeight
	ebitenutil.DebugPrintAt(screen, "> "+u.text+cursor, paddingX, inputY)
}

// progress advances and returns the slide animation progress in [0,1].
func (u *Ui) progress() float64 {
	if !u.animating {
		if u.active {
			return 1.0
		}
		return u.animProgress
	}

	elapsed := time.Now().UnixMilli() - u.animStart
	if elapsed >= animDuration {
		u.animating = false
		if u.active {
			u.animProgress = 1.0
		} else {
			u.animProgress = 0.0
		}
		return u.animProgress
	}

	eased := easeInOut(float64(elapsed) / float64(animDuration))
	if u.active {
		u.animProgress = eased
	} else {
		u.animProgress = 1.0 - eased
	}
	return u.animProgress
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}
