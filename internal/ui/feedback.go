package ui

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/drag"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
	face     *text.GoTextFace
	width    int
}

// NewToastManager creates a toast manager centering toasts in width pixels.
func NewToastManager(face *text.GoTextFace, width int) *ToastManager {
	return &ToastManager{
		maxStack: 3,
		face:     face,
		width:    width,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	if tm.face == nil {
		return
	}

	y := 24.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}
		alpha = math.Max(0, math.Min(1, alpha))

		var bgColor, textColor color.RGBA
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			textColor = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		case ToastError:
			bgColor = color.RGBA{180, 50, 50, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		default: // ToastInfo
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		}

		w, h := MeasureText(t.Message, tm.face)
		padding := 10.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(tm.width)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, tm.face, op)

		y += boxH + 8
	}
}

// ShakeAnimation represents a piece shake effect.
type ShakeAnimation struct {
	Cell      board.Cell
	StartTime time.Time
	Duration  time.Duration
	Intensity float64
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	Cell      board.Cell
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages visual animations.
type AnimationManager struct {
	shakes  []*ShakeAnimation
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake begins a shake animation on a cell.
func (am *AnimationManager) StartShake(c board.Cell) {
	am.shakes = append(am.shakes, &ShakeAnimation{
		Cell:      c,
		StartTime: time.Now(),
		Duration:  300 * time.Millisecond,
		Intensity: 8.0,
	})
}

// StartFlash begins a flash animation on a cell.
func (am *AnimationManager) StartFlash(c board.Cell, clr color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Cell:      c,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     clr,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()

	activeShakes := am.shakes[:0]
	for _, s := range am.shakes {
		if now.Sub(s.StartTime) < s.Duration {
			activeShakes = append(activeShakes, s)
		}
	}
	am.shakes = activeShakes

	activeFlashes := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			activeFlashes = append(activeFlashes, f)
		}
	}
	am.flashes = activeFlashes
}

// ShakeOffset returns the current shake offset for a cell.
func (am *AnimationManager) ShakeOffset(c board.Cell) (float64, float64) {
	for _, s := range am.shakes {
		if s.Cell != c {
			continue
		}
		progress := time.Since(s.StartTime).Seconds() / s.Duration.Seconds()
		if progress >= 1.0 {
			return 0, 0
		}
		// Damped sine wave oscillation
		amplitude := s.Intensity * math.Exp(-5*progress)
		return amplitude * math.Sin(40*progress), 0
	}
	return 0, 0
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, g drag.Geometry) {
	size := float32(g.CellSize)
	for _, f := range am.flashes {
		progress := time.Since(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}
		alpha := 1.0 - progress
		c := color.RGBA{f.Color.R, f.Color.G, f.Color.B, uint8(float64(f.Color.A) * alpha)}

		x, y := g.CellOrigin(f.Cell)
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
}

// FeedbackManager coordinates toasts, animations and sound.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager. audio may be nil.
func NewFeedbackManager(toasts *ToastManager, audio *AudioManager) *FeedbackManager {
	return &FeedbackManager{
		toasts:     toasts,
		animations: NewAnimationManager(),
		audio:      audio,
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, g drag.Geometry) {
	fm.animations.DrawFlashes(screen, g)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Info shows a short informational toast.
func (fm *FeedbackManager) Info(message string) {
	fm.toasts.Show(message, ToastInfo, 1500*time.Millisecond)
}

// OnMoved handles an accepted drop.
func (fm *FeedbackManager) OnMoved() {
	fm.audio.Play(SoundMove)
}

// OnFlipped handles an orientation change.
func (fm *FeedbackManager) OnFlipped() {
	fm.audio.Play(SoundFlip)
}

// OnRejectedDrop reports a drop the board refused. origin is the cell the
// piece came from; target is nil when the drop was off the board.
func (fm *FeedbackManager) OnRejectedDrop(err error, origin board.Cell, target *board.Cell) {
	fm.toasts.Show(RejectionMessage(err), ToastWarning, 2*time.Second)
	fm.animations.StartShake(origin)
	if target != nil {
		fm.animations.StartFlash(*target, color.RGBA{255, 80, 80, 150})
	}
	fm.audio.Play(SoundInvalid)
}

// OnCorrupt reports a board whose masks overlap.
func (fm *FeedbackManager) OnCorrupt(err error) {
	fm.toasts.Show("Board is not valid: "+err.Error(), ToastError, 4*time.Second)
	fm.audio.Play(SoundInvalid)
}

// RejectionMessage describes why a drop was refused.
func RejectionMessage(err error) string {
	var moveErr *board.MoveError
	switch {
	case errors.As(err, &moveErr):
		return "A " + moveErr.Kind.Name() + " cannot move from " +
			moveErr.Origin.Algebraic() + " to " + moveErr.Target.Algebraic()
	case errors.Is(err, board.ErrTargetOccupied):
		return "Square is occupied"
	case errors.Is(err, board.ErrOriginMismatch):
		return "Piece is no longer on its square"
	case errors.Is(err, drag.ErrOffBoard):
		return "Dropped outside the board"
	default:
		return "Invalid move"
	}
}
