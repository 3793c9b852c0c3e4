package dragdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultAvatarFade = 0.15 // seconds

// Avatar is the floating drag image that follows the pointer during a drag.
// The Manager creates it through the factory installed with
// SetAvatarFactory, moves it on every drag move, and fades it out when the
// drag ends. Hosts read X, Y and Alpha to draw it.
type Avatar struct {
	X, Y float64
	// Offset from the pointer to the avatar's top-left corner.
	OffsetX, OffsetY float64
	Width, Height    float64
	Alpha            float64
	// UserData is arbitrary host data (an image, a label).
	UserData any

	FadeDuration float32
	Ease         ease.TweenFunc

	fade *gween.Tween
	done bool
}

// NewAvatar creates an opaque avatar of the given size.
func NewAvatar(width, height float64) *Avatar {
	return &Avatar{
		Width:        width,
		Height:       height,
		Alpha:        1,
		FadeDuration: defaultAvatarFade,
		Ease:         ease.OutQuad,
	}
}

func (a *Avatar) moveTo(x, y float64) {
	a.X = x + a.OffsetX
	a.Y = y + a.OffsetY
}

// destroy starts the fade-out. The avatar is Done when it finishes.
func (a *Avatar) destroy() {
	if a.fade != nil || a.done {
		return
	}
	fn := a.Ease
	if fn == nil {
		fn = ease.Linear
	}
	if a.FadeDuration <= 0 {
		a.Alpha = 0
		a.done = true
		return
	}
	a.fade = gween.New(float32(a.Alpha), 0, a.FadeDuration, fn)
}

// Update advances the fade-out by dt seconds. It has no effect on a live
// avatar.
func (a *Avatar) Update(dt float32) {
	if a.fade == nil || a.done {
		return
	}
	val, finished := a.fade.Update(dt)
	a.Alpha = float64(val)
	if finished {
		a.Alpha = 0
		a.done = true
	}
}

// Destroyed reports whether the avatar's drag has ended.
func (a *Avatar) Destroyed() bool {
	return a.fade != nil || a.done
}

// Done reports whether the avatar finished fading out and can be dropped.
func (a *Avatar) Done() bool {
	return a.done
}
