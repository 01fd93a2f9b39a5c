package components

import (
	"time"

	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Frames           map[config.StateID][]*ebiten.Image
	Animations       map[config.StateID]*animations.Animation
}

// SetAction switches to state and restarts its animation at now.
// Asking for the state that is already playing changes nothing.
func (a *AnimationData) SetAction(state config.StateID, now time.Duration) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	a.CurrentState = state
	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart(now)
}

// Frame returns the current frame index, or -1 with no animation playing.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return -1
	}
	return a.CurrentAnimation.Frame()
}

// Image returns the frame to draw, nil when there is none.
func (a *AnimationData) Image() *ebiten.Image {
	frames := a.Frames[a.CurrentState]
	i := a.Frame()
	if i < 0 || i >= len(frames) {
		return nil
	}
	return frames[i]
}

var Animation = donburi.NewComponentType[AnimationData]()
