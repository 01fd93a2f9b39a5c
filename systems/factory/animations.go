package factory

import (
	"time"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds an AnimationData component from a loaded
// animation set. Every action loops except Dead, which holds its last frame.
// The character starts idle with the frame timer anchored at now.
func GenerateAnimations(set *assets.AnimationSet, now time.Duration) *components.AnimationData {
	animData := &components.AnimationData{
		Frames:       make(map[cfg.StateID][]*ebiten.Image, len(set.Frames)),
		Animations:   make(map[cfg.StateID]*animations.Animation, len(set.Frames)),
		CurrentState: cfg.Idle,
	}

	for state, frames := range set.Frames {
		if len(frames) == 0 {
			continue
		}
		animData.Frames[state] = frames
		animData.Animations[state] = animations.NewAnimation(
			len(frames),
			cfg.Animation.FrameCooldown,
			state == cfg.Dead,
			now,
		)
	}
	animData.CurrentAnimation = animData.Animations[cfg.Idle]

	return animData
}
