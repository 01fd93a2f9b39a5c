package animations

import "time"

type Animation struct {
	Frames           int           // number of frames in the sequence
	Cooldown         time.Duration // minimum time between two frame advances
	FreezeOnComplete bool          // If true, stay on last frame instead of looping
	frame            int
	lastAdvance      time.Duration
}

// Update advances one frame once more than Cooldown has passed since the
// previous advance.
func (a *Animation) Update(now time.Duration) {
	if now-a.lastAdvance > a.Cooldown {
		a.lastAdvance = now
		a.frame++
	}
	if a.frame >= a.Frames {
		if a.FreezeOnComplete {
			// Stay on last frame
			a.frame = a.Frames - 1
		} else {
			// loop back to the beginning
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// OnLastFrame reports whether the final frame is showing.
func (a *Animation) OnLastFrame() bool {
	return a.frame == a.Frames-1
}

func (a *Animation) Restart(now time.Duration) {
	a.frame = 0
	a.lastAdvance = now
}

func NewAnimation(frames int, cooldown time.Duration, freeze bool, now time.Duration) *Animation {
	return &Animation{
		Frames:           frames,
		Cooldown:         cooldown,
		FreezeOnComplete: freeze,
		lastAdvance:      now,
	}
}
