package components

import (
	"testing"
	"time"

	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/config"
)

func TestMeleeBeginAndExpire(t *testing.T) {
	var m MeleeAttackData
	cooldown := 500 * time.Millisecond

	if !m.Begin(1, 100*time.Millisecond) {
		t.Fatalf("expected the first swing to start")
	}
	m.HitRegistered = true

	if m.Begin(2, 200*time.Millisecond) {
		t.Fatalf("a second swing started while one was active")
	}
	if m.AttackType != 1 || m.StartedAt != 100*time.Millisecond {
		t.Fatalf("active swing was overwritten: %+v", m)
	}

	if m.Expire(600*time.Millisecond, cooldown) {
		t.Fatalf("swing expired at exactly the cooldown")
	}
	if !m.Expire(601*time.Millisecond, cooldown) {
		t.Fatalf("expected the swing to expire past the cooldown")
	}
	if m.IsAttacking || m.HitRegistered {
		t.Fatalf("expired swing left state behind: %+v", m)
	}
	if m.Expire(2*time.Second, cooldown) {
		t.Fatalf("expire with no swing should do nothing")
	}

	if !m.Begin(3, time.Second) || m.HitRegistered {
		t.Fatalf("expected a clean new swing: %+v", m)
	}
}

func TestInputEdges(t *testing.T) {
	var in InputData
	var pressed [config.ActionCount]bool

	pressed[config.ActionJump] = true
	in.Advance(pressed)
	if s := in.Action(config.ActionJump); !s.Pressed || !s.JustPressed {
		t.Fatalf("expected a fresh press, got %+v", s)
	}

	in.Advance(pressed)
	if s := in.Action(config.ActionJump); !s.Pressed || s.JustPressed {
		t.Fatalf("held key reported as a new press: %+v", s)
	}

	in.Advance([config.ActionCount]bool{})
	if s := in.Action(config.ActionJump); s.Pressed || !s.JustReleased {
		t.Fatalf("expected a release, got %+v", s)
	}
}

func TestSetActionKeepsRunningAnimation(t *testing.T) {
	a := &AnimationData{
		Animations: map[config.StateID]*animations.Animation{
			config.Idle: animations.NewAnimation(4, 100*time.Millisecond, false, 0),
			config.Walk: animations.NewAnimation(4, 100*time.Millisecond, false, 0),
		},
	}
	a.SetAction(config.Walk, 0)
	a.CurrentAnimation.Update(150 * time.Millisecond)
	if a.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", a.Frame())
	}

	a.SetAction(config.Walk, 200*time.Millisecond)
	if a.Frame() != 1 {
		t.Fatalf("same action restarted the animation")
	}

	a.SetAction(config.Idle, 200*time.Millisecond)
	if a.CurrentState != config.Idle || a.Frame() != 0 {
		t.Fatalf("new action should start at frame 0, got %s#%d", a.CurrentState, a.Frame())
	}

	a.SetAction(config.Dead, 300*time.Millisecond)
	if a.Frame() != -1 || a.Image() != nil {
		t.Fatalf("missing animation should leave nothing to draw")
	}
}
