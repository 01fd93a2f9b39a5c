package systems

import (
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
)

func TestDisappearsOneTickAfterLastDeathFrame(t *testing.T) {
	g := newTestGame(t, map[cfg.StateID]int{cfg.Dead: 3})
	TakeDamage(g.enemy, 100, Now(g.ecs.World))

	onLast := func() bool {
		return components.Animation.Get(g.enemy).CurrentAnimation.OnLastFrame()
	}

	last := 0
	for i := 0; i < 200 && !onLast(); i++ {
		g.tick()
		if Disappeared(g.enemy) {
			t.Fatalf("tick %d: disappeared before the final frame showed", i)
		}
		frame := components.Animation.Get(g.enemy).Frame()
		if frame < last {
			t.Fatalf("death animation went backwards: %d -> %d", last, frame)
		}
		last = frame
	}
	if !onLast() {
		t.Fatalf("death animation never reached its final frame")
	}
	if Disappeared(g.enemy) {
		t.Fatalf("should still be visible on the tick the final frame shows")
	}

	g.tick()
	if !Disappeared(g.enemy) {
		t.Fatalf("expected the enemy to disappear one tick after the final frame")
	}

	g.ticks(60)
	if !Disappeared(g.enemy) {
		t.Fatalf("disappearance must stick")
	}
	if got := components.Animation.Get(g.enemy).Frame(); got != 2 {
		t.Fatalf("expected the death animation to hold frame 2, got %d", got)
	}
}

func TestDeadEnemyStopsFalling(t *testing.T) {
	g := newTestGame(t, nil)
	g.ticks(3)
	TakeDamage(g.enemy, 100, Now(g.ecs.World))

	y := components.Object.Get(g.enemy).Y
	g.ticks(10)
	if got := components.Object.Get(g.enemy).Y; got != y {
		t.Fatalf("dead enemy moved from %.2f to %.2f", y, got)
	}
}

func TestEnemyLandsOnFloor(t *testing.T) {
	g := newTestGame(t, nil)
	g.ticks(60)

	o := components.Object.Get(g.enemy)
	if o.Bottom() != cfg.Physics.FloorY {
		t.Fatalf("expected the enemy on the floor, bottom at %.2f", o.Bottom())
	}
	if components.Character.Get(g.enemy).InAir {
		t.Fatalf("grounded enemy still flagged in air")
	}
	if x := o.X + o.W/2; x != cfg.Enemy.SpawnX {
		t.Fatalf("enemy drifted sideways to %.2f", x)
	}
}

func TestEnemyIdlesWhileAlive(t *testing.T) {
	g := newTestGame(t, nil)
	seen := map[int]bool{}
	for i := 0; i < 120; i++ {
		g.tick()
		anim := components.Animation.Get(g.enemy)
		if anim.CurrentState != cfg.Idle {
			t.Fatalf("enemy left idle: %s", anim.CurrentState)
		}
		seen[anim.Frame()] = true
	}
	// Four idle frames over two seconds must loop back to the start.
	for f := 0; f < 4; f++ {
		if !seen[f] {
			t.Fatalf("idle frame %d never shown", f)
		}
	}
}

func TestSingleFrameDeathDisappearsNextTick(t *testing.T) {
	g := newTestGame(t, map[cfg.StateID]int{cfg.Dead: 1})
	TakeDamage(g.enemy, 100, Now(g.ecs.World))

	if Disappeared(g.enemy) {
		t.Fatalf("should still be visible on the tick it died")
	}
	g.tick()
	if !Disappeared(g.enemy) {
		t.Fatalf("expected the enemy to disappear one tick after its only death frame")
	}
}
