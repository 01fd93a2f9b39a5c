package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/solarlune/resolv"
)

func TestHealthBarRects(t *testing.T) {
	cases := []struct {
		name    string
		current int
		wantFgW float64
	}{
		{"full", 100, 50},
		{"sixty", 60, 30},
		{"one", 1, 0.5},
		{"empty", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := &components.ObjectData{Object: resolv.NewObject(100, 200, 40, 60)}
			bg, fg := healthBarRects(o, &components.HealthData{Current: c.current, Max: 100})

			wantBg := barRect{X: 100, Y: 180, W: 50, H: 10}
			if bg != wantBg {
				t.Fatalf("expected background %+v, got %+v", wantBg, bg)
			}
			if fg.X != bg.X || fg.Y != bg.Y || fg.H != bg.H {
				t.Fatalf("foreground must share the background origin: %+v", fg)
			}
			if math.Abs(fg.W-c.wantFgW) > 1e-9 {
				t.Fatalf("expected foreground width %.2f, got %.2f", c.wantFgW, fg.W)
			}
		})
	}
}

func TestHitFlashFades(t *testing.T) {
	g := newTestGame(t, nil)
	TriggerHitFlash(g.enemy)

	flash := components.Flash.Get(g.enemy)
	if flash.Intensity != 1 || flash.Tween == nil {
		t.Fatalf("expected a full flash to start")
	}

	ticks := int(math.Ceil(float64(cfg.Combat.HitFlashDuration)*float64(cfg.C.TPS))) + 2
	g.ticks(ticks)
	flash = components.Flash.Get(g.enemy)
	if flash.Intensity != 0 || flash.Tween != nil {
		t.Fatalf("flash should be over, intensity %.2f", flash.Intensity)
	}
}

func TestDebugLines(t *testing.T) {
	g := newTestGame(t, nil)
	g.tick()

	lines := debugLines(g.ecs.World)
	if len(lines) != 2 {
		t.Fatalf("expected a line per character, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], cfg.Player.CharType) {
		t.Fatalf("first line should describe the player: %q", lines[0])
	}
	if !strings.Contains(lines[1], "hp=100/100") {
		t.Fatalf("enemy line should show health: %q", lines[1])
	}

	g.tick(cfg.ActionAttack1)
	if lines = debugLines(g.ecs.World); len(lines) != 3 || !strings.Contains(lines[1], "attack 1") {
		t.Fatalf("expected the active swing listed, got %q", lines)
	}

	TakeDamage(g.enemy, 100, Now(g.ecs.World))
	g.ticks(120)
	lines = debugLines(g.ecs.World)
	if last := lines[len(lines)-1]; !strings.Contains(last, "hp=0/100") || !strings.HasSuffix(last, "gone") {
		t.Fatalf("expected a gone enemy, got %q", last)
	}
}

func TestCombatMessages(t *testing.T) {
	g := newTestGame(t, nil)
	g.stackEnemyOnPlayer()

	g.tick(cfg.ActionAttack1)
	g.tick()
	state := getOrCreateMessageState(g.ecs.World)
	if state.Text != "Attack 1 hit!" {
		t.Fatalf("expected a hit popup, got %q", state.Text)
	}

	g.ticks(cfg.Message.DisplayDuration)
	if state := getOrCreateMessageState(g.ecs.World); state.Text != "" || state.DisplayTimer != 0 {
		t.Fatalf("popup should have expired, got %+v", state)
	}

	components.Health.Get(g.enemy).Current = 10
	g.tick(cfg.ActionAttack2)
	g.tick()
	if got := getOrCreateMessageState(g.ecs.World).Text; got != cfg.Enemy.CharType+" died!" {
		t.Fatalf("expected a death popup, got %q", got)
	}
}
