package systems

import (
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testSet builds an animation set without any pixels. Only frame counts
// and the hitbox size matter to game logic.
func testSet(charType string, frames map[cfg.StateID]int) *assets.AnimationSet {
	set := &assets.AnimationSet{
		CharType: charType,
		Frames:   make(map[cfg.StateID][]*ebiten.Image),
		Width:    40,
		Height:   60,
	}
	for _, s := range cfg.States {
		n := 4
		if v, ok := frames[s]; ok {
			n = v
		}
		set.Frames[s] = make([]*ebiten.Image, n)
	}
	return set
}

type testGame struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	enemy  *donburi.Entry
}

func newTestGame(t *testing.T, enemyFrames map[cfg.StateID]int) *testGame {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateClock)
	e.AddSystem(UpdatePlayerAnimation)
	e.AddSystem(UpdateEnemies)
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateEffects)
	e.AddSystem(UpdateMessage)

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	return &testGame{
		ecs:    e,
		player: factory.CreatePlayer(e, cfg.Player, testSet(cfg.Player.CharType, nil)),
		enemy:  factory.CreateEnemy(e, cfg.Enemy, testSet(cfg.Enemy.CharType, enemyFrames)),
	}
}

// tick runs one Update with the given actions held at the end of it,
// the way the scene polls the keyboard after the player update.
func (g *testGame) tick(held ...cfg.ActionID) {
	g.ecs.Update()
	var pressed [cfg.ActionCount]bool
	for _, id := range held {
		pressed[id] = true
	}
	input := getOrCreateInput(g.ecs.World)
	input.Advance(pressed)
	ApplyInput(g.ecs.World, input)
}

func (g *testGame) ticks(n int, held ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		g.tick(held...)
	}
}

// stackEnemyOnPlayer moves the enemy's hitbox onto the player's.
func (g *testGame) stackEnemyOnPlayer() {
	p := components.Object.Get(g.player)
	e := components.Object.Get(g.enemy)
	e.X, e.Y = p.X, p.Y
	e.Update()
	components.Physics.Get(g.enemy).SpeedY = components.Physics.Get(g.player).SpeedY
}

func (g *testGame) health() int {
	return components.Health.Get(g.enemy).Current
}

func (g *testGame) melee() *components.MeleeAttackData {
	return components.MeleeAttack.Get(g.player)
}

// ticksPastCooldown is enough ticks for any swing to expire.
func ticksPastCooldown() int {
	return int(cfg.Combat.AttackCooldown/cfg.TickDuration()) + 2
}
