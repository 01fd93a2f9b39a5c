package scenes

import (
	"sync"

	"github.com/automoto/platformer/assets"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DuelScene is the single screen: one player, one enemy, a floor.
type DuelScene struct {
	ecs          *ecs.ECS
	playerFrames *assets.AnimationSet
	enemyFrames  *assets.AnimationSet
	once         sync.Once
}

func NewDuelScene(playerFrames, enemyFrames *assets.AnimationSet) *DuelScene {
	return &DuelScene{playerFrames: playerFrames, enemyFrames: enemyFrames}
}

// Update runs one tick. It returns ebiten.Termination once a quit was requested.
func (ds *DuelScene) Update() error {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if systems.QuitRequested(ds.ecs.World) {
		return ebiten.Termination
	}
	return nil
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	ds.once.Do(ds.configure)
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Tick order matters: the player animates before the enemy, combat and
	// movement resolve before this tick's keys are read.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdatePlayerAnimation)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateMessage)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ds.ecs = ecs

	// Collision space covering the whole screen
	factory.CreateSpace(ds.ecs, cfg.C.Width, cfg.C.Height, 16, 16)

	factory.CreatePlayer(ds.ecs, cfg.Player, ds.playerFrames)
	factory.CreateEnemy(ds.ecs, cfg.Enemy, ds.enemyFrames)
}
