package systems

import (
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hitbox in the collision space and prints the
// characters' state in the top-left corner. F1 toggles it.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSession(ecs.World).Debug {
		return
	}

	if space := factory.SpaceOf(ecs.World); space != nil {
		for _, obj := range space.Objects() {
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, cfg.UI.DebugHitboxColor, false)
		}
	}

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	face := fonts.Debug.Get()
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range debugLines(ecs.World) {
		text.Draw(screen, line, face, 8, lineHeight*(i+1), cfg.UI.DebugTextColor)
	}
}

// debugLines describes the player, the active swing and the enemy.
func debugLines(w donburi.World) []string {
	var lines []string
	tags.Player.Each(w, func(e *donburi.Entry) {
		lines = append(lines, describeCharacter(e))
		melee := components.MeleeAttack.Get(e)
		if melee.IsAttacking {
			lines = append(lines, fmt.Sprintf("  attack %d since %s hit=%t",
				melee.AttackType, melee.StartedAt, melee.HitRegistered))
		}
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		line := describeCharacter(e)
		hp := components.Health.Get(e)
		line += fmt.Sprintf(" hp=%d/%d", hp.Current, hp.Max)
		if Disappeared(e) {
			line += " gone"
		}
		lines = append(lines, line)
	})
	return lines
}

func describeCharacter(e *donburi.Entry) string {
	char := components.Character.Get(e)
	anim := components.Animation.Get(e)
	o := components.Object.Get(e)
	physics := components.Physics.Get(e)
	return fmt.Sprintf("%s %s#%d pos=(%.0f,%.0f) vy=%.2f air=%t alive=%t",
		char.CharType, anim.CurrentState, anim.Frame(), o.X, o.Y, physics.SpeedY, char.InAir, char.Alive)
}
