package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// barRect is a rectangle in screen space.
type barRect struct {
	X, Y, W, H float64
}

// DrawHealthBars draws a red bar with a green health overlay above every
// living enemy.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Character.Get(e).Alive {
			return
		}
		bg, fg := healthBarRects(components.Object.Get(e), components.Health.Get(e))

		// Draw the background of the health bar (red)
		vector.FillRect(screen, float32(bg.X), float32(bg.Y), float32(bg.W), float32(bg.H), cfg.UI.HealthBarBgColor, false)

		// Draw the foreground of the health bar (green)
		vector.FillRect(screen, float32(fg.X), float32(fg.Y), float32(fg.W), float32(fg.H), cfg.UI.HealthBarFgColor, false)
	})
}

// healthBarRects places the bar above the hitbox's top-left corner. The
// foreground width scales with the remaining health.
func healthBarRects(o *components.ObjectData, hp *components.HealthData) (bg, fg barRect) {
	bg = barRect{
		X: o.X,
		Y: o.Y - cfg.UI.HealthBarOffsetY,
		W: cfg.UI.HealthBarWidth,
		H: cfg.UI.HealthBarHeight,
	}
	fg = bg
	fg.W = bg.W * hp.Ratio()
	return bg, fg
}
