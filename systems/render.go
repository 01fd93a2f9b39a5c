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

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground fills the screen and draws the floor reference line.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
	width := float32(screen.Bounds().Dx())
	floor := float32(cfg.Physics.FloorY)
	vector.StrokeLine(screen, 0, floor, width, floor, 1, cfg.UI.FloorLineColor, false)
}

// DrawCharacters draws the player, then every enemy that has not disappeared.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawCharacter(screen, e)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if Disappeared(e) {
			return
		}
		drawCharacter(screen, e)
	})
}

// drawCharacter blits the current frame at the hitbox's top-left corner,
// mirrored horizontally when the character faces left.
func drawCharacter(screen *ebiten.Image, e *donburi.Entry) {
	img := components.Animation.Get(e).Image()
	if img == nil {
		return
	}
	o := components.Object.Get(e)
	char := components.Character.Get(e)

	// Reset draw options.
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	if char.Flip {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	drawOp.GeoM.Translate(o.X, o.Y)

	if e.HasComponent(components.Flash) {
		flash := components.Flash.Get(e)
		if flash.Intensity > 0 {
			drawOp.ColorScale.Scale(
				lerp(1, flash.R, flash.Intensity),
				lerp(1, flash.G, flash.Intensity),
				lerp(1, flash.B, flash.Intensity),
				1,
			)
		}
	}

	screen.DrawImage(img, drawOp)
}

func lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}
