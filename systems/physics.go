package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
)

// MoveCharacter applies one tick of movement. Horizontal input and jumping
// only take effect while the character is alive; gravity and the floor
// always apply. When left and right are both held, right wins.
func MoveCharacter(obj *components.ObjectData, physics *components.PhysicsData, char *components.CharacterData, left, right bool) {
	dx := 0.0

	if char.Alive {
		if left {
			dx = -physics.Speed
			char.Flip = true
			char.Direction = cfg.DirectionLeft
		}
		if right {
			dx = physics.Speed
			char.Flip = false
			char.Direction = cfg.DirectionRight
		}

		if char.Jump && !char.InAir {
			physics.SpeedY = -physics.JumpSpeed
			char.Jump = false
			char.InAir = true
		}
	}

	dy := applyGravity(obj, physics, char)

	obj.X += dx
	obj.Y += dy
	obj.Update()
}

// FallCharacter is movement without input: gravity and the floor only, and
// only while alive.
func FallCharacter(obj *components.ObjectData, physics *components.PhysicsData, char *components.CharacterData) {
	if !char.Alive {
		return
	}
	obj.Y += applyGravity(obj, physics, char)
	obj.Update()
}

// applyGravity accelerates downward, clamps to terminal speed and returns
// the vertical step, shortened so the bottom edge stops on the floor.
func applyGravity(obj *components.ObjectData, physics *components.PhysicsData, char *components.CharacterData) float64 {
	physics.SpeedY += physics.Gravity
	if physics.SpeedY > physics.MaxFallSpeed {
		physics.SpeedY = physics.MaxFallSpeed
	}
	dy := physics.SpeedY

	// Floor collision
	if obj.Bottom()+dy > cfg.Physics.FloorY {
		dy = cfg.Physics.FloorY - obj.Bottom()
		char.InAir = false
	}
	return dy
}
