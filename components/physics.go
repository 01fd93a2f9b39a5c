package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedY       float64
	Speed        float64 // horizontal pixels per tick while a move key is held
	Gravity      float64
	MaxFallSpeed float64
	JumpSpeed    float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
