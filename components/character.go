package components

import "github.com/yohamta/donburi"

// CharacterData is the state shared by the player and the enemy.
type CharacterData struct {
	CharType  string
	Direction float64 // -1 left, 1 right
	Flip      bool    // draw mirrored
	Alive     bool
	InAir     bool
	Jump      bool // jump requested, consumed on the next grounded move
}

var Character = donburi.NewComponentType[CharacterData]()
