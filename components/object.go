package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a character's hitbox. X/Y is the top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Bottom returns the y coordinate of the hitbox's bottom edge.
func (o *ObjectData) Bottom() float64 {
	return o.Y + o.H
}

var Object = donburi.NewComponentType[ObjectData]()
