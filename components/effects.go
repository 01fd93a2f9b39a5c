package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the tint shown on an entity after it takes a hit.
type FlashData struct {
	Tween     *gween.Tween // nil when idle
	Intensity float32      // 0 = no tint, 1 = full tint
	R, G, B   float32      // tint color multipliers at full intensity
}

var Flash = donburi.NewComponentType[FlashData]()
