package components

import "github.com/yohamta/donburi"

// DeathData tracks the end of a death sequence. ReachedLast is set on the
// first tick the final death frame shows; Disappeared follows one tick later
// and is never cleared.
type DeathData struct {
	ReachedLast bool
	Disappeared bool
}

var Death = donburi.NewComponentType[DeathData]()
