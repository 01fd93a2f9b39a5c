package systems

import (
	"time"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances game time by one tick. Must run first.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs.World)
	clock.Now += clock.Step
}

// Now returns the current game time.
func Now(w donburi.World) time.Duration {
	return getOrCreateClock(w).Now
}

// getOrCreateClock returns the singleton Clock component, creating if needed
func getOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{Step: cfg.TickDuration()})
	}
	return components.Clock.Get(entry)
}
