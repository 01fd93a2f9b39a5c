package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is simulated game time. It moves by Step once per Update so
// every timer in the game is tick-deterministic.
type ClockData struct {
	Now  time.Duration
	Step time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()
