package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateSession returns the singleton Session component, creating if needed
func GetOrCreateSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{Debug: cfg.Debug.Overlay})
	}
	return components.Session.Get(entry)
}

// QuitRequested reports whether the player asked to leave.
func QuitRequested(w donburi.World) bool {
	return GetOrCreateSession(w).Quit
}
