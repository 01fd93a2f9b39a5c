package components

import "github.com/yohamta/donburi"

type SessionData struct {
	Quit  bool // set once; the scene ends the run loop on the next Update
	Debug bool // debug overlay visible
}

var Session = donburi.NewComponentType[SessionData]()
