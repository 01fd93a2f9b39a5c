package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the popup at the top of the screen
type MessageStateData struct {
	Text         string // Currently displayed message ("" = none)
	DisplayTimer int    // Ticks remaining to display the current message
}

var MessageState = donburi.NewComponentType[MessageStateData]()
