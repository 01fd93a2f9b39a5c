package systems

import (
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage replaces the current popup with msg.
func ShowMessage(w donburi.World, msg string) {
	state := getOrCreateMessageState(w)
	state.Text = msg
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// announceHit pops up the landed attack, or the target's death if the hit
// killed it.
func announceHit(w donburi.World, attackType int, target *donburi.Entry) {
	char := components.Character.Get(target)
	if !char.Alive {
		ShowMessage(w, fmt.Sprintf("%s died!", char.CharType))
		return
	}
	ShowMessage(w, fmt.Sprintf("Attack %d hit!", attackType))
}

// UpdateMessage counts down the popup and hides it when the timer runs out.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs.World)
	if state.DisplayTimer == 0 {
		return
	}
	state.DisplayTimer--
	if state.DisplayTimer == 0 {
		state.Text = ""
	}
}

// DrawMessage renders the active popup at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs.World)
	if state.Text == "" || !fonts.Loaded(fonts.Debug) {
		return
	}
	face := fonts.Debug.Get()

	bounds := text.BoundString(face, state.Text)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(float64(textWidth) + padding*2)
	boxHeight := float32(float64(textHeight) + padding*2)

	screenWidth := float32(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, face, textX, textY, cfg.Message.TextColor)
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(w donburi.World) *components.MessageStateData {
	entry, ok := components.MessageState.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
