package config

import "fmt"

type AnimationDef struct {
	Frames int // number of <i>0.png files, starting at 00.png
}

// AnimationManifest maps a character type (the directory under img/)
// to the frame counts of each of its actions.
type AnimationManifest map[string]map[StateID]AnimationDef

// CharacterAnimations is the built-in manifest. img/manifest.yaml replaces it
// when present.
var CharacterAnimations = AnimationManifest{
	"player2": {
		Idle:    {Frames: 5},
		Walk:    {Frames: 6},
		Jump:    {Frames: 1},
		Attack1: {Frames: 4},
		Attack2: {Frames: 4},
		Attack3: {Frames: 4},
		Dead:    {Frames: 4},
	},
	"enemy1": {
		Idle:    {Frames: 5},
		Walk:    {Frames: 6},
		Jump:    {Frames: 1},
		Attack1: {Frames: 4},
		Attack2: {Frames: 4},
		Attack3: {Frames: 4},
		Dead:    {Frames: 6},
	},
}

// Validate checks that charType declares at least one frame for every action.
func (m AnimationManifest) Validate(charType string) error {
	defs, ok := m[charType]
	if !ok {
		return fmt.Errorf("no animation definitions for character type %q", charType)
	}
	for _, state := range States {
		def, ok := defs[state]
		if !ok {
			return fmt.Errorf("%s: missing action %s", charType, state)
		}
		if def.Frames < 1 {
			return fmt.Errorf("%s/%s: frame count must be at least 1, got %d", charType, state, def.Frames)
		}
	}
	return nil
}
