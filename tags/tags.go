package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for hitbox lookups
const (
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
)
