// components/melee.go
package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MeleeAttackData is the player's attack state. Only one swing is active
// at a time, and a swing deals damage at most once.
type MeleeAttackData struct {
	IsAttacking   bool
	AttackType    int           // 1, 2 or 3
	StartedAt     time.Duration // game time the swing began
	HitRegistered bool          // damage already applied during this swing
}

// Begin starts a swing unless one is already active.
func (m *MeleeAttackData) Begin(attackType int, now time.Duration) bool {
	if m.IsAttacking {
		return false
	}
	m.IsAttacking = true
	m.AttackType = attackType
	m.StartedAt = now
	m.HitRegistered = false
	return true
}

// Expire ends the swing once more than cooldown has passed since it began.
func (m *MeleeAttackData) Expire(now, cooldown time.Duration) bool {
	if !m.IsAttacking || now-m.StartedAt <= cooldown {
		return false
	}
	m.IsAttacking = false
	m.HitRegistered = false
	return true
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
