package systems

import (
	"log"
	"time"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

// ResolveAttack lands the current swing on target. Damage is applied only
// while a swing is active, both characters are alive, their hitboxes
// overlap and this swing has not already hit. It reports whether damage
// was applied.
func ResolveAttack(attack *components.MeleeAttackData, attacker, target *donburi.Entry, now time.Duration) bool {
	if !attack.IsAttacking || attack.HitRegistered {
		return false
	}
	if !components.Character.Get(attacker).Alive || !components.Character.Get(target).Alive {
		return false
	}
	if !Overlaps(components.Object.Get(attacker).Object, components.Object.Get(target).Object) {
		return false
	}

	if damage, ok := cfg.Combat.Damage[attack.AttackType]; ok {
		log.Printf("Attack %d hit!", attack.AttackType)
		TakeDamage(target, damage, now)
	}
	attack.HitRegistered = true
	return true
}

// TakeDamage subtracts amount from e's health, clamping at zero. Reaching
// zero starts the death sequence. Dead entities ignore further damage.
func TakeDamage(e *donburi.Entry, amount int, now time.Duration) {
	char := components.Character.Get(e)
	if !char.Alive {
		return
	}

	hp := components.Health.Get(e)
	hp.Current -= amount
	TriggerHitFlash(e)

	if hp.Current <= 0 {
		hp.Current = 0
		startDeathSequence(e, now)
	}
}

func startDeathSequence(e *donburi.Entry, now time.Duration) {
	char := components.Character.Get(e)
	char.Alive = false

	// Switch to the death animation; it holds its last frame.
	anim := components.Animation.Get(e)
	anim.SetAction(cfg.Dead, now)

	// A single-frame death already shows its last frame.
	if e.HasComponent(components.Death) && anim.CurrentAnimation != nil && anim.CurrentAnimation.OnLastFrame() {
		components.Death.Get(e).ReachedLast = true
	}

	log.Printf("%s died!", char.CharType)
}
