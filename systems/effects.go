package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TriggerHitFlash starts the damage tint on e, restarting it if running.
func TriggerHitFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Tween = gween.New(1, 0, cfg.Combat.HitFlashDuration, ease.OutQuad)
	flash.Intensity = 1
}

// UpdateEffects advances every running flash by one tick.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(cfg.TickDuration().Seconds())
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		value, done := flash.Tween.Update(dt)
		flash.Intensity = value
		if done {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})
}
