package config

import (
	"image/color"
	"time"
)

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // Added to vertical speed every tick
	MaxFallSpeed float64 // Terminal vertical speed
	JumpSpeed    float64 // Upward speed applied on jump
	FloorY       float64 // Nothing's bottom edge may pass this line
}

// CharacterConfig describes how one character is spawned
type CharacterConfig struct {
	CharType string // Directory name under img/
	SpawnX   float64
	SpawnY   float64
	Scale    float64
	Speed    float64 // Horizontal pixels per tick
	Health   int     // Zero for characters without a health pool
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Damage per attack type (1, 2, 3)
	Damage map[int]int

	// A swing stays active until this much time has passed since it started
	AttackCooldown time.Duration

	// Hit flash length in seconds
	HitFlashDuration float32
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	// Minimum time between two frame advances
	FrameCooldown time.Duration
}

// UIConfig contains drawing configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	FloorLineColor  color.RGBA

	// Enemy health bar, positioned relative to the hitbox top-left
	HealthBarWidth   float64
	HealthBarHeight  float64
	HealthBarOffsetY float64
	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA

	// Debug overlay
	DebugTextColor   color.RGBA
	DebugFontSize    float64
	DebugHitboxColor color.RGBA
}

// MessageConfig contains the combat popup configuration
type MessageConfig struct {
	DisplayDuration int // Ticks a popup stays on screen
	BoxPadding      float64
	TopMargin       float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay   bool    // Start with the debug overlay visible
	AssetRoot string  // Directory holding img/
	Scale     float64 // Overrides both characters' sprite scale when > 0
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player CharacterConfig
var Enemy CharacterConfig
var Combat CombatConfig
var Animation AnimationConfig
var UI UIConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Pink  = color.RGBA{R: 230, G: 180, B: 193, A: 255}
)

// Direction constants for character facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 640, // 0.8 of the width
		Title:  "Platformer",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:      0.75,
		MaxFallSpeed: 10.0,
		JumpSpeed:    11.0,
		FloorY:       300.0,
	}

	Player = CharacterConfig{
		CharType: "player2",
		SpawnX:   200,
		SpawnY:   200,
		Scale:    1,
		Speed:    5,
	}

	Enemy = CharacterConfig{
		CharType: "enemy1",
		SpawnX:   400,
		SpawnY:   200,
		Scale:    1,
		Speed:    5,
		Health:   100,
	}

	Combat = CombatConfig{
		Damage: map[int]int{
			1: 40,
			2: 25,
			3: 33,
		},
		AttackCooldown:   500 * time.Millisecond,
		HitFlashDuration: 0.2,
	}

	Animation = AnimationConfig{
		FrameCooldown: 100 * time.Millisecond,
	}

	UI = UIConfig{
		BackgroundColor:  Pink,
		FloorLineColor:   Red,
		HealthBarWidth:   50,
		HealthBarHeight:  10,
		HealthBarOffsetY: 20,
		HealthBarBgColor: Red,
		HealthBarFgColor: Green,
		DebugTextColor:   Black,
		DebugFontSize:    12,
		DebugHitboxColor: Cyan,
	}

	Message = MessageConfig{
		DisplayDuration: 45,
		BoxPadding:      6,
		TopMargin:       16,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColor:       White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:   false,
		AssetRoot: ".",
	}
}

// TickDuration is the simulated time covered by one Update call.
func TickDuration() time.Duration {
	return time.Second / time.Duration(C.TPS)
}
