package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Height         float64 // world units, feet to head
	Radius         float64 // footprint radius on the ground plane
	MoveSpeed      float64 // world units per tick
	InteractRadius float64 // how close an NPC must be to start talking
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Offset            mgl64.Vec3 // eye position relative to the primary focus
	FollowSmoothing   float64    // How fast the eye follows its target (0.0-1.0)
	FocusBlendSeconds float64    // Duration of the blend toward / away from a secondary focus
	SecondaryWeight   float64    // How far toward the secondary point the look-at moves when fully blended
}

// DialogConfig contains dialogue configuration
type DialogConfig struct {
	ProjectDir   string // directory of narrative project files
	SaveKey      string // gdata item key for dialogue progress
	WatchProject bool   // reload the project when its files change on disk
	MaxOptions   int    // number of option hotkeys
}

// OrbConfig contains orb pickup configuration
type OrbConfig struct {
	SensorRadius   float64
	SensorHeight   float64
	LightIntensity float64
	LightRadius    float64
	LightColor     color.RGBA
	ShadowsEnabled bool
}

// LevelConfig contains level layout configuration
type LevelConfig struct {
	File          string  // TMX file inside the level filesystem
	UnitsPerTile  float64 // world units covered by one Tiled tile
	CellSize      int     // resolv cell size in world units
	PixelsPerUnit float64 // scale of the top-down debug view
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowSensors bool
	ProjectDir  string // overrides Dialog.ProjectDir with a directory on disk
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Dialog DialogConfig
var Orb OrbConfig
var Level LevelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Height:         2.0,
		Radius:         0.5,
		MoveSpeed:      0.1,
		InteractRadius: 3.0,
	}

	Camera = CameraConfig{
		Offset:            mgl64.Vec3{0, 4, 8},
		FollowSmoothing:   0.1,
		FocusBlendSeconds: 0.5,
		SecondaryWeight:   0.5,
	}

	Dialog = DialogConfig{
		ProjectDir:   "dialogue",
		SaveKey:      "dialogue",
		WatchProject: false,
		MaxOptions:   4,
	}

	Orb = OrbConfig{
		SensorRadius:   5.0,
		SensorHeight:   2.0,
		LightIntensity: 1000.0,
		LightRadius:    1.0,
		LightColor:     color.RGBA{R: 57, G: 255, B: 20, A: 255},
		ShadowsEnabled: true,
	}

	Level = LevelConfig{
		File:          "levels/meadow.tmx",
		UnitsPerTile:  1.0,
		CellSize:      1,
		PixelsPerUnit: 12.0,
	}
}
