package config

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Simulation parameters
	ParticleCount   = 60
	BallRadius      = 12.0
	SpeedMultiplier = 4.0

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 20

	// Bounce blip parameters
	SampleRate   = 44100
	BlipFreq     = 880
	BlipDuration = 30 // milliseconds
)
