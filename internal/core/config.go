package core

// RuntimeConfig contains configuration passed to the platform at startup.
// The renderer uses the screen size, the event loop pump uses the tick rate.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second used to pump the event loop (default 60)
	Seed     int64 // RNG seed for reproducible mole placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
