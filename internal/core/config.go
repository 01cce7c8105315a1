package core

import "time"

// DefaultTickRate is the nominal simulation rate. Field speeds are tuned
// in units per tick at this rate.
const DefaultTickRate = 60

// RuntimeConfig is what a host tells the game about itself.
type RuntimeConfig struct {
	ScreenW  int   // Court width in cells (terminal host only)
	ScreenH  int   // Court height in cells, help bar included
	TickRate int   // Ticks per second
	Seed     int64 // Serve RNG seed; 0 picks one from the clock
}

// WithDefaults returns c with a clock seed in place of a zero seed and
// DefaultTickRate in place of a non-positive rate.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}
