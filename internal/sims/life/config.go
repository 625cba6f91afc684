package life

import (
	"fmt"
	"time"
)

// Config fixes the grid extent and run limits at construction.
type Config struct {
	Width     int
	Height    int
	MaxTicks  int
	TickDelay time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 20, Height: 20, MaxTicks: 10, TickDelay: 500 * time.Millisecond}
}

// Validate reports the first field outside its allowed range.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.MaxTicks <= 0 {
		return fmt.Errorf("max ticks must be positive, got %d", c.MaxTicks)
	}
	if c.TickDelay < 0 {
		return fmt.Errorf("tick delay must be non-negative, got %v", c.TickDelay)
	}
	return nil
}
