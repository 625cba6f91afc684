package life

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []Config{
		{Width: 0, Height: 1, MaxTicks: 1},
		{Width: 1, Height: 0, MaxTicks: 1},
		{Width: 1, Height: 1, MaxTicks: 0},
		{Width: 1, Height: 1, MaxTicks: 1, TickDelay: -time.Second},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", c)
		}
	}
}
