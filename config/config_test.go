package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiringWindow(t *testing.T) {
	t.Cleanup(func() { EXPIRING_SOON_DAYS = 0 })

	tests := []struct {
		name string
		days int
		want time.Duration
	}{
		{name: "configured", days: 3, want: 3 * 24 * time.Hour},
		{name: "zero falls back", days: 0, want: 7 * 24 * time.Hour},
		{name: "negative falls back", days: -2, want: 7 * 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			EXPIRING_SOON_DAYS = tt.days
			assert.Equal(t, tt.want, ExpiringWindow())
		})
	}
}
