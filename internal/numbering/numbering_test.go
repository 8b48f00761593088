package numbering

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerator_Next(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		random int
		want   string
	}{
		{
			name:   "pads the random part",
			now:    time.Date(2024, time.October, 14, 9, 0, 0, 0, time.UTC),
			random: 42,
			want:   "INV-2410-042",
		},
		{
			name:   "single digit month and year",
			now:    time.Date(2009, time.March, 1, 0, 0, 0, 0, time.UTC),
			random: 999,
			want:   "INV-0903-999",
		},
		{
			name:   "zero",
			now:    time.Date(2030, time.December, 31, 23, 59, 0, 0, time.UTC),
			random: 0,
			want:   "INV-3012-000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(
				WithClock(func() time.Time { return tt.now }),
				WithRandom(func(n int) int {
					if n != 1000 {
						t.Errorf("random called with n = %d, want 1000", n)
					}
					return tt.random
				}),
			)
			if got := g.Next(); got != tt.want {
				t.Errorf("Next() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerator_DefaultFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-\d{4}-\d{3}$`)
	g := NewGenerator()
	for i := 0; i < 100; i++ {
		if got := g.Next(); !pattern.MatchString(got) {
			t.Fatalf("Next() = %q, does not match %s", got, pattern)
		}
	}
}
