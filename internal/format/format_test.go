package format

import (
	"testing"
	"time"
)

// TestFormatExecutionDuration covers the three display ranges.
func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"sub-millisecond boundary", 999 * time.Microsecond, "999µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"sub-second boundary", 999 * time.Millisecond, "999ms"},
		{"seconds", 2 * time.Second, "2s"},
		{"minutes", 90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

// TestFormatCount covers separator placement.
func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{78498, "78,498"},
		{1234567, "1,234,567"},
		{1000000007, "1,000,000,007"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
