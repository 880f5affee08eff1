package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "2025-11-25", true},
		{"valid other", "1999-01-01", true},
		{"missing leading zero", "2025-1-05", false},
		{"slashes", "2025/11/25", false},
		{"time appended", "2025-11-25T10:00", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDate(tt.in))
		})
	}
}

func TestIsTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "14:00", true},
		{"valid half hour", "08:30", true},
		{"missing leading zero", "8:30", false},
		{"with seconds", "14:00:00", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTime(tt.in))
		})
	}
}
