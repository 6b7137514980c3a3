package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/teamtrack/teamtrack/internal/utils"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2025-06-24T10:00:00Z",
			want:  time.Date(2025, 6, 24, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339_with_offset",
			input: "2025-06-24T12:00:00+02:00",
			want:  time.Date(2025, 6, 24, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "no_zone",
			input: "2025-06-24T10:00:00",
			want:  time.Date(2025, 6, 24, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "date_only",
			input: "2025-06-24",
			want:  time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "garbage_becomes_zero",
			input: "not-a-date",
			want:  time.Time{},
		},
		{
			name:  "empty_becomes_zero",
			input: "",
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got := utils.ParseTimestamp(tt.input)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}
