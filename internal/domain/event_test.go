package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinner(t *testing.T) {
	const (
		homeID = 10
		awayID = 20
	)

	tests := []struct {
		name      string
		status    string
		homeScore int
		awayScore int
		want      *int
	}{
		{
			name:      "completed home win",
			status:    StatusCompleted,
			homeScore: 3,
			awayScore: 1,
			want:      intPtr(homeID),
		},
		{
			name:      "completed away win",
			status:    StatusCompleted,
			homeScore: 0,
			awayScore: 2,
			want:      intPtr(awayID),
		},
		{
			name:      "completed tie has no winner",
			status:    StatusCompleted,
			homeScore: 2,
			awayScore: 2,
			want:      nil,
		},
		{
			name:      "scheduled has no winner",
			status:    "Scheduled",
			homeScore: 0,
			awayScore: 0,
			want:      nil,
		},
		{
			name:      "live has no winner even with a lead",
			status:    "Live",
			homeScore: 1,
			awayScore: 0,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Winner(tt.status, tt.homeScore, tt.awayScore, homeID, awayID)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func intPtr(v int) *int { return &v }
