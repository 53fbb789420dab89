package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    ModerationStatus
		to      ModerationStatus
		allowed bool
	}{
		{ModerationPending, ModerationApproved, true},
		{ModerationPending, ModerationRejected, true},
		{ModerationPending, ModerationPending, false},
		{ModerationApproved, ModerationRejected, true},
		{ModerationApproved, ModerationApproved, false},
		{ModerationApproved, ModerationPending, false},
		{ModerationRejected, ModerationApproved, true},
		{ModerationRejected, ModerationRejected, false},
		{ModerationRejected, ModerationPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestParseModerationStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "APPROVED", "REJECTED"} {
		status, err := ParseModerationStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, ModerationStatus(raw), status)
	}

	for _, raw := range []string{"", "pending", "approved", "DELETED", "Approved"} {
		_, err := ParseModerationStatus(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}
