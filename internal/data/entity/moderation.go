package entity

import "fmt"

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "PENDING"
	ModerationApproved ModerationStatus = "APPROVED"
	ModerationRejected ModerationStatus = "REJECTED"
)

func (s ModerationStatus) Valid() bool {
	switch s {
	case ModerationPending, ModerationApproved, ModerationRejected:
		return true
	}
	return false
}

// ParseModerationStatus validates a raw status string.
func ParseModerationStatus(raw string) (ModerationStatus, error) {
	s := ModerationStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown moderation status %q", raw)
	}
	return s, nil
}

// moderationTransitions is the legal transition table. Agent edits are
// not listed here: an owner edit always forces PENDING from any state.
var moderationTransitions = map[ModerationStatus][]ModerationStatus{
	ModerationPending:  {ModerationApproved, ModerationRejected},
	ModerationApproved: {ModerationRejected},
	ModerationRejected: {ModerationApproved},
}

// CanTransition reports whether an admin moderation action may move a
// property from one status to another.
func CanTransition(from, to ModerationStatus) bool {
	for _, next := range moderationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
