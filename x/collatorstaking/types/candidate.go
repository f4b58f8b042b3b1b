package types

import "cosmossdk.io/math"

// CandidateStatus is the candidate lifecycle state machine described in
// spec §4.2: a candidate starts Active, can go Idle (voluntarily offline,
// still selectable is false but bond stays locked), and schedules Leaving
// before it can withdraw its bond.
type CandidateStatus int32

const (
	CandidateStatusActive CandidateStatus = iota
	CandidateStatusIdle
	CandidateStatusLeaving
)

func (s CandidateStatus) String() string {
	switch s {
	case CandidateStatusActive:
		return "active"
	case CandidateStatusIdle:
		return "idle"
	case CandidateStatusLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// CandidateMetadata is the durable record of one candidate: its own bond,
// the delegations backing it, and its lifecycle status. Lazily-computed
// totals are derived, not stored.
//
// ExitRound and RequestRound are deliberately separate fields: a candidate
// can have a pending bond-less request (RequestRound) scheduled and then
// separately schedule to leave (ExitRound) without either overwriting the
// other's executable round.
type CandidateMetadata struct {
	Bond         Balance          `json:"bond"`
	Delegations  DelegationBucket `json:"delegations"`
	Status       CandidateStatus  `json:"status"`
	ExitRound    Round            `json:"exit_round"`
	RequestRound Round            `json:"request_round"`
	LessTotal    Balance          `json:"less_total"`
}

// NewCandidateMetadata seeds a brand-new, Active candidate with no
// delegations.
func NewCandidateMetadata(bond Balance) CandidateMetadata {
	return CandidateMetadata{
		Bond:        bond,
		Delegations: NewDelegationBucket(),
		Status:      CandidateStatusActive,
		LessTotal:   math.ZeroInt(),
	}
}

// TotalCounted is the stake that counts toward selection weight: the
// candidate's own bond plus its top delegation bucket only.
func (c CandidateMetadata) TotalCounted() Balance {
	return c.Bond.Add(c.Delegations.CountingStaked())
}

// TotalBacking is every coin backing this candidate, top and bottom alike.
func (c CandidateMetadata) TotalBacking() Balance {
	return c.Bond.Add(c.Delegations.TotalStaked())
}

// IsActive reports whether the candidate can currently be selected.
func (c CandidateMetadata) IsActive() bool {
	return c.Status == CandidateStatusActive
}

// IsLeaving reports whether the candidate has scheduled an exit.
func (c CandidateMetadata) IsLeaving() bool {
	return c.Status == CandidateStatusLeaving
}
