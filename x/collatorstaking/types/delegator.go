package types

import "cosmossdk.io/math"

// DelegatorState is the durable record of one delegator: the set of
// candidates it backs, kept as an OrderedSet of Bonds so total stake and
// per-candidate amounts are always cheap to recompute, plus LessTotal, the
// amount currently scheduled to leave through pending requests.
type DelegatorState struct {
	Delegations       OrderedSet      `json:"delegations"`
	LessTotal         Balance         `json:"less_total"`
	Status            DelegatorStatus `json:"status"`
	LeaveExecuteRound Round           `json:"leave_execute_round"`
}

// DelegatorStatus mirrors the candidate lifecycle: a delegator is normally
// Active, and moves to Leaving once it schedules a full exit via
// schedule_leave_delegators.
type DelegatorStatus int32

const (
	DelegatorStatusActive DelegatorStatus = iota
	DelegatorStatusLeaving
)

// NewDelegatorState seeds a fresh, Active delegator with no delegations.
func NewDelegatorState() DelegatorState {
	return DelegatorState{Delegations: NewOrderedSet()}
}

// Total is the delegator's total staked amount, across every candidate it
// delegates to, before subtracting any amount already scheduled to leave.
func (d DelegatorState) Total() Balance {
	return d.Delegations.Total()
}

// EffectiveTotal is Total minus LessTotal: the lock amount after accounting
// for scheduled decreases/revokes not yet executed, reconciled onto the
// COLLATOR_LOCK/DELEGATOR_LOCK on every delegator-mutating operation.
func (d DelegatorState) EffectiveTotal() Balance {
	total := d.Total()
	if d.LessTotal.IsNil() {
		return total
	}
	eff := total.Sub(d.LessTotal)
	if eff.IsNegative() {
		return math.ZeroInt()
	}
	return eff
}

// DelegationCount is the number of distinct candidates this delegator
// backs, used to validate the delegator's delegation_count hint and, when
// delegating, the MaxDelegationsPerDelegator limit.
func (d DelegatorState) DelegationCount() int {
	return d.Delegations.Len()
}
