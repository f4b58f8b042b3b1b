package types

// Typed events emitted through EventSink at every state transition named
// in spec §6. Field names mirror the originating message so a listener
// can reconstruct the operation without re-reading module state.

type EventCandidateJoined struct {
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
}

type EventCandidateBondedMore struct {
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
	NewTotal  Balance   `json:"new_total"`
}

type EventCandidateBondLessScheduled struct {
	Candidate      AccountId `json:"candidate"`
	AmountToDecrease Balance `json:"amount_to_decrease"`
	ExecuteRound   Round     `json:"execute_round"`
}

type EventCandidateBondLessExecuted struct {
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
	NewTotal  Balance   `json:"new_total"`
}

type EventCandidateBondLessCanceled struct {
	Candidate AccountId `json:"candidate"`
}

type EventCandidateWentOffline struct {
	Candidate AccountId `json:"candidate"`
}

type EventCandidateBackOnline struct {
	Candidate AccountId `json:"candidate"`
}

type EventCandidateLeaveScheduled struct {
	Candidate    AccountId `json:"candidate"`
	ExecuteRound Round     `json:"execute_round"`
}

type EventCandidateLeaveCanceled struct {
	Candidate AccountId `json:"candidate"`
}

type EventCandidateLeft struct {
	Candidate    AccountId `json:"candidate"`
	Amount       Balance   `json:"amount"`
	DelegatorCount int      `json:"delegator_count"`
}

type EventDelegation struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
	InTop     bool      `json:"in_top"`
}

type EventDelegatorBondedMore struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
	NewTotal  Balance   `json:"new_total"`
}

type EventDelegationRevocationScheduled struct {
	Delegator    AccountId `json:"delegator"`
	Candidate    AccountId `json:"candidate"`
	ExecuteRound Round     `json:"execute_round"`
}

type EventDelegationDecreaseScheduled struct {
	Delegator      AccountId `json:"delegator"`
	Candidate      AccountId `json:"candidate"`
	AmountToDecrease Balance `json:"amount_to_decrease"`
	ExecuteRound   Round     `json:"execute_round"`
}

type EventDelegationRequestCanceled struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
}

type EventDelegationRevoked struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
}

type EventDelegationDecreased struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
	NewTotal  Balance   `json:"new_total"`
}

type EventDelegatorLeftScheduled struct {
	Delegator    AccountId `json:"delegator"`
	ExecuteRound Round     `json:"execute_round"`
}

type EventDelegatorLeft struct {
	Delegator      AccountId `json:"delegator"`
	CandidateCount int       `json:"candidate_count"`
}

type EventDelegationKicked struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
}

type EventAutoCompoundSet struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
	Percent   Percent   `json:"percent"`
}

type EventNewRound struct {
	Round          Round  `json:"round"`
	FirstBlock     uint64 `json:"first_block"`
	SelectedCount  int    `json:"selected_count"`
	TotalCounted   Balance `json:"total_counted"`
}

type EventCollatorChosen struct {
	Round     Round     `json:"round"`
	Candidate AccountId `json:"candidate"`
	TotalExposed Balance `json:"total_exposed"`
}

type EventReservedForParachainBond struct {
	Account AccountId `json:"account"`
	Amount  Balance   `json:"amount"`
}

type EventCollatorCommissionSet struct {
	Old Perbill `json:"old"`
	New Perbill `json:"new"`
}

type EventStakingExpectationsSet struct {
	Min   Balance `json:"min"`
	Ideal Balance `json:"ideal"`
	Max   Balance `json:"max"`
}

type EventInflationSet struct {
	Annual InflationRange `json:"annual"`
}

type EventParachainBondAccountSet struct {
	Old AccountId `json:"old"`
	New AccountId `json:"new"`
}

type EventParachainBondReservePercentSet struct {
	Old Percent `json:"old"`
	New Percent `json:"new"`
}

type EventTotalSelectedSet struct {
	Old uint32 `json:"old"`
	New uint32 `json:"new"`
}

type EventBlocksPerRoundSet struct {
	Old uint32 `json:"old"`
	New uint32 `json:"new"`
}

type EventInvulnerablesSet struct {
	Invulnerables []AccountId `json:"invulnerables"`
}

type EventRewarded struct {
	Account AccountId `json:"account"`
	Amount  Balance   `json:"amount"`
}

type EventReservedForParachainBondCompleted struct {
	Round Round `json:"round"`
}
