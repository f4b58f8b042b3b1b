package types

import sdkerrors "cosmossdk.io/errors"

// Request/response structs for every operation in spec §6. The engine is
// decoupled from any particular transport: these are plain Go values the
// keeper methods accept directly, not generated protobuf sdk.Msg types.
// A host embedding this module over cosmos-sdk's baseapp is responsible
// for its own thin protobuf Msg service translating onto these.

func requireAccount(addr AccountId, field string) error {
	if addr == "" {
		return sdkerrors.Wrapf(ErrInvalidParam, "%s must not be empty", field)
	}
	return nil
}

func requirePositive(amount Balance, field string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return sdkerrors.Wrapf(ErrInvalidParam, "%s must be positive", field)
	}
	return nil
}

// MsgJoinCandidates is join_candidates: become a candidate with a
// self-bond, declaring a hint for the current candidate pool size.
type MsgJoinCandidates struct {
	Candidate       AccountId `json:"candidate"`
	Amount          Balance   `json:"amount"`
	CandidateCountHint uint32 `json:"candidate_count_hint"`
}

func (m MsgJoinCandidates) ValidateBasic() error {
	if err := requireAccount(m.Candidate, "candidate"); err != nil {
		return err
	}
	return requirePositive(m.Amount, "amount")
}

// MsgGoOffline is go_offline.
type MsgGoOffline struct {
	Candidate AccountId `json:"candidate"`
}

func (m MsgGoOffline) ValidateBasic() error { return requireAccount(m.Candidate, "candidate") }

// MsgGoOnline is go_online.
type MsgGoOnline struct {
	Candidate AccountId `json:"candidate"`
}

func (m MsgGoOnline) ValidateBasic() error { return requireAccount(m.Candidate, "candidate") }

// MsgCandidateBondMore is candidate_bond_more.
type MsgCandidateBondMore struct {
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
}

func (m MsgCandidateBondMore) ValidateBasic() error {
	if err := requireAccount(m.Candidate, "candidate"); err != nil {
		return err
	}
	return requirePositive(m.Amount, "amount")
}

// MsgScheduleCandidateBondLess is schedule_candidate_bond_less.
type MsgScheduleCandidateBondLess struct {
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
}

func (m MsgScheduleCandidateBondLess) ValidateBasic() error {
	if err := requireAccount(m.Candidate, "candidate"); err != nil {
		return err
	}
	return requirePositive(m.Amount, "amount")
}

// MsgCancelCandidateBondLess is cancel_candidate_bond_less.
type MsgCancelCandidateBondLess struct {
	Candidate AccountId `json:"candidate"`
}

func (m MsgCancelCandidateBondLess) ValidateBasic() error {
	return requireAccount(m.Candidate, "candidate")
}

// MsgExecuteCandidateBondLess is execute_candidate_bond_less.
type MsgExecuteCandidateBondLess struct {
	Candidate AccountId `json:"candidate"`
}

func (m MsgExecuteCandidateBondLess) ValidateBasic() error {
	return requireAccount(m.Candidate, "candidate")
}

// MsgScheduleLeaveCandidates is schedule_leave_candidates.
type MsgScheduleLeaveCandidates struct {
	Candidate          AccountId `json:"candidate"`
	CandidateCountHint uint32    `json:"candidate_count_hint"`
}

func (m MsgScheduleLeaveCandidates) ValidateBasic() error {
	return requireAccount(m.Candidate, "candidate")
}

// MsgCancelLeaveCandidates is cancel_leave_candidates.
type MsgCancelLeaveCandidates struct {
	Candidate          AccountId `json:"candidate"`
	CandidateCountHint uint32    `json:"candidate_count_hint"`
}

func (m MsgCancelLeaveCandidates) ValidateBasic() error {
	return requireAccount(m.Candidate, "candidate")
}

// MsgExecuteLeaveCandidates is execute_leave_candidates.
type MsgExecuteLeaveCandidates struct {
	Candidate         AccountId `json:"candidate"`
	DelegationCountHint uint32  `json:"delegation_count_hint"`
}

func (m MsgExecuteLeaveCandidates) ValidateBasic() error {
	return requireAccount(m.Candidate, "candidate")
}

// MsgDelegate is delegate.
type MsgDelegate struct {
	Delegator                AccountId `json:"delegator"`
	Candidate                AccountId `json:"candidate"`
	Amount                    Balance   `json:"amount"`
	CandidateDelegationCountHint uint32 `json:"candidate_delegation_count_hint"`
	DelegatorDelegationCountHint uint32 `json:"delegator_delegation_count_hint"`
}

func (m MsgDelegate) ValidateBasic() error {
	if err := requireAccount(m.Delegator, "delegator"); err != nil {
		return err
	}
	if err := requireAccount(m.Candidate, "candidate"); err != nil {
		return err
	}
	return requirePositive(m.Amount, "amount")
}

// MsgDelegateWithAutoCompound is delegate_with_auto_compound.
type MsgDelegateWithAutoCompound struct {
	Delegator                    AccountId `json:"delegator"`
	Candidate                    AccountId `json:"candidate"`
	Amount                       Balance   `json:"amount"`
	AutoCompoundPercent          Percent   `json:"auto_compound_percent"`
	CandidateDelegationCountHint uint32    `json:"candidate_delegation_count_hint"`
	DelegatorDelegationCountHint uint32    `json:"delegator_delegation_count_hint"`
}

func (m MsgDelegateWithAutoCompound) ValidateBasic() error {
	if err := requireAccount(m.Delegator, "delegator"); err != nil {
		return err
	}
	if err := requireAccount(m.Candidate, "candidate"); err != nil {
		return err
	}
	if !ValidPercent(m.AutoCompoundPercent) {
		return sdkerrors.Wrapf(ErrInvalidParam, "auto_compound_percent must be in [0,100]")
	}
	return requirePositive(m.Amount, "amount")
}

// MsgDelegatorBondMore is delegator_bond_more.
type MsgDelegatorBondMore struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
}

func (m MsgDelegatorBondMore) ValidateBasic() error {
	if err := requireAccount(m.Delegator, "delegator"); err != nil {
		return err
	}
	if err := requireAccount(m.Candidate, "candidate"); err != nil {
		return err
	}
	return requirePositive(m.Amount, "amount")
}

// MsgScheduleRevokeDelegation is schedule_revoke_delegation.
type MsgScheduleRevokeDelegation struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
}

func (m MsgScheduleRevokeDelegation) ValidateBasic() error {
	if err := requireAccount(m.Delegator, "delegator"); err != nil {
		return err
	}
	return requireAccount(m.Candidate, "candidate")
}

// MsgScheduleDelegatorBondLess is schedule_delegator_bond_less.
type MsgScheduleDelegatorBondLess struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
	Amount    Balance   `json:"amount"`
}

func (m MsgScheduleDelegatorBondLess) ValidateBasic() error {
	if err := requireAccount(m.Delegator, "delegator"); err != nil {
		return err
	}
	if err := requireAccount(m.Candidate, "candidate"); err != nil {
		return err
	}
	return requirePositive(m.Amount, "amount")
}

// MsgCancelDelegationRequest is cancel_delegation_request.
type MsgCancelDelegationRequest struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
}

func (m MsgCancelDelegationRequest) ValidateBasic() error {
	if err := requireAccount(m.Delegator, "delegator"); err != nil {
		return err
	}
	return requireAccount(m.Candidate, "candidate")
}

// MsgExecuteDelegationRequest is execute_delegation_request.
type MsgExecuteDelegationRequest struct {
	Delegator AccountId `json:"delegator"`
	Candidate AccountId `json:"candidate"`
}

func (m MsgExecuteDelegationRequest) ValidateBasic() error {
	if err := requireAccount(m.Delegator, "delegator"); err != nil {
		return err
	}
	return requireAccount(m.Candidate, "candidate")
}

// MsgSetAutoCompound is set_auto_compound.
type MsgSetAutoCompound struct {
	Delegator                    AccountId `json:"delegator"`
	Candidate                    AccountId `json:"candidate"`
	Percent                      Percent   `json:"percent"`
	CandidateAutoCompoundingDelegationCountHint uint32 `json:"candidate_auto_compounding_delegation_count_hint"`
	DelegatorDelegationCountHint uint32 `json:"delegator_delegation_count_hint"`
}

func (m MsgSetAutoCompound) ValidateBasic() error {
	if err := requireAccount(m.Delegator, "delegator"); err != nil {
		return err
	}
	if err := requireAccount(m.Candidate, "candidate"); err != nil {
		return err
	}
	if !ValidPercent(m.Percent) {
		return sdkerrors.Wrapf(ErrInvalidParam, "percent must be in [0,100]")
	}
	return nil
}

// MsgScheduleLeaveDelegators is schedule_leave_delegators.
type MsgScheduleLeaveDelegators struct {
	Delegator AccountId `json:"delegator"`
}

func (m MsgScheduleLeaveDelegators) ValidateBasic() error {
	return requireAccount(m.Delegator, "delegator")
}

// MsgExecuteLeaveDelegators is execute_leave_delegators.
type MsgExecuteLeaveDelegators struct {
	Delegator           AccountId `json:"delegator"`
	DelegationCountHint uint32    `json:"delegation_count_hint"`
}

func (m MsgExecuteLeaveDelegators) ValidateBasic() error {
	return requireAccount(m.Delegator, "delegator")
}

// Governance messages (spec §4.8), each gated on Keeper.authority.

type MsgSetStakingExpectations struct {
	Authority AccountId `json:"authority"`
	Min       Balance   `json:"min"`
	Ideal     Balance   `json:"ideal"`
	Max       Balance   `json:"max"`
}

func (m MsgSetStakingExpectations) ValidateBasic() error {
	if err := requireAccount(m.Authority, "authority"); err != nil {
		return err
	}
	if m.Min.IsNil() || m.Ideal.IsNil() || m.Max.IsNil() {
		return sdkerrors.Wrapf(ErrInvalidParam, "min, ideal, max must be set")
	}
	if !(m.Min.LTE(m.Ideal) && m.Ideal.LTE(m.Max)) {
		return sdkerrors.Wrapf(ErrInvalidParam, "must hold min <= ideal <= max")
	}
	return nil
}

type MsgSetInflation struct {
	Authority AccountId      `json:"authority"`
	Annual    InflationRange `json:"annual"`
}

func (m MsgSetInflation) ValidateBasic() error {
	if err := requireAccount(m.Authority, "authority"); err != nil {
		return err
	}
	if !(m.Annual.Min.Parts.LTE(m.Annual.Ideal.Parts) && m.Annual.Ideal.Parts.LTE(m.Annual.Max.Parts)) {
		return sdkerrors.Wrapf(ErrInvalidParam, "must hold min <= ideal <= max")
	}
	return nil
}

type MsgSetParachainBondAccount struct {
	Authority AccountId `json:"authority"`
	Account   AccountId `json:"account"`
}

func (m MsgSetParachainBondAccount) ValidateBasic() error {
	if err := requireAccount(m.Authority, "authority"); err != nil {
		return err
	}
	return requireAccount(m.Account, "account")
}

type MsgSetParachainBondReservePercent struct {
	Authority AccountId `json:"authority"`
	Percent   Percent   `json:"percent"`
}

func (m MsgSetParachainBondReservePercent) ValidateBasic() error {
	if err := requireAccount(m.Authority, "authority"); err != nil {
		return err
	}
	if !ValidPercent(m.Percent) {
		return sdkerrors.Wrapf(ErrInvalidParam, "percent must be in [0,100]")
	}
	return nil
}

type MsgSetTotalSelected struct {
	Authority     AccountId `json:"authority"`
	TotalSelected uint32    `json:"total_selected"`
}

func (m MsgSetTotalSelected) ValidateBasic() error {
	return requireAccount(m.Authority, "authority")
}

type MsgSetCollatorCommission struct {
	Authority  AccountId `json:"authority"`
	Commission Perbill   `json:"commission"`
}

func (m MsgSetCollatorCommission) ValidateBasic() error {
	return requireAccount(m.Authority, "authority")
}

type MsgSetBlocksPerRound struct {
	Authority      AccountId `json:"authority"`
	BlocksPerRound uint32    `json:"blocks_per_round"`
}

func (m MsgSetBlocksPerRound) ValidateBasic() error {
	return requireAccount(m.Authority, "authority")
}

type MsgSetInvulnerables struct {
	Authority     AccountId   `json:"authority"`
	Invulnerables []AccountId `json:"invulnerables"`
}

func (m MsgSetInvulnerables) ValidateBasic() error {
	return requireAccount(m.Authority, "authority")
}
