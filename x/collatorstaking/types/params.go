package types

import (
	sdkerrors "cosmossdk.io/errors"
	"github.com/samber/lo"
)

// Compile-time bounds on governance knobs. The original pallet hard-codes
// these as pallet Config constants; here they are plain package constants
// since this engine has no separate build-time configuration trait.
const (
	MinBlocksPerRound      = uint32(2)
	MinSelectedCandidates  = uint32(1)
	MaxTopDelegationsPerCandidate    = 300
	MaxBottomDelegationsPerCandidate = 50
	MaxDelegationsPerDelegator       = 100
	MaxInvulnerables                 = 100
)

// Params bundles every governance-settable knob from spec §4.8 into one
// value so it can live behind a single collections.Item, matching how the
// teacher module stores its own Params.
type Params struct {
	MinCandidateStake   Balance   `json:"min_candidate_stake"`
	MinDelegatorStake   Balance   `json:"min_delegator_stake"`
	MinDelegation       Balance   `json:"min_delegation"`
	CandidateBondLessDelay uint32 `json:"candidate_bond_less_delay"`
	DelegationBondLessDelay uint32 `json:"delegation_bond_less_delay"`
	LeaveCandidatesDelay   uint32 `json:"leave_candidates_delay"`
	LeaveDelegatorsDelay   uint32 `json:"leave_delegators_delay"`
	RevokeDelegationDelay  uint32 `json:"revoke_delegation_delay"`
	// RewardPaymentDelay is how many rounds after a round ends its payout
	// is prepared: round r's payout is prepared once round.current reaches
	// r + RewardPaymentDelay, giving snapshotted exposure time to settle
	// before issuance is computed against it. With zero, the round to pay is
	// the one just starting, which has no points yet, so no payout is
	// prepared.
	RewardPaymentDelay uint32 `json:"reward_payment_delay"`
}

// DefaultParams returns sane, non-production defaults used by genesis and
// by tests that don't care about exact numbers.
func DefaultParams() Params {
	one := NewBalance(1)
	return Params{
		MinCandidateStake:       one,
		MinDelegatorStake:       one,
		MinDelegation:           one,
		CandidateBondLessDelay:  2,
		DelegationBondLessDelay: 2,
		LeaveCandidatesDelay:    2,
		LeaveDelegatorsDelay:    2,
		RevokeDelegationDelay:   2,
		RewardPaymentDelay:      2,
	}
}

// ValidateBasic checks internal consistency of Params independent of any
// live chain state.
func (p Params) ValidateBasic() error {
	if p.MinCandidateStake.IsNil() || p.MinCandidateStake.IsNegative() {
		return sdkerrors.Wrapf(ErrInvalidParam, "min_candidate_stake must be non-negative")
	}
	if p.MinDelegatorStake.IsNil() || p.MinDelegatorStake.IsNegative() {
		return sdkerrors.Wrapf(ErrInvalidParam, "min_delegator_stake must be non-negative")
	}
	if p.MinDelegation.IsNil() || p.MinDelegation.IsNegative() {
		return sdkerrors.Wrapf(ErrInvalidParam, "min_delegation must be non-negative")
	}
	if p.CandidateBondLessDelay == 0 {
		return sdkerrors.Wrapf(ErrInvalidParam, "candidate_bond_less_delay must be at least 1 round")
	}
	if p.DelegationBondLessDelay == 0 {
		return sdkerrors.Wrapf(ErrInvalidParam, "delegation_bond_less_delay must be at least 1 round")
	}
	if p.LeaveCandidatesDelay == 0 {
		return sdkerrors.Wrapf(ErrInvalidParam, "leave_candidates_delay must be at least 1 round")
	}
	if p.LeaveDelegatorsDelay == 0 {
		return sdkerrors.Wrapf(ErrInvalidParam, "leave_delegators_delay must be at least 1 round")
	}
	if p.RevokeDelegationDelay == 0 {
		return sdkerrors.Wrapf(ErrInvalidParam, "revoke_delegation_delay must be at least 1 round")
	}
	return nil
}

// ValidateBlocksPerRound enforces the MinBlocksPerRound bound from an
// incoming SetBlocksPerRound governance message.
func ValidateBlocksPerRound(blocksPerRound uint32) error {
	if blocksPerRound < MinBlocksPerRound {
		return sdkerrors.Wrapf(ErrTooFewBlocksPerRound, "got %d, min %d", blocksPerRound, MinBlocksPerRound)
	}
	return nil
}

// ValidateTotalSelected enforces the MinSelectedCandidates bound and the
// "round length must be at least total selected collators" relationship
// from an incoming SetTotalSelected governance message.
func ValidateTotalSelected(totalSelected, blocksPerRound uint32) error {
	if totalSelected < MinSelectedCandidates {
		return sdkerrors.Wrapf(ErrTooFewSelectedCandidates, "got %d, min %d", totalSelected, MinSelectedCandidates)
	}
	if blocksPerRound < totalSelected {
		return sdkerrors.Wrapf(ErrRoundLengthMustBeAtLeastTotalSelectedCollators, "blocks_per_round %d < total_selected %d", blocksPerRound, totalSelected)
	}
	return nil
}

// ValidateInvulnerables enforces the MaxInvulnerables bound from an
// incoming SetInvulnerables governance message.
func ValidateInvulnerables(invulnerables []AccountId) error {
	if len(invulnerables) > MaxInvulnerables {
		return sdkerrors.Wrapf(ErrTooManyInvulnerables, "got %d, max %d", len(invulnerables), MaxInvulnerables)
	}
	if len(lo.Uniq(invulnerables)) != len(invulnerables) {
		return sdkerrors.Wrapf(ErrInvalidParam, "duplicate invulnerable in %v", invulnerables)
	}
	return nil
}
