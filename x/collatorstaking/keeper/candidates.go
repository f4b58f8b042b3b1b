package keeper

import (
	"context"

	"cosmossdk.io/math"

	sdkerrors "cosmossdk.io/errors"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// candidateCount returns the current size of the candidate pool, used to
// validate every candidate_count_hint against real cardinality.
func (k Keeper) candidateCount(ctx context.Context) (uint32, error) {
	var count uint32
	err := k.CandidatePool.Walk(ctx, nil, func(types.AccountId, types.CandidateMetadata) (bool, error) {
		count++
		return false, nil
	})
	return count, err
}

func (k Keeper) checkCandidateCountHint(ctx context.Context, hint uint32) error {
	real, err := k.candidateCount(ctx)
	if err != nil {
		return err
	}
	if hint < real {
		return sdkerrors.Wrapf(types.ErrTooLowCandidateCountWeightHint, "hint %d, real %d", hint, real)
	}
	return nil
}

// JoinCandidates implements join_candidates: a fresh account self-bonds
// and becomes an Active candidate.
func (k Keeper) JoinCandidates(ctx context.Context, msg types.MsgJoinCandidates) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.checkCandidateCountHint(ctx, msg.CandidateCountHint); err != nil {
		return err
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	if msg.Amount.LT(params.MinCandidateStake) {
		return sdkerrors.Wrapf(types.ErrCandidateBondBelowMin, "got %s, min %s", msg.Amount, params.MinCandidateStake)
	}

	if ok, err := k.CandidatePool.Has(ctx, msg.Candidate); err != nil {
		return err
	} else if ok {
		return sdkerrors.Wrapf(types.ErrCandidateExists, "%s", msg.Candidate)
	}

	spendable, err := k.CollatorStakableBalance(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if spendable.LT(msg.Amount) {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "candidate %s", msg.Candidate)
	}

	candidate := types.NewCandidateMetadata(msg.Amount)
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	if err := k.ledger.SetLock(ctx, msg.Candidate, msg.Amount); err != nil {
		return err
	}

	k.emit(ctx, &types.EventCandidateJoined{Candidate: msg.Candidate, Amount: msg.Amount})
	return nil
}

// GoOffline implements go_offline: an Active candidate becomes Idle,
// dropping out of selection while keeping its bond and delegations intact.
func (k Keeper) GoOffline(ctx context.Context, msg types.MsgGoOffline) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if candidate.Status == types.CandidateStatusIdle {
		return sdkerrors.Wrapf(types.ErrAlreadyOffline, "%s", msg.Candidate)
	}
	if candidate.IsLeaving() {
		return sdkerrors.Wrapf(types.ErrCandidateNotLeaving, "cannot go offline while leaving")
	}
	candidate.Status = types.CandidateStatusIdle
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCandidateWentOffline{Candidate: msg.Candidate})
	return nil
}

// GoOnline implements go_online: an Idle candidate becomes Active again.
func (k Keeper) GoOnline(ctx context.Context, msg types.MsgGoOnline) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if candidate.IsLeaving() {
		return sdkerrors.Wrapf(types.ErrCannotGoOnlineIfLeaving, "%s", msg.Candidate)
	}
	if candidate.Status == types.CandidateStatusActive {
		return sdkerrors.Wrapf(types.ErrAlreadyActive, "%s", msg.Candidate)
	}
	candidate.Status = types.CandidateStatusActive
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCandidateBackOnline{Candidate: msg.Candidate})
	return nil
}

// CandidateBondMore implements candidate_bond_more: immediate top-up of a
// candidate's own bond.
func (k Keeper) CandidateBondMore(ctx context.Context, msg types.MsgCandidateBondMore) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if candidate.IsLeaving() {
		return sdkerrors.Wrapf(types.ErrCandidateNotLeaving, "cannot bond more while leaving")
	}

	spendable, err := k.CollatorStakableBalance(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if spendable.LT(msg.Amount) {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "candidate %s", msg.Candidate)
	}

	candidate.Bond = candidate.Bond.Add(msg.Amount)
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	if err := k.ledger.SetLock(ctx, msg.Candidate, candidate.Bond); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCandidateBondedMore{Candidate: msg.Candidate, Amount: msg.Amount, NewTotal: candidate.Bond})
	return nil
}

// ScheduleCandidateBondLess implements schedule_candidate_bond_less:
// queues a decrease of the candidate's own bond, executable after
// CandidateBondLessDelay rounds.
func (k Keeper) ScheduleCandidateBondLess(ctx context.Context, msg types.MsgScheduleCandidateBondLess) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if candidate.IsLeaving() {
		return sdkerrors.Wrapf(types.ErrCandidateNotLeaving, "cannot bond less while leaving")
	}
	remaining := candidate.Bond.Sub(msg.Amount)
	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	if remaining.LT(params.MinCandidateStake) {
		return sdkerrors.Wrapf(types.ErrCandidateBondBelowMin, "remaining %s below min %s", remaining, params.MinCandidateStake)
	}

	round, err := k.currentRound(ctx)
	if err != nil {
		return err
	}
	executeRound := round + params.CandidateBondLessDelay

	candidate.LessTotal = msg.Amount
	candidate.RequestRound = executeRound
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCandidateBondLessScheduled{Candidate: msg.Candidate, AmountToDecrease: msg.Amount, ExecuteRound: executeRound})
	return nil
}

// CancelCandidateBondLess implements cancel_candidate_bond_less.
func (k Keeper) CancelCandidateBondLess(ctx context.Context, msg types.MsgCancelCandidateBondLess) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if candidate.LessTotal.IsNil() || candidate.LessTotal.IsZero() {
		return sdkerrors.Wrapf(types.ErrPendingRequestDNE, "no pending bond-less request for %s", msg.Candidate)
	}
	candidate.LessTotal = math.ZeroInt()
	candidate.RequestRound = 0
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCandidateBondLessCanceled{Candidate: msg.Candidate})
	return nil
}

// ExecuteCandidateBondLess implements execute_candidate_bond_less.
func (k Keeper) ExecuteCandidateBondLess(ctx context.Context, msg types.MsgExecuteCandidateBondLess) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if candidate.LessTotal.IsNil() || candidate.LessTotal.IsZero() {
		return sdkerrors.Wrapf(types.ErrPendingRequestDNE, "no pending bond-less request for %s", msg.Candidate)
	}
	round, err := k.currentRound(ctx)
	if err != nil {
		return err
	}
	if round < candidate.RequestRound {
		return sdkerrors.Wrapf(types.ErrInvalidSchedule, "not yet executable: round %d < %d", round, candidate.RequestRound)
	}

	amount := candidate.LessTotal
	candidate.Bond = candidate.Bond.Sub(amount)
	candidate.LessTotal = math.ZeroInt()
	candidate.RequestRound = 0
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	if err := k.ledger.SetLock(ctx, msg.Candidate, candidate.Bond); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCandidateBondLessExecuted{Candidate: msg.Candidate, Amount: amount, NewTotal: candidate.Bond})
	return nil
}

// ScheduleLeaveCandidates implements schedule_leave_candidates.
func (k Keeper) ScheduleLeaveCandidates(ctx context.Context, msg types.MsgScheduleLeaveCandidates) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.checkCandidateCountHint(ctx, msg.CandidateCountHint); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if candidate.IsLeaving() {
		return sdkerrors.Wrapf(types.ErrCandidateNotLeaving, "already leaving")
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	round, err := k.currentRound(ctx)
	if err != nil {
		return err
	}
	executeRound := round + params.LeaveCandidatesDelay

	candidate.Status = types.CandidateStatusLeaving
	candidate.ExitRound = executeRound
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCandidateLeaveScheduled{Candidate: msg.Candidate, ExecuteRound: executeRound})
	return nil
}

// CancelLeaveCandidates implements cancel_leave_candidates.
func (k Keeper) CancelLeaveCandidates(ctx context.Context, msg types.MsgCancelLeaveCandidates) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.checkCandidateCountHint(ctx, msg.CandidateCountHint); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if !candidate.IsLeaving() {
		return sdkerrors.Wrapf(types.ErrCandidateNotLeaving, "%s is not leaving", msg.Candidate)
	}
	candidate.Status = types.CandidateStatusActive
	candidate.ExitRound = 0
	if err := k.CandidatePool.Set(ctx, msg.Candidate, candidate); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCandidateLeaveCanceled{Candidate: msg.Candidate})
	return nil
}

// ExecuteLeaveCandidates implements execute_leave_candidates: unlocks the
// candidate's bond and every backing delegation, and removes the
// candidate from the pool.
func (k Keeper) ExecuteLeaveCandidates(ctx context.Context, msg types.MsgExecuteLeaveCandidates) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	candidate, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	if !candidate.IsLeaving() {
		return sdkerrors.Wrapf(types.ErrCandidateNotLeaving, "%s is not leaving", msg.Candidate)
	}
	round, err := k.currentRound(ctx)
	if err != nil {
		return err
	}
	if round < candidate.ExitRound {
		return sdkerrors.Wrapf(types.ErrCandidateCannotLeaveYet, "round %d < %d", round, candidate.ExitRound)
	}

	delegations := append(append([]types.Bond{}, candidate.Delegations.Top.Bonds...), candidate.Delegations.Bottom.Bonds...)
	if uint32(len(delegations)) > msg.DelegationCountHint {
		return sdkerrors.Wrapf(types.ErrTooLowDelegationCountHint, "hint %d, real %d", msg.DelegationCountHint, len(delegations))
	}

	for _, d := range delegations {
		if err := k.removeDelegationFromDelegator(ctx, d.Owner, msg.Candidate); err != nil {
			return err
		}
	}

	if err := k.CandidatePool.Remove(ctx, msg.Candidate); err != nil {
		return err
	}
	if err := k.ledger.SetLock(ctx, msg.Candidate, types.NewBalance(0)); err != nil {
		return err
	}

	k.emit(ctx, &types.EventCandidateLeft{Candidate: msg.Candidate, Amount: candidate.TotalBacking(), DelegatorCount: len(delegations)})
	return nil
}

func (k Keeper) mustGetCandidate(ctx context.Context, candidate types.AccountId) (types.CandidateMetadata, error) {
	c, err := k.CandidatePool.Get(ctx, candidate)
	if err != nil {
		return types.CandidateMetadata{}, sdkerrors.Wrapf(types.ErrCandidateDNE, "%s", candidate)
	}
	return c, nil
}
