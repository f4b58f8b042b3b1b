package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// pairKey builds the (delegator, candidate) composite key shared by
// ScheduledRequest and AutoCompound.
func pairKey(delegator, candidate types.AccountId) collections.Pair[types.AccountId, types.AccountId] {
	return collections.Join(delegator, candidate)
}

func (k Keeper) mustGetDelegator(ctx context.Context, delegator types.AccountId) (types.DelegatorState, error) {
	d, err := k.DelegatorState.Get(ctx, delegator)
	if err != nil {
		return types.DelegatorState{}, sdkerrors.Wrapf(types.ErrDelegatorDNE, "%s", delegator)
	}
	return d, nil
}

// reconcileDelegatorLock resolves the open question of stale locks: on
// every delegator-mutating operation the lock is SET to the delegator's
// current EffectiveTotal, never incremented, so a lock left over from a
// removed delegation can never linger.
func (k Keeper) reconcileDelegatorLock(ctx context.Context, delegator types.AccountId, state types.DelegatorState) error {
	return k.ledger.SetLock(ctx, delegator, state.EffectiveTotal())
}

func (k Keeper) checkDelegationCountHint(ctx context.Context, candidate types.AccountId, hint uint32) error {
	c, err := k.mustGetCandidate(ctx, candidate)
	if err != nil {
		return err
	}
	real := uint32(c.Delegations.Top.Len() + c.Delegations.Bottom.Len())
	if hint < real {
		return sdkerrors.Wrapf(types.ErrTooLowDelegationCountHint, "hint %d, real %d", hint, real)
	}
	return nil
}

func (k Keeper) checkDelegatorDelegationCountHint(ctx context.Context, delegator types.AccountId, hint uint32) error {
	state, err := k.DelegatorState.Get(ctx, delegator)
	if err != nil {
		return nil // no delegator yet: any hint is sufficient
	}
	real := uint32(state.DelegationCount())
	if hint < real {
		return sdkerrors.Wrapf(types.ErrTooLowDelegatorDelegationCountHint, "hint %d, real %d", hint, real)
	}
	return nil
}

// delegate is the shared implementation behind delegate and
// delegate_with_auto_compound.
func (k Keeper) delegate(
	ctx context.Context,
	delegator, candidate types.AccountId,
	amount types.Balance,
	autoCompound types.Percent,
	candidateHint, delegatorHint uint32,
) error {
	if err := k.checkDelegationCountHint(ctx, candidate, candidateHint); err != nil {
		return err
	}
	if err := k.checkDelegatorDelegationCountHint(ctx, delegator, delegatorHint); err != nil {
		return err
	}

	cand, err := k.mustGetCandidate(ctx, candidate)
	if err != nil {
		return err
	}
	if cand.IsLeaving() {
		return sdkerrors.Wrapf(types.ErrCannotDelegateIfLeaving, "%s", candidate)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	if amount.LT(params.MinDelegation) {
		return sdkerrors.Wrapf(types.ErrDelegationBelowMin, "got %s, min %s", amount, params.MinDelegation)
	}

	state, err := k.DelegatorState.Get(ctx, delegator)
	if err != nil {
		state = types.NewDelegatorState()
	}
	if _, exists := state.Delegations.Get(candidate); exists {
		return sdkerrors.Wrapf(types.ErrAlreadyDelegatedCandidate, "%s -> %s", delegator, candidate)
	}
	if state.DelegationCount() >= types.MaxDelegationsPerDelegator {
		return sdkerrors.Wrapf(types.ErrExceedMaxDelegationsPerDelegator, "max %d", types.MaxDelegationsPerDelegator)
	}

	spendable, err := k.DelegatorStakableBalance(ctx, delegator)
	if err != nil {
		return err
	}
	if spendable.LT(amount) {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "delegator %s", delegator)
	}

	bucket, placedInTop, bottomFull, kicked, wasKicked := cand.Delegations.Add(
		types.Bond{Owner: delegator, Amount: amount},
		types.MaxTopDelegationsPerCandidate, types.MaxBottomDelegationsPerCandidate,
	)
	if bottomFull {
		return sdkerrors.Wrapf(types.ErrCannotDelegateLessThanOrEqualToLowestBottomWhenFull, "%s", candidate)
	}
	cand.Delegations = bucket
	if err := k.CandidatePool.Set(ctx, candidate, cand); err != nil {
		return err
	}
	if err := k.handleKickedDelegation(ctx, candidate, kicked, wasKicked); err != nil {
		return err
	}

	newDelegations, _ := state.Delegations.Insert(types.Bond{Owner: candidate, Amount: amount})
	state.Delegations = newDelegations
	if err := k.DelegatorState.Set(ctx, delegator, state); err != nil {
		return err
	}
	if err := k.reconcileDelegatorLock(ctx, delegator, state); err != nil {
		return err
	}

	if autoCompound > 0 {
		key := pairKey(delegator, candidate)
		if err := k.AutoCompound.Set(ctx, key, autoCompound); err != nil {
			return err
		}
		k.emit(ctx, &types.EventAutoCompoundSet{Delegator: delegator, Candidate: candidate, Percent: autoCompound})
	}

	k.emit(ctx, &types.EventDelegation{Delegator: delegator, Candidate: candidate, Amount: amount, InTop: placedInTop})
	return nil
}

// Delegate implements delegate.
func (k Keeper) Delegate(ctx context.Context, msg types.MsgDelegate) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.delegate(ctx, msg.Delegator, msg.Candidate, msg.Amount, 0, msg.CandidateDelegationCountHint, msg.DelegatorDelegationCountHint)
}

// DelegateWithAutoCompound implements delegate_with_auto_compound.
func (k Keeper) DelegateWithAutoCompound(ctx context.Context, msg types.MsgDelegateWithAutoCompound) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.delegate(ctx, msg.Delegator, msg.Candidate, msg.Amount, msg.AutoCompoundPercent, msg.CandidateDelegationCountHint, msg.DelegatorDelegationCountHint)
}

// DelegatorBondMore implements delegator_bond_more: immediate top-up of an
// existing delegation.
func (k Keeper) DelegatorBondMore(ctx context.Context, msg types.MsgDelegatorBondMore) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	state, err := k.mustGetDelegator(ctx, msg.Delegator)
	if err != nil {
		return err
	}
	existing, ok := state.Delegations.Get(msg.Candidate)
	if !ok {
		return sdkerrors.Wrapf(types.ErrDelegationDNE, "%s -> %s", msg.Delegator, msg.Candidate)
	}
	if req, ok := k.getRequest(ctx, msg.Delegator, msg.Candidate); ok && req.IsRevoke() {
		return sdkerrors.Wrapf(types.ErrPendingDelegationRevoke, "%s -> %s", msg.Delegator, msg.Candidate)
	}

	spendable, err := k.DelegatorStakableBalance(ctx, msg.Delegator)
	if err != nil {
		return err
	}
	if spendable.LT(msg.Amount) {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "delegator %s", msg.Delegator)
	}

	newAmount := existing.Amount.Add(msg.Amount)
	newDelegations, _ := state.Delegations.Update(msg.Candidate, newAmount)
	state.Delegations = newDelegations
	if err := k.DelegatorState.Set(ctx, msg.Delegator, state); err != nil {
		return err
	}
	if err := k.reconcileDelegatorLock(ctx, msg.Delegator, state); err != nil {
		return err
	}

	cand, err := k.mustGetCandidate(ctx, msg.Candidate)
	if err != nil {
		return err
	}
	bucket, kicked, wasKicked := cand.Delegations.UpdateAmount(msg.Delegator, newAmount, types.MaxTopDelegationsPerCandidate, types.MaxBottomDelegationsPerCandidate)
	cand.Delegations = bucket
	if err := k.CandidatePool.Set(ctx, msg.Candidate, cand); err != nil {
		return err
	}
	if err := k.handleKickedDelegation(ctx, msg.Candidate, kicked, wasKicked); err != nil {
		return err
	}

	k.emit(ctx, &types.EventDelegatorBondedMore{Delegator: msg.Delegator, Candidate: msg.Candidate, Amount: msg.Amount, NewTotal: newAmount})
	return nil
}

func (k Keeper) getRequest(ctx context.Context, delegator, candidate types.AccountId) (types.ScheduledRequest, bool) {
	req, err := k.ScheduledRequest.Get(ctx, pairKey(delegator, candidate))
	if err != nil {
		return types.ScheduledRequest{}, false
	}
	return req, true
}

// ScheduleRevokeDelegation implements schedule_revoke_delegation.
func (k Keeper) ScheduleRevokeDelegation(ctx context.Context, msg types.MsgScheduleRevokeDelegation) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.scheduleRequest(ctx, msg.Delegator, msg.Candidate, types.RequestActionRevoke, types.NewBalance(0))
}

// ScheduleDelegatorBondLess implements schedule_delegator_bond_less.
func (k Keeper) ScheduleDelegatorBondLess(ctx context.Context, msg types.MsgScheduleDelegatorBondLess) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.scheduleRequest(ctx, msg.Delegator, msg.Candidate, types.RequestActionDecrease, msg.Amount)
}

func (k Keeper) scheduleRequest(
	ctx context.Context,
	delegator, candidate types.AccountId,
	action types.RequestAction,
	amount types.Balance,
) error {
	state, err := k.mustGetDelegator(ctx, delegator)
	if err != nil {
		return err
	}
	existing, ok := state.Delegations.Get(candidate)
	if !ok {
		return sdkerrors.Wrapf(types.ErrDelegationDNE, "%s -> %s", delegator, candidate)
	}
	if _, exists := k.getRequest(ctx, delegator, candidate); exists {
		return sdkerrors.Wrapf(types.ErrPendingRequestAlreadyExists, "%s -> %s", delegator, candidate)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	round, err := k.currentRound(ctx)
	if err != nil {
		return err
	}

	if action == types.RequestActionDecrease {
		remaining := existing.Amount.Sub(amount)
		if remaining.LT(params.MinDelegation) {
			return sdkerrors.Wrapf(types.ErrDelegatorBondBelowMin, "remaining %s below min %s", remaining, params.MinDelegation)
		}
	}

	delay := params.RevokeDelegationDelay
	if action == types.RequestActionDecrease {
		delay = params.DelegationBondLessDelay
	}
	executeRound := round + delay

	req := types.ScheduledRequest{Delegator: delegator, Candidate: candidate, Action: action, Amount: amount, WhenExecutable: executeRound}
	if err := k.ScheduledRequest.Set(ctx, pairKey(delegator, candidate), req); err != nil {
		return err
	}

	lessAmount := existing.Amount
	if action == types.RequestActionDecrease {
		lessAmount = amount
	}
	state.LessTotal = state.LessTotal.Add(lessAmount)
	if err := k.DelegatorState.Set(ctx, delegator, state); err != nil {
		return err
	}
	if err := k.reconcileDelegatorLock(ctx, delegator, state); err != nil {
		return err
	}

	if action == types.RequestActionRevoke {
		k.emit(ctx, &types.EventDelegationRevocationScheduled{Delegator: delegator, Candidate: candidate, ExecuteRound: executeRound})
	} else {
		k.emit(ctx, &types.EventDelegationDecreaseScheduled{Delegator: delegator, Candidate: candidate, AmountToDecrease: amount, ExecuteRound: executeRound})
	}
	return nil
}

// CancelDelegationRequest implements cancel_delegation_request.
func (k Keeper) CancelDelegationRequest(ctx context.Context, msg types.MsgCancelDelegationRequest) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	req, ok := k.getRequest(ctx, msg.Delegator, msg.Candidate)
	if !ok {
		return sdkerrors.Wrapf(types.ErrPendingRequestDNE, "%s -> %s", msg.Delegator, msg.Candidate)
	}
	state, err := k.mustGetDelegator(ctx, msg.Delegator)
	if err != nil {
		return err
	}
	existing, _ := state.Delegations.Get(msg.Candidate)
	lessAmount := existing.Amount
	if req.Action == types.RequestActionDecrease {
		lessAmount = req.Amount
	}
	state.LessTotal = state.LessTotal.Sub(lessAmount)
	if state.LessTotal.IsNegative() {
		state.LessTotal = math.ZeroInt()
	}
	if err := k.DelegatorState.Set(ctx, msg.Delegator, state); err != nil {
		return err
	}
	if err := k.reconcileDelegatorLock(ctx, msg.Delegator, state); err != nil {
		return err
	}
	if err := k.ScheduledRequest.Remove(ctx, pairKey(msg.Delegator, msg.Candidate)); err != nil {
		return err
	}
	k.emit(ctx, &types.EventDelegationRequestCanceled{Delegator: msg.Delegator, Candidate: msg.Candidate})
	return nil
}

// ExecuteDelegationRequest implements execute_delegation_request.
func (k Keeper) ExecuteDelegationRequest(ctx context.Context, msg types.MsgExecuteDelegationRequest) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	req, ok := k.getRequest(ctx, msg.Delegator, msg.Candidate)
	if !ok {
		return sdkerrors.Wrapf(types.ErrPendingRequestDNE, "%s -> %s", msg.Delegator, msg.Candidate)
	}
	round, err := k.currentRound(ctx)
	if err != nil {
		return err
	}
	if round < req.WhenExecutable {
		return sdkerrors.Wrapf(types.ErrInvalidSchedule, "not yet executable: round %d < %d", round, req.WhenExecutable)
	}

	state, err := k.mustGetDelegator(ctx, msg.Delegator)
	if err != nil {
		return err
	}
	existing, ok := state.Delegations.Get(msg.Candidate)
	if !ok {
		return sdkerrors.Wrapf(types.ErrDelegationDNE, "%s -> %s", msg.Delegator, msg.Candidate)
	}

	if req.IsRevoke() {
		state.LessTotal = state.LessTotal.Sub(existing.Amount)
		if err := k.DelegatorState.Set(ctx, msg.Delegator, state); err != nil {
			return err
		}
		if err := k.removeDelegationFromDelegator(ctx, msg.Delegator, msg.Candidate); err != nil {
			return err
		}
		k.emit(ctx, &types.EventDelegationRevoked{Delegator: msg.Delegator, Candidate: msg.Candidate, Amount: existing.Amount})
	} else {
		newAmount := existing.Amount.Sub(req.Amount)
		newDelegations, _ := state.Delegations.Update(msg.Candidate, newAmount)
		state.Delegations = newDelegations
		state.LessTotal = state.LessTotal.Sub(req.Amount)
		if err := k.DelegatorState.Set(ctx, msg.Delegator, state); err != nil {
			return err
		}
		if err := k.reconcileDelegatorLock(ctx, msg.Delegator, state); err != nil {
			return err
		}

		cand, err := k.mustGetCandidate(ctx, msg.Candidate)
		if err != nil {
			return err
		}
		bucket, kicked, wasKicked := cand.Delegations.UpdateAmount(msg.Delegator, newAmount, types.MaxTopDelegationsPerCandidate, types.MaxBottomDelegationsPerCandidate)
		cand.Delegations = bucket
		if err := k.CandidatePool.Set(ctx, msg.Candidate, cand); err != nil {
			return err
		}
		if err := k.handleKickedDelegation(ctx, msg.Candidate, kicked, wasKicked); err != nil {
			return err
		}
		k.emit(ctx, &types.EventDelegationDecreased{Delegator: msg.Delegator, Candidate: msg.Candidate, Amount: req.Amount, NewTotal: newAmount})
	}

	return k.ScheduledRequest.Remove(ctx, pairKey(msg.Delegator, msg.Candidate))
}

// removeDelegationFromDelegator drops candidate from delegator's state and
// the candidate's delegation bucket, reconciling the lock and clearing any
// auto-compound entry. Used both by execute_delegation_request(revoke) and
// by execute_leave_candidates cleanup.
func (k Keeper) removeDelegationFromDelegator(ctx context.Context, delegator, candidate types.AccountId) error {
	state, err := k.DelegatorState.Get(ctx, delegator)
	if err != nil {
		return nil
	}
	newDelegations, _ := state.Delegations.Remove(candidate)
	state.Delegations = newDelegations
	if state.Delegations.Len() == 0 {
		if err := k.DelegatorState.Remove(ctx, delegator); err != nil {
			return err
		}
		if err := k.ledger.SetLock(ctx, delegator, types.NewBalance(0)); err != nil {
			return err
		}
	} else {
		if err := k.DelegatorState.Set(ctx, delegator, state); err != nil {
			return err
		}
		if err := k.reconcileDelegatorLock(ctx, delegator, state); err != nil {
			return err
		}
	}

	key := pairKey(delegator, candidate)
	if ok, _ := k.AutoCompound.Has(ctx, key); ok {
		if err := k.AutoCompound.Remove(ctx, key); err != nil {
			return err
		}
	}

	if cand, err := k.CandidatePool.Get(ctx, candidate); err == nil {
		cand.Delegations = cand.Delegations.Remove(delegator)
		if err := k.CandidatePool.Set(ctx, candidate, cand); err != nil {
			return err
		}
	}
	return nil
}

// handleKickedDelegation unwinds a delegator's delegation to candidate
// after DelegationBucket.Add/UpdateAmount has already kicked it out of the
// bucket entirely to make room in a full bottom bucket: the candidate-side
// bucket no longer holds it, so only the delegator's own state, lock, and
// auto-compound entry remain, plus the DelegationKicked event so an
// observer can tell the difference between a voluntary exit and this one.
func (k Keeper) handleKickedDelegation(ctx context.Context, candidate types.AccountId, kicked types.Bond, wasKicked bool) error {
	if !wasKicked {
		return nil
	}
	state, err := k.DelegatorState.Get(ctx, kicked.Owner)
	if err != nil {
		return nil
	}
	newDelegations, _ := state.Delegations.Remove(candidate)
	state.Delegations = newDelegations
	if state.Delegations.Len() == 0 {
		if err := k.DelegatorState.Remove(ctx, kicked.Owner); err != nil {
			return err
		}
		if err := k.ledger.SetLock(ctx, kicked.Owner, types.NewBalance(0)); err != nil {
			return err
		}
	} else {
		if err := k.DelegatorState.Set(ctx, kicked.Owner, state); err != nil {
			return err
		}
		if err := k.reconcileDelegatorLock(ctx, kicked.Owner, state); err != nil {
			return err
		}
	}

	key := pairKey(kicked.Owner, candidate)
	if ok, _ := k.AutoCompound.Has(ctx, key); ok {
		if err := k.AutoCompound.Remove(ctx, key); err != nil {
			return err
		}
	}

	k.emit(ctx, &types.EventDelegationKicked{Delegator: kicked.Owner, Candidate: candidate, Amount: kicked.Amount})
	return nil
}

// SetAutoCompound implements set_auto_compound.
func (k Keeper) SetAutoCompound(ctx context.Context, msg types.MsgSetAutoCompound) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.checkDelegatorDelegationCountHint(ctx, msg.Delegator, msg.DelegatorDelegationCountHint); err != nil {
		return err
	}
	var autoCompounding uint32
	if err := k.AutoCompound.Walk(ctx, nil, func(key collections.Pair[types.AccountId, types.AccountId], _ types.Percent) (bool, error) {
		if key.K2() == msg.Candidate {
			autoCompounding++
		}
		return false, nil
	}); err != nil {
		return err
	}
	if msg.CandidateAutoCompoundingDelegationCountHint < autoCompounding {
		return sdkerrors.Wrapf(types.ErrTooLowAutoCompoundCountHint, "hint %d, real %d", msg.CandidateAutoCompoundingDelegationCountHint, autoCompounding)
	}
	state, err := k.mustGetDelegator(ctx, msg.Delegator)
	if err != nil {
		return err
	}
	if _, ok := state.Delegations.Get(msg.Candidate); !ok {
		return sdkerrors.Wrapf(types.ErrDelegationDNE, "%s -> %s", msg.Delegator, msg.Candidate)
	}

	key := pairKey(msg.Delegator, msg.Candidate)
	if msg.Percent == 0 {
		if ok, _ := k.AutoCompound.Has(ctx, key); ok {
			if err := k.AutoCompound.Remove(ctx, key); err != nil {
				return err
			}
		}
	} else {
		if err := k.AutoCompound.Set(ctx, key, msg.Percent); err != nil {
			return err
		}
	}
	k.emit(ctx, &types.EventAutoCompoundSet{Delegator: msg.Delegator, Candidate: msg.Candidate, Percent: msg.Percent})
	return nil
}

// ScheduleLeaveDelegators implements schedule_leave_delegators: equivalent
// to scheduling a Revoke against every one of the delegator's current
// targets simultaneously, so selection's requestAdjustedAmount zeroes this
// delegator's weight out of every candidate's interim snapshot right away
// rather than only once execute_leave_delegators finally runs.
func (k Keeper) ScheduleLeaveDelegators(ctx context.Context, msg types.MsgScheduleLeaveDelegators) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	state, err := k.mustGetDelegator(ctx, msg.Delegator)
	if err != nil {
		return err
	}
	if state.Status == types.DelegatorStatusLeaving {
		return sdkerrors.Wrapf(types.ErrInvalidSchedule, "already leaving")
	}
	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	round, err := k.currentRound(ctx)
	if err != nil {
		return err
	}
	executeRound := round + params.LeaveDelegatorsDelay

	for _, bond := range state.Delegations.Bonds {
		if _, exists := k.getRequest(ctx, msg.Delegator, bond.Owner); exists {
			continue
		}
		req := types.ScheduledRequest{
			Delegator:      msg.Delegator,
			Candidate:      bond.Owner,
			Action:         types.RequestActionRevoke,
			Amount:         types.NewBalance(0),
			WhenExecutable: executeRound,
		}
		if err := k.ScheduledRequest.Set(ctx, pairKey(msg.Delegator, bond.Owner), req); err != nil {
			return err
		}
		state.LessTotal = state.LessTotal.Add(bond.Amount)
	}

	state.Status = types.DelegatorStatusLeaving
	state.LeaveExecuteRound = executeRound
	if err := k.DelegatorState.Set(ctx, msg.Delegator, state); err != nil {
		return err
	}
	if err := k.reconcileDelegatorLock(ctx, msg.Delegator, state); err != nil {
		return err
	}
	k.emit(ctx, &types.EventDelegatorLeftScheduled{Delegator: msg.Delegator, ExecuteRound: executeRound})
	return nil
}

// ExecuteLeaveDelegators implements execute_leave_delegators.
func (k Keeper) ExecuteLeaveDelegators(ctx context.Context, msg types.MsgExecuteLeaveDelegators) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	state, err := k.mustGetDelegator(ctx, msg.Delegator)
	if err != nil {
		return err
	}
	if state.Status != types.DelegatorStatusLeaving {
		return sdkerrors.Wrapf(types.ErrInvalidSchedule, "%s has not scheduled to leave", msg.Delegator)
	}
	round, err := k.currentRound(ctx)
	if err != nil {
		return err
	}
	if round < state.LeaveExecuteRound {
		return sdkerrors.Wrapf(types.ErrInvalidSchedule, "not yet executable: round %d < %d", round, state.LeaveExecuteRound)
	}

	candidates := state.Delegations.Bonds
	if uint32(len(candidates)) > msg.DelegationCountHint {
		return sdkerrors.Wrapf(types.ErrTooLowDelegationCountHint, "hint %d, real %d", msg.DelegationCountHint, len(candidates))
	}

	for _, bond := range candidates {
		key := pairKey(msg.Delegator, bond.Owner)
		if ok, _ := k.ScheduledRequest.Has(ctx, key); ok {
			if err := k.ScheduledRequest.Remove(ctx, key); err != nil {
				return err
			}
		}
		if err := k.removeDelegationFromDelegator(ctx, msg.Delegator, bond.Owner); err != nil {
			return err
		}
	}
	k.emit(ctx, &types.EventDelegatorLeft{Delegator: msg.Delegator, CandidateCount: len(candidates)})
	return nil
}
