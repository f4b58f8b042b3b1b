package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// oldestUnpaidRound finds the smallest round number with a DelayedPayout
// still pending, i.e. the next round the drip job should pay out of.
// Returns ok=false once every prepared payout has been fully drained.
func (k Keeper) oldestUnpaidRound(ctx context.Context) (types.Round, bool, error) {
	var oldest types.Round
	found := false
	err := k.DelayedPayout.Walk(ctx, nil, func(round uint64, _ types.DelayedPayout) (bool, error) {
		r := types.Round(round)
		if !found || r < oldest {
			oldest = r
			found = true
		}
		return false, nil
	})
	return oldest, found, err
}

// payOneCollator implements the drip-fed payout engine of spec §4.7: one
// call pops exactly one (candidate, points) entry out of the oldest unpaid
// round's AwardedPts ledger and pays that candidate its p/P_tot share of
// the round's reward, so round payouts spread evenly across the blocks of
// the following round rather than landing in a single expensive block.
// Candidates selected but never awarded a point (no AwardedPts entry) are
// never paid, matching spec's authored-blocks-only reward rule; their
// AtStake snapshot is still cleaned up once the round is fully drained.
func (k Keeper) payOneCollator(ctx context.Context) error {
	round, ok, err := k.oldestUnpaidRound(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	payout, err := k.DelayedPayout.Get(ctx, roundKey(round))
	if err != nil {
		return err
	}
	totalPoints, err := k.Points.Get(ctx, roundKey(round))
	if err != nil || totalPoints == 0 {
		return k.finishRoundPayout(ctx, round)
	}

	candidate, points, ok, err := k.nextAwardedPoints(ctx, round)
	if err != nil {
		return err
	}
	if !ok {
		return k.finishRoundPayout(ctx, round)
	}

	if err := k.AwardedPts.Remove(ctx, collectionsPairKey(round, candidate)); err != nil {
		return err
	}

	snapshot, err := k.AtStake.Get(ctx, collectionsPairKey(round, candidate))
	if err == nil {
		if err := k.payCollatorReward(ctx, payout, candidate, points, totalPoints, snapshot); err != nil {
			k.Logger().Error("pay collator reward failed", "round", round, "candidate", candidate, "err", err)
		}
		if err := k.AtStake.Remove(ctx, collectionsPairKey(round, candidate)); err != nil {
			return err
		}
	} else if !errors.Is(err, collections.ErrNotFound) {
		return err
	}

	if _, _, hasMore, err := k.nextAwardedPoints(ctx, round); err != nil {
		return err
	} else if !hasMore {
		return k.finishRoundPayout(ctx, round)
	}
	return nil
}

// finishRoundPayout drops every piece of state a round's payout leaves
// behind once its AwardedPts ledger is fully drained: the DelayedPayout
// record, the round's total point count, and any AtStake snapshot left
// over for a selected candidate that never authored a block.
func (k Keeper) finishRoundPayout(ctx context.Context, round types.Round) error {
	if err := k.DelayedPayout.Remove(ctx, roundKey(round)); err != nil {
		return err
	}
	if err := k.Points.Remove(ctx, roundKey(round)); err != nil {
		return err
	}

	rng := collections.NewPrefixedPairRange[uint64, types.AccountId](roundKey(round))
	var leftover []types.AccountId
	err := k.AtStake.Walk(ctx, rng, func(key collections.Pair[uint64, types.AccountId], _ types.CollatorSnapshot) (bool, error) {
		leftover = append(leftover, key.K2())
		return false, nil
	})
	if err != nil {
		return err
	}
	for _, candidate := range leftover {
		if err := k.AtStake.Remove(ctx, collectionsPairKey(round, candidate)); err != nil {
			return err
		}
	}

	k.emit(ctx, &types.EventReservedForParachainBondCompleted{Round: round})
	return nil
}

// nextAwardedPoints pops the first remaining (candidate, points) entry out
// of round's AwardedPts ledger, the authoring record the payout engine
// drains one entry at a time.
func (k Keeper) nextAwardedPoints(ctx context.Context, round types.Round) (types.AccountId, uint32, bool, error) {
	rng := collections.NewPrefixedPairRange[uint64, types.AccountId](roundKey(round))
	var (
		candidate types.AccountId
		points    uint32
		found     bool
	)
	err := k.AwardedPts.Walk(ctx, rng, func(key collections.Pair[uint64, types.AccountId], value uint32) (bool, error) {
		candidate = key.K2()
		points = value
		found = true
		return true, nil
	})
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return "", 0, false, err
	}
	return candidate, points, found, nil
}

// payCollatorReward is pay_one_collator_reward: the candidate's share of
// the round's reward pool is p/P_tot of both the commission and the
// stake-weighted pool, per spec §4.7 — a candidate that authored half the
// round's blocks is paid half of what it would have earned authoring all
// of them, never a flat per-collator cut of the round's total. Commission
// is computed against the round's total issuance (not the per-collator
// exposure); the remainder is split pro-rata by exposure between the
// candidate's own bond and its delegators, honoring each delegator's
// auto-compound instruction by re-delegating rather than transferring its
// share. A self-bonded candidate with no delegators is paid its full share
// in one mint: there is nothing to split commission out of.
func (k Keeper) payCollatorReward(
	ctx context.Context,
	payout types.DelayedPayout,
	candidate types.AccountId,
	points uint32,
	totalPoints uint32,
	snapshot types.CollatorSnapshot,
) error {
	pts := math.NewIntFromUint64(uint64(points))
	totalPts := math.NewIntFromUint64(uint64(totalPoints))

	fullCommission := payout.CollatorCommission.MulFloor(payout.RoundIssuance)
	commission := fullCommission.Mul(pts).Quo(totalPts)
	totalPaid := payout.TotalStakingReward.Mul(pts).Quo(totalPts)

	if len(snapshot.Delegations) == 0 {
		if totalPaid.IsPositive() {
			if err := k.ledger.MintReward(ctx, candidate, totalPaid); err != nil {
				return err
			}
			k.emit(ctx, &types.EventRewarded{Account: candidate, Amount: totalPaid})
		}
		return nil
	}

	if commission.IsPositive() {
		if err := k.ledger.MintReward(ctx, candidate, commission); err != nil {
			return err
		}
		k.emit(ctx, &types.EventRewarded{Account: candidate, Amount: commission})
	}

	remainingReward := totalPaid.Sub(commission)
	if remainingReward.IsNegative() || remainingReward.IsZero() || snapshot.Total.IsZero() {
		return nil
	}

	bondShare := remainingReward.Mul(snapshot.Bond).Quo(snapshot.Total)
	if bondShare.IsPositive() {
		if err := k.ledger.MintReward(ctx, candidate, bondShare); err != nil {
			return err
		}
		k.emit(ctx, &types.EventRewarded{Account: candidate, Amount: bondShare})
	}

	for _, d := range snapshot.Delegations {
		share := remainingReward.Mul(d.Amount).Quo(snapshot.Total)
		if !share.IsPositive() {
			continue
		}
		if err := k.payDelegatorShare(ctx, d, candidate, share); err != nil {
			return err
		}
	}
	return nil
}

// payDelegatorShare either re-delegates d's auto-compound percentage of
// share and transfers the rest, or transfers the whole share, mirroring
// the original pallet's mint_and_compound.
func (k Keeper) payDelegatorShare(ctx context.Context, d types.BondWithAutoCompound, candidate types.AccountId, share types.Balance) error {
	if d.AutoCompound == 0 {
		if err := k.ledger.MintReward(ctx, d.Owner, share); err != nil {
			return err
		}
		k.emit(ctx, &types.EventRewarded{Account: d.Owner, Amount: share})
		return nil
	}

	compoundShare := types.PerbillFromPercent(d.AutoCompound).MulFloor(share)
	transferShare := share.Sub(compoundShare)

	if transferShare.IsPositive() {
		if err := k.ledger.MintReward(ctx, d.Owner, transferShare); err != nil {
			return err
		}
		k.emit(ctx, &types.EventRewarded{Account: d.Owner, Amount: transferShare})
	}

	if compoundShare.IsPositive() {
		if err := k.ledger.MintReward(ctx, d.Owner, compoundShare); err != nil {
			return err
		}
		if err := k.compoundDelegation(ctx, d.Owner, candidate, compoundShare); err != nil {
			return err
		}
	}
	return nil
}

// compoundDelegation re-delegates amount onto an existing delegation
// in-place: the caller has already minted the reward to the delegator's
// spendable balance, and this grows the bonded amount and reconciles the
// lock rather than routing it back out via Delegate, since the delegation
// already exists.
func (k Keeper) compoundDelegation(ctx context.Context, delegator, candidate types.AccountId, amount types.Balance) error {
	state, err := k.DelegatorState.Get(ctx, delegator)
	if err != nil {
		return nil
	}
	existing, ok := state.Delegations.Get(candidate)
	if !ok {
		return nil
	}
	newAmount := existing.Amount.Add(amount)
	newDelegations, _ := state.Delegations.Update(candidate, newAmount)
	state.Delegations = newDelegations
	if err := k.DelegatorState.Set(ctx, delegator, state); err != nil {
		return err
	}
	if err := k.reconcileDelegatorLock(ctx, delegator, state); err != nil {
		return err
	}

	cand, err := k.CandidatePool.Get(ctx, candidate)
	if err != nil {
		return nil
	}
	bucket, kicked, wasKicked := cand.Delegations.UpdateAmount(delegator, newAmount, types.MaxTopDelegationsPerCandidate, types.MaxBottomDelegationsPerCandidate)
	cand.Delegations = bucket
	if err := k.CandidatePool.Set(ctx, candidate, cand); err != nil {
		return err
	}
	return k.handleKickedDelegation(ctx, candidate, kicked, wasKicked)
}
