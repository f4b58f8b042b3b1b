package keeper

import (
	"context"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

func (k Keeper) currentRound(ctx context.Context) (types.Round, error) {
	info, err := k.RoundInfo.Get(ctx)
	if err != nil {
		return 0, err
	}
	return info.Current, nil
}

// NewSession is the round-driver entrypoint a host chain calls once per
// block (e.g. from its EndBlock): it advances the round when the block
// height crosses the round boundary, and on every advance runs the full
// round pipeline from spec §4.5 in order:
//  1. advance the counter, then prepare the DelayedPayout (issuance,
//     commission, total staking reward) of round new current minus
//     RewardPaymentDelay, if that round has points;
//  2. select the new round's top-N candidates and snapshot their exposure;
//  3. record the new round's total counted stake;
//  4. drip-pay one collator's reward from the oldest unpaid DelayedPayout.
//
// It never panics on a component failure; it logs and continues, matching
// the teacher module's EndBlock cache-context convention, since a skipped
// payout this block can always resume identically next block.
func (k Keeper) NewSession(ctx context.Context, height uint64) error {
	info, err := k.RoundInfo.Get(ctx)
	if err != nil {
		return err
	}
	if !info.ShouldAdvance(height) {
		return k.payOneCollator(ctx)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	next := info.Next(height)
	if err := k.RoundInfo.Set(ctx, next); err != nil {
		return err
	}

	if next.Current > params.RewardPaymentDelay {
		payoutRound := next.Current - params.RewardPaymentDelay
		points, err := k.Points.Get(ctx, roundKey(payoutRound))
		if err != nil {
			points = 0
		}
		if points > 0 {
			if err := k.prepareRoundPayout(ctx, payoutRound); err != nil {
				k.Logger().Error("prepare round payout failed", "round", payoutRound, "err", err)
			}
		}
	}

	selected, totalCounted, err := k.selectTopCandidates(ctx)
	if err != nil {
		k.Logger().Error("select top candidates failed", "round", next.Current, "err", err)
		return k.payOneCollator(ctx)
	}

	if err := k.snapshotExposure(ctx, next.Current, selected); err != nil {
		k.Logger().Error("snapshot exposure failed", "round", next.Current, "err", err)
	}
	if err := k.Staked.Set(ctx, roundKey(next.Current), totalCounted); err != nil {
		k.Logger().Error("record staked failed", "round", next.Current, "err", err)
	}
	if err := k.SelectedCandidates.Set(ctx, selected); err != nil {
		k.Logger().Error("persist selected candidates failed", "round", next.Current, "err", err)
	}

	k.emit(ctx, &types.EventNewRound{Round: next.Current, FirstBlock: next.First, SelectedCount: len(selected), TotalCounted: totalCounted})

	return k.payOneCollator(ctx)
}

// prepareRoundPayout computes the round's issuance from total staked
// amount, skims the parachain bond reserve, and stores the remainder as a
// DelayedPayout for the drip job to consume over subsequent blocks.
func (k Keeper) prepareRoundPayout(ctx context.Context, round types.Round) error {
	totalStaked, err := k.Staked.Get(ctx, roundKey(round))
	if err != nil {
		return err
	}
	inflation, err := k.InflationConfig.Get(ctx)
	if err != nil {
		return err
	}
	issuance := inflation.ComputeIssuance(totalStaked)

	bondConfig, err := k.ParachainBondConfig.Get(ctx)
	if err != nil {
		return err
	}
	reserve, remainder := bondConfig.ReserveCut(issuance)
	if reserve.IsPositive() {
		if err := k.ledger.MintReward(ctx, bondConfig.Account, reserve); err != nil {
			return err
		}
		k.emit(ctx, &types.EventReservedForParachainBond{Account: bondConfig.Account, Amount: reserve})
	}

	commission, err := k.CollatorCommission.Get(ctx)
	if err != nil {
		return err
	}

	return k.DelayedPayout.Set(ctx, roundKey(round), types.DelayedPayout{
		Round:              round,
		RoundIssuance:      issuance,
		CollatorCommission: commission,
		TotalStakingReward: remainder,
	})
}
