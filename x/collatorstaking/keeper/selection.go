package keeper

import (
	"context"
	"sort"

	"cosmossdk.io/collections"
	"github.com/samber/lo"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// collectionsPairKey builds the (round, account) composite key shared by
// the AwardedPts and AtStake maps.
func collectionsPairKey(round types.Round, addr types.AccountId) collections.Pair[uint64, types.AccountId] {
	return collections.Join(roundKey(round), addr)
}

// selectTopCandidates implements the selection half of spec §4.6: every
// invulnerable is selected unconditionally, and the remaining slots (up to
// TotalSelected) go to the highest TotalCounted() active candidates,
// ties broken by address for determinism. Mirrors the original pallet's
// compute_top_candidates (sort ascending, take the last N) but expressed
// as a descending sort since Go has no equivalent of a reversed iterator
// shortcut worth reaching for here.
func (k Keeper) selectTopCandidates(ctx context.Context) ([]types.AccountId, types.Balance, error) {
	totalSelected, err := k.TotalSelected.Get(ctx)
	if err != nil {
		return nil, types.NewBalance(0), err
	}
	invulnerables, err := k.Invulnerables.Get(ctx)
	if err != nil {
		invulnerables = nil
	}
	type weighted struct {
		addr   types.AccountId
		weight types.Balance
	}
	var candidates []weighted
	err = k.CandidatePool.Walk(ctx, nil, func(addr types.AccountId, c types.CandidateMetadata) (bool, error) {
		if !c.IsActive() || lo.Contains(invulnerables, addr) {
			return false, nil
		}
		candidates = append(candidates, weighted{addr: addr, weight: c.TotalCounted()})
		return false, nil
	})
	if err != nil {
		return nil, types.NewBalance(0), err
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].weight.Equal(candidates[j].weight) {
			return candidates[i].weight.GT(candidates[j].weight)
		}
		return candidates[i].addr < candidates[j].addr
	})

	selected := make([]types.AccountId, 0, totalSelected)
	selected = append(selected, invulnerables...)

	remaining := int(totalSelected) - len(invulnerables)
	for i := 0; i < remaining && i < len(candidates); i++ {
		selected = append(selected, candidates[i].addr)
	}

	totalCounted := types.NewBalance(0)
	for _, addr := range selected {
		c, err := k.CandidatePool.Get(ctx, addr)
		if err != nil {
			continue
		}
		totalCounted = totalCounted.Add(c.TotalCounted())
	}

	return selected, totalCounted, nil
}

// snapshotExposure freezes each selected candidate's bond and
// request-adjusted top delegations into an AtStake entry for round, the
// basis the payout engine reads back from. A delegation with a pending
// revoke or decrease request has its snapshotted amount reduced by the
// pending amount, so a reward never gets paid against stake the delegator
// has already committed to remove.
func (k Keeper) snapshotExposure(ctx context.Context, round types.Round, selected []types.AccountId) error {
	for _, candidate := range selected {
		c, err := k.CandidatePool.Get(ctx, candidate)
		if err != nil {
			continue
		}

		bonds := make([]types.BondWithAutoCompound, 0, c.Delegations.Top.Len())
		for _, bond := range c.Delegations.Top.Bonds {
			amount := k.requestAdjustedAmount(ctx, bond.Owner, candidate, bond.Amount)
			percent := k.autoCompoundPercent(ctx, bond.Owner, candidate)
			bonds = append(bonds, types.BondWithAutoCompound{Owner: bond.Owner, Amount: amount, AutoCompound: percent})
		}

		total := c.Bond
		for _, b := range bonds {
			total = total.Add(b.Amount)
		}

		snapshot := types.CollatorSnapshot{Bond: c.Bond, Delegations: bonds, Total: total}
		if err := k.AtStake.Set(ctx, collectionsPairKey(round, candidate), snapshot); err != nil {
			return err
		}
		k.emit(ctx, &types.EventCollatorChosen{Round: round, Candidate: candidate, TotalExposed: total})
	}
	return nil
}

func (k Keeper) requestAdjustedAmount(ctx context.Context, delegator, candidate types.AccountId, amount types.Balance) types.Balance {
	req, ok := k.getRequest(ctx, delegator, candidate)
	if !ok {
		return amount
	}
	if req.IsRevoke() {
		return types.NewBalance(0)
	}
	adjusted := amount.Sub(req.Amount)
	if adjusted.IsNegative() {
		return types.NewBalance(0)
	}
	return adjusted
}

func (k Keeper) autoCompoundPercent(ctx context.Context, delegator, candidate types.AccountId) types.Percent {
	percent, err := k.AutoCompound.Get(ctx, pairKey(delegator, candidate))
	if err != nil {
		return 0
	}
	return percent
}
