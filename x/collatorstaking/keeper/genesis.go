package keeper

import (
	"context"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// InitGenesis seeds every collection from a GenesisState, including any
// genesis candidates and their delegations, locking stake for each via the
// ledger exactly as the equivalent live operations would.
func (k Keeper) InitGenesis(ctx context.Context, genesis types.GenesisState) error {
	if err := k.Params.Set(ctx, genesis.Params); err != nil {
		return err
	}
	if err := k.RoundInfo.Set(ctx, genesis.RoundInfo); err != nil {
		return err
	}
	if err := k.InflationConfig.Set(ctx, genesis.InflationConfig); err != nil {
		return err
	}
	if err := k.ParachainBondConfig.Set(ctx, genesis.ParachainBondConfig); err != nil {
		return err
	}
	if err := k.TotalSelected.Set(ctx, genesis.TotalSelected); err != nil {
		return err
	}
	if err := k.CollatorCommission.Set(ctx, genesis.CollatorCommission); err != nil {
		return err
	}
	if err := k.Invulnerables.Set(ctx, genesis.Invulnerables); err != nil {
		return err
	}
	if err := k.SelectedCandidates.Set(ctx, []types.AccountId{}); err != nil {
		return err
	}

	for _, gc := range genesis.Candidates {
		candidate := types.NewCandidateMetadata(gc.Bond)
		if err := k.ledger.SetLock(ctx, gc.Candidate, gc.Bond); err != nil {
			return err
		}

		for _, d := range gc.Delegations {
			// Genesis delegations are trusted input: a genesis state that
			// overflows both buckets for one candidate is a malformed
			// export, not a runtime condition to unwind gracefully.
			bucket, _, _, _, _ := candidate.Delegations.Add(d, types.MaxTopDelegationsPerCandidate, types.MaxBottomDelegationsPerCandidate)
			candidate.Delegations = bucket

			state, err := k.DelegatorState.Get(ctx, d.Owner)
			if err != nil {
				state = types.NewDelegatorState()
			}
			newDelegations, _ := state.Delegations.Insert(types.Bond{Owner: gc.Candidate, Amount: d.Amount})
			state.Delegations = newDelegations
			if err := k.DelegatorState.Set(ctx, d.Owner, state); err != nil {
				return err
			}
			if err := k.reconcileDelegatorLock(ctx, d.Owner, state); err != nil {
				return err
			}
		}

		if err := k.CandidatePool.Set(ctx, gc.Candidate, candidate); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis builds a GenesisState from the stored settings,
// invulnerables and candidate pool. State that GenesisState does not carry
// (see its doc) is not exported, so a restart from the export does not
// restore it.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	roundInfo, err := k.RoundInfo.Get(ctx)
	if err != nil {
		return nil, err
	}
	inflation, err := k.InflationConfig.Get(ctx)
	if err != nil {
		return nil, err
	}
	bondConfig, err := k.ParachainBondConfig.Get(ctx)
	if err != nil {
		return nil, err
	}
	totalSelected, err := k.TotalSelected.Get(ctx)
	if err != nil {
		return nil, err
	}
	commission, err := k.CollatorCommission.Get(ctx)
	if err != nil {
		return nil, err
	}
	invulnerables, err := k.Invulnerables.Get(ctx)
	if err != nil {
		invulnerables = nil
	}

	var candidates []types.GenesisCandidate
	err = k.CandidatePool.Walk(ctx, nil, func(addr types.AccountId, c types.CandidateMetadata) (bool, error) {
		delegations := append(append([]types.Bond{}, c.Delegations.Top.Bonds...), c.Delegations.Bottom.Bonds...)
		candidates = append(candidates, types.GenesisCandidate{
			Candidate:   addr,
			Bond:        c.Bond,
			Delegations: delegations,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:              params,
		RoundInfo:           roundInfo,
		InflationConfig:      inflation,
		ParachainBondConfig: bondConfig,
		TotalSelected:       totalSelected,
		CollatorCommission:  commission,
		Invulnerables:       invulnerables,
		Candidates:          candidates,
	}, nil
}
