package keeper

import (
	"context"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// IsCandidate reports whether addr currently holds a candidate bond,
// mirroring the original pallet's Pallet::is_candidate.
func (k Keeper) IsCandidate(ctx context.Context, addr types.AccountId) (bool, error) {
	return k.CandidatePool.Has(ctx, addr)
}

// IsDelegator reports whether addr currently holds any delegation,
// mirroring the original pallet's Pallet::is_delegator.
func (k Keeper) IsDelegator(ctx context.Context, addr types.AccountId) (bool, error) {
	return k.DelegatorState.Has(ctx, addr)
}

// IsSelectedCandidate reports whether addr is in the current round's
// selected collator set, mirroring Pallet::is_selected_candidate.
func (k Keeper) IsSelectedCandidate(ctx context.Context, addr types.AccountId) (bool, error) {
	selected, err := k.SelectedCandidates.Get(ctx)
	if err != nil {
		return false, err
	}
	for _, s := range selected {
		if s == addr {
			return true, nil
		}
	}
	return false, nil
}

// CanAuthor reports whether addr is eligible to author the next block,
// i.e. whether it's a selected candidate. Block authoring itself stays
// out of this module's scope; a host's consensus layer calls this as a
// gate the way nimbus_primitives::CanAuthor did in the original pallet.
func (k Keeper) CanAuthor(ctx context.Context, addr types.AccountId) bool {
	ok, err := k.IsSelectedCandidate(ctx, addr)
	return err == nil && ok
}

// DelegatorStakableBalance returns the amount addr could still bond as a
// delegator: its ledger-reported spendable balance. Used by Delegate and
// DelegatorBondMore to surface a precise ErrInsufficientBalance instead
// of letting the downstream SetLock call fail.
func (k Keeper) DelegatorStakableBalance(ctx context.Context, addr types.AccountId) (types.Balance, error) {
	return k.ledger.SpendableBalance(ctx, addr)
}

// CollatorStakableBalance returns the amount addr could still bond as a
// candidate self-bond, the candidate-side counterpart to
// DelegatorStakableBalance.
func (k Keeper) CollatorStakableBalance(ctx context.Context, addr types.AccountId) (types.Balance, error) {
	return k.ledger.SpendableBalance(ctx, addr)
}
