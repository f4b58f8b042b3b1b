package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// SetStakingExpectations implements the SetStakingExpectations governance
// knob from spec §4.8: sets the expected total-staked band used to widen
// or narrow the per-round inflation rate toward Ideal.
func (k Keeper) SetStakingExpectations(ctx context.Context, msg types.MsgSetStakingExpectations) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireAuthority(msg.Authority); err != nil {
		return err
	}
	cfg, err := k.InflationConfig.Get(ctx)
	if err != nil {
		return err
	}
	cfg.ExpectMin, cfg.ExpectIdeal, cfg.ExpectMax = msg.Min, msg.Ideal, msg.Max
	if err := k.InflationConfig.Set(ctx, cfg); err != nil {
		return err
	}
	k.emit(ctx, &types.EventStakingExpectationsSet{Min: msg.Min, Ideal: msg.Ideal, Max: msg.Max})
	return nil
}

// SetInflation implements SetInflation: sets the annual inflation band and
// stores the same band, unconverted, as the round band, applied starting
// next round.
func (k Keeper) SetInflation(ctx context.Context, msg types.MsgSetInflation) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireAuthority(msg.Authority); err != nil {
		return err
	}
	cfg, err := k.InflationConfig.Get(ctx)
	if err != nil {
		return err
	}
	// The round range is set directly from the same band as the annual
	// range: this engine keeps the simple bounded-band issuance model the
	// original pallet uses, with no per-block-time interpolation between
	// an annual and a round rate.
	cfg.AnnualRange = msg.Annual
	cfg.RoundRange = msg.Annual
	if err := k.InflationConfig.Set(ctx, cfg); err != nil {
		return err
	}
	k.emit(ctx, &types.EventInflationSet{Annual: msg.Annual})
	return nil
}

// SetParachainBondAccount implements SetParachainBondAccount.
func (k Keeper) SetParachainBondAccount(ctx context.Context, msg types.MsgSetParachainBondAccount) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireAuthority(msg.Authority); err != nil {
		return err
	}
	cfg, err := k.ParachainBondConfig.Get(ctx)
	if err != nil {
		return err
	}
	if cfg.Account == msg.Account {
		return sdkerrors.Wrapf(types.ErrNoWritingSameValue, "%s", msg.Account)
	}
	old := cfg.Account
	cfg.Account = msg.Account
	if err := k.ParachainBondConfig.Set(ctx, cfg); err != nil {
		return err
	}
	k.emit(ctx, &types.EventParachainBondAccountSet{Old: old, New: msg.Account})
	return nil
}

// SetParachainBondReservePercent implements SetParachainBondReservePercent.
func (k Keeper) SetParachainBondReservePercent(ctx context.Context, msg types.MsgSetParachainBondReservePercent) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireAuthority(msg.Authority); err != nil {
		return err
	}
	cfg, err := k.ParachainBondConfig.Get(ctx)
	if err != nil {
		return err
	}
	if cfg.Percent == msg.Percent {
		return sdkerrors.Wrapf(types.ErrNoWritingSameValue, "%d", msg.Percent)
	}
	old := cfg.Percent
	cfg.Percent = msg.Percent
	if err := k.ParachainBondConfig.Set(ctx, cfg); err != nil {
		return err
	}
	k.emit(ctx, &types.EventParachainBondReservePercentSet{Old: old, New: msg.Percent})
	return nil
}

// SetTotalSelected implements SetTotalSelected.
func (k Keeper) SetTotalSelected(ctx context.Context, msg types.MsgSetTotalSelected) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireAuthority(msg.Authority); err != nil {
		return err
	}
	info, err := k.RoundInfo.Get(ctx)
	if err != nil {
		return err
	}
	if err := types.ValidateTotalSelected(msg.TotalSelected, info.Length); err != nil {
		return err
	}
	current, err := k.TotalSelected.Get(ctx)
	if err != nil {
		return err
	}
	if current == msg.TotalSelected {
		return sdkerrors.Wrapf(types.ErrNoWritingSameValue, "%d", msg.TotalSelected)
	}
	if err := k.TotalSelected.Set(ctx, msg.TotalSelected); err != nil {
		return err
	}
	k.emit(ctx, &types.EventTotalSelectedSet{Old: current, New: msg.TotalSelected})
	return nil
}

// SetCollatorCommission implements SetCollatorCommission.
func (k Keeper) SetCollatorCommission(ctx context.Context, msg types.MsgSetCollatorCommission) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireAuthority(msg.Authority); err != nil {
		return err
	}
	old, err := k.CollatorCommission.Get(ctx)
	if err != nil {
		return err
	}
	if old.Parts.Equal(msg.Commission.Parts) {
		return sdkerrors.Wrapf(types.ErrNoWritingSameValue, "%s", msg.Commission.Parts)
	}
	if err := k.CollatorCommission.Set(ctx, msg.Commission); err != nil {
		return err
	}
	k.emit(ctx, &types.EventCollatorCommissionSet{Old: old, New: msg.Commission})
	return nil
}

// SetBlocksPerRound implements SetBlocksPerRound.
func (k Keeper) SetBlocksPerRound(ctx context.Context, msg types.MsgSetBlocksPerRound) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireAuthority(msg.Authority); err != nil {
		return err
	}
	if err := types.ValidateBlocksPerRound(msg.BlocksPerRound); err != nil {
		return err
	}
	totalSelected, err := k.TotalSelected.Get(ctx)
	if err != nil {
		return err
	}
	if err := types.ValidateTotalSelected(totalSelected, msg.BlocksPerRound); err != nil {
		return err
	}
	info, err := k.RoundInfo.Get(ctx)
	if err != nil {
		return err
	}
	if info.Length == msg.BlocksPerRound {
		return sdkerrors.Wrapf(types.ErrNoWritingSameValue, "%d", msg.BlocksPerRound)
	}
	old := info.Length
	info.Length = msg.BlocksPerRound
	if err := k.RoundInfo.Set(ctx, info); err != nil {
		return err
	}
	k.emit(ctx, &types.EventBlocksPerRoundSet{Old: old, New: msg.BlocksPerRound})
	return nil
}

// SetInvulnerables implements SetInvulnerables.
func (k Keeper) SetInvulnerables(ctx context.Context, msg types.MsgSetInvulnerables) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireAuthority(msg.Authority); err != nil {
		return err
	}
	if err := types.ValidateInvulnerables(msg.Invulnerables); err != nil {
		return err
	}
	for _, candidate := range msg.Invulnerables {
		registered, err := k.validators.IsRegistered(ctx, candidate)
		if err != nil {
			return err
		}
		if !registered {
			return sdkerrors.Wrapf(types.ErrCandidateNotRegisteredValidator, "%s", candidate)
		}
	}
	if err := k.Invulnerables.Set(ctx, msg.Invulnerables); err != nil {
		return err
	}
	k.emit(ctx, &types.EventInvulnerablesSet{Invulnerables: msg.Invulnerables})
	return nil
}
