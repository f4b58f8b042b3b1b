// Package keeper implements the collator staking state machine: candidate
// and delegator bookkeeping, round advancement, collator selection and
// exposure snapshotting, and the drip-fed reward payout engine.
package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// Keeper holds every piece of persisted collator-staking state behind a
// collections.Schema, plus the host-supplied ledger/event/validator hooks
// the engine calls out to.
type Keeper struct {
	storeService sdkstore.KVStoreService
	authority    types.AccountId
	logger       log.Logger

	ledger     types.LedgerKeeper
	validators types.ValidatorRegistration
	events     types.EventSink

	Schema collections.Schema

	Params              collections.Item[types.Params]
	RoundInfo           collections.Item[types.RoundInfo]
	InflationConfig     collections.Item[types.InflationConfig]
	ParachainBondConfig collections.Item[types.ParachainBondConfig]
	TotalSelected       collections.Item[uint32]
	CollatorCommission  collections.Item[types.Perbill]
	Invulnerables       collections.Item[[]types.AccountId]

	CandidatePool      collections.Map[types.AccountId, types.CandidateMetadata]
	SelectedCandidates collections.Item[[]types.AccountId]

	DelegatorState   collections.Map[types.AccountId, types.DelegatorState]
	ScheduledRequest collections.Map[collections.Pair[types.AccountId, types.AccountId], types.ScheduledRequest]
	AutoCompound     collections.Map[collections.Pair[types.AccountId, types.AccountId], types.Percent]

	// Round-keyed collections use uint64 keys: collections.Uint64Key is the
	// only numeric key codec this module's teacher exercises, so round
	// numbers (uint32 in the domain model) are widened at the call site via
	// roundKey below rather than guessing at an unverified Uint32Key codec.
	//
	// AwardedPts[r][author] is each collator's accrued point count for round
	// r; Points[r] is the round's total point count, the P_tot denominator
	// the payout engine divides each author's share by.
	AwardedPts collections.Map[collections.Pair[uint64, types.AccountId], uint32]
	Points     collections.Map[uint64, uint32]

	AtStake       collections.Map[collections.Pair[uint64, types.AccountId], types.CollatorSnapshot]
	Staked        collections.Map[uint64, types.Balance]
	DelayedPayout collections.Map[uint64, types.DelayedPayout]
}

// roundKey widens a Round to the uint64 collections key space.
func roundKey(r types.Round) uint64 { return uint64(r) }

// NewKeeper wires a fresh Keeper against storeService, building the
// collections.Schema from every field above in one pass, mirroring how
// the teacher module's NewKeeper builds its own schema.
func NewKeeper(
	storeService sdkstore.KVStoreService,
	logger log.Logger,
	authority types.AccountId,
	ledger types.LedgerKeeper,
	validators types.ValidatorRegistration,
	events types.EventSink,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,
		ledger:       ledger,
		validators:   validators,
		events:       events,

		Params: collections.NewItem(
			sb, types.ParamsKey, "params", types.JSONValue[types.Params]("Params"),
		),
		RoundInfo: collections.NewItem(
			sb, types.RoundInfoKey, "round_info", types.JSONValue[types.RoundInfo]("RoundInfo"),
		),
		InflationConfig: collections.NewItem(
			sb, types.InflationConfigKey, "inflation_config", types.JSONValue[types.InflationConfig]("InflationConfig"),
		),
		ParachainBondConfig: collections.NewItem(
			sb, types.ParachainBondConfigKey, "parachain_bond_config", types.JSONValue[types.ParachainBondConfig]("ParachainBondConfig"),
		),
		TotalSelected: collections.NewItem(
			sb, types.TotalSelectedKey, "total_selected", types.JSONValue[uint32]("TotalSelected"),
		),
		CollatorCommission: collections.NewItem(
			sb, types.CollatorCommissionKey, "collator_commission", types.JSONValue[types.Perbill]("Perbill"),
		),
		Invulnerables: collections.NewItem(
			sb, types.InvulnerablesKey, "invulnerables", types.JSONValue[[]types.AccountId]("Invulnerables"),
		),

		CandidatePool: collections.NewMap(
			sb, types.CandidatePoolKey, "candidate_pool",
			collections.StringKey, types.JSONValue[types.CandidateMetadata]("CandidateMetadata"),
		),
		SelectedCandidates: collections.NewItem(
			sb, types.SelectedCandidatesKey, "selected_candidates", types.JSONValue[[]types.AccountId]("SelectedCandidates"),
		),

		DelegatorState: collections.NewMap(
			sb, types.DelegatorStateKey, "delegator_state",
			collections.StringKey, types.JSONValue[types.DelegatorState]("DelegatorState"),
		),
		ScheduledRequest: collections.NewMap(
			sb, types.ScheduledRequestKey, "scheduled_request",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			types.JSONValue[types.ScheduledRequest]("ScheduledRequest"),
		),
		AutoCompound: collections.NewMap(
			sb, types.AutoCompoundKey, "auto_compound",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			types.JSONValue[types.Percent]("Percent"),
		),

		AwardedPts: collections.NewMap(
			sb, types.AwardedPtsKey, "awarded_pts",
			collections.PairKeyCodec(collections.Uint64Key, collections.StringKey),
			types.JSONValue[uint32]("AwardedPts"),
		),
		Points: collections.NewMap(
			sb, types.PointsKey, "points", collections.Uint64Key, types.JSONValue[uint32]("Points"),
		),

		AtStake: collections.NewMap(
			sb, types.AtStakeKey, "at_stake",
			collections.PairKeyCodec(collections.Uint64Key, collections.StringKey),
			types.JSONValue[types.CollatorSnapshot]("CollatorSnapshot"),
		),
		Staked: collections.NewMap(
			sb, types.StakedKey, "staked", collections.Uint64Key, types.JSONValue[types.Balance]("Balance"),
		),
		DelayedPayout: collections.NewMap(
			sb, types.DelayedPayoutsKey, "delayed_payout", collections.Uint64Key, types.JSONValue[types.DelayedPayout]("DelayedPayout"),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-scoped logger, matching the teacher's
// keeper.Logger() convention for EndBlock/job logging.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", "x/"+types.ModuleName)
}

// Authority returns the governance address permitted to call the
// SetXxx knobs in params_gov.go.
func (k Keeper) Authority() types.AccountId {
	return k.authority
}

func (k Keeper) emit(ctx context.Context, event any) {
	if k.events == nil {
		return
	}
	k.events.EmitEvent(ctx, event)
}

// requireAuthority returns ErrInvalidAuthority unless signer matches the
// configured governance authority, mirroring the teacher module's
// authority check in params.go.
func (k Keeper) requireAuthority(signer types.AccountId) error {
	if signer != k.authority {
		return sdkerrors.Wrapf(types.ErrInvalidAuthority, "expected %s, got %s", k.authority, signer)
	}
	return nil
}
