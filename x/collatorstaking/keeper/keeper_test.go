package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/collator-staking/testutil/ledgermock"
	"github.com/tokenize-x/collator-staking/testutil/memstore"
	"github.com/tokenize-x/collator-staking/x/collatorstaking/keeper"
	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

func newTestKeeper(t *testing.T) (keeper.Keeper, *ledgermock.Ledger, context.Context) {
	t.Helper()
	store := memstore.New()
	ledger := ledgermock.New()
	k := keeper.NewKeeper(store, log.NewNopLogger(), "authority", ledger, ledgermock.NoOpValidatorRegistration{}, types.NoOpEventSink{})

	ctx := context.Background()
	genesis := types.DefaultGenesisState()
	genesis.TotalSelected = 2
	genesis.RoundInfo = types.RoundInfo{Current: 1, First: 0, Length: 10}
	genesis.CollatorCommission = types.PerbillFromPercent(10)
	genesis.InflationConfig = types.InflationConfig{
		ExpectMin:   types.NewBalance(0),
		ExpectIdeal: types.NewBalance(1000),
		ExpectMax:   types.NewBalance(100000),
		AnnualRange: types.InflationRange{Min: types.NewPerbill(0), Ideal: types.NewPerbill(100_000_000), Max: types.NewPerbill(100_000_000)},
		RoundRange:  types.InflationRange{Min: types.NewPerbill(0), Ideal: types.NewPerbill(100_000_000), Max: types.NewPerbill(100_000_000)},
	}
	require.NoError(t, k.InitGenesis(ctx, *genesis))
	return k, ledger, ctx
}

func TestJoinCandidatesLifecycle(t *testing.T) {
	k, ledger, ctx := newTestKeeper(t)
	ledger.Fund("collator-1", types.NewBalance(1000))

	require.NoError(t, k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(500)}))

	err := k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(500), CandidateCountHint: 1})
	require.ErrorIs(t, err, types.ErrCandidateExists)

	locked, err := ledger.LockedBalance(ctx, "collator-1")
	require.NoError(t, err)
	require.Equal(t, types.NewBalance(500), locked)
}

func TestJoinCandidatesBelowMinFails(t *testing.T) {
	k, ledger, ctx := newTestKeeper(t)
	ledger.Fund("collator-1", types.NewBalance(1000))

	err := k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(0)})
	require.Error(t, err)
}

func TestDelegateAndBondMore(t *testing.T) {
	k, ledger, ctx := newTestKeeper(t)
	ledger.Fund("collator-1", types.NewBalance(1000))
	ledger.Fund("delegator-1", types.NewBalance(1000))

	require.NoError(t, k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(500)}))
	require.NoError(t, k.Delegate(ctx, types.MsgDelegate{Delegator: "delegator-1", Candidate: "collator-1", Amount: types.NewBalance(100)}))

	err := k.Delegate(ctx, types.MsgDelegate{Delegator: "delegator-1", Candidate: "collator-1", Amount: types.NewBalance(50), CandidateDelegationCountHint: 1, DelegatorDelegationCountHint: 1})
	require.ErrorIs(t, err, types.ErrAlreadyDelegatedCandidate)

	require.NoError(t, k.DelegatorBondMore(ctx, types.MsgDelegatorBondMore{Delegator: "delegator-1", Candidate: "collator-1", Amount: types.NewBalance(50)}))

	locked, err := ledger.LockedBalance(ctx, "delegator-1")
	require.NoError(t, err)
	require.Equal(t, types.NewBalance(150), locked)
}

func TestMultipleDelegationsToSameCandidate(t *testing.T) {
	k, ledger, ctx := newTestKeeper(t)
	ledger.Fund("collator-1", types.NewBalance(1000))
	require.NoError(t, k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(500)}))

	names := []string{"d1", "d2", "d3"}
	for i, name := range names {
		ledger.Fund(name, types.NewBalance(1000))
		require.NoError(t, k.Delegate(ctx, types.MsgDelegate{
			Delegator: name, Candidate: "collator-1", Amount: types.NewBalance(int64(10 + i)), CandidateDelegationCountHint: uint32(i),
		}))
	}
}

func TestScheduleAndExecuteRevokeDelegation(t *testing.T) {
	k, ledger, ctx := newTestKeeper(t)
	ledger.Fund("collator-1", types.NewBalance(1000))
	ledger.Fund("delegator-1", types.NewBalance(1000))

	require.NoError(t, k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(500)}))
	require.NoError(t, k.Delegate(ctx, types.MsgDelegate{Delegator: "delegator-1", Candidate: "collator-1", Amount: types.NewBalance(100)}))

	require.NoError(t, k.ScheduleRevokeDelegation(ctx, types.MsgScheduleRevokeDelegation{Delegator: "delegator-1", Candidate: "collator-1"}))

	err := k.ExecuteDelegationRequest(ctx, types.MsgExecuteDelegationRequest{Delegator: "delegator-1", Candidate: "collator-1"})
	require.ErrorIs(t, err, types.ErrInvalidSchedule)

	require.NoError(t, k.RoundInfo.Set(ctx, types.RoundInfo{Current: 10, First: 0, Length: 10}))
	require.NoError(t, k.ExecuteDelegationRequest(ctx, types.MsgExecuteDelegationRequest{Delegator: "delegator-1", Candidate: "collator-1"}))

	locked, err := ledger.LockedBalance(ctx, "delegator-1")
	require.NoError(t, err)
	require.True(t, locked.IsZero())
}

func TestExecuteLeaveCandidatesEnforcesDelegationCountHint(t *testing.T) {
	k, ledger, ctx := newTestKeeper(t)
	ledger.Fund("collator-1", types.NewBalance(1000))
	ledger.Fund("delegator-1", types.NewBalance(1000))

	require.NoError(t, k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(500)}))
	require.NoError(t, k.Delegate(ctx, types.MsgDelegate{Delegator: "delegator-1", Candidate: "collator-1", Amount: types.NewBalance(100)}))
	require.NoError(t, k.ScheduleLeaveCandidates(ctx, types.MsgScheduleLeaveCandidates{Candidate: "collator-1", CandidateCountHint: 1}))
	require.NoError(t, k.RoundInfo.Set(ctx, types.RoundInfo{Current: 10, First: 0, Length: 10}))

	err := k.ExecuteLeaveCandidates(ctx, types.MsgExecuteLeaveCandidates{Candidate: "collator-1", DelegationCountHint: 0})
	require.ErrorIs(t, err, types.ErrTooLowDelegationCountHint)

	require.NoError(t, k.ExecuteLeaveCandidates(ctx, types.MsgExecuteLeaveCandidates{Candidate: "collator-1", DelegationCountHint: 1}))

	_, err = k.CandidatePool.Get(ctx, "collator-1")
	require.Error(t, err)
}

func TestRoundAdvanceSelectsAndPaysOut(t *testing.T) {
	k, ledger, ctx := newTestKeeper(t)
	ledger.Fund("collator-1", types.NewBalance(1000))
	ledger.Fund("delegator-1", types.NewBalance(1000))

	require.NoError(t, k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(500)}))
	require.NoError(t, k.Delegate(ctx, types.MsgDelegate{Delegator: "delegator-1", Candidate: "collator-1", Amount: types.NewBalance(200)}))

	require.NoError(t, k.RoundInfo.Set(ctx, types.RoundInfo{Current: 0, First: 0, Length: 10}))
	require.NoError(t, k.NewSession(ctx, 10))

	selected, err := k.SelectedCandidates.Get(ctx)
	require.NoError(t, err)
	require.Contains(t, selected, types.AccountId("collator-1"))

	// Simulate round 1's block production crediting collator-1 with a
	// point, the authoring record the payout engine pays out against.
	require.NoError(t, k.AwardPoints(ctx, 1, "collator-1"))

	before, err := ledger.SpendableBalance(ctx, "collator-1")
	require.NoError(t, err)

	// RewardPaymentDelay is 2: round 1's payout is only prepared once the
	// round counter reaches 3, on the second of these crossings; the third
	// drips again from the same payout.
	require.NoError(t, k.NewSession(ctx, 20))
	require.NoError(t, k.NewSession(ctx, 30))
	require.NoError(t, k.NewSession(ctx, 40))

	after, err := ledger.SpendableBalance(ctx, "collator-1")
	require.NoError(t, err)
	require.True(t, after.GT(before), "collator should have been paid its points-weighted share of round 1's reward")
}
