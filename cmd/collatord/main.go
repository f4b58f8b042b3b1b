// Command collatord is a standalone demo driving the collator staking
// engine end to end against the in-memory ledger and store, without any
// cosmos-sdk baseapp wiring: join a candidate, delegate to it, advance a
// round, and print the resulting payout. Intended as a runnable
// illustration of the engine's public operations, not a production node.
package main

import (
	"context"
	"fmt"
	"os"

	"cosmossdk.io/log"

	"github.com/spf13/cobra"

	"github.com/tokenize-x/collator-staking/testutil/ledgermock"
	"github.com/tokenize-x/collator-staking/testutil/memstore"
	"github.com/tokenize-x/collator-staking/x/collatorstaking/keeper"
	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collatord",
		Short: "Demo driver for the collator staking engine",
	}
	cmd.AddCommand(demoCmd())
	return cmd
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted candidate/delegate/payout scenario against an in-memory ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context())
		},
	}
}

func runDemo(ctx context.Context) error {
	store := memstore.New()
	ledger := ledgermock.New()
	logger := log.NewLogger(os.Stdout)

	k := keeper.NewKeeper(store, logger, "authority", ledger, ledgermock.NoOpValidatorRegistration{}, types.NoOpEventSink{})

	genesis := types.DefaultGenesisState()
	genesis.TotalSelected = 1
	genesis.RoundInfo = types.RoundInfo{Current: 1, First: 0, Length: 10}
	genesis.CollatorCommission = types.PerbillFromPercent(10)
	genesis.InflationConfig = types.InflationConfig{
		ExpectMin:   types.NewBalance(100),
		ExpectIdeal: types.NewBalance(200),
		ExpectMax:   types.NewBalance(300),
		AnnualRange: types.InflationRange{Min: types.NewPerbill(10_000_000), Ideal: types.NewPerbill(50_000_000), Max: types.NewPerbill(100_000_000)},
		RoundRange:  types.InflationRange{Min: types.NewPerbill(10_000_000), Ideal: types.NewPerbill(50_000_000), Max: types.NewPerbill(100_000_000)},
	}
	if err := k.InitGenesis(ctx, *genesis); err != nil {
		return err
	}

	ledger.Fund("collator-1", types.NewBalance(1000))
	ledger.Fund("delegator-1", types.NewBalance(1000))

	if err := k.JoinCandidates(ctx, types.MsgJoinCandidates{Candidate: "collator-1", Amount: types.NewBalance(500)}); err != nil {
		return fmt.Errorf("join_candidates: %w", err)
	}
	fmt.Println("collator-1 joined with bond 500")

	if err := k.Delegate(ctx, types.MsgDelegate{Delegator: "delegator-1", Candidate: "collator-1", Amount: types.NewBalance(200)}); err != nil {
		return fmt.Errorf("delegate: %w", err)
	}
	fmt.Println("delegator-1 delegated 200 to collator-1")

	if err := k.Staked.Set(ctx, uint64(1), types.NewBalance(700)); err != nil {
		return err
	}
	if err := k.AwardPoints(ctx, 1, "collator-1"); err != nil {
		return err
	}
	if err := k.NewSession(ctx, 10); err != nil {
		return fmt.Errorf("new_session: %w", err)
	}
	fmt.Println("round advanced")

	for i := 0; i < 3; i++ {
		if err := k.NewSession(ctx, uint64(20+10*i)); err != nil {
			return fmt.Errorf("new_session drip %d: %w", i, err)
		}
	}

	collatorBalance, err := ledger.SpendableBalance(ctx, "collator-1")
	if err != nil {
		return err
	}
	delegatorBalance, err := ledger.SpendableBalance(ctx, "delegator-1")
	if err != nil {
		return err
	}
	fmt.Printf("collator-1 spendable balance after payout: %s\n", collatorBalance)
	fmt.Printf("delegator-1 spendable balance after payout: %s\n", delegatorBalance)
	return nil
}
