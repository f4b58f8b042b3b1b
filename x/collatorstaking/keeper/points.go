package keeper

import "context"

// AwardPoints implements the points ledger (spec §4.5 step / §2 item 10):
// a block-authoring collator accrues one point per block it produces. The
// payout engine reads these back as the p/P_tot weighting of a round's
// reward: a selected collator that never authors a block earns no points
// and is paid nothing for that round.
func (k Keeper) AwardPoints(ctx context.Context, round uint32, author string) error {
	current, err := k.AwardedPts.Get(ctx, collectionsPairKey(round, author))
	if err != nil {
		current = 0
	}
	if err := k.AwardedPts.Set(ctx, collectionsPairKey(round, author), current+1); err != nil {
		return err
	}

	total, err := k.Points.Get(ctx, roundKey(round))
	if err != nil {
		total = 0
	}
	return k.Points.Set(ctx, roundKey(round), total+1)
}
