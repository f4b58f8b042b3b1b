package types

import "cosmossdk.io/math"

// BondWithAutoCompound is a delegator bond annotated with its auto-compound
// percent at the moment a round's exposure was snapshotted, so payout does
// not need to re-read (and risk racing) the live auto-compound registry.
type BondWithAutoCompound struct {
	Owner          AccountId `json:"owner"`
	Amount         Balance   `json:"amount"`
	AutoCompound   Percent   `json:"auto_compound"`
}

// CollatorSnapshot freezes one selected candidate's exposure for a round:
// its own bond, the delegations counted toward its weight (request-adjusted
// for any scheduled decrease/revoke not yet executed), and the total. Taken
// once per round at selection time and never mutated afterward; payout
// reads it back by (round, candidate).
type CollatorSnapshot struct {
	Bond        Balance                `json:"bond"`
	Delegations []BondWithAutoCompound `json:"delegations"`
	Total        Balance                `json:"total"`
}

// DelegationSum returns the sum of every delegator's snapshotted amount.
func (s CollatorSnapshot) DelegationSum() Balance {
	total := math.ZeroInt()
	for _, d := range s.Delegations {
		total = total.Add(d.Amount)
	}
	return total
}

// DelayedPayout is the per-round record computed once, at the round
// boundary where the round's RewardPaymentDelay has elapsed, and consumed
// by the drip-fed payout job over the following rounds: the total round
// issuance, the collator commission rate in effect when it was prepared,
// and the total staking reward (the issuance left after the parachain bond
// reserve), which is split across authors by their points.
type DelayedPayout struct {
	Round               Round   `json:"round"`
	RoundIssuance       Balance `json:"round_issuance"`
	CollatorCommission  Perbill `json:"collator_commission"`
	TotalStakingReward  Balance `json:"total_staking_reward"`
}
