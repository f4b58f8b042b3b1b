package types

import "cosmossdk.io/math"

// RoundInfo tracks the current round's position in the block stream.
// Current is the round number; First is the block height the round began
// at; Length is how many blocks the round lasts, a governance-settable
// parameter mirrored here for convenience at the point of use.
type RoundInfo struct {
	Current Round  `json:"current"`
	First   uint64 `json:"first"`
	Length  uint32 `json:"length"`
}

// ShouldAdvance reports whether the round boundary has been crossed as of
// the given block height.
func (r RoundInfo) ShouldAdvance(height uint64) bool {
	return height >= r.First+uint64(r.Length)
}

// Next returns the RoundInfo for the round beginning at height.
func (r RoundInfo) Next(height uint64) RoundInfo {
	return RoundInfo{Current: r.Current + 1, First: height, Length: r.Length}
}

// InflationRange is a monotonic min/ideal/max band of round (or annual)
// inflation rates, expressed as Perbill. Governance sets it via
// SetInflation, which stores the same band as both the annual and the
// round range; the annual rates are not converted to per-round rates.
type InflationRange struct {
	Min   Perbill `json:"min"`
	Ideal Perbill `json:"ideal"`
	Max   Perbill `json:"max"`
}

// InflationConfig bundles the expected staked-amount band (used to widen
// or narrow the inflation rate toward Ideal) with the annual and round
// inflation ranges; round issuance is computed from the round range.
type InflationConfig struct {
	ExpectMin   Balance        `json:"expect_min"`
	ExpectIdeal Balance        `json:"expect_ideal"`
	ExpectMax   Balance        `json:"expect_max"`
	AnnualRange InflationRange `json:"annual_range"`
	RoundRange  InflationRange `json:"round_range"`
}

// ComputeIssuance derives the round's token issuance from total staked
// amount, bounded by the round inflation band: when staked is within
// [ExpectMin, ExpectMax] the Ideal rate applies, below ExpectMin the Min
// rate applies, above ExpectMax the Max rate applies. This mirrors the
// original pallet's compute_issuance bounded-band behavior exactly (no
// interpolation between bands).
func (c InflationConfig) ComputeIssuance(totalStaked Balance) Balance {
	rate := c.RoundRange.Ideal
	switch {
	case totalStaked.LT(c.ExpectMin):
		rate = c.RoundRange.Min
	case totalStaked.GT(c.ExpectMax):
		rate = c.RoundRange.Max
	}
	return rate.MulFloor(totalStaked)
}

// ParachainBondConfig is the governance-controlled reserve that skims a
// share of each round's issuance before collator/delegator payouts.
type ParachainBondConfig struct {
	Account AccountId `json:"account"`
	Percent Percent   `json:"percent"`
}

// ReserveCut returns the share of issuance routed to the parachain bond
// reserve account, and the remainder left for collator payouts.
func (p ParachainBondConfig) ReserveCut(issuance Balance) (reserve Balance, remainder Balance) {
	if p.Account == "" || p.Percent == 0 {
		return math.ZeroInt(), issuance
	}
	reserve = PerbillFromPercent(p.Percent).MulFloor(issuance)
	return reserve, issuance.Sub(reserve)
}
