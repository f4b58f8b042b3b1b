package types

// DelegationBucket holds the delegations backing one candidate, split into
// a "top" bucket (the delegations that count toward the candidate's
// selection weight and reward exposure) and a "bottom" bucket (delegations
// that exist but are currently excluded from top, because the candidate's
// top bucket is full and their amount did not clear the lowest top entry).
//
// Capacity of the top bucket is MaxTopDelegationsPerCandidate; capacity of
// the bottom bucket is MaxBottomDelegationsPerCandidate. Both are
// OrderedSets so the lowest/highest entries are always a cheap lookup.
type DelegationBucket struct {
	Top    OrderedSet `json:"top"`
	Bottom OrderedSet `json:"bottom"`
}

// NewDelegationBucket returns an empty bucket pair.
func NewDelegationBucket() DelegationBucket {
	return DelegationBucket{Top: NewOrderedSet(), Bottom: NewOrderedSet()}
}

// TotalStaked sums every delegation, top and bottom, backing the candidate.
func (b DelegationBucket) TotalStaked() Balance {
	return b.Top.Total().Add(b.Bottom.Total())
}

// CountingStaked sums only the top bucket, the amount that counts toward
// selection weight and reward exposure.
func (b DelegationBucket) CountingStaked() Balance {
	return b.Top.Total()
}

// Add inserts a new delegation into whichever bucket it belongs in:
//   - if top has room, or the amount exceeds the current lowest top entry,
//     it goes into top, bumping the previous lowest top entry down to
//     bottom if top was already full;
//   - otherwise it goes into bottom; if bottom is full, the amount must
//     exceed the lowest bottom entry, which is then kicked out.
//
// Returns the updated bucket, whether the delegation was placed in top,
// whether bottom was full and the amount did not exceed its lowest entry
// (signalling ErrCannotDelegateLessThanOrEqualToLowestBottomWhenFull to the
// caller), and the bond "kicked" out of the bucket entirely when bottom was
// already full and had to make room for a bumped top entry or for the new
// delegation itself — the caller
// is responsible for unwinding that delegator's state and lock, since its
// bond no longer backs this candidate at all.
func (b DelegationBucket) Add(bond Bond, maxTop, maxBottom int) (bucket DelegationBucket, placedInTop bool, bottomFull bool, kicked Bond, wasKicked bool) {
	if b.Top.Len() < maxTop {
		top, _ := b.Top.Insert(bond)
		return DelegationBucket{Top: top, Bottom: b.Bottom}, true, false, Bond{}, false
	}

	lowest, _ := b.Top.Lowest()
	if bond.Amount.GT(lowest.Amount) {
		top, _ := b.Top.Remove(lowest.Owner)
		top, _ = top.Insert(bond)

		bottom := b.Bottom
		if bottom.Len() >= maxBottom {
			evictLowest, ok := bottom.Lowest()
			if ok {
				bottom, _ = bottom.Remove(evictLowest.Owner)
				kicked, wasKicked = evictLowest, true
			}
		}
		bottom, _ = bottom.Insert(lowest)
		return DelegationBucket{Top: top, Bottom: bottom}, true, false, kicked, wasKicked
	}

	if b.Bottom.Len() >= maxBottom {
		lowestBottom, ok := b.Bottom.Lowest()
		if !ok || !bond.Amount.GT(lowestBottom.Amount) {
			return b, false, true, Bond{}, false
		}
		bottom, _ := b.Bottom.Remove(lowestBottom.Owner)
		bottom, _ = bottom.Insert(bond)
		return DelegationBucket{Top: b.Top, Bottom: bottom}, false, false, lowestBottom, true
	}
	bottom, _ := b.Bottom.Insert(bond)
	return DelegationBucket{Top: b.Top, Bottom: bottom}, false, false, Bond{}, false
}

// Remove deletes owner's delegation from whichever bucket holds it,
// promoting the highest bottom entry into top when a top slot opens up.
func (b DelegationBucket) Remove(owner AccountId) DelegationBucket {
	if top, ok := b.Top.Remove(owner); ok {
		bottom := b.Bottom
		if promoted, has := bottom.Highest(); has {
			bottom, _ = bottom.Remove(promoted.Owner)
			top, _ = top.Insert(promoted)
		}
		return DelegationBucket{Top: top, Bottom: bottom}
	}
	if bottom, ok := b.Bottom.Remove(owner); ok {
		return DelegationBucket{Top: b.Top, Bottom: bottom}
	}
	return b
}

// UpdateAmount rewrites owner's delegation amount and re-homes top/bottom
// membership so the invariant "top holds the highest MaxTop delegations"
// keeps holding after a bond-more or bond-less. Growing owner's amount
// enough to bump another delegator out of top can, in turn, kick that
// delegator out of the bucket entirely if bottom is already full; the
// caller must unwind the kicked delegator the same way Add's caller does.
func (b DelegationBucket) UpdateAmount(owner AccountId, amount Balance, maxTop, maxBottom int) (bucket DelegationBucket, kicked Bond, wasKicked bool) {
	removed := b.Remove(owner)
	updated, _, _, kicked, wasKicked := removed.Add(Bond{Owner: owner, Amount: amount}, maxTop, maxBottom)
	return updated, kicked, wasKicked
}
