package types

import (
	"sort"

	"cosmossdk.io/math"
)

// AccountId identifies a candidate or delegator. The engine never
// interprets the string itself; it is whatever the host chain's address
// codec produces.
type AccountId = string

// Balance is a non-negative token amount.
type Balance = math.Int

// NewBalance builds a Balance from a raw int64 amount.
func NewBalance(amount int64) Balance {
	return math.NewInt(amount)
}

// Round is a monotonically increasing round number.
type Round = uint32

// Bond pairs an owner with a staked amount. It is the atomic entry in every
// OrderedSet: a candidate's self-bond, or a single delegator's delegation
// to one candidate.
type Bond struct {
	Owner  AccountId `json:"owner"`
	Amount Balance   `json:"amount"`
}

// OrderedSet is a deduplicated collection of Bonds kept sorted ascending by
// Amount (ties broken by Owner), mirroring the original pallet's
// "sort ascending, highest stake last" convention. Every mutation returns a
// fresh, re-sorted copy so callers can reason about the result without
// aliasing concerns.
type OrderedSet struct {
	Bonds []Bond `json:"bonds"`
}

// NewOrderedSet returns an empty set.
func NewOrderedSet() OrderedSet {
	return OrderedSet{Bonds: []Bond{}}
}

func compareBonds(a, b Bond) int {
	switch {
	case a.Amount.LT(b.Amount):
		return -1
	case a.Amount.GT(b.Amount):
		return 1
	case a.Owner < b.Owner:
		return -1
	case a.Owner > b.Owner:
		return 1
	default:
		return 0
	}
}

func (s OrderedSet) sorted() OrderedSet {
	out := make([]Bond, len(s.Bonds))
	copy(out, s.Bonds)
	sort.Slice(out, func(i, j int) bool { return compareBonds(out[i], out[j]) < 0 })
	return OrderedSet{Bonds: out}
}

// IndexOf returns the index of owner's bond, or -1 if absent.
func (s OrderedSet) IndexOf(owner AccountId) int {
	for i, b := range s.Bonds {
		if b.Owner == owner {
			return i
		}
	}
	return -1
}

// Get returns owner's bond and whether it is present.
func (s OrderedSet) Get(owner AccountId) (Bond, bool) {
	if i := s.IndexOf(owner); i >= 0 {
		return s.Bonds[i], true
	}
	return Bond{}, false
}

// Insert adds a new bond. It returns false without modifying the set if
// owner already has a bond; callers wanting to change an existing amount
// must use Update.
func (s OrderedSet) Insert(bond Bond) (OrderedSet, bool) {
	if _, ok := s.Get(bond.Owner); ok {
		return s, false
	}
	next := make([]Bond, len(s.Bonds), len(s.Bonds)+1)
	copy(next, s.Bonds)
	next = append(next, bond)
	return OrderedSet{Bonds: next}.sorted(), true
}

// Update replaces owner's bond amount in place, re-sorting to restore
// ascending order. Returns false if owner has no bond.
func (s OrderedSet) Update(owner AccountId, amount Balance) (OrderedSet, bool) {
	i := s.IndexOf(owner)
	if i < 0 {
		return s, false
	}
	next := make([]Bond, len(s.Bonds))
	copy(next, s.Bonds)
	next[i] = Bond{Owner: owner, Amount: amount}
	return OrderedSet{Bonds: next}.sorted(), true
}

// Remove deletes owner's bond. Returns false if owner had none.
func (s OrderedSet) Remove(owner AccountId) (OrderedSet, bool) {
	i := s.IndexOf(owner)
	if i < 0 {
		return s, false
	}
	next := make([]Bond, 0, len(s.Bonds)-1)
	next = append(next, s.Bonds[:i]...)
	next = append(next, s.Bonds[i+1:]...)
	return OrderedSet{Bonds: next}, true
}

// Len returns the number of bonds in the set.
func (s OrderedSet) Len() int {
	return len(s.Bonds)
}

// Lowest returns the smallest bond (front of the ascending order).
func (s OrderedSet) Lowest() (Bond, bool) {
	if len(s.Bonds) == 0 {
		return Bond{}, false
	}
	sorted := s.sorted()
	return sorted.Bonds[0], true
}

// Highest returns the largest bond (back of the ascending order).
func (s OrderedSet) Highest() (Bond, bool) {
	if len(s.Bonds) == 0 {
		return Bond{}, false
	}
	sorted := s.sorted()
	return sorted.Bonds[len(sorted.Bonds)-1], true
}

// Total sums every bond's amount.
func (s OrderedSet) Total() Balance {
	total := math.ZeroInt()
	for _, b := range s.Bonds {
		total = total.Add(b.Amount)
	}
	return total
}

// TopN returns the N highest bonds, descending, when the set is sorted
// ascending. Collator selection does not use it; it sorts candidates
// itself.
func (s OrderedSet) TopN(n int) []Bond {
	sorted := s.sorted()
	if n > len(sorted.Bonds) {
		n = len(sorted.Bonds)
	}
	out := make([]Bond, n)
	for i := 0; i < n; i++ {
		out[i] = sorted.Bonds[len(sorted.Bonds)-1-i]
	}
	return out
}
