package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name used for the error codespace and,
	// when embedded in a Cosmos app, the module's store key.
	ModuleName = "collatorstaking"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

// KVStore key prefixes. One prefix per persisted entity kind from spec §6
// ("Persisted state layout"): a flat key-value map per entity kind.
var (
	ParamsKey                = collections.NewPrefix(0)
	RoundInfoKey             = collections.NewPrefix(1)
	InflationConfigKey       = collections.NewPrefix(2)
	ParachainBondConfigKey   = collections.NewPrefix(3)
	TotalKey                 = collections.NewPrefix(4)
	TotalSelectedKey         = collections.NewPrefix(5)
	CollatorCommissionKey    = collections.NewPrefix(6)
	InvulnerablesKey         = collections.NewPrefix(7)
	CandidatePoolKey         = collections.NewPrefix(8)
	SelectedCandidatesKey    = collections.NewPrefix(9)
	CandidateInfoKey         = collections.NewPrefix(10)
	TopDelegationsKey        = collections.NewPrefix(11)
	BottomDelegationsKey     = collections.NewPrefix(12)
	DelegatorStateKey        = collections.NewPrefix(13)
	ScheduledRequestKey      = collections.NewPrefix(14)
	AutoCompoundKey          = collections.NewPrefix(15)
	PointsKey                = collections.NewPrefix(16)
	AwardedPtsKey            = collections.NewPrefix(17)
	AtStakeKey               = collections.NewPrefix(18)
	StakedKey                = collections.NewPrefix(19)
	DelayedPayoutsKey        = collections.NewPrefix(20)
)
