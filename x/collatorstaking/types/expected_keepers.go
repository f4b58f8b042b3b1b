package types

import "context"

// LedgerKeeper is the minimal balance-moving surface this module needs
// from its host chain. It plays the role the teacher module's BankKeeper
// interface plays, narrowed to what collator staking actually calls:
// locking/unlocking a delegator or candidate's stake, and minting new
// issuance for round rewards. A host embeds this module by handing it a
// concrete implementation; testutil/ledgermock provides one for tests.
type LedgerKeeper interface {
	// LockedBalance returns the amount currently bonded by addr, i.e. not
	// spendable while locked as a candidate self-bond or delegation.
	LockedBalance(ctx context.Context, addr AccountId) (Balance, error)

	// SpendableBalance returns addr's balance available to bond.
	SpendableBalance(ctx context.Context, addr AccountId) (Balance, error)

	// SetLock reconciles addr's lock to exactly amount (not an increment),
	// per the COLLATOR_LOCK/DELEGATOR_LOCK reconciliation rule.
	SetLock(ctx context.Context, addr AccountId, amount Balance) error

	// MintReward issues newly-created tokens directly to addr's spendable
	// balance, used for commission, pro-rata delegator rewards, and the
	// parachain bond reserve.
	MintReward(ctx context.Context, addr AccountId, amount Balance) error
}

// ValidatorRegistration is the host chain's consensus-key registry as seen
// by the engine. The engine only calls IsRegistered, when invulnerables are
// set; it does not call RegisterCollator or DeregisterCollator when
// selection changes.
// Optional: a host that doesn't need this can pass a no-op implementation.
type ValidatorRegistration interface {
	RegisterCollator(ctx context.Context, candidate AccountId) error
	DeregisterCollator(ctx context.Context, candidate AccountId) error

	// IsRegistered reports whether candidate already holds a consensus-key
	// registration with the host chain, queried before accepting it as an
	// invulnerable (spec §6: invulnerables must already be registered
	// validators, since they bypass normal candidate selection entirely).
	IsRegistered(ctx context.Context, candidate AccountId) (bool, error)
}

// EventSink decouples event emission from sdk.Context.EventManager(), so
// the engine's keeper methods can run against a plain context.Context in
// tests and in non-Cosmos hosts alike. A host embedding the engine in a
// cosmos-sdk app can back this with the real EventManager; this repository
// ships no such adapter.
type EventSink interface {
	EmitEvent(ctx context.Context, event any)
}

// NoOpEventSink discards every event, useful for tests that don't assert
// on emitted events.
type NoOpEventSink struct{}

func (NoOpEventSink) EmitEvent(context.Context, any) {}
