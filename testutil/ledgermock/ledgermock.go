// Package ledgermock is a minimal in-memory implementation of
// types.LedgerKeeper, standing in for a host chain's bank/staking module
// in keeper unit tests and the cmd/collatord demo CLI.
package ledgermock

import (
	"context"
	"sync"

	"cosmossdk.io/math"

	"github.com/tokenize-x/collator-staking/x/collatorstaking/types"
)

// Ledger tracks a spendable balance and a bonded lock per account.
type Ledger struct {
	mu        sync.Mutex
	spendable map[types.AccountId]types.Balance
	locked    map[types.AccountId]types.Balance
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{
		spendable: make(map[types.AccountId]types.Balance),
		locked:    make(map[types.AccountId]types.Balance),
	}
}

// Fund credits addr's spendable balance, used to seed test accounts.
func (l *Ledger) Fund(addr types.AccountId, amount types.Balance) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.spendable[addr]
	if !ok {
		current = math.ZeroInt()
	}
	l.spendable[addr] = current.Add(amount)
}

func (l *Ledger) LockedBalance(_ context.Context, addr types.AccountId) (types.Balance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	amount, ok := l.locked[addr]
	if !ok {
		return math.ZeroInt(), nil
	}
	return amount, nil
}

func (l *Ledger) SpendableBalance(_ context.Context, addr types.AccountId) (types.Balance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	amount, ok := l.spendable[addr]
	if !ok {
		return math.ZeroInt(), nil
	}
	return amount, nil
}

// SetLock reconciles addr's lock to exactly amount, moving the delta
// between spendable and locked rather than tracking them independently.
func (l *Ledger) SetLock(_ context.Context, addr types.AccountId, amount types.Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	currentLocked, ok := l.locked[addr]
	if !ok {
		currentLocked = math.ZeroInt()
	}
	currentSpendable, ok := l.spendable[addr]
	if !ok {
		currentSpendable = math.ZeroInt()
	}

	delta := amount.Sub(currentLocked)
	l.locked[addr] = amount
	l.spendable[addr] = currentSpendable.Sub(delta)
	return nil
}

func (l *Ledger) MintReward(_ context.Context, addr types.AccountId, amount types.Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.spendable[addr]
	if !ok {
		current = math.ZeroInt()
	}
	l.spendable[addr] = current.Add(amount)
	return nil
}

var _ types.LedgerKeeper = (*Ledger)(nil)

// NoOpValidatorRegistration discards every registration call, used when a
// host doesn't wire collator selection into a consensus-key registry.
type NoOpValidatorRegistration struct{}

func (NoOpValidatorRegistration) RegisterCollator(context.Context, types.AccountId) error   { return nil }
func (NoOpValidatorRegistration) DeregisterCollator(context.Context, types.AccountId) error { return nil }

// IsRegistered always reports true: a host that doesn't wire a real
// consensus-key registry has no basis to reject any candidate as an
// invulnerable, so the no-op stand-in stays permissive.
func (NoOpValidatorRegistration) IsRegistered(context.Context, types.AccountId) (bool, error) {
	return true, nil
}

var _ types.ValidatorRegistration = NoOpValidatorRegistration{}
