// Package memstore is a minimal in-memory cosmossdk.io/core/store.KVStoreService
// implementation used by the collator-staking keeper's unit tests. It stands in
// for the full baseapp/IAVL store stack a production host provides.
package memstore

import (
	"context"
	"sort"
	"sync"

	"cosmossdk.io/core/store"
)

// Store is a shared, in-memory key-value store.
type Store struct {
	mu     sync.Mutex
	data   map[string][]byte
	keys   []string
	sorted bool
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte), sorted: true}
}

// OpenKVStore implements store.KVStoreService. The context is unused: the
// store is a single shared instance, which is all the keeper's unit tests
// need.
func (s *Store) OpenKVStore(context.Context) store.KVStore {
	return &kvStore{s: s}
}

type kvStore struct {
	s *Store
}

func (k *kvStore) Get(key []byte) ([]byte, error) {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	v, ok := k.s.data[string(key)]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (k *kvStore) Has(key []byte) (bool, error) {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	_, ok := k.s.data[string(key)]
	return ok, nil
}

func (k *kvStore) Set(key, value []byte) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	sk := string(key)
	if _, exists := k.s.data[sk]; !exists {
		k.s.keys = append(k.s.keys, sk)
		k.s.sorted = false
	}
	v := make([]byte, len(value))
	copy(v, value)
	k.s.data[sk] = v
	return nil
}

func (k *kvStore) Delete(key []byte) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	sk := string(key)
	if _, exists := k.s.data[sk]; !exists {
		return nil
	}
	delete(k.s.data, sk)
	for i, existing := range k.s.keys {
		if existing == sk {
			k.s.keys = append(k.s.keys[:i], k.s.keys[i+1:]...)
			break
		}
	}
	return nil
}

func (k *kvStore) Iterator(start, end []byte) (store.Iterator, error) {
	return k.newIterator(start, end, false), nil
}

func (k *kvStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return k.newIterator(start, end, true), nil
}

func (k *kvStore) newIterator(start, end []byte, reverse bool) store.Iterator {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	if !k.s.sorted {
		sort.Strings(k.s.keys)
		k.s.sorted = true
	}

	var selected []string
	for _, key := range k.s.keys {
		if start != nil && key < string(start) {
			continue
		}
		if end != nil && key >= string(end) {
			continue
		}
		selected = append(selected, key)
	}
	if reverse {
		for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
			selected[i], selected[j] = selected[j], selected[i]
		}
	}

	return &iterator{s: k.s, keys: selected, start: start, end: end}
}

type iterator struct {
	s     *Store
	keys  []string
	pos   int
	start []byte
	end   []byte
}

func (it *iterator) Domain() (start, end []byte) { return it.start, it.end }
func (it *iterator) Valid() bool                 { return it.pos < len(it.keys) }
func (it *iterator) Next()                       { it.pos++ }
func (it *iterator) Key() []byte                 { return []byte(it.keys[it.pos]) }

func (it *iterator) Value() []byte {
	it.s.mu.Lock()
	defer it.s.mu.Unlock()
	return it.s.data[it.keys[it.pos]]
}

func (it *iterator) Error() error { return nil }
func (it *iterator) Close() error { return nil }
