package service

import (
	"fmt"
	"log"
	"strconv"
	"sync"

	"kfc-ordering/internal/domain"
)

// DataStore owns the in-memory snapshot, the single source of truth for the
// persisted collections. Every mutation builds a replacement snapshot, saves
// it through the blob store, and only then swaps it in — readers never see a
// partially updated collection, and a failed save leaves memory unchanged.
type DataStore struct {
	mu    sync.Mutex
	snap  domain.Snapshot
	store BlobStore
	seq   int
}

// NewDataStore loads the persisted snapshot, seeding and persisting the
// default catalog and users when the store key is absent. A snapshot that
// cannot be loaded is fatal to the caller; nothing is repaired or discarded.
func NewDataStore(store BlobStore) (*DataStore, error) {
	snap, found, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if !found {
		snap = domain.SeedSnapshot()
		if err := store.Save(snap); err != nil {
			return nil, fmt.Errorf("persist seed snapshot: %w", err)
		}
		log.Printf("[store] no snapshot found, seeded default catalog (%d items, %d users)", len(snap.Menu), len(snap.Users))
	}
	return &DataStore{
		snap:  snap,
		store: store,
		seq:   maxNumericID(snap),
	}, nil
}

func maxNumericID(snap domain.Snapshot) int {
	max := 0
	scan := func(id string) {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	for _, m := range snap.Menu {
		scan(m.ID)
	}
	for _, o := range snap.Orders {
		scan(o.ID)
	}
	for _, u := range snap.Users {
		scan(u.ID)
	}
	return max
}

// Snapshot returns a deep copy of the current state.
func (d *DataStore) Snapshot() domain.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snap.Clone()
}

func (d *DataStore) Menu() []domain.MenuItem {
	return d.Snapshot().Menu
}

func (d *DataStore) Orders() []domain.Order {
	return d.Snapshot().Orders
}

func (d *DataStore) Users() []domain.User {
	return d.Snapshot().Users
}

// NextID hands out ids from a strictly increasing sequence seeded past every
// id already in the snapshot. Ids are unique even within a single instant.
func (d *DataStore) NextID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return strconv.Itoa(d.seq)
}

// NextOrderNumber derives the display order number from the same sequence,
// so rapid successive orders never collide. Display-only formatting.
func (d *DataStore) NextOrderNumber() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return fmt.Sprintf("KFC%06d", d.seq)
}

// replace persists next and swaps it in atomically.
func (d *DataStore) replace(next domain.Snapshot) error {
	if err := d.store.Save(next); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	d.snap = next
	return nil
}

// Update applies fn to a copy of the current snapshot, persists the result,
// and swaps it in. All mutation of the persisted collections goes through
// here; "persist after every mutation" is a post-condition, not a caller
// responsibility.
func (d *DataStore) Update(fn func(*domain.Snapshot)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := d.snap.Clone()
	fn(&next)
	return d.replace(next)
}
