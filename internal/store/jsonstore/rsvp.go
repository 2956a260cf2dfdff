package jsonstore

import (
	"sort"
	"sync"

	"github.com/familia-santos/aurora-site/internal/db/models"
)

// rsvpStore keeps the RSVP ledger in rsvps.json. Entries are append
// only; deletion is keyed by the CreatedAt timestamp.
type rsvpStore struct {
	mu   sync.Mutex
	path string
}

func (s *rsvpStore) List() ([]models.RSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.RSVP](s.path)
	if err != nil {
		return nil, err
	}

	// both backends list rsvps in creation order
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt < items[j].CreatedAt
	})

	return items, nil
}

func (s *rsvpStore) Create(rsvp models.RSVP) (*models.RSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.RSVP](s.path)
	if err != nil {
		return nil, err
	}

	var maxID uint64
	for i := range items {
		if items[i].ID > maxID {
			maxID = items[i].ID
		}
	}

	rsvp.ID = maxID + 1

	items = append(items, rsvp)
	if err := writeAll(s.path, items); err != nil {
		return nil, err
	}

	return &rsvp, nil
}

func (s *rsvpStore) DeleteByCreatedAt(key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.RSVP](s.path)
	if err != nil {
		return 0, err
	}

	kept := items[:0]

	var removed int64
	for i := range items {
		if items[i].CreatedAt == key {
			removed++
			continue
		}

		kept = append(kept, items[i])
	}

	if removed == 0 {
		return 0, nil
	}

	return removed, writeAll(s.path, kept)
}
