package jsonstore

import (
	"sync"

	"github.com/familia-santos/aurora-site/internal/db/models"
	"github.com/familia-santos/aurora-site/internal/store"
)

// supporterStore keeps the supporter registry in supporters.json.
type supporterStore struct {
	mu   sync.Mutex
	path string
}

func (s *supporterStore) List() ([]models.Supporter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return readAll[models.Supporter](s.path)
}

func (s *supporterStore) Create(supporter models.Supporter) (*models.Supporter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.Supporter](s.path)
	if err != nil {
		return nil, err
	}

	var maxID uint64
	for i := range items {
		if items[i].ID > maxID {
			maxID = items[i].ID
		}
	}

	supporter.ID = maxID + 1

	items = append(items, supporter)
	if err := writeAll(s.path, items); err != nil {
		return nil, err
	}

	return &supporter, nil
}

func (s *supporterStore) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.Supporter](s.path)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)

			return writeAll(s.path, items)
		}
	}

	return store.ErrNotFound
}
