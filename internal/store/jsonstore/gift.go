package jsonstore

import (
	"sync"

	"github.com/familia-santos/aurora-site/internal/db/models"
	"github.com/familia-santos/aurora-site/internal/store"
)

// giftStore keeps the gift registry in gifts.json. The mutex makes the
// read-modify-write cycle atomic within the process, so id assignment
// and the claim check can not lose updates between concurrent requests.
type giftStore struct {
	mu   sync.Mutex
	path string
}

func (s *giftStore) List() ([]models.Gift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return readAll[models.Gift](s.path)
}

func (s *giftStore) Get(id uint64) (*models.Gift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.Gift](s.path)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}

	return nil, store.ErrNotFound
}

func (s *giftStore) Create(gift models.Gift) (*models.Gift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.Gift](s.path)
	if err != nil {
		return nil, err
	}

	var maxID uint64
	for i := range items {
		if items[i].ID > maxID {
			maxID = items[i].ID
		}
	}

	gift.ID = maxID + 1
	if !gift.Claimed {
		gift.ClaimedBy = nil
		gift.ClaimedByPhoto = nil
	}

	items = append(items, gift)
	if err := writeAll(s.path, items); err != nil {
		return nil, err
	}

	return &gift, nil
}

func (s *giftStore) Update(id uint64, patch store.GiftPatch) (*models.Gift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.Gift](s.path)
	if err != nil {
		return nil, err
	}

	idx := indexOfGift(items, id)
	if idx < 0 {
		return nil, store.ErrNotFound
	}

	g := &items[idx]

	if patch.Name != nil {
		g.Name = *patch.Name
	}

	if patch.Image != nil {
		g.Image = *patch.Image
	}

	if patch.Category != nil {
		g.Category = *patch.Category
	}

	if patch.Claimed != nil {
		g.Claimed = *patch.Claimed
	}

	if patch.ClaimedBy != nil {
		g.ClaimedBy = patch.ClaimedBy
	}

	if patch.ClaimedByPhoto != nil {
		g.ClaimedByPhoto = patch.ClaimedByPhoto
	}

	if patch.ClearClaimant {
		g.ClaimedBy = nil
		g.ClaimedByPhoto = nil
	}

	if err := writeAll(s.path, items); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *giftStore) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.Gift](s.path)
	if err != nil {
		return err
	}

	idx := indexOfGift(items, id)
	if idx < 0 {
		return store.ErrNotFound
	}

	if items[idx].Claimed {
		return store.ErrGiftClaimed
	}

	items = append(items[:idx], items[idx+1:]...)

	return writeAll(s.path, items)
}

func (s *giftStore) Claim(id uint64, by string, photo *string) (*models.Gift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.Gift](s.path)
	if err != nil {
		return nil, err
	}

	idx := indexOfGift(items, id)
	if idx < 0 {
		return nil, store.ErrNotFound
	}

	g := &items[idx]
	if g.Claimed {
		return nil, store.ErrAlreadyClaimed
	}

	g.Claimed = true
	g.ClaimedBy = &by
	g.ClaimedByPhoto = photo

	if err := writeAll(s.path, items); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *giftStore) Release(id uint64) (*models.Gift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readAll[models.Gift](s.path)
	if err != nil {
		return nil, err
	}

	idx := indexOfGift(items, id)
	if idx < 0 {
		return nil, store.ErrNotFound
	}

	g := &items[idx]
	g.Claimed = false
	g.ClaimedBy = nil
	g.ClaimedByPhoto = nil

	if err := writeAll(s.path, items); err != nil {
		return nil, err
	}

	return g, nil
}

func indexOfGift(items []models.Gift, id uint64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}

	return -1
}
