package dbstore

import (
	"gorm.io/gorm"

	"github.com/familia-santos/aurora-site/internal/db/models"
	"github.com/familia-santos/aurora-site/internal/store"
)

type giftStore struct {
	db *gorm.DB
}

func (s *giftStore) List() ([]models.Gift, error) {
	var items []models.Gift
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (s *giftStore) Get(id uint64) (*models.Gift, error) {
	var gift models.Gift
	if err := s.db.First(&gift, id).Error; err != nil {
		return nil, notFound(err)
	}

	return &gift, nil
}

func (s *giftStore) Create(gift models.Gift) (*models.Gift, error) {
	gift.ID = 0 // assigned by sqlite autoincrement

	if !gift.Claimed {
		gift.ClaimedBy = nil
		gift.ClaimedByPhoto = nil
	}

	if err := s.db.Create(&gift).Error; err != nil {
		return nil, err
	}

	return &gift, nil
}

func (s *giftStore) Update(id uint64, patch store.GiftPatch) (*models.Gift, error) {
	var gift models.Gift

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&gift, id).Error; err != nil {
			return notFound(err)
		}

		updates := map[string]interface{}{}

		if patch.Name != nil {
			updates["name"] = *patch.Name
		}

		if patch.Image != nil {
			updates["image"] = *patch.Image
		}

		if patch.Category != nil {
			updates["category"] = *patch.Category
		}

		if patch.Claimed != nil {
			updates["claimed"] = *patch.Claimed
		}

		if patch.ClaimedBy != nil {
			updates["claimedBy"] = *patch.ClaimedBy
		}

		if patch.ClaimedByPhoto != nil {
			updates["claimedByPhoto"] = *patch.ClaimedByPhoto
		}

		if patch.ClearClaimant {
			updates["claimedBy"] = nil
			updates["claimedByPhoto"] = nil
		}

		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&gift).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &gift, nil
}

func (s *giftStore) Delete(id uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var gift models.Gift
		if err := tx.First(&gift, id).Error; err != nil {
			return notFound(err)
		}

		if gift.Claimed {
			return store.ErrGiftClaimed
		}

		return tx.Delete(&gift).Error
	})
}

// Claim re-reads the row inside the transaction, so of two concurrent
// claims exactly one wins and the other sees ErrAlreadyClaimed.
func (s *giftStore) Claim(id uint64, by string, photo *string) (*models.Gift, error) {
	var gift models.Gift

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&gift, id).Error; err != nil {
			return notFound(err)
		}

		if gift.Claimed {
			return store.ErrAlreadyClaimed
		}

		return tx.Model(&gift).Updates(map[string]interface{}{
			"claimed":        true,
			"claimedBy":      by,
			"claimedByPhoto": photo,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	gift.Claimed = true
	gift.ClaimedBy = &by
	gift.ClaimedByPhoto = photo

	return &gift, nil
}

func (s *giftStore) Release(id uint64) (*models.Gift, error) {
	var gift models.Gift

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&gift, id).Error; err != nil {
			return notFound(err)
		}

		return tx.Model(&gift).Updates(map[string]interface{}{
			"claimed":        false,
			"claimedBy":      nil,
			"claimedByPhoto": nil,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	gift.Claimed = false
	gift.ClaimedBy = nil
	gift.ClaimedByPhoto = nil

	return &gift, nil
}
