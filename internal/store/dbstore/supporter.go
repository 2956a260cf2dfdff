package dbstore

import (
	"gorm.io/gorm"

	"github.com/familia-santos/aurora-site/internal/db/models"
	"github.com/familia-santos/aurora-site/internal/store"
)

type supporterStore struct {
	db *gorm.DB
}

func (s *supporterStore) List() ([]models.Supporter, error) {
	var items []models.Supporter
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (s *supporterStore) Create(supporter models.Supporter) (*models.Supporter, error) {
	supporter.ID = 0 // assigned by sqlite autoincrement

	if err := s.db.Create(&supporter).Error; err != nil {
		return nil, err
	}

	return &supporter, nil
}

func (s *supporterStore) Delete(id uint64) error {
	result := s.db.Delete(&models.Supporter{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
