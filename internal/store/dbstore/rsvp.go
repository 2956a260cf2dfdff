package dbstore

import (
	"gorm.io/gorm"

	"github.com/familia-santos/aurora-site/internal/db/models"
)

type rsvpStore struct {
	db *gorm.DB
}

func (s *rsvpStore) List() ([]models.RSVP, error) {
	var items []models.RSVP
	if err := s.db.Order("createdAt").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (s *rsvpStore) Create(rsvp models.RSVP) (*models.RSVP, error) {
	rsvp.ID = 0 // assigned by sqlite autoincrement

	if err := s.db.Create(&rsvp).Error; err != nil {
		return nil, err
	}

	return &rsvp, nil
}

func (s *rsvpStore) DeleteByCreatedAt(key string) (int64, error) {
	result := s.db.Where("createdAt = ?", key).Delete(&models.RSVP{})

	return result.RowsAffected, result.Error
}
