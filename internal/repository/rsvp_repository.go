package repository

import (
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"gorm.io/gorm"
)

type RSVPRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

func (r *RSVPRepository) Create(rsvp *models.RSVP) (*models.RSVP, error) {
	result := r.db.Create(rsvp)
	if result.Error != nil {
		return nil, result.Error
	}
	return rsvp, nil
}

func (r *RSVPRepository) GetByUserAndWedding(userID, weddingID uint) (*models.RSVP, error) {
	var rsvp models.RSVP
	err := r.db.Where("user_id = ? AND wedding_id = ?", userID, weddingID).First(&rsvp).Error
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// DeleteByUserAndWedding removes the pair's RSVP row and reports how many
// rows matched, so callers can tell a no-op from a real removal.
func (r *RSVPRepository) DeleteByUserAndWedding(userID, weddingID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND wedding_id = ?", userID, weddingID).Delete(&models.RSVP{})
	return result.RowsAffected, result.Error
}
