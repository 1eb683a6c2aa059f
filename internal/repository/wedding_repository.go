package repository

import (
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"gorm.io/gorm"
)

type WeddingRepository struct {
	db *gorm.DB
}

func NewWeddingRepository(db *gorm.DB) *WeddingRepository {
	return &WeddingRepository{db: db}
}

func (r *WeddingRepository) Create(wedding *models.Wedding) (*models.Wedding, error) {
	result := r.db.Create(wedding)
	if result.Error != nil {
		return nil, result.Error
	}
	return wedding, nil
}

// GetAll returns every wedding in creation order.
func (r *WeddingRepository) GetAll() ([]models.Wedding, error) {
	var weddings []models.Wedding
	err := r.db.Order("id").Find(&weddings).Error
	return weddings, err
}

// GetAllWithGuests eagerly loads each wedding's RSVP list and the user
// behind every RSVP, so list views never fan out into per-row lookups.
func (r *WeddingRepository) GetAllWithGuests() ([]models.Wedding, error) {
	var weddings []models.Wedding
	err := r.db.Preload("Guests.User").Order("id").Find(&weddings).Error
	return weddings, err
}

func (r *WeddingRepository) GetByID(id uint) (*models.Wedding, error) {
	var wedding models.Wedding
	err := r.db.First(&wedding, id).Error
	if err != nil {
		return nil, err
	}
	return &wedding, nil
}

func (r *WeddingRepository) GetByIDWithGuests(id uint) (*models.Wedding, error) {
	var wedding models.Wedding
	err := r.db.Preload("Guests.User").First(&wedding, id).Error
	if err != nil {
		return nil, err
	}
	return &wedding, nil
}

// Delete removes the wedding and its RSVP rows in one transaction.
func (r *WeddingRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wedding_id = ?", id).Delete(&models.RSVP{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Wedding{}, id).Error
	})
}
