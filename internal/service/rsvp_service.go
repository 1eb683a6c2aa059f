package service

import (
	"errors"

	"github.com/sefazor/weddingplanner-backend/internal/logger"
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"gorm.io/gorm"
)

var ErrRSVPNotFound = errors.New("rsvp not found")

// RSVPRepository defines the persistence the RSVP ledger needs.
type RSVPRepository interface {
	Create(rsvp *models.RSVP) (*models.RSVP, error)
	GetByUserAndWedding(userID, weddingID uint) (*models.RSVP, error)
	DeleteByUserAndWedding(userID, weddingID uint) (int64, error)
}

type RSVPService struct {
	rsvpRepo    RSVPRepository
	weddingRepo WeddingRepository
}

func NewRSVPService(rsvpRepo RSVPRepository, weddingRepo WeddingRepository) *RSVPService {
	return &RSVPService{
		rsvpRepo:    rsvpRepo,
		weddingRepo: weddingRepo,
	}
}

// Add records that the user attends the wedding. Adding an RSVP that
// already exists returns the existing row, so the operation is idempotent
// and the (user, wedding) pair stays unique.
func (s *RSVPService) Add(userID, weddingID uint) (*models.RSVP, error) {
	if _, err := s.weddingRepo.GetByID(weddingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeddingNotFound
		}
		return nil, err
	}

	existing, err := s.rsvpRepo.GetByUserAndWedding(userID, weddingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rsvp, err := s.rsvpRepo.Create(&models.RSVP{
		UserID:    userID,
		WeddingID: weddingID,
	})
	if err != nil {
		// A concurrent add can slip in between the lookup and the insert;
		// the unique index rejects ours, so hand back the winner's row.
		if existing, getErr := s.rsvpRepo.GetByUserAndWedding(userID, weddingID); getErr == nil {
			return existing, nil
		}
		logger.Log.Errorw("failed to create rsvp", "user_id", userID, "wedding_id", weddingID, "err", err)
		return nil, err
	}

	return rsvp, nil
}

// Remove deletes the user's RSVP for the wedding. A pair with no RSVP
// reports ErrRSVPNotFound instead of faulting.
func (s *RSVPService) Remove(userID, weddingID uint) error {
	affected, err := s.rsvpRepo.DeleteByUserAndWedding(userID, weddingID)
	if err != nil {
		logger.Log.Errorw("failed to delete rsvp", "user_id", userID, "wedding_id", weddingID, "err", err)
		return err
	}
	if affected == 0 {
		return ErrRSVPNotFound
	}
	return nil
}
