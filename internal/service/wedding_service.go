package service

import (
	"errors"

	"github.com/sefazor/weddingplanner-backend/internal/logger"
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrWeddingNotFound = errors.New("wedding not found")
	ErrNotWeddingOwner = errors.New("only the wedding owner can delete it")
)

// WeddingRepository defines the persistence the wedding service needs.
type WeddingRepository interface {
	Create(wedding *models.Wedding) (*models.Wedding, error)
	GetAll() ([]models.Wedding, error)
	GetAllWithGuests() ([]models.Wedding, error)
	GetByID(id uint) (*models.Wedding, error)
	GetByIDWithGuests(id uint) (*models.Wedding, error)
	Delete(id uint) error
}

type WeddingService struct {
	weddingRepo WeddingRepository

	// ownerOnlyDelete tightens deletion to the creator; the default keeps
	// the original permissive behavior where any signed-in user may delete.
	ownerOnlyDelete bool
}

func NewWeddingService(weddingRepo WeddingRepository, ownerOnlyDelete bool) *WeddingService {
	return &WeddingService{
		weddingRepo:     weddingRepo,
		ownerOnlyDelete: ownerOnlyDelete,
	}
}

func (s *WeddingService) Create(ownerID uint, req models.WeddingRequest) (*models.Wedding, error) {
	wedding := &models.Wedding{
		WedderOne: req.WedderOne,
		WedderTwo: req.WedderTwo,
		Date:      req.Date,
		Address:   req.Address,
		UserID:    ownerID,
	}

	created, err := s.weddingRepo.Create(wedding)
	if err != nil {
		logger.Log.Errorw("failed to create wedding", "user_id", ownerID, "err", err)
		return nil, err
	}

	return created, nil
}

func (s *WeddingService) GetAll() ([]models.Wedding, error) {
	return s.weddingRepo.GetAll()
}

func (s *WeddingService) GetAllWithGuests() ([]models.Wedding, error) {
	return s.weddingRepo.GetAllWithGuests()
}

func (s *WeddingService) GetWithGuests(id uint) (*models.Wedding, error) {
	wedding, err := s.weddingRepo.GetByIDWithGuests(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeddingNotFound
		}
		return nil, err
	}
	return wedding, nil
}

// Delete removes a wedding and its RSVPs. A missing id is a reported
// not-found, never a fault.
func (s *WeddingService) Delete(actorID, id uint) error {
	wedding, err := s.weddingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWeddingNotFound
		}
		return err
	}

	if s.ownerOnlyDelete && wedding.UserID != actorID {
		return ErrNotWeddingOwner
	}

	if err := s.weddingRepo.Delete(id); err != nil {
		logger.Log.Errorw("failed to delete wedding", "wedding_id", id, "err", err)
		return err
	}

	logger.Log.Infow("wedding deleted", "wedding_id", id, "actor_id", actorID)
	return nil
}
