// Package testutil provides in-memory repository implementations shared by
// the service and handler tests, so tests can exercise the real services
// and route table without a database.
package testutil

import (
	"sort"

	"github.com/sefazor/weddingplanner-backend/internal/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	nextID uint
	Users  map[uint]*models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{Users: make(map[uint]*models.User)}
}

func (r *UserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.Users[user.ID] = &stored
	return nil
}

func (r *UserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.Users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.Users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *UserRepo) EmailExists(email string) (bool, error) {
	_, err := r.GetByEmail(email)
	return err == nil, nil
}

type SessionRepo struct {
	Sessions map[string]*models.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{Sessions: make(map[string]*models.Session)}
}

func (r *SessionRepo) Create(session *models.Session) error {
	stored := *session
	r.Sessions[session.Token] = &stored
	return nil
}

func (r *SessionRepo) GetByToken(token string) (*models.Session, error) {
	session, ok := r.Sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *SessionRepo) Delete(token string) error {
	delete(r.Sessions, token)
	return nil
}

type RSVPRepo struct {
	nextID uint
	Rows   map[uint]*models.RSVP
}

func NewRSVPRepo() *RSVPRepo {
	return &RSVPRepo{Rows: make(map[uint]*models.RSVP)}
}

func (r *RSVPRepo) Create(rsvp *models.RSVP) (*models.RSVP, error) {
	r.nextID++
	rsvp.ID = r.nextID
	stored := *rsvp
	r.Rows[rsvp.ID] = &stored
	return rsvp, nil
}

func (r *RSVPRepo) GetByUserAndWedding(userID, weddingID uint) (*models.RSVP, error) {
	for _, row := range r.Rows {
		if row.UserID == userID && row.WeddingID == weddingID {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *RSVPRepo) DeleteByUserAndWedding(userID, weddingID uint) (int64, error) {
	var affected int64
	for id, row := range r.Rows {
		if row.UserID == userID && row.WeddingID == weddingID {
			delete(r.Rows, id)
			affected++
		}
	}
	return affected, nil
}

type WeddingRepo struct {
	nextID   uint
	Weddings map[uint]*models.Wedding
	rsvps    *RSVPRepo
	users    *UserRepo
}

func NewWeddingRepo(rsvps *RSVPRepo, users *UserRepo) *WeddingRepo {
	return &WeddingRepo{
		Weddings: make(map[uint]*models.Wedding),
		rsvps:    rsvps,
		users:    users,
	}
}

func (r *WeddingRepo) Create(wedding *models.Wedding) (*models.Wedding, error) {
	r.nextID++
	wedding.ID = r.nextID
	stored := *wedding
	r.Weddings[wedding.ID] = &stored
	return wedding, nil
}

func (r *WeddingRepo) GetAll() ([]models.Wedding, error) {
	ids := make([]uint, 0, len(r.Weddings))
	for id := range r.Weddings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	weddings := make([]models.Wedding, 0, len(ids))
	for _, id := range ids {
		weddings = append(weddings, *r.Weddings[id])
	}
	return weddings, nil
}

func (r *WeddingRepo) GetAllWithGuests() ([]models.Wedding, error) {
	weddings, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range weddings {
		weddings[i].Guests = r.guestsOf(weddings[i].ID)
	}
	return weddings, nil
}

func (r *WeddingRepo) GetByID(id uint) (*models.Wedding, error) {
	wedding, ok := r.Weddings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *wedding
	return &copied, nil
}

func (r *WeddingRepo) GetByIDWithGuests(id uint) (*models.Wedding, error) {
	wedding, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	wedding.Guests = r.guestsOf(id)
	return wedding, nil
}

func (r *WeddingRepo) Delete(id uint) error {
	for rowID, row := range r.rsvps.Rows {
		if row.WeddingID == id {
			delete(r.rsvps.Rows, rowID)
		}
	}
	delete(r.Weddings, id)
	return nil
}

func (r *WeddingRepo) guestsOf(weddingID uint) []models.RSVP {
	guests := []models.RSVP{}
	for _, row := range r.rsvps.Rows {
		if row.WeddingID != weddingID {
			continue
		}
		guest := *row
		if user, err := r.users.GetByID(row.UserID); err == nil {
			guest.User = user
		}
		guests = append(guests, guest)
	}
	sort.Slice(guests, func(i, j int) bool { return guests[i].ID < guests[j].ID })
	return guests
}
