package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/radityaputra/intranet-portal/internal/auth"
	sessionDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/session"
	userDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/user"
)

// UserRepository implements auth.UserStore over the users table.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) auth.UserStore {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(email string) (*auth.Account, error) {
	var u userDatamodel.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return accountFromDataModel(&u), nil
}

func (r *UserRepository) Create(account *auth.Account) error {
	u := &userDatamodel.User{
		Email:           account.Email,
		PasswordHash:    account.PasswordHash,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		Department:      account.Department,
		UserLevel:       int(account.UserLevel),
		Status:          account.Status,
		ProfileImageURL: account.ProfileImageURL,
		CreatedAt:       time.Now(),
	}
	if err := r.db.Create(u).Error; err != nil {
		return err
	}
	account.ID = u.ID
	account.CreatedAt = u.CreatedAt
	return nil
}

func accountFromDataModel(u *userDatamodel.User) *auth.Account {
	return &auth.Account{
		ID:              u.ID,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Department:      u.Department,
		UserLevel:       auth.Level(u.UserLevel),
		Status:          u.Status,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
	}
}

// SessionRepository implements auth.SessionStore over the sessions table.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) auth.SessionStore {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(s *auth.Session) error {
	row := &sessionDatamodel.Session{
		Token:      s.Token,
		UserID:     s.User.ID,
		FirstName:  s.User.FirstName,
		LastName:   s.User.LastName,
		Email:      s.User.Email,
		Department: s.User.Department,
		UserLevel:  int(s.User.UserLevel),
		ExpiresAt:  s.ExpiresAt,
		CreatedAt:  s.CreatedAt,
	}
	return r.db.Create(row).Error
}

func (r *SessionRepository) Get(token string) (*auth.Session, error) {
	var row sessionDatamodel.Session
	err := r.db.Where("token = ?", token).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &auth.Session{
		Token: row.Token,
		User: auth.SessionUser{
			ID:         row.UserID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Email:      row.Email,
			Department: row.Department,
			UserLevel:  auth.Level(row.UserLevel),
		},
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *SessionRepository) Touch(token string, expiresAt time.Time) error {
	return r.db.Model(&sessionDatamodel.Session{}).
		Where("token = ?", token).
		Update("expires_at", expiresAt).Error
}

func (r *SessionRepository) Delete(token string) error {
	return r.db.Where("token = ?", token).Delete(&sessionDatamodel.Session{}).Error
}

func (r *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", now).Delete(&sessionDatamodel.Session{})
	return res.RowsAffected, res.Error
}
