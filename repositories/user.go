//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"chat-direct/domain"
	apperrors "chat-direct/errors"
)

type IUserRepository interface {
	CreateUser(email, username, passwordHash string) (Account, error)
	GetByEmail(email string) (Account, error)
	GetByID(id string) (Account, error)
	List(excludeID string) ([]Account, error)
	UpdateProfile(id string, update ProfileUpdate) (Account, error)
	SetPresence(id string, online bool, lastSeen time.Time) error
}

// Account is the repository-level representation of an identity,
// including credentials that must never leave the service layer.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar,omitempty"`
	StatusText   string    `json:"statusText,omitempty"`
	IsOnline     bool      `json:"isOnline"`
	LastSeen     time.Time `json:"lastSeen"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileUpdate carries a partial profile mutation; nil fields are kept.
type ProfileUpdate struct {
	Username   *string
	StatusText *string
	Avatar     *string
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Key layout:
//
//	user:id:{id}       -> account record
//	user:email:{email} -> id (login lookup)
func userKey(id string) []byte {
	return []byte("user:id:" + id)
}

func emailKey(email string) []byte {
	return []byte("user:email:" + email)
}

// CreateUser persists a new account. The email index is checked and
// written in the same transaction, so two concurrent registrations with
// the same email cannot both succeed.
func (u *UserRepository) CreateUser(email, username, passwordHash string) (Account, error) {
	account := Account{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		LastSeen:     time.Now().UTC(),
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(account)
	if err != nil {
		return Account{}, err
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(emailKey(email)); err == nil {
			return apperrors.ErrUserAlreadyExists
		}
		if err := txn.Set(emailKey(email), []byte(account.ID)); err != nil {
			return err
		}
		return txn.Set(userKey(account.ID), data)
	})
	if err != nil {
		return Account{}, err
	}
	return account, nil
}

func (u *UserRepository) GetByEmail(email string) (Account, error) {
	var account Account
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err != nil {
			return err
		}
		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}
		return loadAccount(txn, id, &account)
	})
	if err == badger.ErrKeyNotFound {
		return Account{}, apperrors.ErrNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return account, nil
}

func (u *UserRepository) GetByID(id string) (Account, error) {
	var account Account
	err := u.db.View(func(txn *badger.Txn) error {
		return loadAccount(txn, id, &account)
	})
	if err == badger.ErrKeyNotFound {
		return Account{}, apperrors.ErrNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return account, nil
}

func loadAccount(txn *badger.Txn, id string, account *Account) error {
	item, err := txn.Get(userKey(id))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, account)
	})
}

// List returns every account except excludeID. The roster of a chat this
// size fits comfortably in one prefix scan.
func (u *UserRepository) List(excludeID string) ([]Account, error) {
	var accounts []Account
	prefix := []byte("user:id:")
	err := u.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var account Account
				if err := json.Unmarshal(val, &account); err != nil {
					return err
				}
				if account.ID != excludeID {
					accounts = append(accounts, account)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateProfile applies a partial mutation to the profile fields.
// Presence fields are not touched here; they belong to SetPresence.
func (u *UserRepository) UpdateProfile(id string, update ProfileUpdate) (Account, error) {
	var account Account
	err := u.mutate(id, func(a *Account) {
		if update.Username != nil {
			a.Username = *update.Username
		}
		if update.StatusText != nil {
			a.StatusText = *update.StatusText
		}
		if update.Avatar != nil {
			a.Avatar = *update.Avatar
		}
	}, &account)
	return account, err
}

// SetPresence updates the durable presence fields of an identity.
func (u *UserRepository) SetPresence(id string, online bool, lastSeen time.Time) error {
	var account Account
	return u.mutate(id, func(a *Account) {
		a.IsOnline = online
		a.LastSeen = lastSeen
	}, &account)
}

func (u *UserRepository) mutate(id string, apply func(*Account), out *Account) error {
	err := u.db.Update(func(txn *badger.Txn) error {
		if err := loadAccount(txn, id, out); err != nil {
			return err
		}
		apply(out)
		data, err := json.Marshal(*out)
		if err != nil {
			return err
		}
		return txn.Set(userKey(id), data)
	})
	if err == badger.ErrKeyNotFound {
		return apperrors.ErrNotFound
	}
	return err
}

// ToUser strips credentials for the domain and transport layers.
func (a Account) ToUser() domain.User {
	return domain.User{
		ID:         a.ID,
		Username:   a.Username,
		Avatar:     a.Avatar,
		StatusText: a.StatusText,
		IsOnline:   a.IsOnline,
		LastSeen:   a.LastSeen,
	}
}
