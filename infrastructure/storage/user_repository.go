package storage

import (
	"fmt"
	"strings"
	"time"

	"campaign-hub/domain"
	"campaign-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userKey(email string) string {
	return "user:" + strings.ToLower(email)
}

// CreateUser persists a user under its normalized email.
// The password must already be hashed.
func (u *UserRepository) CreateUser(email, hashedPassword string) (domain.User, error) {
	user := domain.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(email),
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	err := u.db.Update(func(txn *badger.Txn) error {
		key := userKey(email)
		taken, err := exists(txn, key)
		if err != nil {
			return err
		}
		if taken {
			return errors.ErrUserAlreadyExists
		}
		return setValue(txn, key, user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u *UserRepository) GetUserByEmail(email string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) (err error) {
		user, err = getValue[domain.User](txn, userKey(email))
		return err
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("user %s: %w", email, err)
	}
	return user, nil
}
