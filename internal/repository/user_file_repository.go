package repository

import (
	"context"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/infrastructure/database/file"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type UserFileRepositoryImpl struct {
	store *file.Store
}

func CreateUserFileRepository(store *file.Store) UserRepository {
	return &UserFileRepositoryImpl{store: store}
}

// GetUserByEmail returns the zero-value user when no account matches,
// mirroring the SQL implementation.
func (r *UserFileRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (data domain.User, err error) {
	err = r.store.View(func(doc *file.Document) error {
		for _, user := range doc.Users {
			if user.Email == email {
				data = user
				return nil
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return data, errs.ErrStorage
	}

	return data, nil
}

func (r *UserFileRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	err = r.store.Update(func(doc *file.Document) error {
		data.ID = int64(len(doc.Users)) + 1
		doc.Users = append(doc.Users, data)
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrStorage
	}

	return data.ID, nil
}

func (r *UserFileRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	err = r.store.Update(func(doc *file.Document) error {
		for i := range doc.Users {
			if doc.Users[i].Email == data.Email {
				doc.Users[i].Name = data.Name
				doc.Users[i].Phone = data.Phone
				doc.Users[i].ImageURL = data.ImageURL
				doc.Users[i].UpdatedAt = data.UpdatedAt
				return nil
			}
		}
		return errs.ErrAccountNotFound
	})
	if err == errs.ErrAccountNotFound {
		return err
	}
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return errs.ErrStorage
	}

	return nil
}
