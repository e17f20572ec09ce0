package repository

import (
	"context"
	"database/sql"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type UserPostgresRepositoryImpl struct {
	db *sqlx.DB
}

func CreateUserPostgresRepository(db *sqlx.DB) UserRepository {
	return &UserPostgresRepositoryImpl{db: db}
}

// GetUserByEmail returns the zero-value user when no account matches.
func (r *UserPostgresRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (data domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL", email)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return data, errs.ErrStorage
	}

	return
}

func (r *UserPostgresRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO users(name, email, external_id, hashed_password, provider, phone, image_url, created_at, updated_at) VALUES (:name, :email, :external_id, :hashed_password, :provider, :phone, :image_url, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrStorage
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrStorage
	}

	return data.ID, nil
}

func (r *UserPostgresRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	result, err := r.db.NamedExecContext(ctx, "UPDATE users SET name=:name, phone=:phone, image_url=:image_url, updated_at=:updated_at WHERE email=:email AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return errs.ErrStorage
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return errs.ErrStorage
	}

	if affected == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}
