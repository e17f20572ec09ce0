package service

import (
	"context"
	"time"

	"github.com/andikahilmy/marketplace-service/config"
	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/dto"
	"github.com/andikahilmy/marketplace-service/internal/repository"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/andikahilmy/marketplace-service/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) Register(ctx context.Context, data dto.UserRequest) (err error) {
	user, err := s.repo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if user.ID != 0 {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return errs.ErrInternalServer
	}

	timestamp := time.Now().UnixMilli()
	userEnt := domain.User{
		Name:           data.Name,
		Email:          data.Email,
		HashedPassword: string(hash),
		ExternalID:     ulid.Make().String(),
		Provider:       domain.ProviderCredentials,
		CreatedAt:      timestamp,
		UpdatedAt:      timestamp,
	}

	_, err = s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return respPayload, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID, user.Name, user.Email, s.config.JWTConfig.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.UserID = user.ID

	return
}

// OAuthLogin upserts an account for an identity the external provider
// already verified, then issues the same JWT a credentials login would.
func (s *UserServiceImpl) OAuthLogin(ctx context.Context, payload dto.OAuthRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		timestamp := time.Now().UnixMilli()
		userEnt := domain.User{
			Name:       payload.Name,
			Email:      payload.Email,
			ExternalID: ulid.Make().String(),
			Provider:   domain.ProviderGoogle,
			CreatedAt:  timestamp,
			UpdatedAt:  timestamp,
		}

		if payload.ImageURL != "" {
			userEnt.ImageURL = &payload.ImageURL
		}

		userEnt.ID, err = s.repo.AddUser(ctx, userEnt)
		if err != nil {
			return
		}

		user = userEnt
	}

	token, err := utils.CreateJWTToken(user.ID, user.Name, user.Email, s.config.JWTConfig.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.UserID = user.ID

	return
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, payload dto.ProfileUpdateRequest) (err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return errs.ErrAccountNotFound
	}

	user.Name = payload.Name
	user.Phone = payload.Phone
	user.ImageURL = payload.ImageURL
	user.UpdatedAt = time.Now().UnixMilli()

	return s.repo.UpdateUser(ctx, user)
}
