package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/utils"
	"eventPlanner/internal/validators"
)

type AuthenticationService struct {
	users         UserStore
	jwtKey        []byte
	jwtExpiration time.Duration
}

func NewAuthenticationService(users UserStore, jwtKey []byte, jwtExpiration time.Duration) *AuthenticationService {
	return &AuthenticationService{
		users:         users,
		jwtKey:        jwtKey,
		jwtExpiration: jwtExpiration,
	}
}

func (as *AuthenticationService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := validators.ValidateUser(user); err != nil {
		return nil, err
	}
	if _, err := as.users.FindUserByEmail(ctx, user.Email); err == nil {
		return nil, errs.ErrUserAlreadyExists
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""
	if err := as.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (as *AuthenticationService) Login(ctx context.Context, loginData *models.LoginRequestBody) (*models.LoginResponse, error) {
	user, err := as.users.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(loginData.Email)))
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, loginData.Password); err != nil {
		return nil, errs.ErrWrongPassword
	}

	token, err := utils.CreateJwtToken(user.ID, user.Email, as.jwtKey, time.Now().Add(as.jwtExpiration))
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return &models.LoginResponse{
		User:  user.ToUserResponse(),
		Token: token,
	}, nil
}

func (as *AuthenticationService) Authenticate(token string) (*models.Claims, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}
	return utils.VerifyToken(token, as.jwtKey)
}
