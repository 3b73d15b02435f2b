package repositories

import (
	"context"

	"gorm.io/gorm"

	"eventPlanner/internal/models"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(ctx context.Context, user *models.User) error {
	return ar.db.WithContext(ctx).Create(user).Error
}

func (ar *AuthenticationRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := ar.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
