package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pokedex-api/backend/app/apperr"
	"pokedex-api/backend/app/models"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count, translate(err, nil, nil, "count users")
}

// Create inserts u, assigning a storage id and empty lists when unset.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if !models.ValidRole(u.Role) {
		return apperr.ErrInvalidRole
	}
	if u.Favorites == nil {
		u.Favorites = []int{}
	}
	if u.Deck == nil {
		u.Deck = []int{}
	}
	err := r.db.WithContext(ctx).Create(u).Error
	return translate(err, nil, apperr.ErrDuplicateUser, "create user")
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err, apperr.ErrUserNotFound, nil, "find user")
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err, apperr.ErrUserNotFound, nil, "find user")
	}
	return &u, nil
}

// Save writes the whole record back. Concurrent writers to the same user
// overwrite each other; the last save wins.
func (r *UserRepository) Save(ctx context.Context, u *models.User) error {
	if !models.ValidRole(u.Role) {
		return apperr.ErrInvalidRole
	}
	err := r.db.WithContext(ctx).Save(u).Error
	return translate(err, nil, apperr.ErrDuplicateUser, "save user")
}
