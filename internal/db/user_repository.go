package db

import (
	"errors"
	"strings"

	"github.com/rowanvale/tally/internal/models"
	"gorm.io/gorm"
)

// ErrEmailTaken reports a registration against an email that already has
// an account. Any other Create failure is a storage fault.
var ErrEmailTaken = errors.New("email already exists")

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) Create(user *models.User) error {
	if err := repo.database.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (repo *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.
		Where("email = ?", NormalizeEmail(email)).
		Limit(1).
		Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("id = ?", userID).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
