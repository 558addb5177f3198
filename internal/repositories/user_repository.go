package repositories

import (
	"errors"
	"time"

	"contacts_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	// FindVerifiedByEmail only matches users who completed verification;
	// login goes through here so unverified accounts look nonexistent.
	FindVerifiedByEmail(email string) (*models.User, error)
	// FindByVerificationToken only matches unverified users, which makes
	// confirmation a one-way transition.
	FindByVerificationToken(token string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	SetSessionToken(userID, token string) error
	ClearSessionToken(userID string) error
	UpdateSubscription(userID string, subscription models.Subscription) error
	UpdateAvatar(userID, avatarURL string) error
	SetVerificationToken(userID, token string) error
	VerifyUser(userID string) error
	Delete(userID string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindVerifiedByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ? AND verify = ?", email, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByVerificationToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "verification_token = ? AND verify = ?", token, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"email":              user.Email,
		"subscription":       user.Subscription,
		"token":              user.Token,
		"avatar_url":         user.AvatarURL,
		"verification_token": user.VerificationToken,
		"verify":             user.Verify,
		"updated_at":         time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetSessionToken(userID, token string) error {
	return r.updateFields(userID, map[string]interface{}{"token": token})
}

func (r *UserRepositoryImpl) ClearSessionToken(userID string) error {
	return r.updateFields(userID, map[string]interface{}{"token": ""})
}

func (r *UserRepositoryImpl) UpdateSubscription(userID string, subscription models.Subscription) error {
	return r.updateFields(userID, map[string]interface{}{"subscription": subscription})
}

func (r *UserRepositoryImpl) UpdateAvatar(userID, avatarURL string) error {
	return r.updateFields(userID, map[string]interface{}{"avatar_url": avatarURL})
}

func (r *UserRepositoryImpl) SetVerificationToken(userID, token string) error {
	return r.updateFields(userID, map[string]interface{}{"verification_token": token})
}

func (r *UserRepositoryImpl) VerifyUser(userID string) error {
	return r.updateFields(userID, map[string]interface{}{
		"verify":             true,
		"verification_token": "",
	})
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	result := r.db.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) updateFields(userID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
