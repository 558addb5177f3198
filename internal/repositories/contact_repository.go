package repositories

import (
	"errors"
	"time"

	"contacts_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrContactNotFound      = errors.New("contact not found")
	ErrContactAlreadyExists = errors.New("contact already exists")
)

// ContactFilter narrows contact listings. A nil Favorite means no filter.
type ContactFilter struct {
	Favorite *bool
}

type ContactRepository interface {
	FindByID(id string) (*models.Contact, error)
	// FindPage returns one page of contacts plus the total count for the
	// same filter. Ordering is insertion order (created_at).
	FindPage(filter ContactFilter, offset, limit int) ([]models.Contact, int64, error)
	Create(contact *models.Contact) error
	Update(contact *models.Contact) error
	UpdateFavorite(id string, favorite bool) (*models.Contact, error)
	Delete(id string) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) FindByID(id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) FindPage(filter ContactFilter, offset, limit int) ([]models.Contact, int64, error) {
	// Separate chains: reusing one statement after Count leaks its state
	// into the page query.
	filtered := func() *gorm.DB {
		query := r.db.Model(&models.Contact{})
		if filter.Favorite != nil {
			query = query.Where("favorite = ?", *filter.Favorite)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := filtered().Order("created_at").Offset(offset).Limit(limit).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *ContactRepositoryImpl) Create(contact *models.Contact) error {
	var existing models.Contact
	if err := r.db.Where("email = ?", contact.Email).First(&existing).Error; err == nil {
		return ErrContactAlreadyExists
	}

	return r.db.Create(contact).Error
}

func (r *ContactRepositoryImpl) Update(contact *models.Contact) error {
	// Full-document replace; booleans go through the map so false sticks.
	result := r.db.Model(contact).Updates(map[string]interface{}{
		"name":       contact.Name,
		"email":      contact.Email,
		"phone":      contact.Phone,
		"favorite":   contact.Favorite,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *ContactRepositoryImpl) UpdateFavorite(id string, favorite bool) (*models.Contact, error) {
	result := r.db.Model(&models.Contact{}).Where("id = ?", id).Updates(map[string]interface{}{
		"favorite":   favorite,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrContactNotFound
	}

	return r.FindByID(id)
}

func (r *ContactRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Contact{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
