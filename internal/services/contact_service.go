package services

import (
	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/services/dto"
	"contacts_backend/pkg/apperrors"
)

const defaultPageLimit = 5

type ContactService interface {
	List(query dto.ListContactsQuery) (*dto.ContactListResponse, error)
	GetByID(contactID string) (*models.Contact, error)
	Create(ownerID string, req *dto.ContactRequest) (*models.Contact, error)
	Update(contactID string, req *dto.ContactRequest) (*models.Contact, error)
	UpdateFavorite(contactID string, favorite bool) (*models.Contact, error)
	Remove(contactID string) error
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo}
}

func (s *ContactServiceImpl) List(query dto.ListContactsQuery) (*dto.ContactListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}

	filter := repositories.ContactFilter{Favorite: query.Favorite}
	offset := (page - 1) * limit

	contacts, total, err := s.contactRepo.FindPage(filter, offset, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &dto.ContactListResponse{
		Data:          contacts,
		TotalContacts: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
	}, nil
}

func (s *ContactServiceImpl) GetByID(contactID string) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(contactID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return contact, nil
}

func (s *ContactServiceImpl) Create(ownerID string, req *dto.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.Favorite != nil {
		contact.Favorite = *req.Favorite
	}
	if ownerID != "" {
		contact.OwnerID = &ownerID
	}

	if err := s.contactRepo.Create(contact); err != nil {
		if apperrors.Is(err, repositories.ErrContactAlreadyExists) {
			return nil, apperrors.NewConflictError("a contact with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return contact, nil
}

func (s *ContactServiceImpl) Update(contactID string, req *dto.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	contact.ID = contactID
	if req.Favorite != nil {
		contact.Favorite = *req.Favorite
	}

	if err := s.contactRepo.Update(contact); err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(contactID)
}

func (s *ContactServiceImpl) UpdateFavorite(contactID string, favorite bool) (*models.Contact, error) {
	updated, err := s.contactRepo.UpdateFavorite(contactID, favorite)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *ContactServiceImpl) Remove(contactID string) error {
	if err := s.contactRepo.Delete(contactID); err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return apperrors.ErrContactNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
