package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"contacts_backend/internal/imageprocessor"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/storage"
	"contacts_backend/pkg/apperrors"
)

type AvatarService interface {
	// ProcessAvatar resizes the upload to a square avatar, stores it and
	// records the public URL on the user. Returns the stored URL.
	ProcessAvatar(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (string, error)
}

type AvatarServiceImpl struct {
	userRepo  repositories.UserRepository
	store     storage.Storage
	processor *imageprocessor.Processor
	size      int
	maxSize   int64
}

func NewAvatarService(
	userRepo repositories.UserRepository,
	store storage.Storage,
	processor *imageprocessor.Processor,
	size int,
	maxSize int64,
) AvatarService {
	if size <= 0 {
		size = 250
	}
	return &AvatarServiceImpl{
		userRepo:  userRepo,
		store:     store,
		processor: processor,
		size:      size,
		maxSize:   maxSize,
	}
}

func (s *AvatarServiceImpl) ProcessAvatar(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewBadRequestError("avatar file is required")
	}
	if s.maxSize > 0 && fileHeader.Size > s.maxSize {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("file too large, maximum is %d bytes", s.maxSize))
	}

	ext, format, err := avatarFormat(fileHeader.Filename)
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	processed, err := s.processor.ProcessSquare(file, s.size, format)
	if err != nil {
		return "", apperrors.NewBadRequestError("invalid image file")
	}

	key := fmt.Sprintf("avatars/%s_%d%s", userID, time.Now().UnixMilli(), ext)
	if err := s.store.Save(ctx, key, processed, "image/"+format); err != nil {
		return "", apperrors.InternalError(err)
	}

	avatarURL, err := s.store.GetURL(ctx, key)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	// The user row is only touched after the file is durably stored, so a
	// failed save never leaves a dangling avatar URL.
	if err := s.userRepo.UpdateAvatar(userID, avatarURL); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.InternalError(err)
	}

	return avatarURL, nil
}

func avatarFormat(filename string) (ext, format string, err error) {
	ext = strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return ext, "jpeg", nil
	case ".png":
		return ext, "png", nil
	default:
		return "", "", apperrors.NewBadRequestError("unsupported image type, use jpg or png")
	}
}
