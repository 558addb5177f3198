package services

import (
	"crypto/md5"
	"fmt"
	"strings"

	"contacts_backend/internal/auth"
	"contacts_backend/internal/email"
	"contacts_backend/internal/logger"
	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/services/dto"
	"contacts_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(userID string) error
	// ConfirmVerification flips exactly one unverified user to verified.
	// Unknown tokens and already-verified users are indistinguishable to
	// the caller: both come back as not found.
	ConfirmVerification(token string) error
	// ResendVerification mints a fresh token on every call and mails it.
	ResendVerification(userEmail string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	tokens        *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		tokens:        tokens,
	}
}

// Signup registers a new, unverified user and triggers the verification
// mail. The caller validates field formats before the store is touched.
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userEmail := strings.TrimSpace(req.Email)
	verificationToken := uuid.NewString()

	user := &models.User{
		Email:             userEmail,
		PasswordHash:      passwordHash,
		Subscription:      models.SubscriptionStarter,
		AvatarURL:         defaultAvatarURL(userEmail),
		VerificationToken: verificationToken,
		Verify:            false,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	return user, nil
}

// Login authenticates a verified user and issues a session token. An
// unknown email, an unverified account and a wrong password all produce
// the same error, so callers cannot probe for account existence.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindVerifiedByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetSessionToken(user.ID, token); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Token = token

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserPayload{
			Email:        user.Email,
			Subscription: user.Subscription,
		},
	}, nil
}

// Logout clears the stored session token.
func (s *AuthServiceImpl) Logout(userID string) error {
	if err := s.userRepo.ClearSessionToken(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUnauthorized
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ConfirmVerification(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ResendVerification(userEmail string) error {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(userEmail))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	token := uuid.NewString()
	if err := s.userRepo.SetVerificationToken(user.ID, token); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, token)
	return nil
}

// sendVerificationEmail delivers in the background; a failed send is a log
// line, not a failed signup.
func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendVerification(to, token); err != nil {
			logger.Error("failed to send verification email", "error", err, "to", to)
		}
	}()
}

// defaultAvatarURL derives a gravatar placeholder from the email.
func defaultAvatarURL(userEmail string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(userEmail))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=retro", hash)
}
