package auth

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"golang.org/x/crypto/bcrypt"

	"zimlicense-backend/internal/apperr"
	"zimlicense-backend/internal/dto"
	"zimlicense-backend/internal/models"
)

type Service struct {
	repo       Repository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *Service {
	return &Service{
		repo:       repo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

func (s *Service) Register(req dto.RegisterRequest) (dto.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if exists {
		return dto.AuthResponse{}, apperr.Conflictf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return dto.AuthResponse{}, errors.Wrap(err, "hash password")
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         models.UserRole(req.Role),
		CompanyName:  req.CompanyName,
		PhoneNumber:  req.PhoneNumber,
		IsActive:     true,
	}
	if err := s.repo.Create(&user); err != nil {
		return dto.AuthResponse{}, err
	}

	return s.respondWithToken(&user)
}

// Login deliberately reports the same invalid-credentials error for an
// unknown email, a wrong password, and a deactivated account, so callers
// cannot enumerate registered emails.
func (s *Service) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return dto.AuthResponse{}, apperr.ErrInvalidCredentials
		}
		return dto.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, apperr.ErrInvalidCredentials
	}

	if !user.IsActive {
		return dto.AuthResponse{}, apperr.ErrInvalidCredentials
	}

	return s.respondWithToken(user)
}

func (s *Service) respondWithToken(user *models.User) (dto.AuthResponse, error) {
	token, err := GenerateToken(s.jwtSecret, s.tokenTTL, user)
	if err != nil {
		return dto.AuthResponse{}, errors.Wrap(err, "generate token")
	}
	return dto.AuthResponse{
		Token:       token,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        string(user.Role),
		UserID:      user.ID,
		CompanyName: user.CompanyName,
	}, nil
}
