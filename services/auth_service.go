package services

import (
	"errors"
	"time"

	"github.com/maharit108/Coffee-Talk-API/config"
	"github.com/maharit108/Coffee-Talk-API/models"
	"github.com/maharit108/Coffee-Talk-API/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(creds models.SignUpCredentials) (*models.AuthResponse, error)
	Login(creds models.SignInCredentials) (*models.AuthResponse, error)
	ChangePassword(identity models.Identity, change models.PasswordChange) error
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(creds models.SignUpCredentials) (*models.AuthResponse, error) {
	existingUser, err := s.userRepo.GetByEmail(creds.Email)
	if err == nil && existingUser != nil {
		return nil, models.ErrorConflict{Message: "email already taken"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    creds.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) Login(creds models.SignInCredentials) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(creds.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) ChangePassword(identity models.Identity, change models.PasswordChange) error {
	user, err := s.userRepo.GetByID(identity.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "user not found"}
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(change.Old)); err != nil {
		return models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(change.New), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)

	return s.userRepo.Update(user)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     now.Add(config.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
