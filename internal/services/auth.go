package services

import (
	"errors"
	"regexp"

	"github.com/pici355/Match-predictory-sub000/internal/models"

	"gorm.io/gorm"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(username, pin string) (*models.User, error) {
	if !pinPattern.MatchString(pin) {
		return nil, errors.New("il PIN deve essere di 4 cifre")
	}

	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, errors.New("nome squadra già in uso")
	}

	user := models.User{
		Username: username,
		PIN:      pin,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login compares the PIN verbatim against the stored value. The PIN is kept
// in plaintext so admins can read it back to users who forget it.
func (s *AuthService) Login(username, pin string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, errors.New("credenziali non valide")
	}

	if user.PIN != pin {
		return nil, errors.New("credenziali non valide")
	}
	return &user, nil
}

func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("utente non trovato")
	}
	return &user, nil
}
