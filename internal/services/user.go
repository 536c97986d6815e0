package services

import (
	"errors"

	"github.com/pici355/Match-predictory-sub000/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("username ASC").Find(&users).Error
	return users, err
}

func (s *UserService) CreateUser(username, pin string, isAdmin bool) (*models.User, error) {
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
		IsAdmin:  isAdmin,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ResetPIN(userID uint, pin string) (*models.User, error) {
	if !pinPattern.MatchString(pin) {
		return nil, errors.New("il PIN deve essere di 4 cifre")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("utente non trovato")
	}

	user.PIN = pin
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) SetAdmin(userID uint, isAdmin bool) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("utente non trovato")
	}

	user.IsAdmin = isAdmin
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user together with their predictions and payouts.
func (s *UserService) DeleteUser(userID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return errors.New("utente non trovato")
	}

	tx := s.db.Begin()
	if err := tx.Where("user_id = ?", userID).Delete(&models.Prediction{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.WinnerPayout{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
